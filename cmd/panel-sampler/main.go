// Copyright 2026 Buildstock Contributors
// This file is part of Panelsampler, an electrical panel sampler for building stock models
//
// Panelsampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Panelsampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Panelsampler. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"log"
	"os"

	"github.com/buildstock/panelsampler/cmd/panel-sampler/inspect"
	"github.com/buildstock/panelsampler/cmd/panel-sampler/runs"
	"github.com/buildstock/panelsampler/cmd/panel-sampler/sampling"
	"github.com/urfave/cli/v2"
)

// PanelSamplerApp data structure
var PanelSamplerApp = cli.App{
	Name:      "Panel Sampler",
	HelpName:  "panel-sampler",
	Usage:     "assigns electrical panel capacity and breaker space headroom to buildings",
	Copyright: "(c) 2026 Buildstock Contributors",
	Commands: []*cli.Command{
		&sampling.SampleCommand,
		&sampling.BatchCommand,
		&inspect.Command,
		&runs.ListCommand,
		&runs.VisualizeCommand,
	},
}

// main implements panel-sampler functions
func main() {
	if err := PanelSamplerApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
