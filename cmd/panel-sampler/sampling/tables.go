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

package sampling

import (
	"github.com/buildstock/panelsampler/config"
	"github.com/buildstock/panelsampler/diag"
	"github.com/buildstock/panelsampler/panel"
	"github.com/buildstock/panelsampler/table"
	"github.com/urfave/cli/v2"
)

// tables keeps probability tables loaded by earlier commands of the process.
var tables = table.NewCache()

// newSampler loads both probability tables of cfg.
func newSampler(cfg *config.Config, reporter diag.Reporter) (*panel.Sampler, error) {
	if err := cfg.CheckTables(); err != nil {
		return nil, err
	}
	capacity, err := tables.Load(cfg.CapacityTable, table.Options{KeyColumns: cfg.CapacityKeyColumns})
	if err != nil {
		return nil, err
	}
	headroom, err := tables.Load(cfg.HeadroomTable, table.Options{KeyColumns: cfg.HeadroomKeyColumns})
	if err != nil {
		return nil, err
	}
	return panel.NewSampler(capacity, headroom, reporter)
}

var tableFlags = []cli.Flag{
	&config.CapacityTableFlag,
	&config.HeadroomTableFlag,
	&config.CapacityKeyColumnsFlag,
	&config.HeadroomKeyColumnsFlag,
}
