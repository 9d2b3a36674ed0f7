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

// Package inspect implements the command checking probability tables.
package inspect

import (
	"slices"
	"strings"

	"github.com/buildstock/panelsampler/config"
	"github.com/buildstock/panelsampler/logger"
	"github.com/buildstock/panelsampler/panel"
	"github.com/buildstock/panelsampler/report"
	"github.com/buildstock/panelsampler/table"
	"github.com/buildstock/panelsampler/utils"
	"github.com/urfave/cli/v2"
)

// Command prints the shape of a probability table and the rows a sampler
// would handle specially.
var Command = cli.Command{
	Action:    inspectAction,
	Name:      "inspect",
	Usage:     "checks a probability table",
	ArgsUsage: "<table-file>",
	Flags: []cli.Flag{
		&config.KeyColumnsFlag,
		&logger.LogLevelFlag,
	},
	Description: `
Loads a probability table and lists its key fields and outcome labels, the
range of its row weight sums, rows whose weights do not sum to one and
duplicate keys.
`,
}

func inspectAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "panel-inspect")

	t, err := table.LoadFile(cfg.Input, table.Options{KeyColumns: cfg.KeyColumns})
	if err != nil {
		return err
	}

	known := panel.KnownFields()
	for _, field := range t.KeyFields {
		if !slices.Contains(known, strings.ToLower(strings.TrimSpace(field))) {
			log.Warningf("Key field %s cannot be derived from a building; known fields are %s", field, strings.Join(known, ", "))
		}
	}

	in := report.InspectTable(t)
	if len(in.Unnormalized) > 0 {
		log.Warningf("%d rows do not sum to one", len(in.Unnormalized))
	}
	if len(in.Duplicates) > 0 {
		log.Warningf("%d keys are defined more than once", len(in.Duplicates))
	}

	printers := utils.NewPrinters().AddPrinterToWriter(ctx.App.Writer, func() string {
		return report.RenderInspection(in)
	})
	defer printers.Close()
	return printers.Print()
}
