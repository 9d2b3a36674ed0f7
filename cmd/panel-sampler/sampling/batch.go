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
	"github.com/buildstock/panelsampler/batch"
	"github.com/buildstock/panelsampler/config"
	"github.com/buildstock/panelsampler/diag"
	"github.com/buildstock/panelsampler/logger"
	"github.com/buildstock/panelsampler/report"
	"github.com/buildstock/panelsampler/store"
	"github.com/buildstock/panelsampler/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// BatchCommand assigns panels to every building of a building list.
var BatchCommand = cli.Command{
	Action:    batchAction,
	Name:      "batch",
	Usage:     "assigns panels to all buildings of a csv or yaml building list",
	ArgsUsage: "<buildings-file>",
	Flags: append([]cli.Flag{
		&config.OutputFlag,
		&config.StoreTypeFlag,
		&config.WorkersFlag,
		&config.ContinueOnFailureFlag,
		&config.MaxNumErrorsFlag,
		&config.TrackProgressFlag,
		&config.RunIDFlag,
		&config.SummaryFileFlag,
		&config.ChartFileFlag,
		&config.QuietFlag,
		&logger.LogLevelFlag,
	}, tableFlags...),
	Description: `
Samples the panel of every building of the list and records the assignments
as a new run of the store given by --output. A summary of the run is printed
and optionally appended to --summary-file; --chart-file writes an html page
with the distributions of the run.
`,
}

func batchAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "panel-batch")

	collector := diag.NewCollector()
	sampler, err := newSampler(cfg, diag.Multi(diag.NewLogReporter(log), collector))
	if err != nil {
		return err
	}

	buildings, err := batch.ReadBuildings(cfg.Input)
	if err != nil {
		return err
	}
	if len(buildings) == 0 {
		return errors.Newf("building list %s is empty", cfg.Input)
	}

	s, err := store.Open(cfg.StoreType, cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if e := s.Close(); e != nil {
			err = errors.CombineErrors(err, errors.Wrapf(e, "cannot close store %s", cfg.Output))
		}
	}()

	res, err := batch.NewRunner(cfg, sampler, s, log).Run(ctx.Context, buildings)
	if err != nil {
		return err
	}
	log.Noticef("Run %s: %d warnings, %d notes", res.RunID, collector.Count(diag.Warning), collector.Count(diag.Info))

	summary := report.Summarize(res.RunID, res.Assignments, len(res.Failed))
	printers := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, func() string { return report.RenderSummary(summary) }).
		AddPrinterToFile(cfg.SummaryFile, func() string { return report.RenderSummary(summary) })
	defer printers.Close()
	if err = printers.Print(); err != nil {
		return err
	}

	if cfg.ChartFile != "" {
		if err = report.WriteCharts(cfg.ChartFile, summary); err != nil {
			return err
		}
		log.Noticef("Charts written to %s", cfg.ChartFile)
	}
	return nil
}
