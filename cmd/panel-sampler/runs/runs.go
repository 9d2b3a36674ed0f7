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

// Package runs implements the commands reading stored sampling runs.
package runs

import (
	"os"

	"github.com/buildstock/panelsampler/config"
	"github.com/buildstock/panelsampler/logger"
	"github.com/buildstock/panelsampler/panel"
	"github.com/buildstock/panelsampler/report"
	"github.com/buildstock/panelsampler/store"
	"github.com/buildstock/panelsampler/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ListCommand prints the runs recorded in a store.
var ListCommand = cli.Command{
	Action:    listAction,
	Name:      "runs",
	Usage:     "lists the runs of an assignment store",
	ArgsUsage: "<store>",
	Flags: []cli.Flag{
		&config.StoreTypeFlag,
		&logger.LogLevelFlag,
	},
}

// VisualizeCommand summarizes a stored run and charts its distributions.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "summarizes a stored run and writes charts of its distributions",
	ArgsUsage: "<store>",
	Flags: []cli.Flag{
		&config.StoreTypeFlag,
		&config.RunIDFlag,
		&config.ChartFileFlag,
		&config.SummaryFileFlag,
		&config.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
Reads the assignments of a run, the latest run unless --run-id is given,
prints their summary and writes bar charts of the capacity bins and the
breaker space headroom to --chart-file, <run-id>.html by default.
`,
}

// openStore opens an existing store.
func openStore(cfg *config.Config) (store.Store, error) {
	if _, err := os.Stat(cfg.Input); err != nil {
		return nil, errors.Wrapf(err, "cannot open store %s", cfg.Input)
	}
	return store.Open(cfg.StoreType, cfg.Input)
}

func closeStore(s store.Store, log logger.Logger) {
	if err := s.Close(); err != nil {
		log.Warningf("Cannot close store; %v", err)
	}
}

func listAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "panel-runs")

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(s, log)

	list, err := s.Runs()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		log.Notice("Store contains no runs")
		return nil
	}

	printers := utils.NewPrinters().AddPrinterToWriter(ctx.App.Writer, func() string {
		return report.RenderRuns(list)
	})
	defer printers.Close()
	return printers.Print()
}

func visualizeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "panel-visualize")

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(s, log)

	run, err := store.FindRun(s, cfg.RunID)
	if err != nil {
		return err
	}
	stored, err := s.Assignments(run.ID)
	if err != nil {
		return err
	}

	assignments := make([]panel.Assignment, len(stored))
	for i, a := range stored {
		assignments[i] = a.Panel()
	}
	failures := max(run.Buildings-len(assignments), 0)
	summary := report.Summarize(run.ID, assignments, failures)

	render := func() string { return report.RenderSummary(summary) }
	printers := utils.NewPrinters().AddPrinterToFile(cfg.SummaryFile, render)
	if !cfg.Quiet {
		printers.AddPrinterToWriter(ctx.App.Writer, render)
	}
	defer printers.Close()
	if err = printers.Print(); err != nil {
		return err
	}

	chartFile := cfg.ChartFile
	if chartFile == "" {
		chartFile = run.ID + ".html"
	}
	if err = report.WriteCharts(chartFile, summary); err != nil {
		return err
	}
	log.Noticef("Charts of run %s written to %s", run.ID, chartFile)
	return nil
}
