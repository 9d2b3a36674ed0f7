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

// Package sampling implements the commands assigning panels to buildings.
package sampling

import (
	"github.com/buildstock/panelsampler/config"
	"github.com/buildstock/panelsampler/diag"
	"github.com/buildstock/panelsampler/logger"
	"github.com/buildstock/panelsampler/report"
	"github.com/buildstock/panelsampler/utils"
	"github.com/urfave/cli/v2"
)

// SampleCommand assigns a panel to a single building described by flags.
var SampleCommand = cli.Command{
	Action: sampleAction,
	Name:   "sample",
	Usage:  "assigns rated capacity and breaker space headroom to one building",
	Flags: append([]cli.Flag{
		&config.BuildingIDFlag,
		&config.UnitTypeFlag,
		&config.UnitsInBuildingFlag,
		&config.FloorAreaFlag,
		&config.YearBuiltFlag,
		&config.HeatingFuelFlag,
		&config.CoolingSystemFlag,
		&config.HeatPumpFlag,
		&config.WaterHeaterFuelFlag,
		&config.ClothesDryerFuelFlag,
		&config.CookingRangeFuelFlag,
		&config.ServiceRatingFlag,
		&config.BreakerSpacesHeadroomFlag,
		&logger.LogLevelFlag,
	}, tableFlags...),
	Description: `
Draws the rated panel capacity and then the breaker space headroom of one
building. The building id seeds the draws, so repeated calls with the same
attributes give the same panel.
`,
}

func sampleAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.NoArgs)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.LogLevel, "panel-sample")

	sampler, err := newSampler(cfg, diag.NewLogReporter(log))
	if err != nil {
		return err
	}

	a, err := sampler.Assign(cfg.Building())
	if err != nil {
		return err
	}

	printers := utils.NewPrinters().AddPrinterToWriter(ctx.App.Writer, func() string {
		return report.RenderAssignment(a)
	})
	defer printers.Close()
	return printers.Print()
}
