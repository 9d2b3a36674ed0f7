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

package config

import (
	"github.com/buildstock/panelsampler/logger"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		LogLevel: getFlagValue(ctx, logger.LogLevelFlag).(string),

		CapacityTable:      getFlagValue(ctx, CapacityTableFlag).(string),
		HeadroomTable:      getFlagValue(ctx, HeadroomTableFlag).(string),
		CapacityKeyColumns: getFlagValue(ctx, CapacityKeyColumnsFlag).(int),
		HeadroomKeyColumns: getFlagValue(ctx, HeadroomKeyColumnsFlag).(int),
		KeyColumns:         getFlagValue(ctx, KeyColumnsFlag).(int),

		BuildingID:            getFlagValue(ctx, BuildingIDFlag).(int64),
		UnitType:              getFlagValue(ctx, UnitTypeFlag).(string),
		UnitsInBuilding:       getFlagValue(ctx, UnitsInBuildingFlag).(int),
		FloorArea:             getFlagValue(ctx, FloorAreaFlag).(float64),
		YearBuilt:             getFlagValue(ctx, YearBuiltFlag).(int),
		HeatingFuel:           getFlagValue(ctx, HeatingFuelFlag).(string),
		CoolingSystem:         getFlagValue(ctx, CoolingSystemFlag).(string),
		HeatPump:              getFlagValue(ctx, HeatPumpFlag).(string),
		WaterHeaterFuel:       getFlagValue(ctx, WaterHeaterFuelFlag).(string),
		ClothesDryerFuel:      getFlagValue(ctx, ClothesDryerFuelFlag).(string),
		CookingRangeFuel:      getFlagValue(ctx, CookingRangeFuelFlag).(string),
		ServiceRating:         getFlagValue(ctx, ServiceRatingFlag).(string),
		BreakerSpacesHeadroom: getFlagValue(ctx, BreakerSpacesHeadroomFlag).(string),

		Output:            getFlagValue(ctx, OutputFlag).(string),
		StoreType:         getFlagValue(ctx, StoreTypeFlag).(string),
		Workers:           getFlagValue(ctx, WorkersFlag).(int),
		ContinueOnFailure: getFlagValue(ctx, ContinueOnFailureFlag).(bool),
		MaxNumErrors:      getFlagValue(ctx, MaxNumErrorsFlag).(int),
		TrackProgress:     getFlagValue(ctx, TrackProgressFlag).(bool),
		RunID:             getFlagValue(ctx, RunIDFlag).(string),
		SummaryFile:       getFlagValue(ctx, SummaryFileFlag).(string),
		ChartFile:         getFlagValue(ctx, ChartFileFlag).(string),
		Quiet:             getFlagValue(ctx, QuietFlag).(bool),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}

	return nil
}
