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
	"github.com/buildstock/panelsampler/panel"
	"github.com/urfave/cli/v2"
)

// probability tables
var (
	CapacityTableFlag = cli.PathFlag{
		Name:  "capacity-table",
		Usage: "probability table of the rated panel capacity (csv, tsv, optionally gzipped)",
	}
	HeadroomTableFlag = cli.PathFlag{
		Name:  "headroom-table",
		Usage: "probability table of the breaker space headroom (csv, tsv, optionally gzipped)",
	}
	CapacityKeyColumnsFlag = cli.IntFlag{
		Name:  "capacity-key-columns",
		Usage: "number of leading key columns of the capacity table; 0 infers them from Option= headers",
		Value: 0,
	}
	HeadroomKeyColumnsFlag = cli.IntFlag{
		Name:  "headroom-key-columns",
		Usage: "number of leading key columns of the headroom table; 0 infers them from Option= headers",
		Value: 0,
	}
	KeyColumnsFlag = cli.IntFlag{
		Name:  "key-columns",
		Usage: "number of leading key columns of the inspected table; 0 infers them from Option= headers",
		Value: 0,
	}
)

// single building attributes
var (
	BuildingIDFlag = cli.Int64Flag{
		Name:  "building-id",
		Usage: "identifier of the building, seeds its random stream",
		Value: 1,
	}
	UnitTypeFlag = cli.StringFlag{
		Name:  "unit-type",
		Usage: "geometry unit type (single-family detached, single-family attached, apartment unit, manufactured home)",
		Value: "single-family detached",
	}
	UnitsInBuildingFlag = cli.IntFlag{
		Name:  "units-in-building",
		Usage: "number of dwelling units in the building",
		Value: 1,
	}
	FloorAreaFlag = cli.Float64Flag{
		Name:  "floor-area",
		Usage: "conditioned floor area of the unit in square feet",
	}
	YearBuiltFlag = cli.IntFlag{
		Name:  "year-built",
		Usage: "construction year of the building",
	}
	HeatingFuelFlag = cli.StringFlag{
		Name:  "heating-fuel",
		Usage: "fuel of the primary heating system",
	}
	CoolingSystemFlag = cli.StringFlag{
		Name:  "cooling-system",
		Usage: "cooling system type (central air conditioner, room air conditioner, mini-split, none)",
		Value: panel.None,
	}
	HeatPumpFlag = cli.StringFlag{
		Name:  "heat-pump",
		Usage: "heat pump type, none when the unit has no heat pump",
		Value: panel.None,
	}
	WaterHeaterFuelFlag = cli.StringFlag{
		Name:  "water-heater-fuel",
		Usage: "fuel of the water heater, none when absent",
		Value: panel.None,
	}
	ClothesDryerFuelFlag = cli.StringFlag{
		Name:  "clothes-dryer-fuel",
		Usage: "fuel of the clothes dryer, none when absent",
		Value: panel.None,
	}
	CookingRangeFuelFlag = cli.StringFlag{
		Name:  "cooking-range-fuel",
		Usage: "fuel of the cooking range, none when absent",
		Value: panel.None,
	}
	ServiceRatingFlag = cli.StringFlag{
		Name:  "service-rating",
		Usage: "rated panel capacity in amps, auto samples it",
		Value: panel.Auto,
	}
	BreakerSpacesHeadroomFlag = cli.StringFlag{
		Name:  "breaker-spaces-headroom",
		Usage: "free breaker spaces of the panel, auto samples it",
		Value: panel.Auto,
	}
)

// batch runs and their output
var (
	OutputFlag = cli.PathFlag{
		Name:  "output",
		Usage: "path of the assignment store",
		Value: "panels.db",
	}
	StoreTypeFlag = cli.StringFlag{
		Name:  "store-type",
		Usage: "kind of the assignment store (\"sqlite\", \"leveldb\")",
		Value: "sqlite",
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of sampling worker goroutines",
		Value: 4,
	}
	ContinueOnFailureFlag = cli.BoolFlag{
		Name:  "continue-on-failure",
		Usage: "keep sampling the remaining buildings after a building fails",
	}
	MaxNumErrorsFlag = cli.IntFlag{
		Name:  "max-errors",
		Usage: "with --continue-on-failure, the run stops after this many failed buildings (0 is endless)",
		Value: 0,
	}
	TrackProgressFlag = cli.BoolFlag{
		Name:  "track-progress",
		Usage: "show a progress bar while sampling",
	}
	RunIDFlag = cli.StringFlag{
		Name:  "run-id",
		Usage: "id of the run, batch generates one and visualize uses the latest run when empty",
	}
	SummaryFileFlag = cli.PathFlag{
		Name:  "summary-file",
		Usage: "append the run summary to this file",
	}
	ChartFileFlag = cli.PathFlag{
		Name:  "chart-file",
		Usage: "write an html page with distribution charts to this file",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "do not print the summary to the console",
	}
)
