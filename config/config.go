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
	"strings"

	"github.com/buildstock/panelsampler/panel"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ArgumentMode tells NewConfig how many positional arguments a command takes.
type ArgumentMode int

const (
	NoArgs ArgumentMode = iota
	OneArg
)

// Config holds the options of one command invocation.
type Config struct {
	AppName     string
	CommandName string
	Input       string // positional argument of OneArg commands

	LogLevel string

	CapacityTable      string
	HeadroomTable      string
	CapacityKeyColumns int
	HeadroomKeyColumns int
	KeyColumns         int

	BuildingID            int64
	UnitType              string
	UnitsInBuilding       int
	FloorArea             float64
	YearBuilt             int
	HeatingFuel           string
	CoolingSystem         string
	HeatPump              string
	WaterHeaterFuel       string
	ClothesDryerFuel      string
	CookingRangeFuel      string
	ServiceRating         string
	BreakerSpacesHeadroom string

	Output            string
	StoreType         string
	Workers           int
	ContinueOnFailure bool
	MaxNumErrors      int
	TrackProgress     bool
	RunID             string
	SummaryFile       string
	ChartFile         string
	Quiet             bool
}

// NewConfig creates the configuration of the running command and checks
// its positional arguments against mode.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	switch mode {
	case NoArgs:
		if ctx.Args().Len() > 0 {
			return nil, errors.Newf("command %s takes no arguments, got %q", cfg.CommandName, ctx.Args().Slice())
		}
	case OneArg:
		if ctx.Args().Len() != 1 {
			return nil, errors.Newf("command %s takes exactly one argument, got %d", cfg.CommandName, ctx.Args().Len())
		}
		cfg.Input = ctx.Args().First()
	default:
		return nil, errors.Newf("unknown argument mode %d", mode)
	}

	if cfg.Workers < 1 {
		return nil, errors.Newf("number of workers must be positive, got %d", cfg.Workers)
	}
	if cfg.MaxNumErrors < 0 {
		return nil, errors.Newf("maximum number of errors must not be negative, got %d", cfg.MaxNumErrors)
	}
	for _, n := range []int{cfg.CapacityKeyColumns, cfg.HeadroomKeyColumns, cfg.KeyColumns} {
		if n < 0 {
			return nil, errors.Newf("number of key columns must not be negative, got %d", n)
		}
	}
	return cfg, nil
}

// CheckTables reports a missing probability table path.
func (cfg *Config) CheckTables() error {
	var missing []string
	if cfg.CapacityTable == "" {
		missing = append(missing, "--"+CapacityTableFlag.Name)
	}
	if cfg.HeadroomTable == "" {
		missing = append(missing, "--"+HeadroomTableFlag.Name)
	}
	if len(missing) > 0 {
		return errors.Newf("missing probability table: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Building describes the single building given by the attribute flags.
func (cfg *Config) Building() *panel.Building {
	return &panel.Building{
		ID:                    cfg.BuildingID,
		UnitType:              cfg.UnitType,
		UnitsInBuilding:       cfg.UnitsInBuilding,
		FloorArea:             cfg.FloorArea,
		YearBuilt:             cfg.YearBuilt,
		HeatingFuel:           cfg.HeatingFuel,
		CoolingSystemType:     cfg.CoolingSystem,
		HeatPumpType:          cfg.HeatPump,
		HasWaterHeater:        present(cfg.WaterHeaterFuel),
		WaterHeaterFuel:       cfg.WaterHeaterFuel,
		HasClothesDryer:       present(cfg.ClothesDryerFuel),
		ClothesDryerFuel:      cfg.ClothesDryerFuel,
		HasCookingRange:       present(cfg.CookingRangeFuel),
		CookingRangeFuel:      cfg.CookingRangeFuel,
		ServiceRating:         cfg.ServiceRating,
		BreakerSpacesHeadroom: cfg.BreakerSpacesHeadroom,
	}
}

// present tells whether an appliance with the given fuel exists.
func present(fuel string) bool {
	f := strings.ToLower(strings.TrimSpace(fuel))
	return f != "" && f != panel.None
}
