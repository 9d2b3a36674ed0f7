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

package panel

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Key columns a probability table may use.
const (
	FieldBuildingType     = "geometry_building_type"
	FieldFloorArea        = "geometry_floor_area"
	FieldVintage          = "vintage"
	FieldHeatingFuel      = "heating_fuel"
	FieldCoolingType      = "cooling_type"
	FieldWaterHeaterFuel  = "water_heater_fuel"
	FieldClothesDryerFuel = "clothes_dryer_fuel"
	FieldCookingRangeFuel = "cooking_range_fuel"
	FieldCapacityBin      = "capacity_bin"
)

// extractor produces the bucket of one key field. capacityBin is only set
// while sampling breaker space headroom.
type extractor func(b *Building, capacityBin string) (string, error)

var extractors = map[string]extractor{
	FieldBuildingType: func(b *Building, _ string) (string, error) {
		return DwellingType(b.UnitType, b.UnitsInBuilding)
	},
	FieldFloorArea: func(b *Building, _ string) (string, error) {
		return FloorAreaBucket(b.FloorArea)
	},
	FieldVintage: func(b *Building, _ string) (string, error) {
		return VintageBucket(b.YearBuilt)
	},
	FieldHeatingFuel: func(b *Building, _ string) (string, error) {
		return FuelBucket(b.HeatingFuel)
	},
	FieldCoolingType: func(b *Building, _ string) (string, error) {
		return CoolingType(b.CoolingSystemType, b.HeatPumpType)
	},
	FieldWaterHeaterFuel: func(b *Building, _ string) (string, error) {
		return EquipmentFuel(b.HasWaterHeater, b.WaterHeaterFuel)
	},
	FieldClothesDryerFuel: func(b *Building, _ string) (string, error) {
		return EquipmentFuel(b.HasClothesDryer, b.ClothesDryerFuel)
	},
	FieldCookingRangeFuel: func(b *Building, _ string) (string, error) {
		return EquipmentFuel(b.HasCookingRange, b.CookingRangeFuel)
	},
	FieldCapacityBin: func(_ *Building, capacityBin string) (string, error) {
		if capacityBin == "" {
			return "", errors.New("capacity bin is not known yet")
		}
		return capacityBin, nil
	},
}

// contextBuilder assembles sampling contexts in the key order of a table.
type contextBuilder []extractor

func newContextBuilder(fields []string, allowCapacityBin bool) (contextBuilder, error) {
	builder := make(contextBuilder, len(fields))
	for i, f := range fields {
		name := strings.ToLower(strings.TrimSpace(f))
		if name == FieldCapacityBin && !allowCapacityBin {
			return nil, errors.Newf("key column %q is not available for this table", f)
		}
		e, found := extractors[name]
		if !found {
			return nil, errors.Newf("unknown key column %q", f)
		}
		builder[i] = e
	}
	return builder, nil
}

func (c contextBuilder) build(b *Building, capacityBin string) ([]string, error) {
	ctx := make([]string, len(c))
	for i, e := range c {
		v, err := e(b, capacityBin)
		if err != nil {
			return nil, err
		}
		ctx[i] = v
	}
	return ctx, nil
}

// KnownFields lists the key columns understood by the sampler.
func KnownFields() []string {
	return []string{
		FieldBuildingType,
		FieldFloorArea,
		FieldVintage,
		FieldHeatingFuel,
		FieldCoolingType,
		FieldWaterHeaterFuel,
		FieldClothesDryerFuel,
		FieldCookingRangeFuel,
		FieldCapacityBin,
	}
}
