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
	"strconv"
	"strings"
)

// Auto requests sampling of a panel property instead of a user value.
const Auto = "auto"

// Building is the raw description of one dwelling unit.
type Building struct {
	ID                int64
	UnitType          string
	UnitsInBuilding   int
	FloorArea         float64
	YearBuilt         int
	HeatingFuel       string
	CoolingSystemType string
	HeatPumpType      string

	HasWaterHeater   bool
	WaterHeaterFuel  string
	HasClothesDryer  bool
	ClothesDryerFuel string
	HasCookingRange  bool
	CookingRangeFuel string

	// ServiceRating is the rated panel capacity in amps or auto.
	ServiceRating string
	// BreakerSpacesHeadroom is the number of free breaker spaces or auto.
	BreakerSpacesHeadroom string
}

func isAuto(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, Auto)
}

// serviceRatingOverride returns the user supplied panel rating, if any.
func (b *Building) serviceRatingOverride() (float64, bool, error) {
	if isAuto(b.ServiceRating) {
		return 0, false, nil
	}
	amps, err := parseNumber(b.ServiceRating)
	if err != nil {
		return 0, false, err
	}
	if amps <= 0 {
		return 0, false, &TranslationError{Label: b.ServiceRating}
	}
	return amps, true, nil
}

// headroomOverride returns the user supplied breaker space headroom, if any.
func (b *Building) headroomOverride() (int, bool, error) {
	if isAuto(b.BreakerSpacesHeadroom) {
		return 0, false, nil
	}
	n, err := HeadroomToValue(b.BreakerSpacesHeadroom)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// String identifies the building in messages.
func (b *Building) String() string {
	return "building " + strconv.FormatInt(b.ID, 10)
}
