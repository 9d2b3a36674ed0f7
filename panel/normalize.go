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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Buckets used as table keys.
const (
	SingleFamilyDetached = "single-family-detached"
	SingleFamilyAttached = "single-family-attached"
	ApartmentSmall       = "apartment unit, 2-4"
	ApartmentLarge       = "apartment unit, 5+"
	MobileHome           = "mobile home"

	CentralAirConditioner = "central-air-conditioner"
	RoomAirConditioner    = "room-air-conditioner"
	HeatPump              = "heat-pump"
	None                  = "none"

	Electricity    = "electricity"
	NonElectricity = "non-electricity"
)

// smallApartmentLimit is the unit count from which an apartment building
// falls into the 5+ bucket.
const smallApartmentLimit = 5

var nonElectricFuels = map[string]bool{
	"natural gas":  true,
	"fuel oil":     true,
	"propane":      true,
	"wood":         true,
	"wood pellets": true,
	"coal":         true,
	"kerosene":     true,
}

var heatPumpTypes = map[string]bool{
	"air-to-air":                              true,
	"mini-split":                              true,
	"ground-to-air":                           true,
	"packaged terminal heat pump":             true,
	"room air conditioner with reverse cycle": true,
}

func canonical(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// DwellingType buckets a unit type and the number of units in its building.
func DwellingType(unitType string, unitsInBuilding int) (string, error) {
	switch canonical(unitType) {
	case "single-family detached":
		return SingleFamilyDetached, nil
	case "single-family attached":
		return SingleFamilyAttached, nil
	case "apartment unit":
		if unitsInBuilding < smallApartmentLimit {
			return ApartmentSmall, nil
		}
		return ApartmentLarge, nil
	case "manufactured home":
		return MobileHome, nil
	}
	return "", &UnsupportedCategoryError{Field: "unit type", Value: unitType}
}

// CoolingType buckets the cooling system of a unit. Any heat pump wins over
// the cooling system. Mini-split air conditioners are bucketed as none for
// the panel tables.
func CoolingType(coolingSystem, heatPump string) (string, error) {
	hp := canonical(heatPump)
	if hp != None {
		if heatPumpTypes[hp] {
			return HeatPump, nil
		}
		return "", &UnsupportedCategoryError{Field: "heat pump type", Value: heatPump}
	}
	switch canonical(coolingSystem) {
	case "central air conditioner":
		return CentralAirConditioner, nil
	case "room air conditioner":
		return RoomAirConditioner, nil
	case "mini-split", None:
		return None, nil
	}
	return "", &UnsupportedCategoryError{Field: "cooling system type", Value: coolingSystem}
}

// FuelBucket reduces a fuel to electricity or non-electricity.
func FuelBucket(fuel string) (string, error) {
	f := canonical(fuel)
	if f == Electricity {
		return Electricity, nil
	}
	if nonElectricFuels[f] {
		return NonElectricity, nil
	}
	return "", &UnsupportedCategoryError{Field: "fuel", Value: fuel}
}

// EquipmentFuel buckets an appliance: none when absent, else its fuel bucket.
func EquipmentFuel(present bool, fuel string) (string, error) {
	if !present {
		return None, nil
	}
	return FuelBucket(fuel)
}

// FloorAreaBucket bins a conditioned floor area in square feet.
func FloorAreaBucket(sqft float64) (string, error) {
	switch {
	case math.IsNaN(sqft) || sqft <= 0:
		return "", &UnsupportedCategoryError{Field: "floor area", Value: strconv.FormatFloat(sqft, 'f', -1, 64)}
	case sqft < 500:
		return "0-499", nil
	case sqft < 750:
		return "500-749", nil
	case sqft < 1000:
		return "750-999", nil
	case sqft < 1500:
		return "1000-1499", nil
	case sqft < 2000:
		return "1500-1999", nil
	case sqft < 2500:
		return "2000-2499", nil
	case sqft < 3000:
		return "2500-2999", nil
	case sqft < 4000:
		return "3000-3999", nil
	}
	return "4000+", nil
}

// VintageBucket bins a construction year into <1940 or its decade.
func VintageBucket(year int) (string, error) {
	if year < 1000 || year > 9999 {
		return "", &UnsupportedCategoryError{Field: "year built", Value: strconv.Itoa(year)}
	}
	if year < 1940 {
		return "<1940", nil
	}
	return fmt.Sprintf("%ds", year/10*10), nil
}
