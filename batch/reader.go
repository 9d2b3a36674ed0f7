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

// Package batch assigns panels to a population of buildings.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/buildstock/panelsampler/panel"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

// Column names of building lists.
const (
	ColumnBuildingID            = "building_id"
	ColumnUnitType              = "geometry_unit_type"
	ColumnUnitsInBuilding       = "geometry_building_num_units"
	ColumnFloorArea             = "geometry_unit_cfa"
	ColumnYearBuilt             = "year_built"
	ColumnHeatingFuel           = "heating_system_fuel"
	ColumnCoolingSystem         = "cooling_system_type"
	ColumnHeatPump              = "heat_pump_type"
	ColumnHasWaterHeater        = "has_water_heater"
	ColumnWaterHeaterFuel       = "water_heater_fuel_type"
	ColumnHasClothesDryer       = "has_clothes_dryer"
	ColumnClothesDryerFuel      = "clothes_dryer_fuel_type"
	ColumnHasCookingRange       = "has_cooking_range"
	ColumnCookingRangeFuel      = "cooking_range_fuel_type"
	ColumnServiceRating         = "electric_panel_service_rating"
	ColumnBreakerSpacesHeadroom = "electric_panel_breaker_spaces_headroom"
)

type setter func(b *panel.Building, v string) error

func setString(field func(b *panel.Building) *string) setter {
	return func(b *panel.Building, v string) error {
		*field(b) = v
		return nil
	}
}

func setBool(field func(b *panel.Building) *bool) setter {
	return func(b *panel.Building, v string) error {
		x, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(b) = x
		return nil
	}
}

func setInt(field func(b *panel.Building) *int) setter {
	return func(b *panel.Building, v string) error {
		x, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(b) = x
		return nil
	}
}

var setters = map[string]setter{
	ColumnBuildingID: func(b *panel.Building, v string) error {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		b.ID = id
		return nil
	},
	ColumnUnitType:        setString(func(b *panel.Building) *string { return &b.UnitType }),
	ColumnUnitsInBuilding: setInt(func(b *panel.Building) *int { return &b.UnitsInBuilding }),
	ColumnFloorArea: func(b *panel.Building, v string) error {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		b.FloorArea = x
		return nil
	},
	ColumnYearBuilt:             setInt(func(b *panel.Building) *int { return &b.YearBuilt }),
	ColumnHeatingFuel:           setString(func(b *panel.Building) *string { return &b.HeatingFuel }),
	ColumnCoolingSystem:         setString(func(b *panel.Building) *string { return &b.CoolingSystemType }),
	ColumnHeatPump:              setString(func(b *panel.Building) *string { return &b.HeatPumpType }),
	ColumnHasWaterHeater:        setBool(func(b *panel.Building) *bool { return &b.HasWaterHeater }),
	ColumnWaterHeaterFuel:       setString(func(b *panel.Building) *string { return &b.WaterHeaterFuel }),
	ColumnHasClothesDryer:       setBool(func(b *panel.Building) *bool { return &b.HasClothesDryer }),
	ColumnClothesDryerFuel:      setString(func(b *panel.Building) *string { return &b.ClothesDryerFuel }),
	ColumnHasCookingRange:       setBool(func(b *panel.Building) *bool { return &b.HasCookingRange }),
	ColumnCookingRangeFuel:      setString(func(b *panel.Building) *string { return &b.CookingRangeFuel }),
	ColumnServiceRating:         setString(func(b *panel.Building) *string { return &b.ServiceRating }),
	ColumnBreakerSpacesHeadroom: setString(func(b *panel.Building) *string { return &b.BreakerSpacesHeadroom }),
}

// appliances pairs the presence column of an appliance with its fuel column.
var appliances = map[string]string{
	ColumnHasWaterHeater:  ColumnWaterHeaterFuel,
	ColumnHasClothesDryer: ColumnClothesDryerFuel,
	ColumnHasCookingRange: ColumnCookingRangeFuel,
}

// newBuilding builds a building from named field values. Missing fields
// keep their defaults; appliances without a presence field are present
// when a fuel other than none is given.
func newBuilding(fields map[string]string) (*panel.Building, error) {
	if _, found := fields[ColumnBuildingID]; !found {
		return nil, errors.Newf("missing %s", ColumnBuildingID)
	}
	b := &panel.Building{
		UnitsInBuilding:       1,
		CoolingSystemType:     panel.None,
		HeatPumpType:          panel.None,
		WaterHeaterFuel:       panel.None,
		ClothesDryerFuel:      panel.None,
		CookingRangeFuel:      panel.None,
		ServiceRating:         panel.Auto,
		BreakerSpacesHeadroom: panel.Auto,
	}
	for name, value := range fields {
		set, found := setters[name]
		if !found {
			return nil, errors.Newf("unknown field %q", name)
		}
		v := strings.TrimSpace(value)
		if v == "" {
			continue
		}
		if err := set(b, v); err != nil {
			return nil, errors.Wrapf(err, "invalid %s %q", name, value)
		}
	}
	for has, fuel := range appliances {
		if _, found := fields[has]; found {
			continue
		}
		if v := strings.ToLower(strings.TrimSpace(fields[fuel])); v != "" && v != panel.None {
			if err := setters[has](b, "true"); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// ReadBuildings reads a building list. Files ending in .yaml or .yml hold a
// buildings sequence of mappings; .csv and .tsv files have a header row of
// field names. A trailing .gz is decompressed. Building ids must be unique.
func ReadBuildings(path string) (buildings []*panel.Building, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open building list %s", path)
	}
	defer func() {
		err = errors.CombineErrors(err, file.Close())
	}()

	var r io.Reader = file
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".gz") {
		gz, gzErr := gzip.NewReader(file)
		if gzErr != nil {
			return nil, errors.Wrapf(gzErr, "cannot decompress building list %s", path)
		}
		defer func() {
			err = errors.CombineErrors(err, gz.Close())
		}()
		r = gz
		name = strings.TrimSuffix(name, ".gz")
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		buildings, err = readYAML(r)
	case ".csv":
		buildings, err = readCSV(r, ',')
	case ".tsv":
		buildings, err = readCSV(r, '\t')
	default:
		return nil, errors.Newf("unsupported building list format %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "building list %s", path)
	}
	return buildings, nil
}

func readCSV(r io.Reader, comma rune) ([]*panel.Building, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, err
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, found := setters[name]; !found {
			return nil, errors.Newf("line 1: unknown column %q", name)
		}
		header[i] = name
	}

	var buildings []*panel.Building
	seen := map[int64]int{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if len(record) != len(header) {
			return nil, errors.Newf("line %d: %d fields, header has %d", line, len(record), len(header))
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			fields[name] = record[i]
		}
		b, err := newBuilding(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if first, dup := seen[b.ID]; dup {
			return nil, errors.Newf("line %d: building %d already defined on line %d", line, b.ID, first)
		}
		seen[b.ID] = line
		buildings = append(buildings, b)
	}
	return buildings, nil
}

type buildingList struct {
	Buildings []map[string]any `yaml:"buildings"`
}

func readYAML(r io.Reader) ([]*panel.Building, error) {
	var list buildingList
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&list); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty file")
		}
		return nil, err
	}

	buildings := make([]*panel.Building, 0, len(list.Buildings))
	seen := map[int64]int{}
	for i, entry := range list.Buildings {
		fields := make(map[string]string, len(entry))
		for name, value := range entry {
			switch v := value.(type) {
			case nil:
				continue
			case map[string]any, []any:
				return nil, errors.Newf("building #%d: field %s must be a scalar", i+1, name)
			default:
				fields[name] = fmt.Sprint(v)
			}
		}
		b, err := newBuilding(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "building #%d", i+1)
		}
		if first, dup := seen[b.ID]; dup {
			return nil, errors.Newf("building #%d: building %d already defined by building #%d", i+1, b.ID, first)
		}
		seen[b.ID] = i + 1
		buildings = append(buildings, b)
	}
	return buildings, nil
}
