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
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Capacity bins of the rated capacity table.
const (
	CapacityBelow100 = "<100"
	Capacity101To124 = "101-124"
	Capacity126To199 = "126-199"
	CapacityAbove200 = "201+"
)

// TranslationContext holds the buckets a capacity bin translation depends on.
type TranslationContext struct {
	PrimaryFuel string // heating fuel bucket
	FloorArea   string // floor area bucket
}

// BucketToValue translates a capacity bin into a representative amperage.
// Labels outside the fixed bins must be numeric literals.
func BucketToValue(label string, ctx TranslationContext) (float64, error) {
	switch label {
	case CapacityBelow100:
		if ctx.PrimaryFuel == Electricity {
			return 90, nil
		}
		return 60, nil
	case Capacity101To124:
		return 120, nil
	case Capacity126To199:
		return 150, nil
	case CapacityAbove200:
		switch ctx.FloorArea {
		case "3000-3999":
			return 300, nil
		case "4000+":
			return 400, nil
		}
		return 250, nil
	}
	return parseNumber(label)
}

func parseNumber(label string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(label), 64)
	if err != nil {
		return 0, &TranslationError{Label: label, Cause: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &TranslationError{Label: label, Cause: errors.New("not a finite number")}
	}
	return v, nil
}

// HeadroomToValue translates a breaker space headroom label into a count.
func HeadroomToValue(label string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return 0, &TranslationError{Label: label, Cause: err}
	}
	if n < 0 {
		return 0, &TranslationError{Label: label, Cause: errors.New("negative breaker space count")}
	}
	return n, nil
}

// CapacityBinForAmps returns the capacity bin a rated amperage falls into.
func CapacityBinForAmps(amps float64) string {
	switch {
	case amps < 100:
		return CapacityBelow100
	case amps == 100:
		return "100"
	case amps < 125:
		return Capacity101To124
	case amps == 125:
		return "125"
	case amps < 200:
		return Capacity126To199
	case amps == 200:
		return "200"
	}
	return CapacityAbove200
}
