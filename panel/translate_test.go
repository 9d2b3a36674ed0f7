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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketToValue_FixedBins(t *testing.T) {
	tests := []struct {
		label string
		ctx   TranslationContext
		want  float64
	}{
		{"<100", TranslationContext{PrimaryFuel: Electricity}, 90},
		{"<100", TranslationContext{PrimaryFuel: NonElectricity}, 60},
		{"101-124", TranslationContext{}, 120},
		{"126-199", TranslationContext{}, 150},
		{"201+", TranslationContext{FloorArea: "3000-3999"}, 300},
		{"201+", TranslationContext{FloorArea: "4000+"}, 400},
		{"201+", TranslationContext{FloorArea: "1500-1999"}, 250},
		{"201+", TranslationContext{}, 250},
	}
	for _, test := range tests {
		got, err := BucketToValue(test.label, test.ctx)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "%s %+v", test.label, test.ctx)
	}
}

func TestBucketToValue_NumericLabels(t *testing.T) {
	for label, want := range map[string]float64{"100": 100, "125": 125, "200": 200, "225": 225, "250": 250, "400.5": 400.5} {
		got, err := BucketToValue(label, TranslationContext{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBucketToValue_TranslationError(t *testing.T) {
	for _, label := range []string{"large", "200-300", "", "NaN", "Inf"} {
		_, err := BucketToValue(label, TranslationContext{PrimaryFuel: Electricity})
		var translationErr *TranslationError
		require.True(t, errors.As(err, &translationErr), "label %q", label)
		assert.Equal(t, label, translationErr.Label)
	}
}

func TestHeadroomToValue(t *testing.T) {
	n, err := HeadroomToValue("0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	n, err = HeadroomToValue("31")
	require.NoError(t, err)
	assert.Equal(t, 31, n)

	for _, label := range []string{"-1", "3.5", "many"} {
		_, err := HeadroomToValue(label)
		var translationErr *TranslationError
		require.True(t, errors.As(err, &translationErr), "label %q", label)
	}
}

func TestCapacityBinForAmps(t *testing.T) {
	tests := map[float64]string{
		60:    "<100",
		99.9:  "<100",
		100:   "100",
		110:   "101-124",
		125:   "125",
		150:   "126-199",
		200:   "200",
		200.5: "201+",
		400:   "201+",
	}
	for amps, want := range tests {
		assert.Equal(t, want, CapacityBinForAmps(amps), "%v A", amps)
	}
}
