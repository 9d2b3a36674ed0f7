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

package report

import (
	"testing"

	"github.com/buildstock/panelsampler/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssignments() []panel.Assignment {
	return []panel.Assignment{
		{BuildingID: 1, CapacityBin: "201+", CapacityAmps: 250, CapacitySource: panel.Sampled, BreakerSpacesHeadroom: 2, HeadroomSource: panel.Sampled},
		{BuildingID: 2, CapacityBin: "<100", CapacityAmps: 60, CapacitySource: panel.Sampled, BreakerSpacesHeadroom: 10, HeadroomSource: panel.Sampled},
		{BuildingID: 3, CapacityBin: "101-124", CapacityAmps: 120, CapacitySource: panel.Sampled, BreakerSpacesHeadroom: 2, HeadroomSource: panel.UserSpecified},
		{BuildingID: 4, CapacityBin: "200", CapacityAmps: 200, CapacitySource: panel.UserSpecified, BreakerSpacesHeadroom: 0, HeadroomSource: panel.Sampled},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize("r1", testAssignments(), 2)

	assert.Equal(t, "r1", s.RunID)
	assert.Equal(t, 4, s.Buildings)
	assert.Equal(t, 2, s.Failures)
	assert.Equal(t, 1, s.UserCapacity)
	assert.Equal(t, 1, s.UserHeadroom)

	assert.Equal(t, []Count{
		{Label: "<100", Count: 1, Share: 0.25},
		{Label: "101-124", Count: 1, Share: 0.25},
		{Label: "200", Count: 1, Share: 0.25},
		{Label: "201+", Count: 1, Share: 0.25},
	}, s.CapacityBins)
	assert.Equal(t, []Count{
		{Label: "0", Count: 1, Share: 0.25},
		{Label: "2", Count: 2, Share: 0.5},
		{Label: "10", Count: 1, Share: 0.25},
	}, s.Headroom)

	assert.InDelta(t, 157.5, s.MeanAmps, 1e-9)
	assert.InDelta(t, 3.5, s.MeanHeadroom, 1e-9)
	assert.Equal(t, 60.0, s.MinAmps)
	assert.Equal(t, 250.0, s.MaxAmps)
	// sample standard deviation of 250, 60, 120, 200
	assert.InDelta(t, 84.212, s.StdDevAmps, 1e-3)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize("r", nil, 3)
	assert.Equal(t, 0, s.Buildings)
	assert.Equal(t, 3, s.Failures)
	assert.Empty(t, s.CapacityBins)
	assert.NotPanics(t, func() { RenderSummary(s) })
}

func TestSortLabels(t *testing.T) {
	labels := []string{"250", "201+", "n/a", "<100", "126-199", "100", "101-124", "125", "200", "225", "other"}
	SortLabels(labels)
	assert.Equal(t, []string{"<100", "100", "101-124", "125", "126-199", "200", "201+", "225", "250", "n/a", "other"}, labels)

	headroom := []string{"10", "2", "31", "0", "-1"}
	SortLabels(headroom)
	assert.Equal(t, []string{"-1", "0", "2", "10", "31"}, headroom)
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(Summarize("r1", testAssignments(), 1))
	require.NotEmpty(t, out)
	for _, want := range []string{"Run r1", "Assigned buildings", "Failed buildings", "Rated capacity", "Breaker space headroom", "101-124", "25.0%", "50.0%", "mean 157.5"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderAssignment(t *testing.T) {
	out := RenderAssignment(panel.Assignment{BuildingID: 42, CapacityBin: "126-199", CapacityAmps: 150, CapacitySource: panel.Sampled, BreakerSpacesHeadroom: 7, HeadroomSource: panel.UserSpecified})
	for _, want := range []string{"Building 42", "126-199", "150", "7", "sampled", "user"} {
		assert.Contains(t, out, want)
	}
}
