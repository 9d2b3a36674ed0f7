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
	"strings"
	"testing"
	"time"

	"github.com/buildstock/panelsampler/store"
	"github.com/stretchr/testify/assert"
)

func TestRenderRuns(t *testing.T) {
	out := RenderRuns([]store.Run{
		{ID: "first", CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), Buildings: 12, CapacityTable: "capacity.csv", HeadroomTable: "headroom.csv"},
		{ID: "second", CreatedAt: time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC), Buildings: 3000, CapacityTable: "capacity.tsv.gz", HeadroomTable: "headroom.tsv.gz"},
	})
	assert.Contains(t, out, "Runs")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "2024-05-02T08:30:00Z")
	assert.Contains(t, out, "3000")
	assert.Contains(t, out, "headroom.tsv.gz")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

