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
	"time"

	"github.com/buildstock/panelsampler/store"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderRuns lists the runs of a store, oldest first.
func RenderRuns(runs []store.Run) string {
	t := newTableWriter("Runs")
	t.AppendHeader(table.Row{"Run", "Created", "Buildings", "Capacity table", "Headroom table"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.ID, r.CreatedAt.Format(time.RFC3339), r.Buildings, r.CapacityTable, r.HeadroomTable})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	return t.Render()
}
