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
	"fmt"
	"math"
	"strings"

	"github.com/buildstock/panelsampler/table"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gonum.org/v1/gonum/floats"
)

// sumTolerance is the deviation from one up to which a row counts as normalised.
const sumTolerance = 1e-6

// RowSum is the weight total of one table row.
type RowSum struct {
	Key []string
	Sum float64
}

// Inspection describes the shape and weight sums of a probability table.
type Inspection struct {
	Source     string
	KeyFields  []string
	Labels     []string
	Rows       int
	MinSum     float64
	MaxSum     float64
	Duplicates [][]string
	// Unnormalized rows do not sum to one. Draws with a uniform number above
	// their sum select the last label.
	Unnormalized []RowSum
}

// InspectTable computes the row sums of a table and collects its anomalies.
func InspectTable(t *table.Table) Inspection {
	in := Inspection{
		Source:     t.Source,
		KeyFields:  t.KeyFields,
		Labels:     t.Labels,
		Rows:       t.Len(),
		Duplicates: t.Duplicates(),
	}
	if t.Len() == 0 {
		return in
	}

	sums := make([]float64, t.Len())
	for i, row := range t.Rows {
		sums[i] = floats.Sum(row.Weights)
		if math.Abs(sums[i]-1) > sumTolerance {
			in.Unnormalized = append(in.Unnormalized, RowSum{Key: row.Key, Sum: sums[i]})
		}
	}
	in.MinSum = floats.Min(sums)
	in.MaxSum = floats.Max(sums)
	return in
}

// RenderInspection renders an inspection as text tables.
func RenderInspection(in Inspection) string {
	overview := newSectionWriter()
	overview.AppendRows([]prettytable.Row{
		{"Table", in.Source},
		{"Key columns", strings.Join(in.KeyFields, ", ")},
		{"Outcome labels", strings.Join(in.Labels, ", ")},
		{"Rows", in.Rows},
		{"Row weight sums", fmt.Sprintf("%.6g to %.6g", in.MinSum, in.MaxSum)},
		{"Duplicate keys", len(in.Duplicates)},
		{"Unnormalized rows", len(in.Unnormalized)},
	})

	var b strings.Builder
	b.WriteString(overview.Render())
	if len(in.Duplicates) > 0 {
		t := newSectionWriter()
		t.AppendHeader(prettytable.Row{"Duplicate keys (first row is used)"})
		for _, key := range in.Duplicates {
			t.AppendRow(prettytable.Row{strings.Join(key, " | ")})
		}
		b.WriteString("\n")
		b.WriteString(t.Render())
	}
	if len(in.Unnormalized) > 0 {
		t := newSectionWriter()
		t.AppendHeader(prettytable.Row{"Rows not summing to one", "Sum"})
		for _, r := range in.Unnormalized {
			t.AppendRow(prettytable.Row{strings.Join(r.Key, " | "), fmt.Sprintf("%.6g", r.Sum)})
		}
		b.WriteString("\n")
		b.WriteString(t.Render())
	}
	return b.String()
}

// newSectionWriter returns an untitled table whose headers keep their case.
// Titles wrap at the table width, headers widen their column instead.
func newSectionWriter() prettytable.Writer {
	t := prettytable.NewWriter()
	t.SetStyle(prettytable.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}
