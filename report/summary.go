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

// Package report summarizes panel assignments and renders them as text
// tables and charts.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/buildstock/panelsampler/panel"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Count is the number of buildings with one outcome.
type Count struct {
	Label string
	Count int
	Share float64
}

// Summary describes the distribution of the assignments of a run.
type Summary struct {
	RunID     string
	Buildings int
	Failures  int

	CapacityBins []Count
	Headroom     []Count

	UserCapacity int // buildings with a user specified rating
	UserHeadroom int // buildings with a user specified headroom

	MeanAmps       float64
	StdDevAmps     float64
	MinAmps        float64
	MaxAmps        float64
	MeanHeadroom   float64
	StdDevHeadroom float64
}

// Summarize computes the outcome counts and moments of a run.
func Summarize(runID string, assignments []panel.Assignment, failures int) Summary {
	s := Summary{RunID: runID, Buildings: len(assignments), Failures: failures}
	if len(assignments) == 0 {
		return s
	}

	bins := map[string]int{}
	spaces := map[string]int{}
	amps := make([]float64, len(assignments))
	headroom := make([]float64, len(assignments))
	for i, a := range assignments {
		bins[a.CapacityBin]++
		spaces[strconv.Itoa(a.BreakerSpacesHeadroom)]++
		amps[i] = a.CapacityAmps
		headroom[i] = float64(a.BreakerSpacesHeadroom)
		if a.CapacitySource == panel.UserSpecified {
			s.UserCapacity++
		}
		if a.HeadroomSource == panel.UserSpecified {
			s.UserHeadroom++
		}
	}

	s.CapacityBins = counts(bins, len(assignments))
	s.Headroom = counts(spaces, len(assignments))
	s.MeanAmps, s.StdDevAmps = stat.MeanStdDev(amps, nil)
	s.MeanHeadroom, s.StdDevHeadroom = stat.MeanStdDev(headroom, nil)
	s.MinAmps = floats.Min(amps)
	s.MaxAmps = floats.Max(amps)
	return s
}

func counts(m map[string]int, total int) []Count {
	labels := maps.Keys(m)
	SortLabels(labels)
	res := make([]Count, len(labels))
	for i, l := range labels {
		res[i] = Count{Label: l, Count: m[l], Share: float64(m[l]) / float64(total)}
	}
	return res
}

// SortLabels orders outcome labels by the amount they stand for, so that
// <100 precedes 100, 101-124 and 201+. Labels without a number go last.
func SortLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		oi, okI := labelOrder(labels[i])
		oj, okJ := labelOrder(labels[j])
		switch {
		case okI && okJ && oi != oj:
			return oi < oj
		case okI != okJ:
			return okI
		}
		return labels[i] < labels[j]
	})
}

// labelOrder is the lower bound of a numeric, range, open or capped label.
func labelOrder(label string) (float64, bool) {
	l := strings.TrimSpace(label)
	offset := 0.0
	switch {
	case strings.HasPrefix(l, "<"):
		l = l[1:]
		offset = -0.5
	case strings.HasSuffix(l, "+"):
		l = l[:len(l)-1]
	default:
		if lo, _, found := strings.Cut(l, "-"); found && lo != "" {
			l = lo
		}
	}
	v, err := strconv.ParseFloat(l, 64)
	if err != nil {
		return 0, false
	}
	return v + offset, true
}

func newTableWriter(title string) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	return t
}

func renderCounts(title, column string, cs []Count, total int) string {
	t := newTableWriter(title)
	t.AppendHeader(table.Row{column, "Buildings", "Share"})
	for _, c := range cs {
		t.AppendRow(table.Row{c.Label, c.Count, fmt.Sprintf("%.1f%%", 100*c.Share)})
	}
	t.AppendFooter(table.Row{"Total", total, ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return t.Render()
}

// RenderSummary renders the summary of a run as text tables.
func RenderSummary(s Summary) string {
	overview := newTableWriter("Run " + s.RunID)
	overview.AppendRows([]table.Row{
		{"Assigned buildings", s.Buildings},
		{"Failed buildings", s.Failures},
		{"User specified ratings", s.UserCapacity},
		{"User specified headroom", s.UserHeadroom},
	})
	if s.Buildings > 0 {
		overview.AppendRows([]table.Row{
			{"Rated capacity (A)", fmt.Sprintf("mean %.1f, std dev %.1f, range %.0f to %.0f", s.MeanAmps, s.StdDevAmps, s.MinAmps, s.MaxAmps)},
			{"Breaker space headroom", fmt.Sprintf("mean %.2f, std dev %.2f", s.MeanHeadroom, s.StdDevHeadroom)},
		})
	}

	var b strings.Builder
	b.WriteString(overview.Render())
	if s.Buildings > 0 {
		b.WriteString("\n")
		b.WriteString(renderCounts("Rated capacity", "Capacity bin", s.CapacityBins, s.Buildings))
		b.WriteString("\n")
		b.WriteString(renderCounts("Breaker space headroom", "Free spaces", s.Headroom, s.Buildings))
	}
	return b.String()
}

// RenderAssignment renders the panel assignment of a single building.
func RenderAssignment(a panel.Assignment) string {
	t := newTableWriter(fmt.Sprintf("Building %d", a.BuildingID))
	t.AppendHeader(table.Row{"Property", "Value", "Source"})
	t.AppendRows([]table.Row{
		{"Capacity bin", a.CapacityBin, a.CapacitySource},
		{"Rated capacity (A)", strconv.FormatFloat(a.CapacityAmps, 'f', -1, 64), a.CapacitySource},
		{"Breaker space headroom", a.BreakerSpacesHeadroom, a.HeadroomSource},
	})
	return t.Render()
}
