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
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// newCountChart creates a bar chart of outcome counts.
func newCountChart(title, subtitle string, cs []Count) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))

	labels := make([]string, len(cs))
	items := make([]opts.BarData, len(cs))
	for i, c := range cs {
		labels[i] = c.Label
		items[i] = opts.BarData{Value: c.Count}
	}
	chart.SetXAxis(labels).AddSeries("Buildings", items)
	return chart
}

// NewCapacityChart creates a bar chart of the rated capacity bins of a run.
func NewCapacityChart(s Summary) *charts.Bar {
	return newCountChart("Rated Panel Capacity", "run "+s.RunID, s.CapacityBins)
}

// NewHeadroomChart creates a bar chart of the breaker space headroom of a run.
func NewHeadroomChart(s Summary) *charts.Bar {
	return newCountChart("Breaker Space Headroom", "run "+s.RunID, s.Headroom)
}

// WriteCharts renders a page with the distribution charts of a run to path.
func WriteCharts(path string, s Summary) (err error) {
	page := components.NewPage()
	page.PageTitle = "Panel Sampler: run " + s.RunID
	page.AddCharts(NewCapacityChart(s), NewHeadroomChart(s))

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create chart file %s", path)
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()
	if err := page.Render(f); err != nil {
		return errors.Wrapf(err, "cannot render charts to %s", path)
	}
	return nil
}
