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

package runs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/buildstock/panelsampler/panel"
	"github.com/buildstock/panelsampler/store"
	"github.com/buildstock/panelsampler/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args []string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := cli.NewApp()
	app.Writer = &out
	app.Commands = []*cli.Command{&ListCommand, &VisualizeCommand}
	err := app.Run(append([]string{"panel-sampler"}, args...))
	return out.String(), err
}

// createStore writes two runs; the second one lacks an assignment.
func createStore(t *testing.T, kind string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panels")
	s, err := store.Open(kind, path)
	require.NoError(t, err)

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"morning", "evening"} {
		require.NoError(t, s.BeginRun(store.Run{
			ID:            id,
			CreatedAt:     created.Add(time.Duration(i) * 8 * time.Hour),
			CapacityTable: "capacity.csv",
			HeadroomTable: "headroom.csv",
			Buildings:     3 + i,
		}))
		for b := int64(0); b < 3; b++ {
			require.NoError(t, s.Put(store.FromPanel(id, panel.Assignment{
				BuildingID:            b + 1,
				CapacityBin:           "126-199",
				CapacityAmps:          150,
				CapacitySource:        panel.Sampled,
				BreakerSpacesHeadroom: int(b) + 2*i,
				HeadroomSource:        panel.Sampled,
			})))
		}
	}
	require.NoError(t, s.Close())
	return path
}

func TestListCommand(t *testing.T) {
	for _, kind := range []string{store.SqliteKind, store.LevelDbKind} {
		t.Run(kind, func(t *testing.T) {
			path := createStore(t, kind)
			out, err := runApp(t, utils.NewArgs(ListCommand.Name).
				Flag("log", "critical").
				Flag("store-type", kind).
				Arg(path).
				Build())
			require.NoError(t, err)
			assert.Contains(t, out, "morning")
			assert.Contains(t, out, "2024-03-01T17:00:00Z")
		})
	}
}

func TestVisualizeCommand_LatestRun(t *testing.T) {
	path := createStore(t, store.SqliteKind)
	chartFile := filepath.Join(t.TempDir(), "charts.html")

	out, err := runApp(t, utils.NewArgs(VisualizeCommand.Name).
		Flag("log", "critical").
		Flag("chart-file", chartFile).
		Arg(path).
		Build())
	require.NoError(t, err)
	assert.Contains(t, out, "Run evening")
	assert.Contains(t, out, "Failed buildings")

	charts, err := os.ReadFile(chartFile)
	require.NoError(t, err)
	assert.Contains(t, string(charts), "Breaker Space Headroom")
}

func TestVisualizeCommand_SelectedRunQuiet(t *testing.T) {
	path := createStore(t, store.SqliteKind)
	dir := t.TempDir()
	summaryFile := filepath.Join(dir, "summary.txt")
	chartFile := filepath.Join(dir, "morning.html")

	out, err := runApp(t, utils.NewArgs(VisualizeCommand.Name).
		Flag("log", "critical").
		Flag("run-id", "morning").
		Flag("chart-file", chartFile).
		Flag("summary-file", summaryFile).
		Flag("quiet", true).
		Arg(path).
		Build())
	require.NoError(t, err)
	assert.Empty(t, out)

	summary, err := os.ReadFile(summaryFile)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Run morning")
	assert.FileExists(t, chartFile)
}

func TestVisualizeCommand_Errors(t *testing.T) {
	path := createStore(t, store.SqliteKind)

	_, err := runApp(t, utils.NewArgs(VisualizeCommand.Name).
		Flag("log", "critical").
		Flag("run-id", "noon").
		Arg(path).
		Build())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnknownRun)

	_, err = runApp(t, utils.NewArgs(VisualizeCommand.Name).
		Flag("log", "critical").
		Arg(filepath.Join(t.TempDir(), "missing.db")).
		Build())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open store")
}
