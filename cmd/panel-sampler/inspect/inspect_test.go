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

package inspect

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/buildstock/panelsampler/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runInspect(t *testing.T, args []string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := cli.NewApp()
	app.Writer = &out
	app.Commands = []*cli.Command{&Command}
	err := app.Run(append([]string{"panel-sampler"}, args...))
	return out.String(), err
}

func TestInspectCommand_ReportsAnomalies(t *testing.T) {
	args := utils.NewArgs(Command.Name).
		Flag("log", "critical").
		Arg(filepath.Join("testdata", "capacity_options.csv")).
		Build()

	out, err := runInspect(t, args)
	require.NoError(t, err)
	assert.Contains(t, out, "geometry_building_type, heating_fuel")
	assert.Contains(t, out, "<100, 101-124, 126-199, 200, 201+")
	assert.Contains(t, out, "Duplicate keys (first row is used)")
	assert.Contains(t, out, "single-family-detached | electricity")
	assert.Contains(t, out, "Rows not summing to one")
	assert.Contains(t, out, "0.9")
}

func TestInspectCommand_ConfiguredKeyColumns(t *testing.T) {
	args := utils.NewArgs(Command.Name).
		Flag("log", "critical").
		Flag("key-columns", 2).
		Arg(filepath.Join("testdata", "by_region.csv")).
		Build()

	out, err := runInspect(t, args)
	require.NoError(t, err)
	assert.Contains(t, out, "census_region, heating_fuel")
	assert.NotContains(t, out, "first row is used")
	assert.NotContains(t, out, "Rows not summing to one")
}

func TestInspectCommand_Errors(t *testing.T) {
	_, err := runInspect(t, utils.NewArgs(Command.Name).Build())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one argument")

	_, err = runInspect(t, utils.NewArgs(Command.Name).Arg(filepath.Join("testdata", "by_region.csv")).Build())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Option=")
}
