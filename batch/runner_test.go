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

package batch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/buildstock/panelsampler/config"
	"github.com/buildstock/panelsampler/logger"
	"github.com/buildstock/panelsampler/panel"
	"github.com/buildstock/panelsampler/store"
	"github.com/buildstock/panelsampler/table"
	"github.com/buildstock/panelsampler/utils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSampler(t *testing.T) *panel.Sampler {
	t.Helper()
	opts := table.Options{KeyColumns: 2}
	capacity := utils.Must(table.LoadFile(filepath.Join("testdata", "capacity.csv"), opts))
	headroom := utils.Must(table.LoadFile(filepath.Join("testdata", "headroom.csv"), opts))
	s, err := panel.NewSampler(capacity, headroom, nil)
	require.NoError(t, err)
	return s
}

func readTestBuildings(t *testing.T) []*panel.Building {
	t.Helper()
	buildings, err := ReadBuildings(filepath.Join("testdata", "buildings.csv"))
	require.NoError(t, err)
	return buildings
}

func newTestRunner(t *testing.T, cfg *config.Config, s store.Store) *Runner {
	t.Helper()
	return NewRunner(cfg, newTestSampler(t), s, logger.NewLogger("critical", "batch-test"))
}

func unsupportedBuilding(id int64) *panel.Building {
	return &panel.Building{
		ID:                    id,
		UnitType:              "houseboat",
		UnitsInBuilding:       1,
		HeatingFuel:           "electricity",
		ServiceRating:         panel.Auto,
		BreakerSpacesHeadroom: panel.Auto,
	}
}

func TestRunner_RunStoresAssignments(t *testing.T) {
	s, err := store.NewSqliteStore(filepath.Join(t.TempDir(), "panels.db"))
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	cfg := &config.Config{Workers: 4, CapacityTable: "capacity.csv", HeadroomTable: "headroom.csv"}
	res, err := newTestRunner(t, cfg, s).Run(context.Background(), readTestBuildings(t))
	require.NoError(t, err)
	require.NotEmpty(t, res.RunID)
	require.Len(t, res.Assignments, 8)
	assert.Empty(t, res.Failed)
	for i, a := range res.Assignments {
		assert.Equal(t, int64(i+1), a.BuildingID)
	}

	run, err := store.FindRun(s, "")
	require.NoError(t, err)
	assert.Equal(t, res.RunID, run.ID)
	assert.Equal(t, 8, run.Buildings)
	assert.Equal(t, "capacity.csv", run.CapacityTable)

	stored, err := s.Assignments(res.RunID)
	require.NoError(t, err)
	require.Len(t, stored, 8)
	for i, a := range stored {
		assert.Equal(t, res.Assignments[i], a.Panel())
	}
}

func TestRunner_HonoursOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any())
	s.EXPECT().Put(gomock.Any()).Times(8)
	s.EXPECT().Flush()

	res, err := newTestRunner(t, &config.Config{Workers: 2}, s).Run(context.Background(), readTestBuildings(t))
	require.NoError(t, err)

	fifth := res.Assignments[4]
	assert.Equal(t, "200", fifth.CapacityBin)
	assert.Equal(t, 200.0, fifth.CapacityAmps)
	assert.Equal(t, panel.UserSpecified, fifth.CapacitySource)
	assert.Equal(t, panel.Sampled, fifth.HeadroomSource)

	sixth := res.Assignments[5]
	assert.Equal(t, panel.Sampled, sixth.CapacitySource)
	assert.Equal(t, 8, sixth.BreakerSpacesHeadroom)
	assert.Equal(t, panel.UserSpecified, sixth.HeadroomSource)
}

func TestRunner_ResultDoesNotDependOnWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any()).AnyTimes()
	s.EXPECT().Put(gomock.Any()).AnyTimes()
	s.EXPECT().Flush().AnyTimes()

	var buildings []*panel.Building
	for rep := 0; rep < 25; rep++ {
		for _, b := range readTestBuildings(t) {
			c := *b
			c.ID = int64(len(buildings)) * 7919
			buildings = append(buildings, &c)
		}
	}

	sequential, err := newTestRunner(t, &config.Config{Workers: 1}, s).Run(context.Background(), buildings)
	require.NoError(t, err)
	parallel, err := newTestRunner(t, &config.Config{Workers: 8}, s).Run(context.Background(), buildings)
	require.NoError(t, err)

	assert.NotEqual(t, sequential.RunID, parallel.RunID)
	assert.Equal(t, sequential.Assignments, parallel.Assignments)
}

func TestRunner_UsesConfiguredRunID(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any()).Do(func(run store.Run) {
		assert.Equal(t, "nightly", run.ID)
	})
	s.EXPECT().Put(gomock.Any()).Do(func(a store.Assignment) {
		assert.Equal(t, "nightly", a.RunID)
	}).Times(8)
	s.EXPECT().Flush()

	res, err := newTestRunner(t, &config.Config{Workers: 3, RunID: "nightly"}, s).Run(context.Background(), readTestBuildings(t))
	require.NoError(t, err)
	assert.Equal(t, "nightly", res.RunID)
}

func TestRunner_FailureAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any())
	s.EXPECT().Put(gomock.Any()).AnyTimes()
	s.EXPECT().Flush()

	buildings := append(readTestBuildings(t), unsupportedBuilding(99))
	res, err := newTestRunner(t, &config.Config{Workers: 2}, s).Run(context.Background(), buildings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot sample building 99")
	assert.Contains(t, err.Error(), "aborted")
	assert.Equal(t, []int64{99}, res.Failed)
}

func TestRunner_ContinueOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any())
	s.EXPECT().Put(gomock.Any()).Times(8)
	s.EXPECT().Flush()

	buildings := append([]*panel.Building{unsupportedBuilding(100)}, readTestBuildings(t)...)
	buildings = append(buildings, unsupportedBuilding(42))

	cfg := &config.Config{Workers: 4, ContinueOnFailure: true}
	res, err := newTestRunner(t, cfg, s).Run(context.Background(), buildings)
	require.NoError(t, err)
	assert.Len(t, res.Assignments, 8)
	assert.Equal(t, []int64{42, 100}, res.Failed)
}

func TestRunner_MaxNumErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any()).Times(2)
	s.EXPECT().Put(gomock.Any()).AnyTimes()
	s.EXPECT().Flush().Times(2)

	buildings := append(readTestBuildings(t), unsupportedBuilding(100), unsupportedBuilding(101))

	cfg := &config.Config{Workers: 1, ContinueOnFailure: true, MaxNumErrors: 3}
	res, err := newTestRunner(t, cfg, s).Run(context.Background(), buildings)
	require.NoError(t, err)
	assert.Len(t, res.Failed, 2)

	cfg.MaxNumErrors = 2
	_, err = newTestRunner(t, cfg, s).Run(context.Background(), buildings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many failed buildings: the run stops after 2 failures")
}

func TestRunner_BeginRunFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any()).Return(errors.New("database is locked"))

	_, err := newTestRunner(t, &config.Config{Workers: 1}, s).Run(context.Background(), readTestBuildings(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestRunner_PutFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any())
	s.EXPECT().Put(gomock.Any()).Return(errors.New("disk full"))
	s.EXPECT().Flush()

	_, err := newTestRunner(t, &config.Config{Workers: 2}, s).Run(context.Background(), readTestBuildings(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "cannot store assignment")
}

func TestRunner_FlushFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any())
	s.EXPECT().Put(gomock.Any()).Times(8)
	s.EXPECT().Flush().Return(errors.New("disk full"))

	_, err := newTestRunner(t, &config.Config{Workers: 2}, s).Run(context.Background(), readTestBuildings(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot flush assignments")
}

func TestRunner_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := store.NewMockStore(ctrl)
	s.EXPECT().BeginRun(gomock.Any())
	s.EXPECT().Put(gomock.Any()).AnyTimes()
	s.EXPECT().Flush()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestRunner(t, &config.Config{Workers: 2}, s).Run(ctx, readTestBuildings(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
