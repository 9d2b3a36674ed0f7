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

package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSqliteStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mockDb, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mockDb.ExpectExec("CREATE TABLE IF NOT EXISTS runs").WillReturnResult(sqlmock.NewResult(0, 0))
	s, err := newSqliteStore(sqlx.NewDb(db, "sqlite3"))
	require.NoError(t, err)
	return s, mockDb
}

func newTempSqliteStore(t *testing.T) Store {
	t.Helper()
	s, err := NewSqliteStore(filepath.Join(t.TempDir(), "panels.db"))
	require.NoError(t, err)
	return s
}

func TestSqliteStore_SchemaFailure(t *testing.T) {
	db, mockDb, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockDb.ExpectExec("CREATE TABLE").WillReturnError(errors.New("read-only file system"))
	_, err = newSqliteStore(sqlx.NewDb(db, "sqlite3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create assignment schema")
	assert.NoError(t, mockDb.ExpectationsWereMet())
}

func TestSqliteStore_BeginRunInsertsRun(t *testing.T) {
	s, mockDb := newMockSqliteStore(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockDb.ExpectExec("INSERT INTO runs").
		WithArgs("run-1", created, "capacity.csv", "headroom.csv", 25).
		WillReturnResult(sqlmock.NewResult(1, 1))
	err := s.BeginRun(Run{ID: "run-1", CreatedAt: created, CapacityTable: "capacity.csv", HeadroomTable: "headroom.csv", Buildings: 25})
	require.NoError(t, err)

	assert.Error(t, s.BeginRun(Run{}))
	assert.NoError(t, mockDb.ExpectationsWereMet())
}

func TestSqliteStore_FlushWritesBufferInOneTransaction(t *testing.T) {
	s, mockDb := newMockSqliteStore(t)

	require.NoError(t, s.Put(Assignment{RunID: "r", BuildingID: 1, CapacityBin: "101-124", CapacityAmps: 120, CapacitySource: "sampled", BreakerSpacesHeadroom: 3, HeadroomSource: "sampled"}))
	require.NoError(t, s.Put(Assignment{RunID: "r", BuildingID: 2, CapacityBin: "200", CapacityAmps: 200, CapacitySource: "user", BreakerSpacesHeadroom: 0, HeadroomSource: "sampled"}))

	mockDb.ExpectBegin()
	mockDb.ExpectExec("INSERT OR REPLACE INTO assignments").
		WithArgs("r", 1, "101-124", 120.0, "sampled", 3, "sampled").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mockDb.ExpectExec("INSERT OR REPLACE INTO assignments").
		WithArgs("r", 2, "200", 200.0, "user", 0, "sampled").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mockDb.ExpectCommit()

	require.NoError(t, s.Flush())
	assert.Empty(t, s.buffer)
	// nothing buffered, nothing written
	require.NoError(t, s.Flush())
	assert.NoError(t, mockDb.ExpectationsWereMet())
}

func TestSqliteStore_FlushRollsBackOnError(t *testing.T) {
	s, mockDb := newMockSqliteStore(t)
	require.NoError(t, s.Put(Assignment{RunID: "r", BuildingID: 1}))

	mockDb.ExpectBegin()
	mockDb.ExpectExec("INSERT OR REPLACE INTO assignments").WillReturnError(errors.New("constraint failed"))
	mockDb.ExpectRollback()

	err := s.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint failed")
	assert.Len(t, s.buffer, 1)
	assert.NoError(t, mockDb.ExpectationsWereMet())
}

func TestSqliteStore_RunsScansRows(t *testing.T) {
	s, mockDb := newMockSqliteStore(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockDb.ExpectQuery("SELECT id, created_at, capacity_table, headroom_table, buildings FROM runs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "capacity_table", "headroom_table", "buildings"}).
			AddRow("run-1", created, "c.csv", "h.csv", 10))

	runs, err := s.Runs()
	require.NoError(t, err)
	assert.Equal(t, []Run{{ID: "run-1", CreatedAt: created, CapacityTable: "c.csv", HeadroomTable: "h.csv", Buildings: 10}}, runs)
	assert.NoError(t, mockDb.ExpectationsWereMet())
}

func TestSqliteStore_RoundTrip(t *testing.T) {
	s := newTempSqliteStore(t)
	first := Run{ID: "first", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), CapacityTable: "c.csv", HeadroomTable: "h.csv", Buildings: 3}
	second := Run{ID: "second", CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Buildings: 1}
	require.NoError(t, s.BeginRun(second))
	require.NoError(t, s.BeginRun(first))
	assert.Error(t, s.BeginRun(first), "run ids are unique")

	for _, id := range []int64{30, -4, 7} {
		require.NoError(t, s.Put(Assignment{RunID: "first", BuildingID: id, CapacityBin: "126-199", CapacityAmps: 150, CapacitySource: "sampled", BreakerSpacesHeadroom: int(id % 5), HeadroomSource: "sampled"}))
	}
	// replaces the earlier assignment of building 7
	require.NoError(t, s.Put(Assignment{RunID: "first", BuildingID: 7, CapacityBin: "200", CapacityAmps: 200, CapacitySource: "user", BreakerSpacesHeadroom: 9, HeadroomSource: "user"}))
	require.NoError(t, s.Put(Assignment{RunID: "second", BuildingID: 1, CapacityBin: "<100", CapacityAmps: 60}))

	runs, err := s.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "first", runs[0].ID)
	assert.True(t, first.CreatedAt.Equal(runs[0].CreatedAt))
	assert.Equal(t, "c.csv", runs[0].CapacityTable)
	assert.Equal(t, "second", runs[1].ID)

	assignments, err := s.Assignments("first")
	require.NoError(t, err)
	require.Len(t, assignments, 3)
	assert.Equal(t, []int64{-4, 7, 30}, []int64{assignments[0].BuildingID, assignments[1].BuildingID, assignments[2].BuildingID})
	assert.Equal(t, Assignment{RunID: "first", BuildingID: 7, CapacityBin: "200", CapacityAmps: 200, CapacitySource: "user", BreakerSpacesHeadroom: 9, HeadroomSource: "user"}, assignments[1])

	_, err = s.Assignments("third")
	assert.True(t, errors.Is(err, ErrUnknownRun))

	require.NoError(t, s.Close())
}

func TestSqliteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panels.db")
	s, err := NewSqliteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.BeginRun(Run{ID: "r", CreatedAt: time.Now().UTC()}))
	for i := 0; i < bufferSize+5; i++ {
		require.NoError(t, s.Put(Assignment{RunID: "r", BuildingID: int64(i), CapacityBin: fmt.Sprint(i % 7)}))
	}
	require.NoError(t, s.Close())

	s, err = NewSqliteStore(path)
	require.NoError(t, err)
	defer s.Close()
	assignments, err := s.Assignments("r")
	require.NoError(t, err)
	assert.Len(t, assignments, bufferSize+5)
}
