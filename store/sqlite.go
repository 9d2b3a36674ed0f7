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
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	// Your main or test packages require this import so the sql package is properly initialized.
	_ "github.com/mattn/go-sqlite3"
)

const (
	// SQL statement for creating the assignment tables
	createSQL = `
PRAGMA journal_mode = MEMORY;
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP,
	capacity_table TEXT,
	headroom_table TEXT,
	buildings INTEGER
);
CREATE TABLE IF NOT EXISTS assignments (
	run_id TEXT,
	building_id INTEGER,
	capacity_bin TEXT,
	capacity_amps FLOAT,
	capacity_source TEXT,
	breaker_spaces_headroom INTEGER,
	headroom_source TEXT,
	PRIMARY KEY (run_id, building_id)
);
`

	// SQL statement for registering a run
	insertRunSQL = `
INSERT INTO runs (
	id, created_at, capacity_table, headroom_table, buildings
) VALUES (
	:id, :created_at, :capacity_table, :headroom_table, :buildings
)
`

	// SQL statement for inserting or replacing the assignment of a building
	insertAssignmentSQL = `
INSERT OR REPLACE INTO assignments (
	run_id, building_id, capacity_bin, capacity_amps, capacity_source, breaker_spaces_headroom, headroom_source
) VALUES (
	:run_id, :building_id, :capacity_bin, :capacity_amps, :capacity_source, :breaker_spaces_headroom, :headroom_source
)
`

	selectRunsSQL = `SELECT id, created_at, capacity_table, headroom_table, buildings FROM runs ORDER BY created_at, id`

	countRunSQL = `SELECT COUNT(*) FROM runs WHERE id = ?`

	selectAssignmentsSQL = `
SELECT run_id, building_id, capacity_bin, capacity_amps, capacity_source, breaker_spaces_headroom, headroom_source
FROM assignments WHERE run_id = ? ORDER BY building_id
`
)

// sqliteStore keeps runs and assignments in a sqlite3 database.
type sqliteStore struct {
	db     *sqlx.DB
	buffer []Assignment
}

// NewSqliteStore opens or creates a sqlite3 assignment database.
func NewSqliteStore(path string) (Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %v", path)
	}
	s, err := newSqliteStore(db)
	if err != nil {
		return nil, errors.CombineErrors(err, db.Close())
	}
	return s, nil
}

func newSqliteStore(db *sqlx.DB) (*sqliteStore, error) {
	if _, err := db.Exec(createSQL); err != nil {
		return nil, errors.Wrap(err, "failed to create assignment schema")
	}
	return &sqliteStore{
		db:     db,
		buffer: make([]Assignment, 0, bufferSize),
	}, nil
}

func (s *sqliteStore) BeginRun(run Run) error {
	if run.ID == "" {
		return errors.New("run id is empty")
	}
	if _, err := s.db.NamedExec(insertRunSQL, run); err != nil {
		return errors.Wrapf(err, "failed to register run %s", run.ID)
	}
	return nil
}

func (s *sqliteStore) Put(a Assignment) error {
	s.buffer = append(s.buffer, a)
	if len(s.buffer) == cap(s.buffer) {
		if err := s.Flush(); err != nil {
			return errors.Wrap(err, "unable to flush assignments")
		}
	}
	return nil
}

// Flush writes the buffered assignments in one transaction.
func (s *sqliteStore) Flush() error {
	if len(s.buffer) == 0 {
		return nil
	}
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	for _, a := range s.buffer {
		if _, err := tx.NamedExec(insertAssignmentSQL, a); err != nil {
			return errors.CombineErrors(err, tx.Rollback())
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.buffer = s.buffer[:0]
	return nil
}

func (s *sqliteStore) Runs() ([]Run, error) {
	runs := []Run{}
	if err := s.db.Select(&runs, selectRunsSQL); err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	return runs, nil
}

func (s *sqliteStore) Assignments(runID string) ([]Assignment, error) {
	if err := s.Flush(); err != nil {
		return nil, err
	}
	var n int
	if err := s.db.Get(&n, countRunSQL, runID); err != nil {
		return nil, errors.Wrapf(err, "failed to look up run %s", runID)
	}
	if n == 0 {
		return nil, errors.Wrapf(ErrUnknownRun, "run %q", runID)
	}
	assignments := []Assignment{}
	if err := s.db.Select(&assignments, selectAssignmentsSQL, runID); err != nil {
		return nil, errors.Wrapf(err, "failed to list assignments of run %s", runID)
	}
	return assignments, nil
}

// Close flushes buffered assignments and closes the database.
func (s *sqliteStore) Close() error {
	err := s.Flush()
	return errors.CombineErrors(err, s.db.Close())
}
