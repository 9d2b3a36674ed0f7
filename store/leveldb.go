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
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	runPrefix        = "run/"
	assignmentPrefix = "assignment/"
)

func runKey(runID string) []byte {
	return []byte(runPrefix + runID)
}

// assignmentKey is assignment/<run id>/<order preserving building id>.
func assignmentKey(runID string, buildingID int64) []byte {
	key := []byte(assignmentPrefix + runID + "/")
	return append(key, encodeBuildingID(buildingID)...)
}

// levelDbStore keeps runs and assignments as json values in a key-value database.
type levelDbStore struct {
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending int
}

// NewLevelDbStore opens or creates a leveldb assignment database.
func NewLevelDbStore(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %v", path)
	}
	return newLevelDbStore(db), nil
}

func newLevelDbStore(db *leveldb.DB) *levelDbStore {
	return &levelDbStore{db: db, batch: new(leveldb.Batch)}
}

func (s *levelDbStore) BeginRun(run Run) error {
	if run.ID == "" {
		return errors.New("run id is empty")
	}
	if strings.ContainsRune(run.ID, '/') {
		return errors.Newf("run id %q must not contain '/'", run.ID)
	}
	exists, err := s.db.Has(runKey(run.ID), nil)
	if err != nil {
		return err
	}
	if exists {
		return errors.Newf("run %s already exists", run.ID)
	}
	value, err := json.Marshal(run)
	if err != nil {
		return err
	}
	if err := s.db.Put(runKey(run.ID), value, nil); err != nil {
		return errors.Wrapf(err, "failed to register run %s", run.ID)
	}
	return nil
}

func (s *levelDbStore) Put(a Assignment) error {
	value, err := json.Marshal(a)
	if err != nil {
		return err
	}
	s.batch.Put(assignmentKey(a.RunID, a.BuildingID), value)
	s.pending++
	if s.pending >= bufferSize {
		if err := s.Flush(); err != nil {
			return errors.Wrap(err, "unable to flush assignments")
		}
	}
	return nil
}

// Flush writes the pending batch.
func (s *levelDbStore) Flush() error {
	if s.pending == 0 {
		return nil
	}
	if err := s.db.Write(s.batch, nil); err != nil {
		return err
	}
	s.batch.Reset()
	s.pending = 0
	return nil
}

func (s *levelDbStore) Runs() ([]Run, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(runPrefix)), nil)
	defer iter.Release()

	runs := []Run{}
	for iter.Next() {
		var run Run
		if err := json.Unmarshal(iter.Value(), &run); err != nil {
			return nil, errors.Wrapf(err, "corrupted run record %q", iter.Key())
		}
		runs = append(runs, run)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	sortRuns(runs)
	return runs, nil
}

func (s *levelDbStore) Assignments(runID string) ([]Assignment, error) {
	if err := s.Flush(); err != nil {
		return nil, err
	}
	found, err := s.db.Has(runKey(runID), nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(ErrUnknownRun, "run %q", runID)
	}

	prefix := []byte(assignmentPrefix + runID + "/")
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	assignments := []Assignment{}
	for iter.Next() {
		id, err := decodeBuildingID(iter.Key()[len(prefix):])
		if err != nil {
			return nil, err
		}
		var a Assignment
		if err := json.Unmarshal(iter.Value(), &a); err != nil {
			return nil, errors.Wrapf(err, "corrupted assignment record %q", iter.Key())
		}
		if a.BuildingID != id {
			return nil, errors.Newf("assignment record %q holds building %d", iter.Key(), a.BuildingID)
		}
		assignments = append(assignments, a)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Close writes the pending batch and closes the database.
func (s *levelDbStore) Close() error {
	err := s.Flush()
	return errors.CombineErrors(err, s.db.Close())
}
