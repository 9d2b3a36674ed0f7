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

// Package store persists the panel assignments of sampling runs.
package store

import (
	"encoding/binary"
	"sort"
	"time"

	"github.com/buildstock/panelsampler/panel"
	"github.com/cockroachdb/errors"
)

const (
	SqliteKind  = "sqlite"
	LevelDbKind = "leveldb"

	// bufferSize is the number of assignments written per transaction or batch.
	bufferSize = 1000
)

// ErrUnknownRun is returned for run ids that were never started.
var ErrUnknownRun = errors.New("unknown run")

//go:generate mockgen -source store.go -destination store_mock.go -package store

// Store records sampling runs and their assignments. Writes may be buffered
// until Flush or Close.
type Store interface {
	// BeginRun registers a run before its assignments are put.
	BeginRun(run Run) error
	// Put adds or replaces the assignment of one building in a run.
	Put(a Assignment) error
	// Flush writes buffered assignments.
	Flush() error
	// Runs lists all runs, oldest first.
	Runs() ([]Run, error)
	// Assignments lists the assignments of a run ordered by building id.
	Assignments(runID string) ([]Assignment, error)
	Close() error
}

// Run describes one batch sampling run.
type Run struct {
	ID            string    `db:"id" json:"id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	CapacityTable string    `db:"capacity_table" json:"capacity_table"`
	HeadroomTable string    `db:"headroom_table" json:"headroom_table"`
	Buildings     int       `db:"buildings" json:"buildings"`
}

// Assignment is the stored form of a panel assignment.
type Assignment struct {
	RunID                 string  `db:"run_id" json:"run_id"`
	BuildingID            int64   `db:"building_id" json:"building_id"`
	CapacityBin           string  `db:"capacity_bin" json:"capacity_bin"`
	CapacityAmps          float64 `db:"capacity_amps" json:"capacity_amps"`
	CapacitySource        string  `db:"capacity_source" json:"capacity_source"`
	BreakerSpacesHeadroom int     `db:"breaker_spaces_headroom" json:"breaker_spaces_headroom"`
	HeadroomSource        string  `db:"headroom_source" json:"headroom_source"`
}

// FromPanel converts a panel assignment of the given run.
func FromPanel(runID string, a panel.Assignment) Assignment {
	return Assignment{
		RunID:                 runID,
		BuildingID:            a.BuildingID,
		CapacityBin:           a.CapacityBin,
		CapacityAmps:          a.CapacityAmps,
		CapacitySource:        string(a.CapacitySource),
		BreakerSpacesHeadroom: a.BreakerSpacesHeadroom,
		HeadroomSource:        string(a.HeadroomSource),
	}
}

// Panel converts the stored assignment back.
func (a Assignment) Panel() panel.Assignment {
	return panel.Assignment{
		BuildingID:            a.BuildingID,
		CapacityBin:           a.CapacityBin,
		CapacityAmps:          a.CapacityAmps,
		CapacitySource:        panel.Source(a.CapacitySource),
		BreakerSpacesHeadroom: a.BreakerSpacesHeadroom,
		HeadroomSource:        panel.Source(a.HeadroomSource),
	}
}

// Open opens or creates a store of the given kind at path.
func Open(kind, path string) (Store, error) {
	if path == "" {
		return nil, errors.New("store path is empty")
	}
	switch kind {
	case SqliteKind, "":
		return NewSqliteStore(path)
	case LevelDbKind:
		return NewLevelDbStore(path)
	}
	return nil, errors.Newf("unknown store type %q; supported are %q and %q", kind, SqliteKind, LevelDbKind)
}

// LatestRun returns the most recently created run.
func LatestRun(s Store) (Run, error) {
	runs, err := s.Runs()
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, errors.New("store contains no runs")
	}
	return runs[len(runs)-1], nil
}

// FindRun returns the run with the given id, or the latest run for an empty id.
func FindRun(s Store, runID string) (Run, error) {
	if runID == "" {
		return LatestRun(s)
	}
	runs, err := s.Runs()
	if err != nil {
		return Run{}, err
	}
	for _, r := range runs {
		if r.ID == runID {
			return r, nil
		}
	}
	return Run{}, errors.Wrapf(ErrUnknownRun, "run %q", runID)
}

func sortRuns(runs []Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.Before(runs[j].CreatedAt)
		}
		return runs[i].ID < runs[j].ID
	})
}

// encodeBuildingID maps a building id to 8 bytes whose byte order matches
// the numeric order of the ids.
func encodeBuildingID(id int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id)^(1<<63))
	return b[:]
}

func decodeBuildingID(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, errors.Newf("invalid building id encoding of %d bytes", len(b))
	}
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63)), nil
}
