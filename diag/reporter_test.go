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

package diag

import (
	"sync"
	"testing"

	"github.com/buildstock/panelsampler/logger"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCollector_RecordsInOrder(t *testing.T) {
	c := NewCollector()
	err := errors.New("no row")
	c.Info(1, "sampled")
	c.Warning(NoBuilding, "duplicate key")
	c.Error(2, err)

	got := c.Diagnostics()
	assert.Len(t, got, 3)
	assert.Equal(t, Diagnostic{Severity: Info, BuildingID: 1, Message: "sampled"}, got[0])
	assert.Equal(t, Warning, got[1].Severity)
	assert.Equal(t, "warning: duplicate key", got[1].String())
	assert.Same(t, err, got[2].Err)
	assert.Equal(t, "error: building 2: no row", got[2].String())
	assert.Equal(t, 1, c.Count(Error))
	assert.Equal(t, 1, c.Count(Warning))
}

func TestCollector_ConcurrentUse(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Info(id, "x")
			}
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, 800, c.Count(Info))
}

func TestLogReporter_Forwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	err := errors.New("unsupported")

	gomock.InOrder(
		log.EXPECT().Errorf("building %d: %v", int64(7), err),
		log.EXPECT().Warningf("building %d: %s", int64(7), "override ignored"),
		log.EXPECT().Warning("duplicate key"),
		log.EXPECT().Infof("building %d: %s", int64(8), "done"),
	)

	r := NewLogReporter(log)
	r.Error(7, err)
	r.Warning(7, "override ignored")
	r.Warning(NoBuilding, "duplicate key")
	r.Info(8, "done")
}

func TestMulti_FansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockReporter(ctrl)
	collector := NewCollector()
	err := errors.New("boom")

	mock.EXPECT().Error(int64(3), err)
	mock.EXPECT().Warning(int64(3), "w")
	mock.EXPECT().Info(int64(3), "i")

	r := Multi(mock, collector, Discard)
	r.Error(3, err)
	r.Warning(3, "w")
	r.Info(3, "i")
	assert.Len(t, collector.Diagnostics(), 3)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "severity(9)", Severity(9).String())
}
