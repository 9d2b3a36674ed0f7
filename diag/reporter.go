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

// Package diag carries diagnostics of sampling runs back to the caller.
package diag

import (
	"fmt"
	"sync"

	"github.com/buildstock/panelsampler/logger"
)

// Severity of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// NoBuilding marks diagnostics that are not tied to one building, e.g.
// warnings about a table.
const NoBuilding int64 = -1

//go:generate mockgen -source reporter.go -destination reporter_mock.go -package diag

// Reporter receives diagnostics of sampling calls. Implementations must be
// safe for concurrent use.
type Reporter interface {
	Error(buildingID int64, err error)
	Warning(buildingID int64, msg string)
	Info(buildingID int64, msg string)
}

// Diagnostic is one recorded message.
type Diagnostic struct {
	Severity   Severity
	BuildingID int64
	Message    string
	Err        error
}

func (d Diagnostic) String() string {
	if d.BuildingID == NoBuilding {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: building %d: %s", d.Severity, d.BuildingID, d.Message)
}

// Collector records every diagnostic in arrival order.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) add(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, d)
}

func (c *Collector) Error(buildingID int64, err error) {
	c.add(Diagnostic{Severity: Error, BuildingID: buildingID, Message: err.Error(), Err: err})
}

func (c *Collector) Warning(buildingID int64, msg string) {
	c.add(Diagnostic{Severity: Warning, BuildingID: buildingID, Message: msg})
}

func (c *Collector) Info(buildingID int64, msg string) {
	c.add(Diagnostic{Severity: Info, BuildingID: buildingID, Message: msg})
}

// Diagnostics returns a copy of the recorded diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Count returns the number of diagnostics of the given severity.
func (c *Collector) Count(s Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.diagnostics {
		if d.Severity == s {
			n++
		}
	}
	return n
}

// LogReporter forwards diagnostics to a logger.
type LogReporter struct {
	log logger.Logger
}

// NewLogReporter creates a reporter writing to log.
func NewLogReporter(log logger.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Error(buildingID int64, err error) {
	r.log.Errorf("building %d: %v", buildingID, err)
}

func (r *LogReporter) Warning(buildingID int64, msg string) {
	if buildingID == NoBuilding {
		r.log.Warning(msg)
		return
	}
	r.log.Warningf("building %d: %s", buildingID, msg)
}

func (r *LogReporter) Info(buildingID int64, msg string) {
	if buildingID == NoBuilding {
		r.log.Info(msg)
		return
	}
	r.log.Infof("building %d: %s", buildingID, msg)
}

type discard struct{}

func (discard) Error(int64, error)    {}
func (discard) Warning(int64, string) {}
func (discard) Info(int64, string)    {}

// Discard drops all diagnostics.
var Discard Reporter = discard{}

type multi []Reporter

func (m multi) Error(buildingID int64, err error) {
	for _, r := range m {
		r.Error(buildingID, err)
	}
}

func (m multi) Warning(buildingID int64, msg string) {
	for _, r := range m {
		r.Warning(buildingID, msg)
	}
}

func (m multi) Info(buildingID int64, msg string) {
	for _, r := range m {
		r.Info(buildingID, msg)
	}
}

// Multi fans diagnostics out to several reporters.
func Multi(reporters ...Reporter) Reporter {
	return multi(reporters)
}
