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

package table

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a malformed or empty probability table.
type ConfigurationError struct {
	Source string // file or stream the table was read from
	Line   int    // 1-based line of the offending record, 0 if not line specific
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid probability table %s, line %d: %s", e.Source, e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid probability table %s: %s", e.Source, e.Reason)
}

// LookupError reports a context tuple that matches no row of a table.
type LookupError struct {
	Source  string
	Fields  []string // key column names of the table
	Context []string // the unmatched context
}

func (e *LookupError) Error() string {
	pairs := make([]string, len(e.Context))
	for i, v := range e.Context {
		name := fmt.Sprintf("field%d", i)
		if i < len(e.Fields) {
			name = e.Fields[i]
		}
		pairs[i] = fmt.Sprintf("%s=%q", name, v)
	}
	msg := fmt.Sprintf("no row in %s matches {%s}", e.Source, strings.Join(pairs, ", "))
	if len(e.Context) != len(e.Fields) {
		msg += fmt.Sprintf(" (context has %d fields, table keys have %d)", len(e.Context), len(e.Fields))
	}
	return msg
}
