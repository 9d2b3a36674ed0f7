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

// Package table provides probability tables keyed by categorical building
// attributes. A table maps a key tuple to a weight vector over outcome labels
// shared by all rows.
package table

import (
	"strconv"
	"strings"
)

// Row is one data record of a probability table.
type Row struct {
	Key     []string
	Weights []float64
}

// Table is an immutable probability table.
type Table struct {
	Source    string   // name of the resource the table was loaded from
	KeyFields []string // header names of the key columns
	Labels    []string // outcome labels, one per weight column
	Rows      []Row

	index      map[string]int // key tuple -> first row carrying it
	duplicates [][]string
}

// newTable builds the lookup index. The first row of a key wins.
func newTable(source string, keyFields, labels []string, rows []Row) *Table {
	t := &Table{
		Source:    source,
		KeyFields: keyFields,
		Labels:    labels,
		Rows:      rows,
		index:     make(map[string]int, len(rows)),
	}
	seen := make(map[string]bool)
	for i, row := range rows {
		k := indexKey(row.Key)
		if _, found := t.index[k]; found {
			if !seen[k] {
				t.duplicates = append(t.duplicates, row.Key)
				seen[k] = true
			}
			continue
		}
		t.index[k] = i
	}
	return t
}

// indexKey encodes a key tuple unambiguously by length-prefixing each field.
func indexKey(fields []string) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(strconv.Itoa(len(f)))
		b.WriteByte(':')
		b.WriteString(f)
	}
	return b.String()
}

// Arity returns the number of key fields.
func (t *Table) Arity() int {
	return len(t.KeyFields)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Find returns the weights of the row whose key equals context field by
// field, together with the table's outcome labels. Matching is exact; a
// context of the wrong arity never matches.
func (t *Table) Find(context []string) ([]float64, []string, error) {
	if len(context) == len(t.KeyFields) {
		if i, found := t.index[indexKey(context)]; found {
			return t.Rows[i].Weights, t.Labels, nil
		}
	}
	return nil, nil, &LookupError{
		Source:  t.Source,
		Fields:  t.KeyFields,
		Context: append([]string(nil), context...),
	}
}

// Duplicates returns keys that occur in more than one row. Only the first
// of those rows is reachable through Find.
func (t *Table) Duplicates() [][]string {
	return t.duplicates
}

// LabelIndex returns the position of an outcome label or -1.
func (t *Table) LabelIndex(label string) int {
	for i, l := range t.Labels {
		if l == label {
			return i
		}
	}
	return -1
}
