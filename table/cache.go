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
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
)

// Cache loads each table file once and hands out the same immutable table
// on later requests. It is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		tables: make(map[string]*Table),
	}
}

// Load returns the table stored at path, reading it on first use. Entries
// are keyed by absolute path and parse options. Failed loads are not cached.
func (c *Cache) Load(path string, opts Options) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve table path %s", path)
	}
	key := fmt.Sprintf("%s|%d|%d", abs, opts.KeyColumns, opts.Comma)

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, found := c.tables[key]; found {
		return t, nil
	}
	t, err := LoadFile(path, opts)
	if err != nil {
		return nil, err
	}
	c.tables[key] = t
	return t, nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}
