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
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

const (
	dependencyPrefix = "Dependency="
	optionPrefix     = "Option="
)

// Options controls how a delimited table is parsed.
type Options struct {
	// KeyColumns is the number of leading key columns. Zero infers it from
	// Dependency=/Option= prefixed headers.
	KeyColumns int
	// Comma is the field delimiter; zero selects ','.
	Comma rune
}

// LoadFile reads a probability table from a file. Files ending in .gz are
// decompressed; .tsv files default to tab separated fields.
func LoadFile(path string, opts Options) (t *Table, err error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat table %s", path)
	}
	if stat.IsDir() {
		return nil, &ConfigurationError{Source: path, Reason: "path is a directory"}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open table %s", path)
	}
	defer func() {
		err = errors.CombineErrors(err, file.Close())
	}()

	name := path
	var r io.Reader = file
	if strings.HasSuffix(name, ".gz") {
		gz, gzErr := gzip.NewReader(file)
		if gzErr != nil {
			return nil, &ConfigurationError{Source: path, Reason: "not a gzip stream: " + gzErr.Error()}
		}
		defer func() {
			err = errors.CombineErrors(err, gz.Close())
		}()
		r = gz
		name = strings.TrimSuffix(name, ".gz")
	}
	if opts.Comma == 0 && filepath.Ext(name) == ".tsv" {
		opts.Comma = '\t'
	}
	return Load(r, path, opts)
}

// Load parses a probability table. The first record is the header; its
// trailing columns name the outcomes. Each following record holds the key
// fields and one non-negative weight per outcome. Weights are kept as read.
func Load(r io.Reader, source string, opts Options) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ConfigurationError{Source: source, Reason: "table is empty"}
	}
	if err != nil {
		return nil, &ConfigurationError{Source: source, Line: 1, Reason: err.Error()}
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	keyColumns, err := keyColumnCount(header, opts.KeyColumns)
	if err != nil {
		return nil, &ConfigurationError{Source: source, Line: 1, Reason: err.Error()}
	}
	keyFields := make([]string, keyColumns)
	for i := 0; i < keyColumns; i++ {
		keyFields[i] = strings.TrimSpace(strings.TrimPrefix(header[i], dependencyPrefix))
	}
	labels := make([]string, len(header)-keyColumns)
	for i := range labels {
		labels[i] = strings.TrimSpace(strings.TrimPrefix(header[keyColumns+i], optionPrefix))
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &ConfigurationError{Source: source, Line: line, Reason: err.Error()}
		}
		line, _ := reader.FieldPos(0)
		if len(record) != len(header) {
			return nil, &ConfigurationError{
				Source: source,
				Line:   line,
				Reason: "expected " + strconv.Itoa(len(header)) + " fields, found " + strconv.Itoa(len(record)),
			}
		}
		weights := make([]float64, len(labels))
		for i := range weights {
			field := strings.TrimSpace(record[keyColumns+i])
			w, err := strconv.ParseFloat(field, 64)
			if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, &ConfigurationError{
					Source: source,
					Line:   line,
					Reason: "weight for outcome " + strconv.Quote(labels[i]) + " is not a non-negative number: " + strconv.Quote(field),
				}
			}
			weights[i] = w
		}
		rows = append(rows, Row{
			Key:     append([]string(nil), record[:keyColumns]...),
			Weights: weights,
		})
	}
	if len(rows) == 0 {
		return nil, &ConfigurationError{Source: source, Reason: "table has no data rows"}
	}

	return newTable(source, keyFields, labels, rows), nil
}

// keyColumnCount determines how many leading header columns are keys.
func keyColumnCount(header []string, configured int) (int, error) {
	if configured > 0 {
		if configured >= len(header) {
			return 0, errors.Newf("header has %d columns, cannot split %d key columns from at least one outcome", len(header), configured)
		}
		return configured, nil
	}
	for i, h := range header {
		if strings.HasPrefix(h, optionPrefix) {
			if i == 0 {
				return 0, errors.New("header has no key columns before the first Option= column")
			}
			return i, nil
		}
	}
	return 0, errors.New("number of key columns not configured and no Option= columns in header")
}
