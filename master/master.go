// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package master

import (
	"fmt"
	"io"
	"os"
)

// Master is an in-memory master table.
type Master struct {
	path    string
	records []*Record
}

// Open reads the master table at path.
func Open(path string) (*Master, error) {
	records, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Master{
		path:    path,
		records: records,
	}, nil
}

// New returns a Master holding the given records.
func New(records []*Record) *Master {
	return &Master{
		records: records,
	}
}

// Path returns the path the master table was read from, if any.
func (m *Master) Path() string {
	return m.path
}

// Records returns the records in table order. The returned slice must not be
// modified.
func (m *Master) Records() []*Record {
	return m.records
}

// Extract returns the records of the given kind that belong to at least one
// of the given series.
func (m *Master) Extract(kind Kind, series SeriesSet) []*Record {
	return Extract(m.records, kind, series)
}

// Load reads all records from the master table at path.
func Load(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening master table: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return records, nil
}

// Read reads all records from r. No records are returned if any row is
// invalid.
func Read(r io.Reader) ([]*Record, error) {
	var records []*Record
	s := NewScanner(r)
	for s.Scan() {
		records = append(records, s.Record())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Extract returns the records of the given kind that belong to at least one
// of the given series. The relative order of records is preserved.
func Extract(records []*Record, kind Kind, series SeriesSet) []*Record {
	var extracted []*Record
	for _, r := range records {
		if r.kind == kind && r.series.Intersects(series) {
			extracted = append(extracted, r)
		}
	}
	return extracted
}
