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
	"strings"
)

// Record is a single entry in the master table. Records are read-only.
type Record struct {
	surface           string
	normalizedSurface string
	pos               string
	pronunciation     string
	series            SeriesSet
	kind              Kind
}

// NewRecord returns a new Record. The record must belong to at least one
// series and have a valid kind.
func NewRecord(surface, normalizedSurface, pos, pronunciation string, series SeriesSet, kind Kind) (*Record, error) {
	if series == 0 {
		return nil, &ValueError{Field: "series", Value: ""}
	}
	if series&^AllSeries() != 0 {
		return nil, &ValueError{Field: "series", Value: fmt.Sprintf("%#x", uint8(series))}
	}
	if !kind.Valid() {
		return nil, &ValueError{Field: "kind", Value: fmt.Sprint(int(kind))}
	}

	return &Record{
		surface:           surface,
		normalizedSurface: normalizedSurface,
		pos:               pos,
		pronunciation:     pronunciation,
		series:            series,
		kind:              kind,
	}, nil
}

// Surface returns the surface form as written.
func (r *Record) Surface() string {
	return r.surface
}

// NormalizedSurface returns the canonical surface form used by the IME.
func (r *Record) NormalizedSurface() string {
	return r.normalizedSurface
}

// POS returns the part of speech.
func (r *Record) POS() string {
	return r.pos
}

// Pronunciation returns the reading of the entry.
func (r *Record) Pronunciation() string {
	return r.pronunciation
}

// Series returns the series the entry belongs to.
func (r *Record) Series() SeriesSet {
	return r.series
}

// Kind returns the kind of the entry.
func (r *Record) Kind() Kind {
	return r.kind
}

// String returns a diagnostic representation of the Record.
func (r *Record) String() string {
	return strings.Join([]string{
		"surface=" + r.surface,
		"normalized_surface=" + r.normalizedSurface,
		"pos=" + r.pos,
		"pronunciation=" + r.pronunciation,
		"series=" + r.series.String(),
		"kind=" + r.kind.String(),
	}, ", ")
}
