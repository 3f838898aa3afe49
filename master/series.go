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
	"strings"
)

// SelectAll is the selector value that selects every member of an
// enumeration.
const SelectAll = "all"

// Series is an Aikatsu! product line.
type Series int

const (
	// Aikatsu is the base series.
	Aikatsu Series = iota

	// Stars is Aikatsu Stars!
	Stars

	// Friends is Aikatsu Friends!
	Friends
)

var seriesNames = [...]string{
	Aikatsu: "aikatsu",
	Stars:   "stars",
	Friends: "friends",
}

// ParseSeries parses the master table value of a Series.
func ParseSeries(s string) (Series, error) {
	for i, name := range seriesNames {
		if name == s {
			return Series(i), nil
		}
	}
	return 0, &ValueError{Field: "series", Value: s}
}

// Valid returns whether s is a member of the enumeration.
func (s Series) Valid() bool {
	return s >= 0 && int(s) < len(seriesNames)
}

// String returns the master table value of the series.
func (s Series) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return seriesNames[s]
}

// SeriesSet is a set of series.
type SeriesSet uint8

// NewSeriesSet returns a set containing the given series. Invalid series are
// ignored.
func NewSeriesSet(series ...Series) SeriesSet {
	var set SeriesSet
	for _, s := range series {
		if s.Valid() {
			set |= 1 << s
		}
	}
	return set
}

// AllSeries returns the set of every series.
func AllSeries() SeriesSet {
	return SeriesSet(1<<len(seriesNames) - 1)
}

// ParseSeriesSet parses a comma separated list of series as found in the
// master table.
func ParseSeriesSet(s string) (SeriesSet, error) {
	var set SeriesSet
	for _, token := range strings.Split(s, ",") {
		series, err := ParseSeries(token)
		if err != nil {
			return 0, err
		}
		set |= NewSeriesSet(series)
	}
	return set, nil
}

// ParseSeriesSelection parses a command line series selector. The value
// [SelectAll] selects every series, any other value must name exactly one
// series.
func ParseSeriesSelection(s string) (SeriesSet, error) {
	if s == SelectAll {
		return AllSeries(), nil
	}
	series, err := ParseSeries(s)
	if err != nil {
		return 0, err
	}
	return NewSeriesSet(series), nil
}

// Has returns whether the set contains s.
func (set SeriesSet) Has(s Series) bool {
	return s.Valid() && set&(1<<s) != 0
}

// Intersects returns whether the two sets have at least one series in common.
func (set SeriesSet) Intersects(other SeriesSet) bool {
	return set&other != 0
}

// Len returns the number of series in the set.
func (set SeriesSet) Len() int {
	return len(set.Series())
}

// Series returns the members of the set in declaration order.
func (set SeriesSet) Series() []Series {
	var series []Series
	for i := range seriesNames {
		if set.Has(Series(i)) {
			series = append(series, Series(i))
		}
	}
	return series
}

// String returns the set as a comma separated list in declaration order.
func (set SeriesSet) String() string {
	var names []string
	for _, s := range set.Series() {
		names = append(names, s.String())
	}
	return strings.Join(names, ",")
}
