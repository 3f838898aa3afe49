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

// Package suggest implements reducing master records for suggestion style
// IME dictionaries.
//
// A suggestion dictionary only needs one entry for each reading and surface
// pair. Other records with the same pair, such as alternate spellings that
// normalize to the same surface, are dropped.
package suggest

import (
	"fmt"
	"io"

	"github.com/ianlewis/aikatsu-dic/master"
)

// Options are options for Reduce.
type Options struct {
	// Log receives a summary of the reduction. It is never used for data.
	Log io.Writer
}

// DefaultOptions is the default options for Reduce.
var DefaultOptions = &Options{
	Log: io.Discard,
}

type key struct {
	pronunciation     string
	normalizedSurface string
}

// Reduce returns the first record for each distinct pronunciation and
// normalized surface pair. The relative order of the surviving records is
// preserved.
func Reduce(records []*master.Record, options *Options) []*master.Record {
	if options == nil {
		options = DefaultOptions
	}
	log := options.Log
	if log == nil {
		log = io.Discard
	}

	seen := make(map[key]struct{}, len(records))
	reduced := make([]*master.Record, 0, len(records))
	for _, r := range records {
		k := key{
			pronunciation:     r.Pronunciation(),
			normalizedSurface: r.NormalizedSurface(),
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		reduced = append(reduced, r)
	}

	fmt.Fprintf(log, "reduced entries: %d -> %d\n", len(records), len(reduced))

	return reduced
}
