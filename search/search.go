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

// Package search implements looking up master records by reading or
// surface form.
package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"github.com/ianlewis/aikatsu-dic/internal/folding"
	"github.com/ianlewis/aikatsu-dic/internal/index"
	"github.com/ianlewis/aikatsu-dic/master"
)

// Options are options for the search index.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// width folding, kana folding, etc.) on index keys and queries.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for a Searcher. Half-width and
// full-width forms are folded and katakana is folded to hiragana.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Chain(width.Fold, folding.KanaFolder{})
	},
}

type foldedRecord struct {
	keys   []string
	record *master.Record
}

// Searcher is an in-memory index of master records keyed by their
// pronunciation and normalized surface.
type Searcher struct {
	index  *index.Index[*foldedRecord]
	folder func() transform.Transformer
}

// New returns a new Searcher for the given records.
func New(records []*master.Record, options *Options) (*Searcher, error) {
	if options == nil {
		options = DefaultOptions
	}

	s := Searcher{
		folder: DefaultOptions.Folder,
	}
	if options.Folder != nil {
		s.folder = options.Folder
	}

	folded := make([]*foldedRecord, 0, len(records))
	for _, r := range records {
		reading, err := s.fold(r.Pronunciation())
		if err != nil {
			return nil, err
		}
		surface, err := s.fold(r.NormalizedSurface())
		if err != nil {
			return nil, err
		}

		keys := []string{reading}
		if surface != reading {
			keys = append(keys, surface)
		}
		folded = append(folded, &foldedRecord{
			keys:   keys,
			record: r,
		})
	}

	s.index = index.NewIndex(folded, func(r *foldedRecord) []string {
		return r.keys
	}, strings.Compare)

	return &s, nil
}

// Search returns the records whose folded pronunciation or normalized surface
// equals the folded query, in master order.
func (s *Searcher) Search(query string) ([]*master.Record, error) {
	foldedQuery, err := s.fold(query)
	if err != nil {
		return nil, err
	}

	// Keys of a record are distinct so each record matches at most once.
	var records []*master.Record
	for _, r := range s.index.Search(foldedQuery) {
		records = append(records, r.record)
	}
	return records, nil
}

func (s *Searcher) fold(text string) (string, error) {
	folded, _, err := transform.String(s.folder(), text)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", text, err)
	}
	return folded, nil
}
