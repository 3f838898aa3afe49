// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type word struct {
	reading string
	surface string
}

func wordKeys(w word) []string {
	return []string{w.reading, w.surface}
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	words := []word{
		{reading: "いちご", surface: "苺"},
		{reading: "あおい", surface: "あおい"},
		{reading: "いちご", surface: "いちご"},
		{reading: "らん", surface: "蘭"},
	}

	tests := []struct {
		name     string
		query    string
		expected []word
	}{
		{
			name:  "multiple results in original order",
			query: "いちご",
			expected: []word{
				{reading: "いちご", surface: "苺"},
				{reading: "いちご", surface: "いちご"},
				{reading: "いちご", surface: "いちご"},
			},
		},
		{
			name:  "surface key",
			query: "蘭",
			expected: []word{
				{reading: "らん", surface: "蘭"},
			},
		},
		{
			name:     "no results",
			query:    "ゆめ",
			expected: nil,
		},
	}

	index := NewIndex(words, wordKeys, strings.Compare)
	if want, got := 8, index.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, index.Search(test.query), cmp.AllowUnexported(word{})); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}
