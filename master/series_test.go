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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSeriesSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected SeriesSet
		err      error
	}{
		{
			name:     "all",
			value:    "all",
			expected: NewSeriesSet(Aikatsu, Stars, Friends),
		},
		{
			// A single series name selects that series only and is not
			// treated as a sequence of characters.
			name:     "single series",
			value:    "stars",
			expected: NewSeriesSet(Stars),
		},
		{
			name:  "list is not a selector",
			value: "aikatsu,stars",
			err:   ErrValue,
		},
		{
			name:  "unknown",
			value: "s",
			err:   ErrValue,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSeriesSelection(test.value)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseSeriesSelection: want error %v, got %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("ParseSeriesSelection (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSeriesSet(t *testing.T) {
	t.Parallel()

	set := NewSeriesSet(Friends, Aikatsu, Friends)
	if want, got := 2, set.Len(); want != got {
		t.Errorf("Len; want: %d, got: %d", want, got)
	}
	if !set.Has(Aikatsu) || set.Has(Stars) || !set.Has(Friends) {
		t.Errorf("Has; unexpected membership for %v", set)
	}
	if want, got := "aikatsu,friends", set.String(); want != got {
		t.Errorf("String; want: %q, got: %q", want, got)
	}
	if set.Intersects(NewSeriesSet(Stars)) {
		t.Errorf("Intersects(stars); want false")
	}
	if !set.Intersects(AllSeries()) {
		t.Errorf("Intersects(all); want true")
	}
	if want, got := "aikatsu,stars,friends", AllSeries().String(); want != got {
		t.Errorf("AllSeries; want: %q, got: %q", want, got)
	}
	if NewSeriesSet(Series(9)) != 0 {
		t.Errorf("NewSeriesSet(invalid); want empty set")
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q); want: %v, got: %v", k, k, got)
		}
	}
	if want, got := "music", MusicKind.String(); want != got {
		t.Fatalf("String; want: %q, got: %q", want, got)
	}
}
