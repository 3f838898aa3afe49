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

package lint

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/aikatsu-dic/master"
)

func newRecord(t *testing.T, surface, pronunciation string) *master.Record {
	t.Helper()

	r, err := master.NewRecord(surface, surface, "名詞", pronunciation, master.AllSeries(), master.CharacterKind)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestCheckReading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reading string
		ok      bool
	}{
		{reading: "ほしみやいちご", ok: true},
		{reading: "すたーじぇっと", ok: true},
		{reading: "ほしみや・いちご", ok: true},
		{reading: "ホシミヤ", ok: false},
		{reading: "hoshimiya", ok: false},
		{reading: "ほしみや いちご", ok: false},
		{reading: "", ok: false},
	}

	for _, test := range tests {
		t.Run(test.reading, func(t *testing.T) {
			t.Parallel()

			if _, ok := checkReading(test.reading); ok != test.ok {
				t.Fatalf("checkReading(%q); want: %v, got: %v", test.reading, test.ok, ok)
			}
		})
	}
}

func TestLinter_Check(t *testing.T) {
	t.Parallel()

	l, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ichigo := newRecord(t, "星宮いちご", "ほしみやいちご")
	katakana := newRecord(t, "霧矢あおい", "キリヤアオイ")
	tokyo := newRecord(t, "東京", "とうきょう")
	tokyoOther := newRecord(t, "東京", "とーきょー")

	findings := l.Check([]*master.Record{ichigo, katakana, tokyo, tokyoOther})

	type result struct {
		Surface string
		Problem Problem
	}
	var got []result
	for _, f := range findings {
		got = append(got, result{
			Surface: f.Record.Surface(),
			Problem: f.Problem,
		})
	}

	expected := []result{
		{Surface: "霧矢あおい", Problem: ProblemReading},
		{Surface: "東京", Problem: ProblemKnown},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Check (-want, +got):\n%s", diff)
	}
}
