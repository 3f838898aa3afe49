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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"
)

func TestKanaFolder_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   []byte
		dst   []byte
		atEOF bool

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name:  "katakana",
			src:   []byte("ホシミヤ"),
			dst:   make([]byte, 12),
			atEOF: true,

			expected: []byte("ほしみや"),
			nDst:     12,
			nSrc:     12,
		},
		{
			name:  "mixed",
			src:   []byte("aイ!"),
			dst:   make([]byte, 6),
			atEOF: true,

			expected: []byte{'a', 0xe3, 0x81, 0x84, '!', 0},
			nDst:     5,
			nSrc:     5,
		},
		{
			name:  "long vowel mark is kept",
			src:   []byte("ー"),
			dst:   make([]byte, 3),
			atEOF: true,

			expected: []byte("ー"),
			nDst:     3,
			nSrc:     3,
		},
		{
			name:  "invalid byte",
			src:   []byte{0xff, 0xe3, 0x82, 0xa2},
			dst:   make([]byte, 6),
			atEOF: true,

			expected: []byte{0xef, 0xbf, 0xbd, 0xe3, 0x81, 0x82},
			nDst:     6,
			nSrc:     4,
		},
		{
			name:  "short dst",
			src:   []byte("アイ"),
			dst:   make([]byte, 4),
			atEOF: true,

			expected: []byte{0xe3, 0x81, 0x82, 0},
			nDst:     3,
			nSrc:     3,
			err:      transform.ErrShortDst,
		},
		{
			name:  "short src",
			src:   []byte("ア\xe3\x82"),
			dst:   make([]byte, 6),
			atEOF: false,

			expected: []byte{0xe3, 0x81, 0x82, 0, 0, 0},
			nDst:     3,
			nSrc:     3,
			err:      transform.ErrShortSrc,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			nDst, nSrc, err := KanaFolder{}.Transform(test.dst, test.src, test.atEOF)
			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Errorf("unexpected dst (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nDst, nDst); diff != "" {
				t.Errorf("unexpected nDst (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nSrc, nSrc); diff != "" {
				t.Errorf("unexpected nSrc (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("unexpected err (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestToHiragana(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff("すたーじぇっと!", ToHiragana("スタージェット!")); diff != "" {
		t.Fatalf("ToHiragana (-want, +got):\n%s", diff)
	}
}
