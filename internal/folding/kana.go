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
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	katakanaStart = 'ァ' // U+30A1
	katakanaEnd   = 'ヶ' // U+30F6

	// kanaOffset is the distance between a katakana rune and its hiragana
	// counterpart.
	kanaOffset = 'ァ' - 'ぁ'
)

// KanaFolder folds full-width katakana to hiragana. All other runes are
// emitted unchanged.
type KanaFolder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (KanaFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if katakanaStart <= c && c <= katakanaEnd {
			c -= kanaOffset
		}

		// Invalid bytes are written as U+FFFD so the output length is
		// taken from c, not from size.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// ToHiragana returns s with katakana folded to hiragana.
func ToHiragana(s string) string {
	folded, _, err := transform.String(KanaFolder{}, s)
	if err != nil {
		// KanaFolder only fails on short buffers which transform.String
		// handles itself.
		return s
	}
	return folded
}
