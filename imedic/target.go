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

package imedic

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/ianlewis/aikatsu-dic/master"
)

// ErrTarget indicates an unknown dictionary target.
var ErrTarget = errors.New("unknown dictionary target")

// Target is an IME dictionary target.
type Target int

const (
	// Google is a Google Japanese Input dictionary.
	Google Target = iota

	// ATOK is an ATOK dictionary.
	ATOK
)

var targetNames = [...]string{
	Google: "google",
	ATOK:   "atok",
}

// Targets returns all targets in declaration order.
func Targets() []Target {
	return []Target{Google, ATOK}
}

// ParseTarget parses the name of a Target.
func ParseTarget(s string) (Target, error) {
	for i, name := range targetNames {
		if name == s {
			return Target(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTarget, s)
}

// ParseTargetSelection parses a command line target selector. The value
// [master.SelectAll] selects every target.
func ParseTargetSelection(s string) ([]Target, error) {
	if s == master.SelectAll {
		return Targets(), nil
	}
	t, err := ParseTarget(s)
	if err != nil {
		return nil, err
	}
	return []Target{t}, nil
}

// String returns the name of the target.
func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return "unknown"
	}
	return targetNames[t]
}

// FileName returns the dictionary file name for entries of the given kind.
func (t Target) FileName(kind master.Kind) string {
	return fmt.Sprintf("%s_dic_%s.txt", t, kind)
}

// Encoding returns the text encoding of the dictionary file.
func (t Target) Encoding() encoding.Encoding {
	if t == ATOK {
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	}
	return unicode.UTF8
}
