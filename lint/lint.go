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

// Package lint implements sanity checks for master records.
//
// Checks are informational. They catch readings that an IME would reject and
// entries that the IME's system dictionary already knows.
package lint

import (
	"fmt"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/ianlewis/aikatsu-dic/internal/folding"
	"github.com/ianlewis/aikatsu-dic/master"
)

// Problem is a kind of lint finding.
type Problem int

const (
	// ProblemReading indicates that the pronunciation is not all hiragana.
	ProblemReading Problem = iota

	// ProblemKnown indicates that the system dictionary already has the
	// normalized surface with the same reading.
	ProblemKnown
)

// String returns the name of the problem.
func (p Problem) String() string {
	switch p {
	case ProblemReading:
		return "reading"
	case ProblemKnown:
		return "known"
	default:
		return "unknown"
	}
}

// Finding is a problem found with a record.
type Finding struct {
	Record  *master.Record
	Problem Problem
	Detail  string
}

// Linter checks master records.
type Linter struct {
	t *tokenizer.Tokenizer
}

// New returns a new Linter using the IPA system dictionary.
func New() (*Linter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}
	return &Linter{t: t}, nil
}

// Check returns the findings for records in master order.
func (l *Linter) Check(records []*master.Record) []Finding {
	var findings []Finding
	for _, r := range records {
		if detail, ok := checkReading(r.Pronunciation()); !ok {
			findings = append(findings, Finding{
				Record:  r,
				Problem: ProblemReading,
				Detail:  detail,
			})
		}
		if detail, ok := l.checkKnown(r); !ok {
			findings = append(findings, Finding{
				Record:  r,
				Problem: ProblemKnown,
				Detail:  detail,
			})
		}
	}
	return findings
}

func checkReading(reading string) (string, bool) {
	if reading == "" {
		return "empty reading", false
	}
	for _, c := range reading {
		switch {
		case unicode.Is(unicode.Hiragana, c):
		case c == 'ー', c == '・':
		default:
			return fmt.Sprintf("invalid reading character %q", c), false
		}
	}
	return "", true
}

func (l *Linter) checkKnown(r *master.Record) (string, bool) {
	tokens := l.t.Tokenize(r.NormalizedSurface())
	if len(tokens) != 1 || tokens[0].Class != tokenizer.KNOWN {
		return "", true
	}

	reading, ok := tokens[0].Reading()
	if !ok || folding.ToHiragana(reading) != r.Pronunciation() {
		return "", true
	}

	return fmt.Sprintf("%s is in the system dictionary", r.NormalizedSurface()), false
}
