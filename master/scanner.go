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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NumColumns is the number of columns in each master table row.
const NumColumns = 6

// maxLineSize is the maximum size of a single master table line.
const maxLineSize = 1024 * 1024

// Scanner scans the master table from start to end.
type Scanner struct {
	s      *bufio.Scanner
	line   int
	record *Record
	err    error
}

// NewScanner returns a new master table scanner. The first line read from r
// is treated as a header and discarded.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s.Split(scanLines)
	return &Scanner{
		s: s,
	}
}

// Scan advances the scanner to the next record. It returns false if the
// scan stops either by reaching the end of the table or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	s.record = nil

	for s.s.Scan() {
		s.line++
		raw := s.s.Text()
		if !utf8.ValidString(raw) {
			s.err = fmt.Errorf("%w: line %d", ErrEncoding, s.line)
			return false
		}

		// The header is skipped unconditionally.
		if s.line == 1 {
			continue
		}

		text := strings.TrimRightFunc(raw, unicode.IsSpace)
		if text == "" {
			continue
		}

		record, err := parseRow(text, s.line)
		if err != nil {
			s.err = err
			return false
		}
		s.record = record
		return true
	}

	//nolint:wrapcheck // error should not be wrapped
	s.err = s.s.Err()
	return false
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.record
}

// Line returns the line number of the most recent line read.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// scanLines is a [bufio.SplitFunc] that ends lines at "\r\n", "\n" or a bare
// "\r". The terminator is not included in the token.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be followed by "\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func parseRow(text string, line int) (*Record, error) {
	cols := strings.Split(text, "\t")
	if len(cols) != NumColumns {
		return nil, &FormatError{
			Line:    line,
			Columns: len(cols),
			Text:    text,
		}
	}

	series, err := ParseSeriesSet(cols[4])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	kind, err := ParseKind(cols[5])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	record, err := NewRecord(cols[0], cols[1], cols[2], cols[3], series, kind)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	return record, nil
}
