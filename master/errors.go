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
	"fmt"
)

var (
	// ErrFormat indicates that a master table row is malformed.
	ErrFormat = errors.New("invalid master format")

	// ErrValue indicates that a column value is outside of its enumeration.
	ErrValue = errors.New("invalid value")

	// ErrEncoding indicates that the master table is not valid UTF-8.
	ErrEncoding = errors.New("invalid encoding")
)

// FormatError is returned when a row does not have exactly [NumColumns]
// columns.
type FormatError struct {
	// Line is the 1-based line number in the master table.
	Line int

	// Columns is the number of columns found.
	Columns int

	// Text is the raw line content.
	Text string
}

// Error implements [error.Error].
func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: line %d: column size=%d, input=%q", ErrFormat, e.Line, e.Columns, e.Text)
}

// Unwrap returns [ErrFormat].
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// ValueError is returned when a column value is not a member of its closed
// enumeration.
type ValueError struct {
	// Field is the name of the field being parsed (e.g. "series").
	Field string

	// Value is the invalid token.
	Value string
}

// Error implements [error.Error].
func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: %s %q", ErrValue, e.Field, e.Value)
}

// Unwrap returns [ErrValue].
func (e *ValueError) Unwrap() error {
	return ErrValue
}
