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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/transform"

	"github.com/ianlewis/aikatsu-dic/master"
	"github.com/ianlewis/aikatsu-dic/suggest"
)

// Newline is the line terminator expected by both IMEs.
const Newline = "\r\n"

// WriteOptions are options for writing dictionaries.
type WriteOptions struct {
	// Log receives operator messages.
	Log io.Writer
}

// DefaultWriteOptions is the default options for Write and WriteFile.
var DefaultWriteOptions = &WriteOptions{
	Log: io.Discard,
}

func (o *WriteOptions) log() io.Writer {
	if o == nil || o.Log == nil {
		return DefaultWriteOptions.Log
	}
	return o.Log
}

// Write reduces the records for a suggestion dictionary and writes them to w
// in the target's row layout and encoding. Nothing is written when no records
// remain, not even a byte order mark.
func Write(w io.Writer, target Target, records []*master.Record, options *WriteOptions) error {
	reduced := suggest.Reduce(records, &suggest.Options{Log: options.log()})
	if len(reduced) == 0 {
		return nil
	}

	tw := transform.NewWriter(w, target.Encoding().NewEncoder())
	bw := bufio.NewWriter(tw)

	for _, r := range reduced {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s%s", r.Pronunciation(), r.NormalizedSurface(), r.POS(), Newline); err != nil {
			return fmt.Errorf("writing entry %q: %w", r.NormalizedSurface(), err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s dictionary: %w", target, err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("writing %s dictionary: %w", target, err)
	}
	return nil
}

// WriteFile writes the dictionary for records of the given kind to dir,
// creating dir if necessary. It returns the path of the written file.
func WriteFile(dir string, target Target, kind master.Kind, records []*master.Record, options *WriteOptions) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path = filepath.Join(dir, target.FileName(kind))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating dictionary: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, closeErr)
		}
	}()

	if err := Write(f, target, records, options); err != nil {
		return path, fmt.Errorf("writing %q: %w", path, err)
	}
	return path, nil
}
