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
	"fmt"
	"io"

	"github.com/ianlewis/aikatsu-dic/master"
)

// CreateOptions are options for Create.
type CreateOptions struct {
	// OutDir is the output directory.
	OutDir string

	// Targets are the dictionary targets to write.
	Targets []Target

	// Series selects the entries to include.
	Series master.SeriesSet

	// Log receives operator messages.
	Log io.Writer
}

// DefaultCreateOptions is the default options for Create.
var DefaultCreateOptions = &CreateOptions{
	OutDir:  "out",
	Targets: Targets(),
	Series:  master.AllSeries(),
	Log:     io.Discard,
}

// Create writes a dictionary for each entry kind and target and returns the
// paths of the written files. Files written before an error remain.
func Create(m *master.Master, options *CreateOptions) ([]string, error) {
	if options == nil {
		options = DefaultCreateOptions
	}
	log := options.Log
	if log == nil {
		log = io.Discard
	}

	var paths []string
	for _, kind := range master.Kinds() {
		records := m.Extract(kind, options.Series)

		done := map[Target]bool{}
		for _, target := range options.Targets {
			if done[target] {
				continue
			}
			done[target] = true

			fmt.Fprintf(log, "creating %s %s dictionary\n", target, kind)
			path, err := WriteFile(options.OutDir, target, kind, records, &WriteOptions{Log: log})
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}

	return paths, nil
}
