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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/aikatsu-dic/master"
	"github.com/ianlewis/aikatsu-dic/search"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Look up master table entries by reading or surface",
		ArgsUsage: "QUERY",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected one QUERY argument, got %d", ErrFlagParse, c.NArg())
			}

			m, err := master.Open(c.String("master"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAikatsudic, err)
			}

			s, err := search.New(m.Records(), nil)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAikatsudic, err)
			}
			records, err := s.Search(c.Args().First())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAikatsudic, err)
			}

			if len(records) == 0 {
				fmt.Fprintf(c.App.ErrWriter, "no entries found for %q\n", c.Args().First())
				return nil
			}
			printRecords(c.App.Writer, records)
			return nil
		},
	}
}
