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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/aikatsu-dic/lint"
	"github.com/ianlewis/aikatsu-dic/master"
)

// ErrLint indicates that lint findings were reported in strict mode.
var ErrLint = fmt.Errorf("%w: lint findings", ErrAikatsudic)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check master table entries",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "strict",
				Usage:              "exit with an error if any problems are found",
				DisableDefaultText: true,
			},
		},
		Action: func(c *cli.Context) error {
			m, err := master.Open(c.String("master"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAikatsudic, err)
			}

			l, err := lint.New()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAikatsudic, err)
			}

			findings := l.Check(m.Records())
			if len(findings) == 0 {
				fmt.Fprintln(c.App.ErrWriter, "no problems found")
				return nil
			}

			tbl := table.New("Problem", "Surface", "Reading", "Kind", "Detail").WithWriter(c.App.Writer)
			for _, f := range findings {
				tbl.AddRow(f.Problem, f.Record.Surface(), f.Record.Pronunciation(), f.Record.Kind(), f.Detail)
			}
			tbl.Print()

			if c.Bool("strict") {
				return fmt.Errorf("%w: %d problems", ErrLint, len(findings))
			}
			return nil
		},
	}
}
