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
	"io"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/aikatsu-dic/master"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List master table entries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Usage:   "include entries of `KIND` (all, character, music)",
				Aliases: []string{"k"},
				Value:   master.SelectAll,
			},
			seriesFlag(),
		},
		Action: func(c *cli.Context) error {
			kinds, err := parseKindSelection(c.String("kind"))
			if err != nil {
				return err
			}
			series, err := master.ParseSeriesSelection(c.String("series"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}

			m, err := master.Open(c.String("master"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAikatsudic, err)
			}

			var records []*master.Record
			for _, kind := range kinds {
				records = append(records, m.Extract(kind, series)...)
			}
			printRecords(c.App.Writer, records)
			return nil
		},
	}
}

// printRecords prints records as a table.
func printRecords(w io.Writer, records []*master.Record) {
	tbl := table.New("Surface", "Normalized", "POS", "Reading", "Series", "Kind").WithWriter(w)
	for _, r := range records {
		tbl.AddRow(r.Surface(), r.NormalizedSurface(), r.POS(), r.Pronunciation(), r.Series(), r.Kind())
	}
	tbl.Print()
}
