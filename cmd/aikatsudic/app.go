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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/aikatsu-dic/imedic"
	"github.com/ianlewis/aikatsu-dic/master"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

const (
	defaultMasterPath = "../data/aikatsu_master_dic.tsv"
	defaultOutputDir  = "../out"
)

// ErrAikatsudic is a parent error for all command errors.
var ErrAikatsudic = errors.New("aikatsudic")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrAikatsudic)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

func seriesFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "series",
		Usage:   "include entries of `SERIES` (all, aikatsu, stars, friends)",
		Aliases: []string{"s"},
		Value:   master.SelectAll,
	}
}

func newAikatsudicApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Create Aikatsu! IME dictionaries.",
		Description: strings.Join([]string{
			"Creates Google Japanese Input and ATOK user dictionaries for",
			"character names and music titles from the Aikatsu! master table.",
		}, "\n"),
		Flags: []cli.Flag{
			// Commands read the master table path from the app context.
			&cli.StringFlag{
				Name:    "master",
				Usage:   "read the master table from `PATH`",
				Aliases: []string{"m"},
				EnvVars: []string{"AIKATSUDIC_MASTER"},
				Value:   defaultMasterPath,
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Usage:   "write dictionaries to `DIR`",
				Aliases: []string{"o"},
				EnvVars: []string{"AIKATSUDIC_OUTPUT_DIR"},
				Value:   defaultOutputDir,
			},
			&cli.StringFlag{
				Name:    "target",
				Usage:   "create dictionaries for `IME` (all, google, atok)",
				Aliases: []string{"v", "version"},
				Value:   master.SelectAll,
			},
			seriesFlag(),
			&cli.BoolFlag{
				Name:               "print-version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		Action: func(c *cli.Context) error {
			if c.Bool("print-version") {
				return printVersion(c)
			}
			return createDictionaries(c)
		},
		Commands: []*cli.Command{
			listCommand(),
			queryCommand(),
			checkCommand(),
		},
	}
}

func createDictionaries(c *cli.Context) error {
	targets, err := imedic.ParseTargetSelection(c.String("target"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	series, err := master.ParseSeriesSelection(c.String("series"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	m, err := master.Open(c.String("master"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAikatsudic, err)
	}

	paths, err := imedic.Create(m, &imedic.CreateOptions{
		OutDir:  c.String("output-dir"),
		Targets: targets,
		Series:  series,
		Log:     c.App.ErrWriter,
	})
	for _, path := range paths {
		fmt.Fprintln(c.App.Writer, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAikatsudic, err)
	}
	return nil
}

// parseKindSelection parses a kind selector. The value [master.SelectAll]
// selects every kind.
func parseKindSelection(s string) ([]master.Kind, error) {
	if s == master.SelectAll {
		return master.Kinds(), nil
	}
	k, err := master.ParseKind(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return []master.Kind{k}, nil
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, info.GitVersion)
	fmt.Fprintln(c.App.Writer)
	fmt.Fprintln(c.App.Writer, info.String())
	return nil
}
