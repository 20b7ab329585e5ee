// Fanzine Core
// Copyright (c) 2026 The Fanzine Index Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Fanzine Core.
//
// Fanzine Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fanzine Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fanzine Core.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/FanzineIndexProject/fanzine-core/pkg/catalog"
	"github.com/FanzineIndexProject/fanzine-core/pkg/config"
	"github.com/FanzineIndexProject/fanzine-core/pkg/helpers"
	"github.com/FanzineIndexProject/fanzine-core/pkg/issues"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	dateArg := flag.String(
		"date",
		"",
		"parse a single date designation and print it",
	)
	serialArg := flag.String(
		"serial",
		"",
		"parse a single serial designation and print it",
	)
	rangeArg := flag.String(
		"range",
		"",
		"parse a date range and print it",
	)
	listArg := flag.String(
		"list",
		"",
		"parse a comma-separated designation list and print it",
	)
	inArg := flag.String(
		"in",
		"",
		"normalize a catalog CSV file",
	)
	outArg := flag.String(
		"out",
		"",
		"output path for the normalized catalog",
	)
	jsonOut := flag.Bool(
		"json",
		false,
		"print parse results as JSON instead of display text",
	)
	strictFlag := flag.Bool(
		"strict",
		false,
		"reject dubious forms the matchers would otherwise guess at",
	)
	looseFlag := flag.Bool(
		"loose",
		false,
		"allow designations embedded in surrounding text",
	)
	debugFlag := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	configDir := flag.String(
		"config-dir",
		"",
		"override the config directory",
	)
	flag.Parse()

	dir := *configDir
	if dir == "" {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to find config directory: %w", err)
		}
		dir = filepath.Join(userDir, "fanzine")
	}

	if err := helpers.InitLogging(dir, []io.Writer{zerolog.ConsoleWriter{
		Out: os.Stderr,
	}}); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	cfg, err := config.NewConfig(dir, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *debugFlag || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	strict := cfg.StrictParsing() || *strictFlag
	complete := cfg.CompleteParsing() && !*looseFlag

	switch {
	case *dateArg != "":
		d := issues.ParseDate(*dateArg, strict, complete)
		return printResult(*jsonOut, d, d.StringLong(), d.SortKey())
	case *serialArg != "":
		s := issues.ParseSerial(*serialArg, strict, complete)
		return printResult(*jsonOut, s, s.String(), s.SortKey())
	case *rangeArg != "":
		r := issues.ParseDateRange(*rangeArg, strict, complete)
		return printResult(*jsonOut, nil, r.String(), r.SortKey())
	case *listArg != "":
		list := issues.ParseIssueSpecList(*listArg, strict, complete)
		return printResult(*jsonOut, list, list.String(), list.SortKey())
	case *inArg != "":
		return normalizeCatalog(cfg, *inArg, *outArg, strict, complete)
	default:
		flag.Usage()
		return errors.New("nothing to do")
	}
}

// printResult writes either the JSON form or "display<TAB>sortkey" to
// stdout. A nil value falls back to display text even under -json.
func printResult(asJSON bool, value any, display, sortKey string) error {
	if asJSON && value != nil {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s\t%s\n", display, sortKey)
	return nil
}

func normalizeCatalog(cfg *config.Instance, in, out string, strict, complete bool) error {
	if out == "" {
		ext := filepath.Ext(in)
		out = in[:len(in)-len(ext)] + ".normalized" + ext
	}

	n := catalog.NewNormalizer(
		afero.NewOsFs(),
		cfg.TitleColumn(),
		cfg.IssuesColumn(),
		strict,
		complete,
	)

	count, err := n.Run(in, out)
	if err != nil {
		log.Error().Err(err).Msg("catalog normalization failed")
		return err
	}

	log.Info().Msgf("normalized %d rows to %s", count, out)
	fmt.Printf("normalized %d rows to %s\n", count, out)
	return nil
}
