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

// Package catalog reads fanzine index CSV files, runs every issue
// designation column through the matchers, and writes the normalized
// results back out.
package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/FanzineIndexProject/fanzine-core/pkg/issues"
)

// Row is one input line of a fanzine catalog.
type Row struct {
	Title  string `csv:"title"`
	Issues string `csv:"issues"`
}

// NormalizedRow is the output shape: the raw designation column alongside
// its canonical display form and sort key.
type NormalizedRow struct {
	Title   string `csv:"title"`
	Raw     string `csv:"raw"`
	Display string `csv:"display"`
	SortKey string `csv:"sort_key"`
	Count   int    `csv:"count"`
}

// Normalizer ties the matchers to a filesystem. The afero indirection
// keeps tests off the real disk.
type Normalizer struct {
	fs           afero.Fs
	titleColumn  string
	issuesColumn string
	strict       bool
	complete     bool
}

func NewNormalizer(
	fs afero.Fs,
	titleColumn, issuesColumn string,
	strict, complete bool,
) *Normalizer {
	return &Normalizer{
		fs:           fs,
		titleColumn:  titleColumn,
		issuesColumn: issuesColumn,
		strict:       strict,
		complete:     complete,
	}
}

// ReadRows loads a catalog CSV. Header names are matched case-insensitively
// against the configured column names.
func (n *Normalizer) ReadRows(path string) ([]Row, error) {
	data, err := afero.ReadFile(n.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var rows []Row
	if err := gocsv.UnmarshalBytes(n.canonicalizeHeader(data), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return rows, nil
}

// canonicalizeHeader rewrites the first CSV line so the configured column
// names line up with the csv tags on Row.
func (n *Normalizer) canonicalizeHeader(data []byte) []byte {
	header := data
	var rest []byte
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		header = data[:idx]
		rest = data[idx:]
	}

	cols := strings.Split(strings.TrimRight(string(header), "\r"), ",")
	for i, col := range cols {
		name := strings.ToLower(strings.TrimSpace(strings.Trim(col, `"`)))
		switch name {
		case strings.ToLower(n.titleColumn):
			cols[i] = "title"
		case strings.ToLower(n.issuesColumn):
			cols[i] = "issues"
		default:
			cols[i] = name
		}
	}

	out := []byte(strings.Join(cols, ","))
	return append(out, rest...)
}

// Normalize parses each row's designation column. Rows that produce no
// usable designations are kept, with an advisory in the log, so the output
// still lines up with the input.
func (n *Normalizer) Normalize(rows []Row) []NormalizedRow {
	out := make([]NormalizedRow, 0, len(rows))
	for _, row := range rows {
		list := issues.ParseIssueSpecList(row.Issues, n.strict, n.complete)

		if list.IsEmpty() && strings.TrimSpace(row.Issues) != "" {
			log.Warn().Msgf(
				"no usable designations for %q: %q",
				row.Title, row.Issues,
			)
		}

		for i := range list {
			list[i].Serial.CheckConsistency()
		}

		out = append(out, NormalizedRow{
			Title:   row.Title,
			Raw:     row.Issues,
			Display: list.String(),
			SortKey: list.SortKey(),
			Count:   len(list),
		})
	}
	return out
}

// WriteRows writes the normalized catalog back to disk.
func (n *Normalizer) WriteRows(path string, rows []NormalizedRow) error {
	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := afero.WriteFile(n.fs, path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// Run is the whole pipeline: read, normalize, write.
func (n *Normalizer) Run(inPath, outPath string) (int, error) {
	rows, err := n.ReadRows(inPath)
	if err != nil {
		return 0, err
	}

	normalized := n.Normalize(rows)

	if err := n.WriteRows(outPath, normalized); err != nil {
		return 0, err
	}
	return len(normalized), nil
}
