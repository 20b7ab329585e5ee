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

package catalog

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `title,issues
Hyphen,"1, 2, 3, 9-12"
Quandry,"V1#2, Dec 1967"
Slant,
Void,!!bogus!!
`

func TestReadRows(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "catalog.csv", []byte(sampleCatalog), 0o644))

	n := NewNormalizer(fs, "title", "issues", false, true)
	rows, err := n.ReadRows("catalog.csv")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Hyphen", rows[0].Title)
	assert.Equal(t, "1, 2, 3, 9-12", rows[0].Issues)
	assert.Empty(t, rows[2].Issues)
}

func TestReadRowsCustomColumns(t *testing.T) {
	fs := afero.NewMemMapFs()
	custom := "Fanzine,Numbers\nHyphen,\"1, 2\"\n"
	require.NoError(t, afero.WriteFile(fs, "catalog.csv", []byte(custom), 0o644))

	n := NewNormalizer(fs, "Fanzine", "Numbers", false, true)
	rows, err := n.ReadRows("catalog.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hyphen", rows[0].Title)
	assert.Equal(t, "1, 2", rows[0].Issues)
}

func TestReadRowsMissingFile(t *testing.T) {
	n := NewNormalizer(afero.NewMemMapFs(), "title", "issues", false, true)
	_, err := n.ReadRows("nope.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog")
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(afero.NewMemMapFs(), "title", "issues", false, true)

	out := n.Normalize([]Row{
		{Title: "Hyphen", Issues: "1, 2, 3, 9-12"},
		{Title: "Quandry", Issues: "V1#2, Dec 1967"},
		{Title: "Slant", Issues: ""},
	})
	require.Len(t, out, 3)

	assert.Equal(t, 7, out[0].Count)
	assert.Equal(t, "#1, #2, #3, #9, #10, #11, #12", out[0].Display)
	assert.NotEmpty(t, out[0].SortKey)

	assert.Equal(t, 2, out[1].Count)
	assert.Contains(t, out[1].Display, "V1#2")
	assert.Contains(t, out[1].Display, "Dec 1967")

	assert.Equal(t, 0, out[2].Count)
	assert.Empty(t, out[2].Display)
}

func TestRunPipeline(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.csv", []byte(sampleCatalog), 0o644))

	n := NewNormalizer(fs, "title", "issues", false, true)
	count, err := n.Run("in.csv", "out.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	data, err := afero.ReadFile(fs, "out.csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "title,raw,display,sort_key,count", lines[0])
	assert.Contains(t, lines[1], "Hyphen")
}
