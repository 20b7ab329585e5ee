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

package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRangeDaySpan(t *testing.T) {
	r := ParseDateRange("July 14-16, 1951", false, true)
	require.False(t, r.IsEmpty())
	start, end := r.StartDate(), r.EndDate()
	assertDate(t, wantDate{1951, 7, 14}, start)
	assertDate(t, wantDate{1951, 7, 16}, end)
	assert.Equal(t, "July 14-16, 1951", r.String())
	assert.Equal(t, 2, r.Duration())
	assert.False(t, r.IsOdd())
}

func TestParseDateRangeDayFirstSpan(t *testing.T) {
	r := ParseDateRange("10-11 August 1996", false, true)
	require.False(t, r.IsEmpty())
	assertDate(t, wantDate{1996, 8, 10}, r.StartDate())
	assertDate(t, wantDate{1996, 8, 11}, r.EndDate())
}

func TestParseDateRangeCrossMonth(t *testing.T) {
	r := ParseDateRange("July 10-August 2, 1999", false, true)
	require.False(t, r.IsEmpty())
	assertDate(t, wantDate{1999, 7, 10}, r.StartDate())
	assertDate(t, wantDate{1999, 8, 2}, r.EndDate())
	assert.Equal(t, "July 10-August 2, 1999", r.String())
	assert.True(t, r.IsOdd(), "a three week convention deserves a second look")
}

func TestParseDateRangeSingleDate(t *testing.T) {
	r := ParseDateRange("Dec 1967", false, true)
	require.False(t, r.IsEmpty())
	assert.True(t, r.StartDate().Equal(r.EndDate()))
	assert.Equal(t, 0, r.Duration())
	assert.Equal(t, "December 1967", r.String())
}

func TestParseDateRangeCancelled(t *testing.T) {
	r := ParseDateRange("<s>July 14-16, 1951</s>", false, true)
	require.False(t, r.IsEmpty())
	assert.True(t, r.Cancelled())
	assert.Equal(t, "<s>July 14-16, 1951</s>", r.String())
	assert.Equal(t, "July 14-16, 1951", r.DisplayBare())

	r.SetCancelled(false)
	assert.Equal(t, "July 14-16, 1951", r.String())
}

func TestParseDateRangeEmpty(t *testing.T) {
	assert.True(t, ParseDateRange("", false, true).IsEmpty())
	assert.True(t, ParseDateRange("no dates here", false, true).IsEmpty())

	var r DateRange
	assert.True(t, r.IsOdd())
	assert.Equal(t, 0, r.Duration())
	assert.Equal(t, "", r.String())
}

func TestDateRangeEqualAndLess(t *testing.T) {
	a := ParseDateRange("July 14-16, 1951", false, true)
	b := ParseDateRange("July 14-16, 1951", false, true)
	c := ParseDateRange("July 14-17, 1951", false, true)
	d := ParseDateRange("August 1-2, 1951", false, true)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Less(c), "same start, earlier end")
	assert.True(t, a.Less(d))
	assert.False(t, d.Less(a))
}
