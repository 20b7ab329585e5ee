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
)

// wantDate is the expected shape of a parsed date; -1 means the field must
// be absent.
type wantDate struct {
	year  int
	month int
	day   int
}

func assertDate(t *testing.T, want wantDate, got Date) {
	t.Helper()
	y, okY := got.Year()
	m, okM := got.Month()
	d, okD := got.Day()
	if want.year == -1 {
		assert.False(t, okY, "year should be absent")
	} else {
		assert.True(t, okY, "year should be present")
		assert.Equal(t, want.year, y)
	}
	if want.month == -1 {
		assert.False(t, okM, "month should be absent")
	} else {
		assert.True(t, okM, "month should be present")
		assert.Equal(t, want.month, m)
	}
	if want.day == -1 {
		assert.False(t, okD, "day should be absent")
	} else {
		assert.True(t, okD, "day should be present")
		assert.Equal(t, want.day, d)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want wantDate
	}{
		{name: "month and year", text: "Dec 1967", want: wantDate{1967, 12, -1}},
		{name: "full month and year", text: "December 1967", want: wantDate{1967, 12, -1}},
		{name: "bare year", text: "1967", want: wantDate{1967, -1, -1}},
		{name: "two digit year after month", text: "Dec 67", want: wantDate{1967, 12, -1}},
		{name: "us slashed date", text: "12/25/1967", want: wantDate{1967, 12, 25}},
		{name: "european slashed date", text: "25/12/1967", want: wantDate{1967, 12, 25}},
		{name: "slashed date two digit year", text: "6/15/87", want: wantDate{1987, 6, 15}},
		{name: "month day year", text: "June 20, 1987", want: wantDate{1987, 6, 20}},
		{name: "abbreviated month with period", text: "Jan. 5, 1987", want: wantDate{1987, 1, 5}},
		{name: "day first", text: "5 Jan. 1987", want: wantDate{1987, 1, 5}},
		{name: "day first no period", text: "20 June 1987", want: wantDate{1987, 6, 20}},
		{name: "day first with comma", text: "20 June, 1987", want: wantDate{1987, 6, 20}},
		{name: "season", text: "Summer 1953", want: wantDate{1953, 7, -1}},
		{name: "winter span takes second year", text: "Winter 1951-52", want: wantDate{1952, 1, -1}},
		{name: "year span alone", text: "1951-52", want: wantDate{1952, 1, -1}},
		{name: "slash joined months take first", text: "June/July 2001", want: wantDate{2001, 6, -1}},
		{name: "relative words", text: "late September 1953", want: wantDate{1953, 9, 24}},
		{name: "named day with year", text: "Halloween 1967", want: wantDate{1967, 10, 31}},
		{name: "named day with periods", text: "St. Urho's Day 2013", want: wantDate{2013, 3, 16}},
		{name: "irregular date string", text: "Solar Eclipse 2017", want: wantDate{2017, 8, 21}},
		{name: "fannish april 31 bounds to may 1", text: "April 31, 1967", want: wantDate{1967, 5, 1}},
		{name: "quarter code", text: "4Q 1953", want: wantDate{1953, 4, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.text, false, true)
			assert.False(t, got.IsEmpty(), "expected a parsed date")
			assertDate(t, tt.want, got)
		})
	}
}

func TestParseDateRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace", text: "   "},
		{name: "implausible year", text: "2150"},
		{name: "word salad", text: "not a date at all"},
		{name: "serial designation", text: "V1#2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.text, false, true)
			assert.True(t, got.IsEmpty())
		})
	}
}

func TestParseDateDisplayText(t *testing.T) {
	d := ParseDate("Winter 1951-52", false, true)
	assert.Equal(t, "Winter", d.MonthText())
	assert.Equal(t, "Winter 1952", d.String())

	d = ParseDate("June/July 2001", false, true)
	assert.Equal(t, "June-July", d.MonthText())

	d = ParseDate("late September 1953", false, true)
	assert.Equal(t, "late", d.DayText())
	assert.Equal(t, "late Sep 1953", d.String())

	d = ParseDate("Solar Eclipse 2017", false, true)
	assert.Equal(t, "Solar Eclipse", d.DayText())
}

func TestParseDateFallback(t *testing.T) {
	// The generic parser only runs when neither strict nor complete is set.
	got := ParseDate("2005-07-18", false, false)
	assertDate(t, wantDate{2005, 7, 18}, got)

	assert.True(t, ParseDate("2005-07-18", true, true).IsEmpty())
	assert.True(t, ParseDate("2005-07-18", false, true).IsEmpty())
}

func TestParseDateNormalizesDashes(t *testing.T) {
	assertDate(t, wantDate{1952, 1, -1}, ParseDate("Winter 1951—52", false, true))
	assertDate(t, wantDate{1952, 1, -1}, ParseDate("1951--52", false, true))
}
