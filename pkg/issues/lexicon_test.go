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

func TestMonthNameToInt(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{name: "full name", text: "January", want: 1, wantOK: true},
		{name: "abbreviation", text: "dec", want: 12, wantOK: true},
		{name: "four letter sept", text: "Sept", want: 9, wantOK: true},
		{name: "digit string", text: "7", want: 7, wantOK: true},
		{name: "quarter code", text: "Q3", want: 7, wantOK: true},
		{name: "season spring", text: "Spring", want: 4, wantOK: true},
		{name: "season winter", text: "winter", want: 1, wantOK: true},
		{name: "xmas", text: "Xmas", want: 12, wantOK: true},
		{name: "common misspelling", text: "Feburary", want: 2, wantOK: true},
		{name: "joined months midpoint", text: "September-November", want: 10, wantOK: true},
		{name: "joined adjacent months round up", text: "June-July", want: 7, wantOK: true},
		{name: "slash joined months", text: "Jan/Feb", want: 2, wantOK: true},
		{name: "not a month", text: "Octember", wantOK: false},
		{name: "thirteen", text: "13", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MonthNameToInt(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInterpretMonth(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{name: "abbreviation with period", text: "Jan.", want: 1, wantOK: true},
		{name: "surrounding whitespace", text: "  October  ", want: 10, wantOK: true},
		{name: "empty", text: "", wantOK: false},
		{name: "garbage", text: "spoo", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InterpretMonth(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInterpretNamedDay(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantMonth int
		wantDay   int
		wantOK    bool
	}{
		{name: "halloween", text: "Halloween", wantMonth: 10, wantDay: 31, wantOK: true},
		{name: "st urho with period", text: "St. Urho's Day", wantMonth: 3, wantDay: 16, wantOK: true},
		{name: "commas stripped", text: "New Year's Day,", wantMonth: 1, wantDay: 1, wantOK: true},
		{name: "month only phrase", text: "November (December)", wantMonth: 12, wantDay: 0, wantOK: true},
		{name: "month zero phrase rejected", text: "unknown", wantOK: false},
		{name: "not a holiday", text: "payday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, day, ok := InterpretNamedDay(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMonth, month)
				assert.Equal(t, tt.wantDay, day)
			}
		})
	}
}

func TestInterpretRelativeWords(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{name: "early", text: "early", want: 7, wantOK: true},
		{name: "mid", text: "Mid", want: 15, wantOK: true},
		{name: "late", text: "late", want: 24, wantOK: true},
		{name: "end of", text: "end of", want: 30, wantOK: true},
		{name: "bare question mark", text: "?", want: 15, wantOK: true},
		{name: "hyphenated phrase", text: "middle-late", want: 19, wantOK: true},
		{name: "unknown", text: "sometime", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InterpretRelativeWords(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1, false))
	assert.Equal(t, "Jan", MonthName(1, true))
	assert.Equal(t, "December", MonthName(12, false))
	assert.Equal(t, "<invalid: 0>", MonthName(0, false))
	assert.Equal(t, "<invalid: 13>", MonthName(13, true))
}

func TestInterpretRoman(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{name: "simple", text: "III", want: 3, wantOK: true},
		{name: "subtractive", text: "IV", want: 4, wantOK: true},
		{name: "nine", text: "ix", want: 9, wantOK: true},
		{name: "twelve", text: "XII", want: 12, wantOK: true},
		{name: "forty", text: "XL", want: 40, wantOK: true},
		{name: "five hundred", text: "D", want: 500, wantOK: true},
		{name: "four hundred subtractive", text: "CD", want: 400, wantOK: true},
		{name: "mixed case", text: "XiV", want: 14, wantOK: true},
		{name: "not roman", text: "ABC", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InterpretRoman(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
