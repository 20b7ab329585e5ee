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
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Date is a possibly-incomplete publication date. Any of year, month, and
// day may be unknown, and month and day may carry display text that differs
// from their numeric value (e.g. "Xmas" for month 12). Fields are reached
// only through the setters, which maintain the numeric/text pairing: setting
// a numeric field clears its paired text, and setting only the text computes
// the numeric form when it is interpretable.
//
// Date is a value type. Copy it freely; none of its methods mutate shared
// state.
type Date struct {
	year         *int
	month        *int
	monthText    string
	day          *int
	dayText      string
	monthDayText string
}

// NewDate returns an empty Date.
func NewDate() Date {
	return Date{}
}

// Year returns the four-digit year, if known.
func (d Date) Year() (int, bool) {
	if d.year == nil {
		return 0, false
	}
	return *d.year, true
}

// Month returns the numeric month 1-12, if known.
func (d Date) Month() (int, bool) {
	if d.month == nil {
		return 0, false
	}
	return *d.month, true
}

// Day returns the day of month, if known.
func (d Date) Day() (int, bool) {
	if d.day == nil {
		return 0, false
	}
	return *d.day, true
}

// MonthText returns the display text for the month: the stored text if any,
// else the long name of the numeric month, else "".
func (d Date) MonthText() string {
	if d.monthText != "" {
		return d.monthText
	}
	if d.month != nil {
		return MonthName(*d.month, false)
	}
	return ""
}

// DayText returns the display text for the day: the stored text if any, else
// the numeric day as a string, else "".
func (d Date) DayText() string {
	if d.dayText != "" {
		return d.dayText
	}
	if d.day != nil {
		return strconv.Itoa(*d.day)
	}
	return ""
}

// MonthDayText returns the display override for the combined month and day,
// e.g. "Solar Eclipse". It affects display only, never sorting.
func (d Date) MonthDayText() string {
	return d.monthDayText
}

// SetYear stores a year, expanding two-digit values.
func (d *Date) SetYear(year int) {
	y := YearAs4Digits(year)
	d.year = &y
}

// SetYearText interprets a year string. Uninterpretable text leaves the year
// absent.
func (d *Date) SetYearText(text string) {
	if y, ok := InterpretYear(text); ok {
		d.year = &y
	} else {
		d.year = nil
	}
}

// SetMonth stores a numeric month. Any text month is blown away as no
// longer relevant.
func (d *Date) SetMonth(month int) {
	d.month = &month
	d.monthText = ""
}

// SetMonthWithText stores a numeric month together with its display text.
func (d *Date) SetMonthWithText(month int, text string) {
	d.month = &month
	d.monthText = text
}

// SetMonthText stores month display text, computing the numeric month when
// the text is interpretable.
func (d *Date) SetMonthText(text string) {
	d.monthText = text
	if m, ok := InterpretMonth(text); ok {
		d.month = &m
	} else {
		d.month = nil
	}
}

// SetDay stores a numeric day. Any day text is blown away.
func (d *Date) SetDay(day int) {
	d.day = &day
	d.dayText = ""
}

// SetDayWithText stores a numeric day together with its display text.
func (d *Date) SetDayWithText(day int, text string) {
	d.day = &day
	d.dayText = text
}

// SetDayText stores day display text, computing the numeric day from a
// number or a named-day phrase when possible.
func (d *Date) SetDayText(text string) {
	d.dayText = text
	text = strings.TrimSpace(text)
	if text == "" {
		d.day = nil
		return
	}
	if n, err := strconv.Atoi(text); err == nil {
		d.day = &n
		return
	}
	if _, day, ok := InterpretNamedDay(text); ok && day != 0 {
		d.day = &day
		return
	}
	log.Warn().Msgf("day conversion failed: %q", text)
	d.day = nil
}

// SetMonthDayText stores a display override for both month and day.
func (d *Date) SetMonthDayText(text string) {
	d.monthDayText = text
}

// IsEmpty reports whether nothing at all is known about the date.
func (d Date) IsEmpty() bool {
	return d.year == nil && d.month == nil && d.day == nil &&
		d.monthText == "" && d.dayText == ""
}

// Equal implements partial-information date equality: two empty dates are
// equal; a date with no numeric fields at all is equal to nothing (not even
// itself); otherwise the three numeric fields must agree pairwise, with
// unknown-vs-unknown counting as agreement. Text fields are display only and
// are ignored.
func (d Date) Equal(other Date) bool {
	if d.IsEmpty() && other.IsEmpty() {
		return true
	}
	if d.year == nil && d.month == nil && d.day == nil {
		return false
	}
	if other.year == nil && other.month == nil && other.day == nil {
		return false
	}
	return eqIntPtr(d.year, other.year) &&
		eqIntPtr(d.month, other.month) &&
		eqIntPtr(d.day, other.day)
}

// Less orders dates by year, then month, then day. An unknown field sorts
// strictly before any known value, so undated material leads a sorted
// catalog rather than interleaving with it.
func (d Date) Less(other Date) bool {
	if c, decided := cmpIntPtr(d.year, other.year); decided {
		return c
	}
	if c, decided := cmpIntPtr(d.month, other.month); decided {
		return c
	}
	if c, decided := cmpIntPtr(d.day, other.day); decided {
		return c
	}
	return false
}

// eqIntPtr reports whether two optional ints agree (both absent or both the
// same value).
func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// cmpIntPtr compares two optional ints. decided is false when the two tie.
func cmpIntPtr(a, b *int) (less, decided bool) {
	if a == nil && b == nil {
		return false, false
	}
	if a == nil {
		return true, true
	}
	if b == nil {
		return false, true
	}
	if *a != *b {
		return *a < *b, true
	}
	return false, false
}

// SortKey formats the date as zero-padded "YYYY-MM_DD" so that lexicographic
// string order equals chronological order, with unknown fields sorting
// first.
func (d Date) SortKey() string {
	y, m, day := "0000", "00", "00"
	if d.year != nil {
		y = fmt.Sprintf("%04d", *d.year)
	}
	if d.month != nil {
		m = fmt.Sprintf("%02d", *d.month)
	}
	if d.day != nil {
		day = fmt.Sprintf("%02d", *d.day)
	}
	return y + "-" + m + "_" + day
}

// String renders the date for display using short month names. See
// StringLong for full month names.
func (d Date) String() string {
	return d.format(true)
}

// StringLong renders the date for display using full month names.
func (d Date) StringLong() string {
	return d.format(false)
}

func (d Date) format(short bool) string {
	yearText := ""
	hasYear := d.year != nil
	if hasYear {
		yearText = strconv.Itoa(*d.year)
	}

	hasMonth := d.month != nil
	monthText := ""
	if hasMonth {
		monthText = MonthName(*d.month, short)
	}
	if d.monthText != "" {
		monthText = d.monthText
		hasMonth = true
	}

	hasDay := d.day != nil
	dayText := ""
	if hasDay {
		dayText = strconv.Itoa(*d.day)
	}
	if d.dayText != "" {
		dayText = d.dayText
		hasDay = true
	}

	// Relative day text like "late" reads as a month qualifier, not a day.
	switch strings.ToLower(dayText) {
	case "early", "mid", "middle", "late":
		monthText = dayText + " " + monthText
		hasDay = false
		dayText = ""
	}

	// A combined month-day override replaces both for display.
	if d.monthDayText != "" {
		monthText = d.monthDayText
		hasMonth = true
		hasDay = false
		dayText = ""
	}

	switch {
	case hasYear && hasMonth && hasDay:
		return monthText + " " + dayText + ", " + yearText
	case hasYear && hasMonth:
		return monthText + " " + yearText
	case hasYear && hasDay:
		return "mon? " + dayText + ", " + yearText
	case hasYear:
		return yearText
	case hasMonth && hasDay:
		return monthText + " " + dayText
	case hasMonth:
		return monthText
	case hasDay:
		return "Mon? " + dayText + ", Yr?"
	default:
		return "(undated)"
	}
}
