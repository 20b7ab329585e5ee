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
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Fannish year bounds: years outside this range (exclusive) cannot be a
// plausible fan-publishing date.
const (
	minFannishYear = 1860
	maxFannishYear = 2100
)

// YearAs4Digits expands a two-digit year to four digits. Two-digit years
// become ambiguous at 2033: values below 33 map to the 2000s, the rest to
// the 1900s. Values above 100 are returned unchanged.
func YearAs4Digits(year int) int {
	if year > 100 {
		return year
	}
	if year < 33 {
		return year + 2000
	}
	return year + 1900
}

// ValidFannishYear expands a year string and accepts it only if it lies
// strictly between 1860 and 2100. A failed conversion or implausible year
// reports ok=false rather than an error: "not a year" is an ordinary outcome
// when sifting index text.
func ValidFannishYear(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	y := YearAs4Digits(n)
	if y <= minFannishYear || y >= maxFannishYear {
		return 0, false
	}
	return y, true
}

// InterpretYear converts a free-form year string to a four-digit year.
// Tolerates up to two trailing question marks and year ranges like
// "1953-54" (which resolve to the later year).
func InterpretYear(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	text = strings.TrimSuffix(text, "?")
	text = strings.TrimSuffix(text, "?")
	text = strings.TrimSpace(text)

	if n, err := strconv.Atoi(text); err == nil {
		return YearAs4Digits(n), true
	}

	// Maybe a range like "1953-54" or "1953–54".
	sep := "-"
	if !strings.Contains(text, sep) {
		sep = "–"
	}
	if parts := strings.Split(text, sep); len(parts) == 2 {
		n1, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		n2, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 == nil && err2 == nil {
			y1 := YearAs4Digits(n1)
			y2 := YearAs4Digits(n2)
			if y2 > y1 {
				return y2, true
			}
			return y1, true
		}
	}

	log.Warn().Msgf("year conversion failed: %q", text)
	return 0, false
}

// MonthLength returns the number of days in a month. February is always 28:
// leap years are deliberately not modeled here, an acceptable precision loss
// for publication dates.
func MonthLength(month int) int {
	switch month {
	case 2:
		return 28
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		return 0
	}
}

// ValidateDay reports whether day is a real day of the given month. When a
// year is supplied, February 29 is allowed in leap years.
func ValidateDay(day, month, year int) bool {
	length := MonthLength(month)
	if length == 0 || day < 1 {
		return false
	}
	if month == 2 && year != 0 && year%4 == 0 && year%400 != 0 {
		length = 29
	}
	return day <= length
}

// BoundDay resolves a day that lies outside its month, rolling it into the
// adjacent months and years: "April 31, 1967" becomes May 1, 1967, and
// "December -2, 1980" becomes November 28, 1980. Days more than a bit past
// either end of the month (below -10 or above 60) are more probably typos
// than deliberate jokes and are rejected.
func BoundDay(day, month, year int) (d, m, y int, ok bool) {
	if month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if day < -10 || day > 60 {
		return 0, 0, 0, false
	}

	if day >= 1 && day <= MonthLength(month) {
		return day, month, year, true
	}

	if day < 1 {
		for day < 1 {
			month--
			if month < 1 {
				month = 12
				year--
			}
			day += MonthLength(month)
		}
		return day, month, year, true
	}

	for day > MonthLength(month) {
		day -= MonthLength(month)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return day, month, year, true
}

// YearName formats a year for display, expanding two-digit values.
func YearName(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(YearAs4Digits(year))
}
