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
	"regexp"
	"strconv"
	"strings"
	"time"
)

var reCancelledMarkup = regexp.MustCompile(`^\s*<s>(.*)</s>\s*$`)

// DateRange is a span of dates, used mostly for convention listings: "July
// 14-16, 1951", "Dec 31, 1999-Jan 2, 2000". A single date parses as a range
// whose start and end coincide. A range wrapped in <s>...</s> strikethrough
// markup is a cancelled event; the markup style is remembered so display
// can reproduce it.
type DateRange struct {
	start     Date
	end       Date
	cancelled bool
	useMarkup bool
}

// StartDate returns the start of the range.
func (r DateRange) StartDate() Date { return r.start }

// EndDate returns the end of the range.
func (r DateRange) EndDate() Date { return r.end }

// Cancelled reports whether the event was struck through in the source.
func (r DateRange) Cancelled() bool { return r.cancelled }

// SetCancelled marks the range cancelled or not.
func (r *DateRange) SetCancelled(cancelled bool) { r.cancelled = cancelled }

// ParseDateRange interprets a string as a date range. With exactly one
// hyphen the string is tried against four range shapes in order:
//
//	<monthday>-<monthday> <year>
//	<month> <day>-<day>[,] <year>
//	<day>-<day> <month>[,] <year>
//	<full date>-<full date>
//
// Anything else (or a failed range parse) is tried as a single date, which
// becomes a range of one day. An unrecognizable string returns an empty
// DateRange.
func ParseDateRange(text string, strict, complete bool) DateRange {
	var r DateRange

	s := strings.TrimSpace(text)
	if s == "" {
		return r
	}

	if m := reCancelledMarkup.FindStringSubmatch(s); m != nil {
		r.cancelled = true
		r.useMarkup = true
		s = m[1]
	}

	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	s = strings.ReplaceAll(s, "--", "-")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.ReplaceAll(s, " -", "-")
	s = strings.ReplaceAll(s, "- ", "-")

	// Exactly one hyphen is the signature of an interpretable range.
	if strings.Count(s, "-") == 1 {
		s1, s2, _ := strings.Cut(s, "-")

		// <monthday>-<monthday> <year>: the right side is a full date whose
		// year also completes the left side.
		d2 := ParseDate(s2, false, true)
		if y, ok := d2.Year(); ok {
			if _, hasM := d2.Month(); hasM {
				if _, hasD := d2.Day(); hasD {
					d1 := ParseDate(s1+" "+strconv.Itoa(y), false, true)
					if _, hasM1 := d1.Month(); hasM1 {
						if _, hasD1 := d1.Day(); hasD1 {
							r.start = d1
							r.end = d2
							return r
						}
					}
				}
			}
		}

		// <month> <day>-<day>[,] <year>
		pieces := splitRangePieces(s)
		if len(pieces) == 4 {
			if _, err := strconv.Atoi(pieces[0]); err != nil {
				d1 := ParseDate(pieces[0]+" "+pieces[1]+", "+pieces[3], false, true)
				d2 := ParseDate(pieces[0]+" "+pieces[2]+", "+pieces[3], false, true)
				if !d1.IsEmpty() && !d2.IsEmpty() {
					r.start = d1
					r.end = d2
					return r
				}
			}
		}

		// <day>-<day> <month>[,] <year>
		words := strings.Fields(s)
		if len(words) > 2 && strings.Contains(words[0], "-") {
			w1, w2, _ := strings.Cut(words[0], "-")
			d1 := ParseDate(w1+" "+words[1]+" "+words[2], false, true)
			if !d1.IsEmpty() {
				d2 := ParseDate(w2+" "+words[1]+" "+words[2], false, true)
				if !d2.IsEmpty() {
					r.start = d1
					r.end = d2
					return r
				}
			}
		}

		// <full date>-<full date>
		d1 := ParseDate(s1, false, true)
		if !d1.IsEmpty() {
			d2 := ParseDate(s2, false, true)
			if !d2.IsEmpty() {
				r.start = d1
				r.end = d2
				return r
			}
		}
	}

	// An ordinary single date is a one-day range.
	if d := ParseDate(s, strict, complete); !d.IsEmpty() {
		r.start = d
		r.end = d
	}
	return r
}

// splitRangePieces splits on runs of spaces, hyphens, and commas, dropping
// empty pieces.
func splitRangePieces(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == ','
	})
}

// IsEmpty reports whether either end of the range is missing or empty.
func (r DateRange) IsEmpty() bool {
	return r.start.IsEmpty() || r.end.IsEmpty()
}

// Equal compares both endpoints; the cancelled flag does not affect
// identity.
func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// Less orders by start date, then end date.
func (r DateRange) Less(other DateRange) bool {
	if r.start.Less(other.start) {
		return true
	}
	if r.start.Equal(other.start) {
		return r.end.Less(other.end)
	}
	return false
}

// SortKey concatenates the endpoint sort keys.
func (r DateRange) SortKey() string {
	return r.start.SortKey() + "|" + r.end.SortKey()
}

// Duration returns the length of the range in days, 0 when either end is
// unknown. Missing months and days are taken as January and the 1st.
func (r DateRange) Duration() int {
	if r.IsEmpty() {
		return 0
	}
	return int(asTime(r.end).Sub(asTime(r.start)).Hours() / 24)
}

// IsOdd flags ranges worth a human look: empty ones and those longer than a
// typical convention weekend.
func (r DateRange) IsOdd() bool {
	if r.IsEmpty() {
		return true
	}
	return r.Duration() > 5
}

func asTime(d Date) time.Time {
	y, _ := d.Year()
	m, okM := d.Month()
	if !okM {
		m = 1
	}
	day, okD := d.Day()
	if !okD {
		day = 1
	}
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// String renders the range compactly, collapsing whatever the two ends
// share: "July 14-16, 1951" rather than "July 14, 1951-July 16, 1951".
func (r DateRange) String() string {
	s := r.displayBare()
	if r.cancelled {
		if r.useMarkup {
			return "<s>" + s + "</s>"
		}
		if s != "" {
			return s + " (cancelled)"
		}
	}
	return s
}

// DisplayBare renders the range without any cancellation decoration.
func (r DateRange) DisplayBare() string {
	return r.displayBare()
}

func (r DateRange) displayBare() string {
	d1, d2 := r.start, r.end
	if d1.IsEmpty() && d2.IsEmpty() {
		return ""
	}
	if d1.IsEmpty() {
		return d2.String()
	}
	if d2.IsEmpty() {
		return d1.String()
	}

	y1, okY1 := d1.Year()
	y2, okY2 := d2.Year()
	if okY1 != okY2 || y1 != y2 {
		return d1.String() + "-" + d2.String()
	}

	m1, okM1 := d1.Month()
	m2, okM2 := d2.Month()
	if okM1 != okM2 || m1 != m2 {
		if !okM1 || !okM2 {
			return d1.String() + "-" + d2.String()
		}
		return MonthName(m1, false) + " " + d1.DayText() + "-" +
			MonthName(m2, false) + " " + d2.DayText() + ", " + strconv.Itoa(y1)
	}
	if !okM1 {
		return strconv.Itoa(y1)
	}

	day1, okD1 := d1.Day()
	day2, okD2 := d2.Day()
	if okD1 != okD2 || day1 != day2 {
		return MonthName(m1, false) + " " + d1.DayText() + "-" + d2.DayText() +
			", " + strconv.Itoa(y1)
	}
	if !okD1 {
		return MonthName(m1, false) + " " + strconv.Itoa(y1)
	}
	return MonthName(m1, false) + " " + strconv.Itoa(day1) + ", " + strconv.Itoa(y1)
}
