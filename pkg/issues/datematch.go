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

	"github.com/araddon/dateparse"
)

// Date grammar patterns. The cascade in ParseDate tries these in a fixed
// order and the first match wins; reordering them changes which of several
// overlapping conventions claims an ambiguous string.
var (
	reBareYear      = regexp.MustCompile(`^(\d{4})$`)
	reSlashedDate   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
	reTextYear      = regexp.MustCompile(`^([\s\w\-',]+).?\s+(\d\d|\d{4})$`)
	reTextDayYear   = regexp.MustCompile(`^([\s\w\-',]+).?\s+(\d+),?\s+(\d\d|\d{4})$`)
	reDayTextYear   = regexp.MustCompile(`^(\d{1,2})\s+([\s\w\-',]+).?\s+(\d\d|\d{4})$`)
	reAnyTextYear   = regexp.MustCompile(`^(.+?)[,\s]+(\d\d|\d{4})$`)
	reWinterSpan    = regexp.MustCompile(`^[Ww]inter[,\s]+\d{4}\s*-\s*(\d\d)$`)
	reMonthPairYear = regexp.MustCompile(`^(\w+)\s*[-/]\s*(\w+)\s*,?\s*(\d{4})$`)
	reYearSpan      = regexp.MustCompile(`^\d{4}\s*-\s*(\d\d)$`)
	reMonthDayYear  = regexp.MustCompile(`^(\w+)\s+(\d+),?\s+(\d\d|\d{4})$`)
)

// ParseDate interprets the *whole* string as a date. It does not find a
// date embedded in other text. strict rejects the aggressive generic-parser
// fallback; complete requires all of the input to be part of the date (every
// grammar here is whole-string anyway, so together the flags gate only the
// final fallback step).
//
// The grammars are tried in a fixed precedence order; the first one that
// yields a valid date wins and later grammars are never consulted. An
// unrecognizable string returns an empty Date, never an error.
func ParseDate(text string, strict, complete bool) Date {
	d := NewDate()

	// Whitespace is not a date.
	dateText := strings.TrimSpace(text)
	if dateText == "" {
		return d
	}

	// Long dashes and double hyphens read as single hyphens.
	dateText = strings.ReplaceAll(dateText, "—", "-")
	dateText = strings.ReplaceAll(dateText, "–", "-")
	dateText = strings.ReplaceAll(dateText, "--", "-")

	// Some dates follow no useful pattern at all. Check the closed table
	// of known oddballs before anything else.
	if irr, ok := irregularDates[strings.ToLower(dateText)]; ok {
		d.SetYear(irr.year)
		d.SetMonth(irr.month)
		d.SetDayWithText(irr.day, irr.dayText)
		return d
	}

	// A 4-digit number all alone is a year.
	if m := reBareYear.FindStringSubmatch(dateText); m != nil {
		if y, ok := ValidFannishYear(m[1]); ok {
			d.SetYear(y)
			return d
		}
	}

	// mm/dd/yy and mm/dd/yyyy. US month-first order is tried first; if the
	// day is invalid for that month, retry as European day-first.
	if m := reSlashedDate.FindStringSubmatch(dateText); m != nil {
		if y, ok := ValidFannishYear(m[3]); ok {
			g1, _ := strconv.Atoi(m[1])
			g2, _ := strconv.Atoi(m[2])
			if ValidateDay(g2, g1, y) {
				d.SetYear(y)
				d.SetMonth(g1)
				d.SetDay(g2)
				return d
			}
			if ValidateDay(g1, g2, y) {
				d.SetYear(y)
				d.SetMonth(g2)
				d.SetDay(g1)
				return d
			}
		}
	}

	// <month text> <2- or 4-digit year>. The text is analyzed three ways in
	// order: as "<month> [day]", as a named-day phrase, and finally as
	// "<relative words> <month>" ("late September").
	if m := reTextYear.FindStringSubmatch(dateText); m != nil {
		mtext := collapseCommas(m[1])
		if y, ok := ValidFannishYear(m[2]); ok {
			if month, day, hasDay, ok := interpretMonthDay(mtext); ok {
				// An out-of-range day falls through to the bounding
				// grammar further down, same as the later day grammars.
				if !hasDay || ValidateDay(day, month, y) {
					d.SetYear(y)
					d.SetMonth(month)
					if hasDay {
						d.SetDay(day)
					}
					return d
				}
			}

			if month, day, ok := InterpretNamedDay(mtext); ok {
				d.SetYear(y)
				d.SetMonth(month)
				if day != 0 {
					d.SetDay(day)
				}
				d.SetMonthDayText(mtext)
				return d
			}

			// The last token is assumed to be the month, everything before
			// it the relative phrase.
			tokens := strings.Fields(strings.NewReplacer("-", " ", ",", " ").Replace(mtext))
			if len(tokens) > 1 {
				modifier := strings.Join(tokens[:len(tokens)-1], " ")
				if month, ok := MonthNameToInt(tokens[len(tokens)-1]); ok {
					if day, ok := InterpretRelativeWords(modifier); ok {
						d.SetYear(y)
						d.SetMonth(month)
						d.SetDayWithText(day, modifier)
						return d
					}
				}
			}
		}
	}

	// "<mmm>. <dd>, <year>" with an abbreviation period a generic parser
	// chokes on. An out-of-range day falls through to the bounding grammar
	// further down.
	if m := reTextDayYear.FindStringSubmatch(dateText); m != nil {
		mtext := collapseCommas(m[1])
		if y, ok := ValidFannishYear(m[3]); ok {
			if month, ok := InterpretMonth(mtext); ok {
				if day, err := strconv.Atoi(m[2]); err == nil && ValidateDay(day, month, y) {
					d.SetYear(y)
					d.SetMonth(month)
					d.SetDay(day)
					return d
				}
			}
		}
	}

	// "<dd> <month> [,] <year>", the day-first variant.
	if m := reDayTextYear.FindStringSubmatch(dateText); m != nil {
		mtext := collapseCommas(m[2])
		if y, ok := ValidFannishYear(m[3]); ok {
			if month, ok := InterpretMonth(mtext); ok {
				if day, err := strconv.Atoi(m[1]); err == nil && ValidateDay(day, month, y) {
					d.SetYear(y)
					d.SetMonth(month)
					d.SetDay(day)
					return d
				}
			}
		}
	}

	// Weird day/month idioms like "St. Urho's Day 2013": arbitrary text
	// followed by a year, matched against the named-day table.
	if m := reAnyTextYear.FindStringSubmatch(dateText); m != nil {
		mtext := collapseCommas(m[1])
		if y, ok := ValidFannishYear(m[2]); ok {
			if month, day, ok := InterpretNamedDay(mtext); ok {
				d.SetYear(y)
				d.SetMonth(month)
				if day != 0 {
					d.SetDay(day)
				}
				d.SetMonthDayText(mtext)
				return d
			}
		}
	}

	// "Winter 1951-52" means something like January 1952. Use the second
	// (two-digit) year.
	if m := reWinterSpan.FindStringSubmatch(dateText); m != nil {
		y, _ := strconv.Atoi(m[1])
		d.SetYear(y)
		d.SetMonthWithText(1, "Winter")
		return d
	}

	// "June - July 2001" and "June/July 2001" are taken to mean the first
	// month, with both names kept for display.
	if m := reMonthPairYear.FindStringSubmatch(dateText); m != nil {
		if month, ok := InterpretMonth(m[1]); ok {
			y, _ := strconv.Atoi(m[3])
			d.SetYear(y)
			d.SetMonthWithText(month, m[1]+"-"+m[2])
			return d
		}
	}

	// "1951-52" alone: the second year, and given the form it is probably a
	// vaguely winterish date.
	if m := reYearSpan.FindStringSubmatch(dateText); m != nil {
		y, _ := strconv.Atoi(m[1])
		d.SetYear(y)
		d.SetMonth(1)
		return d
	}

	// The fannish "April 31, 1967" (didn't want to miss that April mailing
	// date). Run the out-of-range day through the bounder.
	if m := reMonthDayYear.FindStringSubmatch(dateText); m != nil {
		if y, ok := ValidFannishYear(m[3]); ok {
			if month, ok := InterpretMonth(m[1]); ok {
				if day, err := strconv.Atoi(m[2]); err == nil {
					if bd, bm, by, ok := BoundDay(day, month, y); ok {
						d.SetYear(by)
						d.SetMonth(bm)
						d.SetDay(bd)
						return d
					}
				}
			}
		}
	}

	// Last resort: a general-purpose natural-language date parser. It is
	// pretty aggressive, so only use it when neither strict nor complete is
	// set.
	if !strict && !complete {
		if t, err := dateparse.ParseAny(dateText); err == nil {
			d.SetYear(t.Year())
			d.SetMonth(int(t.Month()))
			d.SetDay(t.Day())
			return d
		}
	}

	// Nothing worked.
	return d
}

// collapseCommas turns comma-space combinations into single spaces.
func collapseCommas(text string) string {
	text = strings.ReplaceAll(text, ",", " ")
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return strings.TrimSpace(text)
}

// interpretMonthDay handles "June 20", "20 June", and bare "June". hasDay is
// false when only a month was supplied.
func interpretMonthDay(text string) (month, day int, hasDay, ok bool) {
	text = strings.TrimSuffix(strings.TrimSpace(text), ",")
	pieces := strings.Fields(text)

	switch len(pieces) {
	case 1:
		if m, ok := MonthNameToInt(pieces[0]); ok {
			return m, 0, false, true
		}
	case 2:
		if m, ok := MonthNameToInt(pieces[0]); ok {
			if d, err := strconv.Atoi(pieces[1]); err == nil {
				return m, d, true, true
			}
		}
		if m, ok := MonthNameToInt(pieces[1]); ok {
			if d, err := strconv.Atoi(pieces[0]); err == nil {
				return m, d, true, true
			}
		}
	}
	return 0, 0, false, false
}
