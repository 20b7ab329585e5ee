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
)

// Static lexicons for date interpretation. These are built once at package
// initialization and never mutated, so every lookup is safe for concurrent
// use without locking.

// Package-level compiled regexes for lexicon lookups.
var (
	reJoinedMonths = regexp.MustCompile(`^([a-z]+)[-/]([a-z]+)$`)
)

// monthTable maps normalized month designations to a month number 1-12.
// Fanzine indexes use full names, abbreviations, bare digits, quarter codes
// (some fapazines are numbered by an odd mix of quarter and month, hence
// "4q", "7q", "10q"), and season names.
var monthTable = map[string]int{
	"jan": 1, "january": 1, "1": 1,
	"feb": 2, "february": 2, "feburary": 2, "2": 2,
	"mar": 3, "march": 3, "3": 3,
	"apr": 4, "april": 4, "4": 4,
	"may": 5, "5": 5,
	"jun": 6, "june": 6, "6": 6,
	"jul": 7, "july": 7, "7": 7,
	"aug": 8, "august": 8, "8": 8,
	"sep": 9, "sept": 9, "september": 9, "9": 9,
	"oct": 10, "october": 10, "10": 10,
	"nov": 11, "november": 11, "11": 11,
	"dec": 12, "december": 12, "12": 12,
	"1q": 1, "q1": 1,
	"4q": 4, "q2": 4, "2q": 4,
	"7q": 7, "q3": 7, "3q": 7,
	"10q": 10, "q4": 10,
	"spring": 4, "spr": 4,
	"summer": 7, "sum": 7,
	"fall": 10, "autumn": 10, "fal": 10,
	"winter": 1, "win": 1,
	"xmas": 12, "christmas": 12,
}

// namedDayTable maps holiday and event phrases to a (month, day) pair.
// Keys are lower-cased with commas stripped. A day of 0 means the phrase
// implies only a month. Values are often exactly correct and rarely off by
// enough to matter; moveable feasts are not adjusted by year.
var namedDayTable = map[string]monthDay{
	"unknown":                               {0, 0},
	"unknown ?":                             {0, 0},
	"new year's day":                        {1, 1},
	"edgar allen poe's birthday":            {1, 19},
	"edgar allan poe's birthday":            {1, 19},
	"edgar alan poe's birthday":             {1, 19},
	"groundhog day":                         {2, 4},
	"daniel yergin day":                     {2, 6},
	"canadian national flag day":            {2, 15},
	"national flag day":                     {2, 15},
	"chinese new year":                      {2, 15},
	"lunar new year":                        {2, 15},
	"leap day":                              {2, 29},
	"late february or early march":          {3, 0},
	"ides of march":                         {3, 15},
	"st urho's day":                         {3, 16},
	"st. urho's day":                        {3, 16},
	"saint urho's day":                      {3, 16},
	"vernal equinox":                        {3, 20},
	"spring equinox":                        {3, 20},
	"april fool's day":                      {4, 1},
	"good friday":                           {4, 8},
	"solar eclipse":                         {4, 8},
	"easter":                                {4, 10},
	"national garlic day":                   {4, 19},
	"world free press day":                  {5, 3},
	"cinco de mayo":                         {5, 5},
	"victoria day":                          {5, 22},
	"world no tobacco day":                  {5, 31},
	"world environment day":                 {6, 5},
	"great flood":                           {6, 19},
	"summer solstice":                       {6, 21},
	"world wide party":                      {6, 21},
	"canada day":                            {7, 1},
	"stampede":                              {7, 10},
	"stampede rodeo":                        {7, 10},
	"stampede parade":                       {7, 10},
	"calgary stampede parade":               {7, 10},
	"system administrator appreciation day": {7, 25},
	"apres le deluge":                       {8, 1},
	"august 14 to 16":                       {8, 15},
	"international whale shark day":         {8, 30},
	"labor day":                             {9, 3},
	"labour day":                            {9, 3},
	"september 15 to 18":                    {9, 17},
	"september 17 to 20":                    {9, 19},
	"autumn equinox":                        {9, 20},
	"fall equinox":                          {9, 20},
	"(canadian) thanksgiving":               {10, 15},
	"halloween":                             {10, 31},
	"october (halloween)":                   {10, 31},
	"remembrance day":                       {11, 11},
	"rememberance day":                      {11, 11},
	"thanksgiving":                          {11, 24},
	"around the end":                        {12, 0},
	"november (december)":                   {12, 0},
	"before christmas december":             {12, 15},
	"saturnalia":                            {12, 21},
	"winter solstice":                       {12, 21},
	"christmas":                             {12, 25},
	"christmas issue":                       {12, 25},
	"christmas issue december":              {12, 25},
	"xmas ish the end of december":          {12, 25},
	"boxing day":                            {12, 26},
	"hogmanay":                              {12, 31},
	"auld lang syne":                        {12, 31},
	"over year end":                         {12, 31},
}

// relativeWordTable maps vague positional phrases to an unreasonably precise
// day of month, used for dates like "late September 1953".
var relativeWordTable = map[string]int{
	"start of":          1,
	"early":             7,
	"early in":          7,
	"mid":               15,
	"middle":            15,
	"?":                 15,
	"middle late":       19,
	"late":              24,
	"end of":            30,
	"the end of":        30,
	"around the end of": 30,
}

type monthDay struct {
	month int
	day   int // 0 when only a month is implied
}

// irregularDate is a fully-formed date for an input string that follows no
// useful pattern at all.
type irregularDate struct {
	year    int
	month   int
	day     int
	dayText string
}

// irregularDates is a closed table of otherwise uninterpretable strings found
// in real fanzine indexes. These are enumerable special cases, not a
// convention worth generalizing.
var irregularDates = map[string]irregularDate{
	"solar eclipse 2017":       {2017, 8, 21, "Solar Eclipse"},
	"2018 new year's day":      {2018, 1, 1, "New Years Day"},
	"christmas 2015.":          {2015, 12, 25, "Christmas"},
	"hogmanay 1991/1992":       {1991, 12, 31, "Hogmanay"},
	"grey cup day 2014":        {2014, 11, 11, "Grey Cup Day"},
	"october 2013 halloween":   {2013, 10, 31, "Halloween"},
	"october (halloween) 2015": {2015, 10, 31, "Halloween"},
	"november (december) 2015": {2015, 12, 1, "November (December)"},
	"stampede parade day 2019": {2019, 7, 5, "Stampede Parade Day"},
}

// monthNamesLong and monthNamesShort render a numeric month for display.
var (
	monthNamesLong = [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthNamesShort = [...]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

// MonthNameToInt converts a textual month designation to a month number.
// Case and embedded spaces are ignored. Two month names joined by "-" or "/"
// (e.g. "September-November") resolve to the ceiling of their midpoint.
func MonthNameToInt(text string) (int, bool) {
	text = strings.ToLower(strings.ReplaceAll(text, " ", ""))

	if m := reJoinedMonths.FindStringSubmatch(text); m != nil {
		m1, ok1 := MonthNameToInt(m[1])
		m2, ok2 := MonthNameToInt(m[2])
		if ok1 && ok2 {
			// ceil((m1+m2)/2) without importing math
			return (m1 + m2 + 1) / 2, true
		}
	}

	m, ok := monthTable[text]
	return m, ok
}

// InterpretMonth converts a free-form month string to a month number,
// tolerating surrounding whitespace and a trailing abbreviation period.
func InterpretMonth(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	text = strings.TrimSuffix(text, ".")
	return MonthNameToInt(text)
}

// InterpretNamedDay looks up a holiday phrase such as "Thanksgiving".
// Returns the month, the day (0 when only a month is implied), and whether
// the phrase was recognized.
func InterpretNamedDay(text string) (month, day int, ok bool) {
	key := strings.ToLower(strings.ReplaceAll(text, ",", ""))
	key = strings.TrimSpace(key)
	md, ok := namedDayTable[key]
	if !ok || md.month == 0 {
		return 0, 0, false
	}
	return md.month, md.day, true
}

// InterpretRelativeWords converts a phrase like "late" or "end of" to an
// approximate day of month.
func InterpretRelativeWords(text string) (int, bool) {
	key := strings.ReplaceAll(text, ",", " ")
	key = strings.ReplaceAll(key, "-", " ")
	key = strings.ToLower(strings.TrimSpace(key))
	d, ok := relativeWordTable[key]
	return d, ok
}

// MonthName formats a month number for display. Unknown values render as an
// explicit invalid marker rather than panicking, since they can only come
// from garbled source data.
func MonthName(month int, short bool) string {
	if month < 1 || month > 12 {
		return "<invalid: " + strconv.Itoa(month) + ">"
	}
	if short {
		return monthNamesShort[month-1]
	}
	return monthNamesLong[month-1]
}
