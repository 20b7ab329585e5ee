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
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// IssueSpecList is an ordered sequence of issue designations for one
// fanzine title, e.g. "1, 2, 3, 9-12, Jan 1999". Insertion order is
// preserved and duplicates are legal: a title may be listed twice under
// different designations pending disambiguation.
type IssueSpecList []IssueSpec

// ParseIssueSpecList splits a compound comma-delimited string into
// designations. The one legitimate internal comma is the one in
// "Month Day, Year", which is stitched back together before matching.
// Numeric ranges like "9-12" expand into one whole-number designation per
// issue. An unrecognizable token is logged and skipped; one bad token never
// aborts the rest of the list.
func ParseIssueSpecList(text string, strict, complete bool) IssueSpecList {
	var list IssueSpecList

	var tokens []string
	for _, tok := range strings.Split(trimDesignator(text), ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	for len(tokens) > 0 {
		tok := tokens[0]

		// "Jan 15" followed by "1999" is one date that the comma split cut
		// in half. Rejoin and try it as a strict whole-string date.
		if len(tokens) >= 2 && startsWithMonthName(tok) && isFourDigits(tokens[1]) {
			if d := ParseDate(tok+", "+tokens[1], true, true); !d.IsEmpty() {
				list = append(list, IssueSpec{Date: d})
				tokens = tokens[2:]
				continue
			}
		}

		// "9-12" is issues 9 through 12 inclusive. A hyphenated token that
		// does not expand ("5-5", "1951-52") is not consumed here; it falls
		// through to the combinator, which may still read it as a year span
		// or a serial range start.
		if lo, hi, ok := splitIntRange(tok); ok && lo < hi {
			for n := lo; n <= hi; n++ {
				list = append(list, WholeSpec(float64(n)))
			}
			tokens = tokens[1:]
			continue
		}

		if spec := ParseIssueSpec(tok, strict, complete); !spec.IsEmpty() {
			list = append(list, spec)
		} else {
			log.Warn().Msgf("unrecognized issue designation, skipping: %q", tok)
		}
		tokens = tokens[1:]
	}

	return list
}

// startsWithMonthName reports whether the token begins with a letter and
// its first word is a known month name.
func startsWithMonthName(tok string) bool {
	if tok == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(tok)
	if !unicode.IsLetter(first) {
		return false
	}
	word := strings.Fields(tok)[0]
	_, ok := MonthNameToInt(word)
	return ok
}

func isFourDigits(tok string) bool {
	if len(tok) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// splitIntRange splits "9-12" into its bounds; ok is false unless both
// sides are integers.
func splitIntRange(tok string) (lo, hi int, ok bool) {
	left, right, found := strings.Cut(tok, "-")
	if !found {
		return 0, 0, false
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(left))
	hi, err2 := strconv.Atoi(strings.TrimSpace(right))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

// IsEmpty reports whether the list holds no designations.
func (l IssueSpecList) IsEmpty() bool {
	return len(l) == 0
}

// Equal compares element by element, in order.
func (l IssueSpecList) Equal(other IssueSpecList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Less orders lists lexicographically by their elements.
func (l IssueSpecList) Less(other IssueSpecList) bool {
	for i := range l {
		if i >= len(other) {
			return false
		}
		if l[i].Less(other[i]) {
			return true
		}
		if other[i].Less(l[i]) {
			return false
		}
	}
	return len(l) < len(other)
}

// SortKey is the sort key of the first designation; an empty list sorts
// before everything.
func (l IssueSpecList) SortKey() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].SortKey()
}

// String renders the list as a comma-separated display string.
func (l IssueSpecList) String() string {
	parts := make([]string, 0, len(l))
	for i := range l {
		if s := l[i].String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
