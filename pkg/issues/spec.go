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
)

var reAllDigits = regexp.MustCompile(`^\d+$`)

// IssueSpec is one issue's full designation: a date and a serial, either of
// which may be empty. Neither sub-value determines the other; both are
// retained when both are known (e.g. "V1#2, Dec 1967").
type IssueSpec struct {
	Date   Date
	Serial Serial
}

// WholeSpec builds an IssueSpec designating a bare whole issue number.
func WholeSpec(whole float64) IssueSpec {
	var s IssueSpec
	s.Serial.Whole = &whole
	return s
}

// ParseIssueSpec classifies one token as a date or a serial. A purely
// numeric token is always a whole issue number (a bare "1967" in an issue
// list is issue 1967, not the year). Otherwise the date matcher gets first
// claim in strict whole-string mode, then the serial matcher, first
// requiring the whole string and then settling for a designator tail. An
// unrecognizable token returns an empty IssueSpec.
func ParseIssueSpec(text string, strict, complete bool) IssueSpec {
	var spec IssueSpec

	t := trimDesignator(text)
	if t == "" {
		return spec
	}

	if reAllDigits.MatchString(t) {
		w, _ := strconv.ParseFloat(t, 64)
		spec.Serial.Whole = &w
		return spec
	}

	if d := ParseDate(t, true, true); !d.IsEmpty() {
		spec.Date = d
		return spec
	}

	if s := ParseSerial(t, strict, true); !s.IsEmpty() {
		spec.Serial = s
		return spec
	}

	if s := ParseSerial(t, strict, false); !s.IsEmpty() {
		spec.Serial = s
		return spec
	}

	return spec
}

// IsEmpty reports whether both the date and the serial are empty.
func (s IssueSpec) IsEmpty() bool {
	return s.Date.IsEmpty() && s.Serial.IsEmpty()
}

// Equal compares designations: non-empty serials on both sides decide the
// comparison by the serial rule, otherwise the dates decide.
func (s IssueSpec) Equal(other IssueSpec) bool {
	if !s.Serial.IsEmpty() && !other.Serial.IsEmpty() {
		return s.Serial.Equal(other.Serial)
	}
	return s.Date.Equal(other.Date)
}

// Less orders by date first, then serial, matching SortKey order.
func (s IssueSpec) Less(other IssueSpec) bool {
	return s.SortKey() < other.SortKey()
}

// SortKey concatenates the date and serial sort keys. Dates dominate, so a
// dated catalog sorts chronologically with serial order breaking ties.
func (s IssueSpec) SortKey() string {
	return s.Date.SortKey() + "|" + s.Serial.SortKey()
}

// String renders the designation, joining serial and date when both exist:
// "V1#2, Dec 1967".
func (s IssueSpec) String() string {
	serialText := s.Serial.String()
	dateText := ""
	if !s.Date.IsEmpty() {
		dateText = s.Date.String()
	}
	switch {
	case serialText != "" && dateText != "":
		return serialText + ", " + dateText
	case serialText != "":
		return serialText
	default:
		return dateText
	}
}
