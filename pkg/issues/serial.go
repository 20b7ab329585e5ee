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

// Serial is a possibly-incomplete issue sequence designator. Whole is an
// absolute count across the whole series ("#17"); Vol and Num are a
// volume-relative count ("V3#2"). Both may be present at once and are then
// expected to be consistent, but consistency is advisory, not enforced:
// both values are always retained.
//
// Num and Whole are floats because fractional issues ("7 1/2", "12.5")
// really exist.
type Serial struct {
	Vol       *int
	Num       *float64
	NumSuffix string
	Whole     *float64
	WSuffix   string
}

// IsEmpty reports whether no field of the designator is set.
func (s Serial) IsEmpty() bool {
	return s.Vol == nil && s.Num == nil && s.NumSuffix == "" &&
		s.Whole == nil && s.WSuffix == ""
}

// CheckConsistency emits an advisory log line when the serial carries both a
// whole number and a volume-relative number. The two cannot be
// cross-validated without series knowledge, so this only flags the records a
// human might want to review.
func (s Serial) CheckConsistency() {
	if s.Whole != nil && (s.Vol != nil || s.Num != nil) {
		log.Debug().Msgf("serial carries both whole and vol/num: %s", s.String())
	}
}

// vnEqual reports whether the volume-relative designations agree, treating
// absent-vs-absent as agreement. Suffixes compare case-insensitively.
func (s Serial) vnEqual(other Serial) bool {
	return eqIntPtr(s.Vol, other.Vol) &&
		eqFloatPtr(s.Num, other.Num) &&
		strings.EqualFold(s.NumSuffix, other.NumSuffix)
}

// wholeEqual reports whether the whole-number designations agree, treating
// absent-vs-absent as agreement.
func (s Serial) wholeEqual(other Serial) bool {
	return eqFloatPtr(s.Whole, other.Whole) &&
		strings.EqualFold(s.WSuffix, other.WSuffix)
}

// Equal implements the three-tier partial-information rule, most permissive
// first: defined wholes that match make the serials equal regardless of
// vol/num; otherwise whole and vol/num must both agree; otherwise a missing
// whole on either side lets matching vol/num carry the comparison (partial
// information is not a contradiction). An empty serial equals only another
// empty serial.
func (s Serial) Equal(other Serial) bool {
	if s.IsEmpty() != other.IsEmpty() {
		return false
	}
	if s.IsEmpty() {
		return true
	}
	if s.Whole != nil && other.Whole != nil &&
		*s.Whole == *other.Whole && strings.EqualFold(s.WSuffix, other.WSuffix) {
		return true
	}
	if s.wholeEqual(other) && s.vnEqual(other) {
		return true
	}
	if (s.Whole == nil || other.Whole == nil) && s.vnEqual(other) {
		return true
	}
	return false
}

// Less orders serials the same way their sort keys do: whole-designated
// issues first (whole numerically, then suffix, no suffix ranking before
// any suffix), then volume-relative issues by vol, num, and suffix, with an
// undefined field ranking below any defined value.
func (s Serial) Less(other Serial) bool {
	if s.Whole != nil && other.Whole != nil {
		if *s.Whole != *other.Whole {
			return *s.Whole < *other.Whole
		}
		return strings.ToLower(s.WSuffix) < strings.ToLower(other.WSuffix)
	}
	if s.Whole != nil {
		return true
	}
	if other.Whole != nil {
		return false
	}
	if c, decided := cmpIntPtr(s.Vol, other.Vol); decided {
		return c
	}
	if c, decided := cmpFloatPtr(s.Num, other.Num); decided {
		return c
	}
	return strings.ToLower(s.NumSuffix) < strings.ToLower(other.NumSuffix)
}

// cmpFloatPtr compares two optional floats, absent ranking below any defined
// value. decided is false when the two tie.
func cmpFloatPtr(a, b *float64) (less, decided bool) {
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

func eqFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// SortKey formats the serial as a fixed-width string (7 integer and 2
// decimal digits, zero padded) so that lexicographic order equals the Less
// ordering. Whole-designated issues use a '#' marker and volume-relative
// ones 'V'/'N'; '#' sorts before 'V', keeping the two families in the same
// order Less puts them.
func (s Serial) SortKey() string {
	if s.Whole != nil {
		return fmt.Sprintf("#%010.2f%s", *s.Whole, strings.ToLower(s.WSuffix))
	}
	v := 0
	if s.Vol != nil {
		v = *s.Vol
	}
	n := 0.0
	if s.Num != nil {
		n = *s.Num
	}
	return fmt.Sprintf("V%07dN%010.2f%s", v, n, strings.ToLower(s.NumSuffix))
}

// String renders the serial for display: "V1#2", "#17a", or the combined
// "V1#2 (#17)" form when both designations are known.
func (s Serial) String() string {
	if s.Vol != nil && s.Num != nil {
		out := "V" + strconv.Itoa(*s.Vol) + "#" + formatIssueNumber(*s.Num) + s.NumSuffix
		if s.Whole != nil {
			out += " (#" + formatIssueNumber(*s.Whole) + s.WSuffix + ")"
		}
		return out
	}
	if s.Whole != nil {
		return "#" + formatIssueNumber(*s.Whole) + s.WSuffix
	}
	return ""
}

// formatIssueNumber renders an issue number without trailing zeros: 2 -> "2",
// 7.5 -> "7.5".
func formatIssueNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
