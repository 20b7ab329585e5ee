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

// Serial grammar patterns, tried in the fixed order ParseSerial documents.
var (
	reVolNum        = regexp.MustCompile(`(?i)^v(?:ol\.?|olume)?\s*(\d+)\s*#\s*(\d+)([a-z]?)$`)
	reNumFraction   = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)
	reVolSlashNum   = regexp.MustCompile(`^(\d+)/(\d+)$`)
	reRomanSlashNum = regexp.MustCompile(`(?i)^([ivxlcdm]+)/(\d+)$`)
	reNumRange      = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)
	reHashWhole     = regexp.MustCompile(`^#\s*(\d+(?:\.\d+)?)([a-zA-Z]?)$`)
	reDecimalNum    = regexp.MustCompile(`^(\d+)\.(\d+)$`)
	reTrailingDec   = regexp.MustCompile(`(\d+)\.(\d+)\s*$`)
	reTrailingWhole = regexp.MustCompile(`(\d+)\s*([a-zA-Z]?)\s*$`)
	reTrailingRoman = regexp.MustCompile(`(?i)(?:^|\s)([ivxlcdm]+)\s*$`)
)

// ParseSerial interprets a string as an issue sequence designator: "V1#2",
// "#17a", "7 1/2", "III/4", "9-12" and friends. Grammars are tried in a
// fixed precedence order and the first match wins. strict rejects the
// loose trailing-number forms; complete requires the whole string to be the
// designator rather than just its tail. An unrecognizable string returns an
// empty Serial.
//
// A range like "9-12" yields only the range start as a whole number; range
// expansion into individual issues belongs to the list parser, not here.
func ParseSerial(text string, strict, complete bool) Serial {
	var s Serial

	t := trimDesignator(text)
	if t == "" {
		return s
	}

	// V3#2, Vol 3 #2a
	if m := reVolNum.FindStringSubmatch(t); m != nil {
		v, _ := strconv.Atoi(m[1])
		n, _ := strconv.ParseFloat(m[2], 64)
		s.Vol = &v
		s.Num = &n
		s.NumSuffix = m[3]
		return s
	}

	// "7 1/2": a whole number with a fractional tail.
	if m := reNumFraction.FindStringSubmatch(t); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		p, _ := strconv.ParseFloat(m[2], 64)
		q, _ := strconv.ParseFloat(m[3], 64)
		if q != 0 {
			w := n + p/q
			s.Whole = &w
			return s
		}
	}

	// "3/2" reads as volume 3, number 2.
	if m := reVolSlashNum.FindStringSubmatch(t); m != nil {
		v, _ := strconv.Atoi(m[1])
		n, _ := strconv.ParseFloat(m[2], 64)
		s.Vol = &v
		s.Num = &n
		return s
	}

	// "III/4": Roman volume, Arabic number.
	if m := reRomanSlashNum.FindStringSubmatch(t); m != nil {
		if v, ok := InterpretRoman(m[1]); ok {
			n, _ := strconv.ParseFloat(m[2], 64)
			s.Vol = &v
			s.Num = &n
			return s
		}
	}

	// "9-12": only the start of the range is this serial's number.
	if m := reNumRange.FindStringSubmatch(t); m != nil {
		w, _ := strconv.ParseFloat(m[1], 64)
		s.Whole = &w
		return s
	}

	// "#17", "#17a", "#7.5"
	if m := reHashWhole.FindStringSubmatch(t); m != nil {
		w, _ := strconv.ParseFloat(m[1], 64)
		s.Whole = &w
		s.WSuffix = m[2]
		return s
	}

	// A decimal like "12.5" is a fractional issue number.
	decRe := reDecimalNum
	if !complete {
		decRe = reTrailingDec
	}
	if m := decRe.FindStringSubmatch(t); m != nil {
		n, _ := strconv.ParseFloat(m[1]+"."+m[2], 64)
		s.Num = &n
		return s
	}

	// The loose forms below claim any trailing number or Roman numeral and
	// are far too eager for strict or whole-string parsing.
	if strict || complete {
		return s
	}

	if m := reTrailingWhole.FindStringSubmatch(t); m != nil {
		w, _ := strconv.ParseFloat(m[1], 64)
		s.Whole = &w
		s.WSuffix = m[2]
		return s
	}

	if m := reTrailingRoman.FindStringSubmatch(t); m != nil {
		if n, ok := InterpretRoman(m[1]); ok {
			f := float64(n)
			s.Num = &f
			return s
		}
	}

	return s
}

// trimDesignator trims whitespace and normalizes long dashes and double
// hyphens to single hyphens, the same cleanup the date matcher applies.
func trimDesignator(text string) string {
	t := strings.TrimSpace(text)
	t = strings.ReplaceAll(t, "—", "-")
	t = strings.ReplaceAll(t, "–", "-")
	return strings.ReplaceAll(t, "--", "-")
}
