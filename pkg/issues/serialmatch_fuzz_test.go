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

import "testing"

// FuzzParseSerial exercises the serial cascade with arbitrary input.
func FuzzParseSerial(f *testing.F) {
	f.Add("V1#2")
	f.Add("Vol. 3 #2a")
	f.Add("#17a")
	f.Add("7 1/2")
	f.Add("3/2")
	f.Add("III/4")
	f.Add("9-12")
	f.Add("12.5")
	f.Add("Issue 42b")
	f.Add("Canto XII")

	f.Add("")
	f.Add("#")
	f.Add("##")
	f.Add("V#")
	f.Add("1/0")
	f.Add("0/0/0")
	f.Add("999999999999999999999999")
	f.Add("mmmmmmmmmm")

	f.Fuzz(func(t *testing.T, input string) {
		for _, strict := range []bool{true, false} {
			for _, complete := range []bool{true, false} {
				s := ParseSerial(input, strict, complete)
				_ = s.String()
				_ = s.SortKey()
				if s.IsEmpty() && s.String() != "" {
					t.Fatalf("empty serial has display text %q for input %q", s.String(), input)
				}
			}
		}
	})
}

// FuzzParseIssueSpecList exercises the whole pipeline: tokenization, range
// expansion, and both matchers.
func FuzzParseIssueSpecList(f *testing.F) {
	f.Add("1, 2, 3, 9-12, Jan 1999")
	f.Add("V1#2, V1#3, Dec 1967")
	f.Add("Jan 15, 1999")
	f.Add("#3, Jan 15, 1999, #4")
	f.Add("9-12")
	f.Add("12-9")

	f.Add("")
	f.Add(",,,,,,")
	f.Add("1-9999")
	f.Add("-,-,-,-")
	f.Add("Jan, Jan, Jan, Jan")

	f.Fuzz(func(t *testing.T, input string) {
		list := ParseIssueSpecList(input, false, true)
		for i := range list {
			if list[i].IsEmpty() {
				t.Fatalf("empty spec stored at %d for input %q", i, input)
			}
		}
		_ = list.String()
		_ = list.SortKey()
	})
}
