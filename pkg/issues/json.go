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
	"encoding/json"
	"fmt"
)

// SchemaVersion is the version tag written into every JSON-encoded value.
// Decoding rejects versions it does not know, so a future format change
// cannot be silently misread as the current one.
const SchemaVersion = 1

type dateJSON struct {
	Schema       int    `json:"schema"`
	Year         *int   `json:"year,omitempty"`
	Month        *int   `json:"month,omitempty"`
	MonthText    string `json:"monthText,omitempty"`
	Day          *int   `json:"day,omitempty"`
	DayText      string `json:"dayText,omitempty"`
	MonthDayText string `json:"monthDayText,omitempty"`
}

// MarshalJSON encodes the date field-for-field with a schema version.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateJSON{
		Schema:       SchemaVersion,
		Year:         d.year,
		Month:        d.month,
		MonthText:    d.monthText,
		Day:          d.day,
		DayText:      d.dayText,
		MonthDayText: d.monthDayText,
	})
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var enc dateJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}
	if enc.Schema != SchemaVersion {
		return fmt.Errorf("unsupported date schema version %d", enc.Schema)
	}
	d.year = enc.Year
	d.month = enc.Month
	d.monthText = enc.MonthText
	d.day = enc.Day
	d.dayText = enc.DayText
	d.monthDayText = enc.MonthDayText
	return nil
}

type serialJSON struct {
	Schema    int      `json:"schema"`
	Vol       *int     `json:"vol,omitempty"`
	Num       *float64 `json:"num,omitempty"`
	NumSuffix string   `json:"numSuffix,omitempty"`
	Whole     *float64 `json:"whole,omitempty"`
	WSuffix   string   `json:"wSuffix,omitempty"`
}

// MarshalJSON encodes the serial field-for-field with a schema version.
func (s Serial) MarshalJSON() ([]byte, error) {
	return json.Marshal(serialJSON{
		Schema:    SchemaVersion,
		Vol:       s.Vol,
		Num:       s.Num,
		NumSuffix: s.NumSuffix,
		Whole:     s.Whole,
		WSuffix:   s.WSuffix,
	})
}

func (s *Serial) UnmarshalJSON(data []byte) error {
	var enc serialJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("decoding serial: %w", err)
	}
	if enc.Schema != SchemaVersion {
		return fmt.Errorf("unsupported serial schema version %d", enc.Schema)
	}
	s.Vol = enc.Vol
	s.Num = enc.Num
	s.NumSuffix = enc.NumSuffix
	s.Whole = enc.Whole
	s.WSuffix = enc.WSuffix
	return nil
}

type issueSpecJSON struct {
	Schema int    `json:"schema"`
	Date   Date   `json:"date"`
	Serial Serial `json:"serial"`
}

// MarshalJSON encodes the issue spec as its date and serial parts, each carrying
// its own schema tag.
func (s IssueSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(issueSpecJSON{
		Schema: SchemaVersion,
		Date:   s.Date,
		Serial: s.Serial,
	})
}

func (s *IssueSpec) UnmarshalJSON(data []byte) error {
	var enc issueSpecJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("decoding issue spec: %w", err)
	}
	if enc.Schema != SchemaVersion {
		return fmt.Errorf("unsupported issue spec schema version %d", enc.Schema)
	}
	s.Date = enc.Date
	s.Serial = enc.Serial
	return nil
}

type issueSpecListJSON struct {
	Schema int         `json:"schema"`
	Specs  []IssueSpec `json:"specs"`
}

// MarshalJSON encodes the list with a schema version, preserving element
// order.
func (l IssueSpecList) MarshalJSON() ([]byte, error) {
	return json.Marshal(issueSpecListJSON{
		Schema: SchemaVersion,
		Specs:  []IssueSpec(l),
	})
}

func (l *IssueSpecList) UnmarshalJSON(data []byte) error {
	var enc issueSpecListJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("decoding issue spec list: %w", err)
	}
	if enc.Schema != SchemaVersion {
		return fmt.Errorf("unsupported issue spec list schema version %d", enc.Schema)
	}
	*l = IssueSpecList(enc.Specs)
	return nil
}
