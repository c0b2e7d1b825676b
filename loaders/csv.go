//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2025 Aaron Mathis aaron.mathis@gmail.com
//
// This file is part of RoomETL.
//
// RoomETL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RoomETL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RoomETL. If not, see https://www.gnu.org/licenses/.

package loaders

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/aaronlmathis/roometl"
)

// CSVLoader implements roometl.DataLoader for CSV sources. A header row is
// required; students need id, name and room columns, rooms need id and name.
type CSVLoader struct {
	opts Options
}

// NewCSVLoader creates a CSV loader with default or overridden options.
func NewCSVLoader(options ...Option) *CSVLoader {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	return &CSVLoader{opts: opts}
}

// Load implements the roometl.DataLoader interface.
func (l *CSVLoader) Load(ctx context.Context, studentsSource, roomsSource string) ([]roometl.Student, []roometl.Room, error) {
	studentRecords, err := l.loadRecords(ctx, studentsSource)
	if err != nil {
		return nil, nil, err
	}
	roomRecords, err := l.loadRecords(ctx, roomsSource)
	if err != nil {
		return nil, nil, err
	}

	students, err := studentsFromRecords(studentRecords)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := roomsFromRecords(roomRecords)
	if err != nil {
		return nil, nil, err
	}
	return students, rooms, nil
}

// loadRecords reads one source fully and converts each data row into a
// mapping record keyed by the header row.
func (l *CSVLoader) loadRecords(ctx context.Context, locator string) ([]map[string]interface{}, error) {
	rc, err := openSource(ctx, locator, l.opts.Source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &roometl.ParseError{Path: locator, Err: err}
	}
	if len(rows) == 0 {
		return nil, &roometl.ParseError{Path: locator, Err: fmt.Errorf("missing header row")}
	}

	headers := rows[0]
	records := make([]map[string]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]interface{}, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[strings.TrimSpace(header)] = parseValue(row[i])
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// parseValue attempts integer conversion, falling back to the raw string.
// Empty cells become nil so required-field checks treat them as missing.
func parseValue(value string) interface{} {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}
