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
	"encoding/json"
	"io"

	"github.com/aaronlmathis/roometl"
)

// JSONLoader implements roometl.DataLoader for JSON sources. Each source is
// an array of flat objects: students carry "id", "name" and "room", rooms
// carry "id" and "name".
type JSONLoader struct {
	opts Options
}

// NewJSONLoader creates a JSON loader with default or overridden options.
func NewJSONLoader(options ...Option) *JSONLoader {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	return &JSONLoader{opts: opts}
}

// Load implements the roometl.DataLoader interface.
func (l *JSONLoader) Load(ctx context.Context, studentsSource, roomsSource string) ([]roometl.Student, []roometl.Room, error) {
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

// loadRecords reads one source fully and decodes it as an array of flat
// mapping records.
func (l *JSONLoader) loadRecords(ctx context.Context, locator string) ([]map[string]interface{}, error) {
	rc, err := openSource(ctx, locator, l.opts.Source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &SourceError{Locator: locator, Op: "read", Err: err}
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &roometl.ParseError{Path: locator, Err: err}
	}
	return records, nil
}
