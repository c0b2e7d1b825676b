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
	"fmt"
	"math"

	"github.com/aaronlmathis/roometl"
)

// Shared conversion from generic mapping records to typed entities.
// The JSON, CSV and MongoDB loaders all decode into map records first and
// funnel through these helpers so required-field semantics stay identical
// across formats.

// intField extracts a required integer field from a decoded record.
// JSON numbers arrive as float64, BSON as int32/int64; a fractional value or
// any non-numeric type is a type error.
func intField(entity string, record map[string]interface{}, field string) (int, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return 0, &roometl.FieldError{Entity: entity, Field: field, Err: roometl.ErrMissingField}
	}

	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, &roometl.FieldError{Entity: entity, Field: field, Err: fmt.Errorf("expected integer, got %v", v)}
		}
		return int(v), nil
	default:
		return 0, &roometl.FieldError{Entity: entity, Field: field, Err: fmt.Errorf("expected integer, got %T", value)}
	}
}

// stringField extracts a required text field from a decoded record.
func stringField(entity string, record map[string]interface{}, field string) (string, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return "", &roometl.FieldError{Entity: entity, Field: field, Err: roometl.ErrMissingField}
	}

	s, ok := value.(string)
	if !ok {
		return "", &roometl.FieldError{Entity: entity, Field: field, Err: fmt.Errorf("expected text, got %T", value)}
	}
	return s, nil
}

// studentsFromRecords builds students from generic mapping records,
// enforcing required-field presence and types. Source order is preserved.
func studentsFromRecords(records []map[string]interface{}) ([]roometl.Student, error) {
	students := make([]roometl.Student, 0, len(records))
	for _, record := range records {
		id, err := intField("student", record, "id")
		if err != nil {
			return nil, err
		}
		name, err := stringField("student", record, "name")
		if err != nil {
			return nil, err
		}
		room, err := intField("student", record, "room")
		if err != nil {
			return nil, err
		}
		students = append(students, roometl.Student{ID: id, Name: name, RoomID: room})
	}
	return students, nil
}

// roomsFromRecords builds rooms from generic mapping records. Room.Students
// stays empty; attachment happens in Combine.
func roomsFromRecords(records []map[string]interface{}) ([]roometl.Room, error) {
	rooms := make([]roometl.Room, 0, len(records))
	for _, record := range records {
		id, err := intField("room", record, "id")
		if err != nil {
			return nil, err
		}
		name, err := stringField("room", record, "name")
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, roometl.Room{ID: id, Name: name})
	}
	return rooms, nil
}
