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

package serializers

import (
	"encoding/json"
	"fmt"

	"github.com/aaronlmathis/roometl"
)

// Package serializers provides implementations of roometl.DataSerializer for
// rendering combined rooms into one output format.

// JSONSerializer implements roometl.DataSerializer for JSON output.
//
// The output shape is an exact contract consumers compare against: an array
// of room objects with keys id, name and students, each student an object
// with keys id, name and room_id, pretty-printed with 4-space indentation.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

// Serialize implements the roometl.DataSerializer interface.
func (s *JSONSerializer) Serialize(rooms []roometl.Room) (string, error) {
	out := make([]roometl.Room, len(rooms))
	copy(out, rooms)
	// A nil student slice would render as null; the contract is an empty list.
	for i := range out {
		if out[i].Students == nil {
			out[i].Students = []roometl.Student{}
		}
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshaling rooms to JSON: %w", err)
	}
	return string(data), nil
}
