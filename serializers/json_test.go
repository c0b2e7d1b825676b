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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronlmathis/roometl"
)

// TestJSONSerializer_Output pins the exact output contract: key names, key
// order, and 4-space indentation.
func TestJSONSerializer_Output(t *testing.T) {
	rooms := []roometl.Room{
		{ID: 10, Name: "Alpha", Students: []roometl.Student{
			{ID: 1, Name: "Ann", RoomID: 10},
		}},
		{ID: 20, Name: "Beta", Students: []roometl.Student{}},
	}

	out, err := NewJSONSerializer().Serialize(rooms)
	require.NoError(t, err)

	expected := `[
    {
        "id": 10,
        "name": "Alpha",
        "students": [
            {
                "id": 1,
                "name": "Ann",
                "room_id": 10
            }
        ]
    },
    {
        "id": 20,
        "name": "Beta",
        "students": []
    }
]`
	assert.Equal(t, expected, out)
}

func TestJSONSerializer_NilStudentsRendersEmptyList(t *testing.T) {
	out, err := NewJSONSerializer().Serialize([]roometl.Room{{ID: 1, Name: "One"}})
	require.NoError(t, err)
	assert.Contains(t, out, `"students": []`)
	assert.NotContains(t, out, "null")
}

func TestJSONSerializer_EmptyInput(t *testing.T) {
	out, err := NewJSONSerializer().Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

// TestJSONSerializer_Deterministic verifies repeated runs over the same input
// produce byte-identical output.
func TestJSONSerializer_Deterministic(t *testing.T) {
	rooms := []roometl.Room{
		{ID: 1, Name: "One", Students: []roometl.Student{{ID: 1, Name: "Ann", RoomID: 1}}},
		{ID: 2, Name: "Two"},
	}

	s := NewJSONSerializer()
	first, err := s.Serialize(rooms)
	require.NoError(t, err)
	second, err := s.Serialize(rooms)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJSONSerializer_DoesNotMutateInput(t *testing.T) {
	rooms := []roometl.Room{{ID: 1, Name: "One"}}

	_, err := NewJSONSerializer().Serialize(rooms)
	require.NoError(t, err)
	assert.Nil(t, rooms[0].Students)
}
