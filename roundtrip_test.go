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

package roometl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronlmathis/roometl"
	"github.com/aaronlmathis/roometl/loaders"
	"github.com/aaronlmathis/roometl/serializers"
)

// End-to-end pipeline tests over real files, exercising every loader and
// serializer pairing through the public API.

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runPipeline(t *testing.T, inputFormat, outputFormat, studentsPath, roomsPath string) string {
	t.Helper()

	loader, err := loaders.ForFormat(inputFormat)
	require.NoError(t, err)
	serializer, err := serializers.ForFormat(outputFormat)
	require.NoError(t, err)

	pipeline, err := roometl.NewPipeline().
		WithLoader(loader).
		WithSerializer(serializer).
		Build()
	require.NoError(t, err)

	out, err := pipeline.Run(context.Background(), studentsPath, roomsPath)
	require.NoError(t, err)
	return out
}

func TestPipeline_JSONToJSON(t *testing.T) {
	studentsPath := writeFile(t, "students.json", `[
		{"id": 1, "name": "Ann", "room": 10},
		{"id": 2, "name": "Bo", "room": 20},
		{"id": 3, "name": "Cy", "room": 10}
	]`)
	roomsPath := writeFile(t, "rooms.json", `[
		{"id": 10, "name": "Alpha"},
		{"id": 20, "name": "Beta"},
		{"id": 30, "name": "Gamma"}
	]`)

	out := runPipeline(t, roometl.FormatJSON, roometl.FormatJSON, studentsPath, roomsPath)

	expected := `[
    {
        "id": 10,
        "name": "Alpha",
        "students": [
            {
                "id": 1,
                "name": "Ann",
                "room_id": 10
            },
            {
                "id": 3,
                "name": "Cy",
                "room_id": 10
            }
        ]
    },
    {
        "id": 20,
        "name": "Beta",
        "students": [
            {
                "id": 2,
                "name": "Bo",
                "room_id": 20
            }
        ]
    },
    {
        "id": 30,
        "name": "Gamma",
        "students": []
    }
]`
	assert.Equal(t, expected, out)
}

func TestPipeline_JSONToXML(t *testing.T) {
	studentsPath := writeFile(t, "students.json", `[{"id": 1, "name": "Ann", "room": 10}]`)
	roomsPath := writeFile(t, "rooms.json", `[{"id": 10, "name": "Alpha"}, {"id": 20, "name": "Beta"}]`)

	out := runPipeline(t, roometl.FormatJSON, roometl.FormatXML, studentsPath, roomsPath)

	expected := `<Rooms>` +
		`<Room><id>10</id><name>Alpha</name><Students>` +
		`<Student><id>1</id><name>Ann</name><room>10</room></Student>` +
		`</Students></Room>` +
		`<Room><id>20</id><name>Beta</name><Students></Students></Room>` +
		`</Rooms>`
	assert.Equal(t, expected, out)
}

func TestPipeline_XMLToJSON(t *testing.T) {
	studentsPath := writeFile(t, "students.xml", `<Students>
	<Student><id>2</id><name>Bo</name><room>20</room></Student>
</Students>`)
	roomsPath := writeFile(t, "rooms.xml", `<Rooms>
	<Room><id>20</id><name>Beta</name></Room>
</Rooms>`)

	out := runPipeline(t, roometl.FormatXML, roometl.FormatJSON, studentsPath, roomsPath)

	expected := `[
    {
        "id": 20,
        "name": "Beta",
        "students": [
            {
                "id": 2,
                "name": "Bo",
                "room_id": 20
            }
        ]
    }
]`
	assert.Equal(t, expected, out)
}

func TestPipeline_CSVToXML(t *testing.T) {
	studentsPath := writeFile(t, "students.csv", "id,name,room\n1,Ann,10\n")
	roomsPath := writeFile(t, "rooms.csv", "id,name\n10,Alpha\n")

	out := runPipeline(t, roometl.FormatCSV, roometl.FormatXML, studentsPath, roomsPath)

	expected := `<Rooms><Room><id>10</id><name>Alpha</name><Students>` +
		`<Student><id>1</id><name>Ann</name><room>10</room></Student>` +
		`</Students></Room></Rooms>`
	assert.Equal(t, expected, out)
}

// TestPipeline_XMLOutputReloads feeds serialized XML back through the XML
// loader and checks the rooms survive unchanged.
func TestPipeline_XMLOutputReloads(t *testing.T) {
	studentsPath := writeFile(t, "students.xml", `<Students>
	<Student><id>1</id><name>Ann</name><room>10</room></Student>
</Students>`)
	roomsPath := writeFile(t, "rooms.xml", `<Rooms>
	<Room><id>10</id><name>Alpha</name></Room>
	<Room><id>20</id><name>Beta</name></Room>
</Rooms>`)

	out := runPipeline(t, roometl.FormatXML, roometl.FormatXML, studentsPath, roomsPath)
	reloadedPath := writeFile(t, "combined.xml", out)

	emptyPath := writeFile(t, "empty.xml", `<Students/>`)
	loader, err := loaders.ForFormat(roometl.FormatXML)
	require.NoError(t, err)
	_, rooms, err := loader.Load(context.Background(), emptyPath, reloadedPath)
	require.NoError(t, err)

	require.Len(t, rooms, 2)
	assert.Equal(t, roometl.Room{ID: 10, Name: "Alpha"}, rooms[0])
	assert.Equal(t, roometl.Room{ID: 20, Name: "Beta"}, rooms[1])
}

// TestPipeline_JSONOutputReloads does the same for the JSON pairing.
func TestPipeline_JSONOutputReloads(t *testing.T) {
	studentsPath := writeFile(t, "students.json", `[{"id": 2, "name": "Bo", "room": 20}]`)
	roomsPath := writeFile(t, "rooms.json", `[{"id": 20, "name": "Beta"}, {"id": 30, "name": "Gamma"}]`)

	out := runPipeline(t, roometl.FormatJSON, roometl.FormatJSON, studentsPath, roomsPath)
	reloadedPath := writeFile(t, "combined.json", out)

	emptyPath := writeFile(t, "empty.json", `[]`)
	loader, err := loaders.ForFormat(roometl.FormatJSON)
	require.NoError(t, err)
	_, rooms, err := loader.Load(context.Background(), emptyPath, reloadedPath)
	require.NoError(t, err)

	require.Len(t, rooms, 2)
	assert.Equal(t, roometl.Room{ID: 20, Name: "Beta"}, rooms[0])
	assert.Equal(t, roometl.Room{ID: 30, Name: "Gamma"}, rooms[1])
}

// TestPipeline_UnmatchedStudentSilentlyDropped verifies the join never fails
// on a dangling room reference.
func TestPipeline_UnmatchedStudentSilentlyDropped(t *testing.T) {
	studentsPath := writeFile(t, "students.json", `[{"id": 9, "name": "Zed", "room": 99}]`)
	roomsPath := writeFile(t, "rooms.json", `[{"id": 10, "name": "Alpha"}]`)

	out := runPipeline(t, roometl.FormatJSON, roometl.FormatJSON, studentsPath, roomsPath)
	assert.NotContains(t, out, "Zed")
	assert.Contains(t, out, `"students": []`)
}
