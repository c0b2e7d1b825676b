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
	"encoding/xml"
	"fmt"

	"github.com/aaronlmathis/roometl"
)

// XMLSerializer implements roometl.DataSerializer for XML output: a Rooms
// root with one Room element per room, each carrying id, name and a Students
// element with one Student child per attached student. No XML declaration is
// emitted.
type XMLSerializer struct{}

// NewXMLSerializer creates a new XML serializer.
func NewXMLSerializer() *XMLSerializer {
	return &XMLSerializer{}
}

// Dedicated marshal structs keep the element tree explicit. Students is a
// wrapper struct rather than a Students>Student slice tag so an empty room
// still emits its Students element instead of dropping it.
type xmlStudent struct {
	ID   int    `xml:"id"`
	Name string `xml:"name"`
	Room int    `xml:"room"`
}

type xmlStudents struct {
	Students []xmlStudent `xml:"Student"`
}

type xmlRoom struct {
	ID       int         `xml:"id"`
	Name     string      `xml:"name"`
	Students xmlStudents `xml:"Students"`
}

type xmlRooms struct {
	XMLName xml.Name  `xml:"Rooms"`
	Rooms   []xmlRoom `xml:"Room"`
}

// Serialize implements the roometl.DataSerializer interface.
func (s *XMLSerializer) Serialize(rooms []roometl.Room) (string, error) {
	tree := xmlRooms{Rooms: make([]xmlRoom, 0, len(rooms))}
	for _, room := range rooms {
		node := xmlRoom{ID: room.ID, Name: room.Name}
		for _, student := range room.Students {
			node.Students.Students = append(node.Students.Students, xmlStudent{
				ID:   student.ID,
				Name: student.Name,
				Room: student.RoomID,
			})
		}
		tree.Rooms = append(tree.Rooms, node)
	}

	data, err := xml.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("marshaling rooms to XML: %w", err)
	}
	return string(data), nil
}
