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

package roometl

// Package roometl defines the core types for the RoomETL tool.
//
// RoomETL joins two datasets, students and rooms, by the foreign key
// student.room_id -> room.id and renders a denormalized view where each room
// embeds its assigned students. Input and output formats are pluggable and
// selected independently at run time.

// Student is a single student record. RoomID is an opaque foreign key into
// Room.ID; it carries no ordering or arithmetic meaning.
type Student struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	RoomID int    `json:"room_id"`
}

// Room is a single room record. Students is empty until Combine attaches the
// matching students; after combination it holds exactly the students whose
// RoomID equals ID, in source order.
type Room struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Students []Student `json:"students"`
}
