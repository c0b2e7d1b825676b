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

// Combine performs the one-to-many join of students into their owning rooms.
//
// It builds an ordered multi-map from room identifier to students in a single
// pass, preserving the students' source order within each group, then assigns
// each room its group by identifier lookup. Room order is preserved. Rooms
// with no matching students get an empty, non-nil slice so they serialize as
// an empty list rather than being omitted.
//
// Students whose RoomID matches no room are dropped without error or logging.
// That is deliberate: the join is left-outer from the rooms' side.
//
// Combine never fails and does not share state with its inputs' owner: it
// returns a new room slice, leaving the input rooms untouched.
func Combine(students []Student, rooms []Room) []Room {
	byRoom := make(map[int][]Student, len(rooms))
	for _, s := range students {
		byRoom[s.RoomID] = append(byRoom[s.RoomID], s)
	}

	combined := make([]Room, len(rooms))
	for i, r := range rooms {
		if group, ok := byRoom[r.ID]; ok {
			r.Students = group
		} else {
			r.Students = []Student{}
		}
		combined[i] = r
	}
	return combined
}
