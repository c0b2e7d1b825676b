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

import "context"

// Package roometl defines the core interfaces for the RoomETL tool.
//
// This file contains the primary interfaces for data loading and data
// serialization. Concrete variants live in the loaders and serializers
// packages; the pipeline composes one of each.

// Format names accepted by the loader and serializer registries.
const (
	FormatJSON     = "json"
	FormatXML      = "xml"
	FormatCSV      = "csv"
	FormatPostgres = "postgres"
	FormatMongo    = "mongo"
)

// DataLoader defines the interface for data acquisition.
// Implementations read two data-source locators and return fully-materialized
// student and room sequences with no cross-references resolved: Room.Students
// is empty for every returned room.
//
// The meaning of a locator is format-dependent: a file path (or s3:// URI)
// for file formats, a table name for PostgreSQL, a collection name for
// MongoDB.
type DataLoader interface {
	// Load reads both sources and returns the students and rooms in source
	// order. It fails with a ParseError or FieldError on malformed input.
	Load(ctx context.Context, studentsSource, roomsSource string) ([]Student, []Room, error)
}

// DataSerializer defines the interface for data emission.
// Implementations render a fully-combined room sequence into a single text
// blob in one output format.
type DataSerializer interface {
	// Serialize renders the rooms, preserving room order and each room's
	// student order.
	Serialize(rooms []Room) (string, error)
}
