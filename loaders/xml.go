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
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aaronlmathis/roometl"
)

// XMLLoader implements roometl.DataLoader for XML sources. Each source is a
// single root element whose children are record elements with id, name (and
// for students, room) child text elements. The root element name is not
// significant.
type XMLLoader struct {
	opts Options
}

// NewXMLLoader creates an XML loader with default or overridden options.
func NewXMLLoader(options ...Option) *XMLLoader {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	return &XMLLoader{opts: opts}
}

// xmlEntry is one record element. Pointer fields distinguish a missing child
// element from an empty one, so field-presence checks stay exact. Numeric
// children decode as text and are converted afterwards, turning a bad digit
// into a FieldError instead of a decoder error.
type xmlEntry struct {
	ID   *string `xml:"id"`
	Name *string `xml:"name"`
	Room *string `xml:"room"`
}

// xmlDocument matches any root element and collects its children.
type xmlDocument struct {
	Entries []xmlEntry `xml:",any"`
}

// Load implements the roometl.DataLoader interface.
func (l *XMLLoader) Load(ctx context.Context, studentsSource, roomsSource string) ([]roometl.Student, []roometl.Room, error) {
	studentEntries, err := l.loadEntries(ctx, studentsSource)
	if err != nil {
		return nil, nil, err
	}
	roomEntries, err := l.loadEntries(ctx, roomsSource)
	if err != nil {
		return nil, nil, err
	}

	students := make([]roometl.Student, 0, len(studentEntries))
	for _, entry := range studentEntries {
		id, err := intText("student", "id", entry.ID)
		if err != nil {
			return nil, nil, err
		}
		name, err := stringText("student", "name", entry.Name)
		if err != nil {
			return nil, nil, err
		}
		room, err := intText("student", "room", entry.Room)
		if err != nil {
			return nil, nil, err
		}
		students = append(students, roometl.Student{ID: id, Name: name, RoomID: room})
	}

	rooms := make([]roometl.Room, 0, len(roomEntries))
	for _, entry := range roomEntries {
		id, err := intText("room", "id", entry.ID)
		if err != nil {
			return nil, nil, err
		}
		name, err := stringText("room", "name", entry.Name)
		if err != nil {
			return nil, nil, err
		}
		rooms = append(rooms, roometl.Room{ID: id, Name: name})
	}

	return students, rooms, nil
}

// loadEntries reads one source fully and decodes the element tree. A
// well-formedness failure becomes a ParseError carrying the locator.
func (l *XMLLoader) loadEntries(ctx context.Context, locator string) ([]xmlEntry, error) {
	rc, err := openSource(ctx, locator, l.opts.Source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &SourceError{Locator: locator, Op: "read", Err: err}
	}

	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &roometl.ParseError{Path: locator, Err: err}
	}
	return doc.Entries, nil
}

// intText converts a required integer text element.
func intText(entity, field string, value *string) (int, error) {
	if value == nil {
		return 0, &roometl.FieldError{Entity: entity, Field: field, Err: roometl.ErrMissingField}
	}
	n, err := strconv.Atoi(strings.TrimSpace(*value))
	if err != nil {
		return 0, &roometl.FieldError{Entity: entity, Field: field, Err: fmt.Errorf("expected integer, got %q", *value)}
	}
	return n, nil
}

// stringText converts a required text element.
func stringText(entity, field string, value *string) (string, error) {
	if value == nil {
		return "", &roometl.FieldError{Entity: entity, Field: field, Err: roometl.ErrMissingField}
	}
	return *value, nil
}
