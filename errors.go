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

import (
	"errors"
	"fmt"
)

// Package roometl defines the error types shared by loaders, serializers and
// the pipeline. Every error here is terminal for the run: callers report and
// stop, nothing retries, and no partial output is emitted.

// ErrMissingField marks a required field that is absent from a record.
// FieldError wraps it so callers can test with errors.Is.
var ErrMissingField = errors.New("missing")

// ParseError indicates that a source is not valid in its declared format,
// for example malformed JSON or XML. Path identifies the offending source.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError indicates that a required field is missing or has the wrong
// type on a record. Entity names the record kind ("student" or "room").
type FieldError struct {
	Entity string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %q: %v", e.Entity, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError indicates a format name the registry does not
// recognize. Kind is "input" or "output". The CLI restricts choices before
// this point, but the registries still reject unknown names explicitly
// rather than silently defaulting.
type UnsupportedFormatError struct {
	Kind   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported %s format: %q", e.Kind, e.Format)
}
