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
	"database/sql"
	"fmt"

	"github.com/aaronlmathis/roometl"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresLoaderError provides structured error information for Postgres
// loader operations.
type PostgresLoaderError struct {
	Op  string // Operation that failed (e.g., "connect", "query", "scan")
	Err error  // Underlying error
}

func (e *PostgresLoaderError) Error() string {
	return fmt.Sprintf("postgres loader %s: %v", e.Op, e.Err)
}

func (e *PostgresLoaderError) Unwrap() error {
	return e.Err
}

// PostgresLoader implements roometl.DataLoader for PostgreSQL databases.
// Source locators are table names: students need id, name and room columns,
// rooms need id and name. Row order follows the table scan; the tool makes
// no ordering promise beyond what the database returns.
type PostgresLoader struct {
	opts Options
}

// NewPostgresLoader creates a PostgreSQL loader. A DSN is required.
func NewPostgresLoader(options ...Option) (*PostgresLoader, error) {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if opts.Postgres.DSN == "" {
		return nil, &PostgresLoaderError{Op: "validate", Err: fmt.Errorf("dsn is required")}
	}
	return &PostgresLoader{opts: opts}, nil
}

// Load implements the roometl.DataLoader interface.
func (l *PostgresLoader) Load(ctx context.Context, studentsTable, roomsTable string) ([]roometl.Student, []roometl.Room, error) {
	for _, table := range []string{studentsTable, roomsTable} {
		if !isValidTableName(table) {
			return nil, nil, &PostgresLoaderError{Op: "validate", Err: fmt.Errorf("invalid table name: %q", table)}
		}
	}

	db, err := sql.Open("postgres", l.opts.Postgres.DSN)
	if err != nil {
		return nil, nil, &PostgresLoaderError{Op: "connect", Err: err}
	}
	defer db.Close()

	db.SetMaxOpenConns(l.opts.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(l.opts.Postgres.MaxIdleConns)

	if l.opts.Postgres.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.opts.Postgres.QueryTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, nil, &PostgresLoaderError{Op: "ping", Err: err}
	}

	students, err := l.queryStudents(ctx, db, studentsTable)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := l.queryRooms(ctx, db, roomsTable)
	if err != nil {
		return nil, nil, err
	}
	return students, rooms, nil
}

func (l *PostgresLoader) queryStudents(ctx context.Context, db *sql.DB, table string) ([]roometl.Student, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT id, name, room FROM %s", table))
	if err != nil {
		return nil, &PostgresLoaderError{Op: "query", Err: err}
	}
	defer rows.Close()

	students := make([]roometl.Student, 0)
	for rows.Next() {
		var (
			id   sql.NullInt64
			name sql.NullString
			room sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &room); err != nil {
			return nil, &PostgresLoaderError{Op: "scan", Err: err}
		}
		if !id.Valid {
			return nil, &roometl.FieldError{Entity: "student", Field: "id", Err: roometl.ErrMissingField}
		}
		if !name.Valid {
			return nil, &roometl.FieldError{Entity: "student", Field: "name", Err: roometl.ErrMissingField}
		}
		if !room.Valid {
			return nil, &roometl.FieldError{Entity: "student", Field: "room", Err: roometl.ErrMissingField}
		}
		students = append(students, roometl.Student{ID: int(id.Int64), Name: name.String, RoomID: int(room.Int64)})
	}
	if err := rows.Err(); err != nil {
		return nil, &PostgresLoaderError{Op: "read", Err: err}
	}
	return students, nil
}

func (l *PostgresLoader) queryRooms(ctx context.Context, db *sql.DB, table string) ([]roometl.Room, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT id, name FROM %s", table))
	if err != nil {
		return nil, &PostgresLoaderError{Op: "query", Err: err}
	}
	defer rows.Close()

	rooms := make([]roometl.Room, 0)
	for rows.Next() {
		var (
			id   sql.NullInt64
			name sql.NullString
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, &PostgresLoaderError{Op: "scan", Err: err}
		}
		if !id.Valid {
			return nil, &roometl.FieldError{Entity: "room", Field: "id", Err: roometl.ErrMissingField}
		}
		if !name.Valid {
			return nil, &roometl.FieldError{Entity: "room", Field: "name", Err: roometl.ErrMissingField}
		}
		rooms = append(rooms, roometl.Room{ID: int(id.Int64), Name: name.String})
	}
	if err := rows.Err(); err != nil {
		return nil, &PostgresLoaderError{Op: "read", Err: err}
	}
	return rooms, nil
}

// isValidTableName validates table names for SQL injection prevention, since
// identifiers cannot be query parameters. Allows schema-qualified names.
func isValidTableName(name string) bool {
	if len(name) == 0 || len(name) > 63 {
		return false
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '_' || r == '.') {
			return false
		}
	}
	return true
}
