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
	"fmt"

	"github.com/aaronlmathis/roometl"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoLoaderError provides structured error information for MongoDB loader
// operations.
type MongoLoaderError struct {
	Op         string // Operation that failed (e.g., "connect", "find", "decode")
	Collection string // Collection being accessed when the error occurred
	Err        error  // Underlying error
}

func (e *MongoLoaderError) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("mongo loader %s [%s]: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("mongo loader %s: %v", e.Op, e.Err)
}

func (e *MongoLoaderError) Unwrap() error {
	return e.Err
}

// MongoLoader implements roometl.DataLoader for MongoDB collections. Source
// locators are collection names within the configured database; documents
// carry the same id/name/room fields as JSON records. Document order follows
// the natural collection order.
type MongoLoader struct {
	opts Options
}

// NewMongoLoader creates a MongoDB loader. A database name is required; the
// URI defaults to mongodb://localhost:27017.
func NewMongoLoader(options ...Option) (*MongoLoader, error) {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if opts.Mongo.Database == "" {
		return nil, &MongoLoaderError{Op: "validate", Err: fmt.Errorf("database name is required")}
	}
	return &MongoLoader{opts: opts}, nil
}

// Load implements the roometl.DataLoader interface.
func (l *MongoLoader) Load(ctx context.Context, studentsCollection, roomsCollection string) ([]roometl.Student, []roometl.Room, error) {
	if l.opts.Mongo.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.opts.Mongo.Timeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(l.opts.Mongo.URI))
	if err != nil {
		return nil, nil, &MongoLoaderError{Op: "connect", Err: err}
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, &MongoLoaderError{Op: "ping", Err: err}
	}

	db := client.Database(l.opts.Mongo.Database)

	studentRecords, err := l.readCollection(ctx, db, studentsCollection)
	if err != nil {
		return nil, nil, err
	}
	roomRecords, err := l.readCollection(ctx, db, roomsCollection)
	if err != nil {
		return nil, nil, err
	}

	students, err := studentsFromRecords(studentRecords)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := roomsFromRecords(roomRecords)
	if err != nil {
		return nil, nil, err
	}
	return students, rooms, nil
}

// readCollection materializes every document of a collection as a mapping
// record.
func (l *MongoLoader) readCollection(ctx context.Context, db *mongo.Database, name string) ([]map[string]interface{}, error) {
	cursor, err := db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, &MongoLoaderError{Op: "find", Collection: name, Err: err}
	}
	defer cursor.Close(ctx)

	records := make([]map[string]interface{}, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, &MongoLoaderError{Op: "decode", Collection: name, Err: err}
		}
		records = append(records, map[string]interface{}(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, &MongoLoaderError{Op: "cursor", Collection: name, Err: err}
	}
	return records, nil
}
