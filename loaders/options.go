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

import "time"

// Package loaders provides implementations of roometl.DataLoader for reading
// student and room data from various sources.
//
// This file contains the shared configuration surface. A single Options
// struct covers all loader variants so that ForFormat can accept one uniform
// option list; each variant reads only the section it cares about.

// SourceOptions configures how file-format loaders resolve data-source
// locators. Locators of the form s3://bucket/key are fetched from S3; all
// others are opened as local files.
type SourceOptions struct {
	S3Region          string // AWS region
	S3Endpoint        string // Custom S3 endpoint (for S3-compatible services)
	S3PathStyle       bool   // Use path-style addressing
	S3AccessKeyID     string // Explicit credentials; default chain when empty
	S3SecretAccessKey string
	S3SessionToken    string
}

// PostgresOptions configures the PostgreSQL loader.
type PostgresOptions struct {
	DSN          string        // Database connection string
	QueryTimeout time.Duration // Per-run query timeout
	MaxOpenConns int           // Maximum open connections
	MaxIdleConns int           // Maximum idle connections
}

// MongoOptions configures the MongoDB loader.
type MongoOptions struct {
	URI      string        // MongoDB connection URI
	Database string        // Database name
	Timeout  time.Duration // Operation timeout
}

// Options aggregates the configuration for all loader variants.
type Options struct {
	Source   SourceOptions
	Postgres PostgresOptions
	Mongo    MongoOptions
}

// Option represents a configuration function applied at loader construction.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Postgres: PostgresOptions{
			QueryTimeout: 30 * time.Second,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Mongo: MongoOptions{
			URI:     "mongodb://localhost:27017",
			Timeout: 30 * time.Second,
		},
	}
}

// WithS3Region sets the AWS region used for s3:// locators.
func WithS3Region(region string) Option {
	return func(opts *Options) { opts.Source.S3Region = region }
}

// WithS3Endpoint sets a custom S3 endpoint and addressing style, for
// S3-compatible services.
func WithS3Endpoint(endpoint string, pathStyle bool) Option {
	return func(opts *Options) {
		opts.Source.S3Endpoint = endpoint
		opts.Source.S3PathStyle = pathStyle
	}
}

// WithS3Credentials sets explicit static AWS credentials. When unset, the
// default credential chain applies.
func WithS3Credentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return func(opts *Options) {
		opts.Source.S3AccessKeyID = accessKeyID
		opts.Source.S3SecretAccessKey = secretAccessKey
		opts.Source.S3SessionToken = sessionToken
	}
}

// WithPostgresDSN sets the PostgreSQL connection string.
func WithPostgresDSN(dsn string) Option {
	return func(opts *Options) { opts.Postgres.DSN = dsn }
}

// WithPostgresQueryTimeout sets the query execution timeout.
func WithPostgresQueryTimeout(timeout time.Duration) Option {
	return func(opts *Options) { opts.Postgres.QueryTimeout = timeout }
}

// WithPostgresConnectionPool configures the connection pool.
func WithPostgresConnectionPool(maxOpen, maxIdle int) Option {
	return func(opts *Options) {
		opts.Postgres.MaxOpenConns = maxOpen
		opts.Postgres.MaxIdleConns = maxIdle
	}
}

// WithMongoURI sets the MongoDB connection URI.
func WithMongoURI(uri string) Option {
	return func(opts *Options) { opts.Mongo.URI = uri }
}

// WithMongoDatabase sets the MongoDB database name.
func WithMongoDatabase(database string) Option {
	return func(opts *Options) { opts.Mongo.Database = database }
}

// WithMongoTimeout sets the MongoDB operation timeout.
func WithMongoTimeout(timeout time.Duration) Option {
	return func(opts *Options) { opts.Mongo.Timeout = timeout }
}
