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
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SourceError provides structured error information for source resolution.
type SourceError struct {
	Locator string // Data-source locator that failed
	Op      string // Operation that failed (e.g., "open", "read", "get_object")
	Err     error  // Underlying error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s %s: %v", e.Locator, e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

const s3Scheme = "s3://"

// parseS3Locator splits an s3://bucket/key locator into bucket and key.
// ok is false for locators that are not S3 URIs.
func parseS3Locator(locator string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(locator, s3Scheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(locator, s3Scheme)
	idx := strings.Index(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}

// openSource resolves a data-source locator into a readable stream.
// Callers own the returned ReadCloser and must release it on all exit paths.
func openSource(ctx context.Context, locator string, opts SourceOptions) (io.ReadCloser, error) {
	if bucket, key, ok := parseS3Locator(locator); ok {
		return openS3Object(ctx, bucket, key, locator, opts)
	}
	if strings.HasPrefix(locator, s3Scheme) {
		return nil, &SourceError{Locator: locator, Op: "parse", Err: fmt.Errorf("malformed s3 locator, want s3://bucket/key")}
	}

	f, err := os.Open(locator)
	if err != nil {
		return nil, &SourceError{Locator: locator, Op: "open", Err: err}
	}
	return f, nil
}

// openS3Object fetches a single S3 object body.
func openS3Object(ctx context.Context, bucket, key, locator string, opts SourceOptions) (io.ReadCloser, error) {
	cfg, err := createAWSConfig(ctx, opts)
	if err != nil {
		return nil, &SourceError{Locator: locator, Op: "create_aws_config", Err: err}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.S3Endpoint)
		}
		o.UsePathStyle = opts.S3PathStyle
	})

	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &SourceError{Locator: locator, Op: "get_object", Err: err}
	}
	return result.Body, nil
}

// createAWSConfig creates AWS configuration from source options.
func createAWSConfig(ctx context.Context, opts SourceOptions) (aws.Config, error) {
	configOpts := []func(*config.LoadOptions) error{}

	if opts.S3Region != "" {
		configOpts = append(configOpts, config.WithRegion(opts.S3Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return aws.Config{}, err
	}

	// Override with explicit credentials if provided
	if opts.S3AccessKeyID != "" {
		cfg.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				opts.S3AccessKeyID,
				opts.S3SecretAccessKey,
				opts.S3SessionToken,
			),
		)
	}

	return cfg, nil
}
