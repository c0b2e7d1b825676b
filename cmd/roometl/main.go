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

// Command roometl joins a students dataset into a rooms dataset and renders
// the combined view. This is thin glue around the roometl pipeline: it picks
// a loader and serializer by format name, runs the pipeline once, and writes
// the result to a file or stdout.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aaronlmathis/roometl"
	"github.com/aaronlmathis/roometl/config"
	"github.com/aaronlmathis/roometl/loaders"
	"github.com/aaronlmathis/roometl/logger"
	"github.com/aaronlmathis/roometl/serializers"
)

var (
	inputFormat       string
	outputFormat      string
	outputDestination string
	configPath        string
	logLevel          string
	logFormat         string
)

var rootCmd = &cobra.Command{
	Use:   "roometl <students_source> <rooms_source>",
	Short: "Join students into their rooms and render the combined view",
	Long: `roometl reads a students dataset and a rooms dataset, attaches each
student to the room its room identifier points at, and renders the combined
room list.

Input and output formats are chosen independently. For file formats (json,
xml, csv) the sources are file paths or s3://bucket/key URIs; for postgres
they are table names and for mongo collection names, with connection
settings taken from the config file.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFormat, "input-format", "i", roometl.FormatJSON,
		"input format: json, xml, csv, postgres or mongo")
	rootCmd.Flags().StringVarP(&outputFormat, "output-format", "o", roometl.FormatJSON,
		"output format: json or xml")
	rootCmd.Flags().StringVarP(&outputDestination, "output-destination", "d", "",
		"write output to this path instead of stdout")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "log format: json or console")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, "roometl")
	if err != nil {
		return err
	}
	defer log.Sync()

	loader, err := loaders.ForFormat(inputFormat, loaderOptions(cfg)...)
	if err != nil {
		return err
	}
	serializer, err := serializers.ForFormat(outputFormat)
	if err != nil {
		return err
	}

	pipeline, err := roometl.NewPipeline().
		WithLoader(loader).
		WithSerializer(serializer).
		Build()
	if err != nil {
		return err
	}

	log.Debug("running pipeline",
		zap.String("input_format", inputFormat),
		zap.String("output_format", outputFormat),
		zap.String("students_source", args[0]),
		zap.String("rooms_source", args[1]))

	output, err := pipeline.Run(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	log.Debug("pipeline complete", zap.Int("output_bytes", len(output)))

	// Serialized output goes to stdout; cobra's own Print helpers fall back
	// to stderr, which would break piping the result to a file.
	if outputDestination != "" {
		if err := os.WriteFile(outputDestination, []byte(output), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote to %s successfully!\n", outputDestination)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// loaderOptions maps config file settings onto loader options.
func loaderOptions(cfg config.Config) []loaders.Option {
	opts := []loaders.Option{}
	if cfg.S3.Region != "" {
		opts = append(opts, loaders.WithS3Region(cfg.S3.Region))
	}
	if cfg.S3.Endpoint != "" {
		opts = append(opts, loaders.WithS3Endpoint(cfg.S3.Endpoint, cfg.S3.PathStyle))
	}
	if cfg.Postgres.DSN != "" {
		opts = append(opts, loaders.WithPostgresDSN(cfg.Postgres.DSN))
	}
	if cfg.Postgres.QueryTimeoutMS > 0 {
		opts = append(opts, loaders.WithPostgresQueryTimeout(millis(cfg.Postgres.QueryTimeoutMS)))
	}
	if cfg.Mongo.URI != "" {
		opts = append(opts, loaders.WithMongoURI(cfg.Mongo.URI))
	}
	if cfg.Mongo.Database != "" {
		opts = append(opts, loaders.WithMongoDatabase(cfg.Mongo.Database))
	}
	if cfg.Mongo.TimeoutMS > 0 {
		opts = append(opts, loaders.WithMongoTimeout(millis(cfg.Mongo.TimeoutMS)))
	}
	return opts
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
