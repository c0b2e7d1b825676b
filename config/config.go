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

// Package config loads the optional YAML configuration file. The file holds
// connection settings for the database-backed loaders and S3 sources plus
// logging defaults; CLI flags override anything set here. All values are
// optional, so a missing file is not an error for the CLI, only an
// unreadable or invalid one.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
}

// PostgresConfig configures the PostgreSQL loader.
type PostgresConfig struct {
	DSN            string `yaml:"dsn"`
	QueryTimeoutMS int    `yaml:"queryTimeoutMS" validate:"gte=0"`
}

// MongoConfig configures the MongoDB loader.
type MongoConfig struct {
	URI       string `yaml:"uri"`
	Database  string `yaml:"database"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// S3Config configures resolution of s3:// source locators.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint" validate:"omitempty,url"`
	PathStyle bool   `yaml:"pathStyle"`
}

// Config is the root of the YAML configuration file.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
	S3       S3Config       `yaml:"s3"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads and validates a configuration file. Unset fields fall back to
// the defaults from Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}
