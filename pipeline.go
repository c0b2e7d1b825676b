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
	"context"
	"fmt"
)

// Package roometl provides the load -> combine -> serialize pipeline.
//
// A pipeline is composed from one DataLoader and one DataSerializer, chosen
// independently. Each run is self-contained: the loader materializes both
// datasets, Combine joins them, the serializer renders the result, and no
// state survives the call.
//
// Example usage:
//
//   pipeline, err := roometl.NewPipeline().
//       WithLoader(loader).
//       WithSerializer(serializer).
//       Build()
//   if err != nil { log.Fatal(err) }
//   out, err := pipeline.Run(ctx, "students.json", "rooms.json")

// PipelineBuilder provides a fluent API for constructing pipelines.
// Use NewPipeline() to create a builder, then chain WithLoader,
// WithSerializer and Build.
type PipelineBuilder struct {
	pipeline *Pipeline
}

// NewPipeline creates a new PipelineBuilder.
func NewPipeline() *PipelineBuilder {
	return &PipelineBuilder{pipeline: &Pipeline{}}
}

// WithLoader sets the DataLoader for the pipeline.
//
// loader: a DataLoader implementation (e.g., JSONLoader, XMLLoader, PostgresLoader)
// Returns the builder for chaining.
func (pb *PipelineBuilder) WithLoader(loader DataLoader) *PipelineBuilder {
	pb.pipeline.loader = loader
	return pb
}

// WithSerializer sets the DataSerializer for the pipeline.
//
// serializer: a DataSerializer implementation (e.g., JSONSerializer, XMLSerializer)
// Returns the builder for chaining.
func (pb *PipelineBuilder) WithSerializer(serializer DataSerializer) *PipelineBuilder {
	pb.pipeline.serializer = serializer
	return pb
}

// Build validates and constructs the Pipeline from the builder.
//
// Returns the constructed pipeline, or an error if required components are missing.
func (pb *PipelineBuilder) Build() (*Pipeline, error) {
	if pb.pipeline.loader == nil {
		return nil, fmt.Errorf("pipeline requires a data loader")
	}
	if pb.pipeline.serializer == nil {
		return nil, fmt.Errorf("pipeline requires a data serializer")
	}
	return pb.pipeline, nil
}

// Pipeline joins students into rooms and renders the combined view.
type Pipeline struct {
	loader     DataLoader
	serializer DataSerializer
}

// Run executes the pipeline sequentially: load both sources, combine, and
// serialize. Either the full run succeeds and returns one complete text blob,
// or it fails and returns none; errors from the loader propagate unchanged.
func (p *Pipeline) Run(ctx context.Context, studentsSource, roomsSource string) (string, error) {
	students, rooms, err := p.loader.Load(ctx, studentsSource, roomsSource)
	if err != nil {
		return "", err
	}

	return p.serializer.Serialize(Combine(students, rooms))
}
