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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stub loader and serializer for pipeline tests.
type stubLoader struct {
	students []Student
	rooms    []Room
	err      error
}

func (s *stubLoader) Load(ctx context.Context, studentsSource, roomsSource string) ([]Student, []Room, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.students, s.rooms, nil
}

type stubSerializer struct {
	got []Room
	err error
}

func (s *stubSerializer) Serialize(rooms []Room) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.got = rooms
	return "ok", nil
}

func TestPipelineBuilder_RequiresLoader(t *testing.T) {
	_, err := NewPipeline().WithSerializer(&stubSerializer{}).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loader")
}

func TestPipelineBuilder_RequiresSerializer(t *testing.T) {
	_, err := NewPipeline().WithLoader(&stubLoader{}).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serializer")
}

// TestPipeline_RunCombinesBeforeSerializing verifies the serializer sees the
// joined rooms, not the raw load result.
func TestPipeline_RunCombinesBeforeSerializing(t *testing.T) {
	loader := &stubLoader{
		students: []Student{{ID: 1, Name: "Ann", RoomID: 10}},
		rooms:    []Room{{ID: 10, Name: "Alpha"}, {ID: 20, Name: "Beta"}},
	}
	serializer := &stubSerializer{}

	pipeline, err := NewPipeline().WithLoader(loader).WithSerializer(serializer).Build()
	require.NoError(t, err)

	out, err := pipeline.Run(context.Background(), "students", "rooms")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	require.Len(t, serializer.got, 2)
	require.Len(t, serializer.got[0].Students, 1)
	assert.Equal(t, "Ann", serializer.got[0].Students[0].Name)
	assert.NotNil(t, serializer.got[1].Students)
	assert.Empty(t, serializer.got[1].Students)
}

// TestPipeline_RunPropagatesLoaderError verifies load errors surface
// unchanged and nothing is serialized.
func TestPipeline_RunPropagatesLoaderError(t *testing.T) {
	loadErr := &ParseError{Path: "students.json", Err: errors.New("bad input")}
	serializer := &stubSerializer{}

	pipeline, err := NewPipeline().
		WithLoader(&stubLoader{err: loadErr}).
		WithSerializer(serializer).
		Build()
	require.NoError(t, err)

	out, err := pipeline.Run(context.Background(), "students.json", "rooms.json")
	assert.Empty(t, out)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "students.json", parseErr.Path)
	assert.Nil(t, serializer.got)
}

func TestPipeline_RunPropagatesSerializerError(t *testing.T) {
	pipeline, err := NewPipeline().
		WithLoader(&stubLoader{}).
		WithSerializer(&stubSerializer{err: errors.New("render failed")}).
		Build()
	require.NoError(t, err)

	_, err = pipeline.Run(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render failed")
}
