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

import "github.com/aaronlmathis/roometl"

// ForFormat returns the loader variant registered under the given format
// name. Unknown names fail with an UnsupportedFormatError rather than
// silently defaulting.
func ForFormat(format string, options ...Option) (roometl.DataLoader, error) {
	switch format {
	case roometl.FormatJSON:
		return NewJSONLoader(options...), nil
	case roometl.FormatXML:
		return NewXMLLoader(options...), nil
	case roometl.FormatCSV:
		return NewCSVLoader(options...), nil
	case roometl.FormatPostgres:
		return NewPostgresLoader(options...)
	case roometl.FormatMongo:
		return NewMongoLoader(options...)
	default:
		return nil, &roometl.UnsupportedFormatError{Kind: "input", Format: format}
	}
}
