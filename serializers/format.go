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

package serializers

import "github.com/aaronlmathis/roometl"

// ForFormat returns the serializer variant registered under the given format
// name. Unknown names fail with an UnsupportedFormatError rather than
// silently defaulting.
func ForFormat(format string) (roometl.DataSerializer, error) {
	switch format {
	case roometl.FormatJSON:
		return NewJSONSerializer(), nil
	case roometl.FormatXML:
		return NewXMLSerializer(), nil
	default:
		return nil, &roometl.UnsupportedFormatError{Kind: "output", Format: format}
	}
}
