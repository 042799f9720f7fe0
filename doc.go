// seehuhn.de/go/minipdf - a minimal PDF writer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package minipdf implements the low-level parts of writing PDF files.
//
// The package provides Go types for the PDF objects needed to describe a
// simple document ([Integer], [Real], [Name], [String], [Array], [Dict] and
// [Reference]), together with a [Writer] which serialises indirect objects
// and keeps track of their byte offsets for the cross-reference table.
//
// Most users will not use this package directly, but will build documents
// using the [seehuhn.de/go/minipdf/document] package instead.
//
// Output is single-pass and write-only: objects must be written in the order
// of their object numbers, starting at 1 and without gaps.  Reading and
// modifying existing PDF files is not supported.
package minipdf
