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

package content

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/minipdf/internal/float"
)

// The methods in this file write their arguments unchanged, in the PDF
// default coordinate system.

// SaveState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (s *Stream) SaveState() {
	s.AppendCommand("q")
}

// RestoreState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (s *Stream) RestoreState() {
	s.AppendCommand("Q")
}

// Transform applies a transformation matrix to the coordinate system.
//
// This implements the PDF graphics operator "cm".
func (s *Stream) Transform(m matrix.Matrix) {
	s.AppendCommand(numbers(4, m[:]...) + " cm")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (s *Stream) SetLineWidth(width float64) {
	s.AppendCommand(numbers(2, width) + " w")
}

// SetFillGray sets the fill color to a gray level between 0 (black) and
// 1 (white).
//
// This implements the PDF graphics operator "g".
func (s *Stream) SetFillGray(gray float64) {
	s.AppendCommand(numbers(3, gray) + " g")
}

// SetStrokeGray sets the stroke color to a gray level.
//
// This implements the PDF graphics operator "G".
func (s *Stream) SetStrokeGray(gray float64) {
	s.AppendCommand(numbers(3, gray) + " G")
}

// MoveTo starts a new subpath at (x, y).
//
// This implements the PDF graphics operator "m".
func (s *Stream) MoveTo(x, y float64) {
	s.AppendCommand(numbers(2, x, y) + " m")
}

// LineTo appends a straight line segment to the current subpath.
//
// This implements the PDF graphics operator "l".
func (s *Stream) LineTo(x, y float64) {
	s.AppendCommand(numbers(2, x, y) + " l")
}

// Rectangle appends a rectangle to the current path.
//
// This implements the PDF graphics operator "re".
func (s *Stream) Rectangle(x, y, width, height float64) {
	s.AppendCommand(numbers(2, x, y, width, height) + " re")
}

// Fill fills the current path.
//
// This implements the PDF graphics operator "f".
func (s *Stream) Fill() {
	s.AppendCommand("f")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (s *Stream) Stroke() {
	s.AppendCommand("S")
}

func numbers(precision int, xx ...float64) string {
	var res []byte
	for i, x := range xx {
		if i > 0 {
			res = append(res, ' ')
		}
		res = append(res, float.Format(x, precision)...)
	}
	return string(res)
}
