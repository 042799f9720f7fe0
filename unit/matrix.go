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

package unit

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Scale returns the transformation matrix which scales the coordinate
// system by sx horizontally and by sy vertically.
func Scale(sx, sy float64) matrix.Matrix {
	return matrix.Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns the transformation matrix which rotates the coordinate
// system counter-clockwise by the given angle, in degrees.
func Rotate(degrees float64) matrix.Matrix {
	phi := degrees * math.Pi / 180
	c := math.Cos(phi)
	s := math.Sin(phi)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// Translate returns the transformation matrix which moves the origin of
// the coordinate system to (tx, ty).
func Translate(tx, ty float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, tx, ty}
}

// FlipY returns the transformation matrix which maps a coordinate system
// with the origin at the top-left corner of a page of the given height to
// the PDF default coordinate system.  It agrees with [ToDevice] with
// topLeftOrigin set.
func FlipY(pageHeight float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, 0, pageHeight}
}
