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

package page

import (
	"math"
	"strconv"
	"strings"
)

// Size is the size of a page, in PDF points.
type Size struct {
	Width  float64
	Height float64
}

// Standard paper sizes.
var (
	A3     = Size{842, 1191}
	A4     = Size{595, 842}
	A5     = Size{420, 595}
	Letter = Size{612, 792}
	Legal  = Size{612, 1008}
)

// Valid reports whether both dimensions are positive and finite.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0 &&
		!math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Landscape returns the size with the longer side horizontal.
func (s Size) Landscape() Size {
	if s.Width < s.Height {
		return Size{s.Height, s.Width}
	}
	return s
}

// Portrait returns the size with the longer side vertical.
func (s Size) Portrait() Size {
	if s.Width > s.Height {
		return Size{s.Height, s.Width}
	}
	return s
}

// PaperByName returns the size of a standard paper format, in portrait
// orientation.  Case is ignored.
func PaperByName(name string) (Size, bool) {
	switch strings.ToLower(name) {
	case "a3":
		return A3, true
	case "a4":
		return A4, true
	case "a5":
		return A5, true
	case "letter":
		return Letter, true
	case "legal":
		return Legal, true
	}
	return Size{}, false
}

// Margins gives the distances between the page edges and the area where
// content is normally placed, in PDF points.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// UniformMargins returns margins which are the same on all four sides.
func UniformMargins(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

// Orientation records whether a page is meant to be viewed upright or
// sideways.  It is informational only and does not change the page size.
type Orientation int

// Possible page orientations.
const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "page.Orientation(" + strconv.Itoa(int(o)) + ")"
	}
}
