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

// Package unit converts between units of length and between coordinate
// systems.
//
// PDF measures lengths in points, 1/72 of an inch.  All page geometry in
// this module uses points; the functions here convert values given in
// other units.
package unit

import (
	"fmt"
	"strings"
)

// Unit is a unit of length.
type Unit int

// Supported units of length.
const (
	Points Unit = iota
	Inches
	Millimeters
	Centimeters
)

// PointsPer gives the number of points in one unit.
func (u Unit) PointsPer() float64 {
	switch u {
	case Inches:
		return 72
	case Millimeters:
		return 72 / 25.4
	case Centimeters:
		return 72 / 2.54
	default:
		// unknown units are treated as points
		return 1
	}
}

func (u Unit) String() string {
	switch u {
	case Points:
		return "pt"
	case Inches:
		return "in"
	case Millimeters:
		return "mm"
	case Centimeters:
		return "cm"
	default:
		return fmt.Sprintf("unit.Unit(%d)", int(u))
	}
}

// ParseUnit converts a unit abbreviation ("pt", "in", "mm" or "cm") to a
// Unit.  Case is ignored.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pt", "point", "points":
		return Points, nil
	case "in", "inch", "inches":
		return Inches, nil
	case "mm", "millimeter", "millimeters":
		return Millimeters, nil
	case "cm", "centimeter", "centimeters":
		return Centimeters, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// ToPoints converts a length given in unit u to points.
// Values in an unknown unit are returned unchanged.
func ToPoints(value float64, u Unit) float64 {
	return value * u.PointsPer()
}

// FromPoints converts a length given in points to unit u.
// For an unknown unit, the value is returned unchanged.
func FromPoints(points float64, u Unit) float64 {
	return points / u.PointsPer()
}

// ToDevice converts the point (x, y) to the PDF default coordinate system,
// where the origin is at the bottom-left corner of the page and y grows
// upwards.  If topLeftOrigin is set, the input is taken to have the origin
// at the top-left corner and y growing downwards.
//
// Points outside the page are not clamped.
func ToDevice(x, y, pageHeight float64, topLeftOrigin bool) (float64, float64) {
	if topLeftOrigin {
		return x, pageHeight - y
	}
	return x, y
}
