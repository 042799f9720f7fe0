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

// Package font keeps track of the fonts available for drawing text.
//
// A [Registry] maps logical font names either to the resource tag of one
// of the 14 standard PDF fonts, or to the path of an external font file.
// Standard fonts need no font data in the PDF file; external fonts are
// recorded for reference only, since this module does not embed font
// programs.
package font

import "strconv"

// Standard identifies one of the 14 standard PDF fonts.
// The value is the PostScript name used as /BaseFont.
type Standard string

// Constants for the 14 standard PDF fonts.
const (
	Helvetica            Standard = "Helvetica"
	HelveticaBold        Standard = "Helvetica-Bold"
	HelveticaOblique     Standard = "Helvetica-Oblique"
	HelveticaBoldOblique Standard = "Helvetica-BoldOblique"
	TimesRoman           Standard = "Times-Roman"
	TimesBold            Standard = "Times-Bold"
	TimesItalic          Standard = "Times-Italic"
	TimesBoldItalic      Standard = "Times-BoldItalic"
	Courier              Standard = "Courier"
	CourierBold          Standard = "Courier-Bold"
	CourierOblique       Standard = "Courier-Oblique"
	CourierBoldOblique   Standard = "Courier-BoldOblique"
	Symbol               Standard = "Symbol"
	ZapfDingbats         Standard = "ZapfDingbats"
)

// All lists the standard fonts.  The resource tag of All[i] is "F<i+1>",
// so that Helvetica, the default font, is always "F1".
var All = []Standard{
	Helvetica,
	HelveticaBold,
	HelveticaOblique,
	HelveticaBoldOblique,
	TimesRoman,
	TimesBold,
	TimesItalic,
	TimesBoldItalic,
	Courier,
	CourierBold,
	CourierOblique,
	CourierBoldOblique,
	Symbol,
	ZapfDingbats,
}

// Tag returns the PDF resource name used for the font, e.g. "F1" for
// Helvetica.  The empty string is returned if f is not a standard font.
func (f Standard) Tag() string {
	for i, g := range All {
		if g == f {
			return "F" + strconv.Itoa(i+1)
		}
	}
	return ""
}

// IsStandard reports whether name is the PostScript name of one of the
// standard fonts.
func IsStandard(name string) bool {
	return Standard(name).Tag() != ""
}

// IsSymbolic reports whether the font uses its own built-in encoding
// rather than a Latin text encoding.
func (f Standard) IsSymbolic() bool {
	return f == Symbol || f == ZapfDingbats
}
