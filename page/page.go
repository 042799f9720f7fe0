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

// Package page represents the pages of a PDF document.
//
// A [Page] holds the page geometry together with one content stream.
// Sizes and margins are given in PDF points; use the
// [seehuhn.de/go/minipdf/unit] package to convert from other units.
package page

import (
	"seehuhn.de/go/minipdf/content"
	"seehuhn.de/go/minipdf/unit"
)

// DefaultMargin is the margin used for new pages, on every side.
const DefaultMargin = 40

// Page is a single page of a document.
//
// Setters do not validate their arguments: a page with a non-positive size
// is written to the PDF file as it is.  Use [Size.Valid] to check sizes.
type Page struct {
	size          Size
	orientation   Orientation
	margins       Margins
	topLeftOrigin bool

	content *content.Stream
}

// New returns an empty A4 page in portrait orientation with the default
// margins.  Coordinates have their origin at the bottom-left corner.
func New() *Page {
	return &Page{
		size:        A4,
		orientation: Portrait,
		margins:     UniformMargins(DefaultMargin),
		content:     content.NewStream(),
	}
}

// Size returns the page size.
func (p *Page) Size() Size {
	return p.size
}

// SetSize changes the page size.
func (p *Page) SetSize(size Size) {
	p.size = size
}

// Width returns the page width in points.
func (p *Page) Width() float64 {
	return p.size.Width
}

// Height returns the page height in points.
func (p *Page) Height() float64 {
	return p.size.Height
}

// Orientation returns the page orientation.
func (p *Page) Orientation() Orientation {
	return p.orientation
}

// SetOrientation records the page orientation.  The page size is not
// changed; use [Size.Landscape] to obtain a landscape page size.
func (p *Page) SetOrientation(o Orientation) {
	p.orientation = o
}

// Margins returns the page margins.
func (p *Page) Margins() Margins {
	return p.margins
}

// SetMargins changes the page margins.
func (p *Page) SetMargins(m Margins) {
	p.margins = m
}

// TopLeftOrigin reports whether coordinates passed to [Page.DrawText] are
// measured from the top-left corner of the page, with y growing downwards.
func (p *Page) TopLeftOrigin() bool {
	return p.topLeftOrigin
}

// SetTopLeftOrigin selects the coordinate system used by [Page.DrawText]
// and [Page.ToDevice].  Content appended earlier is not changed.
func (p *Page) SetTopLeftOrigin(topLeft bool) {
	p.topLeftOrigin = topLeft
}

// Content returns the content stream of the page.
func (p *Page) Content() *content.Stream {
	return p.content
}

// ToDevice converts page coordinates to the PDF default coordinate
// system.  This implements the [content.Converter] interface.
func (p *Page) ToDevice(x, y float64) (float64, float64) {
	return unit.ToDevice(x, y, p.size.Height, p.topLeftOrigin)
}

// ContentBox returns the area inside the margins, as lower-left and
// upper-right corners in the PDF default coordinate system.
func (p *Page) ContentBox() (llx, lly, urx, ury float64) {
	m := p.margins
	return m.Left, m.Bottom, p.size.Width - m.Right, p.size.Height - m.Top
}

// DrawText shows text at (x, y) in page coordinates, using the font
// resource fontName at the given size.
func (p *Page) DrawText(text string, x, y float64, fontName string, size float64) {
	p.content.AppendText(text, x, y, fontName, size, p)
}
