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

// Package document assembles pages into a PDF document and writes the
// document to a file.
//
// A [Document] holds an ordered list of pages.  Text is drawn on the pages
// using fonts from the document's font list; Helvetica is always available
// under the resource name "F1".  Once all pages are complete, the document
// is written in a single pass using [Document.WriteTo] or [Document.Save].
//
// Documents may be written any number of times.  Writing the same,
// unmodified document twice produces identical output.
package document

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/page"
)

// DefaultFont is the resource name of Helvetica, which is available on
// every page.
const DefaultFont = "F1"

// Document is a PDF document under construction.
// A Document is not safe for concurrent use, and pages must not be
// modified while the document is being written.
type Document struct {
	pages  []*page.Page
	info   Info
	lang   language.Tag
	intent *OutputIntent

	fonts *font.Registry

	// used lists the fonts written to the file, in object number order.
	// used[0] is always Helvetica.
	used []font.Standard
}

// New returns an empty document.
func New() *Document {
	fonts := font.NewRegistry()
	fonts.RegisterStandardFonts()
	return &Document{
		fonts: fonts,
		used:  []font.Standard{font.Helvetica},
	}
}

// NewPage creates a new page with the default settings and appends it to
// the document.
func (d *Document) NewPage() *page.Page {
	p := page.New()
	d.pages = append(d.pages, p)
	return p
}

// AddPage appends p to the document.  A nil page is ignored.
func (d *Document) AddPage(p *page.Page) {
	if p == nil {
		return
	}
	d.pages = append(d.pages, p)
}

// ErrPageIndex is returned by [Document.InsertPage] when the position is
// out of range.
var ErrPageIndex = errors.New("page index out of range")

// InsertPage inserts p so that it becomes page number i (0-based).
// Inserting at NumPages() is the same as AddPage.
func (d *Document) InsertPage(i int, p *page.Page) error {
	if i < 0 || i > len(d.pages) {
		return fmt.Errorf("insert at %d: %w", i, ErrPageIndex)
	}
	if p == nil {
		return nil
	}
	d.pages = slices.Insert(d.pages, i, p)
	return nil
}

// RemovePage detaches p from the document.  The page itself is not
// changed and may be added to a document again.  The return value
// reports whether p was part of the document.
func (d *Document) RemovePage(p *page.Page) bool {
	i := slices.Index(d.pages, p)
	if i < 0 {
		return false
	}
	d.pages = slices.Delete(d.pages, i, i+1)
	return true
}

// Pages returns the pages of the document, in order.
// The returned slice is a copy; the pages are shared with the document.
func (d *Document) Pages() []*page.Page {
	return slices.Clone(d.pages)
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// Fonts returns the font registry of the document.  The 14 standard fonts
// are registered when the document is created.  Callers may register
// further names; only names which map to a standard font can be passed
// to [Document.UseFont].
func (d *Document) Fonts() *font.Registry {
	return d.fonts
}

// UseFont makes the font registered under name available on all pages
// and returns its resource name, for use with [page.Page.DrawText].
// The second return value is false if name does not refer to a standard
// font, or if an external font has been registered under name.  Using a font more than once has no further effect.
func (d *Document) UseFont(name string) (string, bool) {
	if !font.IsStandard(name) {
		return "", false
	}
	tag, ok := d.fonts.LookupBuiltIn(name)
	if !ok {
		return "", false
	}
	f := font.Standard(name)
	if !slices.Contains(d.used, f) {
		d.used = append(d.used, f)
	}
	return tag, true
}

// UsedFonts returns the fonts which will be written to the PDF file.
func (d *Document) UsedFonts() []font.Standard {
	return slices.Clone(d.used)
}

// SetLanguage sets the natural language of the document text.
// Use language.Und to remove the setting.
func (d *Document) SetLanguage(tag language.Tag) {
	d.lang = tag
}

// Language returns the natural language of the document text.
func (d *Document) Language() language.Tag {
	return d.lang
}
