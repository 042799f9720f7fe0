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

package document

import (
	"bytes"
	"io"

	"golang.org/x/text/language"

	"seehuhn.de/go/minipdf"
)

// Version is the PDF version of the files written by this package.
const Version = minipdf.V1_4

// layout gives the object numbers of all objects in the file.
//
// Numbers are assigned in the order in which the objects are written, so
// that every reference is known before it is used, including the /Parent
// references from the pages to the page tree.
type layout struct {
	fonts    []minipdf.Reference
	contents []minipdf.Reference
	pages    []minipdf.Reference
	tree     minipdf.Reference
	profile  minipdf.Reference // 0 if not written
	metadata minipdf.Reference // 0 if not written
	catalog  minipdf.Reference
	info     minipdf.Reference // 0 if not written
	size     int               // number of xref entries
}

func (d *Document) plan() *layout {
	next := minipdf.Reference(1)
	alloc := func() minipdf.Reference {
		ref := next
		next++
		return ref
	}

	l := &layout{}
	for range d.used {
		l.fonts = append(l.fonts, alloc())
	}
	for range d.pages {
		l.contents = append(l.contents, alloc())
		l.pages = append(l.pages, alloc())
	}
	l.tree = alloc()
	if d.intent != nil {
		l.profile = alloc()
	}
	if !d.info.IsEmpty() {
		l.metadata = alloc()
	}
	l.catalog = alloc()
	if !d.info.IsEmpty() {
		l.info = alloc()
	}
	l.size = int(next)
	return l
}

// WriteTo writes the document as a PDF file to w.
// The return value is the number of bytes written.
//
// This implements the io.WriterTo interface.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	l := d.plan()

	out, err := minipdf.NewWriter(w, Version)
	if err != nil {
		return 0, err
	}
	err = d.writeObjects(out, l)
	if err != nil {
		return out.Pos(), err
	}
	err = out.Close(l.catalog, l.info)
	return out.Pos(), err
}

func (d *Document) writeObjects(out *minipdf.Writer, l *layout) error {
	fontRes := minipdf.Dict{}
	for i, f := range d.used {
		dict := minipdf.Dict{
			"Type":     minipdf.Name("Font"),
			"Subtype":  minipdf.Name("Type1"),
			"BaseFont": minipdf.Name(f),
		}
		if !f.IsSymbolic() {
			dict["Encoding"] = minipdf.Name("WinAnsiEncoding")
		}
		err := out.WriteIndirect(l.fonts[i], dict)
		if err != nil {
			return err
		}
		fontRes[minipdf.Name(f.Tag())] = l.fonts[i]
	}
	resources := minipdf.Dict{"Font": fontRes}

	kids := minipdf.Array{}
	for i, p := range d.pages {
		err := out.WriteStream(l.contents[i], nil, p.Content().Bytes())
		if err != nil {
			return err
		}

		pageDict := minipdf.Dict{
			"Type":      minipdf.Name("Page"),
			"Parent":    l.tree,
			"MediaBox":  minipdf.Rectangle(0, 0, p.Width(), p.Height()),
			"Contents":  l.contents[i],
			"Resources": resources,
		}
		err = out.WriteIndirect(l.pages[i], pageDict)
		if err != nil {
			return err
		}
		kids = append(kids, l.pages[i])
	}

	err := out.WriteIndirect(l.tree, minipdf.Dict{
		"Type":  minipdf.Name("Pages"),
		"Kids":  kids,
		"Count": minipdf.Integer(len(d.pages)),
	})
	if err != nil {
		return err
	}

	var intent minipdf.Dict
	if l.profile != 0 {
		intent, err = d.intent.writeProfile(out, l.profile)
		if err != nil {
			return err
		}
	}

	if l.metadata != 0 {
		data, err := d.info.xmpData(d.lang)
		if err != nil {
			return err
		}
		err = out.WriteStream(l.metadata, minipdf.Dict{
			"Type":    minipdf.Name("Metadata"),
			"Subtype": minipdf.Name("XML"),
		}, data)
		if err != nil {
			return err
		}
	}

	catalog := minipdf.Dict{
		"Type":  minipdf.Name("Catalog"),
		"Pages": l.tree,
	}
	if l.metadata != 0 {
		catalog["Metadata"] = l.metadata
	}
	if intent != nil {
		catalog["OutputIntents"] = minipdf.Array{intent}
	}
	if d.lang != language.Und {
		catalog["Lang"] = minipdf.TextString(d.lang.String())
	}
	err = out.WriteIndirect(l.catalog, catalog)
	if err != nil {
		return err
	}

	if l.info != 0 {
		err = out.WriteIndirect(l.info, d.info.asDict())
		if err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the document as a PDF file.
func (d *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := d.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
