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

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/minipdf"
)

// Info holds document metadata.  All fields are optional.
//
// If any field is set, the metadata is written both as a document
// information dictionary and as an XMP metadata stream.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator is the name of the application which created the original
	// content.
	Creator string

	// Producer is the name of the application which wrote the PDF file.
	Producer string
}

// IsEmpty reports whether no metadata field is set.
func (info *Info) IsEmpty() bool {
	return *info == Info{}
}

// SetInfo replaces the document metadata.
func (d *Document) SetInfo(info Info) {
	d.info = info
}

// Info returns the document metadata.
func (d *Document) Info() Info {
	return d.info
}

// asDict returns the document information dictionary.
func (info *Info) asDict() minipdf.Dict {
	dict := minipdf.Dict{}
	fields := []struct {
		key minipdf.Name
		val string
	}{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Keywords", info.Keywords},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	}
	for _, field := range fields {
		if field.val != "" {
			dict[field.key] = minipdf.TextString(field.val)
		}
	}
	return dict
}

// xmpData returns the XMP packet describing the document.
func (info *Info) xmpData(lang language.Tag) ([]byte, error) {
	dc := &xmp.DublinCore{}
	def := language.MustParse("x-default")
	if info.Title != "" {
		dc.Title.Set(def, info.Title)
		if lang != language.Und {
			dc.Title.Set(lang, info.Title)
		}
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(def, info.Subject)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
