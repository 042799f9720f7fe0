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

// Package content builds PDF content streams.
//
// A content stream is the sequence of operators which describes the
// appearance of a page.  [Stream] collects operators in an append-only
// buffer; the order in which operators are appended is the order in which
// they are painted.
//
// Text is stored using the single-byte WinAnsi encoding, which matches the
// /Encoding entry of the fonts written by this module.  Characters without
// a WinAnsi code are replaced by "?".
package content

import (
	"bytes"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/internal/float"
)

// Converter maps user coordinates to the PDF default coordinate system.
// [seehuhn.de/go/minipdf/page.Page] implements this interface.
type Converter interface {
	ToDevice(x, y float64) (float64, float64)
}

// Stream is an append-only buffer of content stream operators.
// The zero value is an empty stream, ready to use.
type Stream struct {
	buf bytes.Buffer
}

// NewStream returns a new, empty content stream.
func NewStream() *Stream {
	return &Stream{}
}

// AppendCommand appends cmd, followed by a newline, to the stream.
// The command is stored in WinAnsi encoding.  An empty command is ignored.
func (s *Stream) AppendCommand(cmd string) {
	if cmd == "" {
		return
	}
	s.buf.Write(Encode(cmd))
	s.buf.WriteByte('\n')
}

// AppendText appends a text object which shows text at position (x, y),
// using the font resource fontName at the given size in points.
//
// If conv is non-nil, (x, y) is converted to PDF coordinates using conv.
// Coordinates are written with at most two decimal places.
// Parentheses and backslashes in text are escaped.
func (s *Stream) AppendText(text string, x, y float64, fontName string, size float64, conv Converter) {
	if conv != nil {
		x, y = conv.ToDevice(x, y)
	}

	cmd := &strings.Builder{}
	cmd.WriteString("BT ")
	cmd.WriteString(minipdf.Format(minipdf.Name(strings.TrimPrefix(fontName, "/"))))
	cmd.WriteString(" ")
	cmd.WriteString(float.Format(size, 2))
	cmd.WriteString(" Tf ")
	cmd.WriteString(float.Format(x, 2))
	cmd.WriteString(" ")
	cmd.WriteString(float.Format(y, 2))
	cmd.WriteString(" Td (")
	cmd.Write(minipdf.EscapeString(Encode(text)))
	cmd.WriteString(") Tj ET")

	// the command is pure ASCII at this point
	s.buf.WriteString(cmd.String())
	s.buf.WriteByte('\n')
}

// Clear discards all operators appended so far.
func (s *Stream) Clear() {
	s.buf.Reset()
}

// Bytes returns a copy of the content stream data.
func (s *Stream) Bytes() []byte {
	return slices.Clone(s.buf.Bytes())
}

// Len returns the length of the content stream in bytes.
func (s *Stream) Len() int {
	return s.buf.Len()
}

// String returns the content stream as a string, for debugging.
func (s *Stream) String() string {
	return s.buf.String()
}

// Encode converts s to the WinAnsi encoding.  Characters which cannot be
// represented are replaced by "?".
func Encode(s string) []byte {
	res := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		res = append(res, c)
	}
	return res
}
