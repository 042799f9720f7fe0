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

package minipdf

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/minipdf/internal/float"
)

// Object represents an object in a PDF file.
type Object interface {
	// PDF writes the PDF representation of the object to w.
	PDF(w io.Writer) error
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := w.Write([]byte(strconv.FormatInt(int64(x), 10)))
	return err
}

// Real represents a real number in a PDF file.
//
// Values are written with at most five decimal digits and without trailing
// zeros, so that whole numbers look like integers.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	_, err := w.Write([]byte(float.Format(float64(x), 5)))
	return err
}

// Name represents a name object in a PDF file.
// The leading slash is not part of the value.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	buf := &bytes.Buffer{}
	buf.WriteString("/")
	for _, c := range l {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// String represents a string constant in a PDF file.
// The value is a sequence of bytes; use [TextString] to construct
// strings which hold human-readable text.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	l := []byte(x)

	var funny int
	for _, c := range l {
		if c < 32 || c >= 127 {
			funny++
		}
	}

	buf := &bytes.Buffer{}
	if 3*funny <= len(l) {
		buf.WriteString("(")
		buf.Write(EscapeString(l))
		buf.WriteString(")")
	} else {
		fmt.Fprintf(buf, "<%x>", l)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// EscapeString returns the body of a PDF literal string with the value s.
// Parentheses and backslashes are escaped with a backslash, and bytes
// outside printable ASCII are written as three-digit octal escapes.
// The result does not include the enclosing parentheses.
func EscapeString(s []byte) []byte {
	buf := make([]byte, 0, len(s)+8)
	for _, c := range s {
		switch {
		case c == '(' || c == ')' || c == '\\':
			buf = append(buf, '\\', c)
		case c < 32 || c >= 127:
			buf = append(buf, '\\', '0'+(c>>6), '0'+(c>>3)&7, '0'+c&7)
		default:
			buf = append(buf, c)
		}
	}
	return buf
}

// TextString creates a String object using the "text string" encoding.
// Strings which consist only of printable ASCII characters are stored
// unchanged, all other strings are encoded as UTF-16BE with a byte order
// mark.
func TextString(s string) String {
	for _, r := range s {
		if r < 32 || r >= 127 {
			goto useUTF
		}
	}
	return String(s)

useUTF:
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.String(s)
	if err != nil {
		// invalid UTF-8 sequences are replaced by the encoder, so this
		// should not happen
		return String(s)
	}
	return String(out)
}

// Array represent an array of objects in a PDF file.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = w.Write([]byte("null"))
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// Dict represent a Dictionary object in a PDF file.
//
// Keys are written in sorted order, so that the output for a given
// dictionary is always the same.  Entries with a nil value are omitted.
type Dict map[Name]Object

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}

	var keys []Name
	for key := range x {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	for _, name := range keys {
		val := x[name]
		if val == nil {
			continue
		}

		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>"))
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// All objects written by this package have generation number 0.
// The zero value is not a valid reference and is used to mean "none".
type Reference uint32

// Number returns the object number of the reference.
func (x Reference) Number() int {
	return int(x)
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 R", uint32(x))
	return err
}

// Rectangle creates a PDF array [llx lly urx ury].
func Rectangle(llx, lly, urx, ury float64) Array {
	return Array{Real(llx), Real(lly), Real(urx), Real(ury)}
}

// Format returns the PDF representation of obj as a string.
// This is mostly useful for debugging and in tests.
func Format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}
