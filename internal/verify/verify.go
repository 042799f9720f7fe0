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

// Package verify checks the structure of PDF files written by this module.
//
// The checks cover the file header, the cross-reference table and the
// trailer: every xref entry must point at the "N 0 obj" line of the
// corresponding object, and the trailer must agree with the table.
// Object contents are not parsed.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Info describes the structure of a PDF file.
type Info struct {
	// Version is the version string from the file header, e.g. "1.4".
	Version string

	// Size is the number of cross-reference table entries, including the
	// entry for object 0.
	Size int

	// Offsets[i] is the byte offset of object i.  Offsets[0] is always 0.
	Offsets []int64

	// XRefPos is the byte offset of the "xref" keyword.
	XRefPos int64

	// Root and Info are the object numbers of the document catalog and of
	// the document information dictionary.  Info is 0 if the trailer has
	// no /Info entry.
	Root int
	Info int
}

// Error describes a structural problem found in a PDF file.
type Error struct {
	Pos int64
	Err error
}

func (err *Error) Error() string {
	return "malformed PDF at byte " + strconv.FormatInt(err.Pos, 10) + ": " +
		err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

var (
	headerRegexp    = regexp.MustCompile(`^%PDF-(\d\.\d)\n`)
	startXRefRegexp = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`)
	xrefHeadRegexp  = regexp.MustCompile(`^xref\n0 (\d+)\n`)
	entryRegexp     = regexp.MustCompile(`^(\d{10}) (\d{5}) ([nf]) \n$`)
	sizeRegexp      = regexp.MustCompile(`/Size (\d+)`)
	rootRegexp      = regexp.MustCompile(`/Root (\d+) 0 R`)
	infoRegexp      = regexp.MustCompile(`/Info (\d+) 0 R`)
)

// File checks the structure of the PDF file contained in data.
func File(data []byte) (*Info, error) {
	info := &Info{}

	m := headerRegexp.FindSubmatch(data)
	if m == nil {
		return nil, &Error{Pos: 0, Err: errors.New("missing PDF header")}
	}
	info.Version = string(m[1])

	idx := startXRefRegexp.FindSubmatchIndex(data)
	if idx == nil {
		return nil, &Error{Pos: int64(len(data)), Err: errors.New("missing startxref")}
	}
	xrefPos, err := strconv.ParseInt(string(data[idx[2]:idx[3]]), 10, 64)
	if err != nil || xrefPos <= 0 || xrefPos >= int64(idx[0]) {
		return nil, &Error{Pos: int64(idx[2]), Err: errors.New("invalid startxref value")}
	}
	info.XRefPos = xrefPos

	pos := xrefPos
	m = xrefHeadRegexp.FindSubmatch(data[pos:])
	if m == nil {
		return nil, &Error{Pos: pos, Err: errors.New("missing xref table")}
	}
	size, _ := strconv.Atoi(string(m[1]))
	if size < 1 {
		return nil, &Error{Pos: pos, Err: errors.New("empty xref table")}
	}
	info.Size = size
	pos += int64(len(m[0]))

	info.Offsets = make([]int64, size)
	for i := 0; i < size; i++ {
		if pos+20 > int64(len(data)) {
			return nil, &Error{Pos: pos, Err: errors.New("truncated xref table")}
		}
		entry := entryRegexp.FindSubmatch(data[pos : pos+20])
		if entry == nil {
			return nil, &Error{Pos: pos, Err: fmt.Errorf("malformed xref entry %d", i)}
		}
		offset, _ := strconv.ParseInt(string(entry[1]), 10, 64)
		if i == 0 {
			if offset != 0 || string(entry[2]) != "65535" || string(entry[3]) != "f" {
				return nil, &Error{Pos: pos, Err: errors.New("wrong xref entry for object 0")}
			}
		} else {
			if string(entry[2]) != "00000" || string(entry[3]) != "n" {
				return nil, &Error{Pos: pos, Err: fmt.Errorf("object %d not in use", i)}
			}
			objLine := []byte(strconv.Itoa(i) + " 0 obj\n")
			if offset >= xrefPos || !bytes.HasPrefix(data[offset:], objLine) {
				return nil, &Error{Pos: pos, Err: fmt.Errorf("xref entry %d does not point to object %d", i, i)}
			}
		}
		info.Offsets[i] = offset
		pos += 20
	}

	trailer := data[pos:]
	if !bytes.HasPrefix(trailer, []byte("trailer\n")) {
		return nil, &Error{Pos: pos, Err: errors.New("missing trailer")}
	}
	m = sizeRegexp.FindSubmatch(trailer)
	if m == nil {
		return nil, &Error{Pos: pos, Err: errors.New("missing /Size in trailer")}
	}
	if trailerSize, _ := strconv.Atoi(string(m[1])); trailerSize != size {
		return nil, &Error{Pos: pos, Err: fmt.Errorf("/Size %d does not match %d xref entries", trailerSize, size)}
	}
	m = rootRegexp.FindSubmatch(trailer)
	if m == nil {
		return nil, &Error{Pos: pos, Err: errors.New("missing /Root in trailer")}
	}
	info.Root, _ = strconv.Atoi(string(m[1]))
	if info.Root < 1 || info.Root >= size {
		return nil, &Error{Pos: pos, Err: errors.New("/Root out of range")}
	}
	if m = infoRegexp.FindSubmatch(trailer); m != nil {
		info.Info, _ = strconv.Atoi(string(m[1]))
		if info.Info < 1 || info.Info >= size {
			return nil, &Error{Pos: pos, Err: errors.New("/Info out of range")}
		}
	}

	return info, nil
}

// Object returns the body of object num, i.e. the bytes between the
// "num 0 obj" line and the following "endobj" keyword.
func (info *Info) Object(data []byte, num int) ([]byte, error) {
	if num < 1 || num >= len(info.Offsets) {
		return nil, fmt.Errorf("object %d not found", num)
	}
	start := info.Offsets[num]
	body := data[start:]
	body = body[bytes.IndexByte(body, '\n')+1:]
	end := bytes.Index(body, []byte("\nendobj\n"))
	if end < 0 {
		return nil, &Error{Pos: start, Err: fmt.Errorf("object %d not terminated", num)}
	}
	return body[:end], nil
}
