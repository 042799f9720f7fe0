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
	"fmt"
	"io"
)

// Writer represents a PDF file open for writing.
//
// Indirect objects are written immediately, in the order of their object
// numbers.  The byte offset of every object is recorded, and [Writer.Close]
// uses these offsets to emit the cross-reference table and the trailer.
type Writer struct {
	// Version is the PDF version given in the file header.
	Version Version

	w      *posWriter
	closed bool

	// xref[i] is the byte offset of object i.  Entry 0 is the head of the
	// free list and always has offset 0.
	xref []int64
}

// NewWriter prepares a PDF file for writing and writes the file header.
//
// The output starts at byte offset 0 of w: if w already contains data,
// the offsets in the cross-reference table will be wrong.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	verString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		Version: ver,
		w:       &posWriter{w: w},
		xref:    []int64{0},
	}

	// The comment on the second line marks the file as binary.
	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Next returns the reference which the next indirect object must use.
func (pdf *Writer) Next() Reference {
	return Reference(len(pdf.xref))
}

// Pos returns the number of bytes written so far.
func (pdf *Writer) Pos() int64 {
	return pdf.w.pos
}

// NumObjects returns the number of indirect objects written so far.
func (pdf *Writer) NumObjects() int {
	return len(pdf.xref) - 1
}

// WriteIndirect writes obj to the PDF file, as an indirect object with the
// given reference.  The reference must equal [Writer.Next].
// A nil object is written as "null".
func (pdf *Writer) WriteIndirect(ref Reference, obj Object) error {
	err := pdf.begin(ref)
	if err != nil {
		return err
	}

	if obj == nil {
		_, err = pdf.w.Write([]byte("null"))
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return err
	}

	_, err = pdf.w.Write([]byte("\nendobj\n"))
	return err
}

// WriteStream writes a stream object with the given dictionary and
// contents.  The /Length entry is set to the number of bytes in data;
// dict itself is not modified.  The reference must equal [Writer.Next].
func (pdf *Writer) WriteStream(ref Reference, dict Dict, data []byte) error {
	err := pdf.begin(ref)
	if err != nil {
		return err
	}

	streamDict := make(Dict, len(dict)+1)
	for key, val := range dict {
		streamDict[key] = val
	}
	streamDict["Length"] = Integer(len(data))

	err = streamDict.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	_, err = pdf.w.Write(data)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendstream\nendobj\n"))
	return err
}

// begin records the position of the next object and writes its "obj" line.
func (pdf *Writer) begin(ref Reference) error {
	if pdf.closed {
		return ErrClosed
	}
	if want := pdf.Next(); ref != want {
		return &ObjectOrderError{Want: want, Got: ref}
	}

	pdf.xref = append(pdf.xref, pdf.w.pos)
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", ref.Number())
	return err
}

// Close writes the cross-reference table and the trailer.
// The catalog reference is required.  If info is non-zero, it is
// included in the trailer as the document information dictionary.
//
// Close does not close the underlying io.Writer.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.closed {
		return ErrClosed
	}
	if catalog == 0 || catalog >= pdf.Next() {
		return fmt.Errorf("invalid catalog reference %d", catalog.Number())
	}
	if info >= pdf.Next() {
		return fmt.Errorf("invalid info reference %d", info.Number())
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable()
	if err != nil {
		return err
	}

	trailer := Dict{
		"Size": Integer(len(pdf.xref)),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}
	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pdf.w)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	// make sure we don't accidentally write beyond the end of file
	pdf.closed = true

	return nil
}

// writeXRefTable writes the cross-reference table.  Every entry is exactly
// 20 bytes long, including the two-byte end-of-line marker " \n".
func (pdf *Writer) writeXRefTable() error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", len(pdf.xref))
	if err != nil {
		return err
	}

	_, err = pdf.w.Write([]byte("0000000000 65535 f \n"))
	if err != nil {
		return err
	}
	for _, pos := range pdf.xref[1:] {
		_, err = fmt.Fprintf(pdf.w, "%010d 00000 n \n", pos)
		if err != nil {
			return err
		}
	}
	return nil
}

// posWriter counts the bytes written to the underlying writer.
// Buffering below posWriter does not affect the recorded positions.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
