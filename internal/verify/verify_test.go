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

package verify_test

import (
	"bytes"
	"errors"
	"testing"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/internal/verify"
)

func sampleFile(t *testing.T) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	w, err := minipdf.NewWriter(buf, minipdf.V1_4)
	if err != nil {
		t.Fatal(err)
	}
	pages := w.Next()
	err = w.WriteIndirect(pages, minipdf.Dict{
		"Type":  minipdf.Name("Pages"),
		"Kids":  minipdf.Array{},
		"Count": minipdf.Integer(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	catalog := w.Next()
	err = w.WriteIndirect(catalog, minipdf.Dict{
		"Type":  minipdf.Name("Catalog"),
		"Pages": pages,
	})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(catalog, 0)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestValid(t *testing.T) {
	data := sampleFile(t)
	info, err := verify.File(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size != 3 || info.Root != 2 || info.Info != 0 {
		t.Errorf("wrong file info %+v", info)
	}

	body, err := info.Object(data, 2)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "<<\n/Pages 1 0 R\n/Type /Catalog\n>>" {
		t.Errorf("wrong catalog %q", body)
	}
	if _, err := info.Object(data, 3); err == nil {
		t.Error("missing object found")
	}
}

func TestMalformed(t *testing.T) {
	cases := []struct {
		name   string
		modify func([]byte) []byte
	}{
		{"header", func(data []byte) []byte {
			return bytes.Replace(data, []byte("%PDF-1.4"), []byte("%XYZ-1.4"), 1)
		}},
		{"eof", func(data []byte) []byte {
			return data[:len(data)-1]
		}},
		{"shifted object", func(data []byte) []byte {
			return bytes.Replace(data, []byte("1 0 obj\n"), []byte(" 1 0 obj\n"), 1)
		}},
		{"free entry", func(data []byte) []byte {
			return bytes.Replace(data, []byte(" 00000 n \n"), []byte(" 00000 f \n"), 1)
		}},
		{"size", func(data []byte) []byte {
			return bytes.Replace(data, []byte("/Size 3"), []byte("/Size 4"), 1)
		}},
		{"root", func(data []byte) []byte {
			return bytes.Replace(data, []byte("/Root 2 0 R"), []byte("/Root 7 0 R"), 1)
		}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			data := test.modify(sampleFile(t))
			_, err := verify.File(data)
			if err == nil {
				t.Fatal("malformed file accepted")
			}
			var verr *verify.Error
			if !errors.As(err, &verr) {
				t.Errorf("wrong error type %T", err)
			}
		})
	}
}
