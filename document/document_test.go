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
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/icc"

	"seehuhn.de/go/minipdf/font"
	"seehuhn.de/go/minipdf/internal/verify"
	"seehuhn.de/go/minipdf/page"
)

func write(t *testing.T, d *Document) ([]byte, *verify.Info) {
	t.Helper()
	buf := &bytes.Buffer{}
	n, err := d.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, but wrote %d", n, buf.Len())
	}
	data := buf.Bytes()
	info, err := verify.File(data)
	if err != nil {
		t.Fatal(err)
	}
	return data, info
}

func object(t *testing.T, data []byte, info *verify.Info, num int) string {
	t.Helper()
	body, err := info.Object(data, num)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestObjectCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		d := New()
		for i := 0; i < n; i++ {
			p := d.NewPage()
			p.DrawText(fmt.Sprintf("page %d", i+1), 40, 40, DefaultFont, 12)
		}
		_, info := write(t, d)

		// sentinel + font + two objects per page + pages tree + catalog
		want := 1 + 1 + 2*n + 2
		if info.Size != want {
			t.Errorf("%d pages: %d xref entries, expected %d", n, info.Size, want)
		}
		if info.Root != want-1 {
			t.Errorf("%d pages: catalog is object %d, expected %d", n, info.Root, want-1)
		}
		if info.Info != 0 {
			t.Errorf("%d pages: unexpected /Info %d", n, info.Info)
		}
		if info.Version != "1.4" {
			t.Errorf("wrong PDF version %q", info.Version)
		}
	}
}

func TestOffsetsIncreasing(t *testing.T) {
	d := New()
	d.NewPage()
	d.NewPage()
	_, info := write(t, d)

	for i := 2; i < info.Size; i++ {
		if info.Offsets[i] <= info.Offsets[i-1] {
			t.Errorf("object %d at %d is not after object %d at %d",
				i, info.Offsets[i], i-1, info.Offsets[i-1])
		}
	}
	if info.XRefPos <= info.Offsets[info.Size-1] {
		t.Error("xref table is not after the last object")
	}
}

func TestZeroPages(t *testing.T) {
	d := New()
	data, info := write(t, d)

	if info.Size != 4 {
		t.Fatalf("wrong number of xref entries %d", info.Size)
	}
	want := "<<\n/Count 0\n/Kids []\n/Type /Pages\n>>"
	if diff := cmp.Diff(want, object(t, data, info, 2)); diff != "" {
		t.Errorf("wrong pages tree (-want +got):\n%s", diff)
	}
	want = "<<\n/Pages 2 0 R\n/Type /Catalog\n>>"
	if diff := cmp.Diff(want, object(t, data, info, 3)); diff != "" {
		t.Errorf("wrong catalog (-want +got):\n%s", diff)
	}
}

func TestOnePage(t *testing.T) {
	d := New()
	p := d.NewPage()
	p.DrawText("Hello", 72, 720, DefaultFont, 24)
	data, info := write(t, d)

	cases := []struct {
		num  int
		body string
	}{
		{1, "<<\n/BaseFont /Helvetica\n/Encoding /WinAnsiEncoding\n/Subtype /Type1\n/Type /Font\n>>"},
		{2, "<<\n/Length 37\n>>\nstream\nBT /F1 24 Tf 72 720 Td (Hello) Tj ET\n\nendstream"},
		{3, "<<\n/Contents 2 0 R\n/MediaBox [0 0 595 842]\n/Parent 4 0 R\n" +
			"/Resources <<\n/Font <<\n/F1 1 0 R\n>>\n>>\n/Type /Page\n>>"},
		{4, "<<\n/Count 1\n/Kids [3 0 R]\n/Type /Pages\n>>"},
		{5, "<<\n/Pages 4 0 R\n/Type /Catalog\n>>"},
	}
	for _, test := range cases {
		if diff := cmp.Diff(test.body, object(t, data, info, test.num)); diff != "" {
			t.Errorf("object %d (-want +got):\n%s", test.num, diff)
		}
	}

	if !bytes.Contains(data, []byte("trailer\n<<\n/Root 5 0 R\n/Size 6\n>>\nstartxref\n")) {
		t.Error("wrong trailer")
	}
}

func TestStreamLength(t *testing.T) {
	d := New()
	texts := []string{"", "short", strings.Repeat("long line ", 50)}
	for _, text := range texts {
		p := d.NewPage()
		if text != "" {
			p.DrawText(text, 10, 10, DefaultFont, 10)
		}
	}
	data, info := write(t, d)

	for i, p := range d.Pages() {
		content := p.Content().Bytes()
		body := object(t, data, info, 2+2*i)
		header := fmt.Sprintf("<<\n/Length %d\n>>\nstream\n", len(content))
		if !strings.HasPrefix(body, header) {
			t.Errorf("page %d: wrong stream header in %q", i+1, body)
			continue
		}
		stm := strings.TrimSuffix(strings.TrimPrefix(body, header), "\nendstream")
		if stm != string(content) {
			t.Errorf("page %d: stream data %q, expected %q", i+1, stm, content)
		}
	}
}

func TestIdempotent(t *testing.T) {
	d := New()
	d.SetLanguage(language.German)
	p := d.NewPage()
	p.DrawText("same", 10, 10, DefaultFont, 10)
	d.NewPage().SetSize(page.Letter)

	first, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	second, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("writing the same document twice gave different output")
	}
}

func TestEscaping(t *testing.T) {
	d := New()
	d.NewPage().DrawText("a(b)c", 0, 0, DefaultFont, 12)
	data, _ := write(t, d)

	if !bytes.Contains(data, []byte(`(a\(b\)c) Tj`)) {
		t.Error("parentheses not escaped")
	}
}

func TestPageGeometry(t *testing.T) {
	d := New()
	p := d.NewPage()
	p.SetSize(page.Size{Width: 200.5, Height: 100})
	p.SetOrientation(page.Landscape)
	data, info := write(t, d)

	body := object(t, data, info, 3)
	if !strings.Contains(body, "/MediaBox [0 0 200.5 100]") {
		t.Errorf("wrong media box in %q", body)
	}
	if strings.Contains(body, "/Rotate") {
		t.Error("orientation must not rotate the page")
	}
}

func TestInvalidSizeWrittenAsIs(t *testing.T) {
	d := New()
	d.NewPage().SetSize(page.Size{Width: -10, Height: 0})
	data, info := write(t, d)

	body := object(t, data, info, 3)
	if !strings.Contains(body, "/MediaBox [0 0 -10 0]") {
		t.Errorf("wrong media box in %q", body)
	}
}

func TestNonFiniteSize(t *testing.T) {
	d := New()
	d.NewPage().SetSize(page.Size{Width: math.NaN(), Height: math.Inf(1)})
	data, info := write(t, d)

	body := object(t, data, info, 3)
	if !strings.Contains(body, "/MediaBox [0 0 0 0]") {
		t.Errorf("wrong media box in %q", body)
	}
}

func TestUseFont(t *testing.T) {
	d := New()
	tag, ok := d.UseFont("Times-Bold")
	if !ok || tag != "F6" {
		t.Fatalf("UseFont(Times-Bold) = %q, %t", tag, ok)
	}
	d.UseFont("Times-Bold")
	d.UseFont("Helvetica")
	if _, ok := d.UseFont("Arial"); ok {
		t.Error("non-standard font accepted")
	}
	d.Fonts().RegisterFont("body", "/fonts/body.ttf")
	if _, ok := d.UseFont("body"); ok {
		t.Error("external font accepted")
	}
	d.Fonts().RegisterFont("Courier", "/fonts/courier.ttf")
	if _, ok := d.UseFont("Courier"); ok {
		t.Error("standard font used after being replaced by an external font")
	}
	sym, _ := d.UseFont("Symbol")

	want := []font.Standard{font.Helvetica, font.TimesBold, font.Symbol}
	if diff := cmp.Diff(want, d.UsedFonts()); diff != "" {
		t.Errorf("wrong fonts (-want +got):\n%s", diff)
	}

	p := d.NewPage()
	p.DrawText("bold", 10, 10, tag, 12)
	p.DrawText("α", 10, 30, sym, 12)
	data, info := write(t, d)

	if info.Size != 1+3+2+2 {
		t.Errorf("wrong number of xref entries %d", info.Size)
	}
	want2 := "<<\n/BaseFont /Symbol\n/Subtype /Type1\n/Type /Font\n>>"
	if diff := cmp.Diff(want2, object(t, data, info, 3)); diff != "" {
		t.Errorf("wrong symbol font (-want +got):\n%s", diff)
	}
	pageDict := object(t, data, info, 5)
	if !strings.Contains(pageDict, "/Font <<\n/F1 1 0 R\n/F13 3 0 R\n/F6 2 0 R\n>>") {
		t.Errorf("wrong font resources in %q", pageDict)
	}
}

func TestMetadata(t *testing.T) {
	d := New()
	d.SetInfo(Info{
		Title:    "Report",
		Author:   "Jürgen",
		Keywords: "pdf, test",
	})
	d.SetLanguage(language.BritishEnglish)
	d.NewPage()
	data, info := write(t, d)

	// font, content, page, pages tree, metadata, catalog, info
	if info.Size != 8 {
		t.Fatalf("wrong number of xref entries %d", info.Size)
	}
	if info.Root != 6 || info.Info != 7 {
		t.Errorf("wrong trailer references: /Root %d /Info %d", info.Root, info.Info)
	}

	metadata := object(t, data, info, 5)
	if !strings.HasPrefix(metadata, "<<\n/Length ") ||
		!strings.Contains(metadata, "/Subtype /XML\n/Type /Metadata\n>>\nstream\n") {
		t.Errorf("wrong metadata stream %q", metadata)
	}
	if !strings.Contains(metadata, "Report") {
		t.Error("title missing from XMP data")
	}

	catalog := object(t, data, info, 6)
	want := "<<\n/Lang (en-GB)\n/Metadata 5 0 R\n/Pages 4 0 R\n/Type /Catalog\n>>"
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Errorf("wrong catalog (-want +got):\n%s", diff)
	}

	infoDict := object(t, data, info, 7)
	want = "<<\n/Author <feff004a00fc007200670065006e>\n/Keywords (pdf, test)\n/Title (Report)\n>>"
	if diff := cmp.Diff(want, infoDict); diff != "" {
		t.Errorf("wrong info dict (-want +got):\n%s", diff)
	}
}

func TestPageList(t *testing.T) {
	d := New()
	p1 := d.NewPage()
	p3 := page.New()
	d.AddPage(p3)
	d.AddPage(nil)
	p2 := page.New()
	err := d.InsertPage(1, p2)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.InsertPage(5, page.New()); err == nil {
		t.Error("out of range index accepted")
	}

	want := []*page.Page{p1, p2, p3}
	got := d.Pages()
	if len(got) != len(want) {
		t.Fatalf("document has %d pages, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wrong page at index %d", i)
		}
	}

	if !d.RemovePage(p2) {
		t.Error("RemovePage did not find the page")
	}
	if d.RemovePage(p2) {
		t.Error("page removed twice")
	}
	if d.NumPages() != 2 {
		t.Errorf("wrong number of pages %d", d.NumPages())
	}

	p1.DrawText("one", 0, 0, DefaultFont, 10)
	p3.DrawText("three", 0, 0, DefaultFont, 10)
	data, info := write(t, d)
	tree := object(t, data, info, 6)
	if !strings.Contains(tree, "/Count 2\n/Kids [3 0 R 5 0 R]") {
		t.Errorf("wrong pages tree %q", tree)
	}
	if bytes.Index(data, []byte("(one)")) > bytes.Index(data, []byte("(three)")) {
		t.Error("pages written out of order")
	}
}

func TestDefaultFont(t *testing.T) {
	if font.Helvetica.Tag() != DefaultFont {
		t.Errorf("Helvetica has tag %q", font.Helvetica.Tag())
	}
}

func TestOutputIntent(t *testing.T) {
	d := New()
	d.SetOutputIntent(SRGB())
	d.NewPage()
	data, info := write(t, d)

	// font, content, page, pages tree, profile, catalog
	if info.Size != 7 {
		t.Fatalf("wrong number of xref entries %d", info.Size)
	}
	profile := object(t, data, info, 5)
	header := fmt.Sprintf("<<\n/Length %d\n/N 3\n>>\nstream\n", len(icc.SRGBv2Profile))
	if !strings.HasPrefix(profile, header) {
		t.Errorf("wrong profile stream header in %q", profile[:min(len(profile), 40)])
	}

	catalog := object(t, data, info, 6)
	want := "<<\n/OutputIntents [<<\n/DestOutputProfile 5 0 R\n" +
		"/OutputConditionIdentifier (sRGB)\n/S /GTS_PDFA1\n/Type /OutputIntent\n>>]\n" +
		"/Pages 4 0 R\n/Type /Catalog\n>>"
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Errorf("wrong catalog (-want +got):\n%s", diff)
	}

	d.SetOutputIntent(nil)
	_, info = write(t, d)
	if info.Size != 6 {
		t.Errorf("output intent not removed, %d xref entries", info.Size)
	}
}

func TestNewOutputIntent(t *testing.T) {
	oi, err := NewOutputIntent("sRGB v4", icc.SRGBv4Profile)
	if err != nil {
		t.Fatal(err)
	}
	if oi.Channels() != 3 {
		t.Errorf("wrong number of channels %d", oi.Channels())
	}

	if _, err := NewOutputIntent("none", nil); err == nil {
		t.Error("missing profile accepted")
	}
	if _, err := NewOutputIntent("junk", []byte("this is not an ICC profile")); err == nil {
		t.Error("invalid profile accepted")
	}
}
