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

// Mkpdf writes a single-page PDF file showing a line of text.
//
// Usage:
//
//	mkpdf [options] [text ...]
//
// The remaining command line arguments are joined by spaces and shown on
// the page.  Positions and the font size are given in the unit selected
// by -unit.  Use "-o -" to write the PDF file to standard output.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/minipdf/document"
	"seehuhn.de/go/minipdf/internal/verify"
	"seehuhn.de/go/minipdf/page"
	"seehuhn.de/go/minipdf/unit"
)

var (
	outFile   = flag.String("o", "out.pdf", "name of the output file, or \"-\" for stdout")
	paper     = flag.String("paper", "A4", "paper size (A3, A4, A5, Letter, Legal)")
	landscape = flag.Bool("landscape", false, "use landscape orientation")
	unitName  = flag.String("unit", "pt", "unit for positions and sizes (pt, in, mm, cm)")
	posX      = flag.Float64("x", 72, "horizontal text position")
	posY      = flag.Float64("y", 72, "vertical text position")
	fontName  = flag.String("font", "Helvetica", "name of a standard font")
	fontSize  = flag.Float64("size", 12, "font size")
	angle     = flag.Float64("rotate", 0, "text rotation in degrees, counter-clockwise")
	frame     = flag.Bool("frame", false, "draw a frame around the area inside the margins")
	title     = flag.String("title", "", "document title")
	author    = flag.String("author", "", "document author")
	lang      = flag.String("lang", "", "language of the text, e.g. \"en-GB\"")
	srgb      = flag.Bool("srgb", false, "embed an sRGB output intent")
	topLeft   = flag.Bool("top-left", false, "measure positions from the top-left corner")
	describe  = flag.String("describe", "", "print information about a TrueType or OpenType font file and exit")
	verbose   = flag.Bool("v", false, "show progress information")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mkpdf: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [text ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	doc := document.New()

	if *describe != "" {
		return describeFont(doc, *describe)
	}

	u, err := unit.ParseUnit(*unitName)
	if err != nil {
		return err
	}
	size, ok := page.PaperByName(*paper)
	if !ok {
		return fmt.Errorf("unknown paper size %q", *paper)
	}
	orientation := page.Portrait
	if *landscape {
		size = size.Landscape()
		orientation = page.Landscape
	}

	tag, ok := doc.UseFont(*fontName)
	if !ok {
		return fmt.Errorf("%q is not a standard font", *fontName)
	}

	doc.SetInfo(document.Info{
		Title:    *title,
		Author:   *author,
		Producer: producer(),
	})
	if *lang != "" {
		lt, err := language.Parse(*lang)
		if err != nil {
			return err
		}
		doc.SetLanguage(lt)
	}

	if *srgb {
		doc.SetOutputIntent(document.SRGB())
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		text = "Hello, World!"
	}

	p := doc.NewPage()
	p.SetSize(size)
	p.SetOrientation(orientation)
	p.SetTopLeftOrigin(*topLeft)

	x := unit.ToPoints(*posX, u)
	y := unit.ToPoints(*posY, u)
	fs := unit.ToPoints(*fontSize, u)

	if *frame {
		llx, lly, urx, ury := p.ContentBox()
		c := p.Content()
		c.SaveState()
		c.SetLineWidth(0.5)
		c.SetStrokeGray(0.5)
		c.Rectangle(llx, lly, urx-llx, ury-lly)
		c.Stroke()
		c.RestoreState()
	}

	if *angle == 0 {
		p.DrawText(text, x, y, tag, fs)
	} else {
		dx, dy := p.ToDevice(x, y)
		c := p.Content()
		c.SaveState()
		c.Transform(unit.Translate(dx, dy))
		c.Transform(unit.Rotate(*angle))
		c.AppendText(text, 0, 0, tag, fs, nil)
		c.RestoreState()
	}
	if *verbose {
		log.Printf("%s page, %s, text at (%g, %g) %s in %s %gpt",
			*paper, orientation, *posX, *posY, u, *fontName, fs)
	}

	if *outFile == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		out := bufio.NewWriter(os.Stdout)
		n, err := doc.WriteTo(out)
		if err != nil {
			return err
		}
		if *verbose {
			log.Printf("%d bytes written to stdout", n)
		}
		return out.Flush()
	}

	err = doc.Save(*outFile)
	if err != nil {
		return err
	}
	return check(*outFile)
}

// check makes sure that the output file exists and is structurally sound.
func check(fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: empty file", fname)
	}
	info, err := verify.File(data)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	if *verbose {
		log.Printf("%s: %d bytes, %d objects, PDF-%s",
			fname, len(data), info.Size-1, info.Version)
	}
	return nil
}

func describeFont(doc *document.Document, fname string) error {
	fonts := doc.Fonts()
	fonts.RegisterFont("external", fname)
	info, err := fonts.Describe("external")
	if err != nil {
		return err
	}
	fmt.Printf("file:     %s\n", info.Path)
	fmt.Printf("name:     %s\n", info.PostScriptName)
	fmt.Printf("family:   %s\n", info.FamilyName)
	fmt.Printf("glyphs:   %d\n", info.NumGlyphs)
	return nil
}

func producer() string {
	return "mkpdf (seehuhn.de/go/minipdf, PDF-" + document.Version.String() + ")"
}
