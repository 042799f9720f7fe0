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
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/minipdf"
)

// OutputIntent describes the intended output device of a document,
// using an ICC profile.
type OutputIntent struct {
	// Identifier names the output condition, e.g. "sRGB".
	Identifier string

	profile []byte
	n       int
}

// NewOutputIntent checks an ICC profile and returns an output intent
// which embeds it.  Gray, RGB and CMYK profiles are supported.
func NewOutputIntent(identifier string, profile []byte) (*OutputIntent, error) {
	if len(profile) == 0 {
		return nil, errors.New("output intent: missing ICC profile")
	}
	p, err := icc.Decode(profile)
	if err != nil {
		return nil, fmt.Errorf("output intent: %w", err)
	}
	switch p.ColorSpace {
	case icc.GraySpace, icc.RGBSpace, icc.CMYKSpace:
		// pass
	default:
		return nil, fmt.Errorf("output intent: unsupported color space %v", p.ColorSpace)
	}
	return &OutputIntent{
		Identifier: identifier,
		profile:    profile,
		n:          p.ColorSpace.NumComponents(),
	}, nil
}

// SRGB returns an output intent for the sRGB color space.
func SRGB() *OutputIntent {
	return &OutputIntent{
		Identifier: "sRGB",
		profile:    icc.SRGBv2Profile,
		n:          3,
	}
}

// Channels returns the number of color components of the profile.
func (oi *OutputIntent) Channels() int {
	return oi.n
}

// SetOutputIntent sets the output intent of the document.
// Use nil to remove the output intent.
func (d *Document) SetOutputIntent(oi *OutputIntent) {
	d.intent = oi
}

// OutputIntent returns the output intent of the document, or nil if none
// is set.
func (d *Document) OutputIntent() *OutputIntent {
	return d.intent
}

// writeProfile writes the ICC profile stream and returns the output
// intent dictionary for the catalog.
func (oi *OutputIntent) writeProfile(out *minipdf.Writer, ref minipdf.Reference) (minipdf.Dict, error) {
	err := out.WriteStream(ref, minipdf.Dict{
		"N": minipdf.Integer(oi.n),
	}, oi.profile)
	if err != nil {
		return nil, err
	}

	dict := minipdf.Dict{
		"Type":                      minipdf.Name("OutputIntent"),
		"S":                         minipdf.Name("GTS_PDFA1"),
		"OutputConditionIdentifier": minipdf.TextString(oi.Identifier),
		"DestOutputProfile":         ref,
	}
	return dict, nil
}
