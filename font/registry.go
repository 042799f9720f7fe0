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

package font

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt"
)

// Registry maps logical font names to standard-font resource tags and to
// external font files.
//
// The registry is a flat mapping: every name refers to either a standard
// font or an external font, never both.  Registering an external font
// under an existing name replaces the previous entry, including a standard
// font entry, while standard fonts are only added for names which are not
// present yet.
// A Registry is not safe for concurrent use.
type Registry struct {
	builtIn  map[string]string
	external map[string]string

	// order holds all registered names in order of first registration
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builtIn:  make(map[string]string),
		external: make(map[string]string),
	}
}

// RegisterStandardFonts makes sure that the 14 standard PDF fonts are
// present, each mapped to its resource tag.  Existing entries, standard
// or external, are kept.
// Calling this more than once has no further effect.
func (r *Registry) RegisterStandardFonts() {
	for _, f := range All {
		name := string(f)
		if r.has(name) {
			continue
		}
		r.builtIn[name] = f.Tag()
		r.remember(name)
	}
}

// RegisterFont maps name to the font file at path.  An existing entry for
// name is replaced, even if it refers to a standard font.  The call is
// ignored if name or path is blank.
// The file is not accessed; see [Registry.Describe].
func (r *Registry) RegisterFont(name, path string) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(path) == "" {
		return
	}
	delete(r.builtIn, name)
	r.external[name] = path
	r.remember(name)
}

func (r *Registry) has(name string) bool {
	_, isBuiltIn := r.builtIn[name]
	_, isExternal := r.external[name]
	return isBuiltIn || isExternal
}

func (r *Registry) remember(name string) {
	if !slices.Contains(r.order, name) {
		r.order = append(r.order, name)
	}
}

// LookupBuiltIn returns the resource tag of a standard font.
func (r *Registry) LookupBuiltIn(name string) (string, bool) {
	tag, ok := r.builtIn[name]
	return tag, ok
}

// LookupRegistered returns the file path of an external font.
func (r *Registry) LookupRegistered(name string) (string, bool) {
	path, ok := r.external[name]
	return path, ok
}

// Names returns all registered logical names, standard and external,
// in the order in which they were first registered.  Callers should not
// rely on the order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.order)
}

// Info describes an external font file.
type Info struct {
	// PostScriptName is the PostScript name of the font.
	PostScriptName string

	// FamilyName is the font family name, e.g. "Go".
	FamilyName string

	// NumGlyphs is the number of glyphs in the font.
	NumGlyphs int

	// Path is the file the information was read from.
	Path string
}

// ErrNotRegistered is returned by [Registry.Describe] when no external
// font is registered under the given name.
var ErrNotRegistered = errors.New("font not registered")

// Describe reads the TrueType or OpenType file registered under name and
// returns information about the font.
func (r *Registry) Describe(name string) (*Info, error) {
	path, ok := r.external[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	defer fd.Close()

	info, err := sfnt.Read(fd)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}

	return &Info{
		PostScriptName: info.PostScriptName(),
		FamilyName:     info.FamilyName,
		NumGlyphs:      info.NumGlyphs(),
		Path:           path,
	}, nil
}
