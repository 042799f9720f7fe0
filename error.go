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
	"errors"
	"strconv"
)

// ErrClosed is returned when an object is written to a [Writer] after
// the Writer has been closed.
var ErrClosed = errors.New("PDF writer already closed")

// ObjectOrderError is returned when an indirect object is written out of
// sequence.  Objects must be written in the order of their object numbers,
// starting at 1 and without gaps.
type ObjectOrderError struct {
	Want Reference
	Got  Reference
}

func (err *ObjectOrderError) Error() string {
	return "object " + strconv.Itoa(err.Got.Number()) +
		" written out of order (expected object " +
		strconv.Itoa(err.Want.Number()) + ")"
}
