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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the document to the named file.
//
// The data is first written to a temporary file in the same directory,
// which then replaces the target.  If an error occurs, an existing file
// at path is left unchanged and the temporary file is removed.
func (d *Document) Save(path string) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	fd, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	tmpName := fd.Name()
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(tmpName)
			err = fmt.Errorf("save %q: %w", path, err)
		}
	}()

	w := bufio.NewWriter(fd)
	_, err = d.WriteTo(w)
	if err != nil {
		return err
	}
	err = w.Flush()
	if err != nil {
		return err
	}

	err = fd.Chmod(0o644)
	if err != nil {
		return err
	}
	err = fd.Sync()
	if err != nil {
		return err
	}
	err = fd.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
