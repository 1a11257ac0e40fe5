// This file is part of GoCDG.
//
// GoCDG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoCDG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoCDG.  If not, see <https://www.gnu.org/licenses/>.

// Package archivefs gives access to members of zip archives. Karaoke
// tracks are commonly distributed as a zip file pairing a .cdg graphics
// stream with the matching audio file.
package archivefs

import (
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/openkj/gocdg/curated"
)

// IsArchive returns true if the named file looks like a zip archive.
// Only the file extension is examined.
func IsArchive(filename string) bool {
	return strings.EqualFold(path.Ext(filename), ".zip")
}

// FindMember returns the name of the first member of the archive with
// the given file extension. The extension comparison is case
// insensitive.
func FindMember(filename string, ext string) (string, error) {
	zf, err := zip.OpenReader(filename)
	if err != nil {
		return "", curated.Errorf("archivefs: %v", err)
	}
	defer zf.Close()

	for _, f := range zf.File {
		if strings.EqualFold(path.Ext(f.Name), ext) {
			return f.Name, nil
		}
	}

	return "", curated.Errorf("archivefs: no %s member in %s", ext, filename)
}

// ReadMember returns the named member of the archive in its entirety.
func ReadMember(filename string, member string) ([]byte, error) {
	zf, err := zip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer zf.Close()

	for _, f := range zf.File {
		if f.Name != member {
			continue
		}

		r, err := f.Open()
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}

		return data, nil
	}

	return nil, curated.Errorf("archivefs: no member named %s in %s", member, filename)
}
