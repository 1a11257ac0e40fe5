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

package cdgloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/openkj/gocdg/archivefs"
	"github.com/openkj/gocdg/curated"
	"github.com/openkj/gocdg/logger"
)

// FileExtensions is the list of file extensions that are recognised by
// the cdgloader package.
var FileExtensions = [...]string{".CDG", ".ZIP"}

// AudioExtensions is the list of audio file extensions that are
// considered when looking for the audio half of a karaoke track.
var AudioExtensions = [...]string{".MP3", ".WAV"}

// Loader is used to specify the track to load. The zero value is not
// usable, call NewLoader().
type Loader struct {
	// filename of the track to load. may be a bare .cdg file or a zip
	// archive containing one
	Filename string

	// expected hash of the loaded stream. empty string indicates that
	// the hash is unknown and need not be validated. after a load
	// operation the value will be the hash of the loaded data
	Hash string

	// copy of the loaded subcode stream
	Data []byte

	// the audio half of the track, if one was found. for zip archives
	// this is the name of the archive member
	AudioFilename string
	AudioData     []byte
}

// NewLoader is the preferred method of initialisation for the Loader
// type. The filename must carry a recognised file extension.
func NewLoader(filename string) (Loader, error) {
	ext := strings.ToUpper(path.Ext(filename))

	for _, e := range FileExtensions {
		if ext == e {
			return Loader{Filename: filename}, nil
		}
	}

	return Loader{}, curated.Errorf("cdgloader: %v", fmt.Sprintf("unrecognised file extension (%s)", ext))
}

// ShortName returns a shortened version of the Loader filename,
// suitable for window titles and log messages.
func (ld Loader) ShortName() string {
	shortName := path.Base(ld.Filename)
	return strings.TrimSuffix(shortName, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the subcode stream and any paired audio file. Loader filenames
// with a valid schema will use that method to load the data. Currently
// supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("cdgloader: %v", err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cdgloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		if archivefs.IsArchive(ld.Filename) {
			err = ld.loadFromArchive()
		} else {
			err = ld.loadFromFile()
		}
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cdgloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash of the subcode stream and check consistency with
	// any expected value
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("cdgloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}

// loadFromFile reads a bare .cdg file and looks for a matching audio
// file alongside it.
func (ld *Loader) loadFromFile() error {
	var err error

	ld.Data, err = os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf("cdgloader: %v", err)
	}

	// the audio half of the track shares the basename of the graphics
	// half
	base := strings.TrimSuffix(ld.Filename, path.Ext(ld.Filename))
	for _, e := range AudioExtensions {
		for _, fn := range []string{base + strings.ToLower(e), base + e} {
			data, err := os.ReadFile(fn)
			if err == nil {
				ld.AudioFilename = fn
				ld.AudioData = data
				return nil
			}
		}
	}

	logger.Logf("cdgloader", "no audio file found for %s", ld.ShortName())

	return nil
}

// loadFromArchive finds the .cdg member of a zip archive and any audio
// member next to it.
func (ld *Loader) loadFromArchive() error {
	member, err := archivefs.FindMember(ld.Filename, ".cdg")
	if err != nil {
		return curated.Errorf("cdgloader: %v", err)
	}

	ld.Data, err = archivefs.ReadMember(ld.Filename, member)
	if err != nil {
		return curated.Errorf("cdgloader: %v", err)
	}

	for _, e := range AudioExtensions {
		member, err := archivefs.FindMember(ld.Filename, e)
		if err != nil {
			continue
		}

		data, err := archivefs.ReadMember(ld.Filename, member)
		if err != nil {
			return curated.Errorf("cdgloader: %v", err)
		}

		ld.AudioFilename = member
		ld.AudioData = data
		return nil
	}

	logger.Logf("cdgloader", "no audio member found in %s", ld.ShortName())

	return nil
}
