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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/cdgloader"
	"github.com/openkj/gocdg/curated"
	"github.com/openkj/gocdg/database"
	"github.com/openkj/gocdg/digest"
)

const videoEntryID = "video"

const (
	videoFieldCdgFile int = iota
	videoFieldNumFrames
	videoFieldStreamHash
	videoFieldDigest
	numVideoFields
)

// VideoRegression records the fingerprint of a decoded frame timeline.
type VideoRegression struct {
	key int

	// path of the track when the entry was added. the stream hash
	// guards against the file changing underneath us
	CdgFile    string
	NumFrames  int
	StreamHash string

	digest string
}

// NewVideoRegression is the preferred method of initialisation for the
// VideoRegression type.
func NewVideoRegression(cdgFile string) *VideoRegression {
	return &VideoRegression{CdgFile: cdgFile}
}

func deserialiseVideoEntry(key int, fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numVideoFields {
		return nil, curated.Errorf("regression: %v", "wrong number of fields in video entry")
	}

	reg := &VideoRegression{
		key:        key,
		CdgFile:    fields[videoFieldCdgFile],
		StreamHash: fields[videoFieldStreamHash],
		digest:     fields[videoFieldDigest],
	}

	var err error
	reg.NumFrames, err = strconv.Atoi(fields[videoFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("regression: invalid numFrames field (%s)", fields[videoFieldNumFrames])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg *VideoRegression) ID() string {
	return videoEntryID
}

// Key implements the database.Entry interface.
func (reg *VideoRegression) Key() int {
	return reg.key
}

// SetKey implements the database.Entry interface.
func (reg *VideoRegression) SetKey(key int) {
	reg.key = key
}

// String implements the database.Entry interface.
func (reg *VideoRegression) String() string {
	return fmt.Sprintf("[%s] %s frames=%d", reg.ID(), reg.CdgFile, reg.NumFrames)
}

// Serialise implements the database.Entry interface.
func (reg *VideoRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.CdgFile,
		strconv.Itoa(reg.NumFrames),
		reg.StreamHash,
		reg.digest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *VideoRegression) CleanUp() error {
	return nil
}

// regress implements the Regressor interface.
func (reg *VideoRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	output.Write([]byte(message))

	ld, err := cdgloader.NewLoader(reg.CdgFile)
	if err != nil {
		return false, curated.Errorf("regression: %v", err)
	}

	// when running an existing entry make sure the track on disk is
	// the track that was recorded
	if !newRegression {
		ld.Hash = reg.StreamHash
	}

	err = ld.Load()
	if err != nil {
		return false, curated.Errorf("regression: %v", err)
	}

	dec := cdg.NewDecoder()
	if err = dec.Open(ld.Data); err != nil {
		return false, curated.Errorf("regression: %v", err)
	}
	if err = dec.Process(); err != nil {
		return false, curated.Errorf("regression: %v", err)
	}

	dig := digest.NewVideo()
	hash, err := dig.Timeline(dec)
	if err != nil {
		return false, curated.Errorf("regression: %v", err)
	}

	if newRegression {
		reg.NumFrames = dec.NumFrames()
		reg.StreamHash = ld.Hash
		reg.digest = hash
		return true, nil
	}

	return dec.NumFrames() == reg.NumFrames && hash == reg.digest, nil
}
