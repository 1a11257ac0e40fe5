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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/curated"
)

// Video generates a SHA-1 value over the frames of a decoded timeline.
// Each frame's fingerprint is chained with the previous one so the
// final value depends on every frame in order, not just the last.
//
// Note that the use of SHA-1 is fine for this application because this
// is not a cryptographic task.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video
// type.
func NewVideo() *Video {
	dig := &Video{}

	// the pixels array contains enough room for the previous frame's
	// digest value at the head
	dig.pixels = make([]byte, sha1.Size+cdg.DisplayWidth*cdg.DisplayHeight*pixelDepth)

	return dig
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Frame folds a single frame into the digest.
func (dig *Video) Frame(frm *cdg.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the frame data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: %v", "error chaining fingerprints")
	}

	n = copy(dig.pixels[sha1.Size:], frm.RGB())
	if n != cdg.DisplayWidth*cdg.DisplayHeight*pixelDepth {
		return curated.Errorf("digest: %v", "unexpected frame size")
	}

	dig.digest = sha1.Sum(dig.pixels)

	return nil
}

// HashAt returns the fingerprint of the single frame on display at the
// given stream time. Unlike the chained timeline digest, the value
// depends only on that one frame so it can be used to identify a track
// from a sample of its playback.
func HashAt(dec *cdg.Decoder, ms int) (string, error) {
	frm, err := dec.FrameAt(ms)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", sha1.Sum(frm.RGB())), nil
}

// Timeline folds every frame of a processed decoder into the digest
// and returns the resulting hash.
func (dig *Video) Timeline(dec *cdg.Decoder) (string, error) {
	for i := 0; i < dec.NumFrames(); i++ {
		frm, err := dec.Frame(i)
		if err != nil {
			return "", err
		}

		err = dig.Frame(frm)
		if err != nil {
			return "", err
		}
	}

	return dig.Hash(), nil
}
