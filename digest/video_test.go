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

package digest_test

import (
	"testing"

	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/digest"
	"github.com/openkj/gocdg/test"
)

func decode(t *testing.T, stream []byte) *cdg.Decoder {
	t.Helper()
	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	return dec
}

func TestVideoDigest(t *testing.T) {
	// two frames of no-op packets
	stream := make([]byte, cdg.PacketSize*24)

	dig := digest.NewVideo()
	test.Equate(t, dig.Hash(), "0000000000000000000000000000000000000000")

	hash, err := dig.Timeline(decode(t, stream))
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(hash), 40)

	// the same stream produces the same hash
	dig2 := digest.NewVideo()
	hash2, err := dig2.Timeline(decode(t, stream))
	test.ExpectedSuccess(t, err)
	test.Equate(t, hash, hash2)

	// a memory preset changes every pixel index but the palette is
	// still black, so the RGB output and therefore the hash are
	// unchanged
	stream2 := make([]byte, cdg.PacketSize*24)
	stream2[0] = 0x09
	stream2[1] = 0x01
	stream2[4] = 0x05

	dig3 := digest.NewVideo()
	hash3, err := dig3.Timeline(decode(t, stream2))
	test.ExpectedSuccess(t, err)
	test.Equate(t, hash, hash3)

	// reset returns the digest to its initial state
	dig.ResetDigest()
	test.Equate(t, dig.Hash(), "0000000000000000000000000000000000000000")
}

func TestHashAt(t *testing.T) {
	// a white fill in the first packet group. the palette needs loading
	// too or the fill is invisible
	stream := make([]byte, cdg.PacketSize*24)

	// memory preset to color 15
	stream[0] = 0x09
	stream[1] = 0x01
	stream[4] = 0x0f

	// load colors high, color 15 = white
	pkt := stream[cdg.PacketSize:]
	pkt[0] = 0x09
	pkt[1] = 0x1f
	pkt[18] = 0x3f
	pkt[19] = 0x3f

	dec := decode(t, stream)

	// both frames show the same image so the single frame hashes agree.
	// this is not true of the chained timeline digest
	h1, err := digest.HashAt(dec, 0)
	test.ExpectedSuccess(t, err)
	h2, err := digest.HashAt(dec, 80)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(h1), 40)
	test.Equate(t, h1, h2)

	// a blank stream shows a different image
	h3, err := digest.HashAt(decode(t, make([]byte, cdg.PacketSize*24)), 40)
	test.ExpectedSuccess(t, err)
	if h1 == h3 {
		t.Errorf("hash of white frame should differ from hash of black frame")
	}
}
