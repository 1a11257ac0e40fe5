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

package cdg_test

import (
	"testing"

	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/test"
)

// newPacket builds a single 24 byte CD+G packet with the given
// instruction code and up to 16 bytes of payload.
func newPacket(instruction uint8, data ...uint8) []byte {
	pkt := make([]byte, cdg.PacketSize)
	pkt[0] = 0x09
	pkt[1] = instruction
	copy(pkt[4:20], data)
	return pkt
}

// memoryPreset builds a memory preset packet for the given color and
// repeat count.
func memoryPreset(color uint8, repeat uint8) []byte {
	return newPacket(0x01, color, repeat)
}

func TestEmptyStream(t *testing.T) {
	dec := cdg.NewDecoder()
	err := dec.Open([]byte{})
	test.ExpectedFailure(t, err)
	test.Equate(t, dec.IsOpen(), false)
}

func TestShortStream(t *testing.T) {
	// a single memory preset is fewer packets than a frame interval so
	// the timeline stays empty
	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(memoryPreset(5, 0)))
	test.ExpectedSuccess(t, dec.Process())

	test.Equate(t, dec.NumFrames(), 0)
	test.Equate(t, dec.LastUpdate(), 0)
	test.Equate(t, dec.IsOpen(), true)

	_, err := dec.FrameAt(0)
	test.ExpectedFailure(t, err)
}

func TestMemoryPresetRepeatSuppression(t *testing.T) {
	// the encoder emits the fill up to sixteen times for error
	// correction. repeat is zero on the first instance and non-zero on
	// the others
	var stream []byte
	stream = append(stream, memoryPreset(3, 0)...)
	for i := 0; i < 11; i++ {
		stream = append(stream, memoryPreset(3, 1)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())

	test.Equate(t, dec.NumFrames(), 1)

	frm, err := dec.Frame(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, frm.StartTime, 40)

	// the initial fill counts as an update so the frame interval is
	// not quiet
	test.Equate(t, dec.CanSkip(40), false)

	// every safe area pixel carries index 3. the palette is still
	// black so the RGB expansion is all zeros
	rgb := frm.RGB()
	test.Equate(t, len(rgb), cdg.DisplayWidth*cdg.DisplayHeight*3)
	for _, c := range rgb {
		if c != 0 {
			t.Fatalf("expected black pixel, got %d", c)
		}
	}
}

func TestLoadColors(t *testing.T) {
	// load colors low with red in entry 1 and white in entry 4,
	// followed by a memory preset selecting entry 1 and enough no-op
	// packets to round out a frame
	colors := []uint8{
		0x00, 0x00, // black
		0x3c, 0x00, // red
		0x03, 0x30, // green
		0x00, 0x0f, // blue
		0x3f, 0x3f, // white
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}

	var stream []byte
	stream = append(stream, newPacket(0x1e, colors...)...)
	stream = append(stream, memoryPreset(1, 0)...)
	for i := 0; i < 10; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	test.Equate(t, dec.NumFrames(), 1)

	frm, err := dec.Frame(0)
	test.ExpectedSuccess(t, err)

	rgb := frm.RGB()
	test.Equate(t, rgb[0], 255)
	test.Equate(t, rgb[1], 0)
	test.Equate(t, rgb[2], 0)
}

func TestLoadColorsNoChange(t *testing.T) {
	// loading all-black colors into an all-black palette is not a
	// visible change so the frame interval is quiet. padding with two
	// extra frames of no-ops gives CanSkip() a full three frame window
	var stream []byte
	for i := 0; i < 36; i++ {
		stream = append(stream, newPacket(0x1e)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())

	test.Equate(t, dec.NumFrames(), 3)
	test.Equate(t, dec.CanSkip(40), true)
	test.Equate(t, dec.LastUpdate(), 0)
}

func TestTileBlock(t *testing.T) {
	// solid tile at the top left of the canvas drawing color 1. the
	// tile lies wholly inside the border so none of it shows in the
	// frame
	data := []uint8{1, 1, 0, 0}
	for i := 0; i < 12; i++ {
		data = append(data, 0x3f)
	}

	var stream []byte
	stream = append(stream, newPacket(0x06, data...)...)

	// a second solid tile fully inside the safe area
	data2 := []uint8{0, 2, 1, 1}
	for i := 0; i < 12; i++ {
		data2 = append(data2, 0x3f)
	}
	stream = append(stream, newPacket(0x06, data2...)...)

	for i := 0; i < 10; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	test.Equate(t, dec.NumFrames(), 1)

	frm, err := dec.Frame(0)
	test.ExpectedSuccess(t, err)
	px := frm.Pixels()

	// tile at row 1, column 1 has its top-left at canvas (6, 12),
	// which is the top-left of the safe area
	test.Equate(t, px[0], 2)
	test.Equate(t, px[5], 2)
	test.Equate(t, px[6], 0)
	test.Equate(t, px[11*cdg.DisplayWidth], 2)
	test.Equate(t, px[12*cdg.DisplayWidth], 0)
}

func TestTileBlockXOR(t *testing.T) {
	// drawing the same solid tile twice with XOR returns the area to
	// its previous state
	data := []uint8{0, 5, 1, 1}
	for i := 0; i < 12; i++ {
		data = append(data, 0x3f)
	}

	var stream []byte
	stream = append(stream, newPacket(0x26, data...)...)
	stream = append(stream, newPacket(0x26, data...)...)
	for i := 0; i < 10; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())

	frm, err := dec.Frame(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, frm.Pixels()[0], 0)
}

func TestScrollCopy(t *testing.T) {
	// fill with color 7, then draw a solid color 2 tile at canvas
	// column 0 and scroll copy right. the tile strip moves from the
	// left edge to columns [6,12) of the canvas, which is the start of
	// the safe area
	fill := memoryPreset(7, 0)

	data := []uint8{2, 2, 1, 0}
	for i := 0; i < 12; i++ {
		data = append(data, 0x3f)
	}
	tile := newPacket(0x06, data...)

	// scroll copy, h command 1 (right), h offset 0
	scroll := newPacket(0x18, 0, 0x10, 0x00)

	var stream []byte
	stream = append(stream, fill...)
	stream = append(stream, tile...)
	stream = append(stream, scroll...)
	for i := 0; i < 9; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())

	frm, err := dec.Frame(0)
	test.ExpectedSuccess(t, err)
	px := frm.Pixels()

	// the tile was at canvas columns [0,6) rows [12,24). after the
	// shift it occupies canvas columns [6,12), which is safe area
	// columns [0,6)
	test.Equate(t, px[0], 2)
	test.Equate(t, px[5], 2)
	test.Equate(t, px[6], 7)
}

func TestScrollPresetOffsets(t *testing.T) {
	// a solid color 2 tile at the top-left of the safe area, canvas
	// columns [6,12) rows [12,24)
	data := []uint8{2, 2, 1, 1}
	for i := 0; i < 12; i++ {
		data = append(data, 0x3f)
	}
	tile := newPacket(0x06, data...)

	// scroll preset with no coarse shift but fine offsets h=3 v=5
	scroll := newPacket(0x14, 0, 0x03, 0x05)

	var stream []byte
	stream = append(stream, tile...)
	stream = append(stream, scroll...)
	for i := 0; i < 10; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	test.Equate(t, dec.NumFrames(), 1)

	frm, err := dec.Frame(0)
	test.ExpectedSuccess(t, err)
	px := frm.Pixels()

	// the viewport now starts at canvas (9, 17) so the tile covers
	// frame columns [0,3) and rows [0,7)
	test.Equate(t, px[0], 2)
	test.Equate(t, px[2], 2)
	test.Equate(t, px[3], 0)
	test.Equate(t, px[6*cdg.DisplayWidth], 2)
	test.Equate(t, px[7*cdg.DisplayWidth], 0)
}

func TestFrameAtClamping(t *testing.T) {
	var stream []byte
	stream = append(stream, memoryPreset(1, 0)...)
	for i := 0; i < 23; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	test.Equate(t, dec.NumFrames(), 2)

	frm, err := dec.FrameAt(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, frm.StartTime, 40)

	frm, err = dec.FrameAt(41)
	test.ExpectedSuccess(t, err)
	test.Equate(t, frm.StartTime, 80)

	// times beyond the end of the stream return the final frame
	frm, err = dec.FrameAt(100000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, frm.StartTime, 80)
}

func TestTempo(t *testing.T) {
	var stream []byte
	for i := 0; i < 48; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	test.Equate(t, dec.Tempo(), 100)

	// at double speed a query at 41ms reaches the frame that normal
	// speed reaches at 82ms
	dec.SetTempo(200)
	frm, err := dec.FrameAt(41)
	test.ExpectedSuccess(t, err)
	test.Equate(t, frm.StartTime, 160)

	// invalid tempos are ignored
	dec.SetTempo(0)
	test.Equate(t, dec.Tempo(), 200)
	dec.SetTempo(-50)
	test.Equate(t, dec.Tempo(), 200)
}

func TestDuration(t *testing.T) {
	var stream []byte
	for i := 0; i < 24; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	// a truncated trailing packet does not contribute to the duration
	stream = append(stream, 0x09, 0x01)

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())

	test.Equate(t, dec.Duration(), 24*40)
	test.Equate(t, dec.NumFrames(), 2)
}

func TestNonCDGPacketsAdvanceTime(t *testing.T) {
	// packets on other subcode channels still advance the stream
	// clock and contribute to frame emission
	var stream []byte
	for i := 0; i < 12; i++ {
		pkt := make([]byte, cdg.PacketSize)
		pkt[0] = 0x02
		stream = append(stream, pkt...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	test.Equate(t, dec.NumFrames(), 1)
}

func TestCanSkipBounds(t *testing.T) {
	var stream []byte
	for i := 0; i < 60; i++ {
		stream = append(stream, newPacket(0x00)...)
	}

	dec := cdg.NewDecoder()
	test.ExpectedSuccess(t, dec.Open(stream))
	test.ExpectedSuccess(t, dec.Process())
	test.Equate(t, dec.NumFrames(), 5)

	// frame index 0 has no left neighbour and the final frame has no
	// right neighbour
	test.Equate(t, dec.CanSkip(0), false)
	test.Equate(t, dec.CanSkip(200), false)
	test.Equate(t, dec.CanSkip(100000), false)

	// interior quiet frames can be skipped
	test.Equate(t, dec.CanSkip(80), true)
	test.Equate(t, dec.CanSkip(120), true)
}

func TestQueriesBeforeProcess(t *testing.T) {
	dec := cdg.NewDecoder()

	_, err := dec.FrameAt(0)
	test.ExpectedFailure(t, err)

	test.Equate(t, dec.CanSkip(0), false)
	test.Equate(t, dec.IsOpen(), false)

	err = dec.Process()
	test.ExpectedFailure(t, err)
}
