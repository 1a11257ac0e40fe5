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

package cdg

// the payload parsers in this file decode the 16 byte data field of a
// CD+G packet into the arguments of the corresponding drawing command.
// every multi-bit field in the payload carries parity in its top two
// bits which must be masked off.

type memoryPresetData struct {
	color uint8

	// the encoder emits a memory preset up to sixteen times in a row for
	// error correction. repeat is zero on the first instance
	repeat uint8
}

func newMemoryPresetData(data []byte) memoryPresetData {
	return memoryPresetData{
		color:  data[0] & 0x0f,
		repeat: data[1] & 0x0f,
	}
}

type borderPresetData struct {
	color uint8
}

func newBorderPresetData(data []byte) borderPresetData {
	return borderPresetData{
		color: data[0] & 0x0f,
	}
}

type tileBlockData struct {
	color0 uint8
	color1 uint8

	// top-left pixel of the tile in framebuffer coordinates
	top  int
	left int

	// twelve bytes, one tile row each. bits are tested with tileMasks
	pixels []byte
}

func newTileBlockData(data []byte) tileBlockData {
	return tileBlockData{
		color0: data[0] & 0x0f,
		color1: data[1] & 0x0f,
		top:    int(data[2]&0x1f) * tileHeight,
		left:   int(data[3]&0x3f) * tileWidth,
		pixels: data[4:16],
	}
}

// bit masks for one row of tile pixels, leftmost pixel first.
var tileMasks = [tileWidth]uint8{0x20, 0x10, 0x08, 0x04, 0x02, 0x01}

// scroll directions as encoded in bits 5:4 of the h/v payload bytes.
const (
	scrollNone     = 0
	scrollPositive = 1 // right or down
	scrollNegative = 2 // left or up
)

type scrollData struct {
	// fill color for the vacated strip (scroll preset only)
	color uint8

	hCmd    uint8
	hOffset int

	vCmd    uint8
	vOffset int
}

func newScrollData(data []byte) scrollData {
	scr := scrollData{
		color:   data[0] & 0x0f,
		hCmd:    (data[1] & 0x30) >> 4,
		hOffset: int(data[1] & 0x07),
		vCmd:    (data[2] & 0x30) >> 4,
		vOffset: int(data[2] & 0x0f),
	}

	// offsets beyond the displayable range would push the viewport off
	// the canvas
	if scr.hOffset > maxHOffset {
		scr.hOffset = maxHOffset
	}
	if scr.vOffset > maxVOffset {
		scr.vOffset = maxVOffset
	}

	return scr
}

// newColorsData unpacks eight palette entries from the payload. each
// color is 12 bits, rrrrggggbbbb, split over two bytes:
//
//	byte 0:  x x r r r r g g
//	byte 1:  x x g g b b b b
//
// the 4 bit channels are expanded to 8 bits by nibble replication.
func newColorsData(data []byte) [8]RGB {
	var colors [8]RGB

	for i := 0; i < 8; i++ {
		hi := data[i*2] & subcodeMask
		lo := data[i*2+1] & subcodeMask

		colors[i] = RGB{
			R: expandNibble(hi >> 2),
			G: expandNibble((hi&0x03)<<2 | lo>>4),
			B: expandNibble(lo & 0x0f),
		}
	}

	return colors
}
