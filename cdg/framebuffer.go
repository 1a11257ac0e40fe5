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

// canvas and viewport dimensions. the full canvas is larger than the
// displayable area. the extra cells form the border and the slack for
// fine scroll offsets.
const (
	bufferWidth  = 300
	bufferHeight = 216

	DisplayWidth  = 288
	DisplayHeight = 192

	borderWidth  = 6
	borderHeight = 12
)

// tiles are the atom of drawing in CD+G. the canvas is 50 tiles wide
// and 18 tiles tall.
const (
	tileWidth  = 6
	tileHeight = 12
)

// the fine scroll offset shifts the viewport within the border slack.
const (
	maxHOffset = 5
	maxVOffset = 11
)

// framebuffer is the persistent 300x216 indexed-color canvas that
// drawing commands are interpreted against. values in the pixels array
// are palette indices.
type framebuffer struct {
	pixels [bufferHeight * bufferWidth]uint8

	// holding area for the strip vacated by a scroll copy
	scratch [tileHeight * bufferWidth]uint8
}

// row returns the pixels of canvas row y as a slice aliasing the
// framebuffer.
func (fb *framebuffer) row(y int) []uint8 {
	return fb.pixels[y*bufferWidth : (y+1)*bufferWidth]
}

// fill sets every cell of the canvas to the given palette index.
func (fb *framebuffer) fill(color uint8) {
	for i := range fb.pixels {
		fb.pixels[i] = color
	}
}

// fillBorder sets the border cells to the given palette index. the
// border is the top and bottom twelve rows of the canvas plus a six
// column strip down each side of the remaining rows.
func (fb *framebuffer) fillBorder(color uint8) {
	for y := 0; y < borderHeight; y++ {
		row := fb.row(y)
		for x := range row {
			row[x] = color
		}
	}
	for y := bufferHeight - borderHeight; y < bufferHeight; y++ {
		row := fb.row(y)
		for x := range row {
			row[x] = color
		}
	}

	for y := borderHeight; y < bufferHeight-borderHeight; y++ {
		row := fb.row(y)
		for x := 0; x < borderWidth; x++ {
			row[x] = color
		}
		for x := bufferWidth - borderWidth; x < bufferWidth; x++ {
			row[x] = color
		}
	}
}

// tile blits a 6x12 tile. in xor mode the tile colors are combined
// with the existing cell values rather than replacing them. tiles that
// would extend past the canvas edge are ignored.
func (fb *framebuffer) tile(data tileBlockData, xor bool) {
	if data.top+tileHeight > bufferHeight || data.left+tileWidth > bufferWidth {
		return
	}

	for y := 0; y < tileHeight; y++ {
		row := fb.row(data.top + y)
		bits := data.pixels[y] & subcodeMask

		for x := 0; x < tileWidth; x++ {
			color := data.color0
			if bits&tileMasks[x] != 0 {
				color = data.color1
			}

			if xor {
				row[data.left+x] ^= color
			} else {
				row[data.left+x] = color
			}
		}
	}
}

// scrollLeft shifts the canvas left by one tile width. in copy mode
// the vacated strip on the right wraps around from the left edge.
// otherwise it is filled with the given palette index.
func (fb *framebuffer) scrollLeft(color uint8, wrap bool) {
	for y := 0; y < bufferHeight; y++ {
		row := fb.row(y)
		strip := fb.scratch[:tileWidth]

		copy(strip, row[:tileWidth])
		copy(row, row[tileWidth:])

		tail := row[bufferWidth-tileWidth:]
		if wrap {
			copy(tail, strip)
		} else {
			for x := range tail {
				tail[x] = color
			}
		}
	}
}

// scrollRight is the mirror of scrollLeft. the vacated strip is on the
// left edge.
func (fb *framebuffer) scrollRight(color uint8, wrap bool) {
	for y := 0; y < bufferHeight; y++ {
		row := fb.row(y)
		strip := fb.scratch[:tileWidth]

		copy(strip, row[bufferWidth-tileWidth:])

		// copy backwards so the overlapping regions do not clobber
		for x := bufferWidth - 1; x >= tileWidth; x-- {
			row[x] = row[x-tileWidth]
		}

		head := row[:tileWidth]
		if wrap {
			copy(head, strip)
		} else {
			for x := range head {
				head[x] = color
			}
		}
	}
}

// scrollUp shifts the canvas up by one tile height. in copy mode the
// vacated rows at the bottom wrap around from the top edge. otherwise
// they are filled with the given palette index.
func (fb *framebuffer) scrollUp(color uint8, wrap bool) {
	strip := fb.scratch[:]
	copy(strip, fb.pixels[:tileHeight*bufferWidth])

	copy(fb.pixels[:], fb.pixels[tileHeight*bufferWidth:])

	tail := fb.pixels[(bufferHeight-tileHeight)*bufferWidth:]
	if wrap {
		copy(tail, strip)
	} else {
		for i := range tail {
			tail[i] = color
		}
	}
}

// scrollDown is the mirror of scrollUp. the vacated rows are at the
// top edge.
func (fb *framebuffer) scrollDown(color uint8, wrap bool) {
	strip := fb.scratch[:]
	copy(strip, fb.pixels[(bufferHeight-tileHeight)*bufferWidth:])

	// copy backwards one row at a time so the overlapping regions do
	// not clobber
	for y := bufferHeight - 1; y >= tileHeight; y-- {
		copy(fb.row(y), fb.row(y-tileHeight))
	}

	head := fb.pixels[:tileHeight*bufferWidth]
	if wrap {
		copy(head, strip)
	} else {
		for i := range head {
			head[i] = color
		}
	}
}
