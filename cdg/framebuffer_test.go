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

import (
	"testing"

	"github.com/openkj/gocdg/test"
)

func TestFillBorder(t *testing.T) {
	fb := &framebuffer{}
	fb.fill(1)
	fb.fillBorder(9)

	// corners of the border regions
	test.Equate(t, fb.row(0)[0], 9)
	test.Equate(t, fb.row(borderHeight-1)[bufferWidth-1], 9)
	test.Equate(t, fb.row(bufferHeight-borderHeight)[0], 9)
	test.Equate(t, fb.row(bufferHeight-1)[bufferWidth-1], 9)

	// side strips of a middle row
	test.Equate(t, fb.row(100)[0], 9)
	test.Equate(t, fb.row(100)[borderWidth-1], 9)
	test.Equate(t, fb.row(100)[bufferWidth-borderWidth], 9)
	test.Equate(t, fb.row(100)[bufferWidth-1], 9)

	// safe area interior is untouched
	test.Equate(t, fb.row(borderHeight)[borderWidth], 1)
	test.Equate(t, fb.row(bufferHeight-borderHeight-1)[bufferWidth-borderWidth-1], 1)
	test.Equate(t, fb.row(100)[150], 1)
}

func TestTileOffCanvas(t *testing.T) {
	fb := &framebuffer{}

	// the row field of the payload can address tiles past the bottom
	// of the canvas. they must be ignored
	data := tileBlockData{
		color0: 1,
		color1: 1,
		top:    31 * tileHeight,
		left:   0,
		pixels: make([]byte, 12),
	}
	fb.tile(data, false)

	for _, px := range fb.pixels {
		if px != 0 {
			t.Fatalf("tile past canvas edge modified the framebuffer")
		}
	}
}

func TestScrollHorizontalRoundTrip(t *testing.T) {
	fb := &framebuffer{}

	// a recognisable pattern
	for y := 0; y < bufferHeight; y++ {
		row := fb.row(y)
		for x := range row {
			row[x] = uint8((x + y) % paletteSize)
		}
	}
	before := fb.pixels

	// a wrapping scroll in one direction followed by its opposite is
	// the identity
	fb.scrollRight(0, true)
	fb.scrollLeft(0, true)
	test.Equate(t, fb.pixels == before, true)

	// after a single wrapping scroll right the leftmost strip holds
	// what was the rightmost strip
	fb.scrollRight(0, true)
	test.Equate(t, fb.row(0)[0], before[bufferWidth-tileWidth])
	test.Equate(t, fb.row(0)[tileWidth], before[0])
}

func TestScrollVerticalRoundTrip(t *testing.T) {
	fb := &framebuffer{}
	for y := 0; y < bufferHeight; y++ {
		row := fb.row(y)
		for x := range row {
			row[x] = uint8((x + y) % paletteSize)
		}
	}
	before := fb.pixels

	fb.scrollDown(0, true)
	fb.scrollUp(0, true)
	test.Equate(t, fb.pixels == before, true)

	// after a single wrapping scroll down the top rows hold what were
	// the bottom rows
	fb.scrollDown(0, true)
	test.Equate(t, fb.row(0)[0], before[(bufferHeight-tileHeight)*bufferWidth])
	test.Equate(t, fb.row(tileHeight)[0], before[0])
}

func TestScrollPresetFill(t *testing.T) {
	fb := &framebuffer{}
	fb.fill(3)

	// a non-wrapping scroll left fills the vacated right strip
	fb.scrollLeft(7, false)
	test.Equate(t, fb.row(0)[bufferWidth-1], 7)
	test.Equate(t, fb.row(0)[bufferWidth-tileWidth], 7)
	test.Equate(t, fb.row(0)[bufferWidth-tileWidth-1], 3)

	// a non-wrapping scroll up fills the vacated bottom rows
	fb.scrollUp(9, false)
	test.Equate(t, fb.row(bufferHeight-1)[0], 9)
	test.Equate(t, fb.row(bufferHeight-tileHeight)[0], 9)
	test.Equate(t, fb.row(bufferHeight-tileHeight-1)[0], 3)
}
