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
	"image"
)

// Frame is one sampled image of the timeline. Pixels are stored as
// palette indices along with a snapshot of the palette at sampling
// time, so a frame remains correct after later packets have updated
// the palette.
type Frame struct {
	// the stream time in milliseconds at which this frame was sampled,
	// the end of the packet interval it closes. FrameAt() maps a time in
	// the interval ending one frame earlier to this frame
	StartTime int

	pixels  [DisplayHeight * DisplayWidth]uint8
	palette palette
}

// snapshot copies the displayable region of the framebuffer into the
// frame. the viewport origin is the border corner plus the current
// fine scroll offset.
func (frm *Frame) snapshot(fb *framebuffer, pal palette, hOffset int, vOffset int) {
	top := borderHeight + vOffset
	left := borderWidth + hOffset

	for y := 0; y < DisplayHeight; y++ {
		src := fb.row(top + y)
		copy(frm.pixels[y*DisplayWidth:(y+1)*DisplayWidth], src[left:left+DisplayWidth])
	}

	frm.palette = pal
}

// Pixels returns the frame as palette indices, one byte per pixel in
// row-major order. The slice aliases the frame and must not be
// modified.
func (frm *Frame) Pixels() []uint8 {
	return frm.pixels[:]
}

// Palette returns the snapshot of the palette taken when the frame was
// sampled.
func (frm *Frame) Palette() [paletteSize]RGB {
	return frm.palette
}

// RGB returns the frame as packed 8 bit RGB triplets, one triplet per
// pixel in row-major order.
func (frm *Frame) RGB() []uint8 {
	rgb := make([]uint8, 0, DisplayHeight*DisplayWidth*3)

	for _, px := range frm.pixels {
		col := frm.palette[px]
		rgb = append(rgb, col.R, col.G, col.B)
	}

	return rgb
}

// Image returns the frame as a stdlib image, suitable for encoding to
// PNG etc. Alpha is always opaque.
func (frm *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, DisplayWidth, DisplayHeight))

	for i, px := range frm.pixels {
		col := frm.palette[px]
		img.Pix[i*4] = col.R
		img.Pix[i*4+1] = col.G
		img.Pix[i*4+2] = col.B
		img.Pix[i*4+3] = 255
	}

	return img
}
