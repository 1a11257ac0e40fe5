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

// the framebuffer indexes into a palette of sixteen colors. the low
// colors instruction loads entries 0 to 7 and the high colors
// instruction loads entries 8 to 15.
const paletteSize = 16

// RGB is a single palette entry. The 4 bit channels of the subcode
// stream have been expanded to 8 bits.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// expandNibble widens a 4 bit channel to 8 bits by replicating the
// nibble. 0x0 maps to 0x00 and 0xf maps to 0xff with even spacing
// between.
func expandNibble(c uint8) uint8 {
	return c<<4 | c
}

type palette [paletteSize]RGB

// setColors loads eight consecutive entries starting at offset, which
// is either 0 or 8. returns true if any entry actually changed.
func (pal *palette) setColors(offset int, colors [8]RGB) bool {
	changed := false

	for i := 0; i < 8; i++ {
		if pal[offset+i] != colors[i] {
			pal[offset+i] = colors[i]
			changed = true
		}
	}

	return changed
}
