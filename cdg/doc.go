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

// Package cdg decodes the CD+Graphics subcode stream found on karaoke
// discs and in .cdg files.
//
// The stream is a sequence of 24 byte subcode packets arriving at 300
// packets per second. Packets tagged as CD+G carry drawing commands that
// are interpreted against a persistent 300x216 indexed-color canvas: full
// screen and border fills, 6x12 pixel tile blits (plain and XOR), coarse
// scrolling with fine pixel offsets, and updates to a 16 entry palette.
//
// The Decoder type consumes the whole stream up front and produces a
// timeline of 288x192 frames, one for every 40 milliseconds of stream
// time. The two phase design means playback never touches the decoding
// machinery:
//
//	dec := cdg.NewDecoder()
//	err := dec.Open(data)
//	if err != nil {
//		...
//	}
//	err = dec.Process()
//	if err != nil {
//		...
//	}
//	frm, err := dec.FrameAt(ms)
//
// After Process() returns the decoder is immutable and the query
// functions (FrameAt(), CanSkip(), LastUpdate(), Duration() etc.) are
// safe to call from any goroutine.
package cdg
