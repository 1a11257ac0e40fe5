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
	"time"

	"github.com/openkj/gocdg/curated"
	"github.com/openkj/gocdg/logger"
)

// sentinel errors returned by the Decoder. use curated.Is() to test
// for them.
const (
	ErrNotOpen      = "cdg: no stream open"
	ErrNotProcessed = "cdg: stream not processed"
	ErrNoFrames     = "cdg: empty timeline"
)

// Decoder turns a CD+G subcode stream into a timeline of frames. The
// zero value is not usable, call NewDecoder().
//
// The decoder works in two phases. Open() hands it the raw stream and
// Process() consumes every packet, building the frame timeline. After
// Process() the decoder is immutable and the query functions are safe
// for concurrent use.
type Decoder struct {
	buffer   []byte
	inputLen int

	fb  framebuffer
	pal palette

	// fine scroll offsets currently applied to the viewport
	hOffset int
	vOffset int

	// number of packets consumed so far. a frame is emitted every
	// PacketsPerFrame packets
	position int

	// the memory preset instruction arrives in bursts for error
	// correction. only the first of a burst is acted on
	lastCmdWasMemPreset bool

	// set by any command that changes visible state. cleared after
	// every packet (it feeds lastUpdate) and accumulated separately
	// across the frame interval (it feeds the skip bitmap)
	needsUpdate       bool
	updatedSinceFrame bool

	// stream time in milliseconds of the most recent visible change
	lastUpdate int

	frames []Frame

	// skip[i] is true if no visible change occurred in the interval
	// leading up to frame i
	skip []bool

	// playback speed as a percentage. only affects the time to frame
	// index mapping of the query functions
	tempo int

	open      bool
	processed bool
}

// NewDecoder is the preferred method of initialisation of the Decoder
// type.
func NewDecoder() *Decoder {
	return &Decoder{
		tempo: 100,
	}
}

// Open hands the decoder a raw subcode stream. The buffer is retained
// until Process() has consumed it.
func (dec *Decoder) Open(data []byte) error {
	if len(data) == 0 {
		return curated.Errorf("cdg: %v", "empty stream")
	}

	dec.buffer = data
	dec.inputLen = len(data)
	dec.open = true

	return nil
}

// Process consumes the entire stream, interpreting every CD+G packet
// and sampling a frame every PacketsPerFrame packets. It must be
// called exactly once, after Open().
func (dec *Decoder) Process() error {
	if !dec.open {
		return curated.Errorf(ErrNotOpen)
	}
	if dec.processed {
		return curated.Errorf("cdg: %v", "stream already processed")
	}

	// reserve space for the expected number of frames
	numFrames := dec.inputLen / (PacketSize * PacketsPerFrame)
	dec.frames = make([]Frame, 0, numFrames)
	dec.skip = make([]bool, 0, numFrames)

	processStart := time.Now()

	rdr := packetReader{buffer: dec.buffer}

	for {
		pkt, ok := rdr.next()
		if !ok {
			break
		}

		dec.needsUpdate = false

		if pkt.isCDG() {
			dec.dispatch(pkt)
		}

		if dec.needsUpdate {
			dec.updatedSinceFrame = true
			dec.lastUpdate = len(dec.frames) * FrameDuration
		}

		dec.position++

		if dec.position%PacketsPerFrame == 0 {
			dec.appendFrame()
		}
	}

	if rdr.remaining() != 0 {
		logger.Logf("cdg", "truncated packet at end of stream (%d bytes)", rdr.remaining())
	}

	// the stream buffer is no longer needed
	dec.buffer = nil

	dec.processed = true

	logger.Logf("cdg", "%d frames processed in %.2fms",
		len(dec.frames), float64(time.Since(processStart).Microseconds())/1000)

	return nil
}

// appendFrame samples the current framebuffer state onto the end of
// the timeline.
func (dec *Decoder) appendFrame() {
	dec.frames = append(dec.frames, Frame{
		StartTime: (len(dec.frames) + 1) * FrameDuration,
	})

	frm := &dec.frames[len(dec.frames)-1]
	frm.snapshot(&dec.fb, dec.pal, dec.hOffset, dec.vOffset)

	dec.skip = append(dec.skip, !dec.updatedSinceFrame)
	dec.updatedSinceFrame = false
}

// dispatch interprets a single CD+G packet.
func (dec *Decoder) dispatch(pkt packet) {
	ins := pkt.instruction & subcodeMask

	switch ins {
	case insMemoryPreset:
		dec.memoryPreset(newMemoryPresetData(pkt.data))
	case insBorderPreset:
		dec.borderPreset(newBorderPresetData(pkt.data))
	case insTileBlock:
		dec.tileBlock(newTileBlockData(pkt.data), false)
	case insTileBlockXOR:
		dec.tileBlock(newTileBlockData(pkt.data), true)
	case insScrollPreset:
		dec.scroll(newScrollData(pkt.data), false)
	case insScrollCopy:
		dec.scroll(newScrollData(pkt.data), true)
	case insDefineTransparent:
		dec.defineTransparent()
	case insColorsLow:
		dec.loadColors(0, newColorsData(pkt.data))
	case insColorsHigh:
		dec.loadColors(8, newColorsData(pkt.data))
	}

	dec.lastCmdWasMemPreset = ins == insMemoryPreset
}

// memoryPreset fills the entire canvas with a single color. the
// encoder repeats the instruction for error correction, only the first
// of a burst is acted on.
func (dec *Decoder) memoryPreset(data memoryPresetData) {
	if dec.lastCmdWasMemPreset && data.repeat != 0 {
		return
	}

	dec.fb.fill(data.color)
	dec.needsUpdate = true
}

func (dec *Decoder) borderPreset(data borderPresetData) {
	dec.fb.fillBorder(data.color)
	dec.needsUpdate = true
}

func (dec *Decoder) tileBlock(data tileBlockData, xor bool) {
	dec.fb.tile(data, xor)
	dec.needsUpdate = true
}

// scroll performs the horizontal and vertical components of a scroll
// preset or scroll copy instruction and records the new fine scroll
// offsets.
func (dec *Decoder) scroll(data scrollData, wrap bool) {
	switch data.hCmd {
	case scrollPositive:
		dec.fb.scrollRight(data.color, wrap)
	case scrollNegative:
		dec.fb.scrollLeft(data.color, wrap)
	}

	switch data.vCmd {
	case scrollPositive:
		dec.fb.scrollDown(data.color, wrap)
	case scrollNegative:
		dec.fb.scrollUp(data.color, wrap)
	}

	dec.hOffset = data.hOffset
	dec.vOffset = data.vOffset
	dec.needsUpdate = true
}

// loadColors updates eight palette entries. a load that leaves every
// entry unchanged is not a visible change.
func (dec *Decoder) loadColors(offset int, colors [8]RGB) {
	if dec.pal.setColors(offset, colors) {
		dec.needsUpdate = true
	}
}

// defineTransparent is part of the CD+G specification but is not
// honoured by this decoder. karaoke discs use it rarely and players
// disagree on its meaning.
func (dec *Decoder) defineTransparent() {
	logger.Log("cdg", "define transparent instruction ignored")
}
