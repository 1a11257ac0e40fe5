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
	"github.com/openkj/gocdg/curated"
)

// the query functions in this file are safe for concurrent use once
// Process() has returned.

// frameIndex maps a stream time in milliseconds to a frame index,
// adjusted for the current tempo. the result is not bounds checked.
func (dec *Decoder) frameIndex(ms int) int {
	ms = ms * dec.tempo / 100

	// round up, so that a time in the interval (40(n-1), 40n] maps to
	// index n. frame n has a StartTime of 40(n+1)
	return (ms + FrameDuration - 1) / FrameDuration
}

// FrameAt returns the frame current at the given stream time in
// milliseconds. Times beyond the end of the stream return the final
// frame.
func (dec *Decoder) FrameAt(ms int) (*Frame, error) {
	if !dec.processed {
		return nil, curated.Errorf(ErrNotProcessed)
	}
	if len(dec.frames) == 0 {
		return nil, curated.Errorf(ErrNoFrames)
	}

	idx := dec.frameIndex(ms)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(dec.frames) {
		idx = len(dec.frames) - 1
	}

	return &dec.frames[idx], nil
}

// CanSkip returns true if the frame at the given stream time and its
// immediate neighbours contain no visible change, meaning a player can
// safely reuse its previous output. Times near the edges of the
// timeline always return false.
func (dec *Decoder) CanSkip(ms int) bool {
	if !dec.processed {
		return false
	}

	idx := dec.frameIndex(ms)
	if idx < 1 || idx+1 >= len(dec.skip) {
		return false
	}

	return dec.skip[idx-1] && dec.skip[idx] && dec.skip[idx+1]
}

// LastUpdate returns the stream time in milliseconds of the last
// visible change in the stream. Useful for detecting trailing silence
// in the graphics channel.
func (dec *Decoder) LastUpdate() int {
	return dec.lastUpdate
}

// Duration returns the length of the stream in milliseconds, derived
// from the number of complete packets in the input.
func (dec *Decoder) Duration() int {
	return dec.inputLen / PacketSize * FrameDuration
}

// NumFrames returns the number of frames in the timeline.
func (dec *Decoder) NumFrames() int {
	return len(dec.frames)
}

// Frame returns the frame at the given index in the timeline.
func (dec *Decoder) Frame(idx int) (*Frame, error) {
	if !dec.processed {
		return nil, curated.Errorf(ErrNotProcessed)
	}
	if idx < 0 || idx >= len(dec.frames) {
		return nil, curated.Errorf("cdg: %v", "frame index out of range")
	}

	return &dec.frames[idx], nil
}

// Tempo returns the current playback speed as a percentage of normal.
func (dec *Decoder) Tempo() int {
	return dec.tempo
}

// SetTempo adjusts the playback speed. A value of 100 is normal speed,
// 200 is double speed. Values less than or equal to zero are ignored.
// Tempo only affects the time to frame mapping of the query functions,
// the timeline itself is unchanged.
func (dec *Decoder) SetTempo(tempo int) {
	if tempo <= 0 {
		return
	}
	dec.tempo = tempo
}

// IsOpen returns true once the decoder has processed a stream.
func (dec *Decoder) IsOpen() bool {
	return dec.processed
}
