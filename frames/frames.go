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

// Package frames exports the frame timeline of a decoded stream as
// individual PNG images. Useful for inspecting a stream without a
// display and for preparing thumbnails.
package frames

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/cdgloader"
	"github.com/openkj/gocdg/curated"
)

// Export decodes the track described by the loader and writes one PNG
// for every interval milliseconds of stream time. The file name base
// is the loader's short name, the stream time of each frame is
// appended.
//
// Quiet frames, where the decoder's CanSkip() reports no visible change
// in the frame and its immediate neighbours, are elided. Only that
// three frame window is examined, so a change made earlier in the
// interval since the previous exported frame does not by itself cause
// a frame to be written.
func Export(output io.Writer, loader cdgloader.Loader, interval int) error {
	err := loader.Load()
	if err != nil {
		return curated.Errorf("frames: %v", err)
	}

	dec := cdg.NewDecoder()
	if err = dec.Open(loader.Data); err != nil {
		return curated.Errorf("frames: %v", err)
	}
	if err = dec.Process(); err != nil {
		return curated.Errorf("frames: %v", err)
	}

	if interval < cdg.FrameDuration {
		interval = cdg.FrameDuration
	}

	numExported := 0
	var lastExported *cdg.Frame

	for ms := 0; ms <= dec.Duration(); ms += interval {
		frm, err := dec.FrameAt(ms)
		if err != nil {
			return curated.Errorf("frames: %v", err)
		}

		// FrameAt() clamps to the final frame so the tail of the loop
		// can produce the same frame many times over
		if frm == lastExported {
			continue
		}
		lastExported = frm

		if dec.CanSkip(ms) {
			continue
		}

		err = save(fmt.Sprintf("%s_%06d.png", loader.ShortName(), frm.StartTime), frm)
		if err != nil {
			return err
		}
		numExported++
	}

	fmt.Fprintf(output, "exported %d frames\n", numExported)

	return nil
}

// save writes a single frame, refusing to overwrite an existing file.
func save(imageName string, frm *cdg.Frame) error {
	f, err := os.Open(imageName)
	if f != nil {
		f.Close()
		return curated.Errorf("frames: image file already exists (%s)", imageName)
	}
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf("frames: %v", err)
	}

	f, err = os.Create(imageName)
	if err != nil {
		return curated.Errorf("frames: %v", err)
	}
	defer f.Close()

	err = png.Encode(f, frm.Image())
	if err != nil {
		return curated.Errorf("frames: %v", err)
	}

	return nil
}
