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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/cdgloader"
	"github.com/openkj/gocdg/curated"
)

// Check the performance of the decoder using the supplied track.
//
// The track is decoded over and over for the specified duration. The
// result is reported as decoded frames per second and as a multiple of
// realtime, the rate a player needs to keep up with the audio.
func Check(output io.Writer, profile Profile, loader cdgloader.Loader, duration string) error {
	err := loader.Load()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numPasses := 0
	numFrames := 0

	runner := func() error {
		end := time.Now().Add(dur)

		for time.Now().Before(end) {
			dec := cdg.NewDecoder()
			if err := dec.Open(loader.Data); err != nil {
				return err
			}
			if err := dec.Process(); err != nil {
				return err
			}

			numPasses++
			numFrames += dec.NumFrames()
		}

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps := float64(numFrames) / dur.Seconds()

	// a player consumes frames at the nominal rate of the format. any
	// excess is headroom
	realtime := fps * float64(cdg.FrameDuration) / 1000

	fmt.Fprintf(output, "%.2f frames/sec (%d passes in %.2f seconds) %.1fx realtime\n",
		fps, numPasses, dur.Seconds(), realtime)

	return nil
}
