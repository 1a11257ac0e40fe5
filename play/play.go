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

// Package play is the SDL playback surface for decoded streams. It
// opens a window and draws the frame timeline at the cadence of the
// format.
//
// Playback is graphics only. The audio half of the track, if present,
// is only consulted for its duration, a mismatch with the graphics
// duration is worth flagging to the user before they queue the track.
package play

import (
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/openkj/gocdg/audiofile"
	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/cdgloader"
	"github.com/openkj/gocdg/curated"
	"github.com/openkj/gocdg/logger"
)

func init() {
	// sdl requires the main thread
	runtime.LockOSThread()
}

// tempo adjustments made with the + and - keys move in steps of this
// many percentage points.
const tempoStep = 10

// Play opens a window and plays the track described by the loader.
// The function returns when playback finishes or the user closes the
// window.
//
// The following keys are recognised: escape and q to quit, space to
// pause, + and - to adjust the playback speed.
func Play(loader cdgloader.Loader, scale float32, tempo int) error {
	err := loader.Load()
	if err != nil {
		return curated.Errorf("play: %v", err)
	}

	dec := cdg.NewDecoder()
	if err = dec.Open(loader.Data); err != nil {
		return curated.Errorf("play: %v", err)
	}
	if err = dec.Process(); err != nil {
		return curated.Errorf("play: %v", err)
	}
	dec.SetTempo(tempo)

	if loader.AudioFilename != "" {
		audioDur, err := audiofile.Duration(loader.AudioFilename, loader.AudioData)
		if err != nil {
			logger.Logf("play", "audio duration unavailable: %v", err)
		} else if diff := audioDur - dec.Duration(); diff > 1000 || diff < -1000 {
			logger.Logf("play", "audio and graphics durations differ by %dms", diff)
		}
	}

	scr, err := newScreen(loader.ShortName(), scale)
	if err != nil {
		return curated.Errorf("play: %v", err)
	}
	defer scr.destroy()

	// the stream clock. advanced every tick by the frame duration,
	// pre-scaled by the decoder's tempo when querying
	clock := 0
	paused := false

	tck := time.NewTicker(cdg.FrameDuration * time.Millisecond)
	defer tck.Stop()

	for {
		quit, err := service(scr, dec, &paused)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		// the playback clock runs at wall time. the decoder applies
		// the tempo scaling when mapping the clock to a frame
		if !paused {
			clock += cdg.FrameDuration

			if clock*dec.Tempo()/100 > dec.Duration() {
				return nil
			}

			frm, err := dec.FrameAt(clock)
			if err != nil {
				return curated.Errorf("play: %v", err)
			}

			// reuse the previous texture when nothing around this
			// frame has changed
			if !dec.CanSkip(clock) {
				scr.setFrame(frm)
			}
		}

		if err := scr.present(); err != nil {
			return curated.Errorf("play: %v", err)
		}

		<-tck.C
	}
}

// service drains the SDL event queue. Returns true if the user has
// asked to quit.
func service(scr *screen, dec *cdg.Decoder, paused *bool) (bool, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return true, nil

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue
			}

			switch sdl.GetKeyName(ev.Keysym.Sym) {
			case "Escape":
				return true, nil
			case "Q":
				return true, nil
			case "Space":
				*paused = !*paused
			case "+":
				dec.SetTempo(dec.Tempo() + tempoStep)
				logger.Logf("play", "tempo %d%%", dec.Tempo())
			case "-":
				dec.SetTempo(dec.Tempo() - tempoStep)
				logger.Logf("play", "tempo %d%%", dec.Tempo())
			}
		}
	}

	return false, nil
}
