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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/openkj/gocdg/audiofile"
	"github.com/openkj/gocdg/cdg"
	"github.com/openkj/gocdg/cdgloader"
	"github.com/openkj/gocdg/digest"
	"github.com/openkj/gocdg/frames"
	"github.com/openkj/gocdg/logger"
	"github.com/openkj/gocdg/modalflag"
	"github.com/openkj/gocdg/performance"
	"github.com/openkj/gocdg/play"
	"github.com/openkj/gocdg/regression"
	"github.com/openkj/gocdg/statsview"
	"github.com/openkj/gocdg/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "INFO", "FRAMES", "REGRESS", "PERFORMANCE", "VERSION")
	md.AdditionalHelp("The PLAY mode is assumed when no other mode is given.")

	log := md.AddBool("log", false, "echo the log to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	switch md.Mode() {
	case "PLAY":
		err = playMode(md)
	case "INFO":
		err = infoMode(md)
	case "FRAMES":
		err = framesMode(md)
	case "REGRESS":
		err = regressMode(md)
	case "PERFORMANCE":
		err = performanceMode(md)
	case "VERSION":
		fmt.Println(version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func playMode(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 2.0, "window scaling of the 288x192 display")
	tempo := md.AddInt("tempo", 100, "playback speed as a percentage")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("%s mode requires a single file argument", md)
	case 1:
		loader, err := cdgloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}
		return play.Play(loader, float32(*scale), *tempo)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func infoMode(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires a single file argument", md)
	}

	loader, err := cdgloader.NewLoader(md.GetArg(0))
	if err != nil {
		return err
	}
	if err := loader.Load(); err != nil {
		return err
	}

	dec := cdg.NewDecoder()
	if err := dec.Open(loader.Data); err != nil {
		return err
	}
	if err := dec.Process(); err != nil {
		return err
	}

	fmt.Printf("file: %s\n", loader.Filename)
	fmt.Printf("hash: %s\n", loader.Hash)
	fmt.Printf("duration: %dms\n", dec.Duration())
	fmt.Printf("frames: %d\n", dec.NumFrames())
	fmt.Printf("last update: %dms\n", dec.LastUpdate())

	if frameHash, err := digest.HashAt(dec, dec.LastUpdate()); err == nil {
		fmt.Printf("final frame hash: %s\n", frameHash)
	}

	if loader.AudioFilename != "" {
		fmt.Printf("audio: %s\n", loader.AudioFilename)
		audioDur, err := audiofile.Duration(loader.AudioFilename, loader.AudioData)
		if err != nil {
			fmt.Printf("audio duration: unavailable (%v)\n", err)
		} else {
			fmt.Printf("audio duration: %dms\n", audioDur)
		}
	}

	return nil
}

func framesMode(md *modalflag.Modes) error {
	md.NewMode()

	interval := md.AddInt("interval", 1000, "milliseconds of stream time between exported frames")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires a single file argument", md)
	}

	loader, err := cdgloader.NewLoader(md.GetArg(0))
	if err != nil {
		return err
	}

	return frames.Export(md.Output, loader, *interval)
}

func regressMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "display details of each test")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(md.Output, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return regression.RegressList(md.Output)
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}
			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at at time with %s mode", md)
		}

	case "ADD":
		md.NewMode()

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("%s mode requires a single file argument", md)
		case 1:
			reg := regression.NewVideoRegression(md.GetArg(0))
			return regression.RegressAdd(md.Output, reg)
		default:
			return fmt.Errorf("regression entries can only be added one at a time")
		}
	}

	return nil
}

func performanceMode(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddString("profile", "none", "run performance check with profiling (CPU, MEM, ALL or NONE)")
	duration := md.AddString("duration", "5s", "run performance check for duration")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available in this build: %t)", statsview.Available()))

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("%s mode requires a single file argument", md)
	case 1:
		loader, err := cdgloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}
		return performance.Check(md.Output, prf, loader, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

// yesReader always reads a y, the confirmation expected by the
// regression delete flow.
type yesReader struct{}

func (r *yesReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = 'y'
	return 1, nil
}
