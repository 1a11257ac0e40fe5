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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/openkj/gocdg/modalflag"
	"github.com/openkj/gocdg/test"
)

func TestNoModes(t *testing.T) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"arg1", "arg2"})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 2)
}

func TestDefaultSubMode(t *testing.T) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"somefile.cdg"})
	md.AddSubModes("PLAY", "INFO")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))

	// no sub-mode named in the arguments so the default is selected and
	// the argument is left unconsumed
	test.Equate(t, md.Mode(), "PLAY")
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.RemainingArgs()[0], "somefile.cdg")
}

func TestNamedSubMode(t *testing.T) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"info", "somefile.cdg"})
	md.AddSubModes("PLAY", "INFO")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "INFO")
	test.Equate(t, len(md.RemainingArgs()), 1)
}

func TestModeFlags(t *testing.T) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"play", "-scale", "3", "somefile.cdg"})
	md.AddSubModes("PLAY", "INFO")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "PLAY")

	md.NewMode()
	scale := md.AddFloat64("scale", 2.0, "window scale")

	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(*scale), 3)
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.Path(), "PLAY")
}

func TestUnrecognisedFlag(t *testing.T) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, int(p), int(modalflag.ParseError))
}
