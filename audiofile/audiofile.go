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

// Package audiofile inspects the audio half of a karaoke track. The
// graphics stream and the audio recording are mastered to the same
// length so a large difference between the two durations suggests a
// mismatched pair.
package audiofile

import (
	"bytes"
	"path"
	"strings"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/openkj/gocdg/curated"
)

// bytes per sample in the decoded mp3 stream. two channels of 16 bit
// samples
const mp3SampleSize = 4

// Duration returns the length of the audio data in milliseconds. The
// filename is used only to select the decoder by extension.
func Duration(filename string, data []byte) (int, error) {
	switch strings.ToUpper(path.Ext(filename)) {
	case ".MP3":
		return mp3Duration(data)
	case ".WAV":
		return wavDuration(data)
	}

	return 0, curated.Errorf("audiofile: %v", "unrecognised audio format")
}

func mp3Duration(data []byte) (int, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, curated.Errorf("audiofile: %v", err)
	}

	samples := dec.Length() / mp3SampleSize
	return int(samples * 1000 / int64(dec.SampleRate())), nil
}

func wavDuration(data []byte) (int, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return 0, curated.Errorf("audiofile: %v", "not a valid wav file")
	}

	d, err := dec.Duration()
	if err != nil {
		return 0, curated.Errorf("audiofile: %v", err)
	}

	return int(d.Milliseconds()), nil
}
