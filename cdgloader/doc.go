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

// Package cdgloader is used to load karaoke tracks. A track is a .cdg
// subcode stream plus, optionally, the audio file it accompanies.
//
// Tracks can be specified as a bare .cdg file, as a zip archive
// containing a .cdg member, or as an HTTP URL. For local files the
// loader also looks for the audio half of the track, either a file with
// the same basename next to the .cdg file or an audio member of the
// same zip archive.
//
// Use NewLoader() to initialise and Load() to acquire the data:
//
//	ld, err := cdgloader.NewLoader("track.zip")
//	if err != nil {
//		...
//	}
//	err = ld.Load()
//
// After a successful Load() the Data field holds the subcode stream and
// the Hash field its SHA-1 fingerprint. The fingerprint is used by the
// regression system to make sure the same track is being compared.
package cdgloader
