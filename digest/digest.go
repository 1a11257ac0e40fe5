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

// Package digest produces a cryptographic hash of a decoded frame
// timeline. The hash can be used to compare output from subsequent
// decodings, if a new hash differs from a previously recorded value
// then something has changed. We use this as the basis for the
// regression tests.
package digest

// Digest implementations should return a cryptographic hash in
// response to a Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}
