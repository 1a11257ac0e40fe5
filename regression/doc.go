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

// Package regression facilitates the regression testing of the
// decoder. Adding a track to the regression database decodes it and
// records a fingerprint of the frame timeline. Running the tests
// decodes every recorded track again and compares the fresh
// fingerprint against the recorded one. Any difference means decoder
// behaviour has changed.
//
// The database is stored as a flat file in the user's resource
// directory, see the paths package.
package regression
