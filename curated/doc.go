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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. The pattern
// string serves double duty: it is the formatting pattern for the message
// and also the identifier used when testing the error.
//
//	err := curated.Errorf("cdg: %v", "empty input")
//
// Errors created like this can be tested for with the Is() and Has()
// functions. Is() compares the pattern of the outer-most error, while
// Has() searches the whole error chain.
//
// By convention, packages in this project define their error patterns as
// exported constants so that callers can test for them without resorting
// to string literals.
package curated
