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

// Package test contains helper functions for the testing of the rest of
// the project. Nothing in this package is used outside of _test.go files.
package test
