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

// Package performance contains helper functions relating to
// performance.
//
// Check() measures how quickly the decoder can process a stream by
// decoding it repeatedly for a fixed duration of time. It will
// optionally generate profiling information.
//
// RunProfiler() can be used to generate the various profile types for
// any function. On its own it will not limit the amount of time the
// program runs for.
package performance
