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

package test

import (
	"testing"
)

// ExpectedSuccess tests the error value for nil.
func ExpectedSuccess(t *testing.T, err error) bool {
	t.Helper()

	if err != nil {
		t.Errorf("expected success (%s)", err)
		return false
	}

	return true
}

// ExpectedFailure tests the error value for non-nil.
func ExpectedFailure(t *testing.T, err error) bool {
	t.Helper()

	if err == nil {
		t.Errorf("expected failure")
		return false
	}

	return true
}
