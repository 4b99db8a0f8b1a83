// This file is part of Chessbridge.
//
// Chessbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chessbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chessbridge.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %d"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")

	// wrapping an error with the same leading part does not duplicate it
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "test: foo")

	// duplicates in the middle of a chain are also removed
	g := curated.Errorf("outer: %v", f)
	test.ExpectEquality(t, g.Error(), "outer: test: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))
	test.ExpectFailure(t, curated.Is(nil, testPattern))

	// uncurated errors never match
	test.ExpectFailure(t, curated.Is(io.EOF, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(otherPattern, 10)
	f := curated.Errorf(testPattern, e)
	test.ExpectSuccess(t, curated.Has(f, otherPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Is(f, otherPattern))
	test.ExpectFailure(t, curated.Has(io.EOF, testPattern))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf(testPattern, 1)))
	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(testPattern, io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))

	f := curated.Errorf(testPattern, "no error value")
	test.ExpectFailure(t, errors.Is(f, io.EOF))
}
