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

//go:build !release

package paths_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/chessbridge/paths"
	"github.com/jetsetilly/chessbridge/test"
)

func TestPaths(t *testing.T) {
	defer os.RemoveAll(".chessbridge")

	pth, err := paths.ResourcePath("connector/sim", "opponent.lua")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chessbridge/connector/sim/opponent.lua")

	// sub-path directory has been created
	info, err := os.Stat(".chessbridge/connector/sim")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("connector", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chessbridge/connector")

	pth, err = paths.ResourcePath("", "uci.log")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chessbridge/uci.log")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".chessbridge")
}
