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

//go:build !statsview

package statsview

import (
	"github.com/jetsetilly/chessbridge/logger"
)

// Address of the statistics server.
const Address = ""

// Launch does nothing unless the program was built with the statsview tag.
func Launch(perm logger.Permission) {
	logger.Log(perm, "statsview", "not available in this build")
}

// Available returns true if the program was built with the statsview tag.
func Available() bool {
	return false
}
