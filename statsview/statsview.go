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

//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/chessbridge/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// Launch the statistics server in a new goroutine. The address of the server
// is logged with the logger.Permission.
func Launch(perm logger.Permission) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(perm, "statsview", "runtime statistics at http://%s%s", Address, path)
}

// Available returns true if the program was built with the statsview tag.
func Available() bool {
	return true
}
