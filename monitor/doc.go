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

// Package monitor serves the status of a protocol session over HTTP. The
// monitor is an observer of the session and only ever sees the snapshots that
// the session sends to it.
//
// The following routes are served:
//
//	GET /api/status		the most recent status as JSON
//	GET /api/log?n=20	the last n lines of the log as plain text
//	GET /ws/status		a websocket that receives every new status as JSON
//
// The monitor should be started with Listen() in its own goroutine and
// stopped with Shutdown().
package monitor
