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

// Package connector defines the Connector interface, the capability interface
// for every game backend. A backend is anything that plays one side of a game
// of chess and that can be observed through snapshots of its board. The
// backend never reports which move it made. The Poller type implements the
// waiting and inference steps for any backend that can read its board.
//
// Adapters are found in the sub-packages of connector. Each adapter registers
// itself with the Register() function in its init() function and is created
// by name with the Create() function:
//
//	import _ "github.com/jetsetilly/chessbridge/connector/sim"
//
//	conn, err := connector.Create("sim", env)
//
// Adapters that accept options build an Options instance and declare each
// option with the Add() function. Option values are bound to preference
// values from the prefs package and are saved with the other preferences in
// the environment.
package connector
