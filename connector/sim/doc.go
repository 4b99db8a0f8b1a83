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

// Package sim implements a connector for a simulated vintage chess program.
// The simulator is useful for testing the protocol session without any
// external hardware or software.
//
// Like a real vintage program, the simulator never reports the move it made.
// Instead the move appears on its board after the think time has elapsed and
// the move is inferred by the shared polling mechanism in the connector
// package.
//
// By default the simulator plays the first move it finds. When the Seed
// option is not zero moves are chosen at random. A Lua script can also be
// used to choose moves with the Script option. See the chooser type for
// details.
package sim
