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

// Package chess contains the types required to describe a game of chess:
// squares, pieces, positions and moves. Positions can be parsed from and
// serialised to Forsyth-Edwards Notation (FEN) and moves from and to the long
// algebraic notation used by the UCI protocol.
//
// The Rules interface is the rules collaborator used by the rest of the
// program. The Standard type implements it with a simple 64 square mailbox
// move generator, which is more than quick enough for comparing board
// snapshots.
package chess
