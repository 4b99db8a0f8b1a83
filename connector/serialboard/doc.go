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

// Package serialboard implements a connector for an electronic chess board
// attached to a serial port. The serial port is opened with the pkg/term
// package.
//
// The board speaks a simple line protocol. Each request is a single line and
// is answered with a single line:
//
//	P          ping. answered with OK
//	B          answered with 64 characters describing the board from a8 to h1
//	M <move>   indicate a move in UCI notation with the board's lights
//	N          indicate a new game
//
// Empty squares in the board description are represented by the '.'
// character and pieces by their FEN letter. Requests that can't be satisfied
// are answered with ERR followed by an optional description.
package serialboard
