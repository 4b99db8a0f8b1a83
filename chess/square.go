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

package chess

import (
	"github.com/jetsetilly/chessbridge/curated"
)

// Square is an index into the board. Squares are numbered little-endian
// rank-file: a1 is zero, h1 is seven, a8 is 56 and h8 is 63.
type Square uint8

// Notable squares.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63

	// NoSquare is used when a square is required but not applicable. For
	// example, the en-passant target when there is no en-passant capture.
	NoSquare Square = 64
)

// Sentinel error returned by ParseSquare.
const InvalidSquare = "chess: invalid square: %s"

// NewSquare returns the square for the file and rank, both counting from zero.
func NewSquare(file int, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file (column) of the square. Zero is the a-file.
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the rank (row) of the square. Zero is the first rank.
func (sq Square) Rank() int {
	return int(sq) / 8
}

// Valid returns false for NoSquare and any out of range value.
func (sq Square) Valid() bool {
	return sq < NoSquare
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// offset returns the square df files and dr ranks away. Returns false if the
// square would be off the board.
func (sq Square) offset(df int, dr int) (Square, bool) {
	f := sq.File() + df
	r := sq.Rank() + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// ParseSquare converts algebraic notation (eg. "e4") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, curated.Errorf(InvalidSquare, s)
	}
	f := int(s[0]) - 'a'
	r := int(s[1]) - '1'
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, curated.Errorf(InvalidSquare, s)
	}
	return NewSquare(f, r), nil
}
