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

import "strings"

// Colour of a piece or of the side to move.
type Colour int

// List of valid Colour values.
const (
	White Colour = iota
	Black
)

// Other returns the opposing colour.
func (c Colour) Other() Colour {
	if c == White {
		return Black
	}
	return White
}

func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColour accepts "white", "black", "w" or "b" in any letter case.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// PieceType is the kind of piece without regard to colour.
type PieceType int

// List of valid PieceType values. NoPieceType indicates an empty square or, in
// the case of a Move, that there is no promotion.
const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes in the order that they are preferred.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// letter returns the lowercase FEN letter for the piece type.
func (pt PieceType) letter() byte {
	switch pt {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return '.'
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

func pieceTypeFromLetter(b byte) PieceType {
	switch b {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoPieceType
}

// Piece is the occupant of a square. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// Empty returns true if the piece represents an empty square.
func (p Piece) Empty() bool {
	return p.Type == NoPieceType
}

// Letter returns the FEN letter for the piece. Uppercase for white and
// lowercase for black. An empty square is represented by a period.
func (p Piece) Letter() byte {
	l := p.Type.letter()
	if p.Empty() || p.Colour == Black {
		return l
	}
	return l - 'a' + 'A'
}

func (p Piece) String() string {
	return string(p.Letter())
}

// PieceFromLetter is the inverse of the Letter() function. Returns false if
// the letter is not a piece. The period is a valid letter and represents an
// empty square.
func PieceFromLetter(b byte) (Piece, bool) {
	if b == '.' {
		return NoPiece, true
	}
	pt := pieceTypeFromLetter(b)
	if pt == NoPieceType {
		return NoPiece, false
	}
	if b >= 'a' && b <= 'z' {
		return Piece{Type: pt, Colour: Black}, true
	}
	return Piece{Type: pt, Colour: White}, true
}
