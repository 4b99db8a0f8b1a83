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
	"strings"

	"github.com/jetsetilly/chessbridge/curated"
)

// Move is a move of a single piece from one square to another.
//
// Castling is represented by the king's two square move (eg. e1g1). En
// passant is represented by the capturing pawn's diagonal move to the empty
// target square.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// Sentinel error returned by ParseMove.
const InvalidMove = "chess: invalid move: %s"

// String returns the move in long algebraic notation as used by the UCI
// protocol. For example, "e2e4" or "d7d8q".
func (mv Move) String() string {
	s := mv.From.String() + mv.To.String()
	if mv.Promotion != NoPieceType {
		s += string(mv.Promotion.letter())
	}
	return s
}

// ParseMove parses a move in long algebraic notation.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, curated.Errorf(InvalidMove, s)
	}

	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, curated.Errorf(InvalidMove, s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, curated.Errorf(InvalidMove, s)
	}
	if from == to {
		return Move{}, curated.Errorf(InvalidMove, s)
	}

	mv := Move{From: from, To: to}

	if len(s) == 5 {
		switch pt := pieceTypeFromLetter(strings.ToLower(s[4:])[0]); pt {
		case Queen, Rook, Bishop, Knight:
			mv.Promotion = pt
		default:
			return Move{}, curated.Errorf(InvalidMove, s)
		}
	}

	return mv, nil
}
