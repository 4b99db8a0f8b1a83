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

// apply the move to a copy of the position. the move is not checked for
// legality but is expected to be pseudo-legal.
func apply(p Position, mv Move) Position {
	n := p

	pc := n.Board[mv.From]
	captured := n.Board[mv.To]

	n.Board[mv.From] = NoPiece

	switch pc.Type {
	case Pawn:
		// en passant. the captured pawn is beside the moving pawn and not on
		// the target square
		if mv.To == p.EnPassant && captured.Empty() && mv.From.File() != mv.To.File() {
			n.Board[NewSquare(mv.To.File(), mv.From.Rank())] = NoPiece
			captured = Piece{Type: Pawn, Colour: pc.Colour.Other()}
		}

	case King:
		for _, c := range castles {
			if c.king == mv.From && c.kingTo == mv.To && c.byColour == pc.Colour {
				n.Board[c.rookTo] = n.Board[c.rook]
				n.Board[c.rook] = NoPiece
				break
			}
		}
		if pc.Colour == White {
			n.Castling &^= WhiteKingside | WhiteQueenside
		} else {
			n.Castling &^= BlackKingside | BlackQueenside
		}
	}

	if mv.Promotion != NoPieceType {
		n.Board[mv.To] = Piece{Type: mv.Promotion, Colour: pc.Colour}
	} else {
		n.Board[mv.To] = pc
	}

	// a rook leaving its corner or being captured on it loses the right
	for _, c := range castles {
		if mv.From == c.rook || mv.To == c.rook {
			n.Castling &^= c.right
		}
	}

	n.EnPassant = NoSquare
	if pc.Type == Pawn {
		d := mv.To.Rank() - mv.From.Rank()
		if d == 2 || d == -2 {
			n.EnPassant = NewSquare(mv.From.File(), mv.From.Rank()+d/2)
		}
	}

	if pc.Type == Pawn || !captured.Empty() {
		n.HalfMove = 0
	} else {
		n.HalfMove++
	}

	if p.Turn == Black {
		n.FullMove++
	}
	n.Turn = p.Turn.Other()

	return n
}
