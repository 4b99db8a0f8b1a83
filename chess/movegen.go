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

type direction struct {
	df, dr int
}

var knightSteps = [...]direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingSteps = [...]direction{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var diagonals = [...]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonals = [...]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// pawnAdvance is the rank direction of pawns of the colour.
func pawnAdvance(c Colour) int {
	if c == White {
		return 1
	}
	return -1
}

// homeRank is the rank on which pawns of the colour start.
func homeRank(c Colour) int {
	if c == White {
		return 1
	}
	return 6
}

// LastRank returns the rank on which pawns of the colour promote.
func LastRank(c Colour) int {
	if c == White {
		return 7
	}
	return 0
}

// pseudoLegal generates every move for the side to move that obeys the
// movement rules of the pieces. moves that leave the mover's king in check
// are included.
func pseudoLegal(p Position) []Move {
	moves := make([]Move, 0, 48)

	for sq := Square(0); sq < NoSquare; sq++ {
		pc := p.Board[sq]
		if pc.Empty() || pc.Colour != p.Turn {
			continue
		}

		switch pc.Type {
		case Pawn:
			moves = pawnMoves(p, sq, moves)
		case Knight:
			moves = stepMoves(p, sq, knightSteps[:], moves)
		case Bishop:
			moves = slideMoves(p, sq, diagonals[:], moves)
		case Rook:
			moves = slideMoves(p, sq, orthogonals[:], moves)
		case Queen:
			moves = slideMoves(p, sq, diagonals[:], moves)
			moves = slideMoves(p, sq, orthogonals[:], moves)
		case King:
			moves = stepMoves(p, sq, kingSteps[:], moves)
			moves = castlingMoves(p, sq, moves)
		}
	}

	return moves
}

func addPawnMove(from Square, to Square, c Colour, moves []Move) []Move {
	if to.Rank() == LastRank(c) {
		for _, pt := range PromotionTypes {
			moves = append(moves, Move{From: from, To: to, Promotion: pt})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to})
}

func pawnMoves(p Position, sq Square, moves []Move) []Move {
	c := p.Turn
	adv := pawnAdvance(c)

	if one, ok := sq.offset(0, adv); ok && p.Board[one].Empty() {
		moves = addPawnMove(sq, one, c, moves)
		if sq.Rank() == homeRank(c) {
			if two, ok := sq.offset(0, adv*2); ok && p.Board[two].Empty() {
				moves = append(moves, Move{From: sq, To: two})
			}
		}
	}

	for _, df := range [...]int{-1, 1} {
		to, ok := sq.offset(df, adv)
		if !ok {
			continue
		}
		t := p.Board[to]
		if !t.Empty() && t.Colour != c {
			moves = addPawnMove(sq, to, c, moves)
		} else if t.Empty() && to == p.EnPassant {
			moves = append(moves, Move{From: sq, To: to})
		}
	}

	return moves
}

func stepMoves(p Position, sq Square, steps []direction, moves []Move) []Move {
	for _, d := range steps {
		to, ok := sq.offset(d.df, d.dr)
		if !ok {
			continue
		}
		t := p.Board[to]
		if t.Empty() || t.Colour != p.Turn {
			moves = append(moves, Move{From: sq, To: to})
		}
	}
	return moves
}

func slideMoves(p Position, sq Square, dirs []direction, moves []Move) []Move {
	for _, d := range dirs {
		to := sq
		for {
			var ok bool
			to, ok = to.offset(d.df, d.dr)
			if !ok {
				break
			}
			t := p.Board[to]
			if t.Empty() {
				moves = append(moves, Move{From: sq, To: to})
				continue
			}
			if t.Colour != p.Turn {
				moves = append(moves, Move{From: sq, To: to})
			}
			break
		}
	}
	return moves
}

type castle struct {
	right    CastlingRights
	king     Square
	rook     Square
	kingTo   Square
	rookTo   Square
	empty    []Square
	unsafe   []Square
	byColour Colour
}

var castles = [...]castle{
	{right: WhiteKingside, king: E1, rook: H1, kingTo: G1, rookTo: F1, empty: []Square{F1, G1}, unsafe: []Square{E1, F1, G1}, byColour: White},
	{right: WhiteQueenside, king: E1, rook: A1, kingTo: C1, rookTo: D1, empty: []Square{D1, C1, B1}, unsafe: []Square{E1, D1, C1}, byColour: White},
	{right: BlackKingside, king: E8, rook: H8, kingTo: G8, rookTo: F8, empty: []Square{F8, G8}, unsafe: []Square{E8, F8, G8}, byColour: Black},
	{right: BlackQueenside, king: E8, rook: A8, kingTo: C8, rookTo: D8, empty: []Square{D8, C8, B8}, unsafe: []Square{E8, D8, C8}, byColour: Black},
}

func castlingMoves(p Position, sq Square, moves []Move) []Move {
	for _, c := range castles {
		if c.byColour != p.Turn || c.king != sq || p.Castling&c.right == 0 {
			continue
		}
		if p.Board[c.rook] != (Piece{Type: Rook, Colour: p.Turn}) {
			continue
		}

		ok := true
		for _, e := range c.empty {
			if !p.Board[e].Empty() {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		for _, u := range c.unsafe {
			if Attacked(p, u, p.Turn.Other()) {
				ok = false
				break
			}
		}
		if ok {
			moves = append(moves, Move{From: c.king, To: c.kingTo})
		}
	}
	return moves
}

// Attacked returns true if the square is attacked by any piece of the colour.
// The occupant of the square, if any, is not considered.
func Attacked(p Position, sq Square, by Colour) bool {
	// pawns attack diagonally forward so look diagonally backward from the
	// square being tested
	for _, df := range [...]int{-1, 1} {
		if from, ok := sq.offset(df, -pawnAdvance(by)); ok {
			if p.Board[from] == (Piece{Type: Pawn, Colour: by}) {
				return true
			}
		}
	}

	for _, d := range knightSteps {
		if from, ok := sq.offset(d.df, d.dr); ok {
			if p.Board[from] == (Piece{Type: Knight, Colour: by}) {
				return true
			}
		}
	}

	for _, d := range kingSteps {
		if from, ok := sq.offset(d.df, d.dr); ok {
			if p.Board[from] == (Piece{Type: King, Colour: by}) {
				return true
			}
		}
	}

	if rayAttack(p, sq, by, diagonals[:], Bishop) {
		return true
	}

	return rayAttack(p, sq, by, orthogonals[:], Rook)
}

// rayAttack looks along each direction for the first occupied square. the
// square is attacked if that piece is of the slider type or a queen.
func rayAttack(p Position, sq Square, by Colour, dirs []direction, slider PieceType) bool {
	for _, d := range dirs {
		from := sq
		for {
			var ok bool
			from, ok = from.offset(d.df, d.dr)
			if !ok {
				break
			}
			t := p.Board[from]
			if t.Empty() {
				continue
			}
			if t.Colour == by && (t.Type == slider || t.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// KingSquare returns the square of the colour's king. Returns NoSquare if
// there is no king of that colour on the board.
func (p Position) KingSquare(c Colour) Square {
	k := Piece{Type: King, Colour: c}
	for sq := Square(0); sq < NoSquare; sq++ {
		if p.Board[sq] == k {
			return sq
		}
	}
	return NoSquare
}

// InCheck returns true if the side to move is in check.
func (p Position) InCheck() bool {
	k := p.KingSquare(p.Turn)
	if k == NoSquare {
		return false
	}
	return Attacked(p, k, p.Turn.Other())
}
