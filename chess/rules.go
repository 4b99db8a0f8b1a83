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

// Rules is the interface to the rules of chess required by the inference
// engine and the protocol session.
type Rules interface {
	// PseudoLegalMoves returns the moves that obey the movement rules of the
	// pieces for the side to move. Moves that leave the king in check are
	// included.
	PseudoLegalMoves(pos Position) []Move

	// Legal returns true if the move is pseudo-legal and does not leave the
	// mover's king in check.
	Legal(pos Position, mv Move) bool

	// Apply returns the position after the move. The move should be at least
	// pseudo-legal. The original position is not changed.
	Apply(pos Position, mv Move) Position

	// PlacementKey returns a string that is equal for two positions if and
	// only if every square has the same occupant.
	PlacementKey(pos Position) string
}

// Standard implements the Rules interface for standard chess.
type Standard struct{}

// PseudoLegalMoves implements the Rules interface.
func (Standard) PseudoLegalMoves(pos Position) []Move {
	return pseudoLegal(pos)
}

// Legal implements the Rules interface.
func (Standard) Legal(pos Position, mv Move) bool {
	for _, m := range pseudoLegal(pos) {
		if m == mv {
			return !leavesCheck(pos, mv)
		}
	}
	return false
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's king
// in check.
func (Standard) LegalMoves(pos Position) []Move {
	moves := pseudoLegal(pos)
	legal := moves[:0]
	for _, mv := range moves {
		if !leavesCheck(pos, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// Apply implements the Rules interface.
func (Standard) Apply(pos Position, mv Move) Position {
	return apply(pos, mv)
}

// PlacementKey implements the Rules interface.
func (Standard) PlacementKey(pos Position) string {
	return pos.Placement()
}

// leavesCheck returns true if the move leaves the mover's king attacked.
// positions without a king for the side to move are never in check.
func leavesCheck(pos Position, mv Move) bool {
	n := apply(pos, mv)
	k := n.KingSquare(pos.Turn)
	if k == NoSquare {
		return false
	}
	return Attacked(n, k, pos.Turn.Other())
}
