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

package inference

import (
	"fmt"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/curated"
)

// MaxDifferences is the largest number of changed squares that a single move
// can produce. Castling changes four squares.
const MaxDifferences = 4

// Failure indicates why a move could not be inferred.
type Failure int

// List of valid Failure values.
const (
	NoFailure Failure = iota

	// more squares changed than any single move can explain
	AmbiguousDifference

	// no pseudo-legal move produces the observed position
	NoMatchingMove
)

func (f Failure) String() string {
	switch f {
	case NoFailure:
		return "no failure"
	case AmbiguousDifference:
		return "ambiguous difference"
	case NoMatchingMove:
		return "no matching move"
	}
	return "unknown failure"
}

// Sentinel errors returned by Result.Err().
const (
	AmbiguousDifferenceError = "inference: ambiguous difference (%d squares)"
	NoMatchingMoveError      = "inference: no matching move"
)

// Result of a call to Infer(). If Failure is NoFailure then Move is the
// inferred move.
type Result struct {
	Move    chess.Move
	Failure Failure

	// the squares that differ between the two positions, in ascending order
	Differences []chess.Square
}

// Ok returns true if a move was inferred.
func (r Result) Ok() bool {
	return r.Failure == NoFailure
}

// Err returns nil if a move was inferred. Otherwise it returns a curated
// error describing the failure.
func (r Result) Err() error {
	switch r.Failure {
	case NoFailure:
		return nil
	case AmbiguousDifference:
		return curated.Errorf(AmbiguousDifferenceError, len(r.Differences))
	}
	return curated.Errorf(NoMatchingMoveError)
}

func (r Result) String() string {
	if r.Ok() {
		return r.Move.String()
	}
	return fmt.Sprintf("%s %v", r.Failure, r.Differences)
}

// Differences returns the squares with a different occupant in the two
// positions, in ascending order.
func Differences(before chess.Position, after chess.Position) []chess.Square {
	d := make([]chess.Square, 0, MaxDifferences)
	for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
		if before.Board[sq] != after.Board[sq] {
			d = append(d, sq)
		}
	}
	return d
}

// Candidates returns every move that could explain the differences, in the
// order that they should be tried. Plain moves between every ordered pair of
// differing squares come first, followed by promotions for pawns that reach
// their last rank. Promotions are ordered queen, rook, bishop, knight.
func Candidates(before chess.Position, diff []chess.Square) []chess.Move {
	c := make([]chess.Move, 0, len(diff)*len(diff))

	for _, from := range diff {
		for _, to := range diff {
			if from != to {
				c = append(c, chess.Move{From: from, To: to})
			}
		}
	}

	for _, from := range diff {
		pc := before.Board[from]
		if pc.Type != chess.Pawn {
			continue
		}
		for _, to := range diff {
			if from == to || to.Rank() != chess.LastRank(pc.Colour) {
				continue
			}
			for _, pt := range chess.PromotionTypes {
				c = append(c, chess.Move{From: from, To: to, Promotion: pt})
			}
		}
	}

	return c
}

// Infer the move that transforms the before position into the after
// position. Only the piece placement of the after position is considered.
// The side to move, castling rights and en-passant target of the before
// position determine which moves are possible.
//
// The result is deterministic. When more than one candidate produces the
// after position the first in the order given by Candidates() is chosen.
func Infer(rules chess.Rules, before chess.Position, after chess.Position) Result {
	r := Result{
		Differences: Differences(before, after),
	}

	if len(r.Differences) > MaxDifferences {
		r.Failure = AmbiguousDifference
		return r
	}

	pseudo := make(map[chess.Move]bool)
	for _, mv := range rules.PseudoLegalMoves(before) {
		pseudo[mv] = true
	}

	target := rules.PlacementKey(after)

	for _, mv := range Candidates(before, r.Differences) {
		if !pseudo[mv] {
			continue
		}
		if rules.PlacementKey(rules.Apply(before, mv)) == target {
			r.Move = mv
			return r
		}
	}

	r.Failure = NoMatchingMove
	return r
}
