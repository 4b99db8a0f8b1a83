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

package inference_test

import (
	"testing"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/inference"
	"github.com/jetsetilly/chessbridge/test"
)

var rules chess.Standard

func position(t *testing.T, fen string, moves ...string) chess.Position {
	t.Helper()
	p, err := chess.ParseFEN(fen)
	test.DemandSuccess(t, err, fen)
	for _, s := range moves {
		mv, err := chess.ParseMove(s)
		test.DemandSuccess(t, err, s)
		test.DemandSuccess(t, rules.Legal(p, mv), s)
		p = rules.Apply(p, mv)
	}
	return p
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name   string
		before chess.Position
		move   string
	}{
		{"pawn push", position(t, chess.StartFEN), "e2e4"},
		{"single step", position(t, chess.StartFEN), "e2e3"},
		{"black pawn push", position(t, chess.StartFEN, "e2e4"), "e7e5"},
		{"capture", position(t, chess.StartFEN, "e2e4", "d7d5", "d1g4"), "c8g4"},
		{"promotion", position(t, "8/3P4/8/6k1/8/8/1K6/8 w - - 0 1"), "d7d8q"},
		{"kingside castle", position(t, chess.StartFEN, "d2d4", "e7e5", "c1g5", "f8b4", "b1c3", "h7h5", "a2a4", "g8f6", "d1d3"), "e8g8"},
		{"queenside castle", position(t, chess.StartFEN, "d2d4", "e7e5", "c1g5", "f8b4", "b1c3", "h7h5", "a2a4", "g8f6", "d1d3", "e8g8"), "e1c1"},
		{"en passant", position(t, "rnbqkbnr/pp2p1pp/2p2p2/3pP3/2P5/8/PP1P1PPP/RNBQKBNR w KQkq d6 0 4"), "e5d6"},
	}

	for _, tt := range tests {
		mv, err := chess.ParseMove(tt.move)
		test.DemandSuccess(t, err)

		after := rules.Apply(tt.before, mv)
		r := inference.Infer(rules, tt.before, after)
		test.ExpectSuccess(t, r.Ok(), tt.name)
		test.ExpectSuccess(t, r.Err(), tt.name)
		test.ExpectEquality(t, r.Move, mv, tt.name)
	}
}

func TestInferFromFEN(t *testing.T) {
	// the after position is a plain snapshot. only the placement is used
	before := position(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	after := position(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")

	r := inference.Infer(rules, before, after)
	test.DemandSuccess(t, r.Ok())
	test.ExpectEquality(t, r.Move.String(), "e7e5")
	test.ExpectEquality(t, len(r.Differences), 2)
}

func TestInferUnderPromotion(t *testing.T) {
	before := position(t, "1r5k/P7/8/8/8/8/8/K7 w - - 0 1")

	for _, s := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n", "a7b8q", "a7b8n"} {
		mv, err := chess.ParseMove(s)
		test.DemandSuccess(t, err)
		r := inference.Infer(rules, before, rules.Apply(before, mv))
		test.ExpectEquality(t, r.Move, mv, s)
	}
}

// every legal move in a selection of positions is recovered from the
// position it produces.
func TestRoundTrip(t *testing.T) {
	for _, fen := range []string{
		chess.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/Pp2P3/2N2Q1p/1PPBBPPP/R3K2R b KQkq a3 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 b kq - 0 1",
		"rnbqkbnr/pp2p1pp/2p2p2/3pP3/2P5/8/PP1P1PPP/RNBQKBNR w KQkq d6 0 4",
	} {
		p := position(t, fen)
		for _, mv := range rules.LegalMoves(p) {
			r := inference.Infer(rules, p, rules.Apply(p, mv))
			test.ExpectEquality(t, r.Move, mv, fen, mv)
		}
	}
}

func TestAmbiguousDifference(t *testing.T) {
	before := position(t, chess.StartFEN)
	after := position(t, chess.StartFEN, "e2e4", "e7e5", "g1f3")

	r := inference.Infer(rules, before, after)
	test.ExpectEquality(t, r.Failure, inference.AmbiguousDifference)
	test.ExpectFailure(t, r.Ok())
	test.ExpectSuccess(t, curated.Is(r.Err(), inference.AmbiguousDifferenceError))
	test.ExpectEquality(t, len(r.Differences), 6)
}

func TestNoMatchingMove(t *testing.T) {
	before := position(t, chess.StartFEN)

	// no change at all
	r := inference.Infer(rules, before, before)
	test.ExpectEquality(t, r.Failure, inference.NoMatchingMove)
	test.ExpectSuccess(t, curated.Is(r.Err(), inference.NoMatchingMoveError))

	// a piece vanishes. a single differing square can't be a move
	after := before
	after.Board[chess.NewSquare(0, 1)] = chess.NoPiece
	r = inference.Infer(rules, before, after)
	test.ExpectEquality(t, r.Failure, inference.NoMatchingMove)

	// two squares changed but by a move that is impossible (a knight
	// teleporting to the far side of the board)
	after = before
	after.Board[chess.G1] = chess.NoPiece
	after.Board[chess.NewSquare(6, 4)] = chess.Piece{Type: chess.Knight, Colour: chess.White}
	r = inference.Infer(rules, before, after)
	test.ExpectEquality(t, r.Failure, inference.NoMatchingMove)

	// a legal looking move for the wrong side
	after = rules.Apply(position(t, chess.StartFEN, "e2e4"), chess.Move{From: chess.NewSquare(3, 1), To: chess.NewSquare(3, 3)})
	r = inference.Infer(rules, position(t, chess.StartFEN, "e2e4"), after)
	test.ExpectEquality(t, r.Failure, inference.NoMatchingMove)
}

// the same inputs always give the same result.
func TestDeterminism(t *testing.T) {
	before := position(t, "1r5k/P7/8/8/8/8/8/K7 w - - 0 1")
	after := rules.Apply(before, chess.Move{From: chess.NewSquare(0, 6), To: chess.NewSquare(1, 7), Promotion: chess.Knight})

	first := inference.Infer(rules, before, after)
	for i := 0; i < 10; i++ {
		r := inference.Infer(rules, before, after)
		test.ExpectEquality(t, r.Move, first.Move)
		test.ExpectEquality(t, r.Failure, first.Failure)
	}
}

func TestCandidateOrder(t *testing.T) {
	before := position(t, "8/3P4/8/6k1/8/8/1K6/8 w - - 0 1")
	d7 := chess.NewSquare(3, 6)
	c := inference.Candidates(before, []chess.Square{d7, chess.D8})

	test.DemandEquality(t, len(c), 6)
	test.ExpectEquality(t, c[0], chess.Move{From: d7, To: chess.D8})
	test.ExpectEquality(t, c[1], chess.Move{From: chess.D8, To: d7})
	test.ExpectEquality(t, c[2].Promotion, chess.Queen)
	test.ExpectEquality(t, c[3].Promotion, chess.Rook)
	test.ExpectEquality(t, c[4].Promotion, chess.Bishop)
	test.ExpectEquality(t, c[5].Promotion, chess.Knight)
}
