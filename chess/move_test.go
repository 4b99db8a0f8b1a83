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

package chess_test

import (
	"testing"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/test"
)

func TestSquare(t *testing.T) {
	sq, err := chess.ParseSquare("e4")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sq.File(), 4)
	test.ExpectEquality(t, sq.Rank(), 3)
	test.ExpectEquality(t, sq.String(), "e4")
	test.ExpectEquality(t, chess.NewSquare(0, 0), chess.A1)
	test.ExpectEquality(t, chess.H8.String(), "h8")
	test.ExpectEquality(t, chess.NoSquare.String(), "-")

	for _, s := range []string{"", "e", "e9", "i1", "e44"} {
		_, err := chess.ParseSquare(s)
		test.ExpectSuccess(t, curated.Is(err, chess.InvalidSquare), s)
	}
}

func TestMove(t *testing.T) {
	mv, err := chess.ParseMove("e2e4")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mv.From.String(), "e2")
	test.ExpectEquality(t, mv.To.String(), "e4")
	test.ExpectEquality(t, mv.Promotion, chess.NoPieceType)
	test.ExpectEquality(t, mv.String(), "e2e4")

	mv, err = chess.ParseMove("d7d8q")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mv.Promotion, chess.Queen)
	test.ExpectEquality(t, mv.String(), "d7d8q")

	// uppercase promotion letters are accepted but always printed lowercase
	mv, err = chess.ParseMove("a2a1N")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mv.String(), "a2a1n")

	for _, s := range []string{"", "e2", "e2e", "e2e2", "e2e9", "d7d8k", "d7d8x", "0000", "e2e4qq"} {
		_, err := chess.ParseMove(s)
		test.ExpectSuccess(t, curated.Is(err, chess.InvalidMove), s)
	}
}

func TestPiece(t *testing.T) {
	p, ok := chess.PieceFromLetter('N')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, chess.Piece{Type: chess.Knight, Colour: chess.White})
	test.ExpectEquality(t, p.String(), "N")

	p, ok = chess.PieceFromLetter('q')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, chess.Piece{Type: chess.Queen, Colour: chess.Black})
	test.ExpectEquality(t, p.String(), "q")

	p, ok = chess.PieceFromLetter('.')
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, p.Empty())

	_, ok = chess.PieceFromLetter('x')
	test.ExpectFailure(t, ok)
}

func TestColour(t *testing.T) {
	c, ok := chess.ParseColour("Black")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, chess.Black)
	test.ExpectEquality(t, c.Other(), chess.White)

	_, ok = chess.ParseColour("purple")
	test.ExpectFailure(t, ok)
}
