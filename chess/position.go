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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/chessbridge/curated"
)

// CastlingRights is a bitmask of the castling moves that are still available.
type CastlingRights uint8

// List of valid CastlingRights bits.
const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := strings.Builder{}
	if cr&WhiteKingside != 0 {
		s.WriteByte('K')
	}
	if cr&WhiteQueenside != 0 {
		s.WriteByte('Q')
	}
	if cr&BlackKingside != 0 {
		s.WriteByte('k')
	}
	if cr&BlackQueenside != 0 {
		s.WriteByte('q')
	}
	return s.String()
}

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a snapshot of the game. Position is a value type and copying a
// Position creates an independent snapshot.
type Position struct {
	Board     [64]Piece
	Turn      Colour
	Castling  CastlingRights
	EnPassant Square
	HalfMove  int
	FullMove  int
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// EmptyPosition returns a position with no pieces and white to move.
func EmptyPosition() Position {
	return Position{
		Turn:      White,
		EnPassant: NoSquare,
		FullMove:  1,
	}
}

// Placement returns the piece placement field of the position's FEN. This is
// the canonical key used to compare positions.
func (p Position) Placement() string {
	s := strings.Builder{}
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.Board[NewSquare(f, r)]
			if pc.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteByte(byte('0' + empty))
				empty = 0
			}
			s.WriteByte(pc.Letter())
		}
		if empty > 0 {
			s.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			s.WriteByte('/')
		}
	}
	return s.String()
}

// PlacementEqual returns true if every square has the same occupant in both
// positions. The side to move, castling rights and counters are ignored.
func (p Position) PlacementEqual(o Position) bool {
	return p.Board == o.Board
}

// CopyState copies the side to move, the castling rights, the en-passant
// target and the move counters from another position. The pieces are not
// changed.
func (p *Position) CopyState(o Position) {
	p.Turn = o.Turn
	p.Castling = o.Castling
	p.EnPassant = o.EnPassant
	p.HalfMove = o.HalfMove
	p.FullMove = o.FullMove
}

// FEN returns the position in Forsyth-Edwards Notation.
func (p Position) FEN() string {
	turn := "w"
	if p.Turn == Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s %s %s %d %d", p.Placement(), turn, p.Castling, p.EnPassant, p.HalfMove, p.FullMove)
}

func (p Position) String() string {
	return p.FEN()
}

// Sentinel error returned by ParseFEN.
const InvalidFEN = "chess: invalid fen: %v"

// ParseFEN parses a position in Forsyth-Edwards Notation. Only the piece
// placement field is required. Missing fields default to white to move, no
// castling, no en-passant target, a half-move clock of zero and a full-move
// number of one.
func ParseFEN(fen string) (Position, error) {
	p := EmptyPosition()

	fields := strings.Fields(fen)
	if len(fields) == 0 || len(fields) > 6 {
		return p, curated.Errorf(InvalidFEN, fmt.Sprintf("wrong number of fields (%d)", len(fields)))
	}

	if err := parsePlacement(&p, fields[0]); err != nil {
		return p, curated.Errorf(InvalidFEN, err)
	}

	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			p.Turn = White
		case "b":
			p.Turn = Black
		default:
			return p, curated.Errorf(InvalidFEN, fmt.Sprintf("side to move (%s)", fields[1]))
		}
	}

	if len(fields) > 2 && fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.Castling |= WhiteKingside
			case 'Q':
				p.Castling |= WhiteQueenside
			case 'k':
				p.Castling |= BlackKingside
			case 'q':
				p.Castling |= BlackQueenside
			default:
				return p, curated.Errorf(InvalidFEN, fmt.Sprintf("castling rights (%s)", fields[2]))
			}
		}
	}

	if len(fields) > 3 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return p, curated.Errorf(InvalidFEN, err)
		}
		if sq.Rank() != 2 && sq.Rank() != 5 {
			return p, curated.Errorf(InvalidFEN, fmt.Sprintf("en-passant target (%s)", fields[3]))
		}
		p.EnPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return p, curated.Errorf(InvalidFEN, fmt.Sprintf("half-move clock (%s)", fields[4]))
		}
		p.HalfMove = n
	}

	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return p, curated.Errorf(InvalidFEN, fmt.Sprintf("full-move number (%s)", fields[5]))
		}
		p.FullMove = n
	}

	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("placement has %d ranks", len(ranks))
	}

	for i, rank := range ranks {
		r := 7 - i
		f := 0
		for j := 0; j < len(rank); j++ {
			b := rank[j]
			if b >= '1' && b <= '8' {
				f += int(b - '0')
				if f > 8 {
					break
				}
				continue
			}
			pc, ok := PieceFromLetter(b)
			if !ok || pc.Empty() {
				return fmt.Errorf("unrecognised piece (%c)", b)
			}
			if f > 7 {
				f++
				break
			}
			p.Board[NewSquare(f, r)] = pc
			f++
		}
		if f != 8 {
			return fmt.Errorf("rank %d does not have eight files", r+1)
		}
	}

	return nil
}
