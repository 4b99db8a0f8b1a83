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

package connector_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/test"
)

// scriptedBoard returns each position in turn. the last position is repeated
// forever.
type scriptedBoard struct {
	crit      sync.Mutex
	positions []chess.Position
	reads     int
	err       error
}

func (b *scriptedBoard) ReadBoard() (chess.Position, error) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if b.err != nil {
		return chess.Position{}, b.err
	}
	i := b.reads
	if i >= len(b.positions) {
		i = len(b.positions) - 1
	}
	b.reads++
	return b.positions[i], nil
}

func mustFEN(t *testing.T, fen string) chess.Position {
	t.Helper()
	p, err := chess.ParseFEN(fen)
	test.DemandSuccess(t, err)
	return p
}

func fastPoller(t *testing.T, board connector.BoardReader) *connector.Poller {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainSession, "")
	test.DemandSuccess(t, err)
	p := connector.NewPoller(env, "test", board)
	p.Interval = time.Millisecond
	p.SyncInterval = time.Millisecond
	p.SyncTimeout = 50 * time.Millisecond
	return p
}

func TestPollerOpponentMove(t *testing.T) {
	start := chess.NewPosition()
	after := chess.Standard{}.Apply(start, chess.Move{From: chess.NewSquare(4, 1), To: chess.NewSquare(4, 3)})

	// the board is unsettled for a single sample before showing the move
	mid := start
	mid.Board[chess.NewSquare(4, 1)] = chess.NoPiece

	board := &scriptedBoard{positions: []chess.Position{start, start, start, start, mid, after}}
	p := fastPoller(t, board)

	mv, ok := p.Wait(context.Background(), &start, time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mv.String(), "e2e4")
}

func TestPollerCastling(t *testing.T) {
	before := mustFEN(t, "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	after := mustFEN(t, "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4")

	board := &scriptedBoard{positions: []chess.Position{before, before, before, after}}
	p := fastPoller(t, board)

	mv, ok := p.Wait(context.Background(), &before, time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mv.String(), "e1g1")
}

func TestPollerNoExpectedPosition(t *testing.T) {
	start := chess.NewPosition()
	after := chess.Standard{}.Apply(start, chess.Move{From: chess.NewSquare(6, 0), To: chess.NewSquare(5, 2)})

	board := &scriptedBoard{positions: []chess.Position{start, after}}
	p := fastPoller(t, board)

	mv, ok := p.Wait(context.Background(), nil, time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mv.String(), "g1f3")
}

func TestPollerTimeout(t *testing.T) {
	start := chess.NewPosition()
	board := &scriptedBoard{positions: []chess.Position{start}}
	p := fastPoller(t, board)

	_, ok := p.Wait(context.Background(), &start, 20*time.Millisecond)
	test.ExpectFailure(t, ok)
}

func TestPollerCancel(t *testing.T) {
	start := chess.NewPosition()
	board := &scriptedBoard{positions: []chess.Position{start}}
	p := fastPoller(t, board)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, ok := p.Wait(ctx, &start, 0)
	test.ExpectFailure(t, ok)
}

func TestPollerImpossibleChange(t *testing.T) {
	start := chess.NewPosition()
	empty := chess.EmptyPosition()
	board := &scriptedBoard{positions: []chess.Position{start, empty}}
	p := fastPoller(t, board)

	_, ok := p.Wait(context.Background(), nil, time.Second)
	test.ExpectFailure(t, ok)
}

func TestPollerReadError(t *testing.T) {
	board := &scriptedBoard{err: errors.New("board disconnected")}
	p := fastPoller(t, board)

	_, ok := p.Wait(context.Background(), nil, time.Second)
	test.ExpectFailure(t, ok)
}

func TestPollerSyncTimeout(t *testing.T) {
	// the board never shows the expected position but the poller proceeds
	// once the sync timeout has expired. the board is two moves away from the
	// expected position so it can't be mistaken for the opponent's move
	rules := chess.Standard{}
	start := chess.NewPosition()
	shown := rules.Apply(start, chess.Move{From: chess.NewSquare(3, 1), To: chess.NewSquare(3, 3)})
	shown = rules.Apply(shown, chess.Move{From: chess.NewSquare(3, 6), To: chess.NewSquare(3, 4)})
	after := rules.Apply(shown, chess.Move{From: chess.NewSquare(4, 1), To: chess.NewSquare(4, 3)})

	var positions []chess.Position
	for i := 0; i < 200; i++ {
		positions = append(positions, shown)
	}
	positions = append(positions, after)

	board := &scriptedBoard{positions: positions}
	p := fastPoller(t, board)
	p.SyncTimeout = 5 * time.Millisecond

	mv, ok := p.Wait(context.Background(), &start, 5*time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mv.String(), "e2e4")
}

func TestPollerMoveBeforeSync(t *testing.T) {
	// the opponent has moved before the first reading of the board
	before := mustFEN(t, "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	after := mustFEN(t, "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4")

	board := &scriptedBoard{positions: []chess.Position{after}}
	p := fastPoller(t, board)

	mv, ok := p.Wait(context.Background(), &before, time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mv.String(), "e1g1")
}

func TestPollerMoveDuringSync(t *testing.T) {
	// the opponent moves after the expected position has been seen once
	start := chess.NewPosition()
	after := chess.Standard{}.Apply(start, chess.Move{From: chess.NewSquare(6, 0), To: chess.NewSquare(5, 2)})

	board := &scriptedBoard{positions: []chess.Position{start, after}}
	p := fastPoller(t, board)

	mv, ok := p.Wait(context.Background(), &start, time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, mv.String(), "g1f3")
}
