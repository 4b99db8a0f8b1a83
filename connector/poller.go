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

package connector

import (
	"context"
	"time"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/inference"
)

// Default values for the Poller type.
const (
	DefaultInterval      = 500 * time.Millisecond
	DefaultStableSamples = 3
	DefaultSyncInterval  = 200 * time.Millisecond
	DefaultSyncTimeout   = 10 * time.Second
)

// Poller implements the wait for opponent move operation for any backend that
// can be read with a BoardReader. The board is sampled until a change has
// been seen and the board has settled. The move is then inferred from the
// positions before and after the change.
type Poller struct {
	Board BoardReader
	Rules chess.Rules

	// time between samples while waiting for the opponent's move
	Interval time.Duration

	// the number of consecutive identical samples required for the board to
	// be considered settled
	StableSamples int

	// time between samples while waiting for the board to show the expected
	// position, and the maximum amount of time to wait
	SyncInterval time.Duration
	SyncTimeout  time.Duration

	env *environment.Environment
	tag string
}

// NewPoller is the preferred method of initialisation for the Poller type.
// The tag is used when logging.
func NewPoller(env *environment.Environment, tag string, board BoardReader) *Poller {
	return &Poller{
		Board:         board,
		Rules:         chess.Standard{},
		Interval:      DefaultInterval,
		StableSamples: DefaultStableSamples,
		SyncInterval:  DefaultSyncInterval,
		SyncTimeout:   DefaultSyncTimeout,
		env:           env,
		tag:           tag,
	}
}

func (p *Poller) log(detail any) {
	if p.env == nil {
		return
	}
	p.env.Log.Log(p.env, p.tag, detail)
}

func (p *Poller) logf(detail string, args ...any) {
	if p.env == nil {
		return
	}
	p.env.Log.Logf(p.env, p.tag, detail, args...)
}

// sleep for the duration or until the context is done. returns false if the
// context is done.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Wait for the opponent's move. The expected position, if it is not nil, is
// the position the board should be showing before the opponent moves. The
// side to move, castling rights and counters of the expected position are
// also used as the state of the board before the move. A timeout of zero or
// less means there is no timeout other than the context.
//
// Returns false if the context is cancelled, the timeout expires, the board
// can't be read or the move can't be inferred. The reason is logged.
func (p *Poller) Wait(ctx context.Context, expected *chess.Position, timeout time.Duration) (chess.Move, bool) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var before chess.Position

	if expected != nil {
		pos, ahead, ok := p.sync(ctx, *expected)
		if !ok {
			p.log(p.reason(ctx, "waiting for expected position"))
			return chess.Move{}, false
		}
		if ahead {
			return p.inferred(*expected, pos)
		}
		before = pos
	} else {
		var err error
		before, err = p.Board.ReadBoard()
		if err != nil {
			p.log(err)
			return chess.Move{}, false
		}
	}

	after, ok := p.settle(ctx, before)
	if !ok {
		p.log(p.reason(ctx, "waiting for opponent move"))
		return chess.Move{}, false
	}

	return p.inferred(before, after)
}

// infer the move between two board readings. the state of the after position
// is taken from the before position with the side to move changed.
func (p *Poller) infer(before chess.Position, after chess.Position) inference.Result {
	after.CopyState(before)
	after.Turn = before.Turn.Other()
	return inference.Infer(p.Rules, before, after)
}

func (p *Poller) inferred(before chess.Position, after chess.Position) (chess.Move, bool) {
	res := p.infer(before, after)
	if !res.Ok() {
		p.log(res.Err())
		return chess.Move{}, false
	}

	p.logf("opponent played %s", res.Move)

	return res.Move, true
}

func (p *Poller) reason(ctx context.Context, activity string) string {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return activity + ": timed out"
	case context.Canceled:
		return activity + ": stopped"
	}
	return activity + ": board could not be read"
}

func (p *Poller) stableSamples() int {
	if p.StableSamples < 1 {
		return 1
	}
	return p.StableSamples
}

// sync waits until the board shows the expected position for the required
// number of consecutive samples and returns that reading, with the state of
// the expected position. if instead the board settles one legal move ahead of
// the expected position then the opponent has already moved and ahead is true.
//
// returns false only if the context is done or the board can't be read. if
// the board shows neither within the sync timeout then a warning is logged and
// the live board is used as the position before the opponent's move.
func (p *Poller) sync(ctx context.Context, expected chess.Position) (pos chess.Position, ahead bool, ok bool) {
	deadline := time.Now().Add(p.SyncTimeout)

	var candidate chess.Position
	stable := 0

	for {
		live, err := p.Board.ReadBoard()
		if err != nil {
			p.log(err)
			return chess.Position{}, false, false
		}

		if stable > 0 && live.PlacementEqual(candidate) {
			stable++
		} else {
			candidate = live
			stable = 1
		}

		if stable >= p.stableSamples() {
			if candidate.PlacementEqual(expected) {
				candidate.CopyState(expected)
				return candidate, false, true
			}
			if p.infer(expected, candidate).Ok() {
				return candidate, true, true
			}
		}

		if time.Now().After(deadline) {
			if p.infer(expected, live).Ok() {
				return live, true, true
			}
			p.logf("board does not show expected position: %s", expected.Placement())
			live.CopyState(expected)
			return live, false, true
		}

		if !sleep(ctx, p.SyncInterval) {
			return chess.Position{}, false, false
		}
	}
}

// settle waits until the board differs from the before position and then
// stays the same for the required number of consecutive samples. returns
// false if the context is done or the board can't be read.
func (p *Poller) settle(ctx context.Context, before chess.Position) (chess.Position, bool) {
	var candidate chess.Position
	stable := 0

	for {
		if !sleep(ctx, p.Interval) {
			return chess.Position{}, false
		}

		pos, err := p.Board.ReadBoard()
		if err != nil {
			p.log(err)
			return chess.Position{}, false
		}

		if pos.PlacementEqual(before) {
			stable = 0
			continue
		}

		if stable > 0 && pos.PlacementEqual(candidate) {
			stable++
		} else {
			candidate = pos
			stable = 1
		}

		if stable >= p.stableSamples() {
			return candidate, true
		}
	}
}
