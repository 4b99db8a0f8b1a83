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

package uci

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
)

// fake is a connector that records every call made to it
type fake struct {
	crit  sync.Mutex
	calls []string

	initialiseOK bool
	readyOK      bool
	resetOK      bool
	setupOK      bool
	recoverOK    bool
	pondering    bool
	colour       chess.Colour

	// moves returned by WaitForOpponentMove in order. when there are no more
	// moves WaitForOpponentMove fails
	moves []chess.Move

	// WaitForOpponentMove blocks until the context is cancelled
	block bool

	// the move returned by StopPondering
	ponderMove *chess.Move

	// the name of a method that should panic
	panicOn string

	predicted chess.Move
	setup     []chess.Position
	options   map[string]string
	shutdowns int
}

func newFake() *fake {
	return &fake{
		initialiseOK: true,
		readyOK:      true,
		resetOK:      true,
		setupOK:      true,
		recoverOK:    true,
		colour:       chess.White,
		options:      make(map[string]string),
	}
}

func (f *fake) record(call string) {
	f.crit.Lock()
	f.calls = append(f.calls, call)
	f.crit.Unlock()
	if f.panicOn == call {
		panic(fmt.Sprintf("%s panicked", call))
	}
}

func (f *fake) callCount() int {
	f.crit.Lock()
	defer f.crit.Unlock()
	return len(f.calls)
}

func (f *fake) resetCalls() {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.calls = nil
}

func (f *fake) called(call string) int {
	f.crit.Lock()
	defer f.crit.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fake) Name() string {
	return "Fake"
}

func (f *fake) Author() string {
	return "Test"
}

func (f *fake) EngineColour() chess.Colour {
	f.record("EngineColour")
	return f.colour
}

func (f *fake) Capabilities() connector.Capabilities {
	f.record("Capabilities")
	return connector.Capabilities{Pondering: f.pondering, Options: true}
}

func (f *fake) Initialise() bool {
	f.record("Initialise")
	return f.initialiseOK
}

func (f *fake) IsReady() bool {
	f.record("IsReady")
	return f.readyOK
}

func (f *fake) ReadBoard() (chess.Position, error) {
	f.record("ReadBoard")
	return chess.NewPosition(), nil
}

func (f *fake) ResetGame() bool {
	f.record("ResetGame")
	return f.resetOK
}

func (f *fake) SetupPosition(pos chess.Position) bool {
	f.record("SetupPosition")
	f.setup = append(f.setup, pos)
	return f.setupOK
}

func (f *fake) ExecuteMove(_ chess.Move) bool {
	f.record("ExecuteMove")
	return true
}

func (f *fake) WaitForOpponentMove(ctx context.Context, _ *chess.Position, _ time.Duration) (chess.Move, bool) {
	f.record("WaitForOpponentMove")
	if f.block {
		<-ctx.Done()
		return chess.Move{}, false
	}
	if len(f.moves) == 0 {
		return chess.Move{}, false
	}
	mv := f.moves[0]
	f.moves = f.moves[1:]
	return mv, true
}

func (f *fake) IsOpponentThinking() bool {
	f.record("IsOpponentThinking")
	return false
}

func (f *fake) StopCalculation() bool {
	f.record("StopCalculation")
	return true
}

func (f *fake) StartPondering(predicted chess.Move) bool {
	f.record("StartPondering")
	f.predicted = predicted
	return f.pondering
}

func (f *fake) StopPondering() (chess.Move, bool) {
	f.record("StopPondering")
	if f.ponderMove == nil {
		return chess.Move{}, false
	}
	return *f.ponderMove, true
}

func (f *fake) SupportsPondering() bool {
	f.record("SupportsPondering")
	return f.pondering
}

func (f *fake) AttemptRecovery() bool {
	f.record("AttemptRecovery")
	return f.recoverOK
}

func (f *fake) LastError() error {
	return nil
}

func (f *fake) SetOption(name string, value string) bool {
	f.record("SetOption")
	if name == "Reject" {
		return false
	}
	f.options[name] = value
	return true
}

func (f *fake) DeclaredOptions() []connector.Option {
	f.record("DeclaredOptions")
	return []connector.Option{
		{Name: "Think Time", Type: connector.Spin, Default: "100", Min: 0, Max: 1000},
		{Name: "Engine Colour", Type: connector.Combo, Default: "white", Vars: []string{"white", "black"}},
	}
}

func (f *fake) Shutdown() {
	f.record("Shutdown")
	f.shutdowns++
}
