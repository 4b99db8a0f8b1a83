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
)

// Capabilities of a connector that the protocol session needs to know about
// before it makes a call.
type Capabilities struct {
	Pondering bool
	Options   bool
}

// BoardReader is implemented by any type that can take a snapshot of the
// board. The snapshot need only be accurate in its piece placement.
type BoardReader interface {
	ReadBoard() (chess.Position, error)
}

// Connector is the capability interface for a game backend. A backend is
// driven through its own interface (an emulator, an electronic board, a
// remote observer) but can only ever be observed through board snapshots.
//
// Adapters should embed the Unsupported type, which provides suitable
// defaults for the optional operations.
type Connector interface {
	BoardReader

	Name() string
	Author() string

	// the colour played by the backend. the protocol client plays the other
	// colour
	EngineColour() chess.Colour

	Capabilities() Capabilities

	// Initialise the backend. Initialise may be called more than once during
	// the lifetime of the connector, for example to recover from an error
	Initialise() bool
	IsReady() bool

	ResetGame() bool
	SetupPosition(pos chess.Position) bool

	// ExecuteMove plays a move on the backend on behalf of the protocol
	// client
	ExecuteMove(mv chess.Move) bool

	// WaitForOpponentMove blocks until the backend has made a move, the
	// timeout expires or the context is cancelled. The expected position is
	// the position the backend should be showing before it moves. It can be
	// nil.
	WaitForOpponentMove(ctx context.Context, expected *chess.Position, timeout time.Duration) (chess.Move, bool)
	IsOpponentThinking() bool

	StopCalculation() bool
	StartPondering(predicted chess.Move) bool
	StopPondering() (chess.Move, bool)
	SupportsPondering() bool

	AttemptRecovery() bool

	// LastError returns the reason for the most recent failure, if known
	LastError() error

	SetOption(name string, value string) bool
	DeclaredOptions() []Option

	// Shutdown is called exactly once by the protocol session
	Shutdown()
}
