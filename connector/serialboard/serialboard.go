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

package serialboard

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/inference"
	"github.com/jetsetilly/chessbridge/prefs"
)

// Name of the connector as used by the connector registry.
const Name = "serialboard"

// Sentinel errors recorded by the Board type and returned by LastError().
const (
	NotConnected     = "serialboard: not connected"
	PositionMismatch = "serialboard: board does not show position: %s"
)

// the amount of time to wait for a response from the device.
const readTimeout = 2 * time.Second

// a person has to make moves on a physical board so the poller waits much
// longer than the default for the board to show the expected position.
const syncTimeout = 60 * time.Second

func init() {
	connector.Register(Name, func(env *environment.Environment) (connector.Connector, error) {
		return NewBoard(env, OpenTerm)
	})
}

// Opener opens the named device at the specified baud rate.
type Opener func(device string, baud int) (io.ReadWriteCloser, error)

// OpenTerm opens a serial device in raw mode with the pkg/term package.
func OpenTerm(device string, baud int) (io.ReadWriteCloser, error) {
	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}
	if err := t.SetReadTimeout(readTimeout); err != nil {
		t.Close()
		return nil, curated.Errorf(DeviceError, err)
	}
	return t, nil
}

// Board is a connector for an electronic chess board attached to a serial
// port. The board reports the pieces it can sense and can indicate a move
// with its lights. Moves for the backend side are made on the board by a
// person.
type Board struct {
	connector.Unsupported

	env    *environment.Environment
	opts   *connector.Options
	poller *connector.Poller
	open   Opener

	device prefs.String
	baud   prefs.Int
	colour prefs.String
	poll   prefs.Int

	crit    sync.Mutex
	port    io.ReadWriteCloser
	proto   *protocol
	lastErr error
}

// NewBoard is the preferred method of initialisation for the Board type. The
// device is not opened until Initialise() is called.
func NewBoard(env *environment.Environment, open Opener) (*Board, error) {
	brd := &Board{
		env:  env,
		opts: connector.NewOptions(Name, env.Prefs),
		open: open,
	}
	brd.poller = connector.NewPoller(env, Name, brd)
	brd.poller.SyncTimeout = syncTimeout

	brd.poll.SetHookPost(func(v prefs.Value) error {
		d := time.Duration(v.(int)) * time.Millisecond
		brd.poller.Interval = d
		brd.poller.SyncInterval = d
		return nil
	})

	decl := []connector.Option{
		{Name: "Device", Type: connector.String, Default: "/dev/ttyUSB0", Value: &brd.device},
		{Name: "Baud", Type: connector.Spin, Default: "9600", Min: 300, Max: 1000000, Value: &brd.baud},
		{Name: "Engine Colour", Type: connector.Combo, Default: "black", Vars: []string{"white", "black"}, Value: &brd.colour},
		{Name: "Poll Interval", Type: connector.Spin, Default: "500", Min: 1, Max: 5000, Value: &brd.poll},
	}
	for _, opt := range decl {
		if err := brd.opts.Add(opt); err != nil {
			return nil, err
		}
	}

	if err := brd.opts.Load(); err != nil {
		return nil, err
	}

	return brd, nil
}

// record failure. should be called with the critical section locked
func (brd *Board) fail(err error) bool {
	brd.lastErr = err
	brd.env.Log.Log(brd.env, Name, err)
	return false
}

// close the port. should be called with the critical section locked
func (brd *Board) disconnect() {
	if brd.port != nil {
		brd.port.Close()
	}
	brd.port = nil
	brd.proto = nil
}

// Name implements the connector.Connector interface.
func (brd *Board) Name() string {
	return "Chessbridge Serial Board"
}

// Author implements the connector.Connector interface.
func (brd *Board) Author() string {
	return "Chessbridge"
}

// EngineColour implements the connector.Connector interface.
func (brd *Board) EngineColour() chess.Colour {
	c, _ := chess.ParseColour(brd.colour.String())
	return c
}

// Capabilities implements the connector.Connector interface.
func (brd *Board) Capabilities() connector.Capabilities {
	return connector.Capabilities{
		Options: true,
	}
}

// Initialise implements the connector.Connector interface.
func (brd *Board) Initialise() bool {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	if brd.proto == nil {
		port, err := brd.open(brd.device.String(), brd.baud.Get().(int))
		if err != nil {
			return brd.fail(err)
		}
		brd.port = port
		brd.proto = newProtocol(port)
	}

	if err := brd.proto.ping(); err != nil {
		brd.disconnect()
		return brd.fail(err)
	}

	brd.lastErr = nil

	return true
}

// IsReady implements the connector.Connector interface.
func (brd *Board) IsReady() bool {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	if brd.proto == nil {
		return false
	}
	if err := brd.proto.ping(); err != nil {
		return brd.fail(err)
	}
	return true
}

// ReadBoard implements the connector.Connector and connector.BoardReader
// interfaces.
func (brd *Board) ReadBoard() (chess.Position, error) {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	if brd.proto == nil {
		return chess.Position{}, curated.Errorf(NotConnected)
	}
	return brd.proto.board()
}

// ResetGame implements the connector.Connector interface.
func (brd *Board) ResetGame() bool {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	if brd.proto == nil {
		return brd.fail(curated.Errorf(NotConnected))
	}
	if err := brd.proto.newGame(); err != nil {
		return brd.fail(err)
	}
	return true
}

// SetupPosition implements the connector.Connector interface. The pieces on
// a physical board can't be moved by the connector. If the board is one move
// behind the position then the move is indicated and the person at the board
// is expected to make it. Any other difference is a failure.
func (brd *Board) SetupPosition(pos chess.Position) bool {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	if brd.proto == nil {
		return brd.fail(curated.Errorf(NotConnected))
	}

	shown, err := brd.proto.board()
	if err != nil {
		return brd.fail(err)
	}

	if shown.PlacementEqual(pos) {
		return true
	}

	// the board shows the position before the last move
	shown.CopyState(pos)
	shown.Turn = pos.Turn.Other()
	shown.Castling = chess.AllCastling
	shown.EnPassant = chess.NoSquare
	res := inference.Infer(chess.Standard{}, shown, pos)
	if !res.Ok() {
		return brd.fail(curated.Errorf(PositionMismatch, pos.Placement()))
	}

	if err := brd.proto.showMove(res.Move); err != nil {
		return brd.fail(err)
	}

	return true
}

// ExecuteMove implements the connector.Connector interface. The move is shown
// on the board.
func (brd *Board) ExecuteMove(mv chess.Move) bool {
	brd.crit.Lock()
	defer brd.crit.Unlock()

	if brd.proto == nil {
		return brd.fail(curated.Errorf(NotConnected))
	}
	if err := brd.proto.showMove(mv); err != nil {
		return brd.fail(err)
	}
	return true
}

// WaitForOpponentMove implements the connector.Connector interface.
func (brd *Board) WaitForOpponentMove(ctx context.Context, expected *chess.Position, timeout time.Duration) (chess.Move, bool) {
	return brd.poller.Wait(ctx, expected, timeout)
}

// AttemptRecovery implements the connector.Connector interface. The device is
// closed and will be reopened by the next call to Initialise().
func (brd *Board) AttemptRecovery() bool {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	brd.disconnect()
	return true
}

// LastError implements the connector.Connector interface.
func (brd *Board) LastError() error {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	return brd.lastErr
}

// SetOption implements the connector.Connector interface.
func (brd *Board) SetOption(name string, value string) bool {
	return brd.opts.Set(name, value)
}

// DeclaredOptions implements the connector.Connector interface.
func (brd *Board) DeclaredOptions() []connector.Option {
	return brd.opts.Declared()
}

// Shutdown implements the connector.Connector interface.
func (brd *Board) Shutdown() {
	brd.crit.Lock()
	defer brd.crit.Unlock()
	brd.disconnect()
}
