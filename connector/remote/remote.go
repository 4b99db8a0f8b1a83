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

package remote

import (
	"context"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/prefs"
)

// Name of the connector as used by the connector registry.
const Name = "remote"

// Sentinel errors recorded by the Remote type and returned by LastError().
const (
	NotConnected    = "remote: not connected"
	ConnectionError = "remote: %v"
	RequestRejected = "remote: %s request rejected: %s"
	BadResponse     = "remote: unexpected response to %s request: %s"
)

func init() {
	connector.Register(Name, func(env *environment.Environment) (connector.Connector, error) {
		return NewRemote(env)
	})
}

// Remote is a connector for a board observer running as a separate process.
// The observer owns the backend and is reached over a websocket.
type Remote struct {
	connector.Unsupported

	env    *environment.Environment
	opts   *connector.Options
	poller *connector.Poller

	url     prefs.String
	colour  prefs.String
	timeout prefs.Int
	poll    prefs.Int

	crit    sync.Mutex
	conn    *websocket.Conn
	lastErr error
}

// NewRemote is the preferred method of initialisation for the Remote type.
// The connection is not made until Initialise() is called.
func NewRemote(env *environment.Environment) (*Remote, error) {
	rem := &Remote{
		env:  env,
		opts: connector.NewOptions(Name, env.Prefs),
	}
	rem.poller = connector.NewPoller(env, Name, rem)

	rem.poll.SetHookPost(func(v prefs.Value) error {
		d := time.Duration(v.(int)) * time.Millisecond
		rem.poller.Interval = d
		rem.poller.SyncInterval = d
		return nil
	})

	decl := []connector.Option{
		{Name: "URL", Type: connector.String, Default: "ws://localhost:12700/observer", Value: &rem.url},
		{Name: "Engine Colour", Type: connector.Combo, Default: "white", Vars: []string{"white", "black"}, Value: &rem.colour},
		{Name: "Request Timeout", Type: connector.Spin, Default: "5000", Min: 100, Max: 60000, Value: &rem.timeout},
		{Name: "Poll Interval", Type: connector.Spin, Default: "500", Min: 1, Max: 5000, Value: &rem.poll},
	}
	for _, opt := range decl {
		if err := rem.opts.Add(opt); err != nil {
			return nil, err
		}
	}

	if err := rem.opts.Load(); err != nil {
		return nil, err
	}

	return rem, nil
}

// record failure. should be called with the critical section locked
func (rem *Remote) fail(err error) bool {
	rem.lastErr = err
	rem.env.Log.Log(rem.env, Name, err)
	return false
}

func (rem *Remote) requestTimeout() time.Duration {
	return time.Duration(rem.timeout.Get().(int)) * time.Millisecond
}

// dial the observer. should be called with the critical section locked
func (rem *Remote) dial() error {
	ctx, cancel := context.WithTimeout(context.Background(), rem.requestTimeout())
	defer cancel()

	conn, _, err := websocket.Dial(ctx, rem.url.String(), nil)
	if err != nil {
		return curated.Errorf(ConnectionError, err)
	}
	rem.conn = conn

	return nil
}

// close the connection. should be called with the critical section locked
func (rem *Remote) hangup() {
	if rem.conn != nil {
		rem.conn.Close(websocket.StatusNormalClosure, "")
	}
	rem.conn = nil
}

// send a request and wait for the response. should be called with the
// critical section locked
func (rem *Remote) request(req Message) (Message, error) {
	if rem.conn == nil {
		return Message{}, curated.Errorf(NotConnected)
	}

	ctx, cancel := context.WithTimeout(context.Background(), rem.requestTimeout())
	defer cancel()

	if err := wsjson.Write(ctx, rem.conn, req); err != nil {
		rem.hangup()
		return Message{}, curated.Errorf(ConnectionError, err)
	}

	var resp Message
	if err := wsjson.Read(ctx, rem.conn, &resp); err != nil {
		rem.hangup()
		return Message{}, curated.Errorf(ConnectionError, err)
	}

	if resp.Type != req.Type {
		return Message{}, curated.Errorf(BadResponse, req.Type, resp.Type)
	}
	if !resp.OK {
		return Message{}, curated.Errorf(RequestRejected, req.Type, resp.Error)
	}

	return resp, nil
}

// send a request and record any failure
func (rem *Remote) simple(req Message) bool {
	rem.crit.Lock()
	defer rem.crit.Unlock()

	if _, err := rem.request(req); err != nil {
		return rem.fail(err)
	}
	return true
}

// Name implements the connector.Connector interface.
func (rem *Remote) Name() string {
	return "Chessbridge Remote Observer"
}

// Author implements the connector.Connector interface.
func (rem *Remote) Author() string {
	return "Chessbridge"
}

// EngineColour implements the connector.Connector interface.
func (rem *Remote) EngineColour() chess.Colour {
	c, _ := chess.ParseColour(rem.colour.String())
	return c
}

// Capabilities implements the connector.Connector interface.
func (rem *Remote) Capabilities() connector.Capabilities {
	return connector.Capabilities{
		Options: true,
	}
}

// Initialise implements the connector.Connector interface.
func (rem *Remote) Initialise() bool {
	rem.crit.Lock()
	defer rem.crit.Unlock()

	if rem.conn == nil {
		if err := rem.dial(); err != nil {
			return rem.fail(err)
		}
	}

	if _, err := rem.request(Message{Type: TypePing}); err != nil {
		return rem.fail(err)
	}

	rem.lastErr = nil

	return true
}

// IsReady implements the connector.Connector interface.
func (rem *Remote) IsReady() bool {
	return rem.simple(Message{Type: TypePing})
}

// ReadBoard implements the connector.Connector and connector.BoardReader
// interfaces.
func (rem *Remote) ReadBoard() (chess.Position, error) {
	rem.crit.Lock()
	defer rem.crit.Unlock()

	resp, err := rem.request(Message{Type: TypeBoard})
	if err != nil {
		return chess.Position{}, err
	}

	pos, err := chess.ParseFEN(resp.FEN)
	if err != nil {
		return chess.Position{}, curated.Errorf(BadResponse, TypeBoard, err)
	}

	return pos, nil
}

// ResetGame implements the connector.Connector interface.
func (rem *Remote) ResetGame() bool {
	return rem.simple(Message{Type: TypeReset})
}

// SetupPosition implements the connector.Connector interface.
func (rem *Remote) SetupPosition(pos chess.Position) bool {
	return rem.simple(Message{Type: TypeSetup, FEN: pos.FEN()})
}

// ExecuteMove implements the connector.Connector interface.
func (rem *Remote) ExecuteMove(mv chess.Move) bool {
	return rem.simple(Message{Type: TypeMove, Move: mv.String()})
}

// WaitForOpponentMove implements the connector.Connector interface.
func (rem *Remote) WaitForOpponentMove(ctx context.Context, expected *chess.Position, timeout time.Duration) (chess.Move, bool) {
	return rem.poller.Wait(ctx, expected, timeout)
}

// IsOpponentThinking implements the connector.Connector interface.
func (rem *Remote) IsOpponentThinking() bool {
	rem.crit.Lock()
	defer rem.crit.Unlock()

	resp, err := rem.request(Message{Type: TypeThinking})
	if err != nil {
		return rem.fail(err)
	}
	return resp.Thinking
}

// StopCalculation implements the connector.Connector interface.
func (rem *Remote) StopCalculation() bool {
	return rem.simple(Message{Type: TypeStop})
}

// AttemptRecovery implements the connector.Connector interface. The
// connection is closed and dialled again.
func (rem *Remote) AttemptRecovery() bool {
	rem.crit.Lock()
	defer rem.crit.Unlock()

	rem.hangup()
	if err := rem.dial(); err != nil {
		return rem.fail(err)
	}
	return true
}

// LastError implements the connector.Connector interface.
func (rem *Remote) LastError() error {
	rem.crit.Lock()
	defer rem.crit.Unlock()
	return rem.lastErr
}

// SetOption implements the connector.Connector interface.
func (rem *Remote) SetOption(name string, value string) bool {
	return rem.opts.Set(name, value)
}

// DeclaredOptions implements the connector.Connector interface.
func (rem *Remote) DeclaredOptions() []connector.Option {
	return rem.opts.Declared()
}

// Shutdown implements the connector.Connector interface.
func (rem *Remote) Shutdown() {
	rem.crit.Lock()
	defer rem.crit.Unlock()
	rem.hangup()
}
