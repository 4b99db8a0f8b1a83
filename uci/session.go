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
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/environment"
)

// Sentinel errors. Errors are logged and never stop the session.
const (
	ProtocolViolation = "uci: %s not valid in phase %s"
	UnknownCommand    = "uci: unrecognised command: %s"
	MalformedCommand  = "uci: malformed command: %v"
	ConnectorFailure  = "uci: connector failure: %s"
)

// DefaultMoveTimeout is the maximum amount of time to wait for the backend to
// make its move.
const DefaultMoveTimeout = 180 * time.Second

// the number of lines that can be waiting for the dispatcher.
const inputQueueLength = 64

// Session is a protocol session. Commands are processed one at a time and in
// the order they are received. The tracked position and the phase are only
// ever changed by the goroutine processing commands.
type Session struct {
	env   *environment.Environment
	conn  connector.Connector
	rules chess.Rules
	out   io.Writer

	moveTimeout time.Duration
	observers   []Observer

	phase    Phase
	position chess.Position

	// the last move applied to the tracked position. the zero value if the
	// position has been set without any moves
	lastMove chess.Move

	// blocking connector calls are made with a context that is cancelled by
	// the input goroutine when a stop or quit command arrives
	crit       sync.Mutex
	base       context.Context
	cancel     context.CancelFunc
	interrupts int

	shutdown sync.Once
}

// NewSession is the preferred method of initialisation for the Session type.
// Responses are written to the io.Writer.
func NewSession(env *environment.Environment, conn connector.Connector, out io.Writer) *Session {
	return &Session{
		env:         env,
		conn:        conn,
		rules:       chess.Standard{},
		out:         out,
		moveTimeout: DefaultMoveTimeout,
		phase:       Initializing,
		position:    chess.NewPosition(),
		base:        context.Background(),
	}
}

// SetMoveTimeout changes the maximum amount of time to wait for the backend to
// make its move. Should not be called once Run() has started.
func (s *Session) SetMoveTimeout(d time.Duration) {
	s.moveTimeout = d
}

// AddObserver adds an observer to the session. Should not be called once
// Run() has started.
func (s *Session) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
	o.UpdateStatus(s.Status())
}

// Phase returns the current phase of the session.
func (s *Session) Phase() Phase {
	return s.phase
}

// Position returns the tracked position.
func (s *Session) Position() chess.Position {
	return s.position
}

// Status returns a snapshot of the session.
func (s *Session) Status() Status {
	st := Status{
		Session:   s.env.Session.String(),
		Connector: s.conn.Name(),
		Phase:     s.phase.String(),
		FEN:       s.position.FEN(),
		Updated:   time.Now(),
	}
	if s.lastMove != (chess.Move{}) {
		st.LastMove = s.lastMove.String()
	}
	return st
}

func (s *Session) publish() {
	st := s.Status()
	for _, o := range s.observers {
		o.UpdateStatus(st)
	}
}

func (s *Session) log(detail any) {
	s.env.Log.Log(s.env, "uci", detail)
}

func (s *Session) logf(detail string, args ...any) {
	s.env.Log.Logf(s.env, "uci", detail, args...)
}

// respond writes a line of output to the protocol client.
func (s *Session) respond(response string, args ...any) {
	r := fmt.Sprintf(response, args...)
	s.env.Log.Logf(s.env, "uci", "<< %s", r)
	fmt.Fprintln(s.out, r)
}

func (s *Session) transition(p Phase) {
	if s.phase == p {
		return
	}
	s.env.Log.Logf(s.env, "phase", "%s -> %s", s.phase, p)
	s.phase = p
	s.publish()
}

func (s *Session) setPosition(pos chess.Position, lastMove chess.Move) {
	s.position = pos
	s.lastMove = lastMove
	s.publish()
}

// connectorFailure creates an error for a failed connector operation.
func (s *Session) connectorFailure(operation string) error {
	if err := s.conn.LastError(); err != nil {
		return curated.Errorf(ConnectorFailure, fmt.Sprintf("%s: %v", operation, err))
	}
	return curated.Errorf(ConnectorFailure, operation)
}

// blocking returns the context to be used for a blocking connector call. The
// context is cancelled if a stop or quit command arrives while the call is in
// progress, or if one has arrived but not yet been processed. The returned
// function must be called when the call is complete.
func (s *Session) blocking() (context.Context, func()) {
	s.crit.Lock()
	defer s.crit.Unlock()

	ctx, cancel := context.WithCancel(s.base)
	if s.interrupts > 0 {
		cancel()
	}
	s.cancel = cancel

	return ctx, func() {
		s.crit.Lock()
		defer s.crit.Unlock()
		cancel()
		s.cancel = nil
	}
}

// interrupt any blocking connector call. called by the input goroutine.
func (s *Session) interrupt() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.interrupts++
	if s.cancel != nil {
		s.cancel()
	}
}

// acknowledge an interrupt. called by the dispatcher when it processes the
// command that caused the interrupt.
func (s *Session) acknowledge() {
	s.crit.Lock()
	defer s.crit.Unlock()
	if s.interrupts > 0 {
		s.interrupts--
	}
}

// Initialise the connector. The session is in the GameReady phase on success
// and in the Error phase on failure. Called by Run() before any commands are
// processed.
func (s *Session) Initialise() bool {
	s.transition(Initializing)

	err := s.protect("initialise", func() error {
		if !s.conn.Initialise() {
			return s.connectorFailure("initialise")
		}
		return nil
	})

	if err != nil {
		s.log(err)
		s.transition(Error)
		return false
	}

	s.transition(GameReady)
	return true
}

// protect runs the function and recovers from any panic. a panic is returned
// as a ConnectorFailure error.
func (s *Session) protect(operation string, f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf(ConnectorFailure, fmt.Sprintf("%s: panic: %v", operation, r))
		}
	}()
	return f()
}

// Handle a single line of input. Lines are normally provided by Run() but
// Handle() can be called directly if the session is being driven by
// something other than an io.Reader.
func (s *Session) Handle(line string) {
	cmd, ok := ParseCommand(line)
	if !ok {
		return
	}

	s.logf(">> %s", cmd)

	if !known(cmd.Name) {
		s.log(curated.Errorf(UnknownCommand, cmd.Name))
		return
	}

	if !s.phase.Valid(cmd.Name) {
		s.log(curated.Errorf(ProtocolViolation, cmd.Name, s.phase))
		return
	}

	err := s.protect(cmd.Name, func() error {
		return s.dispatch(cmd)
	})
	if err == nil {
		return
	}

	s.log(err)
	if curated.Is(err, MalformedCommand) {
		return
	}
	if s.phase != Terminating {
		s.transition(Error)
	}
}

func (s *Session) dispatch(cmd Command) error {
	switch cmd.Name {
	case CmdUCI:
		return s.handleUCI(cmd)
	case CmdIsReady:
		return s.handleIsReady(cmd)
	case CmdUCINewGame:
		return s.handleNewGame(cmd)
	case CmdPosition:
		return s.handlePosition(cmd)
	case CmdGo:
		return s.handleGo(cmd)
	case CmdStop:
		return s.handleStop(cmd)
	case CmdPonderHit:
		return s.handlePonderHit(cmd)
	case CmdSetOption:
		return s.handleSetOption(cmd)
	case CmdQuit:
		s.Terminate()
		return nil
	}
	return curated.Errorf(UnknownCommand, cmd.Name)
}

// Terminate the session. The connector is shut down and the environment is
// flushed. Terminate can be called more than once but only the first call
// has any effect.
func (s *Session) Terminate() {
	if s.phase == Terminating {
		return
	}
	s.transition(Terminating)

	s.shutdown.Do(func() {
		err := s.protect("shutdown", func() error {
			s.conn.Shutdown()
			return nil
		})
		if err != nil {
			s.log(err)
		}
	})

	if err := s.env.Flush(); err != nil {
		s.log(err)
	}
}

// Run the session. The connector is initialised and then commands are read
// from the io.Reader until the quit command is received, the end of input is
// reached or the context is cancelled. The session is always terminated when
// Run() returns.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.crit.Lock()
	s.base = ctx
	s.crit.Unlock()

	s.Initialise()

	lines := make(chan string, inputQueueLength)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := scanner.Text()

			if cmd, ok := ParseCommand(line); ok && (cmd.Name == CmdStop || cmd.Name == CmdQuit) {
				s.interrupt()
			}

			select {
			case lines <- line:
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			s.Terminate()
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				s.log("end of input")
				s.Terminate()
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}

			if cmd, ok := ParseCommand(line); ok && (cmd.Name == CmdStop || cmd.Name == CmdQuit) {
				s.acknowledge()
			}

			s.Handle(line)

			if s.phase == Terminating {
				return nil
			}
		}
	}
}
