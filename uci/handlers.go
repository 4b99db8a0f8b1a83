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
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/curated"
)

// OptionDeclaration returns the option line sent to the protocol client in
// response to the uci command.
func OptionDeclaration(opt connector.Option) string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "option name %s type %s", opt.Name, opt.Type)

	switch opt.Type {
	case connector.Button:
	case connector.String:
		if opt.Default == "" {
			s.WriteString(" default <empty>")
		} else {
			fmt.Fprintf(&s, " default %s", opt.Default)
		}
	default:
		if opt.Default != "" {
			fmt.Fprintf(&s, " default %s", opt.Default)
		}
	}

	if opt.Type == connector.Spin {
		fmt.Fprintf(&s, " min %d max %d", opt.Min, opt.Max)
	}

	for _, v := range opt.Vars {
		fmt.Fprintf(&s, " var %s", v)
	}

	return s.String()
}

func (s *Session) handleUCI(_ Command) error {
	s.respond("id name %s", s.conn.Name())
	s.respond("id author %s", s.conn.Author())
	for _, opt := range s.conn.DeclaredOptions() {
		s.respond(OptionDeclaration(opt))
	}
	s.respond("uciok")
	return nil
}

func (s *Session) handleIsReady(_ Command) error {
	if s.phase == Error {
		if !s.conn.AttemptRecovery() {
			s.log(s.connectorFailure("recovery"))
		}

		// initialisation is tried even when recovery fails. the session
		// remains in the error phase if that fails too
		if !s.Initialise() {
			if s.conn.IsReady() {
				s.respond("readyok")
			}
			return nil
		}
	}

	if s.conn.IsReady() {
		if s.phase == Initializing {
			s.transition(GameReady)
		}
		s.respond("readyok")
		return nil
	}

	if !s.conn.Initialise() {
		return s.connectorFailure("initialise")
	}

	s.transition(GameReady)
	s.respond("readyok")

	return nil
}

func (s *Session) handleNewGame(_ Command) error {
	s.transition(Configuring)

	if !s.conn.ResetGame() {
		return s.connectorFailure("reset game")
	}

	s.setPosition(chess.NewPosition(), chess.Move{})

	if s.conn.EngineColour() == chess.White {
		s.transition(Computing)
	} else {
		s.transition(Observing)
	}

	return nil
}

// parsePosition parses the arguments of the position command. the tracked
// position is not changed.
func (s *Session) parsePosition(args []string) (chess.Position, chess.Move, error) {
	if len(args) == 0 {
		return chess.Position{}, chess.Move{}, fmt.Errorf("position: no arguments")
	}

	var pos chess.Position
	var rest []string

	switch strings.ToLower(args[0]) {
	case "startpos":
		pos = chess.NewPosition()
		rest = args[1:]

	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		var err error
		pos, err = chess.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			return chess.Position{}, chess.Move{}, err
		}
		rest = args[i:]

	default:
		return chess.Position{}, chess.Move{}, fmt.Errorf("position: unexpected %s", args[0])
	}

	var last chess.Move

	if len(rest) == 0 {
		return pos, last, nil
	}

	if strings.ToLower(rest[0]) != "moves" {
		return chess.Position{}, chess.Move{}, fmt.Errorf("position: unexpected %s", rest[0])
	}

	for _, tok := range rest[1:] {
		mv, err := chess.ParseMove(tok)
		if err != nil {
			return chess.Position{}, chess.Move{}, err
		}
		if !s.rules.Legal(pos, mv) {
			return chess.Position{}, chess.Move{}, fmt.Errorf("position: illegal move %s in %s", mv, pos.FEN())
		}
		pos = s.rules.Apply(pos, mv)
		last = mv
	}

	return pos, last, nil
}

func (s *Session) handlePosition(cmd Command) error {
	pos, last, err := s.parsePosition(cmd.Args)
	if err != nil {
		return curated.Errorf(MalformedCommand, err)
	}
	s.setPosition(pos, last)
	return nil
}

func (s *Session) handleGo(cmd Command) error {
	ponder := false
	for _, a := range cmd.Args {
		if strings.ToLower(a) == "ponder" {
			ponder = true
		}
	}

	if ponder && s.conn.SupportsPondering() {
		s.transition(Pondering)
		if !s.conn.SetupPosition(s.position) {
			return s.connectorFailure("setup position")
		}
		if !s.conn.StartPondering(s.lastMove) {
			return s.connectorFailure("start pondering")
		}
		return nil
	}

	if ponder {
		s.log("connector does not support pondering")
	}

	s.transition(Computing)
	if !s.conn.SetupPosition(s.position) {
		return s.connectorFailure("setup position")
	}

	s.completeTurn()

	return nil
}

// completeTurn waits for the backend to make its move. the move is sent to
// the protocol client and applied to the tracked position. the session is in
// the Observing phase afterwards whether or not a move was made.
func (s *Session) completeTurn() {
	ctx, done := s.blocking()
	defer done()

	expected := s.position
	mv, ok := s.conn.WaitForOpponentMove(ctx, &expected, s.moveTimeout)
	if !ok {
		// interrupted by stop or quit. the stop command itself arrives once
		// the phase is observing so calculation is halted here
		if errors.Is(ctx.Err(), context.Canceled) {
			if !s.conn.StopCalculation() {
				s.log("connector could not stop calculation")
			}
		} else {
			s.log("no move from connector")
		}
		s.transition(Observing)
		return
	}

	if !s.rules.Legal(s.position, mv) {
		s.logf("connector move %s is not legal in %s", mv, s.position.FEN())
		s.transition(Observing)
		return
	}

	s.respond("bestmove %s", mv)
	s.setPosition(s.rules.Apply(s.position, mv), mv)
	s.transition(Observing)
}

func (s *Session) handleStop(_ Command) error {
	switch s.phase {
	case Computing:
		if !s.conn.StopCalculation() {
			s.log("connector could not stop calculation")
		}
		s.transition(Observing)

	case Pondering:
		if mv, ok := s.conn.StopPondering(); ok {
			s.respond("bestmove %s", mv)
		}
		s.transition(Observing)

	case Configuring:
		s.transition(GameReady)
	}

	return nil
}

func (s *Session) handlePonderHit(_ Command) error {
	s.transition(Computing)
	s.completeTurn()
	return nil
}

func (s *Session) handleSetOption(cmd Command) error {
	if len(cmd.Args) < 2 || strings.ToLower(cmd.Args[0]) != "name" {
		return curated.Errorf(MalformedCommand, cmd)
	}

	i := 1
	for i < len(cmd.Args) && strings.ToLower(cmd.Args[i]) != "value" {
		i++
	}

	name := strings.Join(cmd.Args[1:i], " ")
	if name == "" {
		return curated.Errorf(MalformedCommand, cmd)
	}

	var value string
	if i < len(cmd.Args) {
		value = strings.Join(cmd.Args[i+1:], " ")
	}

	if !s.conn.SetOption(name, value) {
		s.logf("option not set: %s = %s", name, value)
	}

	return nil
}
