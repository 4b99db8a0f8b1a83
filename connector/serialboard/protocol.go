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
	"bufio"
	"io"
	"strings"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/curated"
)

// Sentinel errors returned by the protocol type.
const (
	DeviceError    = "serialboard: device: %v"
	DeviceRejected = "serialboard: device rejected %s: %s"
	BadResponse    = "serialboard: unexpected response to %s: %q"
)

// the single line requests understood by the device.
const (
	reqPing  = "P"
	reqBoard = "B"
	reqMove  = "M"
	reqNew   = "N"
)

const (
	respOK    = "OK"
	respError = "ERR"
)

// protocol is the line protocol spoken by the board. Every request is a single
// line and is answered with a single line.
type protocol struct {
	rw io.ReadWriter
	rd *bufio.Reader
}

func newProtocol(rw io.ReadWriter) *protocol {
	return &protocol{
		rw: rw,
		rd: bufio.NewReader(rw),
	}
}

func (p *protocol) request(req string) (string, error) {
	if _, err := io.WriteString(p.rw, req+"\n"); err != nil {
		return "", curated.Errorf(DeviceError, err)
	}

	resp, err := p.rd.ReadString('\n')
	if err != nil {
		return "", curated.Errorf(DeviceError, err)
	}
	resp = strings.TrimRight(resp, "\r\n")

	if strings.HasPrefix(resp, respError) {
		return "", curated.Errorf(DeviceRejected, req, strings.TrimSpace(strings.TrimPrefix(resp, respError)))
	}

	return resp, nil
}

// requests that are answered with OK.
func (p *protocol) simple(req string) error {
	resp, err := p.request(req)
	if err != nil {
		return err
	}
	if resp != respOK {
		return curated.Errorf(BadResponse, req, resp)
	}
	return nil
}

func (p *protocol) ping() error {
	return p.simple(reqPing)
}

func (p *protocol) newGame() error {
	return p.simple(reqNew)
}

func (p *protocol) showMove(mv chess.Move) error {
	return p.simple(reqMove + " " + mv.String())
}

func (p *protocol) board() (chess.Position, error) {
	resp, err := p.request(reqBoard)
	if err != nil {
		return chess.Position{}, err
	}
	pos, err := decodeBoard(resp)
	if err != nil {
		return chess.Position{}, curated.Errorf(BadResponse, reqBoard, resp)
	}
	return pos, nil
}

// decodeBoard converts the 64 character board description sent by the device
// to a position. Squares are listed from a8 to h8 and then rank by rank down
// to a1 to h1. Empty squares are represented by the '.' character and pieces
// by their FEN letter.
func decodeBoard(s string) (chess.Position, error) {
	if len(s) != 64 {
		return chess.Position{}, curated.Errorf(chess.InvalidFEN, s)
	}

	pos := chess.EmptyPosition()
	for i := 0; i < 64; i++ {
		pc, ok := chess.PieceFromLetter(s[i])
		if !ok {
			return chess.Position{}, curated.Errorf(chess.InvalidFEN, s)
		}
		pos.Board[chess.NewSquare(i%8, 7-i/8)] = pc
	}

	return pos, nil
}
