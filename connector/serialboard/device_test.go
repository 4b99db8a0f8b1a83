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
	"net"
	"strings"
	"sync"

	"github.com/jetsetilly/chessbridge/chess"
)

// encodeBoard is the reverse of decodeBoard.
func encodeBoard(pos chess.Position) string {
	b := make([]byte, 64)
	for i := range b {
		pc := pos.Board[chess.NewSquare(i%8, 7-i/8)]
		if pc.Empty() {
			b[i] = '.'
		} else {
			b[i] = pc.Letter()
		}
	}
	return string(b)
}

// device is a fake electronic board on the other end of a net.Pipe
type device struct {
	crit   sync.Mutex
	pos    chess.Position
	shown  []string
	log    []string
	broken bool
}

func newDevice() *device {
	return &device{pos: chess.NewPosition()}
}

// opener returns an Opener that connects to the device
func (dev *device) opener() Opener {
	return func(_ string, _ int) (io.ReadWriteCloser, error) {
		client, server := net.Pipe()
		go dev.serve(server)
		return client, nil
	}
}

func (dev *device) serve(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		req := scanner.Text()

		dev.crit.Lock()
		dev.log = append(dev.log, req)

		var resp string
		switch {
		case dev.broken:
			resp = "ERR broken"
		case req == "P":
			resp = "OK"
		case req == "B":
			resp = encodeBoard(dev.pos)
		case req == "N":
			dev.pos = chess.NewPosition()
			resp = "OK"
		case strings.HasPrefix(req, "M "):
			dev.shown = append(dev.shown, strings.TrimPrefix(req, "M "))
			resp = "OK"
		default:
			resp = "ERR unknown request"
		}
		dev.crit.Unlock()

		if _, err := io.WriteString(conn, resp+"\r\n"); err != nil {
			return
		}
	}
}

// play a move on the board as though a person had moved the pieces
func (dev *device) play(mv chess.Move) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.pos = chess.Standard{}.Apply(dev.pos, mv)
}

func (dev *device) setPosition(pos chess.Position) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.pos = pos
}

func (dev *device) setBroken(broken bool) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.broken = broken
}

func (dev *device) shownMoves() []string {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	c := make([]string, len(dev.shown))
	copy(c, dev.shown)
	return c
}
