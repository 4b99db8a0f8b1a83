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
	"time"
)

// Status is a snapshot of the session. A new Status is sent to every observer
// whenever the phase or the tracked position changes.
type Status struct {
	Session   string    `json:"session"`
	Connector string    `json:"connector"`
	Phase     string    `json:"phase"`
	FEN       string    `json:"fen"`
	LastMove  string    `json:"lastMove"`
	Updated   time.Time `json:"updated"`
}

// Observer is implemented by any type that wants to be told about changes to
// the session. UpdateStatus() is called from the session's goroutine and
// should not block.
type Observer interface {
	UpdateStatus(Status)
}
