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

// List of message types. Every request is answered by a response of the same
// type.
const (
	TypePing     = "ping"
	TypeBoard    = "board"
	TypeReset    = "reset"
	TypeSetup    = "setup"
	TypeMove     = "move"
	TypeThinking = "thinking"
	TypeStop     = "stop"
)

// Message is the JSON envelope used for both requests and responses.
//
// Requests of type setup carry the position in the FEN field. Requests of type
// move carry the move in UCI notation in the Move field. Responses of type
// board carry the observed position in the FEN field. Responses of type
// thinking indicate whether the remote program is thinking in the Thinking
// field. A response with OK set to false can describe the problem in the
// Error field.
type Message struct {
	Type     string `json:"type"`
	FEN      string `json:"fen,omitempty"`
	Move     string `json:"move,omitempty"`
	OK       bool   `json:"ok"`
	Thinking bool   `json:"thinking,omitempty"`
	Error    string `json:"error,omitempty"`
}
