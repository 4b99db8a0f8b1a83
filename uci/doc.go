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

// Package uci implements the engine side of the Universal Chess Interface
// protocol. A Session reads commands from the protocol client, one per line,
// and drives a connector.Connector in response.
//
// The session is always in one of the phases listed by the Phase type. Each
// phase has a set of valid commands and a command received in any other phase
// is logged and ignored. Errors from the connector move the session to the
// Error phase, from which the isready command attempts recovery. Nothing about
// the session is ever fatal except the quit command and the end of input.
//
// The session tracks the position of the game independently of the backend.
// The tracked position is set by the position and ucinewgame commands and is
// advanced by the move made by the backend in response to the go command.
// Moves from the backend are checked against the tracked position before they
// are sent to the client as a bestmove response.
//
// The stop and quit commands are noticed as soon as they are read, even if
// the session is waiting for the backend, by cancelling the context given to
// the connector's blocking calls.
package uci
