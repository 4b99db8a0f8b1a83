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

// Phase is the phase of the protocol session.
type Phase int

// List of valid Phase values.
const (
	// the connector is being initialised
	Initializing Phase = iota

	// the connector is ready for a new game
	GameReady

	// a new game is being set up
	Configuring

	// the backend is calculating its move
	Computing

	// the backend is calculating during the opponent's time
	Pondering

	// the backend is waiting for the opponent's move
	Observing

	// the connector has failed. recovery is attempted with isready
	Error

	// the session is ending. no further commands are accepted
	Terminating
)

// Phases lists every phase.
var Phases = [...]Phase{Initializing, GameReady, Configuring, Computing, Pondering, Observing, Error, Terminating}

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "INITIALIZING"
	case GameReady:
		return "GAME_READY"
	case Configuring:
		return "CONFIGURING"
	case Computing:
		return "COMPUTING"
	case Pondering:
		return "PONDERING"
	case Observing:
		return "OBSERVING"
	case Error:
		return "ERROR"
	case Terminating:
		return "TERMINATING"
	}
	return "UNKNOWN"
}

// the commands that can be handled in each phase. any command not listed for
// a phase is a protocol violation and is ignored.
var validCommands = map[Phase][]string{
	Initializing: {CmdUCI, CmdIsReady, CmdQuit},
	GameReady:    {CmdUCI, CmdIsReady, CmdUCINewGame, CmdPosition, CmdGo, CmdSetOption, CmdQuit},
	Configuring:  {CmdIsReady, CmdStop, CmdQuit},
	Computing:    {CmdUCI, CmdIsReady, CmdUCINewGame, CmdPosition, CmdGo, CmdStop, CmdSetOption, CmdQuit},
	Pondering:    {CmdIsReady, CmdPonderHit, CmdStop, CmdQuit},
	Observing:    {CmdUCI, CmdIsReady, CmdUCINewGame, CmdPosition, CmdGo, CmdStop, CmdSetOption, CmdQuit},
	Error:        {CmdIsReady, CmdQuit},
	Terminating:  {},
}

// Valid returns true if the command can be handled in the phase.
func (p Phase) Valid(command string) bool {
	for _, c := range validCommands[p] {
		if c == command {
			return true
		}
	}
	return false
}
