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
	"strings"
)

// List of commands understood by the session.
const (
	CmdUCI        = "uci"
	CmdIsReady    = "isready"
	CmdUCINewGame = "ucinewgame"
	CmdPosition   = "position"
	CmdGo         = "go"
	CmdStop       = "stop"
	CmdPonderHit  = "ponderhit"
	CmdSetOption  = "setoption"
	CmdQuit       = "quit"
)

// Commands lists every command understood by the session.
var Commands = [...]string{CmdUCI, CmdIsReady, CmdUCINewGame, CmdPosition, CmdGo, CmdStop, CmdPonderHit, CmdSetOption, CmdQuit}

func known(command string) bool {
	for _, c := range Commands {
		if c == command {
			return true
		}
	}
	return false
}

// Command is a single line of input split into the command name and its
// arguments. The name is always lower case. Arguments are unchanged.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a line of input into a Command. Returns false if the
// line is empty.
func ParseCommand(line string) (Command, bool) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return Command{}, false
	}
	return Command{
		Name: strings.ToLower(f[0]),
		Args: f[1:],
	}, true
}

func (cmd Command) String() string {
	if len(cmd.Args) == 0 {
		return cmd.Name
	}
	return cmd.Name + " " + strings.Join(cmd.Args, " ")
}
