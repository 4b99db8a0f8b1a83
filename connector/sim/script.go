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

package sim

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/chessbridge/curated"
)

// Sentinel error returned by the chooser type.
const ScriptError = "sim: script: %v"

// the name of the Lua function that chooses a move.
const chooseFunction = "choose"

// chooser delegates the choice of move to a Lua script. The script must
// define a global function that takes the position as a FEN string and a
// table of possible moves in UCI notation. It returns one of the moves:
//
//	function choose(fen, moves)
//		return moves[#moves]
//	end
type chooser struct {
	state *lua.LState
}

func newChooser(filename string) (*chooser, error) {
	L := lua.NewState()
	if err := L.DoFile(filename); err != nil {
		L.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	return newChooserFromState(L)
}

func newChooserFromString(source string) (*chooser, error) {
	L := lua.NewState()
	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	return newChooserFromState(L)
}

func newChooserFromState(L *lua.LState) (*chooser, error) {
	if L.GetGlobal(chooseFunction).Type() != lua.LTFunction {
		L.Close()
		return nil, curated.Errorf(ScriptError, "no choose() function")
	}
	return &chooser{state: L}, nil
}

func (ch *chooser) choose(fen string, moves []string) (string, error) {
	tbl := ch.state.NewTable()
	for _, m := range moves {
		tbl.Append(lua.LString(m))
	}

	err := ch.state.CallByParam(lua.P{
		Fn:      ch.state.GetGlobal(chooseFunction),
		NRet:    1,
		Protect: true,
	}, lua.LString(fen), tbl)
	if err != nil {
		return "", curated.Errorf(ScriptError, err)
	}

	ret := ch.state.Get(-1)
	ch.state.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok {
		return "", curated.Errorf(ScriptError, "choose() did not return a string")
	}

	return string(s), nil
}

func (ch *chooser) close() {
	ch.state.Close()
}
