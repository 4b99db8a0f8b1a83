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

package environment_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/logger"
	"github.com/jetsetilly/chessbridge/prefs"
	"github.com/jetsetilly/chessbridge/test"
)

func TestEnvironment(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainSession, "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainSession())
	test.ExpectInequality(t, env.Session, uuid.Nil)

	other, err := environment.NewEnvironment("other", "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.IsMainSession())
	test.ExpectInequality(t, env.Session, other.Session)
}

func TestQuiet(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainSession, "")
	test.DemandSuccess(t, err)

	env.Log.Log(env, "tag", "logged")
	env.Quiet(true)
	env.Log.Log(env, "tag", "not logged")
	env.Quiet(false)

	w := &strings.Builder{}
	env.Log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: logged\n")

	// the logger.Allow permission ignores the quiet flag
	env.Quiet(true)
	env.Log.Log(logger.Allow, "tag", "allowed")
	test.ExpectEquality(t, len(env.Log.Entries(-1)), 2)
}

func TestFlush(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "preferences")

	env, err := environment.NewEnvironment(environment.MainSession, pth)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.DemandSuccess(t, env.Prefs.Add("test", &v))
	test.DemandSuccess(t, v.Set("value"))

	w := &test.CompareWriter{}
	env.SetLogOutput(w)
	env.Log.Log(env, "uci", "uciok")
	test.DemandSuccess(t, env.Flush())
	test.ExpectEquality(t, w.String(), "uci: uciok\n")

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "test :: value"))
}

func TestLogOutput(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainSession, "")
	test.DemandSuccess(t, err)

	// each entry reaches the writer without the environment being flushed
	w := &test.CompareWriter{}
	env.SetLogOutput(w)
	env.Log.Log(env, "uci", "uciok")
	test.ExpectEquality(t, w.String(), "uci: uciok\n")
	env.Log.Log(env, "phase", "INITIALIZING -> GAME_READY")
	test.ExpectEquality(t, w.String(), "uci: uciok\nphase: INITIALIZING -> GAME_READY\n")

	env.SetLogOutput(nil)
	env.Log.Log(env, "uci", "readyok")
	test.ExpectEquality(t, w.String(), "uci: uciok\nphase: INITIALIZING -> GAME_READY\n")
}

func TestDefaults(t *testing.T) {
	d, err := environment.LoadDefaults()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Connector, "sim")
	test.ExpectEquality(t, d.MoveTimeout, 180*time.Second)

	t.Setenv("CHESSBRIDGE_CONNECTOR", "remote")
	t.Setenv("CHESSBRIDGE_MOVE_TIMEOUT", "30s")
	t.Setenv("CHESSBRIDGE_PREFS", "a::1;b::2")
	d, err = environment.LoadDefaults()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Connector, "remote")
	test.ExpectEquality(t, d.MoveTimeout, 30*time.Second)
	test.ExpectEquality(t, len(d.Prefs), 2)

	t.Setenv("CHESSBRIDGE_MOVE_TIMEOUT", "soon")
	_, err = environment.LoadDefaults()
	test.ExpectFailure(t, err)
}
