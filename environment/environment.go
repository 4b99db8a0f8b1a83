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

package environment

import (
	"bufio"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/jetsetilly/chessbridge/logger"
	"github.com/jetsetilly/chessbridge/prefs"
)

// Label is used to name the environment.
type Label string

// MainSession is the label used for the session driven by the protocol on
// the standard input.
const MainSession = Label("")

// the number of log entries kept in memory by each environment.
const maxLogEntries = 1024

// Environment is the context handle passed to the protocol session and to the
// connector at construction time. It is created at the start of a session
// and flushed when the session terminates.
type Environment struct {
	Label Label

	// every session has a unique ID. the ID is reported by the status monitor
	Session uuid.UUID

	// the session log. the logger is safe to use from more than one goroutine
	Log *logger.Logger

	// connector options are added to the preferences disk
	Prefs *prefs.Disk

	// logging is denied for quiet environments
	quiet bool

	file *logFile
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. The prefsFile argument can be empty, in which case
// preferences are never saved.
func NewEnvironment(label Label, prefsFile string) (*Environment, error) {
	dsk, err := prefs.NewDisk(prefsFile)
	if err != nil {
		return nil, err
	}

	return &Environment{
		Label:   label,
		Session: uuid.New(),
		Log:     logger.NewLogger(maxLogEntries),
		Prefs:   dsk,
	}, nil
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.quiet
}

// Quiet stops the environment from logging. Useful for secondary sessions
// and for tests that are not interested in the log.
func (env *Environment) Quiet(quiet bool) {
	env.quiet = quiet
}

// IsMainSession returns true if the environment is for the main session.
func (env *Environment) IsMainSession() bool {
	return env.Label == MainSession
}

// SetLogOutput echoes log entries to the io.Writer. Each entry is flushed to
// the writer as soon as it is logged. A nil writer turns echoing off.
func (env *Environment) SetLogOutput(w io.Writer) {
	if w == nil {
		env.file = nil
		env.Log.SetEcho(nil)
		return
	}
	env.file = &logFile{w: bufio.NewWriter(w)}
	env.Log.SetEcho(env.file)
}

// Flush buffered log output and save preferences.
func (env *Environment) Flush() error {
	if env.file != nil {
		if err := env.file.flush(); err != nil {
			return err
		}
	}
	return env.Prefs.Save()
}

// logFile serialises access to a buffered writer. entries are written by the
// logger while Flush() may be called from any goroutine. the buffer is flushed
// after every write so that nothing is lost if the program crashes.
type logFile struct {
	crit sync.Mutex
	w    *bufio.Writer
}

func (f *logFile) Write(p []byte) (int, error) {
	f.crit.Lock()
	defer f.crit.Unlock()
	n, err := f.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.w.Flush()
}

func (f *logFile) flush() error {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.w.Flush()
}
