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
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jetsetilly/chessbridge/curated"
)

// Defaults are the default values for command line flags. Each default can
// be overridden by an environment variable, which is useful when the
// program is launched by a chess GUI that doesn't allow command line
// arguments to be specified.
type Defaults struct {
	Connector   string        `env:"CHESSBRIDGE_CONNECTOR" envDefault:"sim"`
	LogFile     string        `env:"CHESSBRIDGE_LOG"`
	MoveTimeout time.Duration `env:"CHESSBRIDGE_MOVE_TIMEOUT" envDefault:"180s"`
	Monitor     string        `env:"CHESSBRIDGE_MONITOR"`
	Prefs       []string      `env:"CHESSBRIDGE_PREFS" envSeparator:";"`
}

// Sentinel error returned by LoadDefaults.
const DefaultsError = "environment: %v"

// LoadDefaults reads the defaults from the process environment.
func LoadDefaults() (Defaults, error) {
	var d Defaults
	if err := env.Parse(&d); err != nil {
		return Defaults{}, curated.Errorf(DefaultsError, err)
	}
	return d, nil
}
