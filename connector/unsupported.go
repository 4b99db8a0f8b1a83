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

package connector

import (
	"github.com/jetsetilly/chessbridge/chess"
)

// Unsupported implements the optional operations of the Connector interface
// by not supporting them. It is intended to be embedded in adapter types.
type Unsupported struct{}

// IsOpponentThinking implements the Connector interface.
func (Unsupported) IsOpponentThinking() bool {
	return false
}

// StopCalculation implements the Connector interface.
func (Unsupported) StopCalculation() bool {
	return false
}

// StartPondering implements the Connector interface.
func (Unsupported) StartPondering(_ chess.Move) bool {
	return false
}

// StopPondering implements the Connector interface.
func (Unsupported) StopPondering() (chess.Move, bool) {
	return chess.Move{}, false
}

// SupportsPondering implements the Connector interface.
func (Unsupported) SupportsPondering() bool {
	return false
}

// AttemptRecovery implements the Connector interface.
func (Unsupported) AttemptRecovery() bool {
	return false
}

// LastError implements the Connector interface.
func (Unsupported) LastError() error {
	return nil
}

// SetOption implements the Connector interface.
func (Unsupported) SetOption(_ string, _ string) bool {
	return false
}

// DeclaredOptions implements the Connector interface.
func (Unsupported) DeclaredOptions() []Option {
	return nil
}
