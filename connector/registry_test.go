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

package connector_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/test"
)

// minimal is the smallest possible connector. it relies on the Unsupported
// type for all optional operations.
type minimal struct {
	connector.Unsupported
}

func (minimal) Name() string { return "minimal" }
func (minimal) Author() string { return "test" }
func (minimal) EngineColour() chess.Colour { return chess.White }
func (minimal) Capabilities() connector.Capabilities { return connector.Capabilities{} }
func (minimal) Initialise() bool { return true }
func (minimal) IsReady() bool { return true }
func (minimal) ReadBoard() (chess.Position, error) { return chess.NewPosition(), nil }
func (minimal) ResetGame() bool { return true }
func (minimal) SetupPosition(_ chess.Position) bool { return true }
func (minimal) ExecuteMove(_ chess.Move) bool { return true }
func (minimal) Shutdown() {}
func (minimal) WaitForOpponentMove(_ context.Context, _ *chess.Position, _ time.Duration) (chess.Move, bool) {
	return chess.Move{}, false
}

func TestRegistry(t *testing.T) {
	factory := func(_ *environment.Environment) (connector.Connector, error) {
		return minimal{}, nil
	}

	test.DemandSuccess(t, connector.Register("minimal", factory))
	err := connector.Register("minimal", factory)
	test.ExpectSuccess(t, curated.Is(err, connector.DuplicateConnector))

	found := false
	for _, n := range connector.Names() {
		if n == "minimal" {
			found = true
		}
	}
	test.ExpectSuccess(t, found)

	env, err := environment.NewEnvironment(environment.MainSession, "")
	test.DemandSuccess(t, err)

	c, err := connector.Create("minimal", env)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Name(), "minimal")

	// optional operations are not supported
	test.ExpectFailure(t, c.SupportsPondering())
	test.ExpectFailure(t, c.StopCalculation())
	test.ExpectFailure(t, c.AttemptRecovery())
	_, ok := c.StopPondering()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, len(c.DeclaredOptions()), 0)

	_, err = connector.Create("missing", env)
	test.ExpectSuccess(t, curated.Is(err, connector.UnknownConnector))
}
