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
	"context"
	"math/rand"
	"sync"
	"time"

	nchess "github.com/notnil/chess"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/prefs"
)

// Name of the connector as used by the connector registry.
const Name = "sim"

// Sentinel errors recorded by the simulator and returned by LastError().
const (
	NotInitialised  = "sim: not initialised"
	SetupFailed     = "sim: setup failed: %v"
	IllegalMove     = "sim: illegal move: %v"
	NoMovesPossible = "sim: no moves possible in position %s"
)

func init() {
	connector.Register(Name, func(env *environment.Environment) (connector.Connector, error) {
		return NewSim(env)
	})
}

// the state of the simulated program's calculation
type calculation struct {
	move     *nchess.Move
	revealAt time.Time
}

// Sim is a simulation of a vintage chess program. The simulated program
// keeps its own game state and only reveals its move by changing what is
// shown on its board. Moves are chosen at random or by a Lua script.
type Sim struct {
	connector.Unsupported

	env    *environment.Environment
	opts   *connector.Options
	poller *connector.Poller

	colour    prefs.String
	thinkTime prefs.Int
	poll      prefs.Int
	seed      prefs.Int
	failSetup prefs.Bool
	script    prefs.String

	crit        sync.Mutex
	initialised bool
	game        *nchess.Game
	calc        *calculation
	pondering   bool
	rnd         *rand.Rand
	chooser     *chooser
	lastErr     error
}

// NewSim is the preferred method of initialisation for the Sim type.
func NewSim(env *environment.Environment) (*Sim, error) {
	sim := &Sim{
		env:  env,
		opts: connector.NewOptions(Name, env.Prefs),
	}
	sim.poller = connector.NewPoller(env, Name, sim)

	err := sim.declareOptions()
	if err != nil {
		return nil, err
	}

	err = sim.opts.Load()
	if err != nil {
		return nil, err
	}

	sim.game = newGame()

	return sim, nil
}

func (sim *Sim) declareOptions() error {
	sim.poll.SetHookPost(func(v prefs.Value) error {
		d := time.Duration(v.(int)) * time.Millisecond
		sim.poller.Interval = d
		sim.poller.SyncInterval = d
		return nil
	})

	decl := []connector.Option{
		{Name: "Engine Colour", Type: connector.Combo, Default: "white", Vars: []string{"white", "black"}, Value: &sim.colour},
		{Name: "Think Time", Type: connector.Spin, Default: "1000", Min: 0, Max: 60000, Value: &sim.thinkTime},
		{Name: "Poll Interval", Type: connector.Spin, Default: "500", Min: 1, Max: 5000, Value: &sim.poll},
		{Name: "Seed", Type: connector.Spin, Default: "0", Min: 0, Max: 1 << 30, Value: &sim.seed},
		{Name: "Fail Setup", Type: connector.Check, Default: "false", Value: &sim.failSetup},
		{Name: "Script", Type: connector.String, Value: &sim.script},
	}

	for _, opt := range decl {
		if err := sim.opts.Add(opt); err != nil {
			return err
		}
	}

	return nil
}

func newGame() *nchess.Game {
	return nchess.NewGame(nchess.UseNotation(nchess.UCINotation{}))
}

func (sim *Sim) log(detail any) {
	sim.env.Log.Log(sim.env, Name, detail)
}

func (sim *Sim) logf(detail string, args ...any) {
	sim.env.Log.Logf(sim.env, Name, detail, args...)
}

// record failure. should be called with the critical section locked
func (sim *Sim) fail(err error) bool {
	sim.lastErr = err
	sim.log(err)
	return false
}

// Name implements the connector.Connector interface.
func (sim *Sim) Name() string {
	return "Chessbridge Simulator"
}

// Author implements the connector.Connector interface.
func (sim *Sim) Author() string {
	return "Chessbridge"
}

// EngineColour implements the connector.Connector interface.
func (sim *Sim) EngineColour() chess.Colour {
	c, _ := chess.ParseColour(sim.colour.String())
	return c
}

// Capabilities implements the connector.Connector interface.
func (sim *Sim) Capabilities() connector.Capabilities {
	return connector.Capabilities{
		Pondering: true,
		Options:   true,
	}
}

// Initialise implements the connector.Connector interface.
func (sim *Sim) Initialise() bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	sim.rnd = rand.New(rand.NewSource(int64(sim.seed.Get().(int))))

	if sim.chooser != nil {
		sim.chooser.close()
		sim.chooser = nil
	}
	if pth := sim.script.String(); pth != "" {
		ch, err := newChooser(pth)
		if err != nil {
			return sim.fail(err)
		}
		sim.chooser = ch
	}

	sim.initialised = true
	sim.lastErr = nil

	return true
}

// IsReady implements the connector.Connector interface.
func (sim *Sim) IsReady() bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	return sim.initialised
}

// ReadBoard implements the connector.Connector and connector.BoardReader
// interfaces. A move chosen by the simulated program becomes visible once the
// think time has elapsed.
func (sim *Sim) ReadBoard() (chess.Position, error) {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.initialised {
		return chess.Position{}, curated.Errorf(NotInitialised)
	}

	if sim.calc != nil && !time.Now().Before(sim.calc.revealAt) {
		if err := sim.game.Move(sim.calc.move); err != nil {
			sim.fail(curated.Errorf(IllegalMove, err))
		}
		sim.calc = nil
	}

	return chess.ParseFEN(sim.game.Position().String())
}

// ResetGame implements the connector.Connector interface.
func (sim *Sim) ResetGame() bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.initialised {
		return sim.fail(curated.Errorf(NotInitialised))
	}

	sim.game = newGame()
	sim.calc = nil
	sim.pondering = false
	sim.rnd = rand.New(rand.NewSource(int64(sim.seed.Get().(int))))

	return true
}

// SetupPosition implements the connector.Connector interface.
func (sim *Sim) SetupPosition(pos chess.Position) bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.initialised {
		return sim.fail(curated.Errorf(NotInitialised))
	}

	if sim.failSetup.Get().(bool) {
		return sim.fail(curated.Errorf(SetupFailed, "fail setup option is set"))
	}

	fen, err := nchess.FEN(pos.FEN())
	if err != nil {
		return sim.fail(curated.Errorf(SetupFailed, err))
	}

	sim.game = nchess.NewGame(fen, nchess.UseNotation(nchess.UCINotation{}))
	sim.calc = nil

	return true
}

// ExecuteMove implements the connector.Connector interface.
func (sim *Sim) ExecuteMove(mv chess.Move) bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.initialised {
		return sim.fail(curated.Errorf(NotInitialised))
	}

	if err := sim.game.MoveStr(mv.String()); err != nil {
		return sim.fail(curated.Errorf(IllegalMove, err))
	}

	return true
}

// think chooses a move for the side to move. should be called with the
// critical section locked
func (sim *Sim) think() (*nchess.Move, error) {
	moves := sim.game.ValidMoves()
	if len(moves) == 0 {
		return nil, curated.Errorf(NoMovesPossible, sim.game.Position().String())
	}

	if sim.chooser != nil {
		uci := make([]string, len(moves))
		for i, m := range moves {
			uci[i] = nchess.UCINotation{}.Encode(sim.game.Position(), m)
		}

		choice, err := sim.chooser.choose(sim.game.Position().String(), uci)
		if err != nil {
			sim.log(err)
		} else {
			for i := range uci {
				if uci[i] == choice {
					return moves[i], nil
				}
			}
			sim.logf("script chose a move that is not possible: %s", choice)
		}
	}

	if sim.seed.Get().(int) == 0 {
		return moves[0], nil
	}

	return moves[sim.rnd.Intn(len(moves))], nil
}

// WaitForOpponentMove implements the connector.Connector interface. The
// simulated program starts thinking if it is not already doing so. The move
// is then observed in the same way as for any other backend.
func (sim *Sim) WaitForOpponentMove(ctx context.Context, expected *chess.Position, timeout time.Duration) (chess.Move, bool) {
	sim.crit.Lock()

	if !sim.initialised {
		sim.fail(curated.Errorf(NotInitialised))
		sim.crit.Unlock()
		return chess.Move{}, false
	}

	sim.pondering = false

	if sim.calc == nil {
		mv, err := sim.think()
		if err != nil {
			sim.fail(err)
			sim.crit.Unlock()
			return chess.Move{}, false
		}
		sim.calc = &calculation{
			move:     mv,
			revealAt: time.Now().Add(time.Duration(sim.thinkTime.Get().(int)) * time.Millisecond),
		}
	}

	sim.crit.Unlock()

	return sim.poller.Wait(ctx, expected, timeout)
}

// IsOpponentThinking implements the connector.Connector interface.
func (sim *Sim) IsOpponentThinking() bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	return sim.calc != nil
}

// StopCalculation implements the connector.Connector interface. The move
// being considered is abandoned.
func (sim *Sim) StopCalculation() bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	sim.calc = nil
	return true
}

// SupportsPondering implements the connector.Connector interface.
func (sim *Sim) SupportsPondering() bool {
	return true
}

// StartPondering implements the connector.Connector interface. The position
// set up before pondering is expected to include the predicted move.
func (sim *Sim) StartPondering(predicted chess.Move) bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.initialised {
		return sim.fail(curated.Errorf(NotInitialised))
	}

	sim.pondering = true
	sim.logf("pondering after %s", predicted)

	return true
}

// StopPondering implements the connector.Connector interface. The move the
// simulated program would play is returned but it is not played.
func (sim *Sim) StopPondering() (chess.Move, bool) {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.pondering {
		return chess.Move{}, false
	}
	sim.pondering = false

	m, err := sim.think()
	if err != nil {
		sim.fail(err)
		return chess.Move{}, false
	}

	mv, err := chess.ParseMove(nchess.UCINotation{}.Encode(sim.game.Position(), m))
	if err != nil {
		sim.fail(err)
		return chess.Move{}, false
	}

	return mv, true
}

// AttemptRecovery implements the connector.Connector interface.
func (sim *Sim) AttemptRecovery() bool {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	sim.initialised = false
	sim.calc = nil
	sim.pondering = false
	sim.game = newGame()

	return true
}

// LastError implements the connector.Connector interface.
func (sim *Sim) LastError() error {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	return sim.lastErr
}

// SetOption implements the connector.Connector interface.
func (sim *Sim) SetOption(name string, value string) bool {
	return sim.opts.Set(name, value)
}

// DeclaredOptions implements the connector.Connector interface.
func (sim *Sim) DeclaredOptions() []connector.Option {
	return sim.opts.Declared()
}

// Shutdown implements the connector.Connector interface.
func (sim *Sim) Shutdown() {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if sim.chooser != nil {
		sim.chooser.close()
		sim.chooser = nil
	}
	sim.initialised = false
	sim.calc = nil
}
