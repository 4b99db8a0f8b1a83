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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/chessbridge/chess"
	"github.com/jetsetilly/chessbridge/connector"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/inference"
	"github.com/jetsetilly/chessbridge/logger"
	"github.com/jetsetilly/chessbridge/modalflag"
	"github.com/jetsetilly/chessbridge/monitor"
	"github.com/jetsetilly/chessbridge/paths"
	"github.com/jetsetilly/chessbridge/prefs"
	"github.com/jetsetilly/chessbridge/statsview"
	"github.com/jetsetilly/chessbridge/uci"
	"github.com/jetsetilly/chessbridge/version"

	// connectors register themselves with the connector package
	_ "github.com/jetsetilly/chessbridge/connector/remote"
	_ "github.com/jetsetilly/chessbridge/connector/serialboard"
	_ "github.com/jetsetilly/chessbridge/connector/sim"
)

// value of the log flag that disables the log file
const noLogFile = "none"

func main() {
	// stdout carries the protocol so everything else goes to stderr
	logger.SetEcho(os.Stderr)

	// #ctrlc cancels the session, which then shuts down the connector in the
	// normal way
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:])
	stop()

	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string) int {
	defaults, err := environment.LoadDefaults()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 10
	}

	md := &modalflag.Modes{Output: os.Stderr}
	md.NewArgs(args)
	md.AddSubModes("RUN", "LIST", "INFER", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, defaults)
	case "LIST":
		err = list(md, os.Stdout)
	case "INFER":
		err = infer(md, os.Stdout)
	case "VERSION":
		fmt.Fprintln(os.Stdout, version.String())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func run(ctx context.Context, md *modalflag.Modes, defaults environment.Defaults) error {
	md.NewMode()

	name := md.AddString("connector", defaults.Connector, "connector to use. see LIST mode for available connectors")
	logFile := md.AddString("log", defaults.LogFile, fmt.Sprintf("log file. '%s' to disable logging", noLogFile))
	moveTimeout := md.AddDuration("movetimeout", defaults.MoveTimeout, "maximum time to wait for the backend to move")
	monitorAddr := md.AddString("monitor", defaults.Monitor, "address of the status monitor. the monitor is disabled if empty")
	cmdlinePrefs := md.AddString("prefs", strings.Join(defaults.Prefs, ";"), "preference overrides (key::value; key::value)")
	memvizFile := md.AddString("memviz", "", "write a graph of the session to file on exit (graphviz dot format)")

	stats := new(bool)
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(*cmdlinePrefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "chessbridge", "unused preference overrides: %s", unused)
		}
	}()

	prefsFile, err := paths.ResourcePath("", "preferences")
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainSession, prefsFile)
	if err != nil {
		return err
	}

	if *logFile != noLogFile {
		if *logFile == "" {
			*logFile, err = paths.ResourcePath("", "uci.log")
			if err != nil {
				return err
			}
		}
		f, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		defer f.Close()
		env.SetLogOutput(f)
	}

	conn, err := connector.Create(*name, env)
	if err != nil {
		return err
	}

	session := uci.NewSession(env, conn, os.Stdout)
	session.SetMoveTimeout(*moveTimeout)

	if *monitorAddr != "" {
		mon := monitor.NewMonitor(env)
		session.AddObserver(mon)
		go func() {
			if err := mon.Listen(*monitorAddr); err != nil {
				logger.Log(logger.Allow, "chessbridge", err)
			}
		}()
		defer mon.Shutdown()
	}

	if *stats {
		statsview.Launch(logger.Allow)
	}

	err = session.Run(ctx, os.Stdin)

	if *memvizFile != "" {
		if err := dumpSession(*memvizFile, session); err != nil {
			logger.Log(logger.Allow, "chessbridge", err)
		}
	}

	// interruption from the terminal is a normal way of ending
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// dumpSession writes a graph of the session structure to file.
func dumpSession(filename string, session *uci.Session) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, session)
	logger.Logf(logger.Allow, "chessbridge", "session graph written to %s", filename)

	return nil
}

// list the registered connectors. with the options flag the options declared
// by each connector are also listed.
func list(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	options := md.AddBool("options", false, "list the options declared by each connector")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var env *environment.Environment
	if *options {
		// connectors are created with an environment that has no preferences
		// file so that default option values are listed
		env, err = environment.NewEnvironment(environment.Label("list"), "")
		if err != nil {
			return err
		}
		env.Quiet(true)
	}

	for _, name := range connector.Names() {
		fmt.Fprintln(output, name)
		if !*options {
			continue
		}

		conn, err := connector.Create(name, env)
		if err != nil {
			return err
		}
		for _, opt := range conn.DeclaredOptions() {
			fmt.Fprintf(output, "  %s\n", uci.OptionDeclaration(opt))
		}
		conn.Shutdown()
	}

	return nil
}

// infer the move between two positions given as FEN strings.
func infer(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("usage: infer \"<fen before>\" \"<fen after>\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires two positions", md)
	}

	before, err := chess.ParseFEN(md.GetArg(0))
	if err != nil {
		return err
	}
	after, err := chess.ParseFEN(md.GetArg(1))
	if err != nil {
		return err
	}

	r := inference.Infer(chess.Standard{}, before, after)
	if !r.Ok() {
		return r.Err()
	}

	fmt.Fprintln(output, r.Move)

	return nil
}
