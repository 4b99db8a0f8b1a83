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

// Package modalflag wraps the flag package in the standard library so that a
// command line can be divided into modes, each with its own flags.
//
// Arguments are given to NewArgs() and then parsed one mode at a time with
// Parse(). Before each call to Parse() the flags and sub-modes of the current
// mode are added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "list", "infer")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		connector := md.AddString("connector", "sim", "connector to use")
//		...
//	}
//
// The first sub-mode is the default and is selected when the next argument is
// not the name of a sub-mode. Sub-modes are matched without regard to case and
// Mode() always returns the upper case name.
//
// The -help flag is handled for every mode. The help message lists the flags
// and sub-modes of the current mode followed by any text given to
// AdditionalHelp().
package modalflag
