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

// Package prefs facilitates the storage of preferential values in the
// chessbridge system. Connector options are the main users of the package:
// each option declared by a connector is backed by a prefs value and can be
// changed with the setoption command.
//
// The Bool, String and Int types are safe to use from more than one
// goroutine. Hooks can be attached to a value with SetHookPre() and
// SetHookPost(). A pre hook that returns an error prevents the new value from
// being stored, which is how connectors validate option values.
//
// Values can be added to a Disk with a unique key. The Disk type saves and
// loads the values from a file with one "key :: value" pair per line.
// Values in the file that have not been added to the Disk instance are
// preserved when the file is saved.
//
// Values can also be specified on the command line with the
// PushCommandLineStack() function. The format is:
//
//	key::value; key::value
//
// Command line values take precedence over values on disk and are consumed by
// the next call to Disk.Load() that has a matching key.
package prefs
