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

// Package paths contains functions to prepare paths to chessbridge resources:
// the preferences file, the protocol log and any connector specific files.
//
// The ResourcePath() function returns the supplied resource prepended with the
// appropriate config directory. For example, the following will return the
// path to the default log file.
//
//	pth, err := paths.ResourcePath("", "uci.log")
//
// In development builds the base path is ".chessbridge" in the program's
// current directory. When compiled with the "release" build tag the user's
// config directory is used, as returned by os.UserConfigDir() from the
// standard library. On a modern Linux system the path returned will be:
//
//	/home/user/.config/chessbridge/uci.log
package paths
