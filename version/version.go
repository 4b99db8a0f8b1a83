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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used in the version string and in the protocol id.
const ApplicationName = "Chessbridge"

// number is set with -ldflags "-X" by release builds.
var number string

var version string
var revision string

// Version returns the version, the vcs revision and whether this is a
// numbered release.
//
// A version of "unreleased" means the program was built from a repository
// without a release number. A version of "local" means there was no vcs
// information, which is normal with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for
// printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	revision = "no revision information"
	version = "local"

	info, ok := debug.ReadBuildInfo()
	if ok {
		var modified bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				version = "unreleased"
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
		if modified && revision != "no revision information" {
			revision += "+dirty"
		}
	}

	if number != "" {
		version = number
	}
}
