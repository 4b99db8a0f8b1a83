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

// Package environment contains the Environment type, the context handle that
// is passed to the protocol session and to the connector.
//
// The environment carries the session log, the preferences disk that
// connector options are added to and a unique session ID. Nothing in the
// program keeps global session state. Everything a component needs to know
// about the session it belongs to is found through the environment.
//
// The package also defines the Defaults type, which collects the default
// values for command line flags from environment variables.
package environment
