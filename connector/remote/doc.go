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

// Package remote implements a connector for a board observer running in a
// separate process. The observer is responsible for capturing the screen of
// the backend and for recognising the pieces. The connector only ever sees
// the position that the observer reports.
//
// The observer is reached over a websocket. Requests and responses are JSON
// encoded Message values. Every request is answered by a single response of
// the same type.
package remote
