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

// Package statsview serves runtime statistics over HTTP with
// github.com/go-echarts/statsview. The server is only included when the
// program is built with the statsview tag:
//
//	go build -tags statsview .
//
// Charts are then available at localhost:12600/debug/statsview and the pprof
// endpoints at localhost:12600/debug/pprof/. Without the tag, Launch() logs
// that the server is unavailable and Available() returns false.
package statsview
