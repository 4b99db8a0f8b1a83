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

// Package inference deduces which move was played from two board snapshots.
//
// Backends that only allow the board to be observed never report the move
// they made. The Infer() function compares the snapshot taken before the move
// with the snapshot taken after it and returns the single pseudo-legal move
// that explains the difference. The function never guesses: if more squares
// changed than a single move can explain, or no candidate move produces the
// observed position, the Result carries a Failure value instead of a move.
package inference
