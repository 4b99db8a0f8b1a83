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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that produce
// errors of a particular kind should store the pattern as an exported const
// string, so that callers can test for it with the Is() function:
//
//	const NoMatchingMove = "inference: no matching move"
//
//	err := curated.Errorf(NoMatchingMove)
//	if curated.Is(err, NoMatchingMove) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	e := curated.Errorf("connector: %v", curated.Errorf(NoMatchingMove))
//	if curated.Has(e, NoMatchingMove) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being the difference between expected and unexpected
// errors.
//
// The Error() function for curated errors normalises the error chain, so
// that it doesn't contain duplicate adjacent parts. For the purposes of this
// package chains are composed of parts separated by the sub-string ': '. For
// example, a curated error created with the pattern "uci: %v" wrapping an
// error with the message "uci: malformed command" will print as:
//
//	uci: malformed command
//
// and not:
//
//	uci: uci: malformed command
package curated
