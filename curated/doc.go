// This file is part of sacnmonitor.
//
// sacnmonitor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sacnmonitor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sacnmonitor.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is retained and is what identifies a curated error. Packages
// export their patterns as constants so that callers can test for them:
//
//	const UnknownInterface = "receiver: unknown interface: %v"
//
//	err := curated.Errorf(UnknownInterface, name)
//	if curated.Is(err, UnknownInterface) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the chain of curated errors:
//
//	e := curated.Errorf(UnknownInterface, name)
//	f := curated.Errorf("sdl mode: %v", e)
//
//	curated.Has(f, UnknownInterface) // true
//	curated.Is(f, UnknownInterface)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). An uncurated error is an unexpected error.
//
// The Error() implementation normalises the message so that it does not
// contain duplicate adjacent parts. This alleviates the problem of when and
// how to wrap errors as they are passed up the call stack:
//
//	curated.Errorf("receiver: %v", curated.Errorf("receiver: %v", "timeout"))
//
// produces the message "receiver: timeout".
//
// Curated errors also support the Unwrap() method of the standard errors
// package, so errors.Is() and errors.As() can look inside a curated error for
// uncurated errors passed to it as values.
package curated
