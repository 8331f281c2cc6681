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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions use t.Fatalf() and should be used when later
// parts of the test depend on the value being correct. For example, checking
// the length of a slice before indexing into it.
//
// Success and failure are interpreted according to type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is considered a success because of how errors are usually
// returned. A nil value of an error type is indistinguishable from an untyped
// nil once it has been passed as an interface.
//
// The tags arguments are optional and are prepended to the failure message.
// They are useful when a helper is called from inside a loop.
package test
