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

// Package assert contains helpers for checking which goroutine code is
// running on. The render sinks are only safe to touch from the rendering
// goroutine and tests use these functions to confirm that work handed over
// by the receiving goroutines really does run there.
//
// The functions are for debugging and testing only.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns a value that is different for every goroutine and
// consistent for any one goroutine.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the goroutine it was created on.
type Goroutine struct {
	id uint64
}

// NewGoroutine notes the ID of the calling goroutine.
func NewGoroutine() Goroutine {
	return Goroutine{id: GoroutineID()}
}

// Current returns true if the calling goroutine is the one noted by
// NewGoroutine().
func (g Goroutine) Current() bool {
	return g.id == GoroutineID()
}
