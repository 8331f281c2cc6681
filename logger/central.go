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

// Package logger is the central log for the application. Entries are made
// with a tag and a detail value:
//
//	logger.Log(logger.Allow, "receiver", "joined universe 1")
//	logger.Logf(logger.Allow, "monitor", "%d universes", n)
//
// The detail value can be a string, an error, a fmt.Stringer or any other type
// that can be formatted with the %v verb.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. This is useful for noisy conditions in the receiving
// goroutines, where the same message might otherwise fill the log.
//
// The central log is safe to use from any goroutine. Independent logs can be
// created with NewLogger(), which is mainly useful for testing.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need to
// allow more than one log.
var central *Logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new log entries to io.Writer as they are made. A nil value
// turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
