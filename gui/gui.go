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

// Package gui defines how the monitor talks to its display. Implementations
// live in the subpackages sdlmonitor and termmonitor.
//
// A display runs in the rendering domain. For SDL this is the main thread of
// the program and for the terminal it is the event loop of the terminal UI.
// The state of the display must only be touched from the rendering domain.
// Other goroutines hand work to the rendering domain with the Scheduler
// interface, which every display implements with a TaskQueue.
//
// Cell addressing is kept by the display. The Cells type is a helper for
// displays that want to keep one level per (universe, output) pair and a
// record of which cells need redrawing.
package gui

import "github.com/sacnmonitor/sacnmonitor/dmx"

// RenderSink is the part of the display that shows levels. Both functions
// must only be called from the rendering domain.
//
// Addressing a universe that the display was not created with, or an output
// outside of the range 0 to 511, is a programming error and will panic.
type RenderSink interface {
	// SetLevel changes the level shown by a cell.
	SetLevel(u dmx.Universe, o dmx.Output, l dmx.Level)

	// RequestRedraw indicates that the cell should be redrawn the next time
	// the display is serviced. Other cells are not redrawn.
	RequestRedraw(u dmx.Universe, o dmx.Output)
}

// Scheduler hands tasks to the rendering domain. Schedule() can be called
// from any goroutine and never blocks. Tasks run in the order they were
// scheduled.
type Scheduler interface {
	Schedule(task func())
}

// GUI is implemented by every display.
type GUI interface {
	RenderSink
	Scheduler

	// Service the display. Must be called from the rendering domain. For SDL
	// this is called repeatedly by the main thread. For the terminal this
	// blocks until the terminal UI ends.
	Service()

	// Events returns the channel on which the display sends events to the
	// rest of the program.
	Events() <-chan Event

	// Quit ends the display. Can be called from any goroutine.
	Quit()
}

// StatusFunc returns a short line of status information for the display to
// show. It is called from the rendering domain.
type StatusFunc func() string
