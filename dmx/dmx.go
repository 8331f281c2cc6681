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

// Package dmx defines the values that flow through the monitor: universes,
// outputs and levels, the frames that carry them and the cell updates that
// are produced from them.
//
// A Snapshot records the levels most recently applied to the display for
// one universe. Snapshots are owned by the universe registry.
package dmx

import "fmt"

// NumOutputs is the number of outputs (channels) in a universe.
const NumOutputs = 512

// Universe identifies an independently addressed group of outputs.
type Universe uint16

// The range of universe values permitted by the protocol. Universe zero and
// universes above MaxUniverse are reserved.
const (
	MinUniverse Universe = 1
	MaxUniverse Universe = 63999
)

// Valid returns true if the universe is in the protocol range.
func (u Universe) Valid() bool {
	return u >= MinUniverse && u <= MaxUniverse
}

func (u Universe) String() string {
	return fmt.Sprintf("universe %d", uint16(u))
}

// Output is the index of a channel within a universe. Outputs are indexed
// from zero but are displayed to the user from one.
type Output int

// Valid returns true if the output is in the range 0 to 511.
func (o Output) Valid() bool {
	return o >= 0 && o < NumOutputs
}

// Display returns the number of the output as it is presented to the user.
func (o Output) Display() int {
	return int(o) + 1
}

// Level is the value of an output.
type Level uint8

// Frame is one decoded set of levels for a universe. Levels may contain
// fewer than NumOutputs values, in which case the remaining outputs are
// unchanged.
type Frame struct {
	Universe Universe
	Levels   []Level
}

// CellUpdate is a single change of level for one output.
type CellUpdate struct {
	Universe Universe
	Output   Output
	Level    Level
}

func (c CellUpdate) String() string {
	return fmt.Sprintf("%s output %d: %d", c.Universe, c.Output.Display(), c.Level)
}

// Snapshot is the level of every output in a universe. The zero value is a
// universe with every output at zero.
type Snapshot [NumOutputs]Level
