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

package gui

// Event is sent by a display to the rest of the program.
type Event interface{}

// EventQuit is sent when the user has asked the display to close.
type EventQuit struct {
	Reason string
}

// KeyMod indicates which modifier key is held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent when a key has been pressed and not consumed by the
// display.
type EventKeyboard struct {
	Key string
	Mod KeyMod
}

// SendEvent sends the event on the channel without blocking. Returns false
// if the channel is full and the event has been dropped.
func SendEvent(ch chan Event, ev Event) bool {
	select {
	case ch <- ev:
		return true
	default:
		return false
	}
}
