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

import "github.com/sacnmonitor/sacnmonitor/dmx"

// LevelColour returns the colour of a cell at the given level. The colour
// moves from grey at zero towards orange at full:
//
//	red = 0.3 + 0.2 * level / 255
//	green = 0.3
//	blue = 0.3 - 0.3 * level / 255
//
// The components are scaled to the range 0 to 255 and rounded.
func LevelColour(l dmx.Level) (r, g, b uint8) {
	v := int(l)
	r = uint8((765 + 2*v + 5) / 10)
	g = 77
	b = uint8((765 - 3*v + 5) / 10)
	return r, g, b
}
