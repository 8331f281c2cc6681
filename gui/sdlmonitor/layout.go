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

package sdlmonitor

import (
	"github.com/sacnmonitor/sacnmonitor/dmx"
)

// number of cells in each row of the display. every universe has
// dmx.NumOutputs/columns rows.
const columns = 32

const rowsPerUniverse = dmx.NumOutputs / columns

// layout describes where everything is drawn in the texture.
type layout struct {
	cellSize     int
	labelHeight  int
	numUniverses int
}

func newLayout(cellSize int, numUniverses int) layout {
	return layout{
		cellSize:     cellSize,
		labelHeight:  max(cellSize/2, glyphHeight+2),
		numUniverses: numUniverses,
	}
}

func (l layout) width() int {
	return columns * l.cellSize
}

func (l layout) universeHeight() int {
	return l.labelHeight + rowsPerUniverse*l.cellSize
}

func (l layout) height() int {
	return l.numUniverses * l.universeHeight()
}

// label returns the area of the label for the universe in the numbered row.
func (l layout) label(row int) rect {
	return rect{
		x: 0,
		y: row * l.universeHeight(),
		w: l.width(),
		h: l.labelHeight,
	}
}

// cell returns the area of the cell for an output of the universe in the
// numbered row.
func (l layout) cell(row int, o dmx.Output) rect {
	return rect{
		x: (int(o) % columns) * l.cellSize,
		y: row*l.universeHeight() + l.labelHeight + (int(o)/columns)*l.cellSize,
		w: l.cellSize,
		h: l.cellSize,
	}
}

// rect is an area of the texture in pixels.
type rect struct {
	x, y, w, h int
}
