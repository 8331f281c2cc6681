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

import (
	"fmt"

	"github.com/sacnmonitor/sacnmonitor/dmx"
)

// Cells keeps the level of every cell in a display along with the list of
// cells that have been marked for redrawing.
//
// Cells is not safe for concurrent use. It should only be used in the
// rendering domain.
type Cells struct {
	universes []dmx.Universe
	index     map[dmx.Universe]int
	levels    []dmx.Level

	// dirty cells in the order they were marked. the flags prevent a cell
	// being listed more than once
	dirty      []int
	dirtyFlags []bool
}

// NewCells is the preferred method of initialisation for the Cells type. The
// order of the universes is the order they are displayed in.
func NewCells(universes []dmx.Universe) *Cells {
	c := &Cells{
		universes:  universes,
		index:      make(map[dmx.Universe]int, len(universes)),
		levels:     make([]dmx.Level, len(universes)*dmx.NumOutputs),
		dirtyFlags: make([]bool, len(universes)*dmx.NumOutputs),
	}
	for i, u := range universes {
		c.index[u] = i
	}
	return c
}

// Universes returns the list of universes in display order.
func (c *Cells) Universes() []dmx.Universe {
	return c.universes
}

// Row returns the display row of the universe.
func (c *Cells) Row(u dmx.Universe) int {
	return c.address(u, 0) / dmx.NumOutputs
}

// address returns the position of the cell in the levels slice. panics if
// the cell is not in the display.
func (c *Cells) address(u dmx.Universe, o dmx.Output) int {
	i, ok := c.index[u]
	if !ok {
		panic(fmt.Sprintf("gui: %s is not in the display", u))
	}
	if !o.Valid() {
		panic(fmt.Sprintf("gui: output %d is not in the display", o))
	}
	return i*dmx.NumOutputs + int(o)
}

// Set the level of a cell.
func (c *Cells) Set(u dmx.Universe, o dmx.Output, l dmx.Level) {
	c.levels[c.address(u, o)] = l
}

// Level returns the level of a cell.
func (c *Cells) Level(u dmx.Universe, o dmx.Output) dmx.Level {
	return c.levels[c.address(u, o)]
}

// MarkDirty marks the cell as needing to be redrawn.
func (c *Cells) MarkDirty(u dmx.Universe, o dmx.Output) {
	a := c.address(u, o)
	if c.dirtyFlags[a] {
		return
	}
	c.dirtyFlags[a] = true
	c.dirty = append(c.dirty, a)
}

// MarkAllDirty marks every cell as needing to be redrawn.
func (c *Cells) MarkAllDirty() {
	for _, u := range c.universes {
		for o := range dmx.NumOutputs {
			c.MarkDirty(u, dmx.Output(o))
		}
	}
}

// NumDirty returns the number of cells waiting to be redrawn.
func (c *Cells) NumDirty() int {
	return len(c.dirty)
}

// Redraw calls draw for every dirty cell, in the order they were marked. The
// dirty list is empty afterwards.
func (c *Cells) Redraw(draw func(row int, o dmx.Output, l dmx.Level)) {
	for _, a := range c.dirty {
		c.dirtyFlags[a] = false
		draw(a/dmx.NumOutputs, dmx.Output(a%dmx.NumOutputs), c.levels[a])
	}
	c.dirty = c.dirty[:0]
}
