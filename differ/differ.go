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

// Package differ compares incoming frames against the snapshot of the
// universe they are for. The result of a comparison is the list of outputs
// that have changed, in ascending order, and the snapshot is updated to
// match the frame.
//
// A frame with fewer than dmx.NumOutputs levels only compares the outputs it
// has values for. Levels beyond dmx.NumOutputs are ignored. Frames for
// universes that are not in the registry produce no updates.
//
// Comparisons for the same universe are serialised by the lock in the
// universe's registry entry. Frames for different universes are compared in
// parallel.
package differ

import (
	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/universe"
)

// Differ compares frames against the snapshots in a universe registry.
type Differ struct {
	reg *universe.Registry
}

// NewDiffer is the preferred method of initialisation for the Differ type.
func NewDiffer(reg *universe.Registry) *Differ {
	return &Differ{reg: reg}
}

// Diff compares the frame against the snapshot of its universe and returns
// the changed outputs. The snapshot is updated before returning.
func (d *Differ) Diff(frame dmx.Frame) []dmx.CellUpdate {
	var updates []dmx.CellUpdate
	d.Apply(frame, func(u []dmx.CellUpdate) {
		updates = u
	})
	return updates
}

// Apply is the same as Diff() except that the changed outputs are passed to
// the emit function while the universe is still locked. This means that
// updates for the same universe are emitted in the order the snapshot was
// changed.
//
// The emit function is not called if nothing has changed. It must not call
// Apply() or Diff() for the same universe.
func (d *Differ) Apply(frame dmx.Frame, emit func([]dmx.CellUpdate)) {
	e := d.reg.SnapshotFor(frame.Universe)
	if e == nil {
		return
	}

	levels := frame.Levels
	if len(levels) > dmx.NumOutputs {
		levels = levels[:dmx.NumOutputs]
	}

	e.Lock()
	defer e.Unlock()

	snapshot := e.Snapshot()

	var updates []dmx.CellUpdate
	for i, l := range levels {
		if snapshot[i] == l {
			continue // for loop
		}
		snapshot[i] = l
		updates = append(updates, dmx.CellUpdate{
			Universe: frame.Universe,
			Output:   dmx.Output(i),
			Level:    l,
		})
	}

	if len(updates) > 0 {
		emit(updates)
	}
}
