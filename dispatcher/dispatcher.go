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

// Package dispatcher hands cell updates to the rendering domain. Every cell
// update becomes a task that sets the level of the cell in the render sink
// and then requests a redraw of that cell only.
//
// Tasks are scheduled in the order of the updates. The dispatcher does not
// coalesce updates: if an older and a newer update for the same cell are
// both scheduled, the newer one runs last and its level is the one shown.
package dispatcher

import (
	"sync/atomic"

	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
)

// Dispatcher schedules cell updates on a render sink.
type Dispatcher struct {
	sched gui.Scheduler
	sink  gui.RenderSink

	// number of updates dispatched
	dispatched atomic.Uint64
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. Tasks are scheduled with sched and run against sink. For the
// displays in this program sched and sink are the same value.
func NewDispatcher(sched gui.Scheduler, sink gui.RenderSink) *Dispatcher {
	return &Dispatcher{
		sched: sched,
		sink:  sink,
	}
}

// Dispatch the updates to the rendering domain. Safe to call from any
// goroutine. Does not block.
func (d *Dispatcher) Dispatch(updates []dmx.CellUpdate) {
	for _, c := range updates {
		d.sched.Schedule(func() {
			d.sink.SetLevel(c.Universe, c.Output, c.Level)
			d.sink.RequestRedraw(c.Universe, c.Output)
		})
	}
	d.dispatched.Add(uint64(len(updates)))
}

// Dispatched returns the number of updates that have been dispatched.
func (d *Dispatcher) Dispatched() uint64 {
	return d.dispatched.Load()
}
