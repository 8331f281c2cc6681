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

// Package monitor connects the frame differ to the update dispatcher. The
// Monitor type is the callback given to the frame receiver: every decoded
// frame is passed to HandleFrame(), which compares the frame against the
// snapshot for its universe and schedules the changed cells on the display.
//
// Updates for a universe are dispatched while that universe's snapshot is
// locked. This means that the order of tasks in the display's queue matches
// the order in which frames for the universe arrived.
//
// The package also holds the preferences of the monitor, stored on disk with
// the prefs package.
package monitor

import (
	"sync/atomic"

	"github.com/sacnmonitor/sacnmonitor/differ"
	"github.com/sacnmonitor/sacnmonitor/dispatcher"
	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
	"github.com/sacnmonitor/sacnmonitor/logger"
	"github.com/sacnmonitor/sacnmonitor/universe"
)

// Monitor receives frames and forwards the changes to the display.
type Monitor struct {
	reg  *universe.Registry
	diff *differ.Differ
	disp *dispatcher.Dispatcher

	// whether a frame has been seen for each universe. used to log the first
	// frame for a universe
	seen map[dmx.Universe]*atomic.Bool

	frames  atomic.Uint64
	dropped atomic.Uint64
	changed atomic.Uint64
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// Updates are scheduled with sched and applied to sink.
func NewMonitor(reg *universe.Registry, sched gui.Scheduler, sink gui.RenderSink) *Monitor {
	mon := &Monitor{
		reg:  reg,
		diff: differ.NewDiffer(reg),
		disp: dispatcher.NewDispatcher(sched, sink),
		seen: make(map[dmx.Universe]*atomic.Bool),
	}
	for _, u := range reg.AllUniverses() {
		mon.seen[u] = &atomic.Bool{}
	}
	return mon
}

// Registry returns the registry of monitored universes.
func (mon *Monitor) Registry() *universe.Registry {
	return mon.reg
}

// HandleFrame compares the frame with the snapshot of its universe and
// dispatches any changes. Safe to call from any goroutine. Frames for
// universes that are not monitored are counted and discarded.
func (mon *Monitor) HandleFrame(frame dmx.Frame) {
	mon.frames.Add(1)

	seen, ok := mon.seen[frame.Universe]
	if !ok {
		mon.dropped.Add(1)
		return
	}

	if !seen.Swap(true) {
		logger.Logf(logger.Allow, "monitor", "first frame for %s (%d levels)", frame.Universe, len(frame.Levels))
	}

	mon.diff.Apply(frame, func(updates []dmx.CellUpdate) {
		mon.changed.Add(1)
		mon.disp.Dispatch(updates)
	})
}

// Stats returns the current statistics of the monitor.
func (mon *Monitor) Stats() Stats {
	return Stats{
		Frames:        mon.frames.Load(),
		Dropped:       mon.dropped.Load(),
		ChangedFrames: mon.changed.Load(),
		Updates:       mon.disp.Dispatched(),
	}
}
