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

package monitor_test

import (
	"sync"
	"testing"

	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
	"github.com/sacnmonitor/sacnmonitor/monitor"
	"github.com/sacnmonitor/sacnmonitor/test"
	"github.com/sacnmonitor/sacnmonitor/universe"
)

// levelSink is a render sink that records the level of every cell and the
// number of redraw requests.
type levelSink struct {
	cells   *gui.Cells
	redraws int
}

func (s *levelSink) SetLevel(u dmx.Universe, o dmx.Output, l dmx.Level) {
	s.cells.Set(u, o, l)
}

func (s *levelSink) RequestRedraw(u dmx.Universe, o dmx.Output) {
	s.redraws++
	s.cells.MarkDirty(u, o)
}

func newMonitor(t *testing.T, universes ...dmx.Universe) (*monitor.Monitor, *gui.TaskQueue, *levelSink) {
	t.Helper()
	reg, err := universe.NewRegistry(universes...)
	test.DemandSuccess(t, err)

	q := gui.NewTaskQueue()
	sink := &levelSink{cells: gui.NewCells(reg.AllUniverses())}
	return monitor.NewMonitor(reg, q, sink), q, sink
}

func frame(u dmx.Universe, levels ...dmx.Level) dmx.Frame {
	f := dmx.Frame{Universe: u, Levels: make([]dmx.Level, dmx.NumOutputs)}
	copy(f.Levels, levels)
	return f
}

func TestHandleFrame(t *testing.T) {
	mon, q, sink := newMonitor(t, 1, 2, 4)

	mon.HandleFrame(frame(1, 0, 0, 255))
	test.ExpectEquality(t, q.Drain(), 1)
	test.ExpectEquality(t, sink.cells.Level(1, 2), dmx.Level(255))
	test.ExpectEquality(t, sink.redraws, 1)

	// same frame again changes nothing
	mon.HandleFrame(frame(1, 0, 0, 255))
	test.ExpectEquality(t, q.Drain(), 0)

	// unmonitored universe is dropped
	mon.HandleFrame(frame(99, 1, 2, 3))
	test.ExpectEquality(t, q.Drain(), 0)

	s := mon.Stats()
	test.ExpectEquality(t, s.Frames, uint64(3))
	test.ExpectEquality(t, s.Dropped, uint64(1))
	test.ExpectEquality(t, s.ChangedFrames, uint64(1))
	test.ExpectEquality(t, s.Updates, uint64(1))
	test.ExpectEquality(t, s.String(), "frames: 3  dropped: 1  changed: 1  updates: 1")
}

func TestFrameArrivalOrder(t *testing.T) {
	mon, q, sink := newMonitor(t, 1)

	// frames are handled from several goroutines before the queue is drained.
	// the display must end up showing the snapshot, whatever the interleaving
	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range 50 {
				mon.HandleFrame(frame(1, dmx.Level(g*50+r), dmx.Level(r)))
			}
		}()
	}
	wg.Wait()
	q.Drain()

	e := mon.Registry().SnapshotFor(1)
	test.ExpectEquality(t, sink.cells.Level(1, 0), e.Level(0))
	test.ExpectEquality(t, sink.cells.Level(1, 1), e.Level(1))
	test.ExpectEquality(t, mon.Stats().Frames, uint64(200))
}

func TestIndependentUniverses(t *testing.T) {
	mon, q, sink := newMonitor(t, 1, 2)

	var wg sync.WaitGroup
	for _, u := range []dmx.Universe{1, 2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range 100 {
				mon.HandleFrame(frame(u, dmx.Level(int(u)*100+r)))
			}
		}()
	}
	wg.Wait()
	q.Drain()

	test.ExpectEquality(t, sink.cells.Level(1, 0), dmx.Level(199))
	test.ExpectEquality(t, sink.cells.Level(2, 0), dmx.Level(43))
}
