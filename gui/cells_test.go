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

package gui_test

import (
	"testing"

	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/gui"
	"github.com/sacnmonitor/sacnmonitor/test"
)

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	f()
}

func TestCells(t *testing.T) {
	c := gui.NewCells([]dmx.Universe{1, 2, 4})

	test.ExpectEquality(t, c.Row(1), 0)
	test.ExpectEquality(t, c.Row(4), 2)

	c.Set(2, 10, 100)
	test.ExpectEquality(t, c.Level(2, 10), dmx.Level(100))
	test.ExpectEquality(t, c.Level(1, 10), dmx.Level(0))

	// marking the same cell twice only redraws it once
	c.MarkDirty(2, 10)
	c.MarkDirty(4, 511)
	c.MarkDirty(2, 10)
	test.ExpectEquality(t, c.NumDirty(), 2)

	type drawn struct {
		row int
		o   dmx.Output
		l   dmx.Level
	}
	var d []drawn
	c.Redraw(func(row int, o dmx.Output, l dmx.Level) {
		d = append(d, drawn{row: row, o: o, l: l})
	})

	test.DemandEquality(t, len(d), 2)
	test.ExpectEquality(t, d[0], drawn{row: 1, o: 10, l: 100})
	test.ExpectEquality(t, d[1], drawn{row: 2, o: 511, l: 0})
	test.ExpectEquality(t, c.NumDirty(), 0)

	// cell can be marked again after redraw
	c.MarkDirty(2, 10)
	test.ExpectEquality(t, c.NumDirty(), 1)

	c.MarkAllDirty()
	test.ExpectEquality(t, c.NumDirty(), 3*dmx.NumOutputs)
}

func TestCellsAddressing(t *testing.T) {
	c := gui.NewCells([]dmx.Universe{1})

	expectPanic(t, func() { c.Set(2, 0, 1) })
	expectPanic(t, func() { c.Set(1, 512, 1) })
	expectPanic(t, func() { c.MarkDirty(1, -1) })
	expectPanic(t, func() { c.Level(99, 0) })
}

func TestSendEvent(t *testing.T) {
	ch := make(chan gui.Event, 1)
	test.ExpectSuccess(t, gui.SendEvent(ch, gui.EventQuit{}))
	test.ExpectFailure(t, gui.SendEvent(ch, gui.EventQuit{}))

	ev := <-ch
	_, ok := ev.(gui.EventQuit)
	test.ExpectSuccess(t, ok)
}

func TestLevelColour(t *testing.T) {
	r, g, b := gui.LevelColour(0)
	test.ExpectEquality(t, r, uint8(77))
	test.ExpectEquality(t, g, uint8(77))
	test.ExpectEquality(t, b, uint8(77))

	r, g, b = gui.LevelColour(255)
	test.ExpectEquality(t, r, uint8(128))
	test.ExpectEquality(t, g, uint8(77))
	test.ExpectEquality(t, b, uint8(0))
}
