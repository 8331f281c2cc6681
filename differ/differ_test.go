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

package differ_test

import (
	"sync"
	"testing"

	"github.com/sacnmonitor/sacnmonitor/differ"
	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/test"
	"github.com/sacnmonitor/sacnmonitor/universe"
)

func newDiffer(t *testing.T, universes ...dmx.Universe) (*differ.Differ, *universe.Registry) {
	t.Helper()
	reg, err := universe.NewRegistry(universes...)
	test.DemandSuccess(t, err)
	return differ.NewDiffer(reg), reg
}

func fullFrame(u dmx.Universe, set map[int]dmx.Level) dmx.Frame {
	f := dmx.Frame{
		Universe: u,
		Levels:   make([]dmx.Level, dmx.NumOutputs),
	}
	for i, l := range set {
		f.Levels[i] = l
	}
	return f
}

func TestSingleChange(t *testing.T) {
	d, _ := newDiffer(t, 1, 2, 4)

	updates := d.Diff(fullFrame(1, map[int]dmx.Level{2: 255}))
	test.DemandEquality(t, len(updates), 1)
	test.ExpectEquality(t, updates[0], dmx.CellUpdate{Universe: 1, Output: 2, Level: 255})

	// the same frame again produces nothing
	updates = d.Diff(fullFrame(1, map[int]dmx.Level{2: 255}))
	test.ExpectEquality(t, len(updates), 0)
}

func TestAscendingOrder(t *testing.T) {
	d, _ := newDiffer(t, 1)

	updates := d.Diff(fullFrame(1, map[int]dmx.Level{511: 1, 0: 2, 100: 3, 7: 4}))
	test.DemandEquality(t, len(updates), 4)
	for i := 1; i < len(updates); i++ {
		test.ExpectSuccess(t, updates[i-1].Output < updates[i].Output, i)
	}
	test.ExpectEquality(t, updates[0].Output, dmx.Output(0))
	test.ExpectEquality(t, updates[3].Output, dmx.Output(511))
}

func TestSnapshotMatchesFrame(t *testing.T) {
	d, reg := newDiffer(t, 1)

	f := dmx.Frame{Universe: 1, Levels: make([]dmx.Level, dmx.NumOutputs)}
	for i := range f.Levels {
		f.Levels[i] = dmx.Level(i % 256)
	}

	updates := d.Diff(f)

	// outputs 0 and 256 are already at level zero
	test.ExpectEquality(t, len(updates), dmx.NumOutputs-2)

	e := reg.SnapshotFor(1)
	for i := range dmx.NumOutputs {
		if !test.ExpectEquality(t, e.Level(dmx.Output(i)), f.Levels[i], i) {
			break // for loop
		}
	}

	// idempotent after convergence
	test.ExpectEquality(t, len(d.Diff(f)), 0)

	// changing a single level produces a single update
	f.Levels[300] = 0
	updates = d.Diff(f)
	test.DemandEquality(t, len(updates), 1)
	test.ExpectEquality(t, updates[0], dmx.CellUpdate{Universe: 1, Output: 300, Level: 0})
}

func TestUnmonitoredUniverse(t *testing.T) {
	d, reg := newDiffer(t, 1, 2, 4)

	updates := d.Diff(fullFrame(99, map[int]dmx.Level{0: 10, 2: 255}))
	test.ExpectEquality(t, len(updates), 0)

	for _, u := range reg.AllUniverses() {
		e := reg.SnapshotFor(u)
		for i := range dmx.NumOutputs {
			if !test.ExpectEquality(t, e.Level(dmx.Output(i)), dmx.Level(0), u, i) {
				break // for loop
			}
		}
	}
}

func TestShortFrame(t *testing.T) {
	d, reg := newDiffer(t, 1)

	d.Diff(fullFrame(1, map[int]dmx.Level{0: 1, 1: 1, 2: 1, 3: 50, 511: 60}))

	updates := d.Diff(dmx.Frame{Universe: 1, Levels: []dmx.Level{9, 1, 8}})
	test.DemandEquality(t, len(updates), 2)
	test.ExpectEquality(t, updates[0], dmx.CellUpdate{Universe: 1, Output: 0, Level: 9})
	test.ExpectEquality(t, updates[1], dmx.CellUpdate{Universe: 1, Output: 2, Level: 8})

	// outputs beyond the short frame are untouched
	e := reg.SnapshotFor(1)
	test.ExpectEquality(t, e.Level(3), dmx.Level(50))
	test.ExpectEquality(t, e.Level(511), dmx.Level(60))

	// an empty frame changes nothing
	test.ExpectEquality(t, len(d.Diff(dmx.Frame{Universe: 1})), 0)
}

func TestOversizedFrame(t *testing.T) {
	d, _ := newDiffer(t, 1)

	f := dmx.Frame{Universe: 1, Levels: make([]dmx.Level, dmx.NumOutputs+10)}
	for i := range f.Levels {
		f.Levels[i] = 1
	}

	updates := d.Diff(f)
	test.ExpectEquality(t, len(updates), dmx.NumOutputs)
	test.ExpectEquality(t, updates[len(updates)-1].Output, dmx.Output(dmx.NumOutputs-1))
}

func TestApply(t *testing.T) {
	d, _ := newDiffer(t, 1)

	var calls int
	emit := func(u []dmx.CellUpdate) {
		calls++
	}

	d.Apply(fullFrame(1, map[int]dmx.Level{5: 5}), emit)
	test.ExpectEquality(t, calls, 1)

	// no changes means no call to emit
	d.Apply(fullFrame(1, map[int]dmx.Level{5: 5}), emit)
	test.ExpectEquality(t, calls, 1)

	// unmonitored universes never call emit
	d.Apply(fullFrame(2, map[int]dmx.Level{5: 5}), emit)
	test.ExpectEquality(t, calls, 1)
}

func TestConcurrentUniverses(t *testing.T) {
	d, reg := newDiffer(t, 1, 2)

	const rounds = 200

	var wg sync.WaitGroup
	counts := make([]int, 3)

	for _, u := range []dmx.Universe{1, 2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range rounds {
				f := dmx.Frame{Universe: u, Levels: make([]dmx.Level, dmx.NumOutputs)}
				for i := range f.Levels {
					f.Levels[i] = dmx.Level((r + int(u)) % 256)
				}
				for _, c := range d.Diff(f) {
					if c.Universe != u {
						t.Errorf("update for %s in diff for %s", c.Universe, u)
						return
					}
					counts[u]++
				}
			}
		}()
	}

	wg.Wait()

	// each universe converged on its own last frame
	for _, u := range []dmx.Universe{1, 2} {
		want := dmx.Level((rounds - 1 + int(u)) % 256)
		e := reg.SnapshotFor(u)
		for i := range dmx.NumOutputs {
			if !test.ExpectEquality(t, e.Level(dmx.Output(i)), want, u, i) {
				break // for loop
			}
		}
	}

	// every round changes every output. universe 1 starts at level 1 and
	// universe 2 at level 2 so every round of both emits a full frame
	test.ExpectEquality(t, counts[1], rounds*dmx.NumOutputs)
	test.ExpectEquality(t, counts[2], rounds*dmx.NumOutputs)
}

func TestConcurrentSameUniverse(t *testing.T) {
	d, reg := newDiffer(t, 1)

	// frames alternate between two values from several goroutines. whatever
	// the interleaving, the emitted updates replayed in emit order must end at
	// the snapshot value
	var crit sync.Mutex
	var replay dmx.Snapshot

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range 100 {
				f := dmx.Frame{Universe: 1, Levels: make([]dmx.Level, dmx.NumOutputs)}
				for i := range f.Levels {
					f.Levels[i] = dmx.Level((g + r + i) % 3)
				}
				d.Apply(f, func(updates []dmx.CellUpdate) {
					crit.Lock()
					defer crit.Unlock()
					for _, c := range updates {
						replay[c.Output] = c.Level
					}
				})
			}
		}()
	}
	wg.Wait()

	e := reg.SnapshotFor(1)
	e.Lock()
	defer e.Unlock()
	test.ExpectEquality(t, *e.Snapshot(), replay)
}
