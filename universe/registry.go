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

// Package universe holds the registry of monitored universes. The registry is
// fixed when it is created and has one Entry per universe. Each entry carries
// the snapshot of levels for that universe and the lock that serialises
// access to it.
//
// The registry itself is never modified after creation and so can be read
// from any goroutine without locking. Only the snapshot in each entry needs
// protection.
package universe

import (
	"slices"
	"sync"

	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/dmx"
)

// Sentinal error patterns.
const (
	NoUniverses     = "universe: no universes to monitor"
	InvalidUniverse = "universe: invalid universe (%d)"
)

// Entry is the registry entry for one universe.
type Entry struct {
	crit     sync.Mutex
	universe dmx.Universe
	snapshot dmx.Snapshot
}

// Universe returns the universe of the entry.
func (e *Entry) Universe() dmx.Universe {
	return e.universe
}

// Lock the snapshot for exclusive use.
func (e *Entry) Lock() {
	e.crit.Lock()
}

// Unlock the snapshot.
func (e *Entry) Unlock() {
	e.crit.Unlock()
}

// Snapshot returns the snapshot of the entry. The entry must be locked for
// the entire time the snapshot is being used.
func (e *Entry) Snapshot() *dmx.Snapshot {
	return &e.snapshot
}

// Level returns the level of a single output in the snapshot. The entry is
// locked for the duration of the call.
func (e *Entry) Level(o dmx.Output) dmx.Level {
	e.crit.Lock()
	defer e.crit.Unlock()
	return e.snapshot[o]
}

// Registry is the set of monitored universes.
type Registry struct {
	universes []dmx.Universe
	entries   map[dmx.Universe]*Entry
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. At least one universe must be given and every universe must be in
// the range permitted by the protocol. Duplicates are collapsed.
func NewRegistry(universes ...dmx.Universe) (*Registry, error) {
	if len(universes) == 0 {
		return nil, curated.Errorf(NoUniverses)
	}

	reg := &Registry{
		entries: make(map[dmx.Universe]*Entry),
	}

	for _, u := range universes {
		if !u.Valid() {
			return nil, curated.Errorf(InvalidUniverse, u)
		}
		if _, ok := reg.entries[u]; ok {
			continue // for loop
		}
		reg.entries[u] = &Entry{universe: u}
		reg.universes = append(reg.universes, u)
	}

	slices.Sort(reg.universes)

	return reg, nil
}

// IsMonitored returns true if the universe is in the registry.
func (reg *Registry) IsMonitored(u dmx.Universe) bool {
	_, ok := reg.entries[u]
	return ok
}

// SnapshotFor returns the entry for the universe. Returns nil if the
// universe is not monitored.
func (reg *Registry) SnapshotFor(u dmx.Universe) *Entry {
	return reg.entries[u]
}

// AllUniverses returns every monitored universe in ascending order. The
// returned slice is a copy and can be modified by the caller.
func (reg *Registry) AllUniverses() []dmx.Universe {
	return slices.Clone(reg.universes)
}

// Len returns the number of monitored universes.
func (reg *Registry) Len() int {
	return len(reg.universes)
}
