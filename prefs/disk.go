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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sacnmonitor/sacnmonitor/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file while the monitor is running ***"

// the separator between key and value in the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile      = "prefs: no prefs file (%s)"
	DuplicateKey     = "prefs: duplicate key (%s)"
	MalformedEntry   = "prefs: malformed entry in prefs file (%s: line %d)"
	CannotWritePrefs = "prefs: cannot write prefs file (%s): %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref

	// values that Save() writes in place of the current value. a key is
	// in this map when its current value came from the command line
	fileValues map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:       path,
		entries:    make(map[string]pref),
		fileValues: make(map[string]string),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// keys returns the list of registered keys in sorted order. assumes the
// critical section has been entered.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	return nil
}

// readFile returns all the key/value pairs in the preferences file. a missing
// file is not an error, it returns an empty map and false.
func (dsk *Disk) readFile() (map[string]string, bool, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		s := scanner.Text()

		// skip boilerplate and empty lines
		if s == WarningBoilerPlate || strings.TrimSpace(s) == "" {
			continue
		}

		kv := strings.SplitN(s, keySep, 2)
		if len(kv) != 2 {
			return nil, true, curated.Errorf(MalformedEntry, dsk.path, line)
		}
		entries[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, true, err
	}

	return entries, true, nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to this Disk instance are preserved. Values taken from the
// command line by Load() are not saved: the value from the file, or the
// value before Load() if the file had no entry, is written instead.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	entries, _, err := dsk.readFile()
	if err != nil {
		return curated.Errorf(CannotWritePrefs, dsk.path, err)
	}

	// update entries with values from this disk instance
	for k, p := range dsk.entries {
		if v, ok := dsk.fileValues[k]; ok {
			entries[k] = v
		} else {
			entries[k] = p.String()
		}
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, entries[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0600)
	if err != nil {
		return curated.Errorf(CannotWritePrefs, dsk.path, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// priority over values in the file.
//
// If the file does not exist the NoPrefsFile error is returned. If saveOnFail
// is true the current values are written to disk in that case, creating the
// file for next time.
func (dsk *Disk) Load(saveOnFail bool) error {
	dsk.crit.Lock()

	entries, found, err := dsk.readFile()
	if err != nil {
		dsk.crit.Unlock()
		return err
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				dsk.crit.Unlock()
				return err
			}
		}
	}

	clear(dsk.fileValues)
	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			dsk.fileValues[k] = dsk.entries[k].String()
			if err := dsk.entries[k].Set(v); err != nil {
				dsk.crit.Unlock()
				return err
			}
		}
	}

	dsk.crit.Unlock()

	if !found {
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// Reset all registered values to their zero state. The file on disk is not
// changed until Save() is called.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}
