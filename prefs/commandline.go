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
	"fmt"
	"sort"
	"strings"
	"sync"
)

var commandLineStack struct {
	crit  sync.Mutex
	stack []map[string]string
}

// PushCommandLineStack adds a new group of preference values to the top of
// the command line stack. The prefs string is a list of key/value pairs
// separated by semicolons, with the key and value separated by a double
// colon. For example:
//
//	monitor.universes::1,2,4; sdl.fps::60
//
// Malformed pairs are ignored. The values in the group take priority over
// values in the prefs file the next time a Disk with that key is loaded.
// Each value is used only once.
func PushCommandLineStack(prefs string) {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack.stack = append(commandLineStack.stack, cl)
}

// PopCommandLineStack removes the group at the top of the stack and returns
// the unused values in that group, in the same format as accepted by
// PushCommandLineStack(). Keys are sorted.
func PopCommandLineStack() string {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	if len(commandLineStack.stack) == 0 {
		return ""
	}

	popped := commandLineStack.stack[len(commandLineStack.stack)-1]
	commandLineStack.stack = commandLineStack.stack[:len(commandLineStack.stack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, popped[k]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for the key from the group at the top
// of the stack. The value is removed from the group.
func GetCommandLinePref(key string) (bool, string) {
	commandLineStack.crit.Lock()
	defer commandLineStack.crit.Unlock()

	if len(commandLineStack.stack) == 0 {
		return false, ""
	}

	cl := commandLineStack.stack[len(commandLineStack.stack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}
