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

package universe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/dmx"
)

// MalformedList is the error pattern returned by Parse().
const MalformedList = "universe: malformed universe list (%s)"

// MaxUniverses is the largest number of universes Parse() accepts, counting
// every member of a range and any duplicates.
const MaxUniverses = 64

// Parse a list of universes. Universes are separated by commas and inclusive
// ranges are indicated by a hyphen. For example:
//
//	1,2,4
//	1-3,10
//
// The returned list is in the order it was specified and may contain
// duplicates. It is suitable for passing to NewRegistry(). A list longer
// than MaxUniverses is malformed.
func Parse(s string) ([]dmx.Universe, error) {
	var universes []dmx.Universe

	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue // for loop
		}

		lo, hi, isRange := strings.Cut(f, "-")

		first, err := parseOne(lo)
		if err != nil {
			return nil, curated.Errorf(MalformedList, err)
		}

		last := first
		if isRange {
			last, err = parseOne(hi)
			if err != nil {
				return nil, curated.Errorf(MalformedList, err)
			}
			if last < first {
				return nil, curated.Errorf(MalformedList, f)
			}
		}

		if len(universes)+int(last-first)+1 > MaxUniverses {
			return nil, curated.Errorf(MalformedList, fmt.Sprintf("more than %d universes", MaxUniverses))
		}

		for u := first; u <= last; u++ {
			universes = append(universes, u)
		}
	}

	if len(universes) == 0 {
		return nil, curated.Errorf(NoUniverses)
	}

	return universes, nil
}

func parseOne(s string) (dmx.Universe, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, curated.Errorf("%s", s)
	}
	u := dmx.Universe(v)
	if !u.Valid() {
		return 0, curated.Errorf(InvalidUniverse, v)
	}
	return u, nil
}
