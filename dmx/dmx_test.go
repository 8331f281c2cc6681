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

package dmx_test

import (
	"testing"

	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/test"
)

func TestUniverseRange(t *testing.T) {
	test.ExpectFailure(t, dmx.Universe(0).Valid())
	test.ExpectSuccess(t, dmx.MinUniverse.Valid())
	test.ExpectSuccess(t, dmx.MaxUniverse.Valid())
	test.ExpectFailure(t, dmx.Universe(64000).Valid())
}

func TestOutput(t *testing.T) {
	test.ExpectFailure(t, dmx.Output(-1).Valid())
	test.ExpectSuccess(t, dmx.Output(0).Valid())
	test.ExpectSuccess(t, dmx.Output(511).Valid())
	test.ExpectFailure(t, dmx.Output(512).Valid())
	test.ExpectEquality(t, dmx.Output(0).Display(), 1)
	test.ExpectEquality(t, dmx.Output(511).Display(), 512)
}

func TestCellUpdateString(t *testing.T) {
	c := dmx.CellUpdate{Universe: 1, Output: 2, Level: 255}
	test.ExpectEquality(t, c.String(), "universe 1 output 3: 255")
}
