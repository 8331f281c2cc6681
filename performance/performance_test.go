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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/performance"
	"github.com/sacnmonitor/sacnmonitor/test"
)

func TestCalcFPS(t *testing.T) {
	test.ExpectEquality(t, performance.CalcFPS(60, time.Second), 60.0)
	test.ExpectEquality(t, performance.CalcFPS(30, 2*time.Second), 15.0)
	test.ExpectEquality(t, performance.CalcFPS(30, 0), 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	_, err = performance.ParseProfileString("disk")
	test.ExpectSuccess(t, curated.Is(err, performance.ProfilingError))
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "sacnmonitor")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectFailure(t, err)
}
