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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/sacnmonitor/sacnmonitor/curated"
)

// Profile specifies which profiles should be written during a run.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// ProfilingError is the error pattern for all profiling errors.
const ProfilingError = "profiling: %v"

// ParseProfileString converts a comma separated list of profile names
// ("cpu", "mem", "all", "none") to a Profile value.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone
	for _, n := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "ALL":
			p |= ProfileCPU | ProfileMem
		default:
			return ProfileNone, curated.Errorf(ProfilingError, fmt.Sprintf("unknown profile (%s)", n))
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function, writing the requested profiles to
// files beginning with filenameHeader. The memory profile is written after
// run() returns.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfilingError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfilingError, err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfilingError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(ProfilingError, err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(ProfilingError, err)
		}
	}

	return nil
}
