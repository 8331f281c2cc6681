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

// Package version reports the version of the program. The version number is
// set at build time with the linker:
//
//	go build -ldflags "-X github.com/sacnmonitor/sacnmonitor/version.number=v0.1.0"
//
// Without a version number the version is "unreleased" if VCS information
// is available and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the program.
const ApplicationName = "sacnmonitor"

// set by the linker.
var number string

var (
	revision string
	version  string
)

// Version returns the version string, the revision string and whether this
// is a released version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name, version and revision on one line.
func String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	default:
		return "local", rev
	}
}
