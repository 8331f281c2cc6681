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

// Package paths contains functions to prepare paths to sacnmonitor resources,
// currently only the preferences file.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory, creating any missing directories on the way:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the config directory is ".sacnmonitor" in the
// current directory. Release builds (built with the "release" tag) use a
// "sacnmonitor" directory in the user's config directory as returned by
// os.UserConfigDir(). On a modern Linux system that will be:
//
//	/home/user/.config/sacnmonitor/preferences
package paths

import (
	"path"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The subPth argument is a path to a sub-directory of the base config
// directory. The file argument is the name of the file in that directory.
// Either argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return path.Join(base, file), nil
}
