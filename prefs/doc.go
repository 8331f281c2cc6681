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

// Package prefs facilitates the storage of preferences on disk. Preference
// values are instances of the Bool, String, Int and Generic types. All of
// which are safe to read and write from different goroutines.
//
// Values are associated with a key and added to a Disk instance. The Disk
// is the interface to the file on disk:
//
//	var universes prefs.String
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("monitor.universes", &universes)
//	err = dsk.Load(true)
//
// The file is a plain text file with one "key :: value" pair per line,
// preceded by the WarningBoilerPlate line. Keys in the file that have not been
// added to a Disk instance are preserved when the Disk is saved, meaning that
// more than one Disk instance can share the same file.
//
// Values can be overridden from the command line with the command line stack.
// See PushCommandLineStack() for details.
package prefs
