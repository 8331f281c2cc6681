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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/prefs"
	"github.com/sacnmonitor/sacnmonitor/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// check invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// check (partially) invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// get prefs value that doesn't exist after pushing a partially invalid
	// prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar")

	// add another command line group
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("monitor.universes", &v))
	test.ExpectSuccess(t, v.Set("1,2,4"))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("monitor.universes::7")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.String(), "7")

	// the command line value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// loading again restores the value from the file
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.String(), "1,2,4")
}

func TestCommandLineNotSavedOnFail(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("monitor.universes", &v))
	test.ExpectSuccess(t, v.Set("1,2,4"))

	// the missing file is created with the value from before the command line
	prefs.PushCommandLineStack("monitor.universes::5")
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	prefs.PopCommandLineStack()
	test.ExpectEquality(t, v.String(), "5")

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.String(), "1,2,4")
}
