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

// Package modalflag wraps the flag package from the standard library and
// adds program modes. Each mode has its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(). Unlike
// flag.FlagSet.Parse() the arguments are not passed to Parse() because the
// same argument list is consumed over several calls, one per mode level:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "TERM", "VERSION")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SDL":
//		md.NewMode()
//		fps := md.AddInt("fps", 30, "frame rate of the display")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. It is
// selected when the argument after the flags is not one of the listed
// sub-modes. Sub-mode comparisons are case insensitive.
//
// Flags are added with the AddBool(), AddInt() and AddString() functions.
// Each returns a pointer to a value which is set when Parse() is called.
//
// Help messages are printed to the Output writer when the -help flag is
// present. Parse() returns ParseHelp in that case.
package modalflag
