// This file is part of Meru.
//
// Meru is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Meru is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Meru.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, with a different set of flags for each mode.
//
// Arguments are given with NewArgs() and parsed with Parse(). Flags are added
// before the call to Parse() in the same way as the flag package:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "KEYS", "REWINDSIM")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected mode. The first sub-mode in the
// list is selected if the first argument is not a mode. A mode's own flags are
// added after a call to NewMode():
//
//	switch md.Mode() {
//	case "REWINDSIM":
//		md.NewMode()
//		seconds := md.AddInt("seconds", 60, "simulated seconds of play")
//		rate := md.AddBytes("rate", 128*1024, "rewind byte rate budget")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be nested to any depth. The Path() function returns the chain of
// modes that have been selected, separated by a slash.
//
// Byte quantities can be given with a binary unit suffix when the flag is
// added with AddBytes(). For example, "-limit 1GiB".
package modalflag
