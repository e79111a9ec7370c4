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

// Package prefs holds live preference values and synchronises them with a
// YAML file on disk.
//
// Preference values are declared with one of the types Bool, Int, Bytes, Float or
// String and then added to a Disk instance under a unique key. Keys are
// conventionally namespaced with a dot, for example "rewind.rate".
//
//	var rate prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("rewind.rate", &rate)
//	dsk.Load()
//
// Hook functions can be attached to a value with SetHookPre() and
// SetHookPost(). The pre hook can veto the change by returning an error.
//
// Values can be forced from the command line with PushCommandLineStack(). The
// next call to Disk.Load() will use those values in preference to the values
// in the file.
package prefs
