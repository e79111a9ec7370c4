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

// Package keybind is a small boolean expression language over physical
// inputs. It is used to bind logical actions (hotkeys, menu navigation,
// emulated controller buttons) to keys, gamepad buttons and gamepad axes.
//
// The smallest unit is the SingleKey, which is a predicate over one physical
// input. A Chord is an AND of SingleKeys. All members of a Chord must be held
// for the Chord to be active. A Binding is an OR of Chords.
//
// Bindings are built with the Key(), PadButton() and PadAxis() constructors
// and combined with Any() and All():
//
//	// Ctrl and either of the Plus or Equals keys
//	keybind.All(keybind.Key(userinput.KeyLControl),
//		keybind.Any(keybind.Key(userinput.KeyPlus), keybind.Key(userinput.KeyEquals)))
//
// Every type in the package has a canonical text form, which is used by the
// keyconfig package to store bindings on disk. For example "LControl+R" or
// "Pad0.LT+Pad0.RT". Axes are written with a trailing direction, "Pad0.LX+"
// or "Pad0.LX-".
//
// The Capture type records a new Chord from the live input state. It is used
// by the settings menu to let the user rebind an action.
//
// A gamepad axis is never reported as just activated. Edge detection for
// analog inputs is not implemented so a Chord made up only of axes can never
// be freshly activated.
package keybind
