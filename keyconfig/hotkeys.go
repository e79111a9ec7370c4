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

package keyconfig

import (
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/userinput"
)

// HotKey identifies a front-end action that is available while a game is
// running.
type HotKey string

// List of valid HotKey values.
const (
	Reset      HotKey = "Reset"
	Turbo      HotKey = "Turbo"
	StateSave  HotKey = "StateSave"
	StateLoad  HotKey = "StateLoad"
	NextSlot   HotKey = "NextSlot"
	PrevSlot   HotKey = "PrevSlot"
	Rewind     HotKey = "Rewind"
	Menu       HotKey = "Menu"
	FullScreen HotKey = "FullScreen"
	ScaleUp    HotKey = "ScaleUp"
	ScaleDown  HotKey = "ScaleDown"
)

// HotKeys lists every HotKey in display order.
var HotKeys = []HotKey{
	Reset, Turbo, StateSave, StateLoad, NextSlot, PrevSlot,
	Rewind, Menu, FullScreen, ScaleUp, ScaleDown,
}

// Label returns the name of the HotKey as shown in the settings menu.
func (hk HotKey) Label() string {
	switch hk {
	case StateSave:
		return "State Save"
	case StateLoad:
		return "State Load"
	case NextSlot:
		return "State Slot Next"
	case PrevSlot:
		return "State Slot Prev"
	case Rewind:
		return "Start Rewinding"
	case Menu:
		return "Enter/Leave Menu"
	case FullScreen:
		return "Fullscreen"
	case ScaleUp:
		return "Window Scale +"
	case ScaleDown:
		return "Window Scale -"
	}
	return string(hk)
}

func ctrl(k userinput.KeyCode) keybind.Binding {
	return keybind.All(keybind.Key(userinput.KeyLControl), keybind.Key(k))
}

// DefaultHotKeys returns the default binding for every HotKey.
func DefaultHotKeys() []keybind.Entry {
	return []keybind.Entry{
		{Action: string(Reset), Binding: ctrl(userinput.KeyR)},
		{Action: string(Turbo), Binding: keybind.Any(
			keybind.Key(userinput.KeyTab),
			keybind.PadButton(0, userinput.LeftTrigger2),
		)},
		{Action: string(StateSave), Binding: ctrl(userinput.KeyS)},
		{Action: string(StateLoad), Binding: ctrl(userinput.KeyL)},
		{Action: string(NextSlot), Binding: ctrl(userinput.KeyN)},
		{Action: string(PrevSlot), Binding: ctrl(userinput.KeyP)},
		{Action: string(Rewind), Binding: keybind.Any(
			keybind.Key(userinput.KeyBack),
			keybind.All(keybind.PadButton(0, userinput.LeftTrigger2), keybind.PadButton(0, userinput.RightTrigger2)),
		)},
		{Action: string(Menu), Binding: keybind.Key(userinput.KeyEscape)},
		{Action: string(FullScreen), Binding: keybind.All(keybind.Key(userinput.KeyRAlt), keybind.Key(userinput.KeyReturn))},
		{Action: string(ScaleUp), Binding: keybind.All(
			keybind.Key(userinput.KeyLControl),
			keybind.Any(keybind.Key(userinput.KeyPlus), keybind.Key(userinput.KeyEquals)),
		)},
		{Action: string(ScaleDown), Binding: ctrl(userinput.KeyMinus)},
	}
}

// NewHotKeys returns a binding table populated with the default hotkeys.
func NewHotKeys() *keybind.Table {
	return keybind.NewTable(DefaultHotKeys)
}

// SystemKey identifies an action used to navigate the menu and the rewind
// timeline.
type SystemKey string

// List of valid SystemKey values.
const (
	Up     SystemKey = "Up"
	Down   SystemKey = "Down"
	Left   SystemKey = "Left"
	Right  SystemKey = "Right"
	Ok     SystemKey = "Ok"
	Cancel SystemKey = "Cancel"
)

// SystemKeys lists every SystemKey in display order.
var SystemKeys = []SystemKey{Up, Down, Left, Right, Ok, Cancel}

// Label returns the name of the SystemKey as shown in the settings menu.
func (sk SystemKey) Label() string {
	return string(sk)
}

// keyOrPad binds an action to a key and to a button on the first gamepad.
func keyOrPad(k userinput.KeyCode, b userinput.GamepadButtonType) keybind.Binding {
	return keybind.Any(keybind.Key(k), keybind.PadButton(0, b))
}

// DefaultSystemKeys returns the default binding for every SystemKey.
func DefaultSystemKeys() []keybind.Entry {
	return []keybind.Entry{
		{Action: string(Up), Binding: keyOrPad(userinput.KeyUp, userinput.DPadUp)},
		{Action: string(Down), Binding: keyOrPad(userinput.KeyDown, userinput.DPadDown)},
		{Action: string(Left), Binding: keyOrPad(userinput.KeyLeft, userinput.DPadLeft)},
		{Action: string(Right), Binding: keyOrPad(userinput.KeyRight, userinput.DPadRight)},
		{Action: string(Ok), Binding: keyOrPad(userinput.KeyReturn, userinput.East)},
		{Action: string(Cancel), Binding: keyOrPad(userinput.KeyBack, userinput.South)},
	}
}

// NewSystemKeys returns a binding table populated with the default system
// keys.
func NewSystemKeys() *keybind.Table {
	return keybind.NewTable(DefaultSystemKeys)
}
