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

package userinput

// Event represents all the different type of events that can occur in the
// GUI. Events are created by the GUI implementation and handed to State.
type Event any

// EventQuit is sent when the user has requested that the program end.
type EventQuit struct{}

// EventKeyboard is sent when a key has been pressed or released. Key repeat
// events should be filtered out by the GUI or sent with Down set to true;
// the State type ignores presses of keys that are already held.
type EventKeyboard struct {
	Key  KeyCode
	Down bool
}

// EventGamepadButton is sent when a gamepad button has been pressed or
// released.
type EventGamepadButton struct {
	Pad    Pad
	Button GamepadButtonType
	Down   bool
}

// EventGamepadAxis is sent when an analog axis has moved. The value is
// normalised to the range -1.0 to 1.0.
type EventGamepadAxis struct {
	Pad   Pad
	Axis  GamepadAxisType
	Value float32
}

// EventGamepadRemoved is sent when a gamepad has been disconnected. Every
// button on the gamepad is released and every axis is centred.
type EventGamepadRemoved struct {
	Pad Pad
}
