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

import "fmt"

// Pad identifies a connected gamepad. The first gamepad is zero.
type Pad int

// GamepadButtonType lists the digital buttons of a gamepad. The names follow
// the position of the button rather than the label printed on it.
type GamepadButtonType int

// List of valid GamepadButtonType values.
const (
	South GamepadButtonType = iota
	East
	North
	West
	C
	Z
	LeftTrigger
	LeftTrigger2
	RightTrigger
	RightTrigger2
	Select
	Start
	Mode
	LeftThumb
	RightThumb
	DPadUp
	DPadDown
	DPadLeft
	DPadRight

	numGamepadButtonTypes
)

// short labels in the same order as the GamepadButtonType constants
var gamepadButtonLabels = [numGamepadButtonTypes]string{
	"S", "E", "N", "W", "C", "Z",
	"LB", "LT", "RB", "RT",
	"Select", "Start", "Mode",
	"LS", "RS",
	"DPadUp", "DPadDown", "DPadLeft", "DPadRight",
}

// String returns the short label for the button type. For example, the label
// for LeftTrigger2 is "LT".
func (b GamepadButtonType) String() string {
	if b < 0 || b >= numGamepadButtonTypes {
		return fmt.Sprintf("GamepadButtonType(%d)", int(b))
	}
	return gamepadButtonLabels[b]
}

// ParseGamepadButtonType is the inverse of GamepadButtonType.String().
func ParseGamepadButtonType(label string) (GamepadButtonType, bool) {
	for i, l := range gamepadButtonLabels {
		if l == label {
			return GamepadButtonType(i), true
		}
	}
	return 0, false
}

// GamepadAxisType lists the analog axes of a gamepad.
type GamepadAxisType int

// List of valid GamepadAxisType values.
const (
	LeftStickX GamepadAxisType = iota
	LeftStickY
	LeftZ
	RightStickX
	RightStickY
	RightZ
	DPadX
	DPadY

	numGamepadAxisTypes
)

var gamepadAxisLabels = [numGamepadAxisTypes]string{
	"LX", "LY", "LZ", "RX", "RY", "RZ", "DPadX", "DPadY",
}

func (a GamepadAxisType) String() string {
	if a < 0 || a >= numGamepadAxisTypes {
		return fmt.Sprintf("GamepadAxisType(%d)", int(a))
	}
	return gamepadAxisLabels[a]
}

// ParseGamepadAxisType is the inverse of GamepadAxisType.String().
func ParseGamepadAxisType(label string) (GamepadAxisType, bool) {
	for i, l := range gamepadAxisLabels {
		if l == label {
			return GamepadAxisType(i), true
		}
	}
	return 0, false
}

// GamepadButton is a button on a specific gamepad.
type GamepadButton struct {
	Pad    Pad
	Button GamepadButtonType
}

// String returns the button in the form "Pad0.LT".
func (b GamepadButton) String() string {
	return fmt.Sprintf("Pad%d.%s", b.Pad, b.Button)
}

// less is used to sort buttons in a deterministic order.
func (b GamepadButton) less(c GamepadButton) bool {
	if b.Pad == c.Pad {
		return b.Button < c.Button
	}
	return b.Pad < c.Pad
}

// GamepadAxis is an axis on a specific gamepad.
type GamepadAxis struct {
	Pad  Pad
	Axis GamepadAxisType
}

// String returns the axis in the form "Pad0.LX".
func (a GamepadAxis) String() string {
	return fmt.Sprintf("Pad%d.%s", a.Pad, a.Axis)
}
