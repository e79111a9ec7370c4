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

package sdlinput

import (
	"github.com/meru-emu/meru/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL uses the position of the button on an Xbox controller for naming. the
// userinput package uses compass points
var buttons = map[sdl.GameControllerButton]userinput.GamepadButtonType{
	sdl.CONTROLLER_BUTTON_A:             userinput.South,
	sdl.CONTROLLER_BUTTON_B:             userinput.East,
	sdl.CONTROLLER_BUTTON_X:             userinput.West,
	sdl.CONTROLLER_BUTTON_Y:             userinput.North,
	sdl.CONTROLLER_BUTTON_BACK:          userinput.Select,
	sdl.CONTROLLER_BUTTON_GUIDE:         userinput.Mode,
	sdl.CONTROLLER_BUTTON_START:         userinput.Start,
	sdl.CONTROLLER_BUTTON_LEFTSTICK:     userinput.LeftThumb,
	sdl.CONTROLLER_BUTTON_RIGHTSTICK:    userinput.RightThumb,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  userinput.LeftTrigger,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: userinput.RightTrigger,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       userinput.DPadUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     userinput.DPadDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     userinput.DPadLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    userinput.DPadRight,
}

var axes = map[sdl.GameControllerAxis]userinput.GamepadAxisType{
	sdl.CONTROLLER_AXIS_LEFTX:        userinput.LeftStickX,
	sdl.CONTROLLER_AXIS_LEFTY:        userinput.LeftStickY,
	sdl.CONTROLLER_AXIS_RIGHTX:       userinput.RightStickX,
	sdl.CONTROLLER_AXIS_RIGHTY:       userinput.RightStickY,
	sdl.CONTROLLER_AXIS_TRIGGERLEFT:  userinput.LeftZ,
	sdl.CONTROLLER_AXIS_TRIGGERRIGHT: userinput.RightZ,
}

// the analogue triggers are also reported as buttons. the trigger is pressed
// when the axis value is above this threshold
const triggerThreshold = 0.5

var triggers = map[sdl.GameControllerAxis]userinput.GamepadButtonType{
	sdl.CONTROLLER_AXIS_TRIGGERLEFT:  userinput.LeftTrigger2,
	sdl.CONTROLLER_AXIS_TRIGGERRIGHT: userinput.RightTrigger2,
}

// normalise an SDL axis value to the range -1.0 to 1.0. the y axes are
// inverted so that up is positive
func normalise(axis sdl.GameControllerAxis, v int16) float32 {
	f := float32(v) / 32767.0
	if f < -1.0 {
		f = -1.0
	}
	if axis == sdl.CONTROLLER_AXIS_LEFTY || axis == sdl.CONTROLLER_AXIS_RIGHTY {
		f = -f
	}
	return f
}
