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
	"github.com/meru-emu/meru/logger"
	"github.com/meru-emu/meru/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Input translates SDL events into userinput events. SDL must have been
// initialised with the INIT_GAMECONTROLLER flag for gamepads to be recognised.
//
// Gamepads are numbered in the order in which they are attached. The number of
// a removed gamepad is reused by the next gamepad to be attached.
type Input struct {
	// open controllers indexed by joystick instance ID
	pads map[sdl.JoystickID]*pad

	// most recent state of the analogue triggers
	triggers map[userinput.GamepadButton]bool
}

type pad struct {
	id         userinput.Pad
	controller *sdl.GameController
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{
		pads:     make(map[sdl.JoystickID]*pad),
		triggers: make(map[userinput.GamepadButton]bool),
	}
}

// Poll returns the userinput events for every SDL event waiting in the queue.
// Must be called from the main thread.
func (in *Input) Poll() []userinput.Event {
	var events []userinput.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		events = append(events, in.Translate(ev)...)
	}
	return events
}

// Close every open gamepad.
func (in *Input) Close() {
	for id, p := range in.pads {
		if p.controller != nil {
			p.controller.Close()
		}
		delete(in.pads, id)
	}
}

// the lowest pad number not in use
func (in *Input) nextPad() userinput.Pad {
	var n userinput.Pad
	for {
		used := false
		for _, p := range in.pads {
			if p.id == n {
				used = true
				break
			}
		}
		if !used {
			return n
		}
		n++
	}
}

// Attach a pad with the joystick instance ID. The controller can be nil.
// Returns the pad number assigned to the instance ID.
func (in *Input) Attach(which sdl.JoystickID, controller *sdl.GameController) userinput.Pad {
	if p, ok := in.pads[which]; ok {
		return p.id
	}
	p := &pad{id: in.nextPad(), controller: controller}
	in.pads[which] = p
	return p.id
}

// Translate a single SDL event. Events that have no userinput equivalent
// result in an empty slice.
func (in *Input) Translate(ev sdl.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return []userinput.Event{userinput.EventQuit{}}

	case *sdl.KeyboardEvent:
		// key repeat is of no interest. the userinput package tracks held
		// keys itself
		if ev.Repeat != 0 {
			return nil
		}
		k, ok := KeyCode(ev.Keysym.Scancode)
		if !ok {
			return nil
		}
		return []userinput.Event{userinput.EventKeyboard{
			Key:  k,
			Down: ev.Type == sdl.KEYDOWN,
		}}

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// for the added event the Which field is the device index and not
			// the instance ID
			gc := sdl.GameControllerOpen(int(ev.Which))
			if gc == nil {
				logger.Logf(logger.Allow, "sdlinput", "cannot open gamepad %d", ev.Which)
				return nil
			}
			id := in.Attach(gc.Joystick().InstanceID(), gc)
			logger.Logf(logger.Allow, "sdlinput", "gamepad %d: %s", id, gc.Name())

		case sdl.CONTROLLERDEVICEREMOVED:
			p, ok := in.pads[ev.Which]
			if !ok {
				return nil
			}
			if p.controller != nil {
				p.controller.Close()
			}
			delete(in.pads, ev.Which)
			for b := range in.triggers {
				if b.Pad == p.id {
					delete(in.triggers, b)
				}
			}
			return []userinput.Event{userinput.EventGamepadRemoved{Pad: p.id}}
		}

	case *sdl.ControllerButtonEvent:
		p, ok := in.pads[ev.Which]
		if !ok {
			return nil
		}
		b, ok := buttons[sdl.GameControllerButton(ev.Button)]
		if !ok {
			return nil
		}
		return []userinput.Event{userinput.EventGamepadButton{
			Pad:    p.id,
			Button: b,
			Down:   ev.State == sdl.PRESSED,
		}}

	case *sdl.ControllerAxisEvent:
		p, ok := in.pads[ev.Which]
		if !ok {
			return nil
		}
		axis := sdl.GameControllerAxis(ev.Axis)
		a, ok := axes[axis]
		if !ok {
			return nil
		}

		v := normalise(axis, ev.Value)
		events := []userinput.Event{userinput.EventGamepadAxis{
			Pad:   p.id,
			Axis:  a,
			Value: v,
		}}

		// triggers generate a button event when the threshold is crossed
		if t, ok := triggers[axis]; ok {
			b := userinput.GamepadButton{Pad: p.id, Button: t}
			down := v > triggerThreshold
			if down != in.triggers[b] {
				in.triggers[b] = down
				events = append(events, userinput.EventGamepadButton{
					Pad:    p.id,
					Button: t,
					Down:   down,
				})
			}
		}

		return events
	}

	return nil
}
