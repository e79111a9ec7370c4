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

package keybind

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/userinput"
)

// Kind indicates the type of physical input a SingleKey refers to.
type Kind int

// List of valid Kind values.
const (
	KindKeyCode Kind = iota
	KindGamepadButton
	KindGamepadAxis
)

func (k Kind) String() string {
	switch k {
	case KindKeyCode:
		return "key"
	case KindGamepadButton:
		return "button"
	case KindGamepadAxis:
		return "axis"
	}
	return "unknown"
}

// AxisDirection is the direction an analog axis must be pushed for a
// SingleKey to be active.
type AxisDirection int

// List of valid AxisDirection values.
const (
	Positive AxisDirection = iota
	Negative
)

func (d AxisDirection) String() string {
	if d == Negative {
		return "-"
	}
	return "+"
}

// AxisThreshold is the absolute value an axis must reach before it is
// considered to be active.
const AxisThreshold = 0.5

// SingleKey is a predicate over a single physical input. The zero value is
// the predicate for KeyCode zero.
//
// SingleKey is comparable and can be used as a map key.
type SingleKey struct {
	kind   Kind
	key    userinput.KeyCode
	button userinput.GamepadButton
	axis   userinput.GamepadAxis
	dir    AxisDirection
}

// NewKeyCode creates a SingleKey for a key on the keyboard.
func NewKeyCode(k userinput.KeyCode) SingleKey {
	return SingleKey{kind: KindKeyCode, key: k}
}

// NewGamepadButton creates a SingleKey for a digital gamepad button.
func NewGamepadButton(b userinput.GamepadButton) SingleKey {
	return SingleKey{kind: KindGamepadButton, button: b}
}

// NewGamepadAxis creates a SingleKey for an analog gamepad axis pushed in the
// specified direction.
func NewGamepadAxis(a userinput.GamepadAxis, dir AxisDirection) SingleKey {
	return SingleKey{kind: KindGamepadAxis, axis: a, dir: dir}
}

// Kind returns the type of input the SingleKey refers to.
func (sk SingleKey) Kind() Kind {
	return sk.kind
}

// KeyCode returns the key if the SingleKey is of KindKeyCode.
func (sk SingleKey) KeyCode() (userinput.KeyCode, bool) {
	return sk.key, sk.kind == KindKeyCode
}

// GamepadButton returns the button if the SingleKey is of KindGamepadButton.
func (sk SingleKey) GamepadButton() (userinput.GamepadButton, bool) {
	return sk.button, sk.kind == KindGamepadButton
}

// GamepadAxis returns the axis and direction if the SingleKey is of
// KindGamepadAxis.
func (sk SingleKey) GamepadAxis() (userinput.GamepadAxis, AxisDirection, bool) {
	return sk.axis, sk.dir, sk.kind == KindGamepadAxis
}

// Active returns true if the input is held. An axis that has never reported a
// value is treated as being centred.
func (sk SingleKey) Active(s userinput.Snapshot) bool {
	switch sk.kind {
	case KindKeyCode:
		return s.KeyHeld(sk.key)
	case KindGamepadButton:
		return s.ButtonHeld(sk.button)
	case KindGamepadAxis:
		v, _ := s.Axis(sk.axis)
		if sk.dir == Positive {
			return v >= AxisThreshold
		}
		return v <= -AxisThreshold
	}
	return false
}

// JustActivated returns true if the input was pressed during the tick. Always
// false for axes.
func (sk SingleKey) JustActivated(s userinput.Snapshot) bool {
	switch sk.kind {
	case KindKeyCode:
		return s.KeyJustPressed(sk.key)
	case KindGamepadButton:
		return s.ButtonJustPressed(sk.button)
	}
	return false
}

// String returns the canonical text form of the SingleKey.
func (sk SingleKey) String() string {
	switch sk.kind {
	case KindKeyCode:
		return sk.key.String()
	case KindGamepadButton:
		return sk.button.String()
	case KindGamepadAxis:
		return fmt.Sprintf("%s%s", sk.axis, sk.dir)
	}
	return "unknown"
}

// MarshalText implements the encoding.TextMarshaler interface.
func (sk SingleKey) MarshalText() ([]byte, error) {
	return []byte(sk.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (sk *SingleKey) UnmarshalText(text []byte) error {
	k, err := ParseSingleKey(string(text))
	if err != nil {
		return err
	}
	*sk = k
	return nil
}

// ParseSingleKey parses the canonical text form of a SingleKey.
func ParseSingleKey(s string) (SingleKey, error) {
	s = strings.TrimSpace(s)

	if k, ok := userinput.ParseKeyCode(s); ok {
		return NewKeyCode(k), nil
	}

	if !strings.HasPrefix(s, "Pad") {
		return SingleKey{}, curated.Errorf(UnknownKey, s)
	}

	id, label, ok := strings.Cut(s[len("Pad"):], ".")
	if !ok {
		return SingleKey{}, curated.Errorf(UnknownKey, s)
	}
	pad, err := strconv.Atoi(id)
	if err != nil || pad < 0 {
		return SingleKey{}, curated.Errorf(UnknownKey, s)
	}

	if b, ok := userinput.ParseGamepadButtonType(label); ok {
		return NewGamepadButton(userinput.GamepadButton{Pad: userinput.Pad(pad), Button: b}), nil
	}

	dir := Positive
	switch {
	case strings.HasSuffix(label, "+"):
		label = strings.TrimSuffix(label, "+")
	case strings.HasSuffix(label, "-"):
		label = strings.TrimSuffix(label, "-")
		dir = Negative
	default:
		return SingleKey{}, curated.Errorf(UnknownKey, s)
	}

	if a, ok := userinput.ParseGamepadAxisType(label); ok {
		return NewGamepadAxis(userinput.GamepadAxis{Pad: userinput.Pad(pad), Axis: a}, dir), nil
	}

	return SingleKey{}, curated.Errorf(UnknownKey, s)
}
