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
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/userinput"
)

// Binding is an ordered list of Chords. A Binding is active if any of its
// Chords are active.
type Binding []Chord

// Key creates a Binding for a single key on the keyboard.
func Key(k userinput.KeyCode) Binding {
	return Binding{Chord{NewKeyCode(k)}}
}

// PadButton creates a Binding for a single gamepad button.
func PadButton(pad userinput.Pad, b userinput.GamepadButtonType) Binding {
	return Binding{Chord{NewGamepadButton(userinput.GamepadButton{Pad: pad, Button: b})}}
}

// PadAxis creates a Binding for a single gamepad axis pushed in the specified
// direction.
func PadAxis(pad userinput.Pad, a userinput.GamepadAxisType, dir AxisDirection) Binding {
	return Binding{Chord{NewGamepadAxis(userinput.GamepadAxis{Pad: pad, Axis: a}, dir)}}
}

// Any combines bindings such that the result is active if any of the bindings
// are active.
func Any(b Binding, bs ...Binding) Binding {
	for _, c := range bs {
		b = b.Or(c)
	}
	return b
}

// All combines bindings such that the result is active only if all of the
// bindings are active. Panics if any of the bindings are empty.
func All(b Binding, bs ...Binding) Binding {
	for _, c := range bs {
		b = b.And(c)
	}
	return b
}

// Pressed returns true if any Chord in the Binding is active.
func (b Binding) Pressed(s userinput.Snapshot) bool {
	for _, c := range b {
		if c.Active(s) {
			return true
		}
	}
	return false
}

// JustPressed returns true if any Chord in the Binding has been freshly
// activated.
func (b Binding) JustPressed(s userinput.Snapshot) bool {
	for _, c := range b {
		if c.FreshlyActivated(s) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the Binding.
func (b Binding) Clone() Binding {
	n := make(Binding, len(b))
	for i, c := range b {
		n[i] = slices.Clone(c)
	}
	return n
}

// And returns the cross product of the two bindings. Every chord in b is
// joined with every chord in o. The order of the result is row-major: all of
// the chords for b[0] come first, followed by all the chords for b[1], and so
// on.
//
// Panics if either Binding is empty.
func (b Binding) And(o Binding) Binding {
	if len(b) == 0 || len(o) == 0 {
		panic(curated.Errorf(EmptyBinding, "and"))
	}

	n := make(Binding, 0, len(b)*len(o))
	for _, l := range b {
		for _, r := range o {
			c := make(Chord, 0, len(l)+len(r))
			c = append(c, l...)
			c = append(c, r...)
			n = append(n, c)
		}
	}
	return n
}

// Or returns a new Binding with the chords of b followed by the chords of o.
func (b Binding) Or(o Binding) Binding {
	n := make(Binding, 0, len(b)+len(o))
	n = append(n, b.Clone()...)
	return append(n, o.Clone()...)
}

// ExtractKeyCode returns the key of the first Chord that is made up of a
// single key. The boolean is false if there is no such Chord.
func (b Binding) ExtractKeyCode() (userinput.KeyCode, bool) {
	for _, c := range b {
		if sk, ok := c.single(); ok {
			if k, ok := sk.KeyCode(); ok {
				return k, true
			}
		}
	}
	return 0, false
}

// InsertKeyCode replaces the first Chord that is made up of a single key. If
// there is no such Chord a new one is appended. Chords with more than one
// member are never changed.
func (b *Binding) InsertKeyCode(k userinput.KeyCode) {
	for i, c := range *b {
		if sk, ok := c.single(); ok && sk.Kind() == KindKeyCode {
			(*b)[i] = Chord{NewKeyCode(k)}
			return
		}
	}
	*b = append(*b, Chord{NewKeyCode(k)})
}

// ExtractGamepadButton returns the button of the first Chord that is made up
// of a single gamepad button. The boolean is false if there is no such Chord.
func (b Binding) ExtractGamepadButton() (userinput.GamepadButton, bool) {
	for _, c := range b {
		if sk, ok := c.single(); ok {
			if g, ok := sk.GamepadButton(); ok {
				return g, true
			}
		}
	}
	return userinput.GamepadButton{}, false
}

// InsertGamepadButton replaces the first Chord that is made up of a single
// gamepad button. If there is no such Chord a new one is appended.
func (b *Binding) InsertGamepadButton(g userinput.GamepadButton) {
	for i, c := range *b {
		if sk, ok := c.single(); ok && sk.Kind() == KindGamepadButton {
			(*b)[i] = Chord{NewGamepadButton(g)}
			return
		}
	}
	*b = append(*b, Chord{NewGamepadButton(g)})
}

// SetChord replaces the Chord at index i. If i is equal to the number of
// chords then the Chord is appended. Returns false if the index is out of
// range or if the Chord is empty.
func (b *Binding) SetChord(i int, c Chord) bool {
	if len(c) == 0 || i < 0 || i > len(*b) {
		return false
	}
	if i == len(*b) {
		*b = append(*b, slices.Clone(c))
		return true
	}
	(*b)[i] = slices.Clone(c)
	return true
}

// AppendChord adds the Chord to the end of the Binding. Empty chords are
// ignored.
func (b *Binding) AppendChord(c Chord) {
	if len(c) == 0 {
		return
	}
	*b = append(*b, slices.Clone(c))
}

// RemoveChord removes the Chord at index i. Returns false if the index is out
// of range.
func (b *Binding) RemoveChord(i int) bool {
	if i < 0 || i >= len(*b) {
		return false
	}
	*b = slices.Delete(*b, i, i+1)
	return true
}

// Equal returns true if both bindings have equal chords in the same order.
func (b Binding) Equal(o Binding) bool {
	return slices.EqualFunc(b, o, Chord.Equal)
}

// Strings returns the canonical text form of each Chord in the Binding.
func (b Binding) Strings() []string {
	s := make([]string, len(b))
	for i, c := range b {
		s[i] = c.String()
	}
	return s
}

// String returns the chords of the Binding separated by a comma.
func (b Binding) String() string {
	return strings.Join(b.Strings(), ", ")
}

// ParseBinding is the inverse of Binding.String().
func ParseBinding(s string) (Binding, error) {
	if strings.TrimSpace(s) == "" {
		return Binding{}, nil
	}
	return parseChords(strings.Split(s, ","))
}

func parseChords(s []string) (Binding, error) {
	b := make(Binding, 0, len(s))
	for _, t := range s {
		c, err := ParseChord(t)
		if err != nil {
			return nil, err
		}
		b = append(b, c)
	}
	return b, nil
}

// MarshalYAML implements the yaml.Marshaler interface. A Binding is stored as
// a sequence of chord strings.
func (b Binding) MarshalYAML() (any, error) {
	return b.Strings(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (b *Binding) UnmarshalYAML(value *yaml.Node) error {
	var s []string
	if err := value.Decode(&s); err != nil {
		return curated.Errorf(MalformedChord, err)
	}
	n, err := parseChords(s)
	if err != nil {
		return err
	}
	*b = n
	return nil
}

// MarshalJSON implements the json.Marshaler interface. A Binding is stored as
// an array of chord strings.
func (b Binding) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Strings())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *Binding) UnmarshalJSON(data []byte) error {
	var s []string
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf(MalformedChord, err)
	}
	n, err := parseChords(s)
	if err != nil {
		return err
	}
	*b = n
	return nil
}
