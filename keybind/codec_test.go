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

package keybind_test

import (
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/test"
	"github.com/meru-emu/meru/userinput"
)

func TestSingleKeyText(t *testing.T) {
	for _, s := range []string{"LControl", "Key1", "Pad0.S", "Pad3.DPadLeft", "Pad0.LX+", "Pad1.DPadY-"} {
		k, err := keybind.ParseSingleKey(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, k.String(), s)
	}

	for _, s := range []string{"", "NotAKey", "Pad.S", "PadX.S", "Pad0.LX", "Pad0.XX+", "Pad-1.S"} {
		_, err := keybind.ParseSingleKey(s)
		test.ExpectSuccess(t, curated.Is(err, keybind.UnknownKey), s)
	}
}

func TestChordText(t *testing.T) {
	for _, s := range []string{
		"LControl+R",
		"LControl+Plus",
		"Pad0.LT+Pad0.RT",
		"Pad0.LX+",
		"Pad0.LX++A",
		"A+Pad0.LY-+Pad1.RX+",
		"RAlt+Return",
	} {
		c, err := keybind.ParseChord(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, c.String(), s)
	}

	c, err := keybind.ParseChord("Pad0.LX++A")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(c), 2)
	_, dir, ok := c[0].GamepadAxis()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, dir, keybind.Positive)

	for _, s := range []string{"", "A+", "+A", "A++B", "A+NotAKey"} {
		_, err := keybind.ParseChord(s)
		test.ExpectSuccess(t, curated.Is(err, keybind.MalformedChord), s)
	}
}

// every variant of SingleKey must survive the trip through the text codec
func TestBindingRoundTrip(t *testing.T) {
	b := keybind.Any(
		keybind.Key(userinput.KeyBack),
		keybind.All(keybind.PadButton(0, userinput.LeftTrigger2), keybind.PadButton(0, userinput.RightTrigger2)),
		keybind.PadAxis(1, userinput.RightStickY, keybind.Negative),
		keybind.All(keybind.Key(userinput.KeyLControl), keybind.PadAxis(0, userinput.LeftStickX, keybind.Positive)),
	)

	p, err := keybind.ParseBinding(b.String())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, p.Equal(b))

	data, err := yaml.Marshal(b)
	test.DemandSuccess(t, err)
	var y keybind.Binding
	test.DemandSuccess(t, yaml.Unmarshal(data, &y))
	test.ExpectSuccess(t, y.Equal(b))

	data, err = json.Marshal(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), `["Back","Pad0.LT+Pad0.RT","Pad1.RY-","LControl+Pad0.LX+"]`)
	var j keybind.Binding
	test.DemandSuccess(t, json.Unmarshal(data, &j))
	test.ExpectSuccess(t, j.Equal(b))

	// malformed chord in json
	err = json.Unmarshal([]byte(`["Back","Nothing"]`), &j)
	test.ExpectFailure(t, err)
}
