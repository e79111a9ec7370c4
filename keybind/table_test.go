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

	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/test"
	"github.com/meru-emu/meru/userinput"
)

func navigation() []keybind.Entry {
	return []keybind.Entry{
		{Action: "Up", Binding: keybind.Any(keybind.Key(userinput.KeyUp), keybind.PadButton(0, userinput.DPadUp))},
		{Action: "Ok", Binding: keybind.Any(keybind.Key(userinput.KeyReturn), keybind.PadButton(0, userinput.East))},
		{Action: "Reset", Binding: keybind.All(keybind.Key(userinput.KeyLControl), keybind.Key(userinput.KeyR))},
	}
}

func TestTable(t *testing.T) {
	tbl := keybind.NewTable(navigation)
	test.ExpectEquality(t, tbl.Len(), 3)

	e := tbl.Entries()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0].Action, "Up")
	test.ExpectEquality(t, e[2].Action, "Reset")

	b, ok := tbl.Lookup("Ok")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.String(), "Return, Pad0.E")

	_, ok = tbl.Lookup("Nothing")
	test.ExpectFailure(t, ok)

	s := userinput.NewSnapshot(userinput.SnapshotData{
		Keys:     []userinput.KeyCode{userinput.KeyLControl, userinput.KeyR},
		JustKeys: []userinput.KeyCode{userinput.KeyR},
	})
	act := tbl.EvaluateAll(s)
	test.ExpectEquality(t, len(act), 3)
	test.ExpectEquality(t, act["Reset"], keybind.Activity{Pressed: true, JustPressed: true})
	test.ExpectEquality(t, act["Up"], keybind.Activity{})

	test.ExpectSuccess(t, tbl.Pressed("Reset", s))
	test.ExpectSuccess(t, tbl.JustPressed("Reset", s))
	test.ExpectFailure(t, tbl.Pressed("Nothing", s))
}

func TestTableRebind(t *testing.T) {
	tbl := keybind.NewTable(navigation)

	test.ExpectSuccess(t, tbl.SetKeyCode("Ok", userinput.KeySpace))
	test.ExpectSuccess(t, tbl.SetGamepadButton("Ok", userinput.GamepadButton{Pad: 1, Button: userinput.South}))
	b, _ := tbl.Lookup("Ok")
	test.ExpectEquality(t, b.String(), "Space, Pad1.S")

	// chord is not a single key so a new chord is appended
	test.ExpectSuccess(t, tbl.SetKeyCode("Reset", userinput.KeyF2))
	b, _ = tbl.Lookup("Reset")
	test.ExpectEquality(t, b.String(), "LControl+R, F2")

	test.ExpectFailure(t, tbl.SetKeyCode("Nothing", userinput.KeyF2))

	// set adds actions that do not exist
	tbl.Set("Down", keybind.Key(userinput.KeyDown))
	test.ExpectEquality(t, tbl.Len(), 4)

	// defaults have not been changed by the rebinding
	tbl.ResetToDefaults()
	test.ExpectEquality(t, tbl.Len(), 3)
	b, _ = tbl.Lookup("Ok")
	test.ExpectEquality(t, b.String(), "Return, Pad0.E")
}

func TestCapture(t *testing.T) {
	cp := keybind.NewCapture()

	empty := userinput.NewSnapshot(userinput.SnapshotData{})
	test.ExpectEquality(t, cp.Feed(empty), keybind.CaptureWaiting)

	ctrl := held(userinput.KeyLControl)
	test.ExpectEquality(t, cp.Feed(ctrl), keybind.CaptureAccumulating)
	test.ExpectEquality(t, cp.Pending().String(), "LControl")

	ctrlR := held(userinput.KeyLControl, userinput.KeyR)
	test.ExpectEquality(t, cp.Feed(ctrlR), keybind.CaptureAccumulating)
	test.ExpectEquality(t, cp.Pending().String(), "LControl+R")

	_, ok := cp.Result()
	test.ExpectFailure(t, ok)

	// control released. the chord is committed
	r := held(userinput.KeyR)
	test.ExpectEquality(t, cp.Feed(r), keybind.CaptureCommitted)

	c, ok := cp.Result()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.String(), "LControl+R")

	// feeding a committed capture changes nothing
	test.ExpectEquality(t, cp.Feed(held(userinput.KeyA)), keybind.CaptureCommitted)
	c, _ = cp.Result()
	test.ExpectEquality(t, c.String(), "LControl+R")
}

func TestCaptureGamepad(t *testing.T) {
	cp := keybind.NewCapture()

	lt := userinput.GamepadButton{Pad: 0, Button: userinput.LeftTrigger2}
	rt := userinput.GamepadButton{Pad: 0, Button: userinput.RightTrigger2}

	s := userinput.NewSnapshot(userinput.SnapshotData{
		Buttons: []userinput.GamepadButton{rt, lt},
		Axes: map[userinput.GamepadAxis]float32{
			{Pad: 0, Axis: userinput.LeftStickX}: 1.0,
		},
	})
	test.ExpectEquality(t, cp.Feed(s), keybind.CaptureAccumulating)

	// releasing everything commits
	test.ExpectEquality(t, cp.Feed(userinput.NewSnapshot(userinput.SnapshotData{})), keybind.CaptureCommitted)

	// buttons are in a deterministic order and the axis is not captured
	c, ok := cp.Result()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.String(), "Pad0.LT+Pad0.RT")
}
