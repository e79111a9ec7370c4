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

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/test"
	"github.com/meru-emu/meru/userinput"
)

// held returns a snapshot where the keys are held and were all pressed during
// the tick
func held(keys ...userinput.KeyCode) userinput.Snapshot {
	return userinput.NewSnapshot(userinput.SnapshotData{
		Keys:     keys,
		JustKeys: keys,
	})
}

func TestSingleKeyAxis(t *testing.T) {
	lx := userinput.GamepadAxis{Pad: 0, Axis: userinput.LeftStickX}
	pos := keybind.NewGamepadAxis(lx, keybind.Positive)
	neg := keybind.NewGamepadAxis(lx, keybind.Negative)

	axis := func(v float32) userinput.Snapshot {
		return userinput.NewSnapshot(userinput.SnapshotData{
			Axes: map[userinput.GamepadAxis]float32{lx: v},
		})
	}

	test.ExpectSuccess(t, pos.Active(axis(0.5)))
	test.ExpectFailure(t, pos.Active(axis(0.49)))
	test.ExpectSuccess(t, neg.Active(axis(-0.5)))
	test.ExpectFailure(t, neg.Active(axis(-0.49)))
	test.ExpectFailure(t, neg.Active(axis(0.9)))

	// an axis that has never reported a value is centred
	test.ExpectFailure(t, pos.Active(userinput.NewSnapshot(userinput.SnapshotData{})))

	// axes are never just activated
	test.ExpectFailure(t, pos.JustActivated(axis(1.0)))
	test.ExpectFailure(t, keybind.Chord{pos}.FreshlyActivated(axis(1.0)))
}

func TestChordFreshlyActivated(t *testing.T) {
	ctrlR := keybind.Chord{
		keybind.NewKeyCode(userinput.KeyLControl),
		keybind.NewKeyCode(userinput.KeyR),
	}

	// control held on its own
	s := held(userinput.KeyLControl)
	test.ExpectFailure(t, ctrlR.Active(s))
	test.ExpectFailure(t, ctrlR.FreshlyActivated(s))

	// control has been held for a while and R is pressed
	s = userinput.NewSnapshot(userinput.SnapshotData{
		Keys:     []userinput.KeyCode{userinput.KeyLControl, userinput.KeyR},
		JustKeys: []userinput.KeyCode{userinput.KeyR},
	})
	test.ExpectSuccess(t, ctrlR.Active(s))
	test.ExpectSuccess(t, ctrlR.FreshlyActivated(s))

	// both keys still held on the next tick
	s = userinput.NewSnapshot(userinput.SnapshotData{
		Keys: []userinput.KeyCode{userinput.KeyLControl, userinput.KeyR},
	})
	test.ExpectSuccess(t, ctrlR.Active(s))
	test.ExpectFailure(t, ctrlR.FreshlyActivated(s))

	// R pressed and released in the same tick. it is just pressed but not
	// held so the chord is not active
	s = userinput.NewSnapshot(userinput.SnapshotData{
		Keys:     []userinput.KeyCode{userinput.KeyLControl},
		JustKeys: []userinput.KeyCode{userinput.KeyR},
	})
	test.ExpectFailure(t, ctrlR.FreshlyActivated(s))
}

// every combination of three keys being held or not, and just pressed or not
func allSnapshots() []userinput.Snapshot {
	keys := []userinput.KeyCode{userinput.KeyA, userinput.KeyB, userinput.KeyC}
	var ss []userinput.Snapshot
	for h := 0; h < 8; h++ {
		for j := 0; j < 8; j++ {
			var d userinput.SnapshotData
			for i, k := range keys {
				if h&(1<<i) != 0 {
					d.Keys = append(d.Keys, k)
				}
				if j&(1<<i) != 0 {
					d.JustKeys = append(d.JustKeys, k)
				}
			}
			ss = append(ss, userinput.NewSnapshot(d))
		}
	}
	return ss
}

func TestChordProperties(t *testing.T) {
	chords := []keybind.Chord{
		{keybind.NewKeyCode(userinput.KeyA)},
		{keybind.NewKeyCode(userinput.KeyA), keybind.NewKeyCode(userinput.KeyB)},
		{keybind.NewKeyCode(userinput.KeyC), keybind.NewKeyCode(userinput.KeyB), keybind.NewKeyCode(userinput.KeyA)},
	}

	for _, c := range chords {
		for _, s := range allSnapshots() {
			all := true
			for _, k := range c {
				all = all && k.Active(s)
			}
			test.ExpectEquality(t, c.Active(s), all, c)

			if !c.Active(s) {
				test.ExpectFailure(t, c.FreshlyActivated(s), c)
			}
		}
	}
}

func TestBindingProperties(t *testing.T) {
	a := keybind.Key(userinput.KeyA)
	b := keybind.Key(userinput.KeyB)
	c := keybind.Key(userinput.KeyC)

	bindings := []keybind.Binding{
		a,
		keybind.Any(a, b),
		keybind.All(a, c),
		keybind.Any(keybind.All(a, b), c),
	}

	for _, x := range bindings {
		for _, y := range bindings {
			and := x.And(y)
			or := x.Or(y)
			for _, s := range allSnapshots() {
				test.ExpectEquality(t, and.Pressed(s), x.Pressed(s) && y.Pressed(s), and)
				test.ExpectEquality(t, or.Pressed(s), x.Pressed(s) || y.Pressed(s), or)
			}
		}
	}
}

func TestAndOrdering(t *testing.T) {
	x := keybind.Any(keybind.Key(userinput.KeyA), keybind.Key(userinput.KeyB))
	y := keybind.Any(keybind.Key(userinput.KeyC), keybind.Key(userinput.KeyD))

	test.ExpectEquality(t, x.And(y).String(), "A+C, A+D, B+C, B+D")
	test.ExpectEquality(t, x.Or(y).String(), "A, B, C, D")

	// operands are not changed
	test.ExpectEquality(t, x.String(), "A, B")
	test.ExpectEquality(t, y.String(), "C, D")
}

func TestAndEmptyBinding(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, keybind.EmptyBinding))
	}()
	keybind.Key(userinput.KeyA).And(keybind.Binding{})
	t.Errorf("expected panic")
}

func TestAnyKeyOrDPad(t *testing.T) {
	up := keybind.Any(keybind.Key(userinput.KeyUp), keybind.PadButton(0, userinput.DPadUp))

	s := userinput.NewSnapshot(userinput.SnapshotData{
		Buttons:     []userinput.GamepadButton{{Pad: 0, Button: userinput.DPadUp}},
		JustButtons: []userinput.GamepadButton{{Pad: 0, Button: userinput.DPadUp}},
	})
	test.ExpectSuccess(t, up.Pressed(s))
	test.ExpectSuccess(t, up.JustPressed(s))
	test.ExpectFailure(t, up.Pressed(userinput.NewSnapshot(userinput.SnapshotData{})))

	// a different gamepad
	s = userinput.NewSnapshot(userinput.SnapshotData{
		Buttons: []userinput.GamepadButton{{Pad: 1, Button: userinput.DPadUp}},
	})
	test.ExpectFailure(t, up.Pressed(s))
}

func TestExtractInsert(t *testing.T) {
	b := keybind.Key(userinput.KeyA)
	b.InsertKeyCode(userinput.KeyZ)
	k, ok := b.ExtractKeyCode()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeyZ)
	test.ExpectEquality(t, len(b), 1)

	g := userinput.GamepadButton{Pad: 0, Button: userinput.East}
	b = keybind.PadButton(0, userinput.South)
	b.InsertGamepadButton(g)
	e, ok := b.ExtractGamepadButton()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e, g)
	test.ExpectEquality(t, len(b), 1)

	// no single key chord so one is appended. the multi-key chord is not
	// changed
	rewind := keybind.Any(
		keybind.Key(userinput.KeyBack),
		keybind.All(keybind.PadButton(0, userinput.LeftTrigger2), keybind.PadButton(0, userinput.RightTrigger2)),
	)
	_, ok = rewind.ExtractGamepadButton()
	test.ExpectFailure(t, ok)

	rewind.InsertGamepadButton(g)
	test.ExpectEquality(t, rewind.String(), "Back, Pad0.LT+Pad0.RT, Pad0.E")

	rewind.InsertKeyCode(userinput.KeyF1)
	test.ExpectEquality(t, rewind.String(), "F1, Pad0.LT+Pad0.RT, Pad0.E")

	// an empty binding
	var empty keybind.Binding
	_, ok = empty.ExtractKeyCode()
	test.ExpectFailure(t, ok)
	empty.InsertKeyCode(userinput.KeyTab)
	test.ExpectEquality(t, empty.String(), "Tab")
}

func TestChordEditing(t *testing.T) {
	b := keybind.Key(userinput.KeyEscape)

	c, err := keybind.ParseChord("LControl+Q")
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, b.SetChord(1, c))
	test.ExpectEquality(t, b.String(), "Escape, LControl+Q")

	test.ExpectSuccess(t, b.SetChord(0, keybind.Chord{keybind.NewKeyCode(userinput.KeyF10)}))
	test.ExpectEquality(t, b.String(), "F10, LControl+Q")

	test.ExpectFailure(t, b.SetChord(3, c))
	test.ExpectFailure(t, b.SetChord(0, keybind.Chord{}))

	b.AppendChord(keybind.Chord{})
	test.ExpectEquality(t, len(b), 2)

	test.ExpectSuccess(t, b.RemoveChord(0))
	test.ExpectFailure(t, b.RemoveChord(1))
	test.ExpectEquality(t, b.String(), "LControl+Q")
}
