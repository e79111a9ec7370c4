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

package keyconfig_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/test"
	"github.com/meru-emu/meru/userinput"
)

func binding(t *testing.T, tbl *keybind.Table, action string) string {
	t.Helper()
	b, ok := tbl.Lookup(action)
	test.DemandSuccess(t, ok, action)
	return b.String()
}

func TestDefaultHotKeys(t *testing.T) {
	hk := keyconfig.NewHotKeys()
	test.ExpectEquality(t, hk.Len(), len(keyconfig.HotKeys))

	test.ExpectEquality(t, binding(t, hk, string(keyconfig.Reset)), "LControl+R")
	test.ExpectEquality(t, binding(t, hk, string(keyconfig.Turbo)), "Tab, Pad0.LT")
	test.ExpectEquality(t, binding(t, hk, string(keyconfig.Rewind)), "Back, Pad0.LT+Pad0.RT")
	test.ExpectEquality(t, binding(t, hk, string(keyconfig.FullScreen)), "RAlt+Return")
	test.ExpectEquality(t, binding(t, hk, string(keyconfig.ScaleUp)), "LControl+Plus, LControl+Equals")
	test.ExpectEquality(t, binding(t, hk, string(keyconfig.ScaleDown)), "LControl+Minus")

	test.ExpectEquality(t, keyconfig.Rewind.Label(), "Start Rewinding")
	test.ExpectEquality(t, keyconfig.Reset.Label(), "Reset")

	// entries are in display order
	for i, e := range hk.Entries() {
		test.ExpectEquality(t, e.Action, string(keyconfig.HotKeys[i]))
	}
}

func TestDefaultSystemKeys(t *testing.T) {
	sk := keyconfig.NewSystemKeys()
	test.ExpectEquality(t, sk.Len(), len(keyconfig.SystemKeys))
	test.ExpectEquality(t, binding(t, sk, string(keyconfig.Up)), "Up, Pad0.DPadUp")
	test.ExpectEquality(t, binding(t, sk, string(keyconfig.Ok)), "Return, Pad0.E")
	test.ExpectEquality(t, binding(t, sk, string(keyconfig.Cancel)), "Back, Pad0.S")
}

func TestLayouts(t *testing.T) {
	l, err := keyconfig.DefaultLayout("gba")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(l), 1)

	var names []string
	for _, e := range l[0] {
		names = append(names, e.Action)
	}
	test.ExpectEquality(t, strings.Join(names, ","), "up,down,left,right,a,b,l,r,start,select")

	l, err = keyconfig.DefaultLayout("gb")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(l[0]), 8)

	_, err = keyconfig.DefaultLayout("nes")
	test.ExpectSuccess(t, curated.Is(err, keyconfig.UnknownLayout))
}

func TestControllersInput(t *testing.T) {
	c, err := keyconfig.NewControllers("gb")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Core(), "gb")

	s := userinput.NewSnapshot(userinput.SnapshotData{
		Keys:    []userinput.KeyCode{userinput.KeyX},
		Buttons: []userinput.GamepadButton{{Pad: 0, Button: userinput.Start}},
	})
	in := c.Input(s)
	test.DemandEquality(t, len(in.Controllers), 1)
	test.ExpectEquality(t, len(in.Controllers[0]), 8)
	test.ExpectSuccess(t, in.Pressed(0, "a"))
	test.ExpectSuccess(t, in.Pressed(0, "start"))
	test.ExpectFailure(t, in.Pressed(0, "b"))
	test.ExpectFailure(t, in.Pressed(1, "a"))

	// rebinding and resetting
	test.ExpectSuccess(t, c.Tables()[0].SetKeyCode("b", userinput.KeyX))
	test.ExpectSuccess(t, c.Input(s).Pressed(0, "b"))
	c.ResetToDefaults()
	test.ExpectFailure(t, c.Input(s).Pressed(0, "b"))
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), keyconfig.DefaultKeysFile)

	// missing file results in defaults
	cfg, err := keyconfig.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cfg.Recovered()), 0)

	test.ExpectSuccess(t, cfg.HotKeys.SetKeyCode(string(keyconfig.Menu), userinput.KeyF1))
	gb, err := cfg.Controllers("gb")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, gb.Tables()[0].SetGamepadButton("a", userinput.GamepadButton{Pad: 1, Button: userinput.East}))
	test.DemandSuccess(t, cfg.Save(fn))

	cfg, err = keyconfig.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cfg.Recovered()), 0)
	test.ExpectEquality(t, binding(t, cfg.HotKeys, string(keyconfig.Menu)), "F1")
	test.ExpectEquality(t, binding(t, cfg.HotKeys, string(keyconfig.Rewind)), "Back, Pad0.LT+Pad0.RT")
	test.ExpectEquality(t, strings.Join(cfg.Cores(), ","), "gb")

	gb, err = cfg.Controllers("gb")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, binding(t, gb.Tables()[0], "a"), "X, Pad1.E")
}

// every file written by Save() must load without any section being recovered
func TestSaveLoadDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), keyconfig.DefaultKeysFile)

	cfg := keyconfig.NewConfig()
	for _, core := range keyconfig.Layouts() {
		_, err := cfg.Controllers(core)
		test.DemandSuccess(t, err)
	}

	// a chord added to a binding in the way a capture commits it
	cfg.HotKeys.Update(string(keyconfig.Turbo), func(b *keybind.Binding) {
		b.SetChord(2, keybind.Chord{keybind.NewKeyCode(userinput.KeyLShift), keybind.NewKeyCode(userinput.KeyT)})
	})
	test.DemandSuccess(t, cfg.Save(fn))

	ld, err := keyconfig.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ld.Recovered()), 0)
	test.ExpectEquality(t, binding(t, ld.HotKeys, string(keyconfig.Turbo)), "Tab, Pad0.LT, LShift+T")
	test.ExpectEquality(t, strings.Join(ld.Cores(), ","), strings.Join(cfg.Cores(), ","))

	for _, core := range cfg.Cores() {
		a, err := cfg.Controllers(core)
		test.DemandSuccess(t, err)
		b, err := ld.Controllers(core)
		test.DemandSuccess(t, err)
		test.DemandEquality(t, len(b.Tables()), len(a.Tables()))
		for i := range a.Tables() {
			for _, e := range a.Tables()[i].Entries() {
				test.ExpectEquality(t, binding(t, b.Tables()[i], e.Action), e.Binding.String())
			}
		}
	}
}

func TestMissingSection(t *testing.T) {
	fn := filepath.Join(t.TempDir(), keyconfig.DefaultKeysFile)

	data := `system:
  - action: Ok
    binding: [Space]
`
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o644))

	cfg, err := keyconfig.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cfg.Recovered()), 0)
	test.ExpectEquality(t, binding(t, cfg.HotKeys, string(keyconfig.Menu)), "Escape")
	test.ExpectEquality(t, binding(t, cfg.SystemKeys, string(keyconfig.Ok)), "Space")
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()

	// the path is a directory and cannot be read or written as a file
	_, err := keyconfig.Load(dir)
	test.ExpectSuccess(t, curated.Is(err, keyconfig.FileError))

	err = keyconfig.NewConfig().Save(dir)
	test.ExpectSuccess(t, curated.Is(err, keyconfig.FileError))
}

func TestMalformedSection(t *testing.T) {
	fn := filepath.Join(t.TempDir(), keyconfig.DefaultKeysFile)

	data := `hotkeys:
  - action: Menu
    binding: [F1]
  - action: Reset
    binding: [NotAKey]
system:
  - action: Ok
    binding: [Space]
  - action: Jump
    binding: [J]
controllers:
  gb: "not a list"
`
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o644))

	cfg, err := keyconfig.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(cfg.Recovered(), ","), "controllers.gb,hotkeys")

	// the hotkeys section is defaulted in its entirety
	test.ExpectEquality(t, binding(t, cfg.HotKeys, string(keyconfig.Menu)), "Escape")
	test.ExpectEquality(t, binding(t, cfg.HotKeys, string(keyconfig.Reset)), "LControl+R")

	// the system section is fine. the unknown action is ignored
	test.ExpectEquality(t, binding(t, cfg.SystemKeys, string(keyconfig.Ok)), "Space")
	_, ok := cfg.SystemKeys.Lookup("Jump")
	test.ExpectFailure(t, ok)

	gb, err := cfg.Controllers("gb")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, binding(t, gb.Tables()[0], "a"), "X, Pad0.S")
}

func TestMalformedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), keyconfig.DefaultKeysFile)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hotkeys: [[[\n"), 0o644))

	cfg, err := keyconfig.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(cfg.Recovered(), ","), "all")
	test.ExpectEquality(t, binding(t, cfg.HotKeys, string(keyconfig.Menu)), "Escape")
}

func TestJSON(t *testing.T) {
	cfg := keyconfig.NewConfig()
	test.ExpectSuccess(t, cfg.SystemKeys.SetKeyCode(string(keyconfig.Cancel), userinput.KeyEscape))
	_, err := cfg.Controllers("gba")
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	test.DemandSuccess(t, cfg.ExportJSON(&b))
	test.ExpectSuccess(t, strings.Contains(b.String(), `"Escape"`))

	imp := keyconfig.NewConfig()
	test.DemandSuccess(t, imp.ImportJSON(&b))
	test.ExpectEquality(t, len(imp.Recovered()), 0)
	test.ExpectEquality(t, binding(t, imp.SystemKeys, string(keyconfig.Cancel)), "Escape, Pad0.S")
	test.ExpectEquality(t, strings.Join(imp.Cores(), ","), "gba")

	// malformed json section
	err = imp.ImportJSON(strings.NewReader(`{"hotkeys": 10, "system": []}`))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(imp.Recovered(), ","), "hotkeys")
	test.ExpectEquality(t, binding(t, imp.SystemKeys, string(keyconfig.Cancel)), "Back, Pad0.S")
}
