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

package keyconfig

import (
	"slices"
	"sort"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/userinput"
)

// Layout returns the default bindings for each emulated controller of a core.
type Layout func() [][]keybind.Entry

var layouts = map[string]Layout{
	"gb":  gbLayout,
	"gba": gbaLayout,
}

// RegisterLayout adds or replaces the default layout for a core. Should be
// called from the init() function of the core's package.
func RegisterLayout(core string, layout Layout) {
	layouts[core] = layout
}

// Layouts returns the sorted list of cores with a registered layout.
func Layouts() []string {
	cores := make([]string, 0, len(layouts))
	for c := range layouts {
		cores = append(cores, c)
	}
	sort.Strings(cores)
	return cores
}

// DefaultLayout returns the default controller bindings for the core.
func DefaultLayout(core string) ([][]keybind.Entry, error) {
	l, ok := layouts[core]
	if !ok {
		return nil, curated.Errorf(UnknownLayout, core)
	}
	return l(), nil
}

func gbLayout() [][]keybind.Entry {
	return [][]keybind.Entry{{
		{Action: "up", Binding: keyOrPad(userinput.KeyUp, userinput.DPadUp)},
		{Action: "down", Binding: keyOrPad(userinput.KeyDown, userinput.DPadDown)},
		{Action: "left", Binding: keyOrPad(userinput.KeyLeft, userinput.DPadLeft)},
		{Action: "right", Binding: keyOrPad(userinput.KeyRight, userinput.DPadRight)},
		{Action: "a", Binding: keyOrPad(userinput.KeyX, userinput.South)},
		{Action: "b", Binding: keyOrPad(userinput.KeyZ, userinput.West)},
		{Action: "start", Binding: keyOrPad(userinput.KeyReturn, userinput.Start)},
		{Action: "select", Binding: keyOrPad(userinput.KeyRShift, userinput.Select)},
	}}
}

// the gba layout is the gb layout with the addition of the shoulder buttons.
// they are inserted before start and select
func gbaLayout() [][]keybind.Entry {
	gb := gbLayout()[0]
	l := slices.Insert(gb, 6,
		keybind.Entry{Action: "l", Binding: keyOrPad(userinput.KeyA, userinput.LeftTrigger)},
		keybind.Entry{Action: "r", Binding: keyOrPad(userinput.KeyS, userinput.RightTrigger)},
	)
	return [][]keybind.Entry{l}
}

// Button is the state of one emulated controller button.
type Button struct {
	Name    string
	Pressed bool
}

// InputData is the state of every emulated controller for one frame. Handed
// to the core with EmulatorCore.SetInput().
type InputData struct {
	Controllers [][]Button
}

// Pressed returns true if the named button of the controller is pressed.
func (in InputData) Pressed(controller int, name string) bool {
	if controller < 0 || controller >= len(in.Controllers) {
		return false
	}
	for _, b := range in.Controllers[controller] {
		if b.Name == name {
			return b.Pressed
		}
	}
	return false
}

// Controllers is the binding table for each emulated controller of a core.
type Controllers struct {
	core   string
	tables []*keybind.Table
}

// NewControllers creates the binding tables for the core from its default
// layout.
func NewControllers(core string) (*Controllers, error) {
	l, err := DefaultLayout(core)
	if err != nil {
		return nil, err
	}

	c := &Controllers{core: core}
	for i := range l {
		c.tables = append(c.tables, keybind.NewTable(func() []keybind.Entry {
			l, _ := DefaultLayout(core)
			return l[i]
		}))
	}
	return c, nil
}

// Core returns the name of the core the controllers are for.
func (c *Controllers) Core() string {
	return c.core
}

// Tables returns the binding table of each controller.
func (c *Controllers) Tables() []*keybind.Table {
	return c.tables
}

// ResetToDefaults resets every controller to its default bindings.
func (c *Controllers) ResetToDefaults() {
	for _, t := range c.tables {
		t.ResetToDefaults()
	}
}

// Input evaluates every controller binding against the Snapshot.
func (c *Controllers) Input(s userinput.Snapshot) InputData {
	in := InputData{Controllers: make([][]Button, len(c.tables))}
	for i, t := range c.tables {
		for _, e := range t.Entries() {
			in.Controllers[i] = append(in.Controllers[i], Button{
				Name:    e.Action,
				Pressed: e.Binding.Pressed(s),
			})
		}
	}
	return in
}
