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
	"strings"

	"github.com/meru-emu/meru/userinput"
)

// Entry associates a logical action with a Binding.
type Entry struct {
	Action  string
	Binding Binding
}

// Activity is the result of evaluating a Binding against a Snapshot.
type Activity struct {
	Pressed     bool
	JustPressed bool
}

// Table is an ordered list of Entries. Action names are unique and the order
// of the entries is the order they are displayed in the settings menu.
type Table struct {
	entries  []Entry
	defaults func() []Entry
}

// NewTable creates a Table populated by the defaults function. The defaults
// function is called again by ResetToDefaults(). Duplicate action names
// returned by the defaults function are ignored.
func NewTable(defaults func() []Entry) *Table {
	t := &Table{defaults: defaults}
	t.ResetToDefaults()
	return t
}

// ResetToDefaults replaces the entire contents of the Table with the default
// entries.
func (t *Table) ResetToDefaults() {
	t.entries = t.entries[:0]
	if t.defaults == nil {
		return
	}
	for _, e := range t.defaults() {
		if t.index(e.Action) >= 0 {
			continue
		}
		t.entries = append(t.entries, Entry{Action: e.Action, Binding: e.Binding.Clone()})
	}
}

// Defaults returns the default entries for the Table.
func (t *Table) Defaults() []Entry {
	if t.defaults == nil {
		return nil
	}
	return t.defaults()
}

func (t *Table) index(action string) int {
	for i := range t.entries {
		if t.entries[i].Action == action {
			return i
		}
	}
	return -1
}

// Entries returns a copy of the entries in the Table.
func (t *Table) Entries() []Entry {
	e := make([]Entry, len(t.entries))
	for i := range t.entries {
		e[i] = Entry{Action: t.entries[i].Action, Binding: t.entries[i].Binding.Clone()}
	}
	return e
}

// Len returns the number of entries in the Table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the Binding for the action. The returned Binding is a
// reference to the Binding in the table. Changes to the Binding should be
// made with Set() or the Update() function.
func (t *Table) Lookup(action string) (Binding, bool) {
	i := t.index(action)
	if i < 0 {
		return nil, false
	}
	return t.entries[i].Binding, true
}

// Update calls the function with a pointer to the Binding for the action. The
// Binding can be modified in place. Returns false if the action is not in the
// table.
func (t *Table) Update(action string, f func(b *Binding)) bool {
	i := t.index(action)
	if i < 0 {
		return false
	}
	f(&t.entries[i].Binding)
	return true
}

// Set the Binding for the action. If the action is not in the table it is
// added to the end.
func (t *Table) Set(action string, b Binding) {
	if i := t.index(action); i >= 0 {
		t.entries[i].Binding = b.Clone()
		return
	}
	t.entries = append(t.entries, Entry{Action: action, Binding: b.Clone()})
}

// SetKeyCode changes the single key chord of the action's Binding. See
// Binding.InsertKeyCode(). Returns false if the action is not in the table.
func (t *Table) SetKeyCode(action string, k userinput.KeyCode) bool {
	return t.Update(action, func(b *Binding) {
		b.InsertKeyCode(k)
	})
}

// SetGamepadButton changes the single gamepad button chord of the action's
// Binding. See Binding.InsertGamepadButton(). Returns false if the action is
// not in the table.
func (t *Table) SetGamepadButton(action string, g userinput.GamepadButton) bool {
	return t.Update(action, func(b *Binding) {
		b.InsertGamepadButton(g)
	})
}

// EvaluateAll returns the activity of every action in the table.
func (t *Table) EvaluateAll(s userinput.Snapshot) map[string]Activity {
	m := make(map[string]Activity, len(t.entries))
	for _, e := range t.entries {
		m[e.Action] = Activity{
			Pressed:     e.Binding.Pressed(s),
			JustPressed: e.Binding.JustPressed(s),
		}
	}
	return m
}

// Pressed returns true if the Binding for the action is active. Unknown
// actions are never active.
func (t *Table) Pressed(action string, s userinput.Snapshot) bool {
	b, ok := t.Lookup(action)
	return ok && b.Pressed(s)
}

// JustPressed returns true if the Binding for the action has been freshly
// activated.
func (t *Table) JustPressed(action string, s userinput.Snapshot) bool {
	b, ok := t.Lookup(action)
	return ok && b.JustPressed(s)
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, e := range t.entries {
		s.WriteString(fmt.Sprintf("%s: %s\n", e.Action, e.Binding))
	}
	return s.String()
}
