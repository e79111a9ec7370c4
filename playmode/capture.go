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

package playmode

import (
	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/logger"
	"github.com/meru-emu/meru/userinput"
)

// Sentinal error patterns.
const (
	UnknownAction = "playmode: unknown action: %s"
)

// CaptureData is sent with the EventCaptureCommit event.
type CaptureData struct {
	Action string
	Slot   int
	Chord  keybind.Chord
}

type capture struct {
	cp     *keybind.Capture
	table  *keybind.Table
	action string
	slot   int

	// the first snapshot fed to the capture. inputs that are still held from
	// before the capture began are ignored until they are released
	started bool
}

// BeginCapture starts recording a new chord for the action in the table. When
// the chord is complete it replaces the chord at the slot in the action's
// binding. If the slot is equal to the number of chords in the binding then
// the chord is appended.
//
// The emulation does not run while capturing.
func (s *Session) BeginCapture(table *keybind.Table, action string, slot int) error {
	b, ok := table.Lookup(action)
	if !ok {
		return curated.Errorf(UnknownAction, action)
	}
	if slot < 0 || slot > len(b) {
		return curated.Errorf("playmode: slot %d out of range for %s", slot, action)
	}

	if s.state != emulation.Capturing {
		s.resume = s.state
	}
	s.state = emulation.Capturing
	s.capture = &capture{
		cp:     keybind.NewCapture(),
		table:  table,
		action: action,
		slot:   slot,
	}

	return nil
}

// AbandonCapture stops capturing without changing the binding.
func (s *Session) AbandonCapture() {
	if s.capture == nil {
		return
	}
	s.capture = nil
	s.state = s.resume
}

// Capturing returns true if a chord is being recorded.
func (s *Session) Capturing() bool {
	return s.capture != nil
}

func (s *Session) tickCapture(snap userinput.Snapshot) {
	c := s.capture
	if c == nil {
		s.state = s.resume
		return
	}

	// wait for every input to be released before recording. this prevents
	// the input that started the capture from becoming part of the chord
	if !c.started {
		if len(snap.HeldKeys()) > 0 || len(snap.HeldButtons()) > 0 {
			return
		}
		c.started = true
	}

	if c.cp.Feed(snap) != keybind.CaptureCommitted {
		return
	}

	chord, _ := c.cp.Result()
	c.table.Update(c.action, func(b *keybind.Binding) {
		b.SetChord(c.slot, chord)
	})

	logger.Logf(logger.Allow, "playmode", "%s: %s", c.action, chord)
	s.notify(emulation.EventCaptureCommit, CaptureData{
		Action: c.action,
		Slot:   c.slot,
		Chord:  chord,
	})

	s.capture = nil
	s.state = s.resume
}
