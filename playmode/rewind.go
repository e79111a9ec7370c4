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
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/logger"
	"github.com/meru-emu/meru/userinput"
)

// startRewinding pushes a snapshot of the current state to the store and opens
// the timeline at that snapshot.
func (s *Session) startRewinding() error {
	ss, err := s.snapshot()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	s.store.Push(ss)

	s.cursor, err = s.store.EnterScrub()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	s.state = emulation.Rewinding
	s.notify(emulation.EventRewindStart, s.rewindData())

	return nil
}

func (s *Session) rewindData() RewindData {
	return RewindData{
		Cursor:  s.cursor,
		Entries: s.store.Len(),
	}
}

// Cursor returns the position of the cursor in the rewind timeline. Only
// meaningful while rewinding.
func (s *Session) Cursor() int {
	return s.cursor
}

func (s *Session) tickRewinding(snap userinput.Snapshot) error {
	sys := s.cfg.SystemKeys.EvaluateAll(snap)

	// holding left or right moves the cursor on every tick
	var delta int
	if sys[string(keyconfig.Left)].Pressed {
		delta--
	}
	if sys[string(keyconfig.Right)].Pressed {
		delta++
	}

	if delta != 0 {
		cursor, err := s.store.Seek(s.cursor, delta)
		if err != nil {
			// the cursor is outside the timeline. this shouldn't happen but
			// we can recover by moving to the most recent entry
			logger.Log(logger.Allow, "playmode", err)
			cursor = s.store.Len() - 1
		}
		if cursor != s.cursor {
			s.cursor = cursor
			s.notify(emulation.EventRewindMove, s.rewindData())
		}
	}

	if sys[string(keyconfig.Ok)].JustPressed {
		return s.commitRewinding(s.cursor)
	}

	// cancelling returns to the most recent entry, which is the state at the
	// moment rewinding started
	if sys[string(keyconfig.Cancel)].JustPressed || s.cfg.HotKeys.JustPressed(string(keyconfig.Menu), snap) {
		return s.commitRewinding(s.store.Len() - 1)
	}

	return nil
}

func (s *Session) commitRewinding(cursor int) error {
	ss, err := s.store.Commit(cursor)
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
		s.store.CancelScrub()
		s.state = emulation.Running
		return nil
	}

	s.cursor = cursor
	s.state = emulation.Running

	err = s.core.LoadState(ss.State)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	s.notify(emulation.EventRewindCommit, s.rewindData())

	return nil
}
