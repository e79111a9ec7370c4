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

// hotkeys that are handled by simply notifying the host. in display order
var notifyOnly = []keyconfig.HotKey{
	keyconfig.Reset,
	keyconfig.StateSave,
	keyconfig.StateLoad,
	keyconfig.NextSlot,
	keyconfig.PrevSlot,
	keyconfig.FullScreen,
	keyconfig.ScaleUp,
	keyconfig.ScaleDown,
}

func (s *Session) tickRunning(snap userinput.Snapshot) error {
	act := s.cfg.HotKeys.EvaluateAll(snap)

	for _, hk := range notifyOnly {
		if act[string(hk)].JustPressed {
			s.hotkey(hk)
		}
	}

	if act[string(keyconfig.Menu)].JustPressed {
		s.state = emulation.Paused
		s.notify(emulation.EventMenu, true)
		return nil
	}

	if act[string(keyconfig.Rewind)].JustPressed {
		return s.startRewinding()
	}

	s.core.SetInput(s.controllers.Input(snap))

	if s.frames-s.lastBackup >= BackupInterval {
		s.backup()
	}

	s.turbo = act[string(keyconfig.Turbo)].Pressed
	if s.turbo {
		// no rewind snapshots are taken in turbo mode
		for i := 0; i < FrameSkipOnTurbo; i++ {
			s.core.ExecFrame(i == FrameSkipOnTurbo-1)
			s.frames++
		}
		return nil
	}

	s.core.ExecFrame(true)
	s.frames++

	if !s.rewindEnabled {
		return nil
	}

	_, err := s.store.MaybeCapture(s.frames, s.snapshot)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

func (s *Session) tickPaused(snap userinput.Snapshot) {
	if s.cfg.HotKeys.JustPressed(string(keyconfig.Menu), snap) {
		s.state = emulation.Running
		s.notify(emulation.EventMenu, false)
	}
}

func (s *Session) hotkey(hk keyconfig.HotKey) {
	switch hk {
	case keyconfig.Reset:
		s.core.Reset()
		logger.Log(logger.Allow, "playmode", "reset machine")
		s.notify(emulation.EventReset, nil)
	case keyconfig.StateSave:
		s.notify(emulation.EventStateSave, StateData{
			Slot:  s.slot,
			State: s.core.SaveState(),
		})
	case keyconfig.StateLoad:
		s.notify(emulation.EventStateLoad, s.slot)
	case keyconfig.NextSlot:
		s.slot++
		logger.Logf(logger.Allow, "playmode", "state slot changed: #%d", s.slot)
		s.notify(emulation.EventSlotChange, s.slot)
	case keyconfig.PrevSlot:
		s.slot = max(s.slot-1, 0)
		logger.Logf(logger.Allow, "playmode", "state slot changed: #%d", s.slot)
		s.notify(emulation.EventSlotChange, s.slot)
	case keyconfig.FullScreen:
		s.notify(emulation.EventFullScreen, nil)
	case keyconfig.ScaleUp:
		s.scale++
		s.notify(emulation.EventScaleUp, s.scale)
	case keyconfig.ScaleDown:
		s.scale = max(s.scale-1, 1)
		s.notify(emulation.EventScaleDown, s.scale)
	}
}
