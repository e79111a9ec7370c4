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
	"github.com/meru-emu/meru/emulation"
)

// NotifyFunc is called by the Session when something happens that the host
// should respond to. The type of the data argument depends on the event:
//
//	EventReset          nil
//	EventStateSave      StateData
//	EventStateLoad      int (the slot to load. the host should call LoadState())
//	EventSlotChange     int
//	EventMenu           bool (true if the menu is opening)
//	EventFullScreen     nil
//	EventScaleUp        int (the new scale)
//	EventScaleDown      int (the new scale)
//	EventRewindStart    RewindData
//	EventRewindMove     RewindData
//	EventRewindCommit   RewindData
//	EventCaptureCommit  CaptureData
//	EventGameLoaded     emulation.CoreInfo
//	EventBackup         []byte
type NotifyFunc func(ev emulation.Event, data any)

// StateData is sent with the EventStateSave event.
type StateData struct {
	Slot  int
	State []byte
}

// RewindData is sent with the rewind events.
type RewindData struct {
	Cursor  int
	Entries int
}
