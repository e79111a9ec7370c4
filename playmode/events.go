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
	"github.com/meru-emu/meru/logger"
	"github.com/meru-emu/meru/userinput"
)

// handleEvents updates the input state with every event. returns true if
// there was a quit event.
func (s *Session) handleEvents(events []userinput.Event) bool {
	var quit bool
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if s.input.Handle(ev) {
			quit = true
		}
		if r, ok := ev.(userinput.EventGamepadRemoved); ok {
			logger.Logf(logger.Allow, "playmode", "gamepad %d removed", r.Pad)
		}
	}
	return quit
}
