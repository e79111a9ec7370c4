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

// Package playmode is the host side of a game session. It connects the input
// chord engine to the emulator core and to the rewind store.
//
// Every host frame the Session is ticked with the input events that have
// arrived since the previous tick. What happens then depends on the state of
// the emulation:
//
// In the Running state the hotkeys are evaluated and the core runs for one
// frame, or for FrameSkipOnTurbo frames if the turbo hotkey is held. After a
// normal frame the rewind store is given the opportunity to capture a
// snapshot. When the rewind hotkey is pressed the current state is pushed to
// the store and the Session enters the Rewinding state.
//
// In the Rewinding state the system keys move a cursor over the rewind
// history. The Ok key loads the snapshot at the cursor. The Cancel key, or the
// menu hotkey, loads the most recent snapshot.
//
// In the Capturing state a new chord is recorded for a binding. See
// BeginCapture().
//
// Events that the host should respond to, such as a request to save state, are
// sent with the NotifyFunc given to NewSession().
package playmode
