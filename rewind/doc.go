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

// Package rewind coordinates the periodic snapshotting of the emulation state
// and the ability to return the emulation to one of those snapshots.
//
// Snapshots are added to the Store with MaybeCapture() after every frame. The
// admission policy combines a minimum spacing between captures with a rate
// budget. The cumulative number of bytes captured is compared against a
// target accumulation curve of Budget.Rate bytes per second of emulation.
// When the size of the history exceeds Budget.Limit the oldest entries are
// evicted. The most recent entry is never evicted.
//
// Creating a snapshot can be expensive so MaybeCapture() takes a function that
// is only called if the capture is going to happen.
//
// Rewinding is a matter of entering the scrubbing mode with EnterScrub(),
// moving the cursor with Seek() and finally choosing an entry with Commit().
// Committing discards every entry after the cursor.
package rewind
