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

package rewind

import (
	"fmt"
	"image"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/logger"
)

// Sentinal error patterns. EmptyHistory and OutOfRange indicate that the Store
// has been used out of sequence by the host.
const (
	EmptyHistory = "rewind: empty history"
	OutOfRange   = "rewind: cursor out of range: %d (entries: %d)"
	NoSnapshot   = "rewind: no snapshot for frame %d"
)

// Snapshot is one entry in the rewind history. The State field is the opaque
// save state of the emulator core. The Thumbnail is the preview image shown
// while scrubbing.
//
// A Snapshot is owned by the Store once it has been pushed and should not be
// modified.
type Snapshot struct {
	State     []byte
	Thumbnail *image.RGBA

	// the host's frame count at the time the snapshot was taken
	Frame int
}

// Size of the snapshot in bytes. The size of the state data plus the size of
// the thumbnail pixels.
func (s *Snapshot) Size() int {
	n := len(s.State)
	if s.Thumbnail != nil {
		n += len(s.Thumbnail.Pix)
	}
	return n
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("frame %d (%d bytes)", s.Frame, s.Size())
}

// Store contains a history of snapshots for the emulation. Entries are ordered
// oldest to newest.
//
// The Store has two modes. In the recording mode snapshots are added with
// MaybeCapture() and Push(). In the scrubbing mode the host moves a cursor over
// the entries with Seek() and finally chooses an entry with Commit() or leaves
// the history untouched with CancelScrub().
//
// The Store is not safe for concurrent use. All functions should be called
// from the emulation goroutine.
type Store struct {
	budget Budget

	entries []*Snapshot

	// sum of the size of every entry in the entries array
	totalBytes int

	// the sum of the size of every snapshot ever added to the store since the
	// last reset. compared against the rate budget
	lifetimeBytes int

	// frame number of the most recent capture
	lastCapture int

	scrubbing bool
	cursor    int
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore(budget Budget) *Store {
	s := &Store{}
	s.SetBudget(budget)
	return s
}

func (s *Store) String() string {
	return fmt.Sprintf("%d entries, %d bytes (%d lifetime)", len(s.entries), s.totalBytes, s.lifetimeBytes)
}

// Reset removes all entries. Should be called whenever a new game session
// begins because snapshot data is specific to one instance of a core.
func (s *Store) Reset() {
	s.entries = s.entries[:0]
	s.totalBytes = 0
	s.lifetimeBytes = 0
	s.lastCapture = 0
	s.scrubbing = false
	s.cursor = 0
}

// SetBudget changes the budget of the Store. The new limit is applied
// immediately.
func (s *Store) SetBudget(budget Budget) {
	s.budget = budget.normalise()
	s.evict()
	logger.Logf(logger.Allow, "rewind", "budget: %s", s.budget)
}

// Budget returns the current budget of the Store.
func (s *Store) Budget() Budget {
	return s.budget
}

// MaybeCapture adds a new snapshot to the store if the admission policy
// allows it. The snapshot function is only called if the capture is going to
// happen.
//
// The frame argument must not decrease from call to call. It should be the
// number of frames executed by the host since the start of the session and
// not the frame number of the core, which goes backwards after a rewind.
//
// Returns true if a snapshot was captured. No snapshots are captured while
// the store is in the scrubbing mode.
func (s *Store) MaybeCapture(frame int, snapshot func() (*Snapshot, error)) (bool, error) {
	if s.scrubbing || !s.admit(frame) {
		return false, nil
	}

	ss, err := snapshot()
	if err != nil {
		return false, curated.Errorf("rewind: %v", err)
	}
	if ss == nil {
		return false, curated.Errorf(NoSnapshot, frame)
	}
	ss.Frame = frame
	s.Push(ss)

	return true, nil
}

// admit returns true if there has been enough time since the last capture and
// if the number of bytes captured is below the target accumulation for the
// current frame.
func (s *Store) admit(frame int) bool {
	if frame-s.lastCapture < s.budget.Span {
		return false
	}

	// compare lifetime bytes against the elapsed time multiplied by the rate.
	// both sides are multiplied by the frame rate to avoid the division
	return s.lifetimeBytes*s.budget.FrameRate < frame*s.budget.Rate
}

// Push adds a snapshot to the store without applying the admission policy. The
// snapshot still counts towards the budget. Used by the host to add the
// current state at the moment rewinding begins.
func (s *Store) Push(ss *Snapshot) {
	s.entries = append(s.entries, ss)
	s.totalBytes += ss.Size()
	s.lifetimeBytes += ss.Size()
	s.lastCapture = max(s.lastCapture, ss.Frame)
	s.evict()
}

// evict the oldest entries until the total size is within the limit. the
// most recent entry is never evicted
func (s *Store) evict() {
	n := 0
	for len(s.entries)-n > 1 && s.totalBytes > s.budget.Limit {
		s.totalBytes -= s.entries[n].Size()
		s.entries[n] = nil
		n++
	}
	if n > 0 {
		s.entries = s.entries[n:]
		if s.scrubbing {
			s.cursor = max(0, s.cursor-n)
		}
	}
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at the index. Index zero is the oldest entry.
func (s *Store) At(idx int) (*Snapshot, error) {
	if idx < 0 || idx >= len(s.entries) {
		return nil, curated.Errorf(OutOfRange, idx, len(s.entries))
	}
	return s.entries[idx], nil
}

// Latest returns the most recent entry or nil if the store is empty.
func (s *Store) Latest() *Snapshot {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// TotalBytes returns the sum of the size of every entry in the store.
func (s *Store) TotalBytes() int {
	return s.totalBytes
}

// LifetimeBytes returns the sum of the size of every snapshot added to the
// store since the last reset, including evicted and truncated entries.
func (s *Store) LifetimeBytes() int {
	return s.lifetimeBytes
}

// Scrubbing returns true if the store is in the scrubbing mode.
func (s *Store) Scrubbing() bool {
	return s.scrubbing
}

// Cursor returns the most recent cursor position returned by EnterScrub() or
// Seek(). Only meaningful when Scrubbing() is true.
func (s *Store) Cursor() int {
	return s.cursor
}

// EnterScrub puts the store into the scrubbing mode. The returned cursor
// points to the most recent entry.
func (s *Store) EnterScrub() (int, error) {
	if len(s.entries) == 0 {
		return 0, curated.Errorf(EmptyHistory)
	}
	s.scrubbing = true
	s.cursor = len(s.entries) - 1
	return s.cursor, nil
}

// Seek moves the cursor by delta entries. The new cursor is clamped to the
// range of available entries.
func (s *Store) Seek(cursor int, delta int) (int, error) {
	if cursor < 0 || cursor >= len(s.entries) {
		return cursor, curated.Errorf(OutOfRange, cursor, len(s.entries))
	}
	s.cursor = min(max(cursor+delta, 0), len(s.entries)-1)
	return s.cursor, nil
}

// Commit the cursor. Every entry after the cursor is discarded and the entry
// at the cursor is returned. The state of the returned snapshot should be
// loaded into the emulator core.
//
// The store returns to the recording mode.
func (s *Store) Commit(cursor int) (*Snapshot, error) {
	if cursor < 0 || cursor >= len(s.entries) {
		return nil, curated.Errorf(OutOfRange, cursor, len(s.entries))
	}

	for i := cursor + 1; i < len(s.entries); i++ {
		s.totalBytes -= s.entries[i].Size()
		s.entries[i] = nil
	}
	s.entries = s.entries[:cursor+1]
	s.scrubbing = false
	s.cursor = cursor

	ss := s.entries[cursor]
	logger.Logf(logger.Allow, "rewind", "commit to %s", ss)

	return ss, nil
}

// CancelScrub returns the store to the recording mode without changing the
// entries.
func (s *Store) CancelScrub() {
	s.scrubbing = false
}
