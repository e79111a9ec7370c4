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
	"github.com/meru-emu/meru/curated"
)

// Timeline provides a summary of the current state of the rewind system.
//
// Useful for GUIs for example, to present the range of frame numbers that are
// available in the rewind history.
type Timeline struct {
	// frame number and size of each entry, oldest first
	Frames []int
	Sizes  []int

	// these two "available" fields state the earliest and latest frames that
	// are available in the rewind history. both fields are -1 if the history
	// is empty
	AvailableStart int
	AvailableEnd   int

	Scrubbing bool
	Cursor    int

	TotalBytes    int
	LifetimeBytes int
}

// Timeline returns a summary of the Store.
func (s *Store) Timeline() Timeline {
	tl := Timeline{
		Frames:         make([]int, 0, len(s.entries)),
		Sizes:          make([]int, 0, len(s.entries)),
		AvailableStart: -1,
		AvailableEnd:   -1,
		Scrubbing:      s.scrubbing,
		Cursor:         s.cursor,
		TotalBytes:     s.totalBytes,
		LifetimeBytes:  s.lifetimeBytes,
	}

	for _, e := range s.entries {
		tl.Frames = append(tl.Frames, e.Frame)
		tl.Sizes = append(tl.Sizes, e.Size())
	}

	if len(s.entries) > 0 {
		tl.AvailableStart = s.entries[0].Frame
		tl.AvailableEnd = s.entries[len(s.entries)-1].Frame
	}

	return tl
}

// Verify checks the integrity of the timeline. An error is returned if the
// frames are out of order or if the sizes do not add up to the total.
func (tl Timeline) Verify() error {
	if len(tl.Frames) != len(tl.Sizes) {
		return curated.Errorf("rewind: timeline: arrays are different lengths")
	}

	if len(tl.Frames) == 0 {
		if tl.TotalBytes != 0 {
			return curated.Errorf("rewind: timeline: empty history has a size of %d bytes", tl.TotalBytes)
		}
		return nil
	}

	if tl.AvailableStart != tl.Frames[0] {
		return curated.Errorf("rewind: timeline: earliest entry not in timeline")
	}
	if tl.AvailableEnd != tl.Frames[len(tl.Frames)-1] {
		return curated.Errorf("rewind: timeline: most recent entry not in timeline")
	}

	var total int
	prev := -1
	for i, fn := range tl.Frames {
		if fn < prev {
			return curated.Errorf("rewind: timeline: frame numbers are not in order")
		}
		prev = fn
		total += tl.Sizes[i]
	}

	if total != tl.TotalBytes {
		return curated.Errorf("rewind: timeline: entries add up to %d bytes not %d", total, tl.TotalBytes)
	}

	if tl.LifetimeBytes < tl.TotalBytes {
		return curated.Errorf("rewind: timeline: lifetime bytes is less than the total")
	}

	if tl.Scrubbing && (tl.Cursor < 0 || tl.Cursor >= len(tl.Frames)) {
		return curated.Errorf("rewind: timeline: cursor out of range")
	}

	return nil
}
