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

	"github.com/docker/go-units"
)

// Default budget values.
const (
	DefaultRate      = 128 * 1024
	DefaultLimit     = 1024 * 1024 * 1024
	DefaultSpan      = 60
	DefaultFrameRate = 60
)

// Budget controls how often snapshots are taken and how much memory the
// history can occupy.
type Budget struct {
	// target number of snapshot bytes captured per second of emulation
	Rate int

	// the maximum size of the history in bytes. the oldest entries are
	// evicted when the limit is exceeded
	Limit int

	// the minimum number of frames between captures
	Span int

	// the number of frames per second. used to convert frames to seconds
	FrameRate int
}

// DefaultBudget returns a Budget with the default values.
func DefaultBudget() Budget {
	return Budget{
		Rate:      DefaultRate,
		Limit:     DefaultLimit,
		Span:      DefaultSpan,
		FrameRate: DefaultFrameRate,
	}
}

func (b Budget) String() string {
	return fmt.Sprintf("rate=%s/s limit=%s span=%d frames",
		units.BytesSize(float64(b.Rate)), units.BytesSize(float64(b.Limit)), b.Span)
}

// negative values are treated as zero. a zero frame rate uses the default
// frame rate
func (b Budget) normalise() Budget {
	b.Rate = max(b.Rate, 0)
	b.Limit = max(b.Limit, 0)
	b.Span = max(b.Span, 0)
	if b.FrameRate <= 0 {
		b.FrameRate = DefaultFrameRate
	}
	return b
}
