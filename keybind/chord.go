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

package keybind

import (
	"slices"
	"strings"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/userinput"
)

// Chord is an ordered list of SingleKeys that must all be held for the Chord
// to be active. The order does not affect matching but is preserved for
// display.
//
// An empty Chord is always active. Empty chords are never created by the
// functions in this package.
type Chord []SingleKey

// Active returns true if every member of the Chord is active.
func (c Chord) Active(s userinput.Snapshot) bool {
	for _, k := range c {
		if !k.Active(s) {
			return false
		}
	}
	return true
}

// FreshlyActivated returns true if the Chord is active and at least one of
// its members was pressed during the tick. Holding LControl and then pressing
// R activates "LControl+R" on the tick R is pressed and not on the ticks where
// LControl is held on its own.
func (c Chord) FreshlyActivated(s userinput.Snapshot) bool {
	if !c.Active(s) {
		return false
	}
	for _, k := range c {
		if k.JustActivated(s) {
			return true
		}
	}
	return false
}

// Equal returns true if both chords have the same members in the same order.
func (c Chord) Equal(d Chord) bool {
	return slices.Equal(c, d)
}

// single returns the sole member of the Chord. The boolean is false if the
// Chord does not have exactly one member.
func (c Chord) single() (SingleKey, bool) {
	if len(c) != 1 {
		return SingleKey{}, false
	}
	return c[0], true
}

// String returns the canonical text form of the Chord. Members are joined
// with the plus sign.
func (c Chord) String() string {
	s := make([]string, len(c))
	for i, k := range c {
		s[i] = k.String()
	}
	return strings.Join(s, "+")
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Chord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *Chord) UnmarshalText(text []byte) error {
	d, err := ParseChord(string(text))
	if err != nil {
		return err
	}
	*c = d
	return nil
}

// ParseChord parses the canonical text form of a Chord.
func ParseChord(s string) (Chord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, curated.Errorf(MalformedChord, "empty")
	}

	// the plus sign is both the separator and the suffix of a positive axis.
	// an axis in the positive direction therefore appears as an axis label
	// followed by an empty token
	tok := strings.Split(s, "+")

	var c Chord
	for i := 0; i < len(tok); i++ {
		t := strings.TrimSpace(tok[i])
		if t == "" {
			return nil, curated.Errorf(MalformedChord, s)
		}

		k, err := ParseSingleKey(t)
		if err == nil {
			c = append(c, k)
			continue
		}

		if i+1 < len(tok) && strings.TrimSpace(tok[i+1]) == "" {
			if k, err := ParseSingleKey(t + "+"); err == nil {
				c = append(c, k)
				i++
				continue
			}
		}

		return nil, curated.Errorf(MalformedChord, err)
	}

	return c, nil
}
