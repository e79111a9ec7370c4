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
	"github.com/meru-emu/meru/paths"
	"github.com/meru-emu/meru/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	s   *Store
	dsk *prefs.Disk

	// the fields of the Budget type
	Rate  prefs.Bytes
	Limit prefs.Bytes
	Span  prefs.Int

	// whether snapshots are captured during normal play. rewinding is still
	// possible if this is false but the history will only ever have one entry
	Enabled prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Changes to the preference values are applied to the Store
// immediately.
//
// If pth is empty then the default preferences file is used.
func NewPreferences(s *Store, pth string) (*Preferences, error) {
	p := &Preferences{s: s}

	var err error

	if pth == "" {
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.rate", &p.Rate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.limit", &p.Limit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.span", &p.Span)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	apply := func(_ prefs.Value) error {
		if p.s != nil {
			p.s.SetBudget(p.Budget())
		}
		return nil
	}
	p.Rate.SetHookPost(apply)
	p.Limit.SetHookPost(apply)
	p.Span.SetHookPost(apply)

	// the values loaded from disk are applied now that the hooks are in place
	_ = apply(nil)

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	b := DefaultBudget()
	if err := p.Rate.Set(b.Rate); err != nil {
		return err
	}
	if err := p.Limit.Set(b.Limit); err != nil {
		return err
	}
	if err := p.Span.Set(b.Span); err != nil {
		return err
	}
	return p.Enabled.Set(true)
}

// Budget returns a Budget type from the current preference values.
func (p *Preferences) Budget() Budget {
	return Budget{
		Rate:      p.Rate.Get().(int),
		Limit:     p.Limit.Get().(int),
		Span:      p.Span.Get().(int),
		FrameRate: DefaultFrameRate,
	}
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
