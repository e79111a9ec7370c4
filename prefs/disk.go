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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.yaml"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "# *** do not edit this file by hand while meru is running ***"

// Disk represents preference values as stored on disk. A single file can be
// shared by more than one Disk instance. Saving a Disk only changes the keys
// that have been added to it. All other keys in the file are preserved.
type Disk struct {
	crit sync.Mutex

	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: disk: empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// keys returns the sorted list of keys that have been added to the Disk.
// should be called inside a critical section.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the Disk under the specified key. The key must not
// contain whitespace.
func (dsk *Disk) Add(key string, p Pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if key == "" || strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("prefs: disk: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: disk: key %q already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the preferences file into a map. a file that does not exist results in
// an empty map.
func (dsk *Disk) read() (map[string]any, error) {
	data := make(map[string]any)

	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("prefs: disk: %w", err)
	}

	err = yaml.Unmarshal(b, &data)
	if err != nil {
		return nil, fmt.Errorf("prefs: disk: %s: %w", dsk.path, err)
	}
	if data == nil {
		data = make(map[string]any)
	}

	return data, nil
}

// Load values from the preferences file. Keys in the file that have not been
// added to the Disk are ignored. A missing file is not an error, the current
// values are kept.
//
// Values from the top of the command line stack take priority over the
// values in the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: disk: %s: %w", k, err)
			}
			continue
		}
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: disk: %s: %w", k, err)
			}
		}
	}

	return nil
}

// Save current values to the preferences file. Keys already in the file that
// have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.Get()
	}

	b, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("prefs: disk: %w", err)
	}

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	s.Write(b)

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o644)
	if err != nil {
		return fmt.Errorf("prefs: disk: %w", err)
	}

	return nil
}

// Reset all values added to the Disk. Values are not saved.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: disk: %s: %w", k, err)
		}
	}
	return nil
}
