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

package emulation

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/meru-emu/meru/curated"
)

// Sentinal error patterns.
const (
	UnknownCore = "emulation: unknown core: %s"
)

// Loader creates a new instance of a core from a ROM image. The backup data
// is the contents of battery backed memory and can be nil.
type Loader func(rom []byte, backup []byte) (Core, error)

type registered struct {
	info   CoreInfo
	loader Loader
}

var registry struct {
	crit  sync.Mutex
	cores map[string]registered
}

// Register a core. Should be called from the init() function of the core's
// package. A core registered with the same abbreviation as an existing core
// replaces it.
func Register(info CoreInfo, loader Loader) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	if registry.cores == nil {
		registry.cores = make(map[string]registered)
	}
	registry.cores[info.Abbrev] = registered{info: info, loader: loader}
}

// Cores returns information about every registered core, sorted by
// abbreviation.
func Cores() []CoreInfo {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	c := make([]CoreInfo, 0, len(registry.cores))
	for _, r := range registry.cores {
		c = append(c, r.info)
	}
	sort.Slice(c, func(i, j int) bool {
		return c[i].Abbrev < c[j].Abbrev
	})
	return c
}

// Load creates an instance of the named core.
func Load(abbrev string, rom []byte, backup []byte) (Core, error) {
	registry.crit.Lock()
	r, ok := registry.cores[abbrev]
	registry.crit.Unlock()

	if !ok {
		return nil, curated.Errorf(UnknownCore, abbrev)
	}

	c, err := r.loader(rom, backup)
	if err != nil {
		return nil, curated.Errorf("emulation: %s: %v", abbrev, err)
	}
	return c, nil
}

// CoreForFile returns the abbreviation of the core that accepts files with the
// same extension as the filename.
func CoreForFile(filename string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	for _, c := range Cores() {
		for _, e := range c.FileExtensions {
			if e == ext {
				return c.Abbrev, nil
			}
		}
	}
	return "", curated.Errorf(UnknownCore, filename)
}
