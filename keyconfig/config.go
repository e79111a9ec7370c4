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

package keyconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/logger"
)

// DefaultKeysFile is the default filename of the bindings file.
const DefaultKeysFile = "keys.yaml"

// Config collects every binding table used by the front-end.
type Config struct {
	HotKeys    *keybind.Table
	SystemKeys *keybind.Table

	// controllers for every core that has been used. created on demand by
	// the Controllers() function
	controllers map[string]*Controllers

	// the names of the sections that were replaced by defaults during the
	// most recent load
	recovered []string
}

// NewConfig creates a Config with the default bindings.
func NewConfig() *Config {
	return &Config{
		HotKeys:     NewHotKeys(),
		SystemKeys:  NewSystemKeys(),
		controllers: make(map[string]*Controllers),
	}
}

// Controllers returns the controller bindings for the core, creating them
// from the default layout if necessary.
func (cfg *Config) Controllers(core string) (*Controllers, error) {
	if c, ok := cfg.controllers[core]; ok {
		return c, nil
	}
	c, err := NewControllers(core)
	if err != nil {
		return nil, err
	}
	cfg.controllers[core] = c
	return c, nil
}

// Cores returns the sorted list of cores that have controller bindings.
func (cfg *Config) Cores() []string {
	cores := make([]string, 0, len(cfg.controllers))
	for c := range cfg.controllers {
		cores = append(cores, c)
	}
	sort.Strings(cores)
	return cores
}

// ResetToDefaults resets every table to its default bindings.
func (cfg *Config) ResetToDefaults() {
	cfg.HotKeys.ResetToDefaults()
	cfg.SystemKeys.ResetToDefaults()
	for _, c := range cfg.controllers {
		c.ResetToDefaults()
	}
}

// Recovered returns the names of the sections that could not be decoded
// during the most recent load and were replaced by their defaults.
func (cfg *Config) Recovered() []string {
	return cfg.recovered
}

// the persisted form of a binding table
type entry struct {
	Action  string          `yaml:"action" json:"action"`
	Binding keybind.Binding `yaml:"binding" json:"binding"`
}

type section []entry

func newSection(t *keybind.Table) section {
	var s section
	for _, e := range t.Entries() {
		s = append(s, entry{Action: e.Action, Binding: e.Binding})
	}
	return s
}

// apply the section to the table. actions that are not in the default table
// are ignored. actions that are missing from the section keep their current
// binding
func (s section) apply(name string, t *keybind.Table) {
	known := make(map[string]bool)
	for _, e := range t.Defaults() {
		known[e.Action] = true
	}
	for _, e := range s {
		if !known[e.Action] {
			logger.Logf(logger.Allow, "keyconfig", "%s: ignoring unknown action %q", name, e.Action)
			continue
		}
		t.Set(e.Action, e.Binding)
	}
}

// the persisted form of a Config
type file struct {
	HotKeys     section              `yaml:"hotkeys" json:"hotkeys"`
	SystemKeys  section              `yaml:"system" json:"system"`
	Controllers map[string][]section `yaml:"controllers" json:"controllers"`
}

func (cfg *Config) file() file {
	f := file{
		HotKeys:     newSection(cfg.HotKeys),
		SystemKeys:  newSection(cfg.SystemKeys),
		Controllers: make(map[string][]section),
	}
	for core, c := range cfg.controllers {
		for _, t := range c.tables {
			f.Controllers[core] = append(f.Controllers[core], newSection(t))
		}
	}
	return f
}

// decoder abstracts the differences between the YAML and JSON forms. the raw
// type is yaml.Node or json.RawMessage
type decoder[raw any] struct {
	unmarshal func(data []byte, v any) error
	decode    func(r raw, v any) error

	// absent returns true if the section was not in the data
	absent func(r raw) bool
}

// sections are held as values. yaml.v3 will not decode a sequence into a
// *yaml.Node
type rawFile[raw any] struct {
	HotKeys     raw            `yaml:"hotkeys" json:"hotkeys"`
	SystemKeys  raw            `yaml:"system" json:"system"`
	Controllers map[string]raw `yaml:"controllers" json:"controllers"`
}

var yamlDecoder = decoder[yaml.Node]{
	unmarshal: yaml.Unmarshal,
	decode: func(n yaml.Node, v any) error {
		return n.Decode(v)
	},
	absent: func(n yaml.Node) bool {
		return n.Kind == 0
	},
}

var jsonDecoder = decoder[json.RawMessage]{
	unmarshal: json.Unmarshal,
	decode: func(m json.RawMessage, v any) error {
		return json.Unmarshal(m, v)
	},
	absent: func(m json.RawMessage) bool {
		return len(m) == 0 || string(m) == "null"
	},
}

// load decodes the data into the Config. each section is decoded separately
// and a section that fails to decode leaves the table with its default
// bindings.
func load[raw any](cfg *Config, data []byte, dec decoder[raw]) {
	cfg.ResetToDefaults()
	cfg.recovered = cfg.recovered[:0]

	fallback := func(name string, err error) {
		err = curated.Errorf(MalformedBindings, name, err)
		logger.Log(logger.Allow, "keyconfig", err)
		cfg.recovered = append(cfg.recovered, name)
	}

	var rf rawFile[raw]
	if err := dec.unmarshal(data, &rf); err != nil {
		fallback("all", err)
		return
	}

	table := func(name string, r raw, t *keybind.Table) {
		if dec.absent(r) {
			return
		}
		var s section
		if err := dec.decode(r, &s); err != nil {
			fallback(name, err)
			return
		}
		s.apply(name, t)
	}

	table("hotkeys", rf.HotKeys, cfg.HotKeys)
	table("system", rf.SystemKeys, cfg.SystemKeys)

	for core, r := range rf.Controllers {
		name := fmt.Sprintf("controllers.%s", core)

		c, err := cfg.Controllers(core)
		if err != nil {
			fallback(name, err)
			continue
		}

		var s []section
		if err := dec.decode(r, &s); err != nil {
			fallback(name, err)
			continue
		}
		for i, t := range c.tables {
			if i < len(s) {
				s[i].apply(name, t)
			}
		}
	}

	sort.Strings(cfg.recovered)
}

// Load the bindings file. A missing file is not an error, the default
// bindings are used. Sections of the file that cannot be decoded are replaced
// by their defaults and listed by Recovered().
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, curated.Errorf(FileError, err)
	}

	load(cfg, data, yamlDecoder)
	return cfg, nil
}

// Save the bindings to the file in YAML format.
func (cfg *Config) Save(path string) error {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.file()); err != nil {
		return curated.Errorf(FileError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(FileError, err)
	}

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return curated.Errorf(FileError, err)
	}

	logger.Logf(logger.Allow, "keyconfig", "saved bindings to %s", path)
	return nil
}

// ExportJSON writes the bindings to the writer in JSON format.
func (cfg *Config) ExportJSON(w io.Writer) error {
	data, err := json.MarshalIndent(cfg.file(), "", "  ")
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	if _, err := w.Write(data); err != nil {
		return curated.Errorf(FileError, err)
	}
	return nil
}

// ImportJSON replaces the bindings with those read from the reader. Sections
// that cannot be decoded are handled the same way as Load().
func (cfg *Config) ImportJSON(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	load(cfg, data, jsonDecoder)
	return nil
}
