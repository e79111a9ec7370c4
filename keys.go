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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/modalflag"
	"github.com/meru-emu/meru/paths"
)

func keys(md *modalflag.Modes) error {
	md.NewMode()

	reset := md.AddBool("reset", false, "reset all bindings to the defaults")
	exportJSON := md.AddString("json", "", "export bindings to a JSON file")
	importJSON := md.AddString("import", "", "import bindings from a JSON file")
	memvizFile := md.AddString("memviz", "", "write structure of the binding tables to a graphviz file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(`The bindings for the hotkeys, the system keys and the controllers of every
core are printed. Changes made with the -reset and -import flags are saved.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	echoLog(*log)

	pth, err := paths.ResourcePath("", keyconfig.DefaultKeysFile)
	if err != nil {
		return err
	}

	cfg, err := keyconfig.Load(pth)
	if err != nil {
		return err
	}

	// make sure the controllers of every core are included
	for _, c := range keyconfig.Layouts() {
		if _, err := cfg.Controllers(c); err != nil {
			return err
		}
	}

	save := len(cfg.Recovered()) > 0

	if *reset {
		cfg.ResetToDefaults()
		save = true
	}

	if *importJSON != "" {
		f, err := os.Open(*importJSON)
		if err != nil {
			return curated.Errorf("keys: %v", err)
		}
		err = cfg.ImportJSON(f)
		f.Close()
		if err != nil {
			return err
		}
		save = true
	}

	if save {
		err = cfg.Save(pth)
		if err != nil {
			return err
		}
	}

	printBindings(md.Output, cfg)

	if *exportJSON != "" {
		f, err := os.Create(*exportJSON)
		if err != nil {
			return curated.Errorf("keys: %v", err)
		}
		defer f.Close()
		err = cfg.ExportJSON(f)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("keys: %v", err)
		}
		defer f.Close()
		memviz.Map(f, cfg)
	}

	return nil
}

func printTable(output io.Writer, title string, t *keybind.Table) {
	fmt.Fprintf(output, "%s\n", title)
	for _, e := range t.Entries() {
		fmt.Fprintf(output, "  %-20s %s\n", e.Action, e.Binding)
	}
}

func printBindings(output io.Writer, cfg *keyconfig.Config) {
	printTable(output, "hotkeys", cfg.HotKeys)
	printTable(output, "system", cfg.SystemKeys)
	for _, c := range cfg.Cores() {
		ctrl, err := cfg.Controllers(c)
		if err != nil {
			continue
		}
		for i, t := range ctrl.Tables() {
			printTable(output, fmt.Sprintf("%s controller %d", c, i+1), t)
		}
	}
}
