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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/modalflag"
	"github.com/meru-emu/meru/rewind"
	"github.com/meru-emu/meru/test"
)

func TestRewindSim(t *testing.T) {
	tw := &test.CompareWriter{}

	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-seconds", "30", "-rate", "32k", "-limit", "256k", "-size", "8k"})
	test.DemandSuccess(t, rewindSim(md))

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 8)
	test.ExpectEquality(t, lines[0], "budget: rate=32KiB/s limit=256KiB span=60 frames")
	test.ExpectEquality(t, lines[1], "simulated: 1800 frames (30 seconds)")
}

func TestRewindSimBudget(t *testing.T) {
	tw := &test.CompareWriter{}

	b := rewind.Budget{Rate: 4096, Limit: 1 << 20, Span: 1, FrameRate: 60}
	test.DemandSuccess(t, simulate(tw, b, 20, 1024, true))

	// every capture is printed in verbose mode
	var captures int
	for _, l := range tw.Lines() {
		if strings.HasPrefix(l, "frame ") {
			captures++
		}
	}
	test.ExpectInequality(t, captures, 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "captures: "))
}

func TestRewindSimArgs(t *testing.T) {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"extra"})
	test.ExpectFailure(t, rewindSim(md))

	md.NewArgs([]string{"-rate", "fast"})
	test.ExpectFailure(t, rewindSim(md))
}

func TestBudgetExceeded(t *testing.T) {
	err := curated.Errorf(BudgetExceeded, "1KiB", 1, "512B")
	test.ExpectSuccess(t, curated.Is(err, BudgetExceeded))
}

func TestKeys(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "keys.json")
	memvizFile := filepath.Join(dir, "keys.dot")

	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-reset", "-json", jsonFile, "-memviz", memvizFile})
	test.DemandSuccess(t, keys(md))

	out := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "hotkeys\n"))
	test.ExpectSuccess(t, strings.Contains(out, "system\n"))
	test.ExpectSuccess(t, strings.Contains(out, "testcard controller 1\n"))

	data, err := os.ReadFile(jsonFile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), `"hotkeys"`))

	data, err = os.ReadFile(memvizFile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), "digraph"))

	// the exported bindings can be imported again
	tw.Clear()
	md.NewArgs([]string{"-import", jsonFile})
	test.DemandSuccess(t, keys(md))
	test.ExpectEquality(t, tw.String(), out)

	md.NewArgs([]string{"unexpected"})
	test.ExpectFailure(t, keys(md))
}

func TestRebindTarget(t *testing.T) {
	cfg := keyconfig.NewConfig()

	tbl, action, slot, err := rebindTarget(cfg, "gb", "Turbo")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tbl, cfg.HotKeys)
	test.ExpectEquality(t, action, "Turbo")
	test.ExpectEquality(t, slot, 2)

	tbl, action, slot, err = rebindTarget(cfg, "gb", "Ok:0")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tbl, cfg.SystemKeys)
	test.ExpectEquality(t, action, "Ok")
	test.ExpectEquality(t, slot, 0)

	// controller actions are found in the tables for the core
	gb, err := cfg.Controllers("gb")
	test.DemandSuccess(t, err)
	tbl, _, slot, err = rebindTarget(cfg, "gb", "start:1")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tbl, gb.Tables()[0])
	test.ExpectEquality(t, slot, 1)

	_, _, _, err = rebindTarget(cfg, "gb", "Jump")
	test.ExpectFailure(t, err)
	_, _, _, err = rebindTarget(cfg, "gb", "Turbo:x")
	test.ExpectFailure(t, err)
}
