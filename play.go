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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/emulation/testcard"
	"github.com/meru-emu/meru/gui/sdlplay"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/logger"
	"github.com/meru-emu/meru/modalflag"
	"github.com/meru-emu/meru/paths"
	"github.com/meru-emu/meru/playmode"
	"github.com/meru-emu/meru/prefs"
	"github.com/meru-emu/meru/rewind"
	"github.com/meru-emu/meru/statsview"
	"github.com/meru-emu/meru/version"
)

// sub-directories of the resource path
const (
	backupPath = "backup"
	statesPath = "states"
)

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	coreName := md.AddString("core", "", "emulator core. by default the core is chosen by file extension")
	scale := md.AddInt("scale", 3, "window scaling")
	fullScreen := md.AddBool("fullscreen", false, "start in full screen mode")
	mute := md.AddBool("mute", false, "disable audio output")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	prefsOverride := md.AddString("prefs", "", `override preferences. eg. "rewind.span::30; rewind.rate::64k"`)
	rebind := md.AddString("rebind", "", `record a new chord for an action when play starts. eg. "Turbo" or "Turbo:0"`)
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(fmt.Sprintf(`Without a ROM file the %s core is started.

Cores available: %s`, testcard.Abbrev, coreList()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(*log)

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "meru", "unused preferences: %s", unused)
			}
		}()
	}

	if *stats {
		stop := statsview.Launch(md.Output, "")
		defer stop()
	}

	pl, err := newPlayer(md, *coreName, *rebind)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		scr, err := sdlplay.NewSdlPlay(version.ApplicationName, *scale)
		if err != nil {
			return nil, err
		}
		pl.scr = scr
		pl.session.SetScale(scr.Scale())
		if *fullScreen {
			if err := scr.SetFullScreen(true); err != nil {
				logger.Log(logger.Allow, "meru", err)
			}
		}
		scr.Mute(*mute)
		pl.showTitle()
		return pl, nil
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// the player ends the session when the window is closed
	sync.state <- stateRequest{req: reqNoIntSig}

	err = <-pl.done

	if serr := pl.cfg.Save(pl.keysPath); serr != nil {
		logger.Log(logger.Allow, "meru", serr)
	}

	return err
}

func coreList() string {
	var s []string
	for _, c := range emulation.Cores() {
		s = append(s, fmt.Sprintf("%s (%s)", c.Abbrev, c.SystemName))
	}
	return strings.Join(s, ", ")
}

// player connects a playmode session to an SDL window. it implements the
// GuiCreator interface and is serviced by the main thread.
type player struct {
	session *playmode.Session
	cfg     *keyconfig.Config
	prefs   *rewind.Preferences
	scr     *sdlplay.SdlPlay

	// name of the game. used for naming backup and state files
	name string

	keysPath string

	// the result of the session is sent on this channel when the session has
	// ended. it is buffered so that sending from the main thread never blocks
	done  chan error
	ended bool
}

func newPlayer(md *modalflag.Modes, coreName string, rebind string) (*player, error) {
	pl := &player{
		done: make(chan error, 1),
	}

	var rom []byte
	var err error

	switch len(md.RemainingArgs()) {
	case 0:
		if coreName == "" {
			coreName = testcard.Abbrev
		}
		pl.name = coreName
	case 1:
		filename := md.GetArg(0)
		rom, err = os.ReadFile(filename)
		if err != nil {
			return nil, curated.Errorf("meru: %v", err)
		}
		if coreName == "" {
			coreName, err = emulation.CoreForFile(filename)
			if err != nil {
				return nil, err
			}
		}
		pl.name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	pl.keysPath, err = paths.ResourcePath("", keyconfig.DefaultKeysFile)
	if err != nil {
		return nil, err
	}
	pl.cfg, err = keyconfig.Load(pl.keysPath)
	if err != nil {
		return nil, err
	}
	for _, s := range pl.cfg.Recovered() {
		logger.Logf(logger.Allow, "meru", "bindings for %s have been reset", s)
	}

	store := rewind.NewStore(rewind.DefaultBudget())
	pl.prefs, err = rewind.NewPreferences(store, "")
	if err != nil {
		return nil, err
	}

	backup, err := pl.readFile(backupPath, pl.name+".sav")
	if err != nil {
		return nil, err
	}

	core, err := emulation.Load(coreName, rom, backup)
	if err != nil {
		return nil, err
	}

	pl.session, err = playmode.NewSession(pl.cfg, store, pl.notify)
	if err != nil {
		return nil, err
	}
	pl.session.SetRewindEnabled(pl.prefs.Enabled.Get().(bool))
	pl.prefs.Enabled.SetHookPost(func(v prefs.Value) error {
		pl.session.SetRewindEnabled(v.(bool))
		return nil
	})

	err = pl.session.Load(core)
	if err != nil {
		return nil, err
	}

	if rebind != "" {
		tbl, action, slot, err := rebindTarget(pl.cfg, core.Info().Abbrev, rebind)
		if err != nil {
			return nil, err
		}
		err = pl.session.BeginCapture(tbl, action, slot)
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "meru", "recording new chord for %s", action)
	}

	return pl, nil
}

// rebindTarget finds the binding table with the action named in the -rebind
// value. the value is the action name, optionally followed by a colon and the
// index of the chord to replace. without an index the new chord is added to
// the end of the binding.
//
// hotkeys are searched first, then the system keys and then the controllers
// of the core.
func rebindTarget(cfg *keyconfig.Config, core string, value string) (*keybind.Table, string, int, error) {
	action, idx, hasIdx := strings.Cut(value, ":")
	action = strings.TrimSpace(action)

	tables := []*keybind.Table{cfg.HotKeys, cfg.SystemKeys}
	if c, err := cfg.Controllers(core); err == nil {
		tables = append(tables, c.Tables()...)
	}

	for _, tbl := range tables {
		b, ok := tbl.Lookup(action)
		if !ok {
			continue
		}
		if !hasIdx {
			return tbl, action, len(b), nil
		}
		slot, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, "", 0, curated.Errorf("meru: rebind: %v", err)
		}
		return tbl, action, slot, nil
	}

	return nil, "", 0, curated.Errorf("meru: rebind: no action named %s", action)
}

// read a file from the resource path. a file that does not exist is not an
// error, the returned data will be nil
func (pl *player) readFile(sub string, file string) ([]byte, error) {
	pth, err := paths.ResourcePath(sub, file)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, curated.Errorf("meru: %v", err)
	}
	return data, nil
}

func (pl *player) writeFile(sub string, file string, data []byte) error {
	pth, err := paths.ResourcePath(sub, file)
	if err != nil {
		return err
	}
	err = os.WriteFile(pth, data, 0o644)
	if err != nil {
		return curated.Errorf("meru: %v", err)
	}
	return nil
}

func (pl *player) stateFile(slot int) string {
	return fmt.Sprintf("%s.%d.state", pl.name, slot)
}

func (pl *player) showTitle() {
	if pl.scr == nil {
		return
	}

	var s strings.Builder
	s.WriteString(version.ApplicationName)
	if core := pl.session.Core(); core != nil {
		fmt.Fprintf(&s, " - %s [%s]", pl.name, core.Info().SystemName)
	}

	switch pl.session.State() {
	case emulation.Paused:
		s.WriteString(" (paused)")
	case emulation.Rewinding:
		fmt.Fprintf(&s, " (rewind %d/%d)", pl.session.Cursor()+1, pl.session.Store().Len())
	case emulation.Capturing:
		fmt.Fprintf(&s, " (press keys: %s)", pl.session.Chord())
	default:
		fmt.Fprintf(&s, " slot #%d", pl.session.Slot())
	}

	pl.scr.SetTitle(s.String())
}

// notify implements the playmode.NotifyFunc type. called from the main thread
// during Session.Tick()
func (pl *player) notify(ev emulation.Event, data any) {
	var err error

	switch ev {
	case emulation.EventStateSave:
		d := data.(playmode.StateData)
		err = pl.writeFile(statesPath, pl.stateFile(d.Slot), d.State)
		if err == nil {
			logger.Logf(logger.Allow, "meru", "state saved to slot #%d", d.Slot)
		}

	case emulation.EventStateLoad:
		slot := data.(int)
		var state []byte
		state, err = pl.readFile(statesPath, pl.stateFile(slot))
		if err == nil {
			if state == nil {
				logger.Logf(logger.Allow, "meru", "no state in slot #%d", slot)
			} else {
				err = pl.session.LoadState(state)
			}
		}

	case emulation.EventBackup:
		err = pl.writeFile(backupPath, pl.name+".sav", data.([]byte))

	case emulation.EventFullScreen:
		if pl.scr != nil {
			err = pl.scr.SetFullScreen(!pl.scr.FullScreen())
		}

	case emulation.EventScaleUp, emulation.EventScaleDown:
		if pl.scr != nil {
			pl.session.SetScale(pl.scr.SetScale(data.(int)))
		}

	case emulation.EventMenu:
		if pl.scr != nil {
			pl.scr.Mute(data.(bool))
		}

	case emulation.EventCaptureCommit:
		d := data.(playmode.CaptureData)
		logger.Logf(logger.Allow, "meru", "%s bound to %s", d.Action, d.Chord)
		err = pl.cfg.Save(pl.keysPath)
	}

	if err != nil {
		logger.Log(logger.Allow, "meru", err)
	}

	pl.showTitle()
}

// Service implements the GuiCreator interface.
func (pl *player) Service() {
	if pl.ended {
		return
	}

	quit, err := pl.session.Tick(pl.scr.Poll())
	if err != nil {
		// errors from the session are not fatal
		logger.Log(logger.Allow, "meru", err)
	}
	if quit {
		pl.end(nil)
		return
	}

	if core := pl.session.Core(); core != nil {
		if err := pl.scr.Render(core.FrameBuffer()); err != nil {
			pl.end(err)
			return
		}

		if pl.session.State() == emulation.Running && !pl.session.Turbo() {
			if err := pl.scr.SetAudio(core.AudioBuffer()); err != nil {
				logger.Log(logger.Allow, "meru", err)
			}
		}
	}

	if pl.session.State() == emulation.Capturing {
		pl.showTitle()
	}

	if !pl.session.Turbo() {
		pl.scr.Wait()
	}
}

// end the session and tell the launching goroutine. must be called from the
// main thread
func (pl *player) end(err error) {
	pl.session.End()
	pl.ended = true
	pl.done <- err
}

// Destroy implements the GuiCreator interface.
func (pl *player) Destroy(output io.Writer) {
	if pl.scr != nil {
		pl.scr.Destroy()
		pl.scr = nil
	}
}
