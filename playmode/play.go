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

package playmode

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/logger"
	"github.com/meru-emu/meru/rewind"
	"github.com/meru-emu/meru/thumbnailer"
	"github.com/meru-emu/meru/userinput"
)

// FrameSkipOnTurbo is the number of frames executed per tick while the turbo
// hotkey is held.
const FrameSkipOnTurbo = 4

// BackupInterval is the number of frames between each backup notification.
const BackupInterval = 60 * emulation.FrameRate

// maximum size of rewind thumbnails
const (
	thumbnailWidth  = 160
	thumbnailHeight = 144
)

// Sentinal error patterns.
const (
	NoGame = "playmode: no game loaded"
)

// Session is one play session of the front-end. It is ticked once per host
// frame with the input events that have arrived since the last tick.
//
// A Session begins without a core. Tick() does nothing but update the input
// state until Load() has been called.
type Session struct {
	id uuid.UUID

	cfg    *keyconfig.Config
	store  *rewind.Store
	thumb  *thumbnailer.Thumbnailer
	notify NotifyFunc

	input *userinput.State

	core        emulation.Core
	controllers *keyconfig.Controllers

	state emulation.State

	// the state to return to after capturing
	resume emulation.State

	// number of frames executed since the game was loaded. never decreases,
	// even after a rewind
	frames int

	// frame number of the most recent backup notification
	lastBackup int

	rewindEnabled bool
	cursor        int

	turbo bool

	slot  int
	scale int

	capture *capture
}

// NewSession is the preferred method of initialisation for the Session type.
// The notify function can be nil.
func NewSession(cfg *keyconfig.Config, store *rewind.Store, notify NotifyFunc) (*Session, error) {
	thumb, err := thumbnailer.NewThumbnailer(thumbnailWidth, thumbnailHeight, thumbnailer.Fast)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	if notify == nil {
		notify = func(_ emulation.Event, _ any) {}
	}

	return &Session{
		id:            uuid.New(),
		cfg:           cfg,
		store:         store,
		thumb:         thumb,
		notify:        notify,
		input:         userinput.NewState(),
		state:         emulation.Initialising,
		rewindEnabled: true,
		scale:         1,
	}, nil
}

func (s *Session) String() string {
	if s.core == nil {
		return fmt.Sprintf("%s: no game", s.id)
	}
	return fmt.Sprintf("%s: %s (%s)", s.id, s.core.Info().SystemName, s.state)
}

// ID returns the unique identifier of the current game session. A new ID is
// generated every time a game is loaded.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current emulation state.
func (s *Session) State() emulation.State {
	return s.state
}

// Core returns the current emulator core. Returns nil if no game is loaded.
func (s *Session) Core() emulation.Core {
	return s.core
}

// Store returns the rewind store.
func (s *Session) Store() *rewind.Store {
	return s.store
}

// Frames returns the number of frames executed since the game was loaded.
func (s *Session) Frames() int {
	return s.frames
}

// Slot returns the current state slot.
func (s *Session) Slot() int {
	return s.slot
}

// Scale returns the requested window scale.
func (s *Session) Scale() int {
	return s.scale
}

// SetScale sets the window scale. The scale is never less than one.
func (s *Session) SetScale(scale int) {
	s.scale = max(scale, 1)
}

// Turbo returns true if the turbo hotkey was held during the most recent tick.
func (s *Session) Turbo() bool {
	return s.turbo
}

// SetRewindEnabled turns the capture of rewind snapshots during normal play on
// or off.
func (s *Session) SetRewindEnabled(enabled bool) {
	s.rewindEnabled = enabled
}

// Load begins a new game session with the core. The rewind history of the
// previous session is forgotten.
func (s *Session) Load(core emulation.Core) error {
	if core == nil {
		return curated.Errorf(NoGame)
	}

	ctrl, err := s.cfg.Controllers(core.Info().Abbrev)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// battery backed memory of the outgoing core
	s.backup()

	s.id = uuid.New()
	s.core = core
	s.controllers = ctrl
	s.store.Reset()
	s.frames = 0
	s.lastBackup = 0
	s.cursor = 0
	s.capture = nil
	s.state = emulation.Running

	logger.Logf(logger.Allow, "playmode", "session %s: %s", s.id, core.Info().SystemName)
	s.notify(emulation.EventGameLoaded, core.Info())

	return nil
}

// End the game session. The battery backed memory of the core is sent to the
// host with an EventBackup notification.
func (s *Session) End() {
	s.backup()
	s.core = nil
	s.controllers = nil
	s.store.Reset()
	s.state = emulation.Ending
}

// LoadState loads state data into the core. Used by the host in response to
// an EventStateLoad notification.
func (s *Session) LoadState(data []byte) error {
	if s.core == nil {
		return curated.Errorf(NoGame)
	}
	err := s.core.LoadState(data)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	return nil
}

// SetPaused pauses or resumes the emulation. Has no effect while rewinding
// or capturing.
func (s *Session) SetPaused(paused bool) {
	switch s.state {
	case emulation.Running:
		if paused {
			s.state = emulation.Paused
		}
	case emulation.Paused:
		if !paused {
			s.state = emulation.Running
		}
	}
}

// Tick handles the input events and then advances the session by one host
// frame. Returns true if one of the events was a quit event.
func (s *Session) Tick(events []userinput.Event) (bool, error) {
	quit := s.handleEvents(events)
	snap := s.input.Tick()

	if s.core == nil {
		return quit, nil
	}

	var err error

	switch s.state {
	case emulation.Running:
		err = s.tickRunning(snap)
	case emulation.Paused:
		s.tickPaused(snap)
	case emulation.Rewinding:
		err = s.tickRewinding(snap)
	case emulation.Capturing:
		s.tickCapture(snap)
	}

	return quit, err
}

// snapshot of the current emulation state for the rewind store
func (s *Session) snapshot() (*rewind.Snapshot, error) {
	return &rewind.Snapshot{
		State:     s.core.SaveState(),
		Thumbnail: s.thumb.Create(s.core.FrameBuffer()),
		Frame:     s.frames,
	}, nil
}

func (s *Session) backup() {
	if s.core == nil {
		return
	}
	s.lastBackup = s.frames
	if data, ok := s.core.Backup(); ok {
		s.notify(emulation.EventBackup, data)
	}
}

// Chord returns the pending chord while capturing.
func (s *Session) Chord() keybind.Chord {
	if s.capture == nil {
		return nil
	}
	return s.capture.cp.Pending()
}
