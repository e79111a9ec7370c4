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
	"image"

	"github.com/meru-emu/meru/keyconfig"
)

// FrameRate is the number of frames per second for all cores. It is used to
// convert frame numbers into elapsed time.
const FrameRate = 60

// CoreInfo describes an emulator core.
type CoreInfo struct {
	// the name of the emulated system
	SystemName string

	// short name used in configuration files and on the command line. also
	// used as the key for the controller layout in the keyconfig package
	Abbrev string

	// file extensions of the ROM images the core accepts, without the
	// leading dot
	FileExtensions []string
}

// SampleRate is the number of audio samples per second produced by a core.
const SampleRate = 48000

// AudioSample is one stereo sample.
type AudioSample struct {
	Left  int16
	Right int16
}

// Core is the contract between the front-end and an emulator core. The
// emulation itself is entirely the responsibility of the core.
//
// All functions are called from the emulation goroutine.
type Core interface {
	Info() CoreInfo

	// GameInfo returns a list of key/value pairs describing the loaded game
	GameInfo() [][2]string

	// ExecFrame runs the emulation for one frame. Rendering of the frame
	// buffer can be skipped when the frame is not going to be displayed
	ExecFrame(render bool)
	Reset()

	// FrameBuffer returns the most recently rendered frame. The image must
	// not be modified by the caller
	FrameBuffer() *image.RGBA

	// AudioBuffer returns the audio samples generated by the most recent
	// frame
	AudioBuffer() []AudioSample

	// SetInput is called before ExecFrame() with the state of the emulated
	// controllers
	SetInput(in keyconfig.InputData)

	// Backup returns the contents of battery backed memory. The boolean is
	// false if the cartridge has no battery backed memory
	Backup() ([]byte, bool)

	// SaveState serialises the entire state of the emulation. The data is
	// opaque to the front-end and is only meaningful to the same core
	SaveState() []byte
	LoadState(data []byte) error
}

// Mode indicates the broad features of the emulation.
type Mode int

// List of defined modes.
const (
	ModeNone Mode = iota
	ModePlay
	ModeKeys
	ModeRewindSim
)

func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "PLAY"
	case ModeKeys:
		return "KEYS"
	case ModeRewindSim:
		return "REWINDSIM"
	}
	return "none"
}

// State indicates the emulation's state.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Rewinding, Paused, etc.
type State int

// List of possible emulation states.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Capturing
	Rewinding
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "start"
	case Initialising:
		return "initialising"
	case Paused:
		return "paused"
	case Capturing:
		return "capturing"
	case Rewinding:
		return "rewinding"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown"
}

// Event describes an event that the host (the GUI) should respond to. Events
// are for things that happen outside of the core. For example, a request to
// save the emulation state to the current slot.
type Event int

// List of defined events.
const (
	EventReset Event = iota
	EventStateSave
	EventStateLoad
	EventSlotChange
	EventMenu
	EventFullScreen
	EventScaleUp
	EventScaleDown
	EventRewindStart
	EventRewindMove
	EventRewindCommit
	EventCaptureCommit
	EventGameLoaded
	EventBackup
)

func (ev Event) String() string {
	switch ev {
	case EventReset:
		return "reset"
	case EventStateSave:
		return "state save"
	case EventStateLoad:
		return "state load"
	case EventSlotChange:
		return "slot change"
	case EventMenu:
		return "menu"
	case EventFullScreen:
		return "fullscreen"
	case EventScaleUp:
		return "scale up"
	case EventScaleDown:
		return "scale down"
	case EventRewindStart:
		return "rewind start"
	case EventRewindMove:
		return "rewind move"
	case EventRewindCommit:
		return "rewind commit"
	case EventCaptureCommit:
		return "capture commit"
	case EventGameLoaded:
		return "game loaded"
	case EventBackup:
		return "backup"
	}
	return "unknown"
}
