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

package playmode_test

import (
	"testing"

	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/emulation/testcard"
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/playmode"
	"github.com/meru-emu/meru/rewind"
	"github.com/meru-emu/meru/test"
	"github.com/meru-emu/meru/userinput"
)

type notification struct {
	ev   emulation.Event
	data any
}

type harness struct {
	t       *testing.T
	cfg     *keyconfig.Config
	store   *rewind.Store
	sess    *playmode.Session
	card    *testcard.Card
	notices []notification
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		t:     t,
		cfg:   keyconfig.NewConfig(),
		store: rewind.NewStore(rewind.Budget{Rate: 1 << 30, Limit: 1 << 30, Span: 60, FrameRate: 60}),
	}

	var err error
	h.sess, err = playmode.NewSession(h.cfg, h.store, func(ev emulation.Event, data any) {
		h.notices = append(h.notices, notification{ev: ev, data: data})
	})
	test.DemandSuccess(t, err)

	h.card, err = testcard.New(make([]byte, 256), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, h.sess.Load(h.card))
	test.DemandEquality(t, h.sess.State(), emulation.Running)

	return h
}

// tick the session with the events
func (h *harness) tick(events ...userinput.Event) {
	h.t.Helper()
	quit, err := h.sess.Tick(events)
	test.DemandSuccess(h.t, err)
	test.DemandFailure(h.t, quit)
}

// tick the session n times with no events
func (h *harness) idle(n int) {
	h.t.Helper()
	for i := 0; i < n; i++ {
		h.tick()
	}
}

func down(k userinput.KeyCode) userinput.Event {
	return userinput.EventKeyboard{Key: k, Down: true}
}

func up(k userinput.KeyCode) userinput.Event {
	return userinput.EventKeyboard{Key: k, Down: false}
}

// the most recent notification of the event type
func (h *harness) last(ev emulation.Event) (any, bool) {
	for i := len(h.notices) - 1; i >= 0; i-- {
		if h.notices[i].ev == ev {
			return h.notices[i].data, true
		}
	}
	return nil, false
}

func TestNoGame(t *testing.T) {
	sess, err := playmode.NewSession(keyconfig.NewConfig(), rewind.NewStore(rewind.DefaultBudget()), nil)
	test.DemandSuccess(t, err)

	// ticking without a game does nothing
	quit, err := sess.Tick([]userinput.Event{down(userinput.KeyBack)})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectEquality(t, sess.Frames(), 0)

	quit, err = sess.Tick([]userinput.Event{userinput.EventQuit{}})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	test.ExpectFailure(t, sess.Load(nil))
	test.ExpectFailure(t, sess.LoadState(nil))
}

func TestLoad(t *testing.T) {
	h := newHarness(t)
	first := h.sess.ID()

	h.idle(120)
	test.ExpectEquality(t, h.store.Len(), 2)

	info, ok := h.last(emulation.EventGameLoaded)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, info.(emulation.CoreInfo).Abbrev, testcard.Abbrev)

	// loading a new game resets the store and creates a new session id
	card, err := testcard.New(nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, h.sess.Load(card))
	test.ExpectInequality(t, h.sess.ID(), first)
	test.ExpectEquality(t, h.store.Len(), 0)
	test.ExpectEquality(t, h.sess.Frames(), 0)

	// the outgoing core's backup is sent to the host
	_, ok = h.last(emulation.EventBackup)
	test.ExpectSuccess(t, ok)
}

func TestRunning(t *testing.T) {
	h := newHarness(t)

	h.idle(300)
	test.ExpectEquality(t, h.sess.Frames(), 300)
	test.ExpectEquality(t, h.card.Frame(), 300)
	test.ExpectEquality(t, h.store.Len(), 5)
	test.ExpectEquality(t, h.store.Latest().Frame, 300)
	test.ExpectSuccess(t, h.store.Latest().Thumbnail != nil)

	// controller input reaches the core
	x, _ := h.card.Cursor()
	h.tick(down(userinput.KeyRight))
	h.idle(9)
	h.tick(up(userinput.KeyRight))
	nx, _ := h.card.Cursor()
	test.ExpectEquality(t, nx, x+10)

	// no captures when rewind is disabled
	h.sess.SetRewindEnabled(false)
	h.idle(600)
	test.ExpectEquality(t, h.store.Len(), 5)
}

func TestTurbo(t *testing.T) {
	h := newHarness(t)

	h.tick(down(userinput.KeyTab))
	test.ExpectSuccess(t, h.sess.Turbo())
	h.idle(99)
	test.ExpectEquality(t, h.sess.Frames(), 100*playmode.FrameSkipOnTurbo)

	// no snapshots are taken in turbo mode
	test.ExpectEquality(t, h.store.Len(), 0)

	h.tick(up(userinput.KeyTab))
	test.ExpectFailure(t, h.sess.Turbo())
	test.ExpectEquality(t, h.sess.Frames(), 100*playmode.FrameSkipOnTurbo+1)
	test.ExpectEquality(t, h.store.Len(), 1)
}

func TestRewind(t *testing.T) {
	h := newHarness(t)
	h.idle(300)

	// rewind pushes the current state and opens the timeline at that state
	h.tick(down(userinput.KeyBack))
	test.DemandEquality(t, h.sess.State(), emulation.Rewinding)
	test.ExpectEquality(t, h.store.Len(), 6)
	test.ExpectEquality(t, h.sess.Cursor(), 5)
	h.tick(up(userinput.KeyBack))

	data, ok := h.last(emulation.EventRewindStart)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, data.(playmode.RewindData), playmode.RewindData{Cursor: 5, Entries: 6})

	// the emulation does not run while rewinding
	test.ExpectEquality(t, h.card.Frame(), 300)

	// holding left moves the cursor on every tick
	h.tick(down(userinput.KeyLeft))
	h.idle(2)
	h.tick(up(userinput.KeyLeft))
	test.ExpectEquality(t, h.sess.Cursor(), 2)

	// the cursor doesn't move beyond the start of the timeline
	h.tick(down(userinput.KeyLeft))
	h.idle(10)
	h.tick(up(userinput.KeyLeft))
	test.ExpectEquality(t, h.sess.Cursor(), 0)

	h.tick(down(userinput.KeyRight))
	h.tick(up(userinput.KeyRight))
	test.ExpectEquality(t, h.sess.Cursor(), 1)

	// ok commits to the cursor
	h.tick(down(userinput.KeyReturn))
	test.DemandEquality(t, h.sess.State(), emulation.Running)
	test.ExpectEquality(t, h.store.Len(), 2)
	test.ExpectEquality(t, h.card.Frame(), 120)
	h.tick(up(userinput.KeyReturn))

	// the host frame count carries on from where it was
	test.ExpectEquality(t, h.sess.Frames(), 301)

	_, ok = h.last(emulation.EventRewindCommit)
	test.ExpectSuccess(t, ok)
}

func TestRewindCancel(t *testing.T) {
	h := newHarness(t)
	h.idle(200)

	h.tick(down(userinput.KeyBack))
	h.tick(up(userinput.KeyBack))
	test.DemandEquality(t, h.sess.State(), emulation.Rewinding)
	entries := h.store.Len()

	h.tick(down(userinput.KeyLeft))
	h.tick(up(userinput.KeyLeft))

	// cancel returns to the state at the moment rewinding started
	h.tick(down(userinput.KeyBack))
	test.DemandEquality(t, h.sess.State(), emulation.Running)
	test.ExpectEquality(t, h.store.Len(), entries)
	test.ExpectEquality(t, h.card.Frame(), 200)
	h.tick(up(userinput.KeyBack))

	// the menu hotkey also cancels
	h.tick(down(userinput.KeyBack))
	h.tick(up(userinput.KeyBack))
	test.DemandEquality(t, h.sess.State(), emulation.Rewinding)
	h.tick(down(userinput.KeyEscape))
	test.ExpectEquality(t, h.sess.State(), emulation.Running)
}

func TestSlots(t *testing.T) {
	h := newHarness(t)

	chord := func(k userinput.KeyCode) {
		h.tick(down(userinput.KeyLControl), down(k))
		h.tick(up(userinput.KeyLControl), up(k))
	}

	chord(userinput.KeyN)
	chord(userinput.KeyN)
	test.ExpectEquality(t, h.sess.Slot(), 2)

	for i := 0; i < 3; i++ {
		chord(userinput.KeyP)
	}
	test.ExpectEquality(t, h.sess.Slot(), 0)

	slot, ok := h.last(emulation.EventSlotChange)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, slot.(int), 0)

	chord(userinput.KeyN)
	chord(userinput.KeyS)
	data, ok := h.last(emulation.EventStateSave)
	test.DemandSuccess(t, ok)
	sd := data.(playmode.StateData)
	test.ExpectEquality(t, sd.Slot, 1)

	h.idle(10)
	chord(userinput.KeyL)
	slot, ok = h.last(emulation.EventStateLoad)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, slot.(int), 1)

	// the host responds to the state load event
	test.ExpectSuccess(t, h.sess.LoadState(sd.State))
	test.ExpectEquality(t, h.card.Frame(), 12)
}

func TestScale(t *testing.T) {
	h := newHarness(t)

	h.tick(down(userinput.KeyLControl), down(userinput.KeyEquals))
	h.tick(up(userinput.KeyEquals))
	test.ExpectEquality(t, h.sess.Scale(), 2)

	for i := 0; i < 3; i++ {
		h.tick(down(userinput.KeyMinus))
		h.tick(up(userinput.KeyMinus))
	}
	test.ExpectEquality(t, h.sess.Scale(), 1)
}

func TestMenu(t *testing.T) {
	h := newHarness(t)

	h.tick(down(userinput.KeyEscape))
	h.tick(up(userinput.KeyEscape))
	test.DemandEquality(t, h.sess.State(), emulation.Paused)
	opening, _ := h.last(emulation.EventMenu)
	test.ExpectEquality(t, opening.(bool), true)

	// the emulation doesn't run while the menu is open
	h.idle(10)
	test.ExpectEquality(t, h.card.Frame(), 0)

	h.tick(down(userinput.KeyEscape))
	test.DemandEquality(t, h.sess.State(), emulation.Running)
	opening, _ = h.last(emulation.EventMenu)
	test.ExpectEquality(t, opening.(bool), false)

	h.sess.SetPaused(true)
	test.ExpectEquality(t, h.sess.State(), emulation.Paused)
	h.sess.SetPaused(false)
	test.ExpectEquality(t, h.sess.State(), emulation.Running)
}

func TestCapture(t *testing.T) {
	h := newHarness(t)

	test.ExpectFailure(t, h.sess.BeginCapture(h.cfg.HotKeys, "Nonsense", 0))

	// start capturing while the return key is still held from the menu
	h.tick(down(userinput.KeyReturn))
	test.DemandSuccess(t, h.sess.BeginCapture(h.cfg.HotKeys, string(keyconfig.Menu), 1))
	test.ExpectEquality(t, h.sess.State(), emulation.Capturing)
	h.tick(up(userinput.KeyReturn))

	h.tick(down(userinput.KeyLShift))
	h.tick(down(userinput.KeyM))
	test.ExpectEquality(t, h.sess.Chord().String(), "LShift+M")
	h.tick(up(userinput.KeyLShift))

	test.ExpectFailure(t, h.sess.Capturing())
	test.ExpectEquality(t, h.sess.State(), emulation.Running)

	b, ok := h.cfg.HotKeys.Lookup(string(keyconfig.Menu))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, b.String(), "Escape, LShift+M")

	data, ok := h.last(emulation.EventCaptureCommit)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, data.(playmode.CaptureData).Action, string(keyconfig.Menu))

	// the emulation did not run during capture
	test.ExpectEquality(t, h.card.Frame(), 1)

	// abandoning a capture leaves the binding unchanged
	test.DemandSuccess(t, h.sess.BeginCapture(h.cfg.HotKeys, string(keyconfig.Menu), 0))
	h.tick(down(userinput.KeyQ))
	h.sess.AbandonCapture()
	h.tick(up(userinput.KeyQ))
	b, _ = h.cfg.HotKeys.Lookup(string(keyconfig.Menu))
	test.ExpectEquality(t, b.String(), "Escape, LShift+M")
}

func TestBackupInterval(t *testing.T) {
	h := newHarness(t)

	h.idle(playmode.BackupInterval)
	_, ok := h.last(emulation.EventBackup)
	test.ExpectFailure(t, ok)

	h.tick()
	_, ok = h.last(emulation.EventBackup)
	test.ExpectSuccess(t, ok)
}
