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
	"time"

	"github.com/docker/go-units"
	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/emulation/testcard"
	"github.com/meru-emu/meru/modalflag"
	"github.com/meru-emu/meru/performance"
	"github.com/meru-emu/meru/rewind"
)

// BudgetExceeded is returned by REWINDSIM if the lifetime bytes captured by the
// rewind store is more than the budget allows.
const BudgetExceeded = "rewindsim: budget exceeded: %s captured after %d seconds (allowed %s)"

func rewindSim(md *modalflag.Modes) error {
	md.NewMode()

	def := rewind.DefaultBudget()

	seconds := md.AddInt("seconds", 60, "seconds of play to simulate")
	rate := md.AddBytes("rate", int64(def.Rate), "byte rate budget per second of play")
	limit := md.AddBytes("limit", int64(def.Limit), "maximum bytes retained by the rewind store")
	span := md.AddInt("span", def.Span, "minimum number of frames between snapshots")
	size := md.AddBytes("size", 16*1024, "size of the emulated memory of the testcard core")
	verbose := md.AddBool("verbose", false, "print every capture")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")

	md.AdditionalHelp(`Simulates the rewind store during continuous play of the testcard core. The
number of snapshots captured and retained is printed along with the number of
bytes. The lifetime bytes captured never exceeds the rate multiplied by the
number of seconds played plus the size of one snapshot.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	b := rewind.Budget{
		Rate:      int(*rate),
		Limit:     int(*limit),
		Span:      *span,
		FrameRate: emulation.FrameRate,
	}

	run := func() error {
		return simulate(md.Output, b, *seconds, int(*size), *verbose)
	}

	if !*profile {
		return run()
	}

	err = performance.ProfileCPU("rewindsim.cpu.profile", run)
	if err != nil {
		return err
	}
	return performance.ProfileMem("rewindsim.mem.profile")
}

func simulate(output io.Writer, b rewind.Budget, seconds int, size int, verbose bool) error {
	core, err := emulation.Load(testcard.Abbrev, make([]byte, size), nil)
	if err != nil {
		return err
	}

	store := rewind.NewStore(b)
	fmt.Fprintf(output, "budget: %s\n", store.Budget())

	var snapshotSize int
	var captures int

	frames := seconds * emulation.FrameRate
	start := time.Now()
	for frame := 1; frame <= frames; frame++ {
		core.ExecFrame(false)

		ok, err := store.MaybeCapture(frame, func() (*rewind.Snapshot, error) {
			return &rewind.Snapshot{State: core.SaveState()}, nil
		})
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		captures++
		ss := store.Latest()
		snapshotSize = max(snapshotSize, ss.Size())
		if verbose {
			fmt.Fprintf(output, "frame %d: %s (entries: %d)\n", frame, ss, store.Len())
		}

		if frame%emulation.FrameRate == 0 {
			if err := store.Timeline().Verify(); err != nil {
				return err
			}
		}
	}

	fps, speed := performance.CalcFPS(frames, time.Since(start), emulation.FrameRate)
	allowed := b.Rate*seconds + snapshotSize

	fmt.Fprintf(output, "simulated: %d frames (%d seconds)\n", frames, seconds)
	fmt.Fprintf(output, "snapshot size: %s\n", units.BytesSize(float64(snapshotSize)))
	fmt.Fprintf(output, "captures: %d\n", captures)
	fmt.Fprintf(output, "retained: %d\n", store.Len())
	fmt.Fprintf(output, "retained bytes: %s\n", units.BytesSize(float64(store.TotalBytes())))
	fmt.Fprintf(output, "lifetime bytes: %s\n", units.BytesSize(float64(store.LifetimeBytes())))
	fmt.Fprintf(output, "speed: %.0f fps (%.1fx real time)\n", fps, speed)

	if store.LifetimeBytes() > allowed {
		return curated.Errorf(BudgetExceeded,
			units.BytesSize(float64(store.LifetimeBytes())), seconds,
			units.BytesSize(float64(allowed)))
	}

	return nil
}
