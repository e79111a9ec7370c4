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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/meru-emu/meru/curated"
)

// ProfileCPU runs the function with the CPU profiler running. The profile is
// written to the named file.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile to the named file.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}

// CalcFPS returns the number of frames per second achieved in the elapsed
// time. The accuracy value is the fps as a proportion of the target frame
// rate. A value of 1.0 means the emulation ran in real time.
func CalcFPS(frames int, elapsed time.Duration, target int) (fps float64, accuracy float64) {
	if elapsed <= 0 {
		return 0, 0
	}
	fps = float64(frames) / elapsed.Seconds()
	if target > 0 {
		accuracy = fps / float64(target)
	}
	return fps, accuracy
}
