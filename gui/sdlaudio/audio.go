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

package sdlaudio

import (
	"encoding/binary"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames requested from the audio device. the precise
// value is not critical
const bufferLength = 1024

// if the number of queued bytes exceeds this value the queue is cleared
// before adding new data. this happens when the emulation is running faster
// than real time, for example in turbo mode
const maxQueueLength = bufferLength * 16

// bytes per stereo sample frame (two channels of signed 16 bit)
const frameSize = 4

// Audio outputs sound using SDL. SDL must have been initialised with the
// INIT_AUDIO flag.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// reused between calls to SetAudio()
	buffer []byte

	muted bool
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     emulation.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Mute stops audio output without closing the device. Queued audio is
// discarded.
func (aud *Audio) Mute(muted bool) {
	aud.muted = muted
	if muted {
		sdl.ClearQueuedAudio(aud.id)
	}
}

// Encode samples as interleaved little-endian signed 16 bit values. The buf
// argument is reused if it has enough capacity.
func Encode(buf []byte, samples []emulation.AudioSample) []byte {
	n := len(samples) * frameSize
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*frameSize:], uint16(s.Left))
		binary.LittleEndian.PutUint16(buf[i*frameSize+2:], uint16(s.Right))
	}
	return buf
}

// SetAudio queues the samples for playback.
func (aud *Audio) SetAudio(samples []emulation.AudioSample) error {
	if aud.muted || len(samples) == 0 {
		return nil
	}

	if sdl.GetQueuedAudioSize(aud.id) > maxQueueLength*frameSize {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.buffer = Encode(aud.buffer, samples)
	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing closes the audio device.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
