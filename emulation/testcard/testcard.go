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

package testcard

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/keybind"
	"github.com/meru-emu/meru/keyconfig"
	"github.com/meru-emu/meru/random"
	"github.com/meru-emu/meru/userinput"
)

// Abbrev is the name the testcard core is registered under.
const Abbrev = "testcard"

// Dimensions of the frame buffer.
const (
	Width  = 160
	Height = 144
)

// the number of audio samples generated per frame
const samplesPerFrame = emulation.SampleRate / emulation.FrameRate

// minimum size of work RAM. the size of the ROM image determines the size of
// work RAM if it is larger than this
const minRAM = 64

// size of battery backed memory
const backupSize = 8

// Sentinal error patterns.
const (
	BadState = "testcard: bad state: %v"
)

var stateMagic = [4]byte{'T', 'C', 'R', 'D'}

const stateVersion = 1

func init() {
	emulation.Register(emulation.CoreInfo{
		SystemName:     "Test Card",
		Abbrev:         Abbrev,
		FileExtensions: []string{"tc"},
	}, func(rom []byte, backup []byte) (emulation.Core, error) {
		return New(rom, backup)
	})
	keyconfig.RegisterLayout(Abbrev, layout)
}

func layout() [][]keybind.Entry {
	key := func(k userinput.KeyCode, b userinput.GamepadButtonType) keybind.Binding {
		return keybind.Any(keybind.Key(k), keybind.PadButton(0, b))
	}
	return [][]keybind.Entry{{
		{Action: "up", Binding: key(userinput.KeyUp, userinput.DPadUp)},
		{Action: "down", Binding: key(userinput.KeyDown, userinput.DPadDown)},
		{Action: "left", Binding: key(userinput.KeyLeft, userinput.DPadLeft)},
		{Action: "right", Binding: key(userinput.KeyRight, userinput.DPadRight)},
		{Action: "fire", Binding: key(userinput.KeySpace, userinput.South)},
	}}
}

// Card is a deterministic diagnostic core. It draws a scrolling pattern of
// colour bars with a cursor that can be moved with the controller. Every frame
// a byte of work RAM is changed so that the size and content of the save state
// depend on the ROM image.
//
// Card implements the emulation.Core interface.
type Card struct {
	seed  uint32
	frame uint32

	cursorX uint8
	cursorY uint8

	// number of frames fire has been held. saved to battery backed memory
	fireCount uint32

	ram []byte
	rnd *random.Random

	input keyconfig.InputData

	fb    *image.RGBA
	audio []emulation.AudioSample
}

// New is the preferred method of initialisation for the Card type.
func New(rom []byte, backup []byte) (*Card, error) {
	h := fnv.New32a()
	h.Write(rom)

	c := &Card{
		seed:  h.Sum32(),
		ram:   make([]byte, max(minRAM, len(rom))),
		fb:    image.NewRGBA(image.Rect(0, 0, Width, Height)),
		audio: make([]emulation.AudioSample, 0, samplesPerFrame),
	}

	if len(backup) > 0 {
		if len(backup) != backupSize {
			return nil, fmt.Errorf("testcard: backup data is the wrong size (%d bytes)", len(backup))
		}
		c.fireCount = binary.LittleEndian.Uint32(backup)
	}

	c.rnd = random.NewRandom(c, uint64(c.seed))
	c.rnd.ZeroSeed = true

	c.Reset()
	return c, nil
}

// Info implements the emulation.Core interface.
func (c *Card) Info() emulation.CoreInfo {
	return emulation.CoreInfo{
		SystemName:     "Test Card",
		Abbrev:         Abbrev,
		FileExtensions: []string{"tc"},
	}
}

// GameInfo implements the emulation.Core interface.
func (c *Card) GameInfo() [][2]string {
	return [][2]string{
		{"Seed", fmt.Sprintf("%08x", c.seed)},
		{"Work RAM", fmt.Sprintf("%d bytes", len(c.ram))},
	}
}

// Reset implements the emulation.Core interface. Battery backed memory
// survives a reset.
func (c *Card) Reset() {
	c.frame = 0
	c.cursorX = Width / 2
	c.cursorY = Height / 2
	for i := range c.ram {
		c.ram[i] = byte(c.seed >> (8 * (i % 4)))
	}
	c.render()
}

// Frame returns the number of frames executed since the last reset.
func (c *Card) Frame() int {
	return int(c.frame)
}

// Cursor returns the position of the cursor.
func (c *Card) Cursor() (int, int) {
	return int(c.cursorX), int(c.cursorY)
}

// SetInput implements the emulation.Core interface.
func (c *Card) SetInput(in keyconfig.InputData) {
	c.input = in
}

// ExecFrame implements the emulation.Core interface.
func (c *Card) ExecFrame(render bool) {
	if c.input.Pressed(0, "up") && c.cursorY > 0 {
		c.cursorY--
	}
	if c.input.Pressed(0, "down") && c.cursorY < Height-1 {
		c.cursorY++
	}
	if c.input.Pressed(0, "left") && c.cursorX > 0 {
		c.cursorX--
	}
	if c.input.Pressed(0, "right") && c.cursorX < Width-1 {
		c.cursorX++
	}

	fire := c.input.Pressed(0, "fire")
	if fire {
		c.fireCount++
	}

	i := int(c.frame) % len(c.ram)
	c.ram[i] = c.ram[i]*31 + byte(c.frame)

	// one random byte of work RAM changes every frame
	j := c.rnd.Rewindable(len(c.ram))
	c.ram[j] ^= byte(c.rnd.Rewindable(256))

	c.audio = c.audio[:0]
	for s := 0; s < samplesPerFrame; s++ {
		var v int16
		if fire {
			// square wave of roughly 440Hz
			if (int(c.frame)*samplesPerFrame+s)/55%2 == 0 {
				v = 0x1000
			} else {
				v = -0x1000
			}
		}
		c.audio = append(c.audio, emulation.AudioSample{Left: v, Right: v})
	}

	c.frame++

	if render {
		c.render()
	}
}

var bars = []color.RGBA{
	{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xc0, A: 0xff},
	{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
}

func (c *Card) render() {
	const barWidth = Width / 8
	offset := int(c.frame) % Width

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			col := bars[((x+offset)%Width)/barWidth%len(bars)]
			if abs(x-int(c.cursorX)) <= 2 && abs(y-int(c.cursorY)) <= 2 {
				col = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			}
			c.fb.SetRGBA(x, y, col)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FrameBuffer implements the emulation.Core interface.
func (c *Card) FrameBuffer() *image.RGBA {
	return c.fb
}

// AudioBuffer implements the emulation.Core interface.
func (c *Card) AudioBuffer() []emulation.AudioSample {
	return c.audio
}

// Backup implements the emulation.Core interface.
func (c *Card) Backup() ([]byte, bool) {
	b := make([]byte, backupSize)
	binary.LittleEndian.PutUint32(b, c.fireCount)
	return b, true
}

type stateHeader struct {
	Magic     [4]byte
	Version   uint16
	Seed      uint32
	Frame     uint32
	CursorX   uint8
	CursorY   uint8
	FireCount uint32
	RAMSize   uint32
}

// SaveState implements the emulation.Core interface.
func (c *Card) SaveState() []byte {
	hdr := stateHeader{
		Magic:     stateMagic,
		Version:   stateVersion,
		Seed:      c.seed,
		Frame:     c.frame,
		CursorX:   c.cursorX,
		CursorY:   c.cursorY,
		FireCount: c.fireCount,
		RAMSize:   uint32(len(c.ram)),
	}

	buf := bytes.Buffer{}
	buf.Grow(binary.Size(hdr) + len(c.ram))

	// writing to a bytes.Buffer can't fail
	_ = binary.Write(&buf, binary.LittleEndian, hdr)
	buf.Write(c.ram)

	return buf.Bytes()
}

// LoadState implements the emulation.Core interface. The state must have been
// created by a Card loaded with the same ROM image.
func (c *Card) LoadState(data []byte) error {
	var hdr stateHeader

	r := bytes.NewReader(data)
	err := binary.Read(r, binary.LittleEndian, &hdr)
	if err != nil {
		return curated.Errorf(BadState, err)
	}
	if hdr.Magic != stateMagic {
		return curated.Errorf(BadState, "not a testcard state")
	}
	if hdr.Version != stateVersion {
		return curated.Errorf(BadState, fmt.Sprintf("unsupported version (%d)", hdr.Version))
	}
	if hdr.Seed != c.seed {
		return curated.Errorf(BadState, "state is for a different ROM")
	}
	if int(hdr.RAMSize) != len(c.ram) || r.Len() != len(c.ram) {
		return curated.Errorf(BadState, "work RAM is the wrong size")
	}

	c.frame = hdr.Frame
	c.cursorX = hdr.CursorX
	c.cursorY = hdr.CursorY
	c.fireCount = hdr.FireCount
	_, _ = r.Read(c.ram)

	c.render()

	return nil
}
