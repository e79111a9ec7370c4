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

package sdlplay

import (
	"image"
	"unsafe"

	"github.com/meru-emu/meru/curated"
	"github.com/meru-emu/meru/emulation"
	"github.com/meru-emu/meru/gui/sdlaudio"
	"github.com/meru-emu/meru/gui/sdlinput"
	"github.com/meru-emu/meru/logger"
	"github.com/meru-emu/meru/performance/limiter"
	"github.com/meru-emu/meru/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// limits for the SetScale() function
const (
	MinScale = 1
	MaxScale = 8
)

// SdlPlay is a simple SDL window for playing games. It presents the frame
// buffer of an emulator core and plays its audio.
//
// All functions must be called from the main thread.
type SdlPlay struct {
	title string

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture. the window is this size multiplied by the scale
	// value
	width  int32
	height int32
	scale  int

	fullScreen bool

	// audio is optional. it will be nil if the audio device could not be
	// opened
	aud *sdlaudio.Audio

	input *sdlinput.Input
	lmtr  *limiter.FpsLimiter
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
func NewSdlPlay(title string, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		title: title,
		scale: clampScale(scale),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window size is set in the resize() function once the size of the frame
	// buffer is known
	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// a missing audio device is not fatal
	scr.aud, err = sdlaudio.NewAudio()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		scr.aud = nil
	}

	scr.input = sdlinput.NewInput()
	scr.lmtr = limiter.NewFPSLimiter(emulation.FrameRate)

	return scr, nil
}

// Destroy the window and release all SDL resources.
func (scr *SdlPlay) Destroy() {
	scr.input.Close()
	if scr.aud != nil {
		_ = scr.aud.EndMixing()
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// Poll returns all user input that has arrived since the previous call.
func (scr *SdlPlay) Poll() []userinput.Event {
	return scr.input.Poll()
}

// Wait until it is time to present the next frame.
func (scr *SdlPlay) Wait() {
	scr.lmtr.Wait()
}

// SetTitle changes the window title. An empty string resets the title to the
// value given to NewSdlPlay().
func (scr *SdlPlay) SetTitle(title string) {
	if title == "" {
		title = scr.title
	}
	scr.window.SetTitle(title)
}

func clampScale(scale int) int {
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}

// Scale returns the current scaling value.
func (scr *SdlPlay) Scale() int {
	return scr.scale
}

// SetScale changes the size of the window. The value is clamped to the range
// MinScale to MaxScale. The new value is returned.
func (scr *SdlPlay) SetScale(scale int) int {
	scr.scale = clampScale(scale)
	scr.setWindowSize()
	return scr.scale
}

func (scr *SdlPlay) setWindowSize() {
	if scr.fullScreen || scr.width == 0 {
		return
	}
	scr.window.SetSize(scr.width*int32(scr.scale), scr.height*int32(scr.scale))
}

// FullScreen returns true if the window is in full screen mode.
func (scr *SdlPlay) FullScreen() bool {
	return scr.fullScreen
}

// SetFullScreen switches between full screen and windowed mode.
func (scr *SdlPlay) SetFullScreen(fullScreen bool) error {
	var err error
	if fullScreen {
		err = scr.window.SetFullscreen(uint32(sdl.WINDOW_FULLSCREEN_DESKTOP))
	} else {
		err = scr.window.SetFullscreen(0)
	}
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.fullScreen = fullScreen
	scr.setWindowSize()
	return nil
}

// create a new texture if the size of the frame buffer has changed
func (scr *SdlPlay) resize(w, h int32) error {
	if w == scr.width && h == scr.height && scr.texture != nil {
		return nil
	}

	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	var err error

	// the byte order of image.RGBA is the same as ABGR8888 on little-endian
	// machines
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.SetLogicalSize(w, h)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.width = w
	scr.height = h
	scr.setWindowSize()
	scr.window.Show()

	logger.Logf(logger.Allow, "sdlplay", "frame size: %dx%d", w, h)

	return nil
}

// Render the image to the window.
func (scr *SdlPlay) Render(img *image.RGBA) error {
	if img == nil || img.Rect.Empty() {
		return nil
	}

	b := img.Bounds()
	err := scr.resize(int32(b.Dx()), int32(b.Dy()))
	if err != nil {
		return err
	}

	err = scr.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	_ = scr.renderer.Clear()
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetAudio queues the samples for playback.
func (scr *SdlPlay) SetAudio(samples []emulation.AudioSample) error {
	if scr.aud == nil {
		return nil
	}
	return scr.aud.SetAudio(samples)
}

// Mute audio output.
func (scr *SdlPlay) Mute(muted bool) {
	if scr.aud == nil {
		return
	}
	scr.aud.Mute(muted)
}
