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

package sdlinput

import (
	"github.com/meru-emu/meru/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// scancodes are used rather than keycodes because the position of the key on
// the keyboard is more important than the symbol printed on it
var scancodes = map[sdl.Scancode]userinput.KeyCode{
	sdl.SCANCODE_1: userinput.Key1,
	sdl.SCANCODE_2: userinput.Key2,
	sdl.SCANCODE_3: userinput.Key3,
	sdl.SCANCODE_4: userinput.Key4,
	sdl.SCANCODE_5: userinput.Key5,
	sdl.SCANCODE_6: userinput.Key6,
	sdl.SCANCODE_7: userinput.Key7,
	sdl.SCANCODE_8: userinput.Key8,
	sdl.SCANCODE_9: userinput.Key9,
	sdl.SCANCODE_0: userinput.Key0,

	sdl.SCANCODE_A: userinput.KeyA,
	sdl.SCANCODE_B: userinput.KeyB,
	sdl.SCANCODE_C: userinput.KeyC,
	sdl.SCANCODE_D: userinput.KeyD,
	sdl.SCANCODE_E: userinput.KeyE,
	sdl.SCANCODE_F: userinput.KeyF,
	sdl.SCANCODE_G: userinput.KeyG,
	sdl.SCANCODE_H: userinput.KeyH,
	sdl.SCANCODE_I: userinput.KeyI,
	sdl.SCANCODE_J: userinput.KeyJ,
	sdl.SCANCODE_K: userinput.KeyK,
	sdl.SCANCODE_L: userinput.KeyL,
	sdl.SCANCODE_M: userinput.KeyM,
	sdl.SCANCODE_N: userinput.KeyN,
	sdl.SCANCODE_O: userinput.KeyO,
	sdl.SCANCODE_P: userinput.KeyP,
	sdl.SCANCODE_Q: userinput.KeyQ,
	sdl.SCANCODE_R: userinput.KeyR,
	sdl.SCANCODE_S: userinput.KeyS,
	sdl.SCANCODE_T: userinput.KeyT,
	sdl.SCANCODE_U: userinput.KeyU,
	sdl.SCANCODE_V: userinput.KeyV,
	sdl.SCANCODE_W: userinput.KeyW,
	sdl.SCANCODE_X: userinput.KeyX,
	sdl.SCANCODE_Y: userinput.KeyY,
	sdl.SCANCODE_Z: userinput.KeyZ,

	sdl.SCANCODE_ESCAPE: userinput.KeyEscape,
	sdl.SCANCODE_F1:     userinput.KeyF1,
	sdl.SCANCODE_F2:     userinput.KeyF2,
	sdl.SCANCODE_F3:     userinput.KeyF3,
	sdl.SCANCODE_F4:     userinput.KeyF4,
	sdl.SCANCODE_F5:     userinput.KeyF5,
	sdl.SCANCODE_F6:     userinput.KeyF6,
	sdl.SCANCODE_F7:     userinput.KeyF7,
	sdl.SCANCODE_F8:     userinput.KeyF8,
	sdl.SCANCODE_F9:     userinput.KeyF9,
	sdl.SCANCODE_F10:    userinput.KeyF10,
	sdl.SCANCODE_F11:    userinput.KeyF11,
	sdl.SCANCODE_F12:    userinput.KeyF12,

	sdl.SCANCODE_PRINTSCREEN: userinput.KeySnapshot,
	sdl.SCANCODE_SCROLLLOCK:  userinput.KeyScroll,
	sdl.SCANCODE_PAUSE:       userinput.KeyPause,
	sdl.SCANCODE_INSERT:      userinput.KeyInsert,
	sdl.SCANCODE_HOME:        userinput.KeyHome,
	sdl.SCANCODE_DELETE:      userinput.KeyDelete,
	sdl.SCANCODE_END:         userinput.KeyEnd,
	sdl.SCANCODE_PAGEDOWN:    userinput.KeyPageDown,
	sdl.SCANCODE_PAGEUP:      userinput.KeyPageUp,

	sdl.SCANCODE_LEFT:  userinput.KeyLeft,
	sdl.SCANCODE_UP:    userinput.KeyUp,
	sdl.SCANCODE_RIGHT: userinput.KeyRight,
	sdl.SCANCODE_DOWN:  userinput.KeyDown,

	sdl.SCANCODE_BACKSPACE: userinput.KeyBack,
	sdl.SCANCODE_RETURN:    userinput.KeyReturn,
	sdl.SCANCODE_SPACE:     userinput.KeySpace,
	sdl.SCANCODE_TAB:       userinput.KeyTab,
	sdl.SCANCODE_CAPSLOCK:  userinput.KeyCapital,

	sdl.SCANCODE_NUMLOCKCLEAR: userinput.KeyNumlock,
	sdl.SCANCODE_KP_0:         userinput.KeyNumpad0,
	sdl.SCANCODE_KP_1:         userinput.KeyNumpad1,
	sdl.SCANCODE_KP_2:         userinput.KeyNumpad2,
	sdl.SCANCODE_KP_3:         userinput.KeyNumpad3,
	sdl.SCANCODE_KP_4:         userinput.KeyNumpad4,
	sdl.SCANCODE_KP_5:         userinput.KeyNumpad5,
	sdl.SCANCODE_KP_6:         userinput.KeyNumpad6,
	sdl.SCANCODE_KP_7:         userinput.KeyNumpad7,
	sdl.SCANCODE_KP_8:         userinput.KeyNumpad8,
	sdl.SCANCODE_KP_9:         userinput.KeyNumpad9,
	sdl.SCANCODE_KP_PLUS:      userinput.KeyNumpadAdd,
	sdl.SCANCODE_KP_MINUS:     userinput.KeyNumpadSubtract,
	sdl.SCANCODE_KP_MULTIPLY:  userinput.KeyNumpadMultiply,
	sdl.SCANCODE_KP_DIVIDE:    userinput.KeyNumpadDivide,
	sdl.SCANCODE_KP_PERIOD:    userinput.KeyNumpadDecimal,
	sdl.SCANCODE_KP_ENTER:     userinput.KeyNumpadEnter,
	sdl.SCANCODE_KP_EQUALS:    userinput.KeyNumpadEquals,
	sdl.SCANCODE_KP_COMMA:     userinput.KeyNumpadComma,

	sdl.SCANCODE_APOSTROPHE:   userinput.KeyApostrophe,
	sdl.SCANCODE_BACKSLASH:    userinput.KeyBackslash,
	sdl.SCANCODE_COMMA:        userinput.KeyComma,
	sdl.SCANCODE_EQUALS:       userinput.KeyEquals,
	sdl.SCANCODE_GRAVE:        userinput.KeyGrave,
	sdl.SCANCODE_LEFTBRACKET:  userinput.KeyLBracket,
	sdl.SCANCODE_RIGHTBRACKET: userinput.KeyRBracket,
	sdl.SCANCODE_MINUS:        userinput.KeyMinus,
	sdl.SCANCODE_PERIOD:       userinput.KeyPeriod,
	sdl.SCANCODE_SEMICOLON:    userinput.KeySemicolon,
	sdl.SCANCODE_SLASH:        userinput.KeySlash,

	sdl.SCANCODE_LALT:   userinput.KeyLAlt,
	sdl.SCANCODE_LCTRL:  userinput.KeyLControl,
	sdl.SCANCODE_LSHIFT: userinput.KeyLShift,
	sdl.SCANCODE_LGUI:   userinput.KeyLWin,
	sdl.SCANCODE_RALT:   userinput.KeyRAlt,
	sdl.SCANCODE_RCTRL:  userinput.KeyRControl,
	sdl.SCANCODE_RSHIFT: userinput.KeyRShift,
	sdl.SCANCODE_RGUI:   userinput.KeyRWin,

	sdl.SCANCODE_APPLICATION: userinput.KeyApps,
	sdl.SCANCODE_MUTE:        userinput.KeyMute,
	sdl.SCANCODE_VOLUMEUP:    userinput.KeyVolumeUp,
	sdl.SCANCODE_VOLUMEDOWN:  userinput.KeyVolumeDown,
	sdl.SCANCODE_COPY:        userinput.KeyCopy,
	sdl.SCANCODE_PASTE:       userinput.KeyPaste,
	sdl.SCANCODE_CUT:         userinput.KeyCut,
	sdl.SCANCODE_SYSREQ:      userinput.KeySysrq,
}

// KeyCode returns the userinput.KeyCode for the SDL scancode. The boolean is
// false if there is no equivalent KeyCode.
func KeyCode(sc sdl.Scancode) (userinput.KeyCode, bool) {
	k, ok := scancodes[sc]
	return k, ok
}
