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

package userinput

import (
	"fmt"
	"strings"
)

// KeyCode identifies a physical key on the keyboard. The names of the keys
// follow the layout of a US keyboard and are independent of the GUI in use.
type KeyCode int

// List of valid KeyCode values.
const (
	Key1 KeyCode = iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeySnapshot
	KeyScroll
	KeyPause
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBack
	KeyReturn
	KeySpace
	KeyCompose
	KeyCaret
	KeyNumlock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyAbntC1
	KeyAbntC2
	KeyNumpadAdd
	KeyApostrophe
	KeyApps
	KeyAsterisk
	KeyPlus
	KeyAt
	KeyAx
	KeyBackslash
	KeyCalculator
	KeyCapital
	KeyColon
	KeyComma
	KeyConvert
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyEquals
	KeyGrave
	KeyKana
	KeyKanji
	KeyLAlt
	KeyLBracket
	KeyLControl
	KeyLShift
	KeyLWin
	KeyMail
	KeyMediaSelect
	KeyMediaStop
	KeyMinus
	KeyNumpadMultiply
	KeyMute
	KeyMyComputer
	KeyNavigateForward
	KeyNavigateBackward
	KeyNextTrack
	KeyNoConvert
	KeyNumpadComma
	KeyNumpadEnter
	KeyNumpadEquals
	KeyOem102
	KeyPeriod
	KeyPlayPause
	KeyPower
	KeyPrevTrack
	KeyRAlt
	KeyRBracket
	KeyRControl
	KeyRShift
	KeyRWin
	KeySemicolon
	KeySlash
	KeySleep
	KeyStop
	KeyNumpadSubtract
	KeySysrq
	KeyTab
	KeyUnderline
	KeyUnlabeled
	KeyVolumeDown
	KeyVolumeUp
	KeyWake
	KeyWebBack
	KeyWebFavorites
	KeyWebForward
	KeyWebHome
	KeyWebRefresh
	KeyWebSearch
	KeyWebStop
	KeyYen
	KeyCopy
	KeyPaste
	KeyCut

	// the number of KeyCode values. not a valid KeyCode
	numKeyCodes
)

// names in the same order as the KeyCode constants
var keyCodeNames = [numKeyCodes]string{
	"Key1",
	"Key2",
	"Key3",
	"Key4",
	"Key5",
	"Key6",
	"Key7",
	"Key8",
	"Key9",
	"Key0",
	"A",
	"B",
	"C",
	"D",
	"E",
	"F",
	"G",
	"H",
	"I",
	"J",
	"K",
	"L",
	"M",
	"N",
	"O",
	"P",
	"Q",
	"R",
	"S",
	"T",
	"U",
	"V",
	"W",
	"X",
	"Y",
	"Z",
	"Escape",
	"F1",
	"F2",
	"F3",
	"F4",
	"F5",
	"F6",
	"F7",
	"F8",
	"F9",
	"F10",
	"F11",
	"F12",
	"F13",
	"F14",
	"F15",
	"F16",
	"F17",
	"F18",
	"F19",
	"F20",
	"F21",
	"F22",
	"F23",
	"F24",
	"Snapshot",
	"Scroll",
	"Pause",
	"Insert",
	"Home",
	"Delete",
	"End",
	"PageDown",
	"PageUp",
	"Left",
	"Up",
	"Right",
	"Down",
	"Back",
	"Return",
	"Space",
	"Compose",
	"Caret",
	"Numlock",
	"Numpad0",
	"Numpad1",
	"Numpad2",
	"Numpad3",
	"Numpad4",
	"Numpad5",
	"Numpad6",
	"Numpad7",
	"Numpad8",
	"Numpad9",
	"AbntC1",
	"AbntC2",
	"NumpadAdd",
	"Apostrophe",
	"Apps",
	"Asterisk",
	"Plus",
	"At",
	"Ax",
	"Backslash",
	"Calculator",
	"Capital",
	"Colon",
	"Comma",
	"Convert",
	"NumpadDecimal",
	"NumpadDivide",
	"Equals",
	"Grave",
	"Kana",
	"Kanji",
	"LAlt",
	"LBracket",
	"LControl",
	"LShift",
	"LWin",
	"Mail",
	"MediaSelect",
	"MediaStop",
	"Minus",
	"NumpadMultiply",
	"Mute",
	"MyComputer",
	"NavigateForward",
	"NavigateBackward",
	"NextTrack",
	"NoConvert",
	"NumpadComma",
	"NumpadEnter",
	"NumpadEquals",
	"Oem102",
	"Period",
	"PlayPause",
	"Power",
	"PrevTrack",
	"RAlt",
	"RBracket",
	"RControl",
	"RShift",
	"RWin",
	"Semicolon",
	"Slash",
	"Sleep",
	"Stop",
	"NumpadSubtract",
	"Sysrq",
	"Tab",
	"Underline",
	"Unlabeled",
	"VolumeDown",
	"VolumeUp",
	"Wake",
	"WebBack",
	"WebFavorites",
	"WebForward",
	"WebHome",
	"WebRefresh",
	"WebSearch",
	"WebStop",
	"Yen",
	"Copy",
	"Paste",
	"Cut",
}

func (k KeyCode) String() string {
	if k < 0 || k >= numKeyCodes {
		return fmt.Sprintf("KeyCode(%d)", int(k))
	}
	return keyCodeNames[k]
}

// Valid returns true if the KeyCode is one of the listed values.
func (k KeyCode) Valid() bool {
	return k >= 0 && k < numKeyCodes
}

var keyCodeLookup map[string]KeyCode

func init() {
	keyCodeLookup = make(map[string]KeyCode, numKeyCodes)
	for k, n := range keyCodeNames {
		keyCodeLookup[strings.ToLower(n)] = KeyCode(k)
	}
}

// ParseKeyCode returns the KeyCode with the name returned by KeyCode.String().
// The match is not case sensitive.
func ParseKeyCode(name string) (KeyCode, bool) {
	k, ok := keyCodeLookup[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// AllKeyCodes returns every valid KeyCode in order.
func AllKeyCodes() []KeyCode {
	k := make([]KeyCode, numKeyCodes)
	for i := range k {
		k[i] = KeyCode(i)
	}
	return k
}
