// This file is part of wzframe.
//
// wzframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wzframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wzframe.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "fmt"

// KeyCode identifies a key on the keyboard, independent of the windowing
// toolkit in use.
type KeyCode int

// List of valid KeyCode values. The digit, letter, function and keypad digit
// ranges are contiguous.
const (
	KeyNone KeyCode = iota

	KeyEscape
	KeyBackspace
	KeyTab
	KeyReturn
	KeySpace
	KeyCapsLock
	KeyNumLock
	KeyScrollLock
	KeyPrintScreen
	KeyPause

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

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

	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyBackslash
	KeyComma
	KeyFullstop
	KeyForwardSlash

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

	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPPlus
	KeyKPMinus
	KeyKPStar
	KeyKPFullstop
	KeyKPBackslash
	KeyKPEnter

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyUpArrow
	KeyDownArrow
	KeyLeftArrow
	KeyRightArrow

	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta

	// NumKeyCodes is the number of KeyCode values, including KeyNone
	NumKeyCodes
)

var keyNames = [NumKeyCodes]string{
	KeyNone:         "None",
	KeyEscape:       "Escape",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyReturn:       "Return",
	KeySpace:        "Space",
	KeyCapsLock:     "CapsLock",
	KeyNumLock:      "Numlock",
	KeyScrollLock:   "ScrollLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyMinus:        "-",
	KeyEquals:       "=",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeySemicolon:    ";",
	KeyQuote:        "'",
	KeyBackquote:    "`",
	KeyBackslash:    "\\",
	KeyComma:        ",",
	KeyFullstop:     ".",
	KeyForwardSlash: "/",
	KeyKPPlus:       "Keypad +",
	KeyKPMinus:      "Keypad -",
	KeyKPStar:       "Keypad *",
	KeyKPFullstop:   "Keypad .",
	KeyKPBackslash:  "Keypad /",
	KeyKPEnter:      "Keypad Enter",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyUpArrow:      "Up",
	KeyDownArrow:    "Down",
	KeyLeftArrow:    "Left",
	KeyRightArrow:   "Right",
	KeyLeftCtrl:     "Left Ctrl",
	KeyRightCtrl:    "Right Ctrl",
	KeyLeftShift:    "Left Shift",
	KeyRightShift:   "Right Shift",
	KeyLeftAlt:      "Left Alt",
	KeyRightAlt:     "Right Alt",
	KeyLeftMeta:     "Left Meta",
	KeyRightMeta:    "Right Meta",
}

func init() {
	for i := range 10 {
		keyNames[Key0+KeyCode(i)] = string(rune('0' + i))
		keyNames[KeyKP0+KeyCode(i)] = fmt.Sprintf("Keypad %d", i)
	}
	for i := range 26 {
		keyNames[KeyA+KeyCode(i)] = string(rune('A' + i))
	}
	for i := range 12 {
		keyNames[KeyF1+KeyCode(i)] = fmt.Sprintf("F%d", i+1)
	}
}

// String returns the name of the key as it would be shown to the user.
// Unrecognised codes are shown as "???".
func (k KeyCode) String() string {
	if k < KeyNone || k >= NumKeyCodes {
		return "???"
	}
	return keyNames[k]
}

// Valid returns true if the KeyCode refers to a real key.
func (k KeyCode) Valid() bool {
	return k > KeyNone && k < NumKeyCodes
}
