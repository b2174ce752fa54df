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

package sdlplatform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/wz2100/wzframe/userinput"
)

// keyCode translates an SDL key to a userinput.KeyCode. Keys that the game
// does not know about are translated to KeyNone.
func keyCode(key sdl.Keycode) userinput.KeyCode {
	switch {
	case key >= sdl.K_0 && key <= sdl.K_9:
		return userinput.Key0 + userinput.KeyCode(key-sdl.K_0)
	case key >= sdl.K_a && key <= sdl.K_z:
		return userinput.KeyA + userinput.KeyCode(key-sdl.K_a)
	case key >= sdl.K_F1 && key <= sdl.K_F12:
		return userinput.KeyF1 + userinput.KeyCode(key-sdl.K_F1)
	}

	switch key {
	case sdl.K_ESCAPE:
		return userinput.KeyEscape
	case sdl.K_BACKSPACE:
		return userinput.KeyBackspace
	case sdl.K_TAB:
		return userinput.KeyTab
	case sdl.K_RETURN:
		return userinput.KeyReturn
	case sdl.K_SPACE:
		return userinput.KeySpace
	case sdl.K_CAPSLOCK:
		return userinput.KeyCapsLock
	case sdl.K_NUMLOCKCLEAR:
		return userinput.KeyNumLock
	case sdl.K_SCROLLLOCK:
		return userinput.KeyScrollLock
	case sdl.K_PRINTSCREEN:
		return userinput.KeyPrintScreen
	case sdl.K_PAUSE:
		return userinput.KeyPause

	case sdl.K_MINUS:
		return userinput.KeyMinus
	case sdl.K_EQUALS:
		return userinput.KeyEquals
	case sdl.K_LEFTBRACKET:
		return userinput.KeyLeftBracket
	case sdl.K_RIGHTBRACKET:
		return userinput.KeyRightBracket
	case sdl.K_SEMICOLON:
		return userinput.KeySemicolon
	case sdl.K_QUOTE:
		return userinput.KeyQuote
	case sdl.K_BACKQUOTE:
		return userinput.KeyBackquote
	case sdl.K_BACKSLASH:
		return userinput.KeyBackslash
	case sdl.K_COMMA:
		return userinput.KeyComma
	case sdl.K_PERIOD:
		return userinput.KeyFullstop
	case sdl.K_SLASH:
		return userinput.KeyForwardSlash

	// keypad
	case sdl.K_KP_0:
		return userinput.KeyKP0
	case sdl.K_KP_1:
		return userinput.KeyKP1
	case sdl.K_KP_2:
		return userinput.KeyKP2
	case sdl.K_KP_3:
		return userinput.KeyKP3
	case sdl.K_KP_4:
		return userinput.KeyKP4
	case sdl.K_KP_5:
		return userinput.KeyKP5
	case sdl.K_KP_6:
		return userinput.KeyKP6
	case sdl.K_KP_7:
		return userinput.KeyKP7
	case sdl.K_KP_8:
		return userinput.KeyKP8
	case sdl.K_KP_9:
		return userinput.KeyKP9
	case sdl.K_KP_PLUS:
		return userinput.KeyKPPlus
	case sdl.K_KP_MINUS:
		return userinput.KeyKPMinus
	case sdl.K_KP_MULTIPLY:
		return userinput.KeyKPStar
	case sdl.K_KP_PERIOD:
		return userinput.KeyKPFullstop
	case sdl.K_KP_DIVIDE:
		return userinput.KeyKPBackslash
	case sdl.K_KP_ENTER:
		return userinput.KeyKPEnter

	// navigation
	case sdl.K_HOME:
		return userinput.KeyHome
	case sdl.K_END:
		return userinput.KeyEnd
	case sdl.K_PAGEUP:
		return userinput.KeyPageUp
	case sdl.K_PAGEDOWN:
		return userinput.KeyPageDown
	case sdl.K_INSERT:
		return userinput.KeyInsert
	case sdl.K_DELETE:
		return userinput.KeyDelete
	case sdl.K_UP:
		return userinput.KeyUpArrow
	case sdl.K_DOWN:
		return userinput.KeyDownArrow
	case sdl.K_LEFT:
		return userinput.KeyLeftArrow
	case sdl.K_RIGHT:
		return userinput.KeyRightArrow

	// modifiers
	case sdl.K_LCTRL:
		return userinput.KeyLeftCtrl
	case sdl.K_RCTRL:
		return userinput.KeyRightCtrl
	case sdl.K_LSHIFT:
		return userinput.KeyLeftShift
	case sdl.K_RSHIFT:
		return userinput.KeyRightShift
	case sdl.K_LALT:
		return userinput.KeyLeftAlt
	case sdl.K_RALT:
		return userinput.KeyRightAlt
	case sdl.K_LGUI:
		return userinput.KeyLeftMeta
	case sdl.K_RGUI:
		return userinput.KeyRightMeta
	}

	return userinput.KeyNone
}

// mouseButton translates an SDL mouse button to a userinput.MouseButton. The
// extra buttons found on some mice are treated as the middle button.
func mouseButton(button uint8) userinput.MouseButton {
	switch button {
	case sdl.BUTTON_LEFT:
		return userinput.MouseLMB
	case sdl.BUTTON_MIDDLE, sdl.BUTTON_X1, sdl.BUTTON_X2:
		return userinput.MouseMMB
	case sdl.BUTTON_RIGHT:
		return userinput.MouseRMB
	}
	return userinput.MouseBad
}
