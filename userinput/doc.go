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

// Package userinput tracks the state of the keyboard and mouse as seen by the
// game engine.
//
// The GUI implementation translates events from the windowing toolkit into
// calls to an Input instance: KeyEvent(), MouseButton(), MouseWheel(),
// MouseMotion(), TextInput() and LoseFocus(). The engine queries the state
// with the Key*() and Mouse*() functions.
//
// Every key and mouse button is in one of the KeyState values. NewFrame()
// must be called exactly once per frame, after the engine has had a chance to
// query the state. It collapses the transient states so that KeyPressed() and
// KeyReleased() (and the mouse equivalents) are true for exactly one frame.
//
// Key presses are also recorded in a fixed size buffer, along with any
// character the key produced. The buffer is read with GetKey() and
// GetCharKey() and is intended for text entry, not for polling.
//
// There is no locking. All calls must come from the same goroutine, normally
// the goroutine servicing the GUI.
package userinput
