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

// KeyState is the state of a single key or mouse button.
type KeyState int

// List of valid KeyState values.
const (
	// the key is not being held
	Up KeyState = iota

	// the key went down this frame
	Pressed

	// the key has been held since before this frame
	Down

	// the key went up this frame
	Released

	// the key went down and up during this frame
	PressRelease

	// mouse button pressed twice within the double-click interval
	DoubleClick

	// mouse button held and the pointer moved beyond the drag threshold
	Drag
)

func (s KeyState) String() string {
	switch s {
	case Up:
		return "up"
	case Pressed:
		return "pressed"
	case Down:
		return "down"
	case Released:
		return "released"
	case PressRelease:
		return "press-release"
	case DoubleClick:
		return "double-click"
	case Drag:
		return "drag"
	}
	return "unknown"
}

// press moves the state to Pressed if the key is currently up or on its way
// up. a key that is already down is unaffected.
func (s KeyState) press() KeyState {
	switch s {
	case Up, Released, PressRelease:
		return Pressed
	}
	return s
}

// release moves the state towards Up.
func (s KeyState) release() KeyState {
	switch s {
	case Pressed:
		return PressRelease
	case Down, Drag, DoubleClick:
		return Released
	}
	return s
}

// newFrame collapses the transient states.
func (s KeyState) newFrame() KeyState {
	switch s {
	case Pressed:
		return Down
	case Released, PressRelease:
		return Up
	}
	return s
}
