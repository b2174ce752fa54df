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

// MouseButton identifies one of the mouse buttons tracked by Input. The
// wheel is treated as two buttons, one for each direction.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseLMB MouseButton = iota
	MouseMMB
	MouseRMB
	MouseWheelUp
	MouseWheelDown

	// MouseBad is returned by the GUI for buttons that are not tracked. It
	// is always ignored by Input
	MouseBad
)

// NumMouseButtons is the number of tracked mouse buttons.
const NumMouseButtons = int(MouseBad)

func (b MouseButton) String() string {
	switch b {
	case MouseLMB:
		return "left button"
	case MouseMMB:
		return "middle button"
	case MouseRMB:
		return "right button"
	case MouseWheelUp:
		return "wheel up"
	case MouseWheelDown:
		return "wheel down"
	}
	return "bad button"
}

func (b MouseButton) valid() bool {
	return b >= MouseLMB && b < MouseBad
}

// drags can only be started by the left and right buttons.
func (b MouseButton) canDrag() bool {
	return b == MouseLMB || b == MouseRMB
}
