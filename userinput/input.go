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

import (
	"time"
)

// Default values for the tunable parameters of Input.
const (
	DefaultDoubleClickInterval = 250 * time.Millisecond
	DefaultDragThreshold       = 5
	DefaultBufferSize          = 512
)

type buttonState struct {
	state KeyState

	// time of the last press that could be the first half of a double-click
	lastDown time.Duration
	primed   bool

	// a double-click that has already been released. the state remains
	// DoubleClick until the end of the frame
	dclickReleased bool
}

// Input is the state of the keyboard and mouse. It should be created with
// NewInput() and then Initialise() before use.
type Input struct {
	clock func() time.Duration

	keys  [NumKeyCodes]KeyState
	mouse [NumMouseButtons]buttonState

	mouseX int
	mouseY int

	// the button that started the most recent possible drag and the
	// position of the pointer at that time
	dragKey MouseButton
	dragX   int
	dragY   int

	dclickInterval time.Duration
	dragThreshold  int

	buffer *Ring

	// the character of the key last returned by GetKey()
	currentChar rune

	// the last entry in the buffer is waiting for its character
	pendingChar bool
}

// NewInput is the preferred method of initialisation for the Input type. The
// clock function is used to time double-clicks. If it is nil then the time
// since the call to NewInput() is used.
func NewInput(clock func() time.Duration) *Input {
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration {
			return time.Since(start)
		}
	}

	in := &Input{
		clock:          clock,
		dclickInterval: DefaultDoubleClickInterval,
		dragThreshold:  DefaultDragThreshold,
		buffer:         NewRing(DefaultBufferSize),
	}
	in.Initialise(0, 0)

	return in
}

// Initialise all keys and buttons to Up and empty the key buffer. The origin
// of drags is set to the centre of the screen.
func (in *Input) Initialise(screenWidth int, screenHeight int) {
	for i := range in.keys {
		in.keys[i] = Up
	}
	for i := range in.mouse {
		in.mouse[i] = buttonState{}
	}

	in.ClearBuffer()
	in.currentChar = 0

	in.dragKey = MouseLMB
	in.dragX = screenWidth / 2
	in.dragY = screenHeight / 2
}

// SetDoubleClickInterval sets the maximum time between two presses of a mouse
// button for them to count as a double-click.
func (in *Input) SetDoubleClickInterval(interval time.Duration) {
	in.dclickInterval = interval
}

// SetDragThreshold sets the distance in pixels, along either axis, that the
// pointer must move with a button held before a drag begins.
func (in *Input) SetDragThreshold(threshold int) {
	in.dragThreshold = max(threshold, 0)
}

// KeyEvent records a key going down or up. Any buffered key still waiting
// for a character will not receive one.
func (in *Input) KeyEvent(code KeyCode, down bool) {
	in.pendingChar = false

	if !code.Valid() {
		return
	}
	if down {
		in.keys[code] = in.keys[code].press()
	} else {
		in.keys[code] = in.keys[code].release()
	}
}

// MouseButton records a mouse button going down or up. The wheel
// pseudo-buttons are ignored. Use MouseWheel() for the wheel.
func (in *Input) MouseButton(button MouseButton, down bool) {
	if !button.valid() || button == MouseWheelUp || button == MouseWheelDown {
		return
	}

	b := &in.mouse[button]

	if !down {
		if b.state == DoubleClick {
			b.dclickReleased = true
		} else {
			b.state = b.state.release()
		}
		return
	}

	switch b.state {
	case Up, Released, PressRelease:
	default:
		return
	}

	now := in.clock()

	switch {
	case button == MouseMMB:
		b.state = Pressed
		b.primed = false
	case b.primed && now-b.lastDown < in.dclickInterval:
		// the next press will not be a double-click
		b.state = DoubleClick
		b.primed = false
		b.dclickReleased = false
	default:
		b.state = Pressed
		b.lastDown = now
		b.primed = true
	}

	if button.canDrag() {
		in.dragKey = button
		in.dragX = in.mouseX
		in.dragY = in.mouseY
	}
}

// MouseWheel records movement of the mouse wheel. Wheel movement is treated as
// a press and release in the same frame of the MouseWheelUp or MouseWheelDown
// pseudo-button.
func (in *Input) MouseWheel(up bool) {
	button := MouseWheelDown
	if up {
		button = MouseWheelUp
	}
	in.mouse[button].state = PressRelease
	in.mouse[button].lastDown = in.clock()
}

// MouseMotion records the position of the pointer and starts a drag if the
// pointer has moved far enough from where the drag button was pressed. Drags
// do not start while the middle button is held.
func (in *Input) MouseMotion(x int, y int) {
	in.mouseX = x
	in.mouseY = y

	if in.MouseDown(MouseMMB) {
		return
	}

	b := &in.mouse[in.dragKey]
	if b.state != Pressed && b.state != Down {
		return
	}

	if abs(in.dragX-x) > in.dragThreshold || abs(in.dragY-y) > in.dragThreshold {
		b.state = Drag
	}
}

// LoseFocus should be called when the window loses input focus. Every key and
// button that is not Up is Released and no button is waiting for the second
// click of a double-click.
func (in *Input) LoseFocus() {
	for i := range in.keys {
		if in.keys[i] != Up {
			in.keys[i] = Released
		}
	}
	for i := range in.mouse {
		b := &in.mouse[i]
		if b.state != Up {
			b.state = Released
			b.dclickReleased = false
		}

		// a click before the focus was lost can't be the first half of a
		// double-click
		b.primed = false
	}
	in.pendingChar = false
}

// NewFrame must be called once per frame after the state has been queried.
func (in *Input) NewFrame() {
	for i := range in.keys {
		in.keys[i] = in.keys[i].newFrame()
	}
	for i := range in.mouse {
		b := &in.mouse[i]
		if b.state == DoubleClick {
			if b.dclickReleased {
				b.state = Up
			} else {
				b.state = Down
			}
			b.dclickReleased = false
		} else {
			b.state = b.state.newFrame()
		}
	}
}

// KeyStateOf returns the current state of the key.
func (in *Input) KeyStateOf(code KeyCode) KeyState {
	if !code.Valid() {
		return Up
	}
	return in.keys[code]
}

// KeyDown returns true if the key is held.
func (in *Input) KeyDown(code KeyCode) bool {
	return in.KeyStateOf(code) != Up
}

// KeyPressed returns true if the key went down this frame.
func (in *Input) KeyPressed(code KeyCode) bool {
	s := in.KeyStateOf(code)
	return s == Pressed || s == PressRelease
}

// KeyReleased returns true if the key went up this frame.
func (in *Input) KeyReleased(code KeyCode) bool {
	s := in.KeyStateOf(code)
	return s == Released || s == PressRelease
}

// MouseStateOf returns the current state of the mouse button.
func (in *Input) MouseStateOf(button MouseButton) KeyState {
	if !button.valid() {
		return Up
	}
	return in.mouse[button].state
}

// MouseDown returns true if the mouse button is held.
func (in *Input) MouseDown(button MouseButton) bool {
	return in.MouseStateOf(button) != Up
}

// MousePressed returns true if the mouse button went down this frame.
func (in *Input) MousePressed(button MouseButton) bool {
	switch in.MouseStateOf(button) {
	case Pressed, DoubleClick, PressRelease:
		return true
	}
	return false
}

// MouseReleased returns true if the mouse button went up this frame.
func (in *Input) MouseReleased(button MouseButton) bool {
	switch in.MouseStateOf(button) {
	case Released, PressRelease:
		return true
	case DoubleClick:
		return in.mouse[button].dclickReleased
	}
	return false
}

// MouseDClicked returns true if the mouse button was double-clicked this
// frame.
func (in *Input) MouseDClicked(button MouseButton) bool {
	return in.MouseStateOf(button) == DoubleClick
}

// MouseDrag returns the position at which the drag started if the mouse
// button is being dragged.
func (in *Input) MouseDrag(button MouseButton) (int, int, bool) {
	if in.MouseStateOf(button) != Drag {
		return 0, 0, false
	}
	return in.dragX, in.dragY, true
}

// MouseX returns the horizontal position of the pointer.
func (in *Input) MouseX() int {
	return in.mouseX
}

// MouseY returns the vertical position of the pointer.
func (in *Input) MouseY() int {
	return in.mouseY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
