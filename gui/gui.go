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

// Package gui defines how the game engine and the GUI implementation talk to
// each other. The engine implements the Game interface. The GUI
// implementation, for example the sdlplatform package, implements Platform
// and drives the engine with Run().
package gui

import (
	"time"

	"github.com/wz2100/wzframe/gui/cursors"
	"github.com/wz2100/wzframe/gui/fonts"
	"github.com/wz2100/wzframe/userinput"
)

// Game is implemented by the game engine.
type Game interface {
	// FinalInitialisation is called once, after the window has been created
	// and before the first call to MainLoop()
	FinalInitialisation(Platform) error

	// MainLoop is called once per frame. The input state seen through
	// Platform.Input() is that of the current frame. The frame should be
	// presented with Platform.ScreenFlip()
	MainLoop() error
}

// Platform is implemented by the GUI and is the only way the game engine
// reaches the window, the mouse and the keyboard.
//
// All functions must be called from the same goroutine as MainLoop().
type Platform interface {
	// Quit ends the main loop after the current frame
	Quit()

	// ScreenFlip presents the frame that has been drawn. The new back buffer
	// is cleared
	ScreenFlip()

	// Ticks returns the time since the platform was created, to millisecond
	// precision
	Ticks() time.Duration

	// ScreenSize returns the width and height of the drawable area
	ScreenSize() (int, int)

	// SetCursor changes the mouse cursor. The cursor is remembered while the
	// mouse is hidden
	SetCursor(cursors.ID)

	// ShowMouse shows or hides the mouse cursor. When the cursor is shown
	// again it is the last cursor set with SetCursor()
	ShowMouse(visible bool)

	// GrabMouse confines the mouse to the window until ReleaseMouse()
	GrabMouse()
	ReleaseMouse()

	// ActiveWindow returns true if the mouse is over the window
	ActiveWindow() bool

	// SetMousePos moves the mouse pointer. The pointer is not moved if mouse
	// warping has been disabled by the user
	SetMousePos(x int, y int)

	// Input returns the keyboard and mouse state
	Input() *userinput.Input

	// Text returns the text metrics for the selected font
	Text() *fonts.Text

	// DrawText draws the string with the selected font and colour. The
	// position is the top left of the text
	DrawText(s string, x int, y int)

	// DrawTextRotated is like DrawText but rotates the text clockwise by the
	// number of degrees about the position
	DrawTextRotated(s string, x int, y int, rotation float64)
}
