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

// Package sdlplatform implements the gui.Platform interface with SDL2 and an
// OpenGL 2.1 context.
//
// NewPlatform() creates the window and prepares the keyboard and mouse state,
// the cursors and the fonts. Run() then drives the game engine, one frame at
// a time: SDL events are serviced, the engine's MainLoop() is called and the
// input state is advanced to the next frame. Run() returns when the engine
// calls Quit(), when the window is closed or when the interrupt channel is
// signalled.
//
// SDL requires that all calls come from the main thread. The package calls
// runtime.LockOSThread() when it is initialised but the caller must make sure
// that NewPlatform() and Run() are called from the main goroutine.
package sdlplatform
