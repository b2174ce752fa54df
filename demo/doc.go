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

// Package demo is a small game that exercises every part of the gui.Platform
// interface. It is run by the RUN mode of the wzframe command.
//
// Typed text is echoed on the screen. Escape quits, Backspace deletes the
// last character and Return clears the line. F1 switches between the regular
// and large fonts and F2 grabs or releases the mouse.
//
// The right mouse button cycles through the cursors, a double-click of the
// left mouse button hides the cursor and the middle button moves the pointer
// to the centre of the screen. The wheel changes the text size.
package demo
