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

// Package cursors describes the mouse cursors used by the game. Most cursors
// are 32x32 pixel images clipped from a sprite sheet. The remainder are
// placeholders that are shown with one of the system cursors.
//
// The package does not create cursors for any windowing toolkit. It prepares
// the images from the sprite sheet with LoadAtlas() and describes where each
// cursor comes from with SourceOf(). Creating the cursor resources is left to
// the GUI implementation.
package cursors
