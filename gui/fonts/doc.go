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

// Package fonts provides text metrics and text rasterisation for the game.
//
// There are two font slots, Regular and Large. By default these are the Go
// fonts (golang.org/x/image/font/gofont) at 12pt and 21pt, the large font in
// bold. Other TrueType or OpenType fonts can be loaded with LoadFonts().
//
// Metrics are in pixels. Fonts are rendered at 72 DPI so a point is a pixel.
//
// Rasterise() produces an RGBA image of a string, optionally rotated, which
// the GUI implementation can draw to the screen. Rotation is clockwise in
// degrees about the draw position. The draw position is at the top left of
// the text, with the baseline at TextHeight() below the draw position.
//
// Licencing
//
// The Go fonts are licenced under the same open source licence as the Go
// project (BSD 3-clause).
package fonts
