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
	"image"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/gui/cursors"
	"github.com/wz2100/wzframe/logger"
)

// cursorTable maps every cursor ID to an SDL cursor.
type cursorTable struct {
	cursors [cursors.NumCursors]*sdl.Cursor

	// every cursor that has been created. system cursors are shared between
	// IDs but are only freed once
	created []*sdl.Cursor
}

// newCursorTable creates the SDL cursors. If atlas is nil then every cursor
// is shown as the system arrow.
func newCursorTable(atlas *cursors.Atlas) (*cursorTable, error) {
	tab := &cursorTable{}
	system := make(map[cursors.System]*sdl.Cursor)

	if atlas == nil {
		logger.Log(logger.Allow, "cursors", "no sprite sheet. using system cursors only")
	}

	for id := range cursors.NumCursors {
		if img := atlas.Image(id); img != nil {
			c, err := imageCursor(img)
			if err != nil {
				tab.destroy()
				return nil, curated.Errorf("cursors: %s: %v", id, err)
			}
			tab.cursors[id] = c
			tab.created = append(tab.created, c)
			continue // for loop
		}

		sys := cursors.SourceOf(id).System
		if sys == cursors.SystemNone {
			sys = cursors.SystemArrow
		}

		c, ok := system[sys]
		if !ok {
			c = sdl.CreateSystemCursor(systemCursor(sys))
			if c == nil {
				tab.destroy()
				return nil, curated.Errorf("cursors: %s: %v", sys, sdl.GetError())
			}
			system[sys] = c
			tab.created = append(tab.created, c)
		}
		tab.cursors[id] = c
	}

	return tab, nil
}

func systemCursor(sys cursors.System) sdl.SystemCursor {
	switch sys {
	case cursors.SystemSizeVertical:
		return sdl.SYSTEM_CURSOR_SIZENS
	case cursors.SystemSizeHorizontal:
		return sdl.SYSTEM_CURSOR_SIZEWE
	}
	return sdl.SYSTEM_CURSOR_ARROW
}

// imageCursor creates a colour cursor from the image. the hotspot is the
// centre of the image.
func imageCursor(img *image.RGBA) (*sdl.Cursor, error) {
	// SDL expects colours that are not alpha-premultiplied
	nrgba := image.NewNRGBA(image.Rect(0, 0, cursors.Size, cursors.Size))
	draw.Draw(nrgba, nrgba.Bounds(), img, img.Bounds().Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, cursors.Size, cursors.Size, 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	err = surface.Lock()
	if err != nil {
		return nil, err
	}

	pix := surface.Pixels()
	pitch := int(surface.Pitch)
	rowLen := cursors.Size * 4
	for y := range cursors.Size {
		copy(pix[y*pitch:y*pitch+rowLen], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+rowLen])
	}

	surface.Unlock()

	c := sdl.CreateColorCursor(surface, cursors.HotX, cursors.HotY)
	if c == nil {
		if err := sdl.GetError(); err != nil {
			return nil, err
		}
		return nil, curated.Errorf("cannot create colour cursor")
	}

	return c, nil
}

// get returns the SDL cursor for the ID. invalid IDs return the cursor for
// the arrow.
func (tab *cursorTable) get(id cursors.ID) *sdl.Cursor {
	if !id.Valid() {
		return tab.cursors[cursors.Arrow]
	}
	return tab.cursors[id]
}

// destroy frees the SDL cursors.
func (tab *cursorTable) destroy() {
	for _, c := range tab.created {
		sdl.FreeCursor(c)
	}
	tab.created = tab.created[:0]
	for i := range tab.cursors {
		tab.cursors[i] = nil
	}
}
