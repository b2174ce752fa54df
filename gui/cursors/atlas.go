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

package cursors

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/logger"
)

// AtlasPath is the location of the sprite sheet, relative to the game data
// directory.
const AtlasPath = "images/intfac5.png"

// Size of a cursor image in pixels. Cursor images are square.
const Size = 32

// The hotspot of an image cursor is the centre of the image.
const (
	HotX = Size / 2
	HotY = Size / 2
)

// AtlasError is the pattern for errors returned by LoadAtlas().
const AtlasError = "cursors: atlas: %v"

// Atlas holds the images clipped from the sprite sheet.
type Atlas struct {
	images [NumCursors]*image.RGBA
}

// LoadAtlas reads the sprite sheet, which must be a PNG file, and clips the
// image for every cursor that is not a system cursor.
func LoadAtlas(r io.Reader) (*Atlas, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, curated.Errorf(AtlasError, err)
	}

	a := &Atlas{}

	for id := range NumCursors {
		s := sources[id]
		if s.System != SystemNone {
			continue // for loop
		}

		clip := image.Rect(s.X, s.Y, s.X+Size, s.Y+Size).Add(src.Bounds().Min)
		if !clip.In(src.Bounds()) {
			return nil, curated.Errorf(AtlasError, curated.Errorf("%s cursor outside of sprite sheet (%v)", id, src.Bounds()))
		}

		img := image.NewRGBA(image.Rect(0, 0, Size, Size))
		draw.Draw(img, img.Bounds(), src, clip.Min, draw.Src)
		a.images[id] = img
	}

	logger.Logf(logger.Allow, "cursors", "clipped cursors from %v sprite sheet", src.Bounds().Size())

	return a, nil
}

// Image returns the image for the cursor. Returns nil for system cursors.
//
// The image is not copied and should not be altered.
func (a *Atlas) Image(id ID) *image.RGBA {
	if a == nil || !id.Valid() {
		return nil
	}
	return a.images[id]
}
