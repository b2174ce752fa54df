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

package fonts

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/logger"
)

// FontID identifies one of the font slots.
type FontID int

// List of valid FontID values.
const (
	Regular FontID = iota
	Large

	NumFonts
)

func (id FontID) String() string {
	switch id {
	case Regular:
		return "regular"
	case Large:
		return "large"
	}
	return "unknown font"
}

// Default sizes of the fonts in points.
const (
	DefaultRegularSize = 12.0
	DefaultLargeSize   = 21.0
)

// DPI used for all faces.
const DPI = 72

// FontError is the pattern for errors returned by the package.
const FontError = "fonts: %v"

const logTag = "fonts"

// Text holds the faces for each font slot, the selected font and the colour
// of text.
type Text struct {
	fonts [NumFonts]*opentype.Font
	sizes [NumFonts]float64
	faces [NumFonts]font.Face

	current FontID
	colour  color.RGBA
}

// NewText is the preferred method of initialisation for the Text type. The
// regular font is selected and the colour is white.
func NewText() (*Text, error) {
	t := &Text{
		sizes:  [NumFonts]float64{DefaultRegularSize, DefaultLargeSize},
		colour: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}

	err := t.LoadFonts(goregular.TTF, gobold.TTF)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// LoadFonts replaces the fonts in both slots with the supplied font data. The
// sizes of the slots are unchanged.
func (t *Text) LoadFonts(regular []byte, large []byte) error {
	var fonts [NumFonts]*opentype.Font

	for id, data := range [NumFonts][]byte{regular, large} {
		f, err := opentype.Parse(data)
		if err != nil {
			return curated.Errorf(FontError, curated.Errorf("%s: %v", FontID(id), err))
		}
		fonts[id] = f
	}

	for id := range NumFonts {
		face, err := newFace(fonts[id], t.sizes[id])
		if err != nil {
			return err
		}
		if t.faces[id] != nil {
			_ = t.faces[id].Close()
		}
		t.fonts[id] = fonts[id]
		t.faces[id] = face
	}

	return nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, curated.Errorf(FontError, err)
	}
	return face, nil
}

// SetFont selects the font used by the metric and rasterisation functions.
// Unknown fonts are ignored.
func (t *Text) SetFont(id FontID) {
	if id < Regular || id >= NumFonts {
		logger.Logf(logger.Allow, logTag, "cannot select %s (%d)", id, id)
		return
	}
	t.current = id
}

// Font returns the selected font.
func (t *Text) Font() FontID {
	return t.current
}

// SetFontSize changes the size in points of the font slot.
func (t *Text) SetFontSize(id FontID, size float64) error {
	if id < Regular || id >= NumFonts {
		return curated.Errorf(FontError, curated.Errorf("no font slot %d", int(id)))
	}
	if size <= 0 {
		return curated.Errorf(FontError, curated.Errorf("illegal size %.1f for %s font", size, id))
	}

	face, err := newFace(t.fonts[id], size)
	if err != nil {
		return err
	}
	_ = t.faces[id].Close()
	t.faces[id] = face
	t.sizes[id] = size

	return nil
}

// SetTextSize changes the size in points of the selected font.
func (t *Text) SetTextSize(size float64) error {
	return t.SetFontSize(t.current, size)
}

// TextSize returns the size in points of the selected font.
func (t *Text) TextSize() float64 {
	return t.sizes[t.current]
}

// SetTextColour sets the colour of rasterised text.
func (t *Text) SetTextColour(c color.Color) {
	t.colour = color.RGBAModel.Convert(c).(color.RGBA)
}

// TextColour returns the colour of rasterised text. The colour is
// alpha-premultiplied.
func (t *Text) TextColour() color.RGBA {
	return t.colour
}

func (t *Text) face() font.Face {
	return t.faces[t.current]
}

// TextWidth returns the width of the string in pixels.
func (t *Text) TextWidth(s string) int {
	return font.MeasureString(t.face(), s).Ceil()
}

// CountedTextWidth returns the width in pixels of the first n characters of
// the string.
func (t *Text) CountedTextWidth(s string, n int) int {
	if n <= 0 {
		return 0
	}
	for i := range s {
		if n == 0 {
			s = s[:i]
			break // for loop
		}
		n--
	}
	return t.TextWidth(s)
}

// TextHeight returns the height in pixels of the inked area of the string.
func (t *Text) TextHeight(s string) int {
	b, _ := font.BoundString(t.face(), s)
	return (b.Max.Y - b.Min.Y).Ceil()
}

// CharWidth returns the advance of the character in pixels. Characters not in
// the font have a width of zero.
func (t *Text) CharWidth(r rune) int {
	adv, ok := t.face().GlyphAdvance(r)
	if !ok {
		return 0
	}
	return adv.Ceil()
}

// LineSize returns the recommended distance in pixels between consecutive
// baselines.
func (t *Text) LineSize() int {
	return t.face().Metrics().Height.Ceil()
}

// AboveBase returns the negative of the ascent of the font in pixels.
func (t *Text) AboveBase() int {
	return -t.face().Metrics().Ascent.Ceil()
}

// BelowBase returns the negative of the descent of the font in pixels.
func (t *Text) BelowBase() int {
	return -t.face().Metrics().Descent.Ceil()
}

// Rasterise the string in the selected font and colour. The image is rotated
// clockwise by the number of degrees about the draw position. The returned
// point is the position of the top left corner of the image relative to the
// draw position.
func (t *Text) Rasterise(s string, rotation float64) (*image.RGBA, image.Point) {
	face := t.face()
	ascent := face.Metrics().Ascent.Ceil()
	w := t.TextWidth(s)
	h := ascent + face.Metrics().Descent.Ceil()

	if s == "" || w == 0 {
		return image.NewRGBA(image.Rectangle{}), image.Point{}
	}

	upright := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  upright,
		Src:  image.NewUniform(t.colour),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	// the top of the upright image relative to the draw position
	oy := float64(t.TextHeight(s) - ascent)

	rotation = math.Mod(rotation, 360)
	if rotation == 0 {
		return upright, image.Pt(0, int(oy))
	}

	sin, cos := math.Sincos(rotation * math.Pi / 180)

	// corners of the rotated image
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}} {
		x := snap(cos*c[0] - sin*(c[1]+oy))
		y := snap(sin*c[0] + cos*(c[1]+oy))
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	minX = math.Floor(minX)
	minY = math.Floor(minY)

	rotated := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(maxX)-minX), int(math.Ceil(maxY)-minY)))

	s2d := f64.Aff3{
		cos, -sin, -sin*oy - minX,
		sin, cos, cos*oy - minY,
	}
	draw.ApproxBiLinear.Transform(rotated, s2d, upright, upright.Bounds(), draw.Over, nil)

	return rotated, image.Pt(int(minX), int(minY))
}

// snap removes floating point noise from the corner coordinates so that
// right angle rotations produce exact bounds.
func snap(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Close releases the faces.
func (t *Text) Close() error {
	for id := range NumFonts {
		if t.faces[id] != nil {
			if err := t.faces[id].Close(); err != nil {
				return curated.Errorf(FontError, err)
			}
			t.faces[id] = nil
		}
	}
	return nil
}
