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

package fonts_test

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/gui/fonts"
	"github.com/wz2100/wzframe/test"
)

func newText(t *testing.T) *fonts.Text {
	t.Helper()
	txt, err := fonts.NewText()
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		test.ExpectSuccess(t, txt.Close())
	})
	return txt
}

func TestMetrics(t *testing.T) {
	txt := newText(t)

	test.ExpectEquality(t, txt.Font(), fonts.Regular)
	test.ExpectEquality(t, txt.TextSize(), fonts.DefaultRegularSize)

	test.ExpectEquality(t, txt.TextWidth(""), 0)
	test.ExpectEquality(t, txt.TextHeight(""), 0)

	w := txt.TextWidth("hello world")
	test.ExpectSuccess(t, w > 0)

	// sum of the character advances. allow one pixel of rounding for each
	// character
	var sum int
	for _, r := range "hello" {
		sum += txt.CharWidth(r)
	}
	test.ExpectApproximate(t, txt.TextWidth("hello"), sum, 5)

	test.ExpectSuccess(t, txt.LineSize() > 0)
	test.ExpectSuccess(t, txt.AboveBase() < 0)
	test.ExpectSuccess(t, txt.BelowBase() < 0)

	// the inked height of lower case letters without ascenders is less than
	// the height of a capital
	test.ExpectSuccess(t, txt.TextHeight("ace") < txt.TextHeight("ACE"))
	test.ExpectSuccess(t, txt.TextHeight("ACE") <= -txt.AboveBase())
}

func TestCountedTextWidth(t *testing.T) {
	txt := newText(t)

	test.ExpectEquality(t, txt.CountedTextWidth("hello", 2), txt.TextWidth("he"))
	test.ExpectEquality(t, txt.CountedTextWidth("hello", 5), txt.TextWidth("hello"))
	test.ExpectEquality(t, txt.CountedTextWidth("hello", 10), txt.TextWidth("hello"))
	test.ExpectEquality(t, txt.CountedTextWidth("hello", 0), 0)

	// characters not bytes
	test.ExpectEquality(t, txt.CountedTextWidth("éa", 1), txt.TextWidth("é"))
}

func TestLargeFont(t *testing.T) {
	txt := newText(t)

	regular := txt.TextWidth("Warzone")
	regularLine := txt.LineSize()

	txt.SetFont(fonts.Large)
	test.ExpectEquality(t, txt.Font(), fonts.Large)
	test.ExpectEquality(t, txt.TextSize(), fonts.DefaultLargeSize)
	test.ExpectSuccess(t, txt.TextWidth("Warzone") > regular)
	test.ExpectSuccess(t, txt.LineSize() > regularLine)

	// unknown fonts are ignored
	txt.SetFont(fonts.NumFonts)
	test.ExpectEquality(t, txt.Font(), fonts.Large)
}

func TestTextSize(t *testing.T) {
	txt := newText(t)

	w := txt.TextWidth("Warzone")
	test.DemandSuccess(t, txt.SetTextSize(24))
	test.ExpectEquality(t, txt.TextSize(), 24.0)
	test.ExpectSuccess(t, txt.TextWidth("Warzone") > w)

	// the large font is unaffected
	txt.SetFont(fonts.Large)
	test.ExpectEquality(t, txt.TextSize(), fonts.DefaultLargeSize)

	err := txt.SetTextSize(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fonts.FontError))
	test.ExpectEquality(t, txt.TextSize(), fonts.DefaultLargeSize)

	test.ExpectFailure(t, txt.SetFontSize(fonts.NumFonts, 10))
}

func TestLoadFonts(t *testing.T) {
	txt := newText(t)

	// gomono is a fixed width font
	test.DemandSuccess(t, txt.LoadFonts(gomono.TTF, gomono.TTF))
	test.ExpectEquality(t, txt.CharWidth('i'), txt.CharWidth('W'))
	test.ExpectEquality(t, txt.TextSize(), fonts.DefaultRegularSize)

	err := txt.LoadFonts([]byte("not a font"), gomono.TTF)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fonts.FontError))

	// fonts are unchanged after a failure
	test.ExpectEquality(t, txt.CharWidth('i'), txt.CharWidth('W'))
}

func TestTextColour(t *testing.T) {
	txt := newText(t)
	test.ExpectEquality(t, txt.TextColour(), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	// colours are stored premultiplied
	txt.SetTextColour(color.NRGBA{R: 0xff, A: 0x80})
	test.ExpectEquality(t, txt.TextColour(), color.RGBA{R: 0x80, A: 0x80})
}

// inked returns the number of pixels that are not transparent.
func inked(img *image.RGBA) int {
	var n int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRasterise(t *testing.T) {
	txt := newText(t)
	txt.SetTextColour(color.RGBA{R: 0xff, A: 0xff})

	img, pt := txt.Rasterise("Hello", 0)
	test.ExpectEquality(t, img.Bounds().Dx(), txt.TextWidth("Hello"))
	test.ExpectEquality(t, img.Bounds().Dy(), -txt.AboveBase()-txt.BelowBase())
	test.ExpectEquality(t, pt.X, 0)
	test.ExpectEquality(t, pt.Y, txt.TextHeight("Hello")+txt.AboveBase())
	test.ExpectSuccess(t, inked(img) > 0)

	// every inked pixel is red
	for i := 0; i < len(img.Pix); i += 4 {
		test.ExpectEquality(t, img.Pix[i+1], uint8(0))
		test.ExpectEquality(t, img.Pix[i+2], uint8(0))
		if img.Pix[i+3] > 0 {
			test.ExpectEquality(t, img.Pix[i], img.Pix[i+3])
		}
	}

	empty, pt := txt.Rasterise("", 45)
	test.ExpectEquality(t, empty.Bounds().Empty(), true)
	test.ExpectEquality(t, pt, image.Point{})
}

func TestRasteriseRotated(t *testing.T) {
	txt := newText(t)

	upright, upt := txt.Rasterise("Hello", 0)
	w := upright.Bounds().Dx()
	h := upright.Bounds().Dy()

	// a full rotation is the same as no rotation
	img, pt := txt.Rasterise("Hello", 360)
	test.ExpectEquality(t, img.Bounds(), upright.Bounds())
	test.ExpectEquality(t, pt, upt)

	// quarter turn clockwise. the text runs down the screen from the draw
	// position and the top of the text faces right
	img, pt = txt.Rasterise("Hello", 90)
	test.ExpectApproximate(t, img.Bounds().Dx(), h, 1)
	test.ExpectApproximate(t, img.Bounds().Dy(), w, 1)
	test.ExpectApproximate(t, pt.X, -(upt.Y + h), 1)
	test.ExpectApproximate(t, pt.Y, 0, 1)
	test.ExpectSuccess(t, inked(img) > 0)

	// half turn. the text runs right to left from the draw position
	img, pt = txt.Rasterise("Hello", 180)
	test.ExpectApproximate(t, img.Bounds().Dx(), w, 1)
	test.ExpectApproximate(t, img.Bounds().Dy(), h, 1)
	test.ExpectApproximate(t, pt.X, -w, 1)
	test.ExpectApproximate(t, pt.Y, -(upt.Y + h), 1)

	// diagonal rotations produce a larger image
	img, _ = txt.Rasterise("Hello", 45)
	test.ExpectSuccess(t, img.Bounds().Dx() > h)
	test.ExpectSuccess(t, img.Bounds().Dy() > h)
	test.ExpectSuccess(t, inked(img) > 0)
}
