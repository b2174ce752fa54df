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
	"fmt"
	"image"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/wz2100/wzframe/logger"
)

// the texture coordinates used by the renderer are in units of a 256x256
// texture page
const texturePageSize = 256

// resize sets up the viewport and matrices for a screen of the given size.
// the origin is the top left of the screen.
func resize(width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, 1, -1)

	gl.MatrixMode(gl.TEXTURE)
	gl.LoadIdentity()
	gl.Scalef(1.0/texturePageSize, 1.0/texturePageSize, 1.0)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.CullFace(gl.FRONT)
	gl.Enable(gl.CULL_FACE)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
}

// clearScreen clears the back buffer.
func clearScreen() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// drawImage draws the alpha-premultiplied image with the top left corner at
// x and y. screenHeight is needed because window coordinates start from the
// bottom of the screen.
func drawImage(img *image.RGBA, x int, y int, screenHeight int) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	gl.PushAttrib(gl.ENABLE_BIT | gl.COLOR_BUFFER_BIT | gl.PIXEL_MODE_BIT)
	defer gl.PopAttrib()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))

	// the first row of the image is drawn at the raster position and
	// subsequent rows are drawn down the screen
	gl.PixelZoom(1, -1)
	gl.WindowPos2i(int32(x), int32(screenHeight-y))
	gl.DrawPixels(int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}

// the maximum number of errors to report in one call to reportGLErrors().
// glGetError() can return errors forever if the context has been lost
const maxGLErrors = 10

// reportGLErrors logs any outstanding GL errors.
func reportGLErrors() {
	for range maxGLErrors {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			return
		}
		logger.Logf(logger.Allow, "gl", "error: %s", glErrorString(e))
	}
}

func glErrorString(e uint32) string {
	switch e {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.STACK_OVERFLOW:
		return "stack overflow"
	case gl.STACK_UNDERFLOW:
		return "stack underflow"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	}
	return fmt.Sprintf("unknown error %#x", e)
}
