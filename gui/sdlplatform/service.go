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
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/wz2100/wzframe/logger"
	"github.com/wz2100/wzframe/userinput"
)

// service drains the SDL event queue and updates the input state. It also
// checks the interrupt channel.
func (plt *Platform) service() {
	select {
	case sig := <-plt.opts.Interrupt:
		logger.Logf(logger.Allow, "sdl", "interrupted by signal: %v", sig)
		plt.quit = true
		return
	default:
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			plt.quit = true

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_FOCUS_LOST:
				plt.input.LoseFocus()
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				plt.width = int(ev.Data1)
				plt.height = int(ev.Data2)
				resize(plt.width, plt.height)
			}

		case *sdl.KeyboardEvent:
			plt.keyboard(ev)

		case *sdl.TextInputEvent:
			// the text field is a fixed size array padded with NUL
			s := string(ev.Text[:])
			if i := strings.IndexByte(s, 0); i >= 0 {
				s = s[:i]
			}
			plt.input.TextInput(s)

		case *sdl.MouseMotionEvent:
			plt.input.MouseMotion(int(ev.X), int(ev.Y))

		case *sdl.MouseButtonEvent:
			b := mouseButton(ev.Button)
			if b == userinput.MouseBad {
				break // switch
			}
			plt.input.MouseButton(b, ev.Type == sdl.MOUSEBUTTONDOWN)

		case *sdl.MouseWheelEvent:
			y := ev.Y
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			if y > 0 {
				plt.input.MouseWheel(true)
			} else if y < 0 {
				plt.input.MouseWheel(false)
			}
		}
	}
}

func (plt *Platform) keyboard(ev *sdl.KeyboardEvent) {
	code := keyCode(ev.Keysym.Sym)

	switch ev.Type {
	case sdl.KEYDOWN:
		if code == userinput.KeyNone {
			// unmapped keys still break the pairing of the previous key
			// with any text input that follows
			plt.input.KeyEvent(userinput.KeyNone, true)
			return
		}
		if ev.Repeat == 0 {
			plt.input.KeyEvent(code, true)
		}
		plt.input.AddBuffer(code, 0, 1)

	case sdl.KEYUP:
		if code != userinput.KeyNone {
			plt.input.KeyEvent(code, false)
		}
	}
}
