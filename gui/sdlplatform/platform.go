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
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/logger"
	"github.com/wz2100/wzframe/version"
)

const windowTitle = "Warzone 2100"

// SDLError is the pattern for errors from the SDL and GL libraries.
const SDLError = "sdl: %v"

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// list of swap interval values. with the exception of syncTicker all of these
// are values defined and expected by the sdl.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
	syncTicker              = 2
)

// window is the SDL window and its OpenGL context.
type window struct {
	win       *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// used to limit the frame rate if the driver refuses vsync
	syncTicker *time.Ticker
}

type glAttr struct {
	attr  sdl.GLattr
	value int
}

// newWindow initialises SDL and creates a window of fixed size. If fsaa is
// greater than zero a multisampled framebuffer with that many samples is
// requested.
func newWindow(width int, height int, fsaa int, vsync bool) (*window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	attrs := []glAttr{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 2},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_ALPHA_SIZE, 8},
	}
	if fsaa > 0 {
		attrs = append(attrs,
			glAttr{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttr{sdl.GL_MULTISAMPLESAMPLES, fsaa},
		)
	}

	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(SDLError, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.GetVersion(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	wnd := &window{}

	wnd.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", wnd.mode.RefreshRate)

	ver, rev, _ := version.Version()
	logger.Logf(logger.Allow, "sdl", "%s %s (%s)", version.ApplicationName, ver, rev)

	wnd.win, err = sdl.CreateWindow(fmt.Sprintf("%s (%s %s)", windowTitle, version.ApplicationName, ver),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}
	wnd.setSize(width, height)

	wnd.glContext, err = wnd.win.GLCreateContext()
	if err != nil {
		_ = wnd.destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	err = wnd.win.GLMakeCurrent(wnd.glContext)
	if err != nil {
		_ = wnd.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	err = gl.Init()
	if err != nil {
		_ = wnd.destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	logger.Logf(logger.Allow, "gl", "version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "gl", "renderer %s", gl.GoStr(gl.GetString(gl.RENDERER)))

	if fsaa > 0 {
		samples, err := sdl.GLGetAttribute(sdl.GL_MULTISAMPLESAMPLES)
		if err == nil {
			logger.Logf(logger.Allow, "gl", "multisampling with %d samples", samples)
		}
	}

	if vsync {
		wnd.setSwapInterval(syncWithVerticalRetrace)
	} else {
		wnd.setSwapInterval(syncImmediateUpdate)
	}

	return wnd, nil
}

// setSize changes the size of the window. the window can't be resized by the
// user.
func (wnd *window) setSize(width int, height int) {
	wnd.win.SetMinimumSize(int32(width), int32(height))
	wnd.win.SetMaximumSize(int32(width), int32(height))
	wnd.win.SetSize(int32(width), int32(height))
}

func (wnd *window) setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err == nil || i != syncWithVerticalRetrace {
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)
		}
		return
	}

	// the driver refused vsync so we limit the frame rate to the refresh
	// rate of the display instead
	logger.Logf(logger.Allow, "sdl", "vsync not available: %v", err)

	if wnd.mode.RefreshRate <= 0 {
		return
	}

	d := time.Second / time.Duration(wnd.mode.RefreshRate)
	wnd.syncTicker = time.NewTicker(d)
	logger.Logf(logger.Allow, "sdl", "limiting frames with %v ticker (sync mode %d)", d, syncTicker)

	_ = sdl.GLSetSwapInterval(syncImmediateUpdate)
}

// swap the back buffer to the screen.
func (wnd *window) swap() {
	if wnd.syncTicker != nil {
		<-wnd.syncTicker.C
	}
	wnd.win.GLSwap()
}

// destroy cleans up the resources.
func (wnd *window) destroy() error {
	if wnd.syncTicker != nil {
		wnd.syncTicker.Stop()
		wnd.syncTicker = nil
	}

	if wnd.glContext != nil {
		sdl.GLDeleteContext(wnd.glContext)
		wnd.glContext = nil
	}

	if wnd.win != nil {
		err := wnd.win.Destroy()
		if err != nil {
			return curated.Errorf(SDLError, err)
		}
		wnd.win = nil
	}
	sdl.Quit()

	return nil
}
