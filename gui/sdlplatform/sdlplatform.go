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
	"os"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/gui"
	"github.com/wz2100/wzframe/gui/cursors"
	"github.com/wz2100/wzframe/gui/fonts"
	"github.com/wz2100/wzframe/logger"
	"github.com/wz2100/wzframe/userinput"
)

// Options for NewPlatform().
type Options struct {
	// directory containing the game data. if empty then the directory in the
	// framework.datadir preference is used. if that is also empty then the
	// cursor sprite sheet is not loaded and the system cursors are used
	// instead
	DataDir string

	// path to the preferences file. if empty the file is in the resources
	// directory
	PrefsFile string

	// the main loop ends when a value is received on the channel. the channel
	// can be nil
	Interrupt <-chan os.Signal
}

// Platform implements the gui.Platform interface.
type Platform struct {
	opts Options

	wnd   *window
	prefs *preferences

	input *userinput.Input
	text  *fonts.Text

	cursors    *cursorTable
	lastCursor cursors.ID

	width  int
	height int

	quit bool
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. Startup failures are returned as curated errors.
func NewPlatform(opts Options) (*Platform, error) {
	plt := &Platform{
		opts:       opts,
		lastCursor: cursors.Arrow,
	}

	var err error

	plt.input = userinput.NewInput(plt.Ticks)

	plt.text, err = fonts.NewText()
	if err != nil {
		return nil, err
	}

	plt.prefs, err = newPreferences(opts.PrefsFile, plt.input, plt.text)
	if err != nil {
		_ = plt.text.Close()
		return nil, err
	}

	plt.width = plt.prefs.width
	plt.height = plt.prefs.height

	plt.wnd, err = newWindow(plt.width, plt.height, plt.prefs.fsaa.Get().(int), plt.prefs.vsync.Get().(bool))
	if err != nil {
		_ = plt.text.Close()
		return nil, err
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = plt.prefs.dataDir.Get().(string)
	}

	atlas, err := loadAtlas(dataDir)
	if err != nil {
		_ = plt.Destroy()
		return nil, err
	}

	plt.cursors, err = newCursorTable(atlas)
	if err != nil {
		_ = plt.Destroy()
		return nil, err
	}
	plt.SetCursor(cursors.Arrow)

	resize(plt.width, plt.height)
	plt.input.Initialise(plt.width, plt.height)

	sdl.StartTextInput()

	return plt, nil
}

// loadAtlas reads the cursor sprite sheet from the data directory. returns
// nil if no data directory has been specified.
func loadAtlas(dataDir string) (*cursors.Atlas, error) {
	if dataDir == "" {
		return nil, nil
	}

	f, err := os.Open(filepath.Join(dataDir, filepath.FromSlash(cursors.AtlasPath)))
	if err != nil {
		return nil, curated.Errorf(cursors.AtlasError, err)
	}
	defer f.Close()

	return cursors.LoadAtlas(f)
}

// Destroy releases all resources. It should be called after Run() has
// returned.
func (plt *Platform) Destroy() error {
	if plt.cursors != nil {
		plt.cursors.destroy()
		plt.cursors = nil
	}

	if plt.text != nil {
		if err := plt.text.Close(); err != nil {
			logger.Logf(logger.Allow, "fonts", "%v", err)
		}
		plt.text = nil
	}

	if plt.wnd != nil {
		sdl.StopTextInput()
		err := plt.wnd.destroy()
		plt.wnd = nil
		if err != nil {
			return err
		}
	}

	return nil
}

// Run the game until Quit() is called or the window is closed.
func (plt *Platform) Run(game gui.Game) error {
	err := game.FinalInitialisation(plt)
	if err != nil {
		return curated.Errorf("final initialisation: %v", err)
	}

	for !plt.quit {
		plt.service()
		if plt.quit {
			break // for loop
		}

		err = game.MainLoop()
		if err != nil {
			return err
		}

		plt.input.NewFrame()
		reportGLErrors()
	}

	return nil
}

// Quit implements the gui.Platform interface.
func (plt *Platform) Quit() {
	plt.quit = true
}

// ScreenFlip implements the gui.Platform interface.
func (plt *Platform) ScreenFlip() {
	plt.wnd.swap()
	clearScreen()
}

// Ticks implements the gui.Platform interface.
func (plt *Platform) Ticks() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

// ScreenSize implements the gui.Platform interface.
func (plt *Platform) ScreenSize() (int, int) {
	return plt.width, plt.height
}

// SetCursor implements the gui.Platform interface.
func (plt *Platform) SetCursor(id cursors.ID) {
	sdl.SetCursor(plt.cursors.get(id))
	plt.lastCursor = id
}

// ShowMouse implements the gui.Platform interface.
func (plt *Platform) ShowMouse(visible bool) {
	if !visible {
		_, _ = sdl.ShowCursor(sdl.DISABLE)
		return
	}
	_, _ = sdl.ShowCursor(sdl.ENABLE)
	sdl.SetCursor(plt.cursors.get(plt.lastCursor))
}

// GrabMouse implements the gui.Platform interface.
func (plt *Platform) GrabMouse() {
	plt.wnd.win.SetGrab(true)
}

// ReleaseMouse implements the gui.Platform interface.
func (plt *Platform) ReleaseMouse() {
	plt.wnd.win.SetGrab(false)
}

// ActiveWindow implements the gui.Platform interface.
func (plt *Platform) ActiveWindow() bool {
	return plt.wnd.win.GetFlags()&sdl.WINDOW_MOUSE_FOCUS == sdl.WINDOW_MOUSE_FOCUS
}

// SetMousePos implements the gui.Platform interface.
func (plt *Platform) SetMousePos(x int, y int) {
	if plt.prefs.noMouseWarp.Get().(bool) {
		return
	}
	plt.wnd.win.WarpMouseInWindow(int32(x), int32(y))
}

// Input implements the gui.Platform interface.
func (plt *Platform) Input() *userinput.Input {
	return plt.input
}

// Text implements the gui.Platform interface.
func (plt *Platform) Text() *fonts.Text {
	return plt.text
}

// DrawText implements the gui.Platform interface.
func (plt *Platform) DrawText(s string, x int, y int) {
	plt.DrawTextRotated(s, x, y, 0)
}

// DrawTextRotated implements the gui.Platform interface.
func (plt *Platform) DrawTextRotated(s string, x int, y int, rotation float64) {
	img, offset := plt.text.Rasterise(s, rotation)
	drawImage(img, x+offset.X, y+offset.Y, plt.height)
}
