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

package demo_test

import (
	"testing"
	"time"

	"github.com/wz2100/wzframe/demo"
	"github.com/wz2100/wzframe/gui/cursors"
	"github.com/wz2100/wzframe/gui/fonts"
	"github.com/wz2100/wzframe/test"
	"github.com/wz2100/wzframe/userinput"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// mockPlatform implements the gui.Platform interface without a window.
type mockPlatform struct {
	in  *userinput.Input
	txt *fonts.Text

	now time.Duration

	quit    bool
	flips   int
	cursor  cursors.ID
	visible bool
	grabbed bool

	warped bool
	warpX  int
	warpY  int

	drawn []string
}

func newMockPlatform(t *testing.T) *mockPlatform {
	t.Helper()

	plt := &mockPlatform{
		visible: true,
	}
	plt.in = userinput.NewInput(func() time.Duration { return plt.now })
	plt.in.Initialise(screenWidth, screenHeight)

	var err error
	plt.txt, err = fonts.NewText()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = plt.txt.Close() })

	return plt
}

func (plt *mockPlatform) Quit() { plt.quit = true }
func (plt *mockPlatform) ScreenFlip() { plt.flips++ }
func (plt *mockPlatform) Ticks() time.Duration { return plt.now }
func (plt *mockPlatform) ScreenSize() (int, int) { return screenWidth, screenHeight }
func (plt *mockPlatform) SetCursor(id cursors.ID) { plt.cursor = id }
func (plt *mockPlatform) ShowMouse(visible bool) { plt.visible = visible }
func (plt *mockPlatform) GrabMouse() { plt.grabbed = true }
func (plt *mockPlatform) ReleaseMouse() { plt.grabbed = false }
func (plt *mockPlatform) ActiveWindow() bool { return true }
func (plt *mockPlatform) Input() *userinput.Input { return plt.in }
func (plt *mockPlatform) Text() *fonts.Text { return plt.txt }
func (plt *mockPlatform) DrawText(s string, x, y int) { plt.drawn = append(plt.drawn, s) }

func (plt *mockPlatform) SetMousePos(x int, y int) {
	plt.warped = true
	plt.warpX = x
	plt.warpY = y
}

func (plt *mockPlatform) DrawTextRotated(s string, x int, y int, rotation float64) {
	plt.drawn = append(plt.drawn, s)
}

// frame runs one iteration of the main loop in the same way as the sdl
// platform.
func (plt *mockPlatform) frame(t *testing.T, g *demo.Game) {
	t.Helper()
	plt.drawn = plt.drawn[:0]
	test.DemandSuccess(t, g.MainLoop())
	plt.in.NewFrame()
	plt.now += 20 * time.Millisecond
}

// typeKey simulates the events for a key that produces a character.
func (plt *mockPlatform) typeKey(code userinput.KeyCode, text string) {
	plt.in.KeyEvent(code, true)
	plt.in.AddBuffer(code, 0, 1)
	if text != "" {
		plt.in.TextInput(text)
	}
	plt.in.KeyEvent(code, false)
}

func setup(t *testing.T) (*mockPlatform, *demo.Game) {
	t.Helper()
	plt := newMockPlatform(t)
	g := demo.NewGame()
	test.DemandSuccess(t, g.FinalInitialisation(plt))
	return plt, g
}

func TestFinalInitialisation(t *testing.T) {
	plt, g := setup(t)
	test.ExpectEquality(t, plt.cursor, cursors.Arrow)
	test.ExpectEquality(t, g.Cursor(), cursors.Arrow)
	test.ExpectEquality(t, plt.txt.TextColour().A, uint8(255))
}

func TestMainLoopFlips(t *testing.T) {
	plt, g := setup(t)
	plt.frame(t, g)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.flips, 2)
	test.ExpectEquality(t, plt.quit, false)
	test.ExpectEquality(t, plt.drawn[0], "> _")
}

func TestTyping(t *testing.T) {
	plt, g := setup(t)

	plt.typeKey(userinput.KeyH, "h")
	plt.typeKey(userinput.KeyI, "i")
	plt.frame(t, g)
	test.ExpectEquality(t, g.Line(), "hi")
	test.ExpectEquality(t, plt.drawn[0], "> hi_")

	plt.typeKey(userinput.KeyBackspace, "")
	plt.frame(t, g)
	test.ExpectEquality(t, g.Line(), "h")

	// characters from an input method arrive without a key
	plt.in.TextInput("é")
	plt.frame(t, g)
	test.ExpectEquality(t, g.Line(), "hé")

	plt.typeKey(userinput.KeyReturn, "\r")
	plt.frame(t, g)
	test.ExpectEquality(t, g.Line(), "")
}

func TestLineLength(t *testing.T) {
	plt, g := setup(t)
	for range demo.MaxLine + 10 {
		plt.typeKey(userinput.KeyX, "x")
	}
	plt.frame(t, g)
	test.ExpectEquality(t, len(g.Line()), demo.MaxLine)
}

func TestEscape(t *testing.T) {
	plt, g := setup(t)
	plt.typeKey(userinput.KeyEscape, "")
	plt.frame(t, g)
	test.ExpectEquality(t, plt.quit, true)
}

func TestFunctionKeys(t *testing.T) {
	plt, g := setup(t)

	plt.typeKey(userinput.KeyF1, "")
	plt.frame(t, g)
	test.ExpectEquality(t, plt.txt.Font(), fonts.Large)

	plt.typeKey(userinput.KeyF1, "")
	plt.frame(t, g)
	test.ExpectEquality(t, plt.txt.Font(), fonts.Regular)

	plt.typeKey(userinput.KeyF2, "")
	plt.frame(t, g)
	test.ExpectEquality(t, plt.grabbed, true)

	plt.typeKey(userinput.KeyF2, "")
	plt.frame(t, g)
	test.ExpectEquality(t, plt.grabbed, false)

	// function keys never add to the line
	test.ExpectEquality(t, g.Line(), "")
}

func TestCycleCursor(t *testing.T) {
	plt, g := setup(t)

	plt.in.MouseButton(userinput.MouseRMB, true)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.cursor, cursors.Dest)

	// holding the button does not change the cursor again
	plt.frame(t, g)
	test.ExpectEquality(t, plt.cursor, cursors.Dest)

	plt.in.MouseButton(userinput.MouseRMB, false)
	plt.frame(t, g)

	for range cursors.NumCursors - 1 {
		plt.now += time.Second
		plt.in.MouseButton(userinput.MouseRMB, true)
		plt.in.MouseButton(userinput.MouseRMB, false)
		plt.frame(t, g)
	}
	test.ExpectEquality(t, plt.cursor, cursors.Arrow)
	test.ExpectEquality(t, g.Cursor(), cursors.Arrow)
}

func TestDoubleClickHidesMouse(t *testing.T) {
	plt, g := setup(t)

	plt.in.MouseButton(userinput.MouseLMB, true)
	plt.in.MouseButton(userinput.MouseLMB, false)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.visible, true)

	plt.in.MouseButton(userinput.MouseLMB, true)
	plt.in.MouseButton(userinput.MouseLMB, false)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.visible, false)

	// too slow to be a double-click
	plt.now += time.Second
	plt.in.MouseButton(userinput.MouseLMB, true)
	plt.in.MouseButton(userinput.MouseLMB, false)
	plt.frame(t, g)
	plt.now += time.Second
	plt.in.MouseButton(userinput.MouseLMB, true)
	plt.in.MouseButton(userinput.MouseLMB, false)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.visible, false)

	plt.in.MouseButton(userinput.MouseLMB, true)
	plt.in.MouseButton(userinput.MouseLMB, false)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.visible, true)
}

func TestMiddleButtonCentresPointer(t *testing.T) {
	plt, g := setup(t)
	plt.in.MouseMotion(10, 10)
	plt.in.MouseButton(userinput.MouseMMB, true)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.warped, true)
	test.ExpectEquality(t, plt.warpX, screenWidth/2)
	test.ExpectEquality(t, plt.warpY, screenHeight/2)
}

func TestWheelChangesTextSize(t *testing.T) {
	plt, g := setup(t)

	plt.in.MouseWheel(true)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.txt.TextSize(), fonts.DefaultRegularSize+1)

	plt.in.MouseWheel(false)
	plt.frame(t, g)
	plt.in.MouseWheel(false)
	plt.frame(t, g)
	test.ExpectEquality(t, plt.txt.TextSize(), fonts.DefaultRegularSize-1)

	for range 100 {
		plt.in.MouseWheel(false)
		plt.frame(t, g)
	}
	test.ExpectEquality(t, plt.txt.TextSize(), demo.MinTextSize)
}

func TestDrag(t *testing.T) {
	plt, g := setup(t)

	plt.in.MouseMotion(100, 100)
	plt.in.MouseButton(userinput.MouseLMB, true)
	plt.frame(t, g)
	test.ExpectEquality(t, g.Drag(), "")

	plt.in.MouseMotion(103, 100)
	plt.frame(t, g)
	test.ExpectEquality(t, g.Drag(), "")

	plt.in.MouseMotion(150, 120)
	plt.frame(t, g)
	test.ExpectEquality(t, g.Drag(), "left button drag from 100,100 to 150,120")
}

func TestSpin(t *testing.T) {
	test.ExpectApproximate(t, demo.Spin(0), 0.0, 0.001)
	test.ExpectApproximate(t, demo.Spin(2*time.Second), 90.0, 0.001)
	test.ExpectApproximate(t, demo.Spin(4*time.Second), 180.0, 0.001)
	test.ExpectApproximate(t, demo.Spin(8*time.Second), 0.0, 0.001)
	test.ExpectApproximate(t, demo.Spin(9*time.Second), 45.0, 0.001)
}
