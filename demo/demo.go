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

package demo

import (
	"fmt"
	"image/color"
	"time"
	"unicode"

	"github.com/wz2100/wzframe/gui"
	"github.com/wz2100/wzframe/gui/cursors"
	"github.com/wz2100/wzframe/gui/fonts"
	"github.com/wz2100/wzframe/userinput"
)

// limits of the text size when changed with the mouse wheel.
const (
	MinTextSize = 6.0
	MaxTextSize = 48.0
)

// MaxLine is the maximum number of characters in the typed line.
const MaxLine = 64

// the number of degrees the spinning text turns every second.
const spinRate = 45

const margin = 10

// Game implements the gui.Game interface.
type Game struct {
	plt gui.Platform

	line []rune

	cursor  cursors.ID
	hidden  bool
	grabbed bool

	// description of the most recent drag
	drag string
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame() *Game {
	return &Game{
		cursor: cursors.Arrow,
	}
}

// FinalInitialisation implements the gui.Game interface.
func (g *Game) FinalInitialisation(plt gui.Platform) error {
	g.plt = plt
	g.plt.SetCursor(g.cursor)
	g.plt.Text().SetTextColour(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return nil
}

// MainLoop implements the gui.Game interface.
func (g *Game) MainLoop() error {
	in := g.plt.Input()
	g.keyboard(in)
	g.mouse(in)
	g.draw()
	g.plt.ScreenFlip()
	return nil
}

// Line returns the typed text.
func (g *Game) Line() string {
	return string(g.line)
}

// Cursor returns the current cursor.
func (g *Game) Cursor() cursors.ID {
	return g.cursor
}

// Drag returns a description of the drag in progress or the one that most
// recently finished. Returns the empty string if there has been no drag.
func (g *Game) Drag() string {
	return g.drag
}

func (g *Game) keyboard(in *userinput.Input) {
	for {
		code, ok := in.GetKey()
		if !ok {
			return
		}

		switch code {
		case userinput.KeyEscape:
			g.plt.Quit()
		case userinput.KeyBackspace:
			if len(g.line) > 0 {
				g.line = g.line[:len(g.line)-1]
			}
		case userinput.KeyReturn, userinput.KeyKPEnter:
			g.line = g.line[:0]
		case userinput.KeyF1:
			txt := g.plt.Text()
			if txt.Font() == fonts.Regular {
				txt.SetFont(fonts.Large)
			} else {
				txt.SetFont(fonts.Regular)
			}
		case userinput.KeyF2:
			g.grabbed = !g.grabbed
			if g.grabbed {
				g.plt.GrabMouse()
			} else {
				g.plt.ReleaseMouse()
			}
		default:
			r := in.GetCharKey()
			if unicode.IsPrint(r) && len(g.line) < MaxLine {
				g.line = append(g.line, r)
			}
		}
	}
}

func (g *Game) mouse(in *userinput.Input) {
	if in.MousePressed(userinput.MouseRMB) {
		g.cursor = (g.cursor + 1) % cursors.NumCursors
		g.plt.SetCursor(g.cursor)
	}

	if in.MouseDClicked(userinput.MouseLMB) {
		g.hidden = !g.hidden
		g.plt.ShowMouse(!g.hidden)
	}

	if in.MousePressed(userinput.MouseMMB) {
		w, h := g.plt.ScreenSize()
		g.plt.SetMousePos(w/2, h/2)
	}

	var delta float64
	if in.MousePressed(userinput.MouseWheelUp) {
		delta++
	}
	if in.MousePressed(userinput.MouseWheelDown) {
		delta--
	}
	if delta != 0 {
		txt := g.plt.Text()
		size := min(max(txt.TextSize()+delta, MinTextSize), MaxTextSize)
		if size != txt.TextSize() {
			// the size is within limits so the error can be ignored
			_ = txt.SetTextSize(size)
		}
	}

	for _, b := range []userinput.MouseButton{userinput.MouseLMB, userinput.MouseRMB} {
		if x, y, ok := in.MouseDrag(b); ok {
			g.drag = fmt.Sprintf("%s drag from %d,%d to %d,%d", b, x, y, in.MouseX(), in.MouseY())
		}
	}
}

func (g *Game) draw() {
	txt := g.plt.Text()
	in := g.plt.Input()

	y := margin
	g.plt.DrawText(fmt.Sprintf("> %s_", string(g.line)), margin, y)
	y += txt.LineSize()

	status := []string{
		fmt.Sprintf("pointer %d,%d", in.MouseX(), in.MouseY()),
		fmt.Sprintf("cursor %s", g.cursor),
		fmt.Sprintf("text size %.0f", txt.TextSize()),
	}
	if !g.plt.ActiveWindow() {
		status = append(status, "pointer outside window")
	}
	if g.drag != "" {
		status = append(status, g.drag)
	}
	for _, s := range status {
		g.plt.DrawText(s, margin, y)
		y += txt.LineSize()
	}

	w, h := g.plt.ScreenSize()
	g.plt.DrawTextRotated(g.plt.Ticks().Truncate(time.Second).String(), w/2, h/2, Spin(g.plt.Ticks()))
}

// Spin returns the rotation in degrees of the spinning text at time t.
func Spin(t time.Duration) float64 {
	return float64(t.Milliseconds()%(360000/spinRate)) * spinRate / 1000
}
