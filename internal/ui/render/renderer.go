package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/gmore/internal/state"
	textutil "github.com/kk-code-lab/gmore/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	r.drawHeader(state, w)
	r.drawPage(state, w, h)
	r.drawStatus(state, w, h)

	r.screen.Show()
}

// drawHeader renders the file name on the top row, with the binary
// warning underneath when set.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	name := textutil.SanitizeTerminalText(state.FileName)
	name = textutil.TruncateToWidth(name, w)
	r.drawTextLine(0, 0, w, name, tcell.StyleDefault.Bold(true))

	if state.Warning != "" {
		warning := textutil.TruncateToWidth(state.Warning, w)
		r.drawTextLine(0, 1, w, warning, tcell.StyleDefault)
	}
}

// drawPage renders the current page inside the padded textbox.
func (r *Renderer) drawPage(state *statepkg.AppState, w, h int) {
	top := PaddingCells / 2
	left := PaddingCells / 2
	_, cols := Viewport(w, h)

	row := top
	for _, line := range state.Lines {
		if row >= h-1 {
			break
		}
		text := strings.TrimRight(line, "\r\n")
		text = textutil.ExpandTabs(text, textutil.DefaultTabWidth)
		r.drawTextLine(left, row, cols, text, tcell.StyleDefault)
		row++
	}
}

// drawStatus renders the reverse-video progress marker and the exit hint
// on the bottom row.
func (r *Renderer) drawStatus(state *statepkg.AppState, w, h int) {
	if h < 1 {
		return
	}
	status := fmt.Sprintf(" --MORE-- %.2f%% ", state.Percent)
	endX := r.drawTextLine(0, h-1, w, status, tcell.StyleDefault.Reverse(true))

	hint := "Exit: 'q'"
	hintX := w - textutil.DisplayWidth(hint) - 1
	if hintX > endX {
		r.drawTextLine(hintX, h-1, w-hintX, hint, tcell.StyleDefault)
	}
}

// drawTextLine draws text at (x, y) without exceeding maxWidth columns
// and returns the column after the last cell written.
func (r *Renderer) drawTextLine(x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return x
	}
	limit := x + maxWidth
	for _, ru := range text {
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		if x+width > limit {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += width
	}
	return x
}
