package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/gmore/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// ProcessEvent converts a tcell event into an Action. It returns false
// once a quit has been requested.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyDown, tcell.KeyEnter, tcell.KeyPgDn:
		ih.actionChan <- statepkg.AdvanceAction{}
		return true

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			ih.actionChan <- statepkg.AdvanceAction{}
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
		return true

	default:
		return true
	}
}
