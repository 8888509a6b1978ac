package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/gmore/internal/state"
)

func nextAction(t *testing.T, ch chan statepkg.Action) statepkg.Action {
	t.Helper()
	select {
	case action := <-ch:
		return action
	default:
		t.Fatalf("expected an action to be emitted")
		return nil
	}
}

func TestAdvanceKeys(t *testing.T) {
	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone),
	}

	ch := make(chan statepkg.Action, 1)
	handler := NewInputHandler(ch)
	for _, ev := range events {
		if cont := handler.ProcessEvent(ev); !cont {
			t.Fatalf("advance keys must not stop the loop")
		}
		if _, ok := nextAction(t, ch).(statepkg.AdvanceAction); !ok {
			t.Fatalf("expected AdvanceAction for %v", ev)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	}

	for _, ev := range events {
		ch := make(chan statepkg.Action, 1)
		handler := NewInputHandler(ch)
		if cont := handler.ProcessEvent(ev); cont {
			t.Fatalf("quit keys should stop the loop: %v", ev)
		}
		if _, ok := nextAction(t, ch).(statepkg.QuitAction); !ok {
			t.Fatalf("expected QuitAction for %v", ev)
		}
	}
}

func TestResizeEvent(t *testing.T) {
	ch := make(chan statepkg.Action, 1)
	handler := NewInputHandler(ch)

	handler.ProcessEvent(tcell.NewEventResize(132, 43))
	action, ok := nextAction(t, ch).(statepkg.ResizeAction)
	if !ok {
		t.Fatalf("expected ResizeAction")
	}
	if action.Width != 132 || action.Height != 43 {
		t.Fatalf("resize = %dx%d, want 132x43", action.Width, action.Height)
	}
}

func TestIgnoredKeysEmitNothing(t *testing.T) {
	ch := make(chan statepkg.Action, 1)
	handler := NewInputHandler(ch)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	select {
	case action := <-ch:
		t.Fatalf("unexpected action %T", action)
	default:
	}
}
