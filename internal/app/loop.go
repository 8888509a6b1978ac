package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/gmore/internal/state"
	renderui "github.com/kk-code-lab/gmore/internal/ui/render"
)

// Run shows the first page and then applies actions until the user
// quits or the stream fails. The returned error is nil on a normal
// quit.
func (app *Application) Run() error {
	defer app.screen.Fini()

	if err := app.advance(); err != nil {
		return err
	}
	app.renderer.Render(app.state)

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			eventCh <- app.screen.PollEvent()
		}
	}()

	for {
		select {
		case action := <-app.actionCh:
			if app.apply(action) {
				return app.runErr
			}
		case ev := <-eventCh:
			app.input.ProcessEvent(ev)
		}
	}
}

// apply mutates state for one action, re-renders and reports whether
// the loop should exit.
func (app *Application) apply(action statepkg.Action) bool {
	switch act := action.(type) {
	case statepkg.QuitAction:
		return true

	case statepkg.ResizeAction:
		app.state.ScreenWidth = act.Width
		app.state.ScreenHeight = act.Height
		app.screen.Sync()

	case statepkg.AdvanceAction:
		if err := app.advance(); err != nil {
			app.runErr = err
			return true
		}
	}

	app.renderer.Render(app.state)
	return false
}

// advance asks the engine for the next page. Once the session is done
// the last page stays on screen and further requests are ignored.
func (app *Application) advance() error {
	if app.state.Done {
		return nil
	}

	rows, cols := renderui.Viewport(app.state.ScreenWidth, app.state.ScreenHeight)
	view, err := app.session.Advance(rows, cols)
	if err != nil {
		return err
	}

	app.state.Lines = view.Lines
	app.state.Percent = view.Percent
	app.state.Done = view.Done
	return nil
}
