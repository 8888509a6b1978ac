package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/gmore/internal/fs"
	"github.com/kk-code-lab/gmore/internal/page"
	statepkg "github.com/kk-code-lab/gmore/internal/state"
	inputui "github.com/kk-code-lab/gmore/internal/ui/input"
	renderui "github.com/kk-code-lab/gmore/internal/ui/render"
)

// Application represents the running pager.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.AppState
	session  *page.Session
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	actionCh chan statepkg.Action
	closer   io.Closer
	runErr   error
}

// NewApplication opens the terminal screen and starts a pager session
// over the named file.
func NewApplication(path string) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, path)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, path string) (*Application, error) {
	session, closer, warning, err := OpenSession(path)
	if err != nil {
		return nil, err
	}

	w, h := screen.Size()
	state := &statepkg.AppState{
		FileName:     path,
		ScreenWidth:  w,
		ScreenHeight: h,
		Warning:      warning,
	}

	actionCh := make(chan statepkg.Action, 10)

	return &Application{
		screen:   screen,
		state:    state,
		session:  session,
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
		closer:   closer,
	}, nil
}

// OpenSession stats, sniffs and opens the file, returning a pagination
// session, the handle to close when done (nil when paging from memory)
// and a warning for content that does not look like text. BOM-marked
// Unicode files are normalized to UTF-8 up front and paged from memory,
// with the session size taken from the decoded text.
func OpenSession(path string) (*page.Session, io.Closer, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, "", err
	}

	sample, err := fsutil.ReadTextSample(path)
	if err != nil {
		return nil, nil, "", err
	}

	warning := ""
	if !fsutil.IsTextFile(path, sample) {
		warning = fmt.Sprintf("*** %s: may not be a text file ***", filepath.Base(path))
	}

	if fsutil.DetectUnicodeEncoding(sample) != fsutil.EncodingUnknown {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, "", err
		}
		text := fsutil.NormalizeTextContent(content)
		return page.NewSession(strings.NewReader(text), len(text)), nil, warning, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, "", err
	}
	return page.NewSession(f, int(info.Size())), f, warning, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.closer != nil {
		_ = app.closer.Close()
	}
	app.screen.Fini()
	return nil
}
