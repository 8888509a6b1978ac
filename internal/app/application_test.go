package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/gmore/internal/state"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestOpenSessionPlainFile(t *testing.T) {
	path := writeTempFile(t, "plain.txt", []byte("a\nb\nc\n"))

	session, closer, warning, err := OpenSession(path)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if closer == nil {
		t.Fatalf("plain files should stream from the handle")
	}
	defer func() {
		_ = closer.Close()
	}()
	if warning != "" {
		t.Fatalf("unexpected warning %q", warning)
	}

	view, err := session.Advance(2, 80)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if len(view.Lines) != 2 || view.Lines[0] != "a\n" {
		t.Fatalf("first page = %+v", view)
	}
}

func TestOpenSessionMissingFile(t *testing.T) {
	if _, _, _, err := OpenSession(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestOpenSessionNormalizesUTF16(t *testing.T) {
	// "hi\n" in UTF-16 LE with BOM.
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, '\n', 0x00}
	path := writeTempFile(t, "wide.txt", data)

	session, closer, _, err := OpenSession(path)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if closer != nil {
		t.Fatalf("normalized content should be paged from memory")
	}

	view, err := session.Advance(5, 80)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0] != "hi\n" {
		t.Fatalf("decoded page = %+v", view)
	}
	if view.Percent != 100 || !view.Done {
		t.Fatalf("short decoded stream should finish in one page: %+v", view)
	}
}

func TestOpenSessionWarnsOnBinary(t *testing.T) {
	data := []byte{0x7F, 0x45, 0x4C, 0x46, 0x00, 0x00, 0x01, 0x02}
	path := writeTempFile(t, "blob.dat", data)

	_, closer, warning, err := OpenSession(path)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if closer != nil {
		defer func() {
			_ = closer.Close()
		}()
	}
	if !strings.Contains(warning, "may not be a text file") {
		t.Fatalf("expected binary warning, got %q", warning)
	}
}

func newTestApplication(t *testing.T, content string) *Application {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(40, 12)

	path := writeTempFile(t, "content.txt", []byte(content))
	app, err := newApplication(screen, path)
	if err != nil {
		screen.Fini()
		t.Fatalf("newApplication: %v", err)
	}
	t.Cleanup(func() {
		_ = app.Close()
	})
	return app
}

func TestAdvanceUpdatesState(t *testing.T) {
	app := newTestApplication(t, "one\ntwo\nthree\n")

	if err := app.advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	// 12 rows leave 7 textbox lines, so everything fits on one page.
	if len(app.state.Lines) != 3 {
		t.Fatalf("expected the whole file on one page, got %q", app.state.Lines)
	}
	if app.state.Percent != 100 || !app.state.Done {
		t.Fatalf("state = %+v", app.state)
	}

	// Advancing a finished session keeps the last page.
	if err := app.advance(); err != nil {
		t.Fatalf("advance after done: %v", err)
	}
	if len(app.state.Lines) != 3 {
		t.Fatalf("final page should stay, got %q", app.state.Lines)
	}
}

func TestApplyActions(t *testing.T) {
	app := newTestApplication(t, strings.Repeat("line\n", 50))

	if quit := app.apply(statepkg.AdvanceAction{}); quit {
		t.Fatalf("advance must not quit")
	}
	if len(app.state.Lines) == 0 {
		t.Fatalf("advance should produce a page")
	}
	if app.state.Done {
		t.Fatalf("50 lines cannot fit a 12-row screen")
	}

	if quit := app.apply(statepkg.ResizeAction{Width: 100, Height: 30}); quit {
		t.Fatalf("resize must not quit")
	}
	if app.state.ScreenWidth != 100 || app.state.ScreenHeight != 30 {
		t.Fatalf("resize not applied: %+v", app.state)
	}

	if quit := app.apply(statepkg.QuitAction{}); !quit {
		t.Fatalf("quit action should end the loop")
	}
}

func TestPagesAreSequential(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString(strings.Repeat("x", i%5+1))
		b.WriteByte('\n')
	}
	app := newTestApplication(t, b.String())

	var got strings.Builder
	for i := 0; i < 20 && !app.state.Done; i++ {
		if err := app.advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
		for _, line := range app.state.Lines {
			got.WriteString(line)
		}
	}
	if got.String() != b.String() {
		t.Fatalf("pages do not reassemble the file")
	}
}
