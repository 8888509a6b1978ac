package state

// AppState holds everything the renderer needs to draw one frame of the
// pager: the current page of display lines, the completion percentage
// and the viewport geometry.
type AppState struct {
	FileName     string
	ScreenWidth  int
	ScreenHeight int

	// Lines is the page most recently produced by the engine; ownership
	// transferred to the UI when the page was returned.
	Lines   []string
	Percent float64
	Done    bool

	// Warning is shown once above the status line, e.g. for a file that
	// does not look like text.
	Warning string
}
