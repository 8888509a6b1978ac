package state

// Action is the base interface for all state mutations
type Action interface{}

// AdvanceAction requests the next screenful of text.
type AdvanceAction struct{}

// QuitAction ends the pager session.
type QuitAction struct{}

// ResizeAction records a new terminal size.
type ResizeAction struct {
	Width  int
	Height int
}
