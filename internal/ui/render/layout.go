package render

// PaddingCells is the total padding around the textbox, split evenly
// between the two sides, matching the classic more frame.
const PaddingCells = 4

// Viewport converts a screen size into the rows and cols handed to the
// pagination engine: the textbox minus the frame, with one row reserved
// so the page never collides with the status line.
func Viewport(width, height int) (rows, cols int) {
	rows = height - PaddingCells - 1
	cols = width - PaddingCells
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}
