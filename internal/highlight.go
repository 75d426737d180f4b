package internal

// Styles of the ASCII column.
const (
	// Inverted, marks the byte under the cursor.
	STYLE_CURSOR_CELL = "\x1b[30;47m"
	// Greenish, the rest of the cursor's row.
	STYLE_CURSOR_ROW = "\x1b[32;40;1m"
	// Bright white, every other row.
	STYLE_OTHER_ROW = "\x1b[1;37m"
)

func newHighlightAtCursor(v *viewport) *Highlight {
	return &Highlight{row: v.cursorY, col: v.cursorX}
}

// Highlight marks one cell of the ASCII column, addressed by 1-based screen row and column.
type Highlight struct {
	row, col int
}

// styleFor returns the style that the ASCII character at (row, col) is drawn in.
func (h *Highlight) styleFor(row, col int) string {
	if row != h.row {
		return STYLE_OTHER_ROW
	}
	if col == h.col {
		return STYLE_CURSOR_CELL
	}
	return STYLE_CURSOR_ROW
}

// onRow reports whether row needs per-character styling.
func (h *Highlight) onRow(row int) bool {
	return row == h.row
}
