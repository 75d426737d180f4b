package internal

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// viewport maps the on-screen cursor to a buffer offset and back. Rows and columns are
// 1-based like terminal coordinates; line is the zero-based index of the first visible row,
// counted in units of octetsPerLine bytes. Content occupies rows 1..screenRows-1, the last
// row is the status line.
type viewport struct {
	octetsPerLine int
	grouping      int

	line             int
	cursorX, cursorY int

	screenRows, screenCols int
}

func newViewport(octetsPerLine, grouping, rows, cols int) viewport {
	return viewport{
		octetsPerLine: octetsPerLine,
		grouping:      grouping,
		cursorX:       1,
		cursorY:       1,
		screenRows:    rows,
		screenCols:    cols,
	}
}

// offsetAtCursor returns the buffer offset under the cursor, clamped to [0, length-1].
func (v *viewport) offsetAtCursor(length int) int {
	offset := (v.cursorY-1+v.line)*v.octetsPerLine + (v.cursorX - 1)
	if offset <= 0 || length <= 0 {
		return 0
	}
	if offset >= length {
		return length - 1
	}
	return offset
}

// cursorAtOffset returns the (column, row) at which offset would be displayed for the
// current scroll line. It does not scroll.
func (v *viewport) cursorAtOffset(offset int) (int, int) {
	x := offset%v.octetsPerLine + 1
	y := offset/v.octetsPerLine - v.line + 1
	return x, y
}

func (v *viewport) maxContentRow() int {
	return v.screenRows - 1
}

// moveCursor moves by amount in dir. Running off the left or right edge wraps to the
// previous or next row, running off the top or bottom scrolls by one row, and the cursor
// never ends up past the last byte.
func (v *viewport) moveCursor(dir direction, amount int, length int) {
	if length <= 0 {
		v.cursorX, v.cursorY = 1, 1
		return
	}

	switch dir {
	case dirUp:
		v.cursorY -= amount
	case dirDown:
		v.cursorY += amount
	case dirLeft:
		v.cursorX -= amount
	case dirRight:
		v.cursorX += amount
	}

	// Top-left of the file.
	if v.cursorX <= 1 && v.cursorY <= 1 && v.line <= 0 {
		v.cursorX, v.cursorY = 1, 1
		return
	}

	if v.cursorX < 1 {
		if v.cursorY >= 1 {
			v.cursorY--
			v.cursorX = v.octetsPerLine
		}
	} else if v.cursorX > v.octetsPerLine {
		v.cursorY++
		v.cursorX = 1
	}

	// Nothing above the first row to scroll to.
	if v.cursorY <= 1 && v.line <= 0 {
		v.cursorY = 1
	}

	if v.cursorY > v.maxContentRow() {
		v.cursorY = v.maxContentRow()
		v.scroll(1, length)
	} else if v.cursorY < 1 && v.line > 0 {
		v.cursorY = 1
		v.scroll(-1, length)
	}

	v.snapToEOF(length)
}

// snapToEOF moves the cursor onto the last byte when it sits on or past it.
func (v *viewport) snapToEOF(length int) {
	if length <= 0 {
		v.cursorX, v.cursorY = 1, 1
		return
	}
	offset := v.offsetAtCursor(length)
	if offset >= length-1 {
		v.cursorX, v.cursorY = v.cursorAtOffset(offset)
	}
}

// scroll moves the first visible row by units, keeping it within
// [0, length/octetsPerLine - (screenRows-2)].
func (v *viewport) scroll(units int, length int) {
	v.line += units

	upperLimit := length/v.octetsPerLine - (v.screenRows - 2)
	if v.line >= upperLimit {
		v.line = upperLimit
	}
	// Also covers a negative upper limit, i.e. the whole file fits on screen.
	if v.line <= 0 {
		v.line = 0
	}
}

// setColumn puts the cursor on col of the current row, without passing the last byte.
func (v *viewport) setColumn(col int, length int) {
	v.cursorX = col
	v.snapToEOF(length)
}

// jumpTo scrolls so offset is visible and puts the cursor on it. Only 0 and the last
// offset are used, which is what makes the scroll arithmetic below sufficient.
func (v *viewport) jumpTo(offset int, length int) {
	if length <= 0 {
		v.line = 0
		v.cursorX, v.cursorY = 1, 1
		return
	}
	if offset <= 0 {
		v.line = 0
	} else {
		v.scroll(length, length)
	}
	v.cursorX, v.cursorY = v.cursorAtOffset(offset)
}

// resize adopts new screen dimensions and pulls scroll line and cursor back in bounds.
func (v *viewport) resize(rows, cols int, length int) {
	v.screenRows, v.screenCols = rows, cols
	v.scroll(0, length)
	if v.cursorY > v.maxContentRow() {
		v.cursorY = v.maxContentRow()
	}
	if v.cursorY < 1 {
		v.cursorY = 1
	}
	v.snapToEOF(length)
}
