package internal

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/commanderHR1/hx/internal/build_version"
)

const (
	cHideCursor  = "\x1b[?25l"
	cShowCursor  = "\x1b[?25h"
	cHome        = "\x1b[H"
	cReset       = "\x1b[0m"
	cClearBelow  = "\x1b[0J"
	cClearLine   = "\x1b[0K"
	cClearAll    = "\x1b[2J"
	cClearScreen = cReset + cHome + cClearAll

	// Colors.
	COLOR_ADDRESS        = "\x1b[0;33m"
	COLOR_STATUS_INFO    = "\x1b[0;30;47m" // black on light grey
	COLOR_STATUS_WARNING = "\x1b[0;30;43m" // black on yellow
	COLOR_STATUS_ERROR   = "\x1b[1;37;41m" // bold white on red
	COLOR_DEBUG          = "\x1b[0;37m"

	// Width of "000000000:" plus the group space before the first byte, as a 1-based column.
	cHexColumnStart = 12

	hexDigits = "0123456789abcdef"
)

// updateScreen draws a complete frame: contents, status line, ruler, then the cursor.
// It only reads editor state.
func (e *editorImpl) updateScreen(b *bytes.Buffer) {
	b.WriteString(cHideCursor)
	b.WriteString(cHome)

	e.renderContents(b)
	e.renderStatus(b)
	e.renderRuler(b)
	if e.verbose {
		e.renderDebug(b)
	}
	e.renderCursor(b)

	b.WriteString(cShowCursor)
}

// hexRowWidth is the width of the hex part of a full row, group spaces included.
func (e *editorImpl) hexRowWidth() int {
	opl, grouping := e.view.octetsPerLine, e.view.grouping
	return opl*2 + (opl+grouping-1)/grouping
}

func (e *editorImpl) renderContents(b *bytes.Buffer) {
	length := e.buf.Len()
	if length <= 0 {
		b.WriteString(cClearAll)
		b.WriteString("empty")
		return
	}

	opl := e.view.octetsPerLine
	start := e.view.line * opl
	if start >= length {
		start = (length - 1) / opl * opl
	}
	end := start + e.view.screenRows*opl - opl
	if end > length {
		end = length
	}

	highlight := newHighlightAtCursor(&e.view)
	asc := make([]byte, 0, opl)
	row := 0
	rowChars := 0

	offset := start
	for ; offset < end; offset++ {
		col := offset % opl
		if col == 0 {
			fmt.Fprintf(b, "%s%09x%s:", COLOR_ADDRESS, offset, cReset)
			asc = asc[:0]
			rowChars = 0
			row++
		}

		c := e.buf.At(offset)
		if isPrintable(c) {
			asc = append(asc, c)
		} else {
			asc = append(asc, '.')
		}

		if col%e.view.grouping == 0 {
			b.WriteByte(' ')
			rowChars++
		}
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
		rowChars += 2

		if col == opl-1 {
			b.WriteString("  ")
			e.renderASCII(b, highlight, row, asc)
			b.WriteString("\r\n")
		}
	}

	// A last, partial row: pad the hex part so the ASCII column lines up.
	//
	// 000000420: 0a53 4f46 5457 4152 452e 0a              .SOFTWARE..
	if offset%opl > 0 {
		b.Write(bytes.Repeat([]byte{' '}, e.hexRowWidth()-rowChars))
		b.WriteString(cReset)
		b.WriteString("  ")
		e.renderASCII(b, highlight, row, asc)
	}

	b.WriteString(cClearBelow)
}

// renderASCII writes the printable form of one row. On the cursor's row every character
// gets its own style so the byte under the cursor stands out.
func (e *editorImpl) renderASCII(b *bytes.Buffer, h *Highlight, row int, asc []byte) {
	if h.onRow(row) {
		for i, c := range asc {
			b.WriteString(h.styleFor(row, i+1))
			b.WriteByte(c)
		}
	} else {
		b.WriteString(STYLE_OTHER_ROW)
		b.Write(asc)
	}
	b.WriteString(cReset)
}

func (e *editorImpl) renderStatus(b *bytes.Buffer) {
	fmt.Fprintf(b, "\x1b[%d;0H", e.view.screenRows)
	switch e.status.severity {
	case SEVERITY_INFO:
		b.WriteString(COLOR_STATUS_INFO)
	case SEVERITY_WARNING:
		b.WriteString(COLOR_STATUS_WARNING)
	case SEVERITY_ERROR:
		b.WriteString(COLOR_STATUS_ERROR)
	}
	b.WriteString(e.status.msg)
	b.WriteString(cReset)
}

// ruler is the text in the bottom right corner: offset in hex and decimal, the byte under
// the cursor, and how far into the file the cursor is.
func (e *editorImpl) ruler() string {
	offset := e.offsetAtCursor()
	percentage := (offset + 1) * 100 / e.buf.Len()
	return fmt.Sprintf("0x%09x,%d (%02x)  %d%%", offset, offset, e.buf.At(offset), percentage)
}

func (e *editorImpl) renderRuler(b *bytes.Buffer) {
	if e.buf.Len() <= 0 {
		return
	}
	msg := e.ruler()
	col := e.view.screenCols - ansi.StringWidth(msg)
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(b, "%s\x1b[%d;%dH%s", cReset, e.view.screenRows, col, msg)
}

// renderDebug prints internal state to the right of the ASCII column, if there is room.
func (e *editorImpl) renderDebug(b *bytes.Buffer) {
	col := 10 + e.hexRowWidth() + 2 + e.view.octetsPerLine + 3
	room := e.view.screenCols - col + 1
	if room <= 0 {
		return
	}
	lines := []string{
		fmt.Sprintf("build=%s (git: %s)", build_version.GetVersion(), build_version.GetGitHash()),
		fmt.Sprintf("screen=%dx%d line=%d", e.view.screenRows, e.view.screenCols, e.view.line),
		fmt.Sprintf("cursor=(x=%d,y=%d) offset=%d", e.view.cursorX, e.view.cursorY, e.offsetAtCursor()),
		fmt.Sprintf("len=%d dirty=%t", e.buf.Len(), e.dirty),
		fmt.Sprintf("mode=%s", e.activeEditorMode.Mode()),
	}
	for i, line := range lines {
		if i+1 >= e.view.screenRows {
			break
		}
		fmt.Fprintf(b, "%s\x1b[%d;%dH%s%s", COLOR_DEBUG, i+1, col, cClearLine, ansi.Truncate(line, room, ""))
	}
	b.WriteString(cReset)
}

// renderCursor puts the terminal cursor on the first hex digit of the current byte: two
// characters per byte plus one space per group, after the address.
func (e *editorImpl) renderCursor(b *bytes.Buffer) {
	curX := (e.view.cursorX - 1) * 2
	spaces := curX / (e.view.grouping * 2)
	fmt.Fprintf(b, "\x1b[%d;%dH", e.view.cursorY, curX+spaces+cHexColumnStart)
}

// isPrintable reports whether c is printable ASCII.
func isPrintable(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
