package internal

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	hx "github.com/commanderHR1/hx"
	"github.com/commanderHR1/hx/internal/keys"
)

type Mode string

const (
	// Editor modes.
	NORMAL_MODE  Mode = "NORMAL"
	INSERT_MODE  Mode = "INSERT"
	REPLACE_MODE Mode = "REPLACE"
	COMMAND_MODE Mode = "COMMAND"

	cDefaultOctetsPerLine = 16
	cDefaultGrouping      = 4
)

// Screen is where frames are drawn. Each frame arrives in a single Write call.
type Screen interface {
	io.Writer
	Size() (rows int, cols int, err error)
}

// KeyReader supplies the second key of two key sequences. It blocks until a key arrives;
// keys.KeyNone means the wait was interrupted.
type KeyReader interface {
	WaitKey() (keys.Key, error)
}

type Config struct {
	OctetsPerLine int
	Grouping      int
	Verbose       bool
}

func NewEditor(screen Screen, input KeyReader, files FileStore, file *LoadedFile, cfg Config) (hx.Editor, error) {
	if cfg.OctetsPerLine <= 0 {
		cfg.OctetsPerLine = cDefaultOctetsPerLine
	}
	if cfg.Grouping <= 0 {
		cfg.Grouping = cDefaultGrouping
	}
	rows, cols, err := screen.Size()
	if err != nil {
		return nil, err
	}

	e := &editorImpl{
		screen:   screen,
		input:    input,
		files:    files,
		filePath: file.Path,
		buf:      newByteBuffer(file.Contents),
		view:     newViewport(cfg.OctetsPerLine, cfg.Grouping, rows, cols),
		verbose:  cfg.Verbose,
	}

	// Initialize in NORMAL mode.
	e.swapEditorMode(NORMAL_MODE)

	if file.ReadOnly {
		e.setStatus(SEVERITY_WARNING, "\"%s\" (%d bytes) [readonly]", e.filePath, e.buf.Len())
	} else {
		e.setStatus(SEVERITY_INFO, "\"%s\" (%d bytes)", e.filePath, e.buf.Len())
	}

	// Initial update of the screen.
	if err := e.sync(); err != nil {
		return nil, err
	}
	return e, nil
}

type editorImpl struct {
	screen Screen
	input  KeyReader
	files  FileStore

	filePath string
	buf      *byteBuffer
	dirty    bool

	view   viewport
	status status

	// Mode info.
	mode    Mode
	verbose bool

	// Typed text while in COMMAND mode.
	commandBuffer strings.Builder

	// Different modes are implemented here.
	activeEditorMode EditorMode
}

var _ hx.Editor = (*editorImpl)(nil)

func (e *editorImpl) Handle(key keys.Key) error {
	if key == keys.KeyNone {
		return nil
	}
	handled, err := e.handleGlobalKey(key)
	if err != nil {
		return err
	}
	if !handled {
		if err := e.activeEditorMode.Handle(key); err != nil {
			return err
		}
	}
	return e.sync()
}

// handleGlobalKey runs the bindings that behave the same in every mode.
func (e *editorImpl) handleGlobalKey(key keys.Key) (bool, error) {
	switch key {
	case keys.KeyEsc:
		e.swapEditorMode(NORMAL_MODE)
	case keys.KeyCtrlQ:
		return true, io.EOF
	case keys.KeyCtrlS:
		e.writeToDisc()
	case keys.KeyUp:
		e.moveCursor(dirUp, 1)
	case keys.KeyDown:
		e.moveCursor(dirDown, 1)
	case keys.KeyRight:
		e.moveCursor(dirRight, 1)
	case keys.KeyLeft:
		e.moveCursor(dirLeft, 1)
	case keys.KeyHome:
		e.view.setColumn(1, e.buf.Len())
	case keys.KeyEnd:
		e.view.setColumn(e.view.octetsPerLine, e.buf.Len())
	case keys.KeyPageUp:
		e.view.scroll(-(e.view.screenRows - 2), e.buf.Len())
		e.view.snapToEOF(e.buf.Len())
	case keys.KeyPageDown:
		e.view.scroll(e.view.screenRows-2, e.buf.Len())
		e.view.snapToEOF(e.buf.Len())
	default:
		return false, nil
	}
	return true, nil
}

func (e *editorImpl) Mode() Mode {
	return e.mode
}

func (e *editorImpl) swapEditorMode(mode Mode) {
	e.mode = mode
	switch mode {
	case NORMAL_MODE:
		e.setStatus(SEVERITY_INFO, "")
		e.activeEditorMode = newNormalEditorMode(e)
	case INSERT_MODE:
		e.setStatus(SEVERITY_INFO, "-- INSERT --")
		e.activeEditorMode = newInsertEditorMode(e)
	case REPLACE_MODE:
		e.setStatus(SEVERITY_INFO, "-- REPLACE --")
		e.activeEditorMode = newReplaceEditorMode(e)
	case COMMAND_MODE:
		e.commandBuffer.Reset()
		e.setStatus(SEVERITY_INFO, ":")
		e.activeEditorMode = newCommandEditorMode(e)
	}
}

func (e *editorImpl) offsetAtCursor() int {
	return e.view.offsetAtCursor(e.buf.Len())
}

func (e *editorImpl) moveCursor(dir direction, amount int) {
	e.view.moveCursor(dir, amount, e.buf.Len())
}

// nextKey fetches the second key of a two key sequence.
func (e *editorImpl) nextKey() (keys.Key, error) {
	return e.input.WaitKey()
}

// readHexByte combines first and the next typed key into one byte. ok is false, with the
// status line already explaining why, when either key is not a hex digit.
func (e *editorImpl) readHexByte(first keys.Key) (byte, bool, error) {
	if !first.IsHex() {
		e.setStatus(SEVERITY_ERROR, "'%s' is not valid hex", first)
		return 0, false, nil
	}
	next, err := e.nextKey()
	if err != nil {
		return 0, false, err
	}
	if next == keys.KeyNone {
		return 0, false, nil
	}
	if !next.IsHex() {
		e.setStatus(SEVERITY_ERROR, "'%s' is not valid hex", next)
		return 0, false, nil
	}
	return first.HexValue()<<4 | next.HexValue(), true, nil
}

func (e *editorImpl) deleteByteAtCursor() {
	offset := e.offsetAtCursor()
	oldLength := e.buf.Len()
	if err := e.buf.DeleteAt(offset); err != nil {
		e.setStatus(SEVERITY_WARNING, "Nothing to delete")
		return
	}
	e.dirty = true
	e.setStatus(SEVERITY_INFO, "Deleted byte at offset %09x", offset)

	// Deleting the last byte leaves the cursor past the end.
	if offset >= oldLength-1 {
		e.moveCursor(dirLeft, 1)
	}
}

func (e *editorImpl) incrementByteAtCursor(amount int) {
	offset := e.offsetAtCursor()
	if err := e.buf.IncrementAt(offset, amount); err != nil {
		e.setStatus(SEVERITY_WARNING, "Nothing to change")
		return
	}
	e.dirty = true
	e.setStatus(SEVERITY_INFO, "Changed byte at offset %09x to %02x", offset, e.buf.At(offset))
}

func (e *editorImpl) replaceByteAtCursor(value byte) {
	offset := e.offsetAtCursor()
	if err := e.buf.ReplaceAt(offset, value); err != nil {
		e.setStatus(SEVERITY_WARNING, "Nothing to replace")
		return
	}
	e.dirty = true
	e.moveCursor(dirRight, 1)
	e.setStatus(SEVERITY_INFO, "Replaced byte at offset %09x with %02x", offset, value)
}

// insertByteAfterCursor puts value right after the byte under the cursor, or at offset 0
// when the buffer is empty, and moves the cursor onto it.
func (e *editorImpl) insertByteAfterCursor(value byte) {
	offset := 0
	if e.buf.Len() > 0 {
		offset = e.offsetAtCursor() + 1
	}
	if err := e.buf.InsertAt(offset, value); err != nil {
		e.setStatus(SEVERITY_ERROR, "Unable to insert at offset %09x", offset)
		return
	}
	e.dirty = true
	if offset > 0 {
		e.moveCursor(dirRight, 1)
	}
	e.setStatus(SEVERITY_INFO, "Inserted %02x at offset %09x", value, offset)
}

// Write the contents of the in-memory buffer to disc, overwriting the file.
func (e *editorImpl) writeToDisc() bool {
	if err := e.files.Write(e.filePath, e.buf.Bytes()); err != nil {
		e.setStatus(SEVERITY_ERROR, "%s", err)
		return false
	}
	e.dirty = false
	e.setStatus(SEVERITY_INFO, "\"%s\", %d bytes written", e.filePath, e.buf.Len())
	return true
}

func (e *editorImpl) Resize() error {
	rows, cols, err := e.screen.Size()
	if err != nil {
		return err
	}
	e.view.resize(rows, cols, e.buf.Len())
	if _, err := io.WriteString(e.screen, cClearScreen); err != nil {
		return err
	}
	return e.sync()
}

func (e *editorImpl) Sync() error {
	return e.sync()
}

func (e *editorImpl) Close() {
	e.buf = newByteBuffer(nil)
}

// sync draws the whole frame into one buffer and writes it in a single call, so the
// terminal never shows a half drawn screen.
func (e *editorImpl) sync() error {
	var b bytes.Buffer
	e.updateScreen(&b)
	if _, err := e.screen.Write(b.Bytes()); err != nil {
		return fmt.Errorf("unable to draw screen: %w", err)
	}
	return nil
}
