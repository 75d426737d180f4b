package internal

import "github.com/commanderHR1/hx/internal/keys"

func newNormalEditorMode(baseEditor *editorImpl) *normalModeEditor {
	return &normalModeEditor{editorImpl: baseEditor}
}

type normalModeEditor struct {
	*editorImpl
}

func (ne *normalModeEditor) Handle(key keys.Key) error {
	switch key {
	case 'h':
		ne.moveCursor(dirLeft, 1)
	case 'j':
		ne.moveCursor(dirDown, 1)
	case 'k':
		ne.moveCursor(dirUp, 1)
	case 'l':
		ne.moveCursor(dirRight, 1)
	case 'x':
		ne.deleteByteAtCursor()
	case 'i':
		ne.swapEditorMode(INSERT_MODE)
	case 'r':
		ne.swapEditorMode(REPLACE_MODE)
	case ':':
		ne.swapEditorMode(COMMAND_MODE)
	case 'b':
		// One group back.
		ne.moveCursor(dirLeft, ne.view.grouping)
	case 'w':
		// One group further.
		ne.moveCursor(dirRight, ne.view.grouping)
	case 'G':
		// Scroll to the end, cursor on the last byte.
		ne.view.jumpTo(ne.buf.Len()-1, ne.buf.Len())
	case 'g':
		// "gg": back to the start of the file.
		next, err := ne.nextKey()
		if err != nil {
			return err
		}
		if next == 'g' {
			ne.view.jumpTo(0, ne.buf.Len())
		}
	case ']':
		ne.incrementByteAtCursor(1)
	case '[':
		ne.incrementByteAtCursor(-1)
	}
	// Anything else is ignored.
	return nil
}

func (ne *normalModeEditor) Mode() Mode {
	return NORMAL_MODE
}
