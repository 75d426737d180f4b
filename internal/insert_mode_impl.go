package internal

import "github.com/commanderHR1/hx/internal/keys"

func newInsertEditorMode(baseEditor *editorImpl) *insertModeEditor {
	return &insertModeEditor{editorImpl: baseEditor}
}

// insertModeEditor grows the buffer: every pair of hex digits typed becomes a new byte
// right after the cursor, and the cursor follows it. Typing at the last byte appends.
type insertModeEditor struct {
	*editorImpl
}

func (ie *insertModeEditor) Handle(key keys.Key) error {
	value, ok, err := ie.readHexByte(key)
	if err != nil || !ok {
		return err
	}
	ie.insertByteAfterCursor(value)
	return nil
}

func (ie *insertModeEditor) Mode() Mode {
	return INSERT_MODE
}
