package internal

import "github.com/commanderHR1/hx/internal/keys"

func newReplaceEditorMode(baseEditor *editorImpl) *replaceModeEditor {
	return &replaceModeEditor{editorImpl: baseEditor}
}

// replaceModeEditor overwrites the byte under the cursor with two typed hex digits, then
// moves right. It stays in REPLACE mode until Escape.
type replaceModeEditor struct {
	*editorImpl
}

func (re *replaceModeEditor) Handle(key keys.Key) error {
	value, ok, err := re.readHexByte(key)
	if err != nil || !ok {
		return err
	}
	re.replaceByteAtCursor(value)
	return nil
}

func (re *replaceModeEditor) Mode() Mode {
	return REPLACE_MODE
}
