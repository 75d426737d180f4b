package internal

import (
	"io"
	"strings"

	"github.com/commanderHR1/hx/internal/keys"
)

func newCommandEditorMode(baseEditor *editorImpl) *commandModeEditor {
	return &commandModeEditor{editorImpl: baseEditor}
}

type commandModeEditor struct {
	*editorImpl
}

func (ce *commandModeEditor) Handle(key keys.Key) error {
	switch key {
	case keys.KeyBackspace, 0x08:
		// Delete the last char in the command. If the command is empty, then swap to NORMAL mode too.
		if ce.commandBuffer.Len() == 0 {
			ce.swapEditorMode(NORMAL_MODE)
			return nil
		}
		cmd := ce.commandBuffer.String()
		ce.commandBuffer.Reset()
		ce.commandBuffer.WriteString(cmd[:len(cmd)-1])
	case keys.KeyEnter, '\n':
		command := strings.TrimSpace(ce.commandBuffer.String())
		ce.swapEditorMode(NORMAL_MODE)
		return ce.handleCommandEntered(command)
	default:
		if !key.IsPrint() {
			return nil
		}
		ce.commandBuffer.WriteByte(byte(key))
	}
	ce.setStatus(SEVERITY_INFO, ":%s", ce.commandBuffer.String())
	return nil
}

func (ce *commandModeEditor) handleCommandEntered(command string) error {
	switch command {
	case "":
		return nil
	case "w":
		ce.writeToDisc()
		return nil
	case "q":
		return io.EOF
	case "wq", "x":
		if ce.writeToDisc() {
			return io.EOF
		}
		return nil
	default:
		ce.setStatus(SEVERITY_ERROR, "unrecognized command: %s", command)
		return nil
	}
}

func (ce *commandModeEditor) Mode() Mode {
	return COMMAND_MODE
}
