package hx

import "github.com/commanderHR1/hx/internal/keys"

// Editor - The main interface that represents the program. At any point there will be just one
// instantiation of Editor. The program passes decoded keys that the user types, and the editor
// handles the manipulation of the byte buffer and publishes that state by redrawing the hex
// view on the terminal.
type Editor interface {
	// Handle dispatches one key. io.EOF means the user asked to quit.
	Handle(key keys.Key) error
	// Resize re-queries the screen dimensions and redraws.
	Resize() error
	// Sync redraws the screen from the current state.
	Sync() error
	Close()
}
