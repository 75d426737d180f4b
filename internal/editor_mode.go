package internal

import hx "github.com/commanderHR1/hx"

type EditorMode interface {
	hx.Editor

	// Each mode reports which Mode it implements, for the debug line.
	Mode() Mode
}
