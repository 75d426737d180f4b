package internal

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Severity of the message shown on the status line.
type Severity int

const (
	SEVERITY_INFO Severity = iota
	SEVERITY_WARNING
	SEVERITY_ERROR

	// Status messages are cut to this many terminal columns.
	cMaxStatusWidth = 119
)

func (s Severity) String() string {
	switch s {
	case SEVERITY_WARNING:
		return "warning"
	case SEVERITY_ERROR:
		return "error"
	}
	return "info"
}

type status struct {
	severity Severity
	msg      string
}

// setStatus overwrites the status line. Messages wider than cMaxStatusWidth columns are
// truncated, never wrapped.
func (e *editorImpl) setStatus(severity Severity, format string, args ...any) {
	e.status = status{
		severity: severity,
		msg:      runewidth.Truncate(fmt.Sprintf(format, args...), cMaxStatusWidth, ""),
	}
}
