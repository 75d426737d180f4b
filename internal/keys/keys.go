package keys

import "fmt"

// Key is a decoded keypress. Values below 256 are the raw byte that was read; values from
// KeyUp upwards are virtual keys assembled from escape sequences.
type Key int

const (
	// KeyNone means nothing was decoded this tick (timeout or interrupted read).
	KeyNone Key = -1

	KeyCtrlQ     Key = 0x11 // DC1, quits.
	KeyCtrlS     Key = 0x13 // DC3, saves.
	KeyEnter     Key = 0x0d
	KeyEsc       Key = 0x1b
	KeyBackspace Key = 0x7f
)

// Virtual keys.
const (
	KeyUp Key = 1000 + iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// IsVirtual reports whether k has no single-byte representation.
func (k Key) IsVirtual() bool {
	return k >= KeyUp
}

// IsHex reports whether k is one of 0-9, a-f or A-F.
func (k Key) IsHex() bool {
	return (k >= '0' && k <= '9') || (k >= 'a' && k <= 'f') || (k >= 'A' && k <= 'F')
}

// HexValue returns the nibble value of a hex digit key. Non-hex keys yield 0.
func (k Key) HexValue() byte {
	switch {
	case k >= '0' && k <= '9':
		return byte(k - '0')
	case k >= 'a' && k <= 'f':
		return byte(k-'a') + 10
	case k >= 'A' && k <= 'F':
		return byte(k-'A') + 10
	}
	return 0
}

// IsPrint reports whether k is a printable ASCII character.
func (k Key) IsPrint() bool {
	return k >= 0x20 && k < 0x7f
}

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyEsc:
		return "esc"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	}
	if k.IsPrint() {
		return string(rune(k))
	}
	return fmt.Sprintf("0x%02x", int(k))
}
