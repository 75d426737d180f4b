package keys

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// ErrInterrupted is returned by the byte reader when a read was cut short by a signal.
// Decoder callers never see it: it is folded into KeyNone.
var ErrInterrupted = errors.New("read interrupted")

// Decoder turns the raw byte stream of a terminal in raw mode into Keys. The source is
// expected to block for a bounded time only: a read that returns zero bytes (or io.EOF)
// is a timeout.
type Decoder struct {
	src io.Reader
}

func NewDecoder(src io.Reader) *Decoder {
	return &Decoder{src: src}
}

// ReadKey decodes at most one key. A timeout or an interrupted read yields KeyNone and no
// error, so the caller can treat it as an idle tick. Any other read failure is returned.
func (d *Decoder) ReadKey() (Key, error) {
	c, ok, err := d.readByte()
	if errors.Is(err, ErrInterrupted) {
		return KeyNone, nil
	}
	if err != nil {
		return KeyNone, err
	}
	if !ok {
		return KeyNone, nil
	}
	if Key(c) != KeyEsc {
		return Key(c), nil
	}
	return d.readEscape()
}

// WaitKey blocks across timeouts until a key arrives. Used for the second key of a two key
// sequence ("gg", a hex pair). An interrupted read gives up and returns KeyNone.
func (d *Decoder) WaitKey() (Key, error) {
	for {
		c, ok, err := d.readByte()
		if errors.Is(err, ErrInterrupted) {
			return KeyNone, nil
		}
		if err != nil {
			return KeyNone, err
		}
		if !ok {
			continue
		}
		if Key(c) != KeyEsc {
			return Key(c), nil
		}
		return d.readEscape()
	}
}

// readEscape runs after an ESC byte. A sequence that runs out within the timeout is a
// plain Escape, and so is any continuation not in the table; its bytes are dropped.
func (d *Decoder) readEscape() (Key, error) {
	var seq [3]byte
	for i := 0; i < 2; i++ {
		c, ok, err := d.readByte()
		if err != nil && !errors.Is(err, ErrInterrupted) {
			return KeyNone, err
		}
		if !ok {
			return KeyEsc, nil
		}
		seq[i] = c
	}
	if seq[0] != '[' {
		return KeyEsc, nil
	}

	if seq[1] >= '0' && seq[1] <= '9' {
		c, ok, err := d.readByte()
		if err != nil && !errors.Is(err, ErrInterrupted) {
			return KeyNone, err
		}
		if !ok {
			return KeyEsc, nil
		}
		seq[2] = c
		if seq[2] == '~' {
			switch seq[1] {
			case '1':
				return KeyHome, nil
			case '4':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
		}
		return KeyEsc, nil
	}

	switch seq[1] {
	case 'A':
		return KeyUp, nil
	case 'B':
		return KeyDown, nil
	case 'C':
		return KeyRight, nil
	case 'D':
		return KeyLeft, nil
	case 'H':
		return KeyHome, nil
	case 'F':
		return KeyEnd, nil
	}
	return KeyEsc, nil
}

// readByte reads a single byte. ok is false on timeout; err is ErrInterrupted when the
// read was interrupted by a signal.
func (d *Decoder) readByte() (byte, bool, error) {
	var b [1]byte
	n, err := d.src.Read(b[:])
	if n == 1 {
		return b[0], true, nil
	}
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return 0, false, nil
	case errors.Is(err, unix.EINTR):
		return 0, false, ErrInterrupted
	}
	return 0, false, fmt.Errorf("unable to read from terminal: %w", err)
}
