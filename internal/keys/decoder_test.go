package keys

import (
	"errors"
	"io"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

var errExhausted = errors.New("script exhausted")

// step is one scripted Read call: a byte, a timeout (zero bytes) or an error.
type step struct {
	b       byte
	timeout bool
	err     error
}

type scriptedSource struct {
	steps []step
}

func (s *scriptedSource) Read(p []byte) (int, error) {
	if len(s.steps) == 0 {
		return 0, errExhausted
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	switch {
	case st.err != nil:
		return 0, st.err
	case st.timeout:
		return 0, nil
	}
	p[0] = st.b
	return 1, nil
}

func bytesOf(bs ...byte) []step {
	steps := make([]step, 0, len(bs))
	for _, b := range bs {
		steps = append(steps, step{b: b})
	}
	return steps
}

func timeout() step { return step{timeout: true} }

func TestReadKeyDecodesSequences(t *testing.T) {
	tests := []struct {
		name     string
		steps    []step
		expected Key
	}{
		{"plain letter", bytesOf('x'), Key('x')},
		{"ctrl-q", bytesOf(0x11), KeyCtrlQ},
		{"arrow up", bytesOf(0x1b, '[', 'A'), KeyUp},
		{"arrow down", bytesOf(0x1b, '[', 'B'), KeyDown},
		{"arrow right", bytesOf(0x1b, '[', 'C'), KeyRight},
		{"arrow left", bytesOf(0x1b, '[', 'D'), KeyLeft},
		{"home letter form", bytesOf(0x1b, '[', 'H'), KeyHome},
		{"end letter form", bytesOf(0x1b, '[', 'F'), KeyEnd},
		{"home tilde form", bytesOf(0x1b, '[', '1', '~'), KeyHome},
		{"end tilde form", bytesOf(0x1b, '[', '4', '~'), KeyEnd},
		{"page up", bytesOf(0x1b, '[', '5', '~'), KeyPageUp},
		{"page down", bytesOf(0x1b, '[', '6', '~'), KeyPageDown},
		{"lone escape", []step{{b: 0x1b}, timeout()}, KeyEsc},
		{"escape then one byte", []step{{b: 0x1b}, {b: '['}, timeout()}, KeyEsc},
		{"unknown letter continuation", bytesOf(0x1b, '[', 'Z'), KeyEsc},
		{"unknown tilde continuation", bytesOf(0x1b, '[', '3', '~'), KeyEsc},
		{"not a CSI", bytesOf(0x1b, 'O', 'P'), KeyEsc},
		{"digit without tilde", bytesOf(0x1b, '[', '1', ';'), KeyEsc},
		{"timeout", []step{timeout()}, KeyNone},
		{"eof counts as timeout", []step{{err: io.EOF}}, KeyNone},
		{"interrupted", []step{{err: &os.PathError{Op: "read", Path: "/dev/tty", Err: unix.EINTR}}}, KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(&scriptedSource{steps: tt.steps})
			key, err := d.ReadKey()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if key != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, key)
			}
		})
	}
}

func TestReadKeyResumesAfterDiscardedSequence(t *testing.T) {
	d := NewDecoder(&scriptedSource{steps: bytesOf(0x1b, '[', 'Z', 'j')})
	if key, _ := d.ReadKey(); key != KeyEsc {
		t.Fatalf("Expected esc, got %v", key)
	}
	if key, _ := d.ReadKey(); key != Key('j') {
		t.Errorf("Expected j, got %v", key)
	}
}

func TestReadKeyPropagatesReadFailure(t *testing.T) {
	d := NewDecoder(&scriptedSource{steps: []step{{err: unix.EIO}}})
	key, err := d.ReadKey()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !errors.Is(err, unix.EIO) {
		t.Errorf("Expected wrapped EIO, got %v", err)
	}
	if key != KeyNone {
		t.Errorf("Expected none, got %v", key)
	}
}

func TestWaitKeySkipsTimeouts(t *testing.T) {
	d := NewDecoder(&scriptedSource{steps: []step{timeout(), timeout(), {b: 'g'}}})
	key, err := d.WaitKey()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if key != Key('g') {
		t.Errorf("Expected g, got %v", key)
	}
}

func TestWaitKeyGivesUpWhenInterrupted(t *testing.T) {
	d := NewDecoder(&scriptedSource{steps: []step{timeout(), {err: unix.EINTR}, {b: 'g'}}})
	key, err := d.WaitKey()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if key != KeyNone {
		t.Errorf("Expected none, got %v", key)
	}
}

func TestKeyHelpers(t *testing.T) {
	tests := []struct {
		key   Key
		isHex bool
		value byte
	}{
		{'0', true, 0},
		{'9', true, 9},
		{'a', true, 10},
		{'F', true, 15},
		{'g', false, 0},
		{KeyUp, false, 0},
	}
	for _, tt := range tests {
		if got := tt.key.IsHex(); got != tt.isHex {
			t.Errorf("%v: expected IsHex %v, got %v", tt.key, tt.isHex, got)
		}
		if got := tt.key.HexValue(); got != tt.value {
			t.Errorf("%v: expected value %d, got %d", tt.key, tt.value, got)
		}
	}
	if !KeyPageDown.IsVirtual() || Key('a').IsVirtual() {
		t.Error("IsVirtual misclassified keys")
	}
	if KeyUp.String() != "up" || Key('q').String() != "q" || Key(0x01).String() != "0x01" {
		t.Errorf("unexpected key names: %s %s %s", KeyUp, Key('q'), Key(0x01))
	}
}
