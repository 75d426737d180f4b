package internal

import (
	"bytes"
	"errors"
	"testing"
)

func TestByteBufferDeleteAt(t *testing.T) {
	tests := []struct {
		name     string
		initial  []byte
		offset   int
		expected []byte
		err      error
	}{
		{"first byte", []byte("ABC"), 0, []byte("BC"), nil},
		{"middle byte", []byte("ABC"), 1, []byte("AC"), nil},
		{"last byte", []byte("ABC"), 2, []byte("AB"), nil},
		{"only byte", []byte("A"), 0, []byte{}, nil},
		{"empty buffer", []byte{}, 0, []byte{}, errEmptyBuffer},
		{"past the end", []byte("AB"), 2, []byte("AB"), errOffsetOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newByteBuffer(append([]byte{}, tt.initial...))
			err := b.DeleteAt(tt.offset)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error %v, got %v", tt.err, err)
			}
			if !bytes.Equal(b.Bytes(), tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, b.Bytes())
			}
			if b.Len() != len(tt.expected) {
				t.Errorf("Expected length %d, got %d", len(tt.expected), b.Len())
			}
		})
	}
}

func TestByteBufferIncrementWraps(t *testing.T) {
	tests := []struct {
		name     string
		initial  byte
		delta    int
		expected byte
	}{
		{"plain increment", 0x41, 1, 0x42},
		{"plain decrement", 0x41, -1, 0x40},
		{"wrap up", 0xff, 1, 0x00},
		{"wrap down", 0x00, -1, 0xff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newByteBuffer([]byte{tt.initial})
			if err := b.IncrementAt(0, tt.delta); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if b.At(0) != tt.expected {
				t.Errorf("Expected %02x, got %02x", tt.expected, b.At(0))
			}
		})
	}
}

func TestByteBufferReplaceAt(t *testing.T) {
	b := newByteBuffer([]byte{0x00, 0x01})
	if err := b.ReplaceAt(1, 0x41); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x00, 0x41}) {
		t.Errorf("Expected 00 41, got % x", b.Bytes())
	}
	if err := b.ReplaceAt(2, 0x41); !errors.Is(err, errOffsetOutOfRange) {
		t.Errorf("Expected out of range, got %v", err)
	}
}

func TestByteBufferInsertAt(t *testing.T) {
	tests := []struct {
		name     string
		initial  []byte
		offset   int
		expected []byte
	}{
		{"front", []byte("BC"), 0, []byte("xBC")},
		{"middle", []byte("BC"), 1, []byte("BxC")},
		{"append", []byte("BC"), 2, []byte("BCx")},
		{"into empty", []byte{}, 0, []byte("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newByteBuffer(append([]byte{}, tt.initial...))
			if err := b.InsertAt(tt.offset, 'x'); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.Equal(b.Bytes(), tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, b.Bytes())
			}
		})
	}

	b := newByteBuffer([]byte("BC"))
	if err := b.InsertAt(3, 'x'); !errors.Is(err, errOffsetOutOfRange) {
		t.Errorf("Expected out of range, got %v", err)
	}
}
