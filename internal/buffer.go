package internal

import "errors"

var (
	errEmptyBuffer      = errors.New("buffer is empty")
	errOffsetOutOfRange = errors.New("offset out of range")
)

// byteBuffer owns the file contents being edited. Its length is always len(contents); the
// slice never leaves the editor except as a read-only view handed to the file store.
type byteBuffer struct {
	contents []byte
}

func newByteBuffer(contents []byte) *byteBuffer {
	return &byteBuffer{contents: contents}
}

func (b *byteBuffer) Len() int {
	return len(b.contents)
}

func (b *byteBuffer) At(offset int) byte {
	return b.contents[offset]
}

func (b *byteBuffer) Bytes() []byte {
	return b.contents
}

func (b *byteBuffer) valid(offset int) bool {
	return offset >= 0 && offset < len(b.contents)
}

// DeleteAt removes the byte at offset, shifting the tail left by one.
func (b *byteBuffer) DeleteAt(offset int) error {
	if len(b.contents) <= 0 {
		return errEmptyBuffer
	}
	if !b.valid(offset) {
		return errOffsetOutOfRange
	}
	copy(b.contents[offset:], b.contents[offset+1:])
	b.contents = b.contents[:len(b.contents)-1]
	return nil
}

func (b *byteBuffer) ReplaceAt(offset int, value byte) error {
	if !b.valid(offset) {
		return errOffsetOutOfRange
	}
	b.contents[offset] = value
	return nil
}

// IncrementAt adds delta to the byte at offset, wrapping around modulo 256.
func (b *byteBuffer) IncrementAt(offset int, delta int) error {
	if !b.valid(offset) {
		return errOffsetOutOfRange
	}
	b.contents[offset] = byte(int(b.contents[offset]) + delta)
	return nil
}

func (b *byteBuffer) Append(value byte) {
	b.contents = append(b.contents, value)
}

// InsertAt puts value at offset and shifts the tail right. Offset may equal Len, which
// appends.
func (b *byteBuffer) InsertAt(offset int, value byte) error {
	if offset == len(b.contents) {
		b.Append(value)
		return nil
	}
	if !b.valid(offset) {
		return errOffsetOutOfRange
	}
	b.contents = append(b.contents, 0)
	copy(b.contents[offset+1:], b.contents[offset:])
	b.contents[offset] = value
	return nil
}
