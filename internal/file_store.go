package internal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

const (
	// rw-rw-rw-
	cReadWriteFileMode = 0666
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNotRegular   = errors.New("not a regular file")
	ErrReadFailure  = errors.New("read failure")
	ErrEmptyFile    = errors.New("file is empty")
	ErrOpenFailure  = errors.New("open failure")
	ErrWriteFailure = errors.New("write failure")
)

// FileError describes a failed file store operation. Kind is one of the Err* sentinels
// above; both Kind and the underlying error match with errors.Is.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("Cannot open file '%s': %v", e.Path, e.Err)
	case ErrNotRegular:
		return fmt.Sprintf("File '%s' is not a regular file", e.Path)
	case ErrReadFailure:
		return fmt.Sprintf("Unable to read file contents: %v", e.Err)
	case ErrEmptyFile:
		return "File is empty."
	case ErrOpenFailure:
		return fmt.Sprintf("Unable to open '%s' for writing: %v", e.Path, e.Err)
	case ErrWriteFailure:
		return fmt.Sprintf("Unable to write to file: %v", e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// LoadedFile is a whole file read into memory.
type LoadedFile struct {
	Path     string
	Contents []byte
	ReadOnly bool
}

// FileStore reads and overwrites whole files.
type FileStore interface {
	Open(path string) (*LoadedFile, error)
	Write(path string, contents []byte) error
}

type osFileStore struct{}

var _ FileStore = osFileStore{}

func NewFileStore() FileStore {
	return osFileStore{}
}

func (osFileStore) Open(path string) (*LoadedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileError{Kind: ErrNotFound, Path: path, Err: err}
		}
		return nil, &FileError{Kind: ErrReadFailure, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &FileError{Kind: ErrNotRegular, Path: path}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Kind: ErrNotFound, Path: path, Err: err}
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, &FileError{Kind: ErrReadFailure, Path: path, Err: err}
	}
	if len(contents) == 0 {
		return nil, &FileError{Kind: ErrEmptyFile, Path: path}
	}

	return &LoadedFile{
		Path:     path,
		Contents: contents,
		ReadOnly: unix.Access(path, unix.W_OK) != nil,
	}, nil
}

// Write replaces the file at path with contents.
func (osFileStore) Write(path string, contents []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, cReadWriteFileMode)
	if err != nil {
		return &FileError{Kind: ErrOpenFailure, Path: path, Err: err}
	}
	defer file.Close()

	// Single write of the whole buffer.
	if _, err := file.Write(contents); err != nil {
		return &FileError{Kind: ErrWriteFailure, Path: path, Err: err}
	}
	if err := file.Sync(); err != nil {
		return &FileError{Kind: ErrWriteFailure, Path: path, Err: err}
	}
	return nil
}
