// Package terminal is the editor's view of the controlling terminal: raw mode with a
// bounded read timeout, window size queries, and resize notifications.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

const (
	ttyPath = "/dev/tty"

	// VTIME granularity is a tenth of a second. Zero would turn every read into a busy loop.
	readTimeout = 100 * time.Millisecond

	// Reset colours, home the cursor, clear the screen.
	clearScreen = "\x1b[0m\x1b[H\x1b[2J"
)

var ErrNotInteractive = errors.New("input is not a TTY")

// Terminal is a tty in raw mode. Reads return after at most readTimeout, with zero bytes
// (io.EOF) when nothing was typed.
type Terminal struct {
	tty *term.Term
	out io.Writer
	fd  int
}

// Open puts the controlling terminal into raw mode: no canonical processing, no echo, no
// signal characters, 8 bit chars, VMIN=0 and VTIME=1.
func Open() (*Terminal, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotInteractive
	}
	tty, err := term.Open(ttyPath, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("unable to set terminal to raw mode: %w", err)
	}
	if err := tty.SetReadTimeout(readTimeout); err != nil {
		tty.Restore()
		tty.Close()
		return nil, fmt.Errorf("unable to set terminal read timeout: %w", err)
	}
	t := &Terminal{tty: tty, out: os.Stdout, fd: int(os.Stdout.Fd())}
	if _, err := io.WriteString(t.out, clearScreen); err != nil {
		t.Close()
		return nil, fmt.Errorf("unable to clear screen: %w", err)
	}
	return t, nil
}

func (t *Terminal) Read(p []byte) (int, error) {
	return t.tty.Read(p)
}

// Write emits p in a single write call.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the current number of rows and columns.
func (t *Terminal) Size() (int, int, error) {
	return WindowSize(t.fd)
}

// Close clears the screen and restores the terminal to the state it had before Open.
func (t *Terminal) Close() error {
	io.WriteString(t.out, clearScreen)
	if err := t.tty.Restore(); err != nil {
		t.tty.Close()
		return fmt.Errorf("unable to restore terminal: %w", err)
	}
	return t.tty.Close()
}

// WindowSize queries the window size of the terminal behind fd.
func WindowSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query terminal size: %w", err)
	}
	return int(ws.Row), int(ws.Col), nil
}

// ResizeWatcher records SIGWINCH deliveries. The signal goroutine only raises a flag; the
// main loop consumes it with Pending and does the re-query and redraw itself.
type ResizeWatcher struct {
	pending atomic.Bool
	sigs    chan os.Signal
	done    chan struct{}
}

func WatchResize() *ResizeWatcher {
	w := &ResizeWatcher{
		sigs: make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(w.sigs, unix.SIGWINCH)
	go func() {
		defer close(w.done)
		for range w.sigs {
			w.pending.Store(true)
		}
	}()
	return w
}

// Notify raises the pending flag as if a resize signal had arrived.
func (w *ResizeWatcher) Notify() {
	w.pending.Store(true)
}

// Pending reports whether a resize happened since the last call, and clears the flag.
func (w *ResizeWatcher) Pending() bool {
	return w.pending.Swap(false)
}

func (w *ResizeWatcher) Stop() {
	signal.Stop(w.sigs)
	close(w.sigs)
	<-w.done
}
