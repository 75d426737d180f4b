package terminal

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestResizeWatcherPendingClearsFlag(t *testing.T) {
	w := WatchResize()
	defer w.Stop()

	if w.Pending() {
		t.Fatal("Expected no pending resize on a fresh watcher")
	}
	w.Notify()
	if !w.Pending() {
		t.Error("Expected a pending resize after Notify")
	}
	if w.Pending() {
		t.Error("Expected Pending to clear the flag")
	}
}

func TestResizeWatcherObservesSignal(t *testing.T) {
	w := WatchResize()
	defer w.Stop()

	if err := unix.Kill(os.Getpid(), unix.SIGWINCH); err != nil {
		t.Fatalf("Failed to send SIGWINCH: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Pending() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("Expected SIGWINCH to raise the pending flag")
}

func TestWindowSizeOnNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, _, err := WindowSize(int(f.Fd())); err == nil {
		t.Error("Expected an error querying the size of a regular file")
	}
}
