package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/commanderHR1/hx/internal"
	"github.com/commanderHR1/hx/internal/build_version"
	"github.com/commanderHR1/hx/internal/keys"
	"github.com/commanderHR1/hx/internal/terminal"
)

const usage = `usage: hx [-hvd] [-o octets_per_line] [-g grouping_bytes] filename

Command options:
    -h     Print this cruft and exits
    -v     Version information
    -d     Show debug information next to the hex view
    -o     Amount of octets per line
    -g     Grouping of bytes in one line

Currently, both these values are advised to be a multiple of 2
to prevent garbled display :)
`

var errMissingFile = errors.New("error: expected filename")

type options struct {
	octetsPerLine int
	grouping      int
	verbose       bool
	version       bool
	path          string
}

// exitError carries a non-default exit status out of runEditor.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		printHelp(stderr, "")
		return 0
	case err != nil:
		printHelp(stderr, err.Error()+"\n")
		return 1
	}
	if opts.version {
		fmt.Fprintln(stdout, build_version.String())
		return 0
	}

	store := internal.NewFileStore()
	file, err := store.Open(opts.path)
	if errors.Is(err, internal.ErrEmptyFile) {
		fmt.Fprintln(stdout, err)
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := runEditor(store, file, opts); err != nil {
		fmt.Fprintln(stderr, err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		return 1
	}
	return 0
}

// parseArgs understands -h, -v, -d, -o N, -g N and one file name. Out of range numbers are
// clamped, unparsable ones fall back to the default.
func parseArgs(args []string) (options, error) {
	opts := options{octetsPerLine: 16, grouping: 4}

	fs := flag.NewFlagSet("hx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.version, "v", false, "")
	fs.BoolVar(&opts.verbose, "d", false, "")
	fs.Func("o", "", func(s string) error {
		opts.octetsPerLine = clampInt(s, 16, 64, 16)
		return nil
	})
	fs.Func("g", "", func(s string) error {
		opts.grouping = clampInt(s, 2, 16, 4)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.version {
		return opts, nil
	}
	if fs.NArg() < 1 {
		return opts, errMissingFile
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func clampInt(s string, lo, hi, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func printHelp(w io.Writer, explanation string) {
	fmt.Fprint(w, explanation+usage)
}

// runEditor owns the terminal for the lifetime of the editor. Every iteration handles a
// pending resize, then waits at most one read timeout for a key and dispatches it.
func runEditor(store internal.FileStore, file *internal.LoadedFile, opts options) error {
	tty, err := terminal.Open()
	if err != nil {
		return err
	}
	defer tty.Close()

	resize := terminal.WatchResize()
	defer resize.Stop()

	// Leave cleanly, restoring the terminal, when asked to terminate.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	decoder := keys.NewDecoder(tty)
	editor, err := internal.NewEditor(tty, decoder, store, file, internal.Config{
		OctetsPerLine: opts.octetsPerLine,
		Grouping:      opts.grouping,
		Verbose:       opts.verbose,
	})
	if err != nil {
		return err
	}
	defer editor.Close()

	for ctx.Err() == nil {
		if resize.Pending() {
			if err := editor.Resize(); err != nil {
				return err
			}
		}
		key, err := decoder.ReadKey()
		if err != nil {
			return &exitError{code: 2, err: err}
		}
		if err := editor.Handle(key); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}
