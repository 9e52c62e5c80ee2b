// Package reloader drives the poll-and-restart loop around a supervised
// child process. The loop deliberately polls modification times on a
// fixed interval instead of subscribing to file-system events; that keeps
// the behaviour identical on every platform the tool runs on.
package reloader

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rewatch-io/rewatch/internal/metrics"
)

// Handle is the watchdog's view of a running child process.
type Handle interface {
	Pid() int
	Terminate() error
	Kill() error
}

// TreeKiller signals the descendants of a pid, never the pid itself.
type TreeKiller interface {
	TerminateTree(pid int) error
}

// FileSource enumerates the paths whose modification times are tracked.
type FileSource interface {
	Files() []string
}

// Options configures a Watchdog.
type Options struct {
	Files    FileSource
	Start    func() (Handle, error)
	Killer   TreeKiller
	Interval time.Duration
	// OnEvent receives lifecycle events; may be nil.
	OnEvent func(Event)
}

// Watchdog owns the current child handle and the watch table. The table
// is touched only by the loop goroutine; the handle lives in an
// atomically swapped cell because the signal handler reads it at
// arbitrary points, including mid-restart.
type Watchdog struct {
	files    FileSource
	start    func() (Handle, error)
	killer   TreeKiller
	interval time.Duration
	onEvent  func(Event)

	mtimes  map[string]time.Time
	current atomic.Pointer[Handle]

	notify func(chan<- os.Signal)
	sleep  func(context.Context, time.Duration) error
	exit   func(int)
}

// New constructs a watchdog from opts.
func New(opts Options) *Watchdog {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second
	}
	return &Watchdog{
		files:    opts.Files,
		start:    opts.Start,
		killer:   opts.Killer,
		interval: interval,
		onEvent:  opts.OnEvent,
		mtimes:   make(map[string]time.Time),
		notify: func(ch chan<- os.Signal) {
			signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		},
		sleep: sleepWithContext,
		exit:  os.Exit,
	}
}

// Run launches the initial child and blocks in the watch loop. It returns
// only when ctx is cancelled or a (re)launch fails; the signal-triggered
// shutdown path exits the process instead of returning.
func (w *Watchdog) Run(ctx context.Context) error {
	child, err := w.start()
	if err != nil {
		return fmt.Errorf("launch child: %w", err)
	}
	w.setCurrent(child)
	w.emit(Event{Type: EventChildStarted, Pid: child.Pid()})
	metrics.IncrementChildStarts()

	sigCh := make(chan os.Signal, 1)
	w.notify(sigCh)
	go w.awaitSignal(sigCh)

	for {
		if err := w.sleep(ctx, w.interval); err != nil {
			return err
		}
		if w.poll() {
			if err := w.reload(); err != nil {
				return err
			}
		}
	}
}

// poll stats every enumerated file and updates the watch table. A path
// seen for the first time only records its baseline; a reload is needed
// iff some recorded path's timestamp strictly increased. Unstattable
// paths are skipped and keep their prior record.
func (w *Watchdog) poll() bool {
	files := w.files.Files()
	metrics.SetWatchedFiles(len(files))

	needsReload := false
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		mtime := info.ModTime()
		prev, seen := w.mtimes[path]
		switch {
		case !seen:
			w.mtimes[path] = mtime
		case mtime.After(prev):
			w.mtimes[path] = mtime
			needsReload = true
			w.emit(Event{Type: EventFileChanged, Path: path})
		}
	}
	return needsReload
}

// reload tears down the current child's tree, asks the child itself to
// exit gracefully, then installs a fresh child as current. The old child
// is signalled before the replacement exists, so at most two children are
// live at once and only transiently.
func (w *Watchdog) reload() error {
	current := w.currentChild()
	if current != nil {
		w.emit(Event{Type: EventReloading, Pid: current.Pid()})
		_ = w.killer.TerminateTree(current.Pid())
		_ = current.Terminate()
	}

	next, err := w.start()
	if err != nil {
		return fmt.Errorf("relaunch child: %w", err)
	}
	w.setCurrent(next)
	w.emit(Event{Type: EventChildStarted, Pid: next.Pid()})
	metrics.IncrementReloads()
	metrics.IncrementChildStarts()
	return nil
}

func (w *Watchdog) awaitSignal(ch <-chan os.Signal) {
	<-ch
	w.shutdown()
}

// shutdown is the sole exit from the loop: kill the child's tree, kill
// the child, leave with a success status. It reads the handle in effect
// at signal-delivery time, never a captured one.
func (w *Watchdog) shutdown() {
	if current := w.currentChild(); current != nil {
		_ = w.killer.TerminateTree(current.Pid())
		_ = current.Kill()
	}
	w.emit(Event{Type: EventShutdown})
	w.exit(0)
}

func (w *Watchdog) setCurrent(h Handle) {
	w.current.Store(&h)
}

func (w *Watchdog) currentChild() Handle {
	p := w.current.Load()
	if p == nil {
		return nil
	}
	return *p
}

func (w *Watchdog) emit(event Event) {
	if w.onEvent == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	w.onEvent(event)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
