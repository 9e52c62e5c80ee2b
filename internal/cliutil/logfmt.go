package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rewatch-io/rewatch/internal/reloader"
)

// LogRecord represents a structured watch-loop event ready for JSON
// encoding.
type LogRecord struct {
	Timestamp time.Time `json:"ts"`
	Event     string    `json:"event"`
	Path      string    `json:"path,omitempty"`
	Pid       int       `json:"pid,omitempty"`
	Message   string    `json:"msg,omitempty"`
}

// NewLogRecord converts a reloader event into a structured log record.
func NewLogRecord(event reloader.Event) LogRecord {
	return LogRecord{
		Timestamp: event.Timestamp,
		Event:     string(event.Type),
		Path:      event.Path,
		Pid:       event.Pid,
		Message:   event.Message,
	}
}

// EncodeLogEvent encodes a watch-loop event to JSON, reporting errors to
// stderr if needed.
func EncodeLogEvent(enc *json.Encoder, stderr io.Writer, event reloader.Event) {
	if enc == nil {
		return
	}
	record := NewLogRecord(event)
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if err := enc.Encode(&record); err != nil {
		fmt.Fprintf(stderr, "error: encode log: %v\n", err)
	}
}

// FormatLogEvent renders a watch-loop event as a human-readable line.
func FormatLogEvent(event reloader.Event) string {
	switch event.Type {
	case reloader.EventChildStarted:
		return fmt.Sprintf("child started (pid %d)", event.Pid)
	case reloader.EventFileChanged:
		return fmt.Sprintf("change detected: %s", event.Path)
	case reloader.EventReloading:
		return fmt.Sprintf("reloading (stopping pid %d)", event.Pid)
	case reloader.EventShutdown:
		return "shutting down"
	default:
		return string(event.Type)
	}
}
