package reloader

import "time"

// EventType identifies a watch-loop lifecycle event.
type EventType string

const (
	EventChildStarted EventType = "child-started"
	EventFileChanged  EventType = "file-changed"
	EventReloading    EventType = "reloading"
	EventShutdown     EventType = "shutdown"
)

// Event describes a single watch-loop occurrence for logging.
type Event struct {
	Timestamp time.Time
	Type      EventType
	Path      string
	Pid       int
	Message   string
}
