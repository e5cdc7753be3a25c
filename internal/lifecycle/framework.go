package lifecycle

import (
	"context"
	"time"
)

// Operation names used for routing, logging and metrics
const (
	OpPrepare      = "prepare"
	OpInit         = "init"
	OpStart        = "start"
	OpStop         = "stop"
	OpUpdate       = "update"
	OpWaitForStop  = "waitForStop"
	OpState        = "state"
	OpSymbolicName = "symbolicName"
	OpVersion      = "version"
	OpHeaders      = "headers"
)

// Framework is the lifecycle contract a host drives.
type Framework interface {
	Init(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Update(ctx context.Context) error
	WaitForStop(ctx context.Context, timeout time.Duration) (Event, error)
	State() State
	SymbolicName() string
	Version() string
	Headers() map[string]string
}

// State represents the framework lifecycle state
type State int

const (
	StateInstalled State = iota
	StateStarting
	StateActive
	StateStopping
	StateResolved
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateInstalled:
		return "installed"
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StateStopping:
		return "stopping"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// EventType describes why WaitForStop returned
type EventType string

const (
	EventStopped       EventType = "stopped"
	EventStoppedUpdate EventType = "stopped_update"
	EventWaitTimedOut  EventType = "wait_timedout"
)

// Event is reported by WaitForStop.
type Event struct {
	Type      EventType `json:"type"`
	Framework string    `json:"framework"`
}

// Factory creates frameworks from string configuration.
type Factory interface {
	NewFramework(ctx context.Context, configuration map[string]string) (Framework, error)
}
