package embedded

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

// Configuration keys read by the framework
const (
	PropName    = "framework.name"
	PropVersion = "framework.version"
)

const (
	defaultName    = "kernelbridge.embedded"
	defaultVersion = "1.0.0"
)

// Framework is an in-memory lifecycle.Framework
type Framework struct {
	name    string
	version string
	headers map[string]string

	mu        sync.Mutex
	state     lifecycle.State
	stopped   chan struct{}
	lastEvent lifecycle.EventType
}

var _ lifecycle.Framework = (*Framework)(nil)

func newFramework(config map[string]string) *Framework {
	f := &Framework{
		name:    defaultName,
		version: defaultVersion,
		headers: make(map[string]string, len(config)+2),
		state:   lifecycle.StateInstalled,
	}

	for k, v := range config {
		f.headers[k] = v
	}
	if v := config[PropName]; v != "" {
		f.name = v
	}
	if v := config[PropVersion]; v != "" {
		f.version = v
	}
	f.headers["Bundle-SymbolicName"] = f.name
	f.headers["Bundle-Version"] = f.version

	return f
}

// Init moves an installed or resolved framework to Starting
func (f *Framework) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.initLocked()
	return nil
}

// Start initializes the framework if needed and moves it to Active
func (f *Framework) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == lifecycle.StateStopping {
		return fmt.Errorf("framework %s is stopping", f.name)
	}
	f.initLocked()
	f.state = lifecycle.StateActive
	return nil
}

// Stop moves the framework to Resolved and releases waiters
func (f *Framework) Stop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked(lifecycle.EventStopped)
	return nil
}

// Update stops the framework and starts it again if it was active
func (f *Framework) Update(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	wasActive := f.state == lifecycle.StateActive
	f.stopLocked(lifecycle.EventStoppedUpdate)
	if wasActive {
		f.initLocked()
		f.state = lifecycle.StateActive
	}
	return nil
}

// WaitForStop blocks until the framework stops, the timeout elapses or ctx is
// done. A zero timeout waits indefinitely.
func (f *Framework) WaitForStop(ctx context.Context, timeout time.Duration) (lifecycle.Event, error) {
	if timeout < 0 {
		return lifecycle.Event{}, fmt.Errorf("negative timeout: %s", timeout)
	}

	f.mu.Lock()
	running := f.state == lifecycle.StateStarting || f.state == lifecycle.StateActive
	stopped := f.stopped
	f.mu.Unlock()

	if !running {
		return f.event(), nil
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-stopped:
		return f.event(), nil
	case <-expired:
		return lifecycle.Event{Type: lifecycle.EventWaitTimedOut, Framework: f.name}, nil
	case <-ctx.Done():
		return lifecycle.Event{}, ctx.Err()
	}
}

// State returns the current lifecycle state
func (f *Framework) State() lifecycle.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SymbolicName returns the framework name
func (f *Framework) SymbolicName() string {
	return f.name
}

// Version returns the framework version
func (f *Framework) Version() string {
	return f.version
}

// Headers returns a copy of the framework headers
func (f *Framework) Headers() map[string]string {
	out := make(map[string]string, len(f.headers))
	for k, v := range f.headers {
		out[k] = v
	}
	return out
}

func (f *Framework) initLocked() {
	if f.state == lifecycle.StateInstalled || f.state == lifecycle.StateResolved {
		f.state = lifecycle.StateStarting
		f.stopped = make(chan struct{})
	}
}

func (f *Framework) stopLocked(event lifecycle.EventType) {
	if f.state != lifecycle.StateStarting && f.state != lifecycle.StateActive {
		return
	}
	f.state = lifecycle.StateStopping
	f.lastEvent = event
	close(f.stopped)
	f.state = lifecycle.StateResolved
}

func (f *Framework) event() lifecycle.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	ev := f.lastEvent
	if ev == "" {
		ev = lifecycle.EventStopped
	}
	return lifecycle.Event{Type: ev, Framework: f.name}
}
