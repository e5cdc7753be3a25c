package access

import (
	"errors"
	"fmt"
	"sync"
)

// ErrRestricted is returned when a member is invoked without access
var ErrRestricted = errors.New("member is not accessible")

// Member is a restricted, invocable unit with a visibility flag
type Member interface {
	Name() string
	Accessible() bool
	SetAccessible(accessible bool)
}

// elevator is implemented by members that track nested elevation themselves
type elevator interface {
	elevate() (restore func())
}

// Flag is a Member backed by a base visibility flag plus an elevation count.
// Elevations of the same Flag nest and overlap safely; the member stays
// accessible until the last one is released. Releasing an elevation also
// puts back the base visibility seen when it was taken.
type Flag struct {
	name string

	mu       sync.Mutex
	base     bool
	elevated int
}

// NewFlag creates a flag with the given base visibility
func NewFlag(name string, accessible bool) *Flag {
	return &Flag{name: name, base: accessible}
}

// Name returns the member name
func (f *Flag) Name() string {
	return f.name
}

// Accessible reports whether the member may currently be invoked
func (f *Flag) Accessible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.base || f.elevated > 0
}

// SetAccessible sets the base visibility. Outstanding elevations are kept.
func (f *Flag) SetAccessible(accessible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.base = accessible
}

// Check returns ErrRestricted unless the member is accessible
func (f *Flag) Check() error {
	if !f.Accessible() {
		return fmt.Errorf("%s: %w", f.name, ErrRestricted)
	}
	return nil
}

func (f *Flag) elevate() func() {
	f.mu.Lock()
	prior := f.base
	f.elevated++
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.elevated--
			f.base = prior
			f.mu.Unlock()
		})
	}
}
