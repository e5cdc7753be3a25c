package embedded

import (
	"context"
	"errors"
	"sync"

	"github.com/GriffinCanCode/kernelbridge/internal/access"
	"github.com/GriffinCanCode/kernelbridge/internal/bootstrap"
	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

// Name is the bootstrap name of this kernel
const Name = "embedded"

var (
	ErrNotPrepared     = errors.New("kernel has not been prepared")
	ErrAlreadyPrepared = errors.New("kernel has already been prepared")
)

func init() {
	bootstrap.Register(bootstrap.KernelType{
		Name:        Name,
		Description: "In-process reference kernel",
		New: func() (any, error) {
			return New(), nil
		},
	})
}

// Kernel owns one Framework and drives its init/start phases
type Kernel struct {
	members map[string]*access.Flag

	mu        sync.Mutex
	framework *Framework
}

// New creates a kernel with all operations restricted
func New() *Kernel {
	return &Kernel{
		members: map[string]*access.Flag{
			lifecycle.OpPrepare: access.NewFlag(lifecycle.OpPrepare, false),
			lifecycle.OpInit:    access.NewFlag(lifecycle.OpInit, false),
			lifecycle.OpStart:   access.NewFlag(lifecycle.OpStart, false),
		},
	}
}

// Member returns the flag guarding op
func (k *Kernel) Member(op string) (access.Member, bool) {
	m, ok := k.members[op]
	if !ok {
		return nil, false
	}
	return m, true
}

// Prepare builds the framework. It may run once per kernel.
func (k *Kernel) Prepare(config map[string]string) (lifecycle.Framework, error) {
	if err := k.members[lifecycle.OpPrepare].Check(); err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.framework != nil {
		return nil, ErrAlreadyPrepared
	}
	k.framework = newFramework(config)
	return k.framework, nil
}

// Init moves the framework to Starting
func (k *Kernel) Init(ctx context.Context) error {
	if err := k.members[lifecycle.OpInit].Check(); err != nil {
		return err
	}

	fw, err := k.prepared()
	if err != nil {
		return err
	}
	return fw.Init(ctx)
}

// Start moves the framework to Active. With blocking set it returns only
// once the framework stops or ctx is done.
func (k *Kernel) Start(ctx context.Context, blocking bool) error {
	if err := k.members[lifecycle.OpStart].Check(); err != nil {
		return err
	}

	fw, err := k.prepared()
	if err != nil {
		return err
	}
	if err := fw.Start(ctx); err != nil {
		return err
	}

	if blocking {
		_, err := fw.WaitForStop(ctx, 0)
		return err
	}
	return nil
}

func (k *Kernel) prepared() (*Framework, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.framework == nil {
		return nil, ErrNotPrepared
	}
	return k.framework, nil
}
