package kernel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/kernelbridge/internal/bootstrap"
	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

const opInstantiate = "instantiate"

// Resolver locates the kernel type to load
type Resolver interface {
	Load() (bootstrap.KernelType, error)
}

// Loaded is a kernel instance paired with the framework it prepared
type Loaded struct {
	Type      bootstrap.KernelType
	Kernel    any
	Framework lifecycle.Framework
}

// Loader turns a kernel type into a (kernel, framework) pair
type Loader struct {
	resolver Resolver
	logger   *zap.Logger
}

// NewLoader creates a loader
func NewLoader(resolver Resolver, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		resolver: resolver,
		logger:   logger,
	}
}

// Load resolves, instantiates and prepares one kernel. config is passed to
// Prepare unchanged. Nothing is retried.
func (l *Loader) Load(config map[string]string) (*Loaded, error) {
	kt, err := l.resolver.Load()
	if err != nil {
		if lifecycle.KindOf(err) == lifecycle.KindBootstrap {
			return nil, err
		}
		return nil, lifecycle.Wrap(lifecycle.KindBootstrap, "bootstrap", err)
	}

	k, err := instantiate(kt)
	if err != nil {
		return nil, err
	}

	preparer, ok := k.(Preparer)
	if !ok {
		return nil, lifecycle.Errorf(lifecycle.KindContract, lifecycle.OpPrepare,
			"kernel %s (%T) has no Prepare(map[string]string) method", kt.Name, k)
	}

	var framework lifecycle.Framework
	err = Invoke(k, lifecycle.OpPrepare, func() error {
		var err error
		framework, err = preparer.Prepare(config)
		return err
	})
	if err != nil {
		return nil, lifecycle.Wrap(lifecycle.KindKernelPrepare, lifecycle.OpPrepare, err)
	}
	if framework == nil {
		return nil, lifecycle.Errorf(lifecycle.KindKernelPrepare, lifecycle.OpPrepare,
			"kernel %s returned no framework", kt.Name)
	}

	l.logger.Info("Kernel loaded",
		zap.String("kernel", kt.Name),
		zap.String("framework", framework.SymbolicName()),
		zap.String("version", framework.Version()))

	return &Loaded{
		Type:      kt,
		Kernel:    k,
		Framework: framework,
	}, nil
}

// instantiate runs the kernel type's no-argument constructor
func instantiate(kt bootstrap.KernelType) (k any, err error) {
	if kt.New == nil {
		return nil, lifecycle.Errorf(lifecycle.KindInstantiation, opInstantiate,
			"kernel type %s is abstract", kt.Name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			k = nil
			err = lifecycle.Errorf(lifecycle.KindInstantiation, opInstantiate,
				"kernel type %s constructor panicked: %v", kt.Name, rec)
		}
	}()

	k, err = kt.New()
	if err != nil {
		return nil, lifecycle.Wrap(lifecycle.KindInstantiation, opInstantiate,
			fmt.Errorf("kernel type %s: %w", kt.Name, err))
	}
	if k == nil {
		return nil, lifecycle.Errorf(lifecycle.KindInstantiation, opInstantiate,
			"kernel type %s constructed nil", kt.Name)
	}
	return k, nil
}
