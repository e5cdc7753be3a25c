package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

const opBootstrap = "bootstrap"

// Options selects the kernel type to load
type Options struct {
	Name       string // explicit kernel name, wins over everything else
	Descriptor string // path to a descriptor file
	Default    string // used when neither Name nor Descriptor is set
}

// Bootstrap resolves a KernelType from a registry
type Bootstrap struct {
	registry *Registry
	opts     Options
	logger   *zap.Logger
}

// New creates a bootstrap over the process-wide registry
func New(opts Options, logger *zap.Logger) *Bootstrap {
	return NewWithRegistry(defaultRegistry, opts, logger)
}

// NewWithRegistry creates a bootstrap over the given registry
func NewWithRegistry(registry *Registry, opts Options, logger *zap.Logger) *Bootstrap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bootstrap{
		registry: registry,
		opts:     opts,
		logger:   logger,
	}
}

// Load resolves the kernel type. It is not retried; every failure is a
// lifecycle.KindBootstrap error.
func (b *Bootstrap) Load() (KernelType, error) {
	name, source, err := b.resolveName()
	if err != nil {
		return KernelType{}, lifecycle.Wrap(lifecycle.KindBootstrap, opBootstrap, err)
	}

	kt, ok := b.registry.Lookup(name)
	if !ok {
		return KernelType{}, lifecycle.Errorf(lifecycle.KindBootstrap, opBootstrap, "kernel type not found: %s", name)
	}

	b.logger.Debug("Kernel type resolved",
		zap.String("kernel", kt.Name),
		zap.String("source", source))
	return kt, nil
}

func (b *Bootstrap) resolveName() (name, source string, err error) {
	if b.opts.Name != "" {
		return b.opts.Name, "name", nil
	}

	if b.opts.Descriptor != "" {
		d, err := ReadDescriptor(b.opts.Descriptor)
		if err != nil {
			return "", "", err
		}
		return d.Kernel, "descriptor", nil
	}

	if b.opts.Default != "" {
		return b.opts.Default, "default", nil
	}

	return "", "", fmt.Errorf("no kernel name configured")
}
