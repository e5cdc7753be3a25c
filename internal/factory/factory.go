package factory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/kernelbridge/internal/bootstrap"
	"github.com/GriffinCanCode/kernelbridge/internal/delegate"
	"github.com/GriffinCanCode/kernelbridge/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/kernelbridge/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/kernelbridge/internal/kernel"
	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
	"github.com/GriffinCanCode/kernelbridge/internal/shared/id"
)

// Options configures a Factory
type Options struct {
	Bootstrap bootstrap.Options
	Registry  *bootstrap.Registry // nil means the process-wide registry
	Logger    *zap.Logger
	Metrics   *monitoring.Metrics
}

// Factory creates kernel-backed frameworks
type Factory struct {
	opts    Options
	logger  *zap.Logger
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer
}

var _ lifecycle.Factory = (*Factory)(nil)

// New creates a factory
func New(opts Options) *Factory {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = bootstrap.Default()
	}

	return &Factory{
		opts:    opts,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		tracer:  tracing.New("kernelbridge", opts.Logger),
	}
}

// NewFramework loads a kernel and returns the intercepting handle in front of
// the framework it prepared. configuration reaches the kernel unchanged.
func (f *Factory) NewFramework(ctx context.Context, configuration map[string]string) (lifecycle.Framework, error) {
	h, err := f.create(ctx, configuration)
	f.metrics.RecordCreate(err)
	if err != nil {
		f.logger.Error("Unable to create framework", zap.Error(err))
		return nil, err
	}
	return h, nil
}

func (f *Factory) create(ctx context.Context, configuration map[string]string) (*delegate.Handler, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("unable to create framework: %w", err)
	}

	span, ctx := f.tracer.StartSpan(ctx, "create")
	defer f.tracer.Finish(span)

	frameworkID := id.NewFrameworkID()
	logger := f.logger.With(zap.String("framework_id", string(frameworkID)))

	boot := bootstrap.NewWithRegistry(f.opts.Registry, f.opts.Bootstrap, logger.Named("bootstrap"))
	loaded, err := kernel.NewLoader(boot, logger.Named("loader")).Load(configuration)
	if err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("unable to create framework: %w", err)
	}
	span.SetTag("kernel", loaded.Type.Name)

	h := delegate.New(loaded.Kernel, loaded.Framework, delegate.Options{
		ID:      frameworkID,
		Logger:  f.logger.Named("delegate"),
		Metrics: f.metrics,
		Tracer:  f.tracer,
	})

	logger.Info("Framework created",
		zap.String("kernel", loaded.Type.Name),
		zap.String("trace_id", string(tracing.GetTraceID(ctx))))
	return h, nil
}
