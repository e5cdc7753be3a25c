package delegate

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/kernelbridge/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/kernelbridge/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/kernelbridge/internal/kernel"
	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
	"github.com/GriffinCanCode/kernelbridge/internal/shared/id"
)

// Options configures a Handler. Zero values are usable.
type Options struct {
	ID      id.FrameworkID
	Logger  *zap.Logger
	Metrics *monitoring.Metrics
	Tracer  *tracing.Tracer
}

// Handler is the framework handle given to hosts
type Handler struct {
	id      id.FrameworkID
	kernel  any
	wrapped lifecycle.Framework

	logger  *zap.Logger
	metrics *monitoring.Metrics
	tracer  *tracing.Tracer

	// mu serializes the init/start interception paths
	mu          sync.Mutex
	initialized bool
	active      bool
}

var _ lifecycle.Framework = (*Handler)(nil)

// New wraps a kernel and the framework it prepared
func New(k any, wrapped lifecycle.Framework, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ID == "" {
		opts.ID = id.NewFrameworkID()
	}
	if opts.Tracer == nil {
		opts.Tracer = tracing.New("delegate", opts.Logger)
	}

	return &Handler{
		id:      opts.ID,
		kernel:  k,
		wrapped: wrapped,
		logger:  opts.Logger.With(zap.String("framework_id", string(opts.ID))),
		metrics: opts.Metrics,
		tracer:  opts.Tracer,
	}
}

// ID returns the handle's instance ID
func (h *Handler) ID() id.FrameworkID {
	return h.id
}

// Initialized reports whether Init has been called explicitly
func (h *Handler) Initialized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.initialized
}

// Init marks the handle initialized and runs the kernel's Init. It runs on
// every call.
func (h *Handler) Init(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	span, ctx := h.tracer.StartSpan(ctx, lifecycle.OpInit)
	defer h.tracer.Finish(span)

	h.initialized = true
	if err := h.kernelInit(ctx); err != nil {
		span.SetError(err)
		return err
	}

	h.logger.Info("Framework initialized")
	return nil
}

// Start runs the kernel's Init if Init was never called, then the kernel's
// Start without blocking.
func (h *Handler) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	span, ctx := h.tracer.StartSpan(ctx, lifecycle.OpStart)
	defer h.tracer.Finish(span)

	if !h.initialized {
		span.SetTag("implicit_init", "true")
		if err := h.kernelInit(ctx); err != nil {
			span.SetError(err)
			return err
		}
	}

	if err := h.kernelStart(ctx); err != nil {
		span.SetError(err)
		return err
	}

	if !h.active {
		h.active = true
		h.metrics.IncActive()
	}
	h.logger.Info("Framework started")
	return nil
}

// Stop forwards to the wrapped framework
func (h *Handler) Stop(ctx context.Context) error {
	err := h.forward(ctx, lifecycle.OpStop, func(ctx context.Context) error {
		return h.wrapped.Stop(ctx)
	})
	if err == nil {
		h.markStopped()
	}
	return err
}

// Update forwards to the wrapped framework
func (h *Handler) Update(ctx context.Context) error {
	return h.forward(ctx, lifecycle.OpUpdate, func(ctx context.Context) error {
		return h.wrapped.Update(ctx)
	})
}

// WaitForStop forwards to the wrapped framework
func (h *Handler) WaitForStop(ctx context.Context, timeout time.Duration) (lifecycle.Event, error) {
	var ev lifecycle.Event
	err := h.forward(ctx, lifecycle.OpWaitForStop, func(ctx context.Context) error {
		var err error
		ev, err = h.wrapped.WaitForStop(ctx, timeout)
		return err
	})
	// a stopped_update event is followed by a restart
	if err == nil && ev.Type == lifecycle.EventStopped {
		h.markStopped()
	}
	return ev, err
}

// State forwards to the wrapped framework
func (h *Handler) State() lifecycle.State {
	return h.wrapped.State()
}

// SymbolicName forwards to the wrapped framework
func (h *Handler) SymbolicName() string {
	return h.wrapped.SymbolicName()
}

// Version forwards to the wrapped framework
func (h *Handler) Version() string {
	return h.wrapped.Version()
}

// Headers forwards to the wrapped framework
func (h *Handler) Headers() map[string]string {
	return h.wrapped.Headers()
}

// kernelInit resolves and invokes the kernel's Init. Callers hold h.mu.
func (h *Handler) kernelInit(ctx context.Context) error {
	initializer, ok := h.kernel.(kernel.Initializer)
	if !ok {
		return h.contractViolation(lifecycle.OpInit, "Init(context.Context) error")
	}
	return h.invokeKernel(ctx, lifecycle.OpInit, initializer.Init)
}

// kernelStart resolves and invokes the kernel's Start(false). Callers hold h.mu.
func (h *Handler) kernelStart(ctx context.Context) error {
	starter, ok := h.kernel.(kernel.Starter)
	if !ok {
		return h.contractViolation(lifecycle.OpStart, "Start(context.Context, bool) error")
	}
	return h.invokeKernel(ctx, lifecycle.OpStart, func(ctx context.Context) error {
		return starter.Start(ctx, false)
	})
}

func (h *Handler) invokeKernel(ctx context.Context, op string, call func(context.Context) error) error {
	span, ctx := h.tracer.StartSpan(ctx, "kernel."+op)
	span.SetTag("route", monitoring.RouteKernel)
	timer := monitoring.NewTimer(h.metrics, op, monitoring.RouteKernel)

	err := kernel.Invoke(h.kernel, op, func() error {
		return call(ctx)
	})
	if err != nil {
		err = lifecycle.Wrap(lifecycle.KindKernelOperation, op, err)
		span.SetError(err)
	}

	h.tracer.Finish(span)
	return timer.Stop(err)
}

func (h *Handler) contractViolation(op, signature string) error {
	err := lifecycle.Errorf(lifecycle.KindContract, op,
		"kernel %T does not implement %s", h.kernel, signature)
	h.metrics.RecordOperation(op, monitoring.RouteKernel, 0, err)
	return err
}

// forward runs a pass-through call with the caller's ctx. A failure is logged
// once and returned unchanged.
func (h *Handler) forward(ctx context.Context, op string, call func(context.Context) error) error {
	span, _ := h.tracer.StartSpan(ctx, op)
	span.SetTag("route", monitoring.RouteForward)
	timer := monitoring.NewTimer(h.metrics, op, monitoring.RouteForward)

	err := call(ctx)
	if err != nil {
		span.SetError(err)
		h.logger.Error("Forwarded operation failed",
			zap.String("op", op),
			zap.String("trace_id", string(span.TraceID)),
			zap.Error(err))
	}

	h.tracer.Finish(span)
	return timer.Stop(err)
}

func (h *Handler) markStopped() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.active {
		h.active = false
		h.metrics.DecActive()
	}
}
