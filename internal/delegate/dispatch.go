package delegate

import (
	"context"
	"time"

	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

// Dispatch invokes a framework operation by name. It exists for hosts that
// route calls by operation name; it resolves to the typed methods. Unknown
// names and mismatched arguments are contract violations.
func (h *Handler) Dispatch(ctx context.Context, op string, args ...any) (any, error) {
	switch op {
	case lifecycle.OpInit:
		return nil, h.noArgs(op, args, func() error { return h.Init(ctx) })
	case lifecycle.OpStart:
		return nil, h.noArgs(op, args, func() error { return h.Start(ctx) })
	case lifecycle.OpStop:
		return nil, h.noArgs(op, args, func() error { return h.Stop(ctx) })
	case lifecycle.OpUpdate:
		return nil, h.noArgs(op, args, func() error { return h.Update(ctx) })
	case lifecycle.OpWaitForStop:
		timeout, err := durationArg(op, args)
		if err != nil {
			return nil, err
		}
		return h.WaitForStop(ctx, timeout)
	case lifecycle.OpState:
		return h.accessor(op, args, func() any { return h.State() })
	case lifecycle.OpSymbolicName:
		return h.accessor(op, args, func() any { return h.SymbolicName() })
	case lifecycle.OpVersion:
		return h.accessor(op, args, func() any { return h.Version() })
	case lifecycle.OpHeaders:
		return h.accessor(op, args, func() any { return h.Headers() })
	default:
		return nil, lifecycle.Errorf(lifecycle.KindContract, op, "unknown framework operation")
	}
}

func (h *Handler) noArgs(op string, args []any, call func() error) error {
	if len(args) != 0 {
		return lifecycle.Errorf(lifecycle.KindContract, op, "takes no arguments, got %d", len(args))
	}
	return call()
}

func (h *Handler) accessor(op string, args []any, get func() any) (any, error) {
	if len(args) != 0 {
		return nil, lifecycle.Errorf(lifecycle.KindContract, op, "takes no arguments, got %d", len(args))
	}
	return get(), nil
}

func durationArg(op string, args []any) (time.Duration, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		if d, ok := args[0].(time.Duration); ok {
			return d, nil
		}
		return 0, lifecycle.Errorf(lifecycle.KindContract, op, "expected time.Duration, got %T", args[0])
	default:
		return 0, lifecycle.Errorf(lifecycle.KindContract, op, "takes at most one argument, got %d", len(args))
	}
}
