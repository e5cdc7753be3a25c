package kernel

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/kernelbridge/internal/access"
	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

// Preparer builds the framework managed by the kernel
type Preparer interface {
	Prepare(config map[string]string) (lifecycle.Framework, error)
}

// Initializer is implemented by kernels that run an initialization phase
type Initializer interface {
	Init(ctx context.Context) error
}

// Starter is implemented by kernels that can be started. blocking asks the
// kernel to wait for the framework to stop before returning.
type Starter interface {
	Start(ctx context.Context, blocking bool) error
}

// Restricted is implemented by kernels whose operations are guarded by a
// visibility flag
type Restricted interface {
	Member(op string) (access.Member, bool)
}

// Invoke runs fn on behalf of kernel operation op. If the kernel guards op,
// the guarding member is elevated for the duration of fn. A panic inside fn
// is returned as an error.
func Invoke(k any, op string, fn func() error) (err error) {
	var member access.Member
	if r, ok := k.(Restricted); ok {
		if m, ok := r.Member(op); ok {
			member = m
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("kernel %s panicked: %v", op, rec)
		}
	}()

	return access.WithElevatedAccess(member, fn)
}
