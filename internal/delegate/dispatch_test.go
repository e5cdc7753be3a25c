package delegate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

func TestDispatchRoutes(t *testing.T) {
	k := newKernel()
	fw := new(MockFramework)
	h := New(k, fw, Options{})
	ctx := context.Background()

	fw.On("Stop", ctx).Return(nil)
	fw.On("WaitForStop", ctx, time.Second).Return(lifecycle.Event{Type: lifecycle.EventStopped}, nil)
	fw.On("SymbolicName").Return("fw")
	fw.On("State").Return(lifecycle.StateResolved)

	_, err := h.Dispatch(ctx, lifecycle.OpInit)
	require.NoError(t, err)
	_, err = h.Dispatch(ctx, lifecycle.OpStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"init", "start"}, k.Calls())

	_, err = h.Dispatch(ctx, lifecycle.OpStop)
	require.NoError(t, err)

	ev, err := h.Dispatch(ctx, lifecycle.OpWaitForStop, time.Second)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.EventStopped, ev.(lifecycle.Event).Type)

	name, err := h.Dispatch(ctx, lifecycle.OpSymbolicName)
	require.NoError(t, err)
	assert.Equal(t, "fw", name)

	state, err := h.Dispatch(ctx, lifecycle.OpState)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateResolved, state)

	fw.AssertNotCalled(t, "Init", mock.Anything)
	fw.AssertNotCalled(t, "Start", mock.Anything)
}

func TestDispatchContractViolations(t *testing.T) {
	h := New(newKernel(), new(MockFramework), Options{})
	ctx := context.Background()

	tests := []struct {
		name string
		op   string
		args []any
	}{
		{name: "unknown operation", op: "uninstall"},
		{name: "init with arguments", op: lifecycle.OpInit, args: []any{true}},
		{name: "accessor with arguments", op: lifecycle.OpVersion, args: []any{"x"}},
		{name: "wait with wrong type", op: lifecycle.OpWaitForStop, args: []any{"5s"}},
		{name: "wait with too many", op: lifecycle.OpWaitForStop, args: []any{time.Second, time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Dispatch(ctx, tt.op, tt.args...)
			assert.ErrorIs(t, err, lifecycle.ErrContractViolation)
		})
	}
}
