package lifecycle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesByKind(t *testing.T) {
	cause := errors.New("no such kernel")
	err := Wrap(KindBootstrap, "bootstrap", cause)

	assert.ErrorIs(t, err, ErrBootstrap)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInstantiation)
	assert.NotErrorIs(t, err, ErrKernelOperation)

	wrapped := fmt.Errorf("unable to create framework: %w", err)
	assert.ErrorIs(t, wrapped, ErrBootstrap)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, KindBootstrap, KindOf(wrapped))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, KindContract, KindOf(Errorf(KindContract, OpStart, "missing %s", "Start")))
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "op and cause", err: Errorf(KindKernelOperation, OpInit, "boom"), want: "kernel operation failure: init: boom"},
		{name: "cause only", err: Wrap(KindInstantiation, "", errors.New("boom")), want: "instantiation failure: boom"},
		{name: "op only", err: &Error{Kind: KindContract, Op: OpStart}, want: "contract violation: start"},
		{name: "kind only", err: ErrKernelPrepare, want: "kernel prepare failure"},
		{name: "unknown kind", err: &Error{}, want: "unknown failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
