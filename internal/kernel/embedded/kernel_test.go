package embedded

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/GriffinCanCode/kernelbridge/internal/access"
	"github.com/GriffinCanCode/kernelbridge/internal/bootstrap"
	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// elevated runs fn with the kernel's op member elevated
func elevated(t *testing.T, k *Kernel, op string, fn func() error) error {
	t.Helper()
	m, ok := k.Member(op)
	require.True(t, ok, "kernel should guard %s", op)
	return access.WithElevatedAccess(m, fn)
}

func prepared(t *testing.T, config map[string]string) (*Kernel, lifecycle.Framework) {
	t.Helper()
	k := New()
	var fw lifecycle.Framework
	require.NoError(t, elevated(t, k, lifecycle.OpPrepare, func() error {
		var err error
		fw, err = k.Prepare(config)
		return err
	}))
	return k, fw
}

func TestRegistered(t *testing.T) {
	kt, ok := bootstrap.Default().Lookup(Name)
	require.True(t, ok)

	k, err := kt.New()
	require.NoError(t, err)
	assert.IsType(t, &Kernel{}, k)
}

func TestOperationsRestricted(t *testing.T) {
	k := New()
	ctx := context.Background()

	_, err := k.Prepare(nil)
	assert.ErrorIs(t, err, access.ErrRestricted)
	assert.ErrorIs(t, k.Init(ctx), access.ErrRestricted)
	assert.ErrorIs(t, k.Start(ctx, false), access.ErrRestricted)

	_, ok := k.Member(lifecycle.OpStop)
	assert.False(t, ok)
}

func TestPrepareOnce(t *testing.T) {
	k, fw := prepared(t, map[string]string{PropName: "custom", PropVersion: "2.1.0", "extra": "x"})

	assert.Equal(t, "custom", fw.SymbolicName())
	assert.Equal(t, "2.1.0", fw.Version())
	assert.Equal(t, lifecycle.StateInstalled, fw.State())

	headers := fw.Headers()
	assert.Equal(t, "x", headers["extra"])
	assert.Equal(t, "custom", headers["Bundle-SymbolicName"])

	err := elevated(t, k, lifecycle.OpPrepare, func() error {
		_, err := k.Prepare(nil)
		return err
	})
	assert.ErrorIs(t, err, ErrAlreadyPrepared)
}

func TestInitBeforePrepare(t *testing.T) {
	k := New()
	err := elevated(t, k, lifecycle.OpInit, func() error {
		return k.Init(context.Background())
	})
	assert.ErrorIs(t, err, ErrNotPrepared)
}

func TestKernelLifecycle(t *testing.T) {
	k, fw := prepared(t, nil)
	ctx := context.Background()

	require.NoError(t, elevated(t, k, lifecycle.OpInit, func() error { return k.Init(ctx) }))
	assert.Equal(t, lifecycle.StateStarting, fw.State())

	require.NoError(t, elevated(t, k, lifecycle.OpStart, func() error { return k.Start(ctx, false) }))
	assert.Equal(t, lifecycle.StateActive, fw.State())

	require.NoError(t, fw.Stop(ctx))
	assert.Equal(t, lifecycle.StateResolved, fw.State())

	ev, err := fw.WaitForStop(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.EventStopped, ev.Type)
}

func TestBlockingStartReturnsOnStop(t *testing.T) {
	k, fw := prepared(t, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		done <- elevated(t, k, lifecycle.OpStart, func() error { return k.Start(ctx, true) })
	}()

	require.Eventually(t, func() bool {
		return fw.State() == lifecycle.StateActive
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, fw.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("blocking start did not return after stop")
	}
}

func TestWaitForStop(t *testing.T) {
	ctx := context.Background()

	t.Run("not running returns immediately", func(t *testing.T) {
		_, fw := prepared(t, nil)
		ev, err := fw.WaitForStop(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.EventStopped, ev.Type)
	})

	t.Run("timeout", func(t *testing.T) {
		_, fw := prepared(t, nil)
		require.NoError(t, fw.Start(ctx))
		ev, err := fw.WaitForStop(ctx, 10*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.EventWaitTimedOut, ev.Type)
	})

	t.Run("context cancelled", func(t *testing.T) {
		_, fw := prepared(t, nil)
		require.NoError(t, fw.Start(ctx))
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := fw.WaitForStop(cctx, 0)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("negative timeout", func(t *testing.T) {
		_, fw := prepared(t, nil)
		_, err := fw.WaitForStop(ctx, -time.Second)
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("active framework restarts", func(t *testing.T) {
		_, fw := prepared(t, nil)
		require.NoError(t, fw.Start(ctx))

		require.NoError(t, fw.Update(ctx))
		assert.Equal(t, lifecycle.StateActive, fw.State())

		require.NoError(t, fw.Stop(ctx))
	})

	t.Run("starting framework is left resolved", func(t *testing.T) {
		_, fw := prepared(t, nil)
		require.NoError(t, fw.Init(ctx))

		require.NoError(t, fw.Update(ctx))
		assert.Equal(t, lifecycle.StateResolved, fw.State())

		ev, err := fw.WaitForStop(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.EventStoppedUpdate, ev.Type)
	})
}
