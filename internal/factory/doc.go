// Package factory is the host entry point of the kernel bridge.
//
// NewFramework bootstraps a kernel, lets it prepare its framework and returns
// a delegate.Handler in its place. Creation failures come back as one error
// wrapping the classified cause:
//
//	f := factory.New(factory.Options{
//		Bootstrap: bootstrap.Options{Default: "embedded"},
//		Logger:    logger,
//	})
//	fw, err := f.NewFramework(ctx, map[string]string{"framework.name": "demo"})
//	if errors.Is(err, lifecycle.ErrBootstrap) {
//		// no kernel could be resolved
//	}
package factory
