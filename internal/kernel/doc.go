/*
Package kernel loads a kernel implementation and extracts its framework.

A kernel is opaque to the bridge: the bootstrap hands back a constructor that
returns an any. The loader checks the instance against the small contract
interfaces below at load time, instead of looking members up by name:

	Preparer    Prepare(config) (lifecycle.Framework, error)
	Initializer Init(ctx) error
	Starter     Start(ctx, blocking bool) error
	Restricted  Member(op) (access.Member, bool)    optional

Kernels that guard their operations expose the guarding access.Member through
Restricted; Invoke elevates that member for the duration of the call.

# Load

	loader := kernel.NewLoader(bootstrap.New(opts, logger), logger)
	loaded, err := loader.Load(config)
	// loaded.Kernel is the instance, loaded.Framework what Prepare returned

Failures map onto lifecycle kinds: bootstrap resolution (KindBootstrap),
construction (KindInstantiation), a kernel without Prepare (KindContract),
and Prepare itself failing (KindKernelPrepare, cause preserved).
*/
package kernel
