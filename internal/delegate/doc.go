/*
Package delegate implements the intercepting framework handle.

A Handler satisfies lifecycle.Framework on behalf of a loaded kernel. It routes
exactly two operations to the kernel and forwards everything else to the
framework the kernel prepared:

	Init         initialized = true, then kernel Init
	Start        kernel Init first if not initialized, then kernel Start(false)
	everything   forwarded to the wrapped framework unchanged; failures are
	  else       logged once here and returned as-is

The implicit Init performed by Start does not mark the handler initialized,
so every Start before an explicit Init runs the kernel's Init again.

Init and Start are serialized on the handler. Forwarded operations are not.

Kernel Init/Start are resolved against kernel.Initializer and kernel.Starter
on each call; a kernel lacking either yields lifecycle.ErrContractViolation,
and errors raised by them are returned as lifecycle.ErrKernelOperation with
the cause preserved.
*/
package delegate
