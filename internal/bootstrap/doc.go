// Package bootstrap resolves which kernel type the bridge loads.
//
// Kernel implementations register a KernelType under a unique name, usually
// from an init function, the same way database/sql drivers register:
//
//	func init() {
//		bootstrap.Register(bootstrap.KernelType{
//			Name: "embedded",
//			New:  func() (any, error) { return newKernel(), nil },
//		})
//	}
//
// A Bootstrap then picks one of them. The name comes from, in order:
//   - Options.Name
//   - the descriptor file at Options.Descriptor (.yaml, .yml or .toml)
//   - Options.Default
//
// Descriptor format:
//
//	kernel: embedded
//
// Every resolution failure is reported as a lifecycle.KindBootstrap error.
package bootstrap
