// Package embedded provides an in-process reference kernel.
//
// The kernel registers itself with the bootstrap registry as "embedded". Its
// prepare, init and start operations are restricted: invoking them without
// elevating the matching access.Member returns access.ErrRestricted, which is
// what the bridge's loader and delegate are built to handle.
//
// The framework it prepares is an in-memory state machine:
//
//	Installed --init--> Starting --start--> Active --stop--> Resolved
//
// Configuration keys:
//   - framework.name: symbolic name (default "kernelbridge.embedded")
//   - framework.version: version string (default "1.0.0")
package embedded
