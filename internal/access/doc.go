// Package access provides scoped elevation of restricted members.
//
// A Member is anything whose invocation is gated by a visibility flag. Callers
// that need to invoke a restricted member from outside its normal visibility
// wrap the invocation in WithElevatedAccess, which lifts the restriction for
// the duration of the callback and restores it on every exit path.
//
// Example Usage:
//
//	prepare := access.NewFlag("prepare", false)
//	err := access.WithElevatedAccess(prepare, func() error {
//		return prepare.Check()
//	})
package access
