/*
Package lifecycle defines the framework contract consumed by hosts and the
error taxonomy shared by the bridge components.

# Overview

A Framework is the externally defined lifecycle object: hosts drive it through
Init, Start, Stop, Update and WaitForStop and inspect it through State and the
identity accessors. The bridge never implements these semantics itself; it
only decides who receives each call.

# Errors

Every failure raised by the bridge is an *Error carrying a Kind, the operation
that failed and the original cause:

	if errors.Is(err, lifecycle.ErrContractViolation) {
		// the loaded kernel does not satisfy the expected contract
	}

	var lerr *lifecycle.Error
	if errors.As(err, &lerr) {
		log.Printf("%s failed: %v", lerr.Op, lerr.Err)
	}

# States

	Installed --init--> Starting --start--> Active --stop--> Stopping --> Resolved
*/
package lifecycle
