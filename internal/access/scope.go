package access

// WithElevatedAccess marks m accessible, runs op and restores m's prior
// visibility exactly once, whether op returns normally, returns an error or
// panics. The error from op is returned unchanged.
func WithElevatedAccess(m Member, op func() error) error {
	release := acquire(m)
	defer release()

	return op()
}

// acquire elevates m and returns the matching release
func acquire(m Member) func() {
	if m == nil {
		return func() {}
	}
	if e, ok := m.(elevator); ok {
		return e.elevate()
	}

	prior := m.Accessible()
	m.SetAccessible(true)
	return func() {
		m.SetAccessible(prior)
	}
}
