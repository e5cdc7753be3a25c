package bootstrap

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// namePattern allows alphanumeric, dots, hyphens, underscores
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// KernelType describes a loadable kernel. A nil New marks an abstract type
// that cannot be instantiated.
type KernelType struct {
	Name        string
	Description string
	New         func() (any, error)
}

// Registry holds kernel types by name
type Registry struct {
	types sync.Map
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a kernel type. Names must be unique.
func (r *Registry) Register(kt KernelType) error {
	if kt.Name == "" {
		return fmt.Errorf("kernel type name cannot be empty")
	}
	if !namePattern.MatchString(kt.Name) {
		return fmt.Errorf("invalid kernel type name: %q", kt.Name)
	}
	if _, loaded := r.types.LoadOrStore(kt.Name, kt); loaded {
		return fmt.Errorf("kernel type already registered: %s", kt.Name)
	}
	return nil
}

// Unregister removes a kernel type
func (r *Registry) Unregister(name string) {
	r.types.Delete(name)
}

// Lookup retrieves a kernel type by name
func (r *Registry) Lookup(name string) (KernelType, bool) {
	val, ok := r.types.Load(name)
	if !ok {
		return KernelType{}, false
	}
	return val.(KernelType), true
}

// Types returns all registered kernel types sorted by name
func (r *Registry) Types() []KernelType {
	var types []KernelType
	r.types.Range(func(_, value interface{}) bool {
		types = append(types, value.(KernelType))
		return true
	})

	sort.Slice(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	return types
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry
func Default() *Registry {
	return defaultRegistry
}

// Register adds a kernel type to the process-wide registry. It panics on an
// empty or duplicate name.
func Register(kt KernelType) {
	if err := defaultRegistry.Register(kt); err != nil {
		panic("bootstrap: " + err.Error())
	}
}

// Types lists the process-wide registry
func Types() []KernelType {
	return defaultRegistry.Types()
}
