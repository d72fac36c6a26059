package content

import (
	"fmt"
	"sync"
)

// ResourceHook lets packages register resource definitions during init().
type ResourceHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []ResourceHook
)

// RegisterResourceHook registers a hook executed against new registries.
func RegisterResourceHook(h ResourceHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry implements ResourceRegistry with hook + manifest support.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]ResourceDefinition
	order       []string
}

// NewRegistry builds a registry preloaded with the default catalog and
// applies global hooks.
func NewRegistry() *Registry {
	reg := &Registry{
		definitions: map[string]ResourceDefinition{},
	}
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

// NewEmptyRegistry builds a registry without the default catalog, for
// manifest-driven setups and tests.
func NewEmptyRegistry() *Registry {
	return &Registry{definitions: map[string]ResourceDefinition{}}
}

func (r *Registry) registerDefaults() {
	for _, def := range Catalog() {
		_ = r.RegisterDefinition(def)
	}
}

// ApplyHooks executes registered resource hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefinition stores resource metadata. Registering an existing code
// replaces it in place without disturbing catalog order.
func (r *Registry) RegisterDefinition(def ResourceDefinition) error {
	if def.Code == "" {
		return fmt.Errorf("resource definition code is required")
	}
	if def.Kind == "" {
		def.Kind = KindCollection
	}
	if def.Path == "" {
		def.Path = def.Code
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.definitions[def.Code]; !ok {
		r.order = append(r.order, def.Code)
	}
	r.definitions[def.Code] = def
	return nil
}

// Definition fetches a resource definition by code.
func (r *Registry) Definition(code string) (ResourceDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[code]
	return def, ok
}

// DefinitionByPath fetches a definition by its REST path segment.
func (r *Registry) DefinitionByPath(path string) (ResourceDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, code := range r.order {
		if def := r.definitions[code]; def.Path == path {
			return def, true
		}
	}
	return ResourceDefinition{}, false
}

// Definitions returns all registered definitions in registration order.
func (r *Registry) Definitions() []ResourceDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ResourceDefinition, 0, len(r.order))
	for _, code := range r.order {
		defs = append(defs, r.definitions[code])
	}
	return defs
}
