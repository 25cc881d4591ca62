// Package container provides a small generic name→factory dependency
// registry with transient/singleton lifetimes, used to wire the built-in
// runtime table together.
//
// Grounded on container/container.go's DIContainer from the teacher
// (Register/Resolve/Lifetime, sync.RWMutex, circular-resolution detection
// via a per-dependency Resolving flag), narrowed to this repo's single use
// case: MustResolve, which nothing here calls, is dropped.
package container

import (
	"fmt"
	"sync"
)

// Lifetime controls whether a dependency's factory runs once or every
// resolve.
type Lifetime int

const (
	// Transient creates a new instance on every Resolve.
	Transient Lifetime = iota
	// Singleton creates one instance and reuses it on every Resolve.
	Singleton
)

type dependency struct {
	factory   func() (interface{}, error)
	instance  interface{}
	lifetime  Lifetime
	resolving bool
	mu        sync.Mutex
}

// Container is a name-keyed registry of lazily constructed dependencies,
// safe for concurrent Resolve calls.
type Container struct {
	mu   sync.RWMutex
	deps map[string]*dependency
}

// New returns an empty Container.
func New() *Container {
	return &Container{deps: make(map[string]*dependency)}
}

// Register adds a dependency under name. Registering the same name twice
// replaces the prior registration.
func (c *Container) Register(name string, factory func() (interface{}, error), lifetime Lifetime) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deps[name] = &dependency{factory: factory, lifetime: lifetime}
}

// IsRegistered reports whether name has been registered.
func (c *Container) IsRegistered(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.deps[name]
	return ok
}

// Resolve produces the instance registered under name, constructing it (or
// reusing the cached singleton instance) as required.
func (c *Container) Resolve(name string) (interface{}, error) {
	c.mu.RLock()
	dep, ok := c.deps[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("container: no dependency registered under %q", name)
	}

	dep.mu.Lock()
	defer dep.mu.Unlock()

	if dep.lifetime == Singleton && dep.instance != nil {
		return dep.instance, nil
	}

	if dep.resolving {
		return nil, fmt.Errorf("container: circular dependency resolving %q", name)
	}
	dep.resolving = true
	instance, err := dep.factory()
	dep.resolving = false
	if err != nil {
		return nil, err
	}

	if dep.lifetime == Singleton {
		dep.instance = instance
	}
	return instance, nil
}
