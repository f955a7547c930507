package fathom

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Use returns a cached engine or builds a new one.
// The engine is cached by type; options apply only to the first build
// for a given type.
func Use[T any](opts ...Option) (*Engine[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.(*Engine[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached.(*Engine[T]), nil
	}

	engine, err := New[T](opts...)
	if err != nil {
		return nil, err
	}

	registry[typ] = engine
	return engine, nil
}

// Reset clears the engine and schema caches.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
	resetSchemas()
}
