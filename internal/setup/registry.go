package setup

import (
	"net/url"
	"sync"

	"github.com/pkg/errors"
)

type Factory[T any] func(dsn *url.URL) (T, error)

// Registry maps DSN schemes to adapter factories so backends can be selected
// by configuration alone.
type Registry[T any] struct {
	mutex     sync.RWMutex
	factories map[string]Factory[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
	}
}

func (r *Registry[T]) Register(scheme string, factory Factory[T]) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.factories[scheme] = factory
}

func (r *Registry[T]) From(dsn string) (T, error) {
	var empty T

	parsed, err := url.Parse(dsn)
	if err != nil {
		return empty, errors.Wrapf(err, "could not parse dsn '%s'", dsn)
	}

	r.mutex.RLock()
	factory, exists := r.factories[parsed.Scheme]
	r.mutex.RUnlock()

	if !exists {
		return empty, errors.Errorf("no factory registered for scheme '%s'", parsed.Scheme)
	}

	value, err := factory(parsed)
	if err != nil {
		return empty, errors.WithStack(err)
	}

	return value, nil
}
