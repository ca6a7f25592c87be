package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/davidbz/spendwatch/internal/domain"
)

// Ensure interface conformance.
var _ domain.SinkRegistry = (*Registry)(nil)

// Registry implements the SinkRegistry interface.
type Registry struct {
	mu    sync.RWMutex
	sinks map[string]domain.NotificationSink
}

// NewRegistry creates a new sink registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:    sync.RWMutex{},
		sinks: make(map[string]domain.NotificationSink),
	}
}

// Register adds a sink to the registry.
func (r *Registry) Register(_ context.Context, sink domain.NotificationSink) error {
	if sink == nil {
		return errors.New("sink cannot be nil")
	}

	name := sink.Name()
	if name == "" {
		return errors.New("sink name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sinks[name]; exists {
		return fmt.Errorf("sink %s already registered", name)
	}

	r.sinks[name] = sink
	return nil
}

// Get retrieves a sink by name.
func (r *Registry) Get(_ context.Context, sinkName string) (domain.NotificationSink, error) {
	if sinkName == "" {
		return nil, errors.New("sink name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, exists := r.sinks[sinkName]
	if !exists {
		return nil, fmt.Errorf("%w: sink %s not registered", domain.ErrConfiguration, sinkName)
	}

	return sink, nil
}

// List returns the registered sink names in sorted order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}
