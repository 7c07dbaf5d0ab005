package testing

import (
	"testing"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/histz"
)

// NewTestRegistry creates a registry with automatic cleanup.
// Uses t.Cleanup to ensure Reset() is called after test completion.
func NewTestRegistry(t *testing.T) *histz.Registry {
	r := histz.New()
	t.Cleanup(func() {
		r.Reset()
	})
	return r
}

// NewTestRegistryWithClock creates a registry with a specific clock and automatic cleanup.
// Used for deterministic fill timing with FakeClock.
func NewTestRegistryWithClock(t *testing.T, clock clockz.Clock) *histz.Registry {
	r := histz.New().WithClock(clock)
	t.Cleanup(func() {
		r.Reset()
	})
	return r
}

// NewTestRegistries creates multiple isolated registries with automatic cleanup.
func NewTestRegistries(t *testing.T, count int) []*histz.Registry {
	registries := make([]*histz.Registry, count)
	for i := range registries {
		registries[i] = NewTestRegistry(t)
	}
	return registries
}
