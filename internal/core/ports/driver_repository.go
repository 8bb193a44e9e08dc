package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/driver"
	"freightmatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// The allocation protocol only ever reads drivers; Add exists for driver
// registration.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetEligible retrieves up to limit drivers whose capacity is at least
	// the given capacity, ordered by ascending count of outstanding
	// (pending) offers, ties broken by driver id ascending. The ordering
	// spreads load toward less-busy drivers and makes selection
	// deterministic.
	GetEligible(ctx context.Context, capacity, limit int) ([]*driver.Driver, error)
}
