package storage

import (
	"context"

	"github.com/poiesic/lanelist/core"
)

// CarrierRepository provides operations for managing carrier documents.
// Implementations must be thread-safe and support concurrent access.
type CarrierRepository interface {
	// AddCarriers adds one or more carriers to storage.
	// Carriers with an empty ID get a content-derived ID from their name.
	// Returns the carriers with IDs populated.
	AddCarriers(ctx context.Context, carriers ...*core.Carrier) ([]*core.Carrier, error)

	// GetCarrier retrieves a single carrier by ID.
	// Returns ErrNotFound if the carrier doesn't exist.
	GetCarrier(ctx context.Context, id string) (*core.Carrier, error)

	// FindCarriers retrieves carriers matching the filter, up to limit results.
	// Absent filter fields impose no constraint; present fields combine
	// conjunctively. Results are ordered by carrier ID for stability.
	FindCarriers(ctx context.Context, filter *core.SearchFilter, limit int) ([]*core.Carrier, error)

	// CountCarriers returns the total number of stored carriers.
	CountCarriers(ctx context.Context) (int, error)

	// DeleteCarriers removes carriers by their IDs.
	// Returns ErrNotFound if any carrier doesn't exist.
	DeleteCarriers(ctx context.Context, ids ...string) error

	// Close closes the repository and releases resources.
	Close() error
}
