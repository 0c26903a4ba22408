package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/delivery"
)

// TaskRepository defines the persistence contract for scheduled delivery
// tasks. The stored tasks are the durable form of the delivery simulation:
// scanning them on a timer replaces in-memory timers and survives restarts.
type TaskRepository interface {
	// Add persists a new pending task.
	Add(ctx context.Context, aggregate *delivery.Task) error

	// Update persists task state changes (completion).
	Update(ctx context.Context, aggregate *delivery.Task) error

	// GetDue retrieves all incomplete tasks with a fire time at or before
	// now, ordered by fire time.
	GetDue(ctx context.Context, now time.Time) ([]*delivery.Task, error)
}
