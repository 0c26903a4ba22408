package delivery

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Timing policy for the delivery simulation. Both initial delays are relative
// to order creation: the dispatch timer is not chained after the preparation
// timer.
const (
	// PreparationDelay is how long after creation the order enters Preparing.
	PreparationDelay = 30 * time.Second

	// DispatchDelay is how long after creation the order goes out for delivery.
	DispatchDelay = 2 * time.Minute

	// ProgressInterval is the spacing between delivery progress steps.
	ProgressInterval = 5 * time.Minute
)

// InitialSchedule creates the two tasks armed when an order is placed:
// preparation at placedAt+PreparationDelay and dispatch at
// placedAt+DispatchDelay. Progress tasks are armed later, one at a time, as
// the dispatch and progress transitions execute.
func InitialSchedule(orderRef string, placedAt time.Time) ([]*Task, error) {
	prepare, err := NewTask(kernel.NewUUID(), orderRef, ActionPrepareOrder, placedAt.Add(PreparationDelay))
	if err != nil {
		return nil, err
	}

	dispatch, err := NewTask(kernel.NewUUID(), orderRef, ActionDispatchOrder, placedAt.Add(DispatchDelay))
	if err != nil {
		return nil, err
	}

	return []*Task{prepare, dispatch}, nil
}

// NextProgressTask arms the next progress step relative to the fire time of
// the task that just executed. Anchoring on the previous fire time rather
// than on scan time keeps the cadence independent of scan jitter.
func NextProgressTask(orderRef string, previousFireAt time.Time) (*Task, error) {
	return NewTask(kernel.NewUUID(), orderRef, ActionAdvanceProgress, previousFireAt.Add(ProgressInterval))
}
