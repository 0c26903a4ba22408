// Package taskrepo persists the delivery schedule: one row per pending
// timed transition. The rows are the durable replacement for in-memory
// timers, so the schedule survives process restarts.
package taskrepo

import (
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for scheduled delivery tasks.
// The (completed, fire_at) index backs the due-task scan.
type TaskDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderRef  string    `gorm:"index;not null"`
	Action    int
	FireAt    time.Time `gorm:"index:idx_delivery_tasks_due,priority:2"`
	Completed bool      `gorm:"index:idx_delivery_tasks_due,priority:1"`
}

// TableName specifies the database table name for delivery tasks.
func (TaskDTO) TableName() string {
	return "delivery_tasks"
}

func fromDomain(aggregate *delivery.Task) TaskDTO {
	return TaskDTO{
		ID:        aggregate.ID().Bytes(),
		OrderRef:  aggregate.OrderRef(),
		Action:    int(aggregate.Action()),
		FireAt:    aggregate.FireAt(),
		Completed: aggregate.Completed(),
	}
}

func toDomain(dto TaskDTO) (*delivery.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreTask(id, dto.OrderRef, delivery.Action(dto.Action), dto.FireAt, dto.Completed)
}
