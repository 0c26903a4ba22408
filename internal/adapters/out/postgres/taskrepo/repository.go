package taskrepo

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Add persists a new pending task.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *delivery.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists task state changes, completion included. Completed is a
// zero-value-sensitive column, so all columns are written explicitly.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *delivery.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{ID: dto.ID}).
		Select("*").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetDue retrieves all incomplete tasks with a fire time at or before now,
// ordered by fire time so transitions apply in schedule order.
func (r *GormTaskRepository) GetDue(ctx context.Context, now time.Time) ([]*delivery.Task, error) {
	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Where("completed = ? AND fire_at <= ?", false, now).
		Order("fire_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*delivery.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
