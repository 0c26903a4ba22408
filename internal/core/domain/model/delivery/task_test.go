package delivery_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("valid_task", func(t *testing.T) {
		fireAt := time.Date(2024, 6, 1, 12, 0, 30, 0, time.UTC)

		task, err := delivery.NewTask(kernel.NewUUID(), "ORD1", delivery.ActionPrepareOrder, fireAt)

		require.NoError(t, err)
		require.NoError(t, task.Validate())
		assert.Equal(t, "ORD1", task.OrderRef())
		assert.Equal(t, delivery.ActionPrepareOrder, task.Action())
		assert.Equal(t, fireAt, task.FireAt())
		assert.False(t, task.Completed())
	})

	t.Run("order_ref_is_required", func(t *testing.T) {
		_, err := delivery.NewTask(kernel.NewUUID(), "", delivery.ActionPrepareOrder, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_action_is_rejected", func(t *testing.T) {
		_, err := delivery.NewTask(kernel.NewUUID(), "ORD1", delivery.ActionUnknown, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_uuid_is_rejected", func(t *testing.T) {
		var id kernel.UUID

		_, err := delivery.NewTask(id, "ORD1", delivery.ActionPrepareOrder, time.Now())

		require.Error(t, err)
	})
}

func TestTask_IsDue(t *testing.T) {
	fireAt := time.Date(2024, 6, 1, 12, 0, 30, 0, time.UTC)
	task, err := delivery.NewTask(kernel.NewUUID(), "ORD1", delivery.ActionPrepareOrder, fireAt)
	require.NoError(t, err)

	assert.False(t, task.IsDue(fireAt.Add(-time.Second)))
	assert.True(t, task.IsDue(fireAt))
	assert.True(t, task.IsDue(fireAt.Add(time.Hour)))

	task.Complete()
	assert.False(t, task.IsDue(fireAt.Add(time.Hour)))
}

func TestRestoreTask(t *testing.T) {
	id := kernel.NewUUID()
	fireAt := time.Date(2024, 6, 1, 12, 0, 30, 0, time.UTC)

	task, err := delivery.RestoreTask(id, "ORD1", delivery.ActionAdvanceProgress, fireAt, true)

	require.NoError(t, err)
	assert.True(t, task.ID().IsEqual(id))
	assert.True(t, task.Completed())
}

func TestInitialSchedule(t *testing.T) {
	placedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tasks, err := delivery.InitialSchedule("ORD1", placedAt)

	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, delivery.ActionPrepareOrder, tasks[0].Action())
	assert.Equal(t, placedAt.Add(delivery.PreparationDelay), tasks[0].FireAt())

	// dispatch is scheduled from creation time, not chained after preparation
	assert.Equal(t, delivery.ActionDispatchOrder, tasks[1].Action())
	assert.Equal(t, placedAt.Add(delivery.DispatchDelay), tasks[1].FireAt())
}

func TestNextProgressTask(t *testing.T) {
	previousFireAt := time.Date(2024, 6, 1, 12, 2, 0, 0, time.UTC)

	task, err := delivery.NextProgressTask("ORD1", previousFireAt)

	require.NoError(t, err)
	assert.Equal(t, delivery.ActionAdvanceProgress, task.Action())
	assert.Equal(t, previousFireAt.Add(delivery.ProgressInterval), task.FireAt())
	assert.False(t, task.Completed())
}
