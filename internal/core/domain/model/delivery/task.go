// Package delivery provides the durable delivery-simulation schedule: timed
// state transitions stored as tasks keyed by order reference.
//
// Instead of in-memory timers that are lost on restart, every pending
// transition is a persisted Task with a target fire time. A background job
// re-scans due tasks, so the simulation resumes from storage after a process
// restart without any recovery step.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through NewTask or RestoreTask.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask constructor")

// Action identifies which order transition a task performs when it fires.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionPrepareOrder moves the order from Placed to Preparing.
	ActionPrepareOrder

	// ActionDispatchOrder moves the order to OutForDelivery with progress 0.
	ActionDispatchOrder

	// ActionAdvanceProgress advances delivery progress one step, transitioning
	// to Delivered when progress reaches its maximum.
	ActionAdvanceProgress
)

func actionStrings() map[Action]string {
	return map[Action]string{
		ActionPrepareOrder:    "PrepareOrder",
		ActionDispatchOrder:   "DispatchOrder",
		ActionAdvanceProgress: "AdvanceProgress",
	}
}

// Validate checks if the Action is one of the three known transitions.
func (a Action) Validate() error {
	if _, ok := actionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid task action", a))
	}
	return nil
}

// String returns the action name. Implements fmt.Stringer.
func (a Action) String() string {
	if str, ok := actionStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// Task is one pending scheduled transition for an order. Tasks reference
// orders only by their external reference, never by an in-memory handle, so
// a task loaded after a restart can still find its order.
type Task struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	orderRef  string
	action    Action
	fireAt    time.Time
	completed bool

	guard guard.ConstructorGuard
}

// NewTask creates a pending task that fires at the given time.
func NewTask(id kernel.UUID, orderRef string, action Action, fireAt time.Time) (*Task, error) {
	t := &Task{
		fireAt: fireAt,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderRef(orderRef),
		t.setAction(action),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(id kernel.UUID, orderRef string, action Action, fireAt time.Time, completed bool) (*Task, error) {
	t, err := NewTask(id, orderRef, action, fireAt)
	if err != nil {
		return nil, err
	}

	t.completed = completed
	return t, nil
}

// Validate ensures the Task was created through one of its constructors.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// ID returns the task identity.
func (t *Task) ID() kernel.UUID { return t.id }

// OrderRef returns the external reference of the order this task advances.
func (t *Task) OrderRef() string { return t.orderRef }

// Action returns the transition this task performs.
func (t *Task) Action() Action { return t.action }

// FireAt returns the scheduled execution time.
func (t *Task) FireAt() time.Time { return t.fireAt }

// Completed reports whether the task has already been executed.
func (t *Task) Completed() bool { return t.completed }

// IsDue reports whether the task should fire at the given time.
func (t *Task) IsDue(now time.Time) bool {
	return !t.completed && !t.fireAt.After(now)
}

// Complete marks the task as executed. Completing an already completed task
// is a no-op.
func (t *Task) Complete() {
	t.completed = true
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("orderRef")
	}
	t.orderRef = orderRef
	return nil
}

func (t *Task) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	t.action = action
	return nil
}
