package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRecordFeedbackCommandIsNotConstructed = errors.New(
	"RecordFeedbackCommand must be created via NewRecordFeedbackCommand constructor",
)

// RecordFeedbackCommand represents a customer rating for an order on the
// 1 to 5 scale. Recording again overwrites the previous value.
type RecordFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderRef string
	rating   int

	guard guard.ConstructorGuard
}

// NewRecordFeedbackCommand creates a command to record order feedback.
func NewRecordFeedbackCommand(orderRef string, rating int) (RecordFeedbackCommand, error) {
	cmd := RecordFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderRef(orderRef),
		cmd.setRating(rating),
	); err != nil {
		return RecordFeedbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrRecordFeedbackCommandIsNotConstructed)
}

// OrderRef returns the reference of the order being rated.
func (c RecordFeedbackCommand) OrderRef() string {
	return c.orderRef
}

// Rating returns the rating to record.
func (c RecordFeedbackCommand) Rating() int {
	return c.rating
}

func (c *RecordFeedbackCommand) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return errs.NewValueIsRequiredError("orderRef")
	}

	c.orderRef = orderRef
	return nil
}

func (c *RecordFeedbackCommand) setRating(rating int) error {
	if rating < order.MinFeedbackRating || rating > order.MaxFeedbackRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, order.MinFeedbackRating, order.MaxFeedbackRating)
	}

	c.rating = rating
	return nil
}
