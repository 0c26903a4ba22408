// Package order provides domain entities and business logic for customer order
// management in the storefront. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, snapshots, and lifecycle state
//   - Status: a state machine for the delivery lifecycle
//   - ProductSnapshot: the immutable product configuration captured at checkout
//
// Key business rules:
//   - Orders are identified by a caller-assigned order reference and carry an
//     opaque payment reference
//   - Status follows the workflow: Placed -> Preparing -> OutForDelivery -> Delivered,
//     with Cancelled and Delivered as terminal statuses that pre-empt any further
//     autonomous transition
//   - Delivery progress moves in steps of 10 and reaches exactly 100 before the
//     Delivered transition
//   - Feedback ratings are integers between 1 and 5
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
