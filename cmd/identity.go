package cmd

import (
	"errors"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ErrInvalidAdminKey is returned when a request presents an admin key that
// does not match the configured one.
var ErrInvalidAdminKey = errors.New("invalid admin key")

// HeaderIdentityResolver resolves the caller from request headers:
// X-Customer carries the customer identity (guest when absent) and
// X-Admin-Key grants admin access when it matches the configured key.
// Stand-in for a real token verifier; the core only sees the result.
type HeaderIdentityResolver struct {
	adminKey string
}

// NewHeaderIdentityResolver creates a resolver with the given admin key.
func NewHeaderIdentityResolver(adminKey string) HeaderIdentityResolver {
	return HeaderIdentityResolver{adminKey: adminKey}
}

// Resolve extracts the caller identity. A wrong admin key rejects the
// request; a missing customer header resolves to the guest identity.
func (r HeaderIdentityResolver) Resolve(ctx echo.Context) (httpin.Identity, error) {
	customer := ctx.Request().Header.Get("X-Customer")
	if customer == "" {
		customer = order.GuestCustomer
	}

	presented := ctx.Request().Header.Get("X-Admin-Key")
	if presented != "" && (r.adminKey == "" || presented != r.adminKey) {
		return httpin.Identity{}, ErrInvalidAdminKey
	}

	return httpin.Identity{
		Customer: customer,
		Admin:    presented != "" && presented == r.adminKey,
	}, nil
}
