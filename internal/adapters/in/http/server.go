// Package http exposes the storefront's command and query surface over
// Echo. Handlers translate request payloads into commands/queries, invoke
// the application layer, and map error sentinels to status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity is the resolved caller of a request.
type Identity struct {
	Customer string
	Admin    bool
}

// IdentityResolver extracts the caller identity from an incoming request.
// Implementations live in the composition root; a resolve failure means the
// request is rejected with 401 before any use case runs.
type IdentityResolver interface {
	Resolve(ctx echo.Context) (Identity, error)
}

// Handlers bundles the use-case handlers the server dispatches to.
type Handlers struct {
	AddCartItem    commands.AddCartItemCommandHandler
	RemoveCartItem commands.RemoveCartItemCommandHandler
	ClearCart      commands.ClearCartCommandHandler

	PlaceOrder       commands.PlaceOrderCommandHandler
	SetOrderStatus   commands.SetOrderStatusCommandHandler
	SetOrderProgress commands.SetOrderProgressCommandHandler
	RecordFeedback   commands.RecordFeedbackCommandHandler

	AddIngredient            commands.AddIngredientCommandHandler
	RenameIngredient         commands.RenameIngredientCommandHandler
	AdjustIngredientQuantity commands.AdjustIngredientQuantityCommandHandler

	GetCart           queries.GetCartQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetOrderSummary   queries.GetOrderSummaryQueryHandler
	GetInventory      queries.GetInventoryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identity IdentityResolver
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(identity IdentityResolver, handlers Handlers) *Server {
	return &Server{identity: identity, handlers: handlers}
}

// RegisterRoutes attaches the API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.DELETE("/cart/items", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetMyOrders)
	api.GET("/orders/:orderRef", s.GetOrder)
	api.POST("/orders/:orderRef/feedback", s.RecordFeedback)

	admin := api.Group("/admin")
	admin.GET("/orders", s.GetAllOrders)
	admin.GET("/summary", s.GetOrderSummary)
	admin.PUT("/orders/:orderRef/status", s.SetOrderStatus)
	admin.PUT("/orders/:orderRef/progress", s.SetOrderProgress)
	admin.GET("/inventory", s.GetInventory)
	admin.POST("/inventory/:category", s.AddIngredient)
	admin.PUT("/inventory/:category/:name", s.RenameIngredient)
	admin.PATCH("/inventory/:category/:name", s.AdjustIngredientQuantity)
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, queries.ErrNotOrderOwner):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrDeliveryAddressIsRequired),
		errors.Is(err, commands.ErrNoSavedAddress):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func (s *Server) resolve(ctx echo.Context) (Identity, error) {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "unverified identity")
	}
	return identity, nil
}

func (s *Server) resolveAdmin(ctx echo.Context) (Identity, error) {
	identity, err := s.resolve(ctx)
	if err != nil {
		return Identity{}, err
	}
	if !identity.Admin {
		return Identity{}, echo.NewHTTPError(http.StatusForbidden, "admin access required")
	}
	return identity, nil
}

// CartItem is one cart line in request and response payloads.
type CartItem struct {
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
}

// Cart is the cart payload returned by cart endpoints.
type Cart struct {
	Customer  string     `json:"customer"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// GetCart handles GET /api/v1/cart - retrieves the caller's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	identity, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(identity.Customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items - adds or merges a cart line.
func (s *Server) AddCartItem(ctx echo.Context) error {
	identity, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	var item CartItem
	if err = ctx.Bind(&item); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAddCartItemCommand(
		identity.Customer, item.ProductName, item.UnitPrice, item.Quantity, item.Size, item.Image)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartPayload(updated))
}

// RemoveCartItem handles DELETE /api/v1/cart/items - removes matching lines.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	identity, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	var request struct {
		ProductName string `json:"productName"`
		Size        string `json:"size"`
	}
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRemoveCartItemCommand(identity.Customer, request.ProductName, request.Size)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartPayload(updated))
}

// ClearCart handles DELETE /api/v1/cart - empties the caller's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	identity, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(identity.Customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartPayload(updated))
}

// Product is the composed product payload of an order.
type Product struct {
	Base     string     `json:"base"`
	Sauce    string     `json:"sauce"`
	Cheese   string     `json:"cheese"`
	Veggies  []string   `json:"veggies"`
	Size     string     `json:"size"`
	Quantity int        `json:"quantity"`
	Items    []CartItem `json:"items"`
}

// Address is the delivery address payload.
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Order is the order payload returned by command endpoints.
type Order struct {
	OrderRef   string    `json:"orderRef"`
	PaymentRef string    `json:"paymentRef"`
	Customer   string    `json:"customer"`
	Product    Product   `json:"product"`
	Address    Address   `json:"address"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	Progress   int       `json:"progress"`
	Feedback   *int      `json:"feedback"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PlaceOrder handles POST /api/v1/orders - places a paid order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	identity, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	var request struct {
		OrderRef        string   `json:"orderRef"`
		PaymentRef      string   `json:"paymentRef"`
		Product         Product  `json:"product"`
		Address         *Address `json:"address"`
		UseSavedAddress bool     `json:"useSavedAddress"`
		TotalPrice      float64  `json:"totalPrice"`
	}
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var address *kernel.Address
	if request.Address != nil {
		parsed, addrErr := kernel.NewAddress(
			request.Address.Name,
			request.Address.Phone,
			request.Address.Street,
			request.Address.City,
			request.Address.Pincode,
		)
		if addrErr != nil {
			return s.fail(ctx, addrErr)
		}
		address = &parsed
	}

	cmd, err := commands.NewPlaceOrderCommand(
		request.OrderRef,
		request.PaymentRef,
		identity.Customer,
		toProductSnapshot(request.Product),
		address,
		request.UseSavedAddress,
		request.TotalPrice,
		time.Now(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	placed, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderPayload(placed))
}

// GetOrder handles GET /api/v1/orders/:orderRef - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	identity, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(identity.Customer, ctx.Param("orderRef"))
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	identity, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(identity.Customer, identity.Customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordFeedback handles POST /api/v1/orders/:orderRef/feedback.
func (s *Server) RecordFeedback(ctx echo.Context) error {
	if _, err := s.resolve(ctx); err != nil {
		return err
	}

	var request struct {
		Rating int `json:"rating"`
	}
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRecordFeedbackCommand(ctx.Param("orderRef"), request.Rating)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.RecordFeedback.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPayload(updated))
}

// GetAllOrders handles GET /api/v1/admin/orders - lists every order.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	response, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderSummary handles GET /api/v1/admin/summary - order count and revenue.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	response, err := s.handlers.GetOrderSummary.Handle(ctx.Request().Context(), queries.NewGetOrderSummaryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetOrderStatus handles PUT /api/v1/admin/orders/:orderRef/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(ctx.Param("orderRef"), status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.SetOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPayload(updated))
}

// SetOrderProgress handles PUT /api/v1/admin/orders/:orderRef/progress.
func (s *Server) SetOrderProgress(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	var request struct {
		Progress int `json:"progress"`
	}
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewSetOrderProgressCommand(ctx.Param("orderRef"), request.Progress)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.SetOrderProgress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPayload(updated))
}

// GetInventory handles GET /api/v1/admin/inventory - the full ledger.
func (s *Server) GetInventory(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	response, err := s.handlers.GetInventory.Handle(ctx.Request().Context(), queries.NewGetInventoryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddIngredient handles POST /api/v1/admin/inventory/:category.
func (s *Server) AddIngredient(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	category, err := inventory.ParseCategory(ctx.Param("category"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var request struct {
		Name string `json:"name"`
	}
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAddIngredientCommand(category, request.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddIngredient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RenameIngredient handles PUT /api/v1/admin/inventory/:category/:name.
func (s *Server) RenameIngredient(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	category, err := inventory.ParseCategory(ctx.Param("category"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var request struct {
		NewName string `json:"newName"`
	}
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRenameIngredientCommand(category, ctx.Param("name"), request.NewName)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RenameIngredient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// Ingredient is one ledger entry payload.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Alerted  bool   `json:"alerted"`
}

// AdjustIngredientQuantity handles PATCH /api/v1/admin/inventory/:category/:name.
func (s *Server) AdjustIngredientQuantity(ctx echo.Context) error {
	if _, err := s.resolveAdmin(ctx); err != nil {
		return err
	}

	category, err := inventory.ParseCategory(ctx.Param("category"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var request struct {
		Delta int `json:"delta"`
	}
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAdjustIngredientQuantityCommand(category, ctx.Param("name"), request.Delta)
	if err != nil {
		return s.fail(ctx, err)
	}

	adjustment, err := s.handlers.AdjustIngredientQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Ingredient{
		Name:     adjustment.Entry.Name(),
		Quantity: adjustment.Entry.Quantity(),
		Alerted:  adjustment.Entry.Alerted(),
	})
}

func toCartPayload(aggregate *cart.Cart) Cart {
	items := make([]CartItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItem{
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Size:        item.Size(),
			Image:       item.Image(),
		})
	}

	return Cart{
		Customer:  aggregate.Customer(),
		Items:     items,
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toProductSnapshot(payload Product) order.ProductSnapshot {
	items := make([]order.SnapshotItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, order.SnapshotItem{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}

	return order.ProductSnapshot{
		Base:     payload.Base,
		Sauce:    payload.Sauce,
		Cheese:   payload.Cheese,
		Veggies:  payload.Veggies,
		Size:     payload.Size,
		Quantity: payload.Quantity,
		Items:    items,
	}
}

func toOrderPayload(aggregate *order.Order) Order {
	product := aggregate.Product()
	items := make([]CartItem, 0, len(product.Items))
	for _, item := range product.Items {
		items = append(items, CartItem{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}

	address := aggregate.Address()

	return Order{
		OrderRef:   aggregate.OrderRef(),
		PaymentRef: aggregate.PaymentRef(),
		Customer:   aggregate.Customer(),
		Product: Product{
			Base:     product.Base,
			Sauce:    product.Sauce,
			Cheese:   product.Cheese,
			Veggies:  product.Veggies,
			Size:     product.Size,
			Quantity: product.Quantity,
			Items:    items,
		},
		Address: Address{
			Name:    address.Name(),
			Phone:   address.Phone(),
			Street:  address.Street(),
			City:    address.City(),
			Pincode: address.Pincode(),
		},
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status().String(),
		Progress:   aggregate.Progress(),
		Feedback:   aggregate.Feedback(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}
