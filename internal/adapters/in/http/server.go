// Package http provides the inbound HTTP adapter. The server translates JSON
// requests into commands and queries and maps domain errors onto HTTP status
// codes.
package http

import (
	"errors"
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createHandler  commands.CreatePurchaseOrderCommandHandler
	acceptHandler  commands.AcceptPurchaseOrderCommandHandler
	fulfillHandler commands.FulfillPurchaseOrderCommandHandler
	releaseHandler commands.ReleasePaymentCommandHandler
	cancelHandler  commands.CancelPurchaseOrderCommandHandler

	getOrderHandler         queries.GetPurchaseOrderQueryHandler
	getPartyOrdersHandler   queries.GetPartyPurchaseOrdersQueryHandler
	credentialStatusHandler queries.GetCredentialStatusQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createHandler commands.CreatePurchaseOrderCommandHandler,
	acceptHandler commands.AcceptPurchaseOrderCommandHandler,
	fulfillHandler commands.FulfillPurchaseOrderCommandHandler,
	releaseHandler commands.ReleasePaymentCommandHandler,
	cancelHandler commands.CancelPurchaseOrderCommandHandler,
	getOrderHandler queries.GetPurchaseOrderQueryHandler,
	getPartyOrdersHandler queries.GetPartyPurchaseOrdersQueryHandler,
	credentialStatusHandler queries.GetCredentialStatusQueryHandler,
) *Server {
	return &Server{
		createHandler:           createHandler,
		acceptHandler:           acceptHandler,
		fulfillHandler:          fulfillHandler,
		releaseHandler:          releaseHandler,
		cancelHandler:           cancelHandler,
		getOrderHandler:         getOrderHandler,
		getPartyOrdersHandler:   getPartyOrdersHandler,
		credentialStatusHandler: credentialStatusHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.POST("/purchase-orders/:id/accept", s.AcceptPurchaseOrder)
	api.POST("/purchase-orders/:id/fulfill", s.FulfillPurchaseOrder)
	api.POST("/purchase-orders/:id/release-payment", s.ReleasePayment)
	api.POST("/purchase-orders/:id/cancel", s.CancelPurchaseOrder)
	api.GET("/purchase-orders/:id", s.GetPurchaseOrder)
	api.GET("/parties/:party/purchase-orders", s.GetPartyPurchaseOrders)
	api.GET("/credentials/:ref/status", s.GetCredentialStatus)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var req CreatePurchaseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	buyer, err := kernel.NewParty(req.Buyer)
	if err != nil {
		return writeError(ctx, err)
	}
	seller, err := kernel.NewParty(req.Seller)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(
		buyer,
		seller,
		req.BuyerLEI,
		req.SellerLEI,
		req.BuyerVLEIAID,
		req.SellerVLEIAID,
		req.Description,
		kernel.NewAmount(req.Amount),
		req.CredentialRef,
		kernel.NewAmount(req.DeclaredLimit),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatePurchaseOrderResponse{ID: uint64(id)})
}

// AcceptPurchaseOrder handles POST /api/v1/purchase-orders/:id/accept.
func (s *Server) AcceptPurchaseOrder(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AcceptPurchaseOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	seller, err := kernel.NewParty(req.Seller)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptPurchaseOrderCommand(id, seller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FulfillPurchaseOrder handles POST /api/v1/purchase-orders/:id/fulfill.
func (s *Server) FulfillPurchaseOrder(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req FulfillPurchaseOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	seller, err := kernel.NewParty(req.Seller)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFulfillPurchaseOrderCommand(id, seller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.fulfillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleasePayment handles POST /api/v1/purchase-orders/:id/release-payment.
func (s *Server) ReleasePayment(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReleasePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	buyer, err := kernel.NewParty(req.Buyer)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReleasePaymentCommand(id, buyer, req.AssetRef)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.releaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelPurchaseOrder handles POST /api/v1/purchase-orders/:id/cancel.
func (s *Server) CancelPurchaseOrder(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req CancelPurchaseOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	buyer, err := kernel.NewParty(req.Buyer)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelPurchaseOrderCommand(id, buyer)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:id.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPurchaseOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PurchaseOrderResponse{
		ID:            uint64(order.ID),
		Buyer:         order.Buyer,
		Seller:        order.Seller,
		BuyerLEI:      order.BuyerLEI,
		SellerLEI:     order.SellerLEI,
		BuyerVLEIAID:  order.BuyerVLEIAID,
		SellerVLEIAID: order.SellerVLEIAID,
		Description:   order.Description,
		Amount:        order.Amount.Raw(),
		Status:        order.Status.String(),
		CreatedAt:     order.CreatedAt,
		FulfilledAt:   order.FulfilledAt,
	})
}

// GetPartyPurchaseOrders handles GET /api/v1/parties/:party/purchase-orders.
func (s *Server) GetPartyPurchaseOrders(ctx echo.Context) error {
	party, err := kernel.NewParty(ctx.Param("party"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPartyPurchaseOrdersQuery(party)
	if err != nil {
		return writeError(ctx, err)
	}

	ids, err := s.getPartyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	raw := make([]uint64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, uint64(id))
	}

	return ctx.JSON(http.StatusOK, PartyPurchaseOrdersResponse{OrderIDs: raw})
}

// GetCredentialStatus handles GET /api/v1/credentials/:ref/status.
func (s *Server) GetCredentialStatus(ctx echo.Context) error {
	ref := ctx.Param("ref")

	query, err := queries.NewGetCredentialStatusQuery(ref)
	if err != nil {
		return writeError(ctx, err)
	}

	verified, err := s.credentialStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CredentialStatusResponse{
		CredentialRef: ref,
		Verified:      verified,
	})
}

// writeError maps domain errors onto HTTP status codes. Validation errors and
// rejected credentials are client errors; anything unrecognized is a 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidStateTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrLimitExceeded):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidCredential),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
