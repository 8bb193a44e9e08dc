// Package http is the inbound HTTP adapter. It binds the five-route JSON
// surface onto the command and query handlers and maps application errors to
// status codes:
//
//	validation / unknown action -> 400
//	offer no longer active      -> 409
//	unknown entity or route     -> 404 (logged at warn)
//	storage failure             -> 500 (logged at error, raw message in body)
//
// All failures share the body shape {"error": "<message>"}.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/offer"
	"freightmatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const notFoundMessage = "Not Found"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	createDriverHandler   commands.CreateDriverCommandHandler
	resolveOfferHandler   commands.ResolveOfferCommandHandler

	// Query handlers
	getShipmentHandler queries.GetShipmentQueryHandler
	getDriverHandler   queries.GetDriverQueryHandler

	logger *slog.Logger
}

// NewServer creates the HTTP server adapter with the required command and
// query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	resolveOfferHandler commands.ResolveOfferCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getDriverHandler queries.GetDriverQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createShipmentHandler: createShipmentHandler,
		createDriverHandler:   createDriverHandler,
		resolveOfferHandler:   resolveOfferHandler,
		getShipmentHandler:    getShipmentHandler,
		getDriverHandler:      getDriverHandler,
		logger:                logger.With("component", "http"),
	}
}

// RegisterRoutes installs the routing table on the echo instance. The table
// is built exactly once, at startup.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/shipment", s.CreateShipment)
	e.GET("/shipment/:id", s.GetShipment)
	e.PUT("/offer/:id", s.ResolveOffer)
	e.POST("/driver", s.CreateDriver)
	e.GET("/driver/:id", s.GetDriver)
}

type errorResponse struct {
	Error string `json:"error"`
}

type offerPairResponse struct {
	OfferID  string `json:"offerId"`
	DriverID string `json:"driverId"`
}

type shipmentCreatedResponse struct {
	ID     string              `json:"id"`
	Offers []offerPairResponse `json:"offers"`
}

type shipmentResponse struct {
	ID     string               `json:"id"`
	Offer  *offerPairResponse   `json:"offer,omitempty"`
	Offers *[]offerPairResponse `json:"offers,omitempty"`
}

type driverOfferResponse struct {
	OfferID    string `json:"offerId"`
	ShipmentID string `json:"shipmentId"`
}

type driverResponse struct {
	ID     string                `json:"id"`
	Offers []driverOfferResponse `json:"offers"`
}

type capacityRequest struct {
	Capacity *int `json:"capacity"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// CreateShipment handles POST /shipment: creates the shipment and fans out
// one offer per eligible driver.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req capacityRequest
	if err := ctx.Bind(&req); err != nil || req.Capacity == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error: `"capacity" must be a number.`,
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), *req.Capacity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	offers, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := shipmentCreatedResponse{
		ID:     cmd.ShipmentID().String(),
		Offers: make([]offerPairResponse, 0, len(offers)),
	}
	for _, o := range offers {
		response.Offers = append(response.Offers, offerPairResponse{
			OfferID:  o.OfferID.String(),
			DriverID: o.DriverID.String(),
		})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetShipment handles GET /shipment/:id. While the shipment is unaccepted
// the body carries an "offers" array; once accepted it carries the single
// winning "offer" instead.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.punt(ctx)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.punt(ctx)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := shipmentResponse{ID: result.ID.String()}
	if result.Accepted {
		if len(result.Offers) > 0 {
			response.Offer = &offerPairResponse{
				OfferID:  result.Offers[0].OfferID.String(),
				DriverID: result.Offers[0].DriverID.String(),
			}
		}
	} else {
		offers := make([]offerPairResponse, 0, len(result.Offers))
		for _, o := range result.Offers {
			offers = append(offers, offerPairResponse{
				OfferID:  o.OfferID.String(),
				DriverID: o.DriverID.String(),
			})
		}
		response.Offers = &offers
	}

	return ctx.JSON(http.StatusOK, response)
}

// ResolveOffer handles PUT /offer/:id with body {"status": "ACCEPT"|"PASS"}.
func (s *Server) ResolveOffer(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.punt(ctx)
	}

	var req statusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: offer.ErrInvalidStatus.Error()})
	}

	action, err := offer.ActionFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewResolveOfferCommand(id, action)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.resolveOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, struct{}{})
}

// CreateDriver handles POST /driver: registers a driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req capacityRequest
	if err := ctx.Bind(&req); err != nil || req.Capacity == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error: `"capacity" must be a number.`,
		})
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), *req.Capacity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.DriverID().String()})
}

// GetDriver handles GET /driver/:id: the driver and its outstanding offers.
func (s *Server) GetDriver(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.punt(ctx)
	}

	query, err := queries.NewGetDriverQuery(id)
	if err != nil {
		return s.punt(ctx)
	}

	result, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := driverResponse{
		ID:     result.ID.String(),
		Offers: make([]driverOfferResponse, 0, len(result.Offers)),
	}
	for _, o := range result.Offers {
		response.Offers = append(response.Offers, driverOfferResponse{
			OfferID:    o.OfferID.String(),
			ShipmentID: o.ShipmentID.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// fail maps an application error onto a status code and the shared error
// body. Business-rule failures are not system errors and are never logged as
// such; storage failures are.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, offer.ErrNotActive):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, offer.ErrInvalidStatus),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.punt(ctx)
	default:
		s.logger.Error("storage failure", "error", err,
			"method", ctx.Request().Method, "path", ctx.Request().URL.Path)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// punt sends the 404 response shared by unknown routes and unknown entity
// identifiers.
func (s *Server) punt(ctx echo.Context) error {
	s.logger.Warn(notFoundMessage,
		"method", ctx.Request().Method, "path", ctx.Request().URL.Path)
	return ctx.JSON(http.StatusNotFound, errorResponse{Error: notFoundMessage})
}
