package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const internalErrorMessage = "Internal server error"

type (
	CreateServiceRequestHandler interface {
		Handle(ctx context.Context, command commands.CreateServiceRequestCommand) (kernel.ID, error)
	}
	UpdateServiceRequestHandler interface {
		Handle(ctx context.Context, command commands.UpdateServiceRequestCommand) error
	}
	ChangeServiceRequestStatusHandler interface {
		Handle(ctx context.Context, command commands.ChangeServiceRequestStatusCommand) error
	}
	AllocateHandler interface {
		Handle(ctx context.Context, command commands.AllocateCommand) (kernel.ID, error)
	}
	UpdateAssignmentHandler interface {
		Handle(ctx context.Context, command commands.UpdateAssignmentCommand) error
	}
	DeleteAssignmentHandler interface {
		Handle(ctx context.Context, command commands.DeleteAssignmentCommand) error
	}
	DeleteServiceRequestHandler interface {
		Handle(ctx context.Context, command commands.DeleteServiceRequestCommand) error
	}

	GetServiceRequestHandler interface {
		Handle(ctx context.Context, query queries.GetServiceRequestQuery) (*queries.ServiceRequestResponse, error)
	}
	ListServiceRequestsHandler interface {
		Handle(ctx context.Context, query queries.ListServiceRequestsQuery) ([]queries.ServiceRequestResponse, error)
	}
	GetAssignmentHandler interface {
		Handle(ctx context.Context, query queries.GetAssignmentQuery) (*queries.AssignmentResponse, error)
	}
	GetAvailableDriversHandler interface {
		Handle(ctx context.Context, query queries.GetAvailableDriversQuery) ([]queries.DriverResponse, error)
	}
	GetAvailableVehiclesHandler interface {
		Handle(ctx context.Context, query queries.GetAvailableVehiclesQuery) ([]queries.VehicleResponse, error)
	}
	TrackServiceRequestsHandler interface {
		Handle(
			ctx context.Context,
			query queries.TrackServiceRequestsQuery,
		) ([]queries.TrackedServiceRequestResponse, error)
	}
	ListAssignmentsHandler interface {
		Handle(ctx context.Context, query queries.ListAssignmentsQuery) ([]queries.AssignmentResponse, error)
	}
	ListDriversHandler interface {
		Handle(ctx context.Context, query queries.ListDriversQuery) ([]queries.DriverResponse, error)
	}
	GetDriverHandler interface {
		Handle(ctx context.Context, query queries.GetDriverQuery) (*queries.DriverResponse, error)
	}
	ListVehiclesHandler interface {
		Handle(ctx context.Context, query queries.ListVehiclesQuery) ([]queries.VehicleResponse, error)
	}
	GetVehicleHandler interface {
		Handle(ctx context.Context, query queries.GetVehicleQuery) (*queries.VehicleResponse, error)
	}
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateServiceRequest       CreateServiceRequestHandler
	UpdateServiceRequest       UpdateServiceRequestHandler
	ChangeServiceRequestStatus ChangeServiceRequestStatusHandler
	Allocate                   AllocateHandler
	UpdateAssignment           UpdateAssignmentHandler
	DeleteAssignment           DeleteAssignmentHandler
	DeleteServiceRequest       DeleteServiceRequestHandler

	// Query handlers
	GetServiceRequest    GetServiceRequestHandler
	ListServiceRequests  ListServiceRequestsHandler
	TrackServiceRequests TrackServiceRequestsHandler
	GetAssignment        GetAssignmentHandler
	ListAssignments      ListAssignmentsHandler
	GetAvailableDrivers  GetAvailableDriversHandler
	GetAvailableVehicles GetAvailableVehiclesHandler
	ListDrivers          ListDriversHandler
	GetDriver            GetDriverHandler
	ListVehicles         ListVehiclesHandler
	GetVehicle           GetVehicleHandler
}

// Server implements servers.ServerInterface. It translates HTTP requests into
// commands and queries and maps their errors onto status codes.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// CreateServiceRequest handles POST /api/v1/service-requests.
func (s *Server) CreateServiceRequest(ctx echo.Context) error {
	var body servers.NewServiceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateServiceRequestCommand(servicerequest.Details{
		CustomerName:        body.CustomerName,
		CustomerEmail:       body.CustomerEmail,
		CustomerPhone:       body.CustomerPhone,
		ServiceType:         body.ServiceType,
		PickupAddress:       body.PickupAddress,
		DeliveryAddress:     body.DeliveryAddress,
		PreferredDate:       body.PreferredDate.Time,
		SpecialInstructions: body.SpecialInstructions,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.CreateServiceRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: id.Int64()})
}

// ListServiceRequests handles GET /api/v1/service-requests.
func (s *Server) ListServiceRequests(ctx echo.Context, params servers.ListServiceRequestsParams) error {
	var status *servicerequest.Status
	if params.Status != nil {
		parsed, err := servicerequest.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListServiceRequestsQuery(status, params.ServiceType)
	if err != nil {
		return s.fail(ctx, err)
	}

	requests, err := s.h.ListServiceRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ServiceRequest, len(requests))
	for i, r := range requests {
		response[i] = toServiceRequest(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetServiceRequest handles GET /api/v1/service-requests/:id.
func (s *Server) GetServiceRequest(ctx echo.Context, id servers.Id) error {
	requestID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetServiceRequestQuery(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	request, err := s.h.GetServiceRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toServiceRequest(*request))
}

// TrackServiceRequests handles GET /api/v1/service-requests/track.
func (s *Server) TrackServiceRequests(ctx echo.Context, params servers.TrackServiceRequestsParams) error {
	query, err := queries.NewTrackServiceRequestsQuery(params.Email, params.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	tracked, err := s.h.TrackServiceRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TrackedServiceRequest, len(tracked))
	for i, t := range tracked {
		r := toServiceRequest(t.ServiceRequestResponse)
		response[i] = servers.TrackedServiceRequest{
			Id:                  r.Id,
			CustomerName:        r.CustomerName,
			CustomerEmail:       r.CustomerEmail,
			CustomerPhone:       r.CustomerPhone,
			ServiceType:         r.ServiceType,
			PickupAddress:       r.PickupAddress,
			DeliveryAddress:     r.DeliveryAddress,
			PreferredDate:       r.PreferredDate,
			SpecialInstructions: r.SpecialInstructions,
			Status:              r.Status,
			CreatedAt:           r.CreatedAt,
			UpdatedAt:           r.UpdatedAt,
		}
		if a := t.Assignment; a != nil {
			response[i].Assignment = &servers.TrackedAssignment{
				Id:            a.ID,
				ScheduledDate: a.ScheduledDate,
				Status:        servers.AssignmentStatus(a.Status),
				DriverName:    a.DriverName,
				DriverPhone:   a.DriverPhone,
				VehicleModel:  a.VehicleModel,
				VehiclePlate:  a.VehiclePlate,
			}
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteServiceRequest handles DELETE /api/v1/service-requests/:id.
func (s *Server) DeleteServiceRequest(ctx echo.Context, id servers.Id) error {
	requestID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteServiceRequestCommand(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteServiceRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Service request deleted"})
}

// serviceRequestEdit is the PUT body. Status is decoded only so that it can be
// rejected: it changes through the status endpoint.
type serviceRequestEdit struct {
	servers.ServiceRequestUpdate
	Status *string `json:"status,omitempty"`
}

// UpdateServiceRequest handles PUT /api/v1/service-requests/:id.
func (s *Server) UpdateServiceRequest(ctx echo.Context, id servers.Id) error {
	var body serviceRequestEdit
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if body.Status != nil {
		return badRequest(ctx, "status is changed through PATCH /api/v1/service-requests/{id}/status")
	}

	requestID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	patch := servicerequest.Patch{
		CustomerName:        body.CustomerName,
		CustomerEmail:       body.CustomerEmail,
		CustomerPhone:       body.CustomerPhone,
		ServiceType:         body.ServiceType,
		PickupAddress:       body.PickupAddress,
		DeliveryAddress:     body.DeliveryAddress,
		SpecialInstructions: body.SpecialInstructions,
	}
	if body.PreferredDate != nil {
		patch.PreferredDate = &body.PreferredDate.Time
	}

	cmd, err := commands.NewUpdateServiceRequestCommand(requestID, patch)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdateServiceRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Service request updated"})
}

// UpdateServiceRequestStatus handles PATCH /api/v1/service-requests/:id/status.
func (s *Server) UpdateServiceRequestStatus(ctx echo.Context, id servers.Id) error {
	var body servers.ServiceRequestStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := servicerequest.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeServiceRequestStatusCommand(requestID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.ChangeServiceRequestStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Service request status updated"})
}

// CreateAssignment handles POST /api/v1/assignments.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var body servers.NewAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestID, reqErr := kernel.NewID(body.RequestId)
	driverID, drvErr := kernel.NewID(body.DriverId)
	vehicleID, vehErr := kernel.NewID(body.VehicleId)
	if err := errors.Join(reqErr, drvErr, vehErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAllocateCommand(requestID, driverID, vehicleID, body.ScheduledDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.Allocate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: id.Int64()})
}

// GetAssignment handles GET /api/v1/assignments/:id.
func (s *Server) GetAssignment(ctx echo.Context, id servers.Id) error {
	assignmentID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetAssignmentQuery(assignmentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	a, err := s.h.GetAssignment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignment(*a))
}

// ListAssignments handles GET /api/v1/assignments.
func (s *Server) ListAssignments(ctx echo.Context) error {
	assignments, err := s.h.ListAssignments.Handle(ctx.Request().Context(), queries.NewListAssignmentsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Assignment, len(assignments))
	for i, a := range assignments {
		response[i] = toAssignment(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateAssignment handles PUT /api/v1/assignments/:id.
func (s *Server) UpdateAssignment(ctx echo.Context, id servers.Id) error {
	var body servers.AssignmentUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	assignmentID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var status *assignment.Status
	if body.Status != nil {
		parsed, err := assignment.ParseStatus(string(*body.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateAssignmentCommand(assignmentID, status, body.ScheduledDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdateAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Assignment updated"})
}

// DeleteAssignment handles DELETE /api/v1/assignments/:id.
func (s *Server) DeleteAssignment(ctx echo.Context, id servers.Id) error {
	assignmentID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteAssignmentCommand(assignmentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Assignment deleted"})
}

// ListAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) ListAvailableDrivers(ctx echo.Context) error {
	drivers, err := s.h.GetAvailableDrivers.Handle(ctx.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDrivers(drivers))
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	drivers, err := s.h.ListDrivers.Handle(ctx.Request().Context(), queries.NewListDriversQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDrivers(drivers))
}

// GetDriver handles GET /api/v1/drivers/:id.
func (s *Server) GetDriver(ctx echo.Context, id servers.Id) error {
	driverID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.h.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriver(*d))
}

// ListAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) ListAvailableVehicles(ctx echo.Context) error {
	vehicles, err := s.h.GetAvailableVehicles.Handle(ctx.Request().Context(), queries.NewGetAvailableVehiclesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehicles(vehicles))
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	vehicles, err := s.h.ListVehicles.Handle(ctx.Request().Context(), queries.NewListVehiclesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehicles(vehicles))
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context, id servers.Id) error {
	vehicleID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetVehicleQuery(vehicleID)
	if err != nil {
		return s.fail(ctx, err)
	}

	v, err := s.h.GetVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehicle(*v))
}

// fail writes the error response for err. Validation and conflict errors are
// client errors; anything unrecognised is logged and answered generically.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrConflict), errs.IsValidation(err):
		return badRequest(ctx, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"request_id", requestID(ctx),
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: internalErrorMessage,
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

func requestID(ctx echo.Context) string {
	if id := ctx.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return ctx.Request().Header.Get(echo.HeaderXRequestID)
}

func toServiceRequest(r queries.ServiceRequestResponse) servers.ServiceRequest {
	return servers.ServiceRequest{
		Id:                  r.ID,
		CustomerName:        r.CustomerName,
		CustomerEmail:       r.CustomerEmail,
		CustomerPhone:       r.CustomerPhone,
		ServiceType:         r.ServiceType,
		PickupAddress:       r.PickupAddress,
		DeliveryAddress:     r.DeliveryAddress,
		PreferredDate:       openapi_types.Date{Time: r.PreferredDate},
		SpecialInstructions: r.SpecialInstructions,
		Status:              servers.ServiceRequestStatus(r.Status),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}


func toAssignment(a queries.AssignmentResponse) servers.Assignment {
	return servers.Assignment{
		Id:            a.ID,
		RequestId:     a.RequestID,
		DriverId:      a.DriverID,
		VehicleId:     a.VehicleID,
		ScheduledDate: a.ScheduledDate,
		Status:        servers.AssignmentStatus(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toDriver(d queries.DriverResponse) servers.Driver {
	return servers.Driver{
		Id:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		Email:         d.Email,
		LicenseNumber: d.LicenseNumber,
		Status:        d.Status,
	}
}

func toDrivers(drivers []queries.DriverResponse) []servers.Driver {
	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toDriver(d)
	}
	return response
}

func toVehicle(v queries.VehicleResponse) servers.Vehicle {
	return servers.Vehicle{
		Id:          v.ID,
		Model:       v.Model,
		PlateNumber: v.PlateNumber,
		Year:        v.Year,
		Capacity:    v.Capacity,
		Status:      v.Status,
	}
}

func toVehicles(vehicles []queries.VehicleResponse) []servers.Vehicle {
	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = toVehicle(v)
	}
	return response
}
