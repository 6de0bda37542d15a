package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var anyCtx = mock.Anything

type serverFixture struct {
	createRequest *MockCreateServiceRequest
	updateRequest *MockUpdateServiceRequest
	changeStatus  *MockChangeServiceRequestStatus
	allocate      *MockAllocate
	updateAssign  *MockUpdateAssignment
	deleteAssign  *MockDeleteAssignment
	getRequest    *MockGetServiceRequest
	listRequests  *MockListServiceRequests
	getAssignment *MockGetAssignment
	drivers       *MockGetAvailableDrivers
	vehicles      *MockGetAvailableVehicles
	deleteRequest *MockDeleteServiceRequest
	track         *MockTrackServiceRequests
	assignments   *MockListAssignments
	allDrivers    *MockListDrivers
	getDriver     *MockGetDriver
	allVehicles   *MockListVehicles
	getVehicle    *MockGetVehicle
	handlers      httpadapter.Handlers
	discardLogger *slog.Logger
}

func newServerFixture() *serverFixture {
	f := &serverFixture{
		createRequest: new(MockCreateServiceRequest),
		updateRequest: new(MockUpdateServiceRequest),
		changeStatus:  new(MockChangeServiceRequestStatus),
		allocate:      new(MockAllocate),
		updateAssign:  new(MockUpdateAssignment),
		deleteAssign:  new(MockDeleteAssignment),
		getRequest:    new(MockGetServiceRequest),
		listRequests:  new(MockListServiceRequests),
		getAssignment: new(MockGetAssignment),
		drivers:       new(MockGetAvailableDrivers),
		vehicles:      new(MockGetAvailableVehicles),
		deleteRequest: new(MockDeleteServiceRequest),
		track:         new(MockTrackServiceRequests),
		assignments:   new(MockListAssignments),
		allDrivers:    new(MockListDrivers),
		getDriver:     new(MockGetDriver),
		allVehicles:   new(MockListVehicles),
		getVehicle:    new(MockGetVehicle),
		discardLogger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	f.handlers = httpadapter.Handlers{
		CreateServiceRequest:       f.createRequest,
		UpdateServiceRequest:       f.updateRequest,
		ChangeServiceRequestStatus: f.changeStatus,
		Allocate:                   f.allocate,
		UpdateAssignment:           f.updateAssign,
		DeleteAssignment:           f.deleteAssign,
		GetServiceRequest:          f.getRequest,
		ListServiceRequests:        f.listRequests,
		GetAssignment:              f.getAssignment,
		GetAvailableDrivers:        f.drivers,
		GetAvailableVehicles:       f.vehicles,
		DeleteServiceRequest:       f.deleteRequest,
		TrackServiceRequests:       f.track,
		ListAssignments:            f.assignments,
		ListDrivers:                f.allDrivers,
		GetDriver:                  f.getDriver,
		ListVehicles:               f.allVehicles,
		GetVehicle:                 f.getVehicle,
	}
	return f
}

// echo registers the server routes without the validation middleware, so the
// handlers' own checks are exercised.
func (f *serverFixture) echo() *echo.Echo {
	e := echo.New()
	servers.RegisterHandlers(e, httpadapter.NewServer(f.handlers, f.discardLogger))
	return e
}

func (f *serverFixture) assertExpectations(t *testing.T) {
	t.Helper()
	mock.AssertExpectationsForObjects(t,
		f.createRequest, f.updateRequest, f.changeStatus, f.allocate, f.updateAssign, f.deleteAssign,
		f.getRequest, f.listRequests, f.getAssignment, f.drivers, f.vehicles,
		f.deleteRequest, f.track, f.assignments, f.allDrivers, f.getDriver, f.allVehicles, f.getVehicle,
	)
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func id(v int64) kernel.ID {
	out, err := kernel.NewID(v)
	if err != nil {
		panic(err)
	}
	return out
}

const newRequestBody = `{
	"customer_name": "Alice Thompson",
	"customer_email": "alice@example.com",
	"customer_phone": "555-1001",
	"service_type": "Package Delivery",
	"pickup_address": "123 Main St",
	"delivery_address": "456 Oak Ave",
	"preferred_date": "2026-11-02"
}`

func TestServer_CreateServiceRequest(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newServerFixture()
		f.createRequest.On("Handle", anyCtx, mock.MatchedBy(func(c commands.CreateServiceRequestCommand) bool {
			d := c.Details()
			return d.CustomerName == "Alice Thompson" && d.CustomerEmail == "alice@example.com" &&
				d.PreferredDate.Equal(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)) && d.SpecialInstructions == nil
		})).Return(id(4), nil).Once()

		rec := do(t, f.echo(), http.MethodPost, "/api/v1/service-requests", newRequestBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id": 4}`, rec.Body.String())
		f.assertExpectations(t)
	})

	t.Run("invalid_email_is_rejected_before_the_handler", func(t *testing.T) {
		f := newServerFixture()
		body := strings.Replace(newRequestBody, "alice@example.com", "not-an-email", 1)

		rec := do(t, f.echo(), http.MethodPost, "/api/v1/service-requests", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "customer_email")
		f.createRequest.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("malformed_body", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodPost, "/api/v1/service-requests", `{"customer_name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, servers.Error{Code: http.StatusBadRequest, Message: "Invalid request body"}, decodeError(t, rec))
	})
}

func TestServer_GetServiceRequest(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newServerFixture()
		created := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
		f.getRequest.On("Handle", anyCtx, mock.MatchedBy(func(q queries.GetServiceRequestQuery) bool {
			return q.RequestID() == id(7)
		})).Return(&queries.ServiceRequestResponse{
			ID:              7,
			CustomerName:    "Bob Martinez",
			CustomerEmail:   "bob@example.com",
			CustomerPhone:   "555-1002",
			ServiceType:     "Moving",
			PickupAddress:   "1 A St",
			DeliveryAddress: "2 B St",
			PreferredDate:   time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
			Status:          "assigned",
			CreatedAt:       created,
			UpdatedAt:       created,
		}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.InDelta(t, 7, got["id"], 0)
		assert.Equal(t, "assigned", got["status"])
		assert.Equal(t, "2026-11-03", got["preferred_date"])
		assert.NotContains(t, got, "special_instructions")
		f.assertExpectations(t)
	})

	t.Run("not_found", func(t *testing.T) {
		f := newServerFixture()
		f.getRequest.On("Handle", anyCtx, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("service_request", 7)).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests/7", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
	})

	t.Run("non_positive_id", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests/0", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.getRequest.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_ListServiceRequests(t *testing.T) {
	t.Run("filters_are_forwarded", func(t *testing.T) {
		f := newServerFixture()
		f.listRequests.On("Handle", anyCtx, mock.MatchedBy(func(q queries.ListServiceRequestsQuery) bool {
			status, hasStatus := q.Status()
			serviceType, hasType := q.ServiceType()
			return hasStatus && status == servicerequest.Pending && hasType && serviceType == "Moving"
		})).Return([]queries.ServiceRequestResponse{{ID: 2, Status: "pending"}, {ID: 1, Status: "pending"}}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests?status=pending&service_type=Moving", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.ServiceRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].Id)
		f.assertExpectations(t)
	})

	t.Run("empty_result_is_an_empty_array", func(t *testing.T) {
		f := newServerFixture()
		f.listRequests.On("Handle", anyCtx, mock.Anything).Return([]queries.ServiceRequestResponse{}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("unknown_status", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests?status=archived", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.listRequests.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("store_failure_is_generic", func(t *testing.T) {
		f := newServerFixture()
		f.listRequests.On("Handle", anyCtx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestServer_UpdateServiceRequest(t *testing.T) {
	t.Run("patch_is_forwarded", func(t *testing.T) {
		f := newServerFixture()
		f.updateRequest.On("Handle", anyCtx, mock.MatchedBy(func(c commands.UpdateServiceRequestCommand) bool {
			p := c.Patch()
			return c.RequestID() == id(5) && p.CustomerPhone != nil && *p.CustomerPhone == "555-9999" &&
				p.CustomerName == nil && p.PreferredDate == nil
		})).Return(nil).Once()

		rec := do(t, f.echo(), http.MethodPut, "/api/v1/service-requests/5", `{"customer_phone":"555-9999"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.assertExpectations(t)
	})

	t.Run("status_is_rejected", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodPut, "/api/v1/service-requests/5", `{"status":"completed"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "status")
		f.updateRequest.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("empty_patch", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodPut, "/api/v1/service-requests/5", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_UpdateServiceRequestStatus(t *testing.T) {
	t.Run("status_is_forwarded", func(t *testing.T) {
		f := newServerFixture()
		f.changeStatus.On("Handle", anyCtx, mock.MatchedBy(func(c commands.ChangeServiceRequestStatusCommand) bool {
			return c.RequestID() == id(3) && c.Status() == servicerequest.Completed
		})).Return(nil).Once()

		rec := do(t, f.echo(), http.MethodPatch, "/api/v1/service-requests/3/status", `{"status":"completed"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.assertExpectations(t)
	})

	t.Run("unknown_status", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodPatch, "/api/v1/service-requests/3/status", `{"status":"archived"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.changeStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("conflict", func(t *testing.T) {
		f := newServerFixture()
		f.changeStatus.On("Handle", anyCtx, mock.Anything).
			Return(errs.NewConflictError("request has no active assignment")).Once()

		rec := do(t, f.echo(), http.MethodPatch, "/api/v1/service-requests/3/status", `{"status":"assigned"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "conflict: request has no active assignment", decodeError(t, rec).Message)
	})

	t.Run("not_found", func(t *testing.T) {
		f := newServerFixture()
		f.changeStatus.On("Handle", anyCtx, mock.Anything).
			Return(errs.NewObjectNotFoundError("service_request", 3)).Once()

		rec := do(t, f.echo(), http.MethodPatch, "/api/v1/service-requests/3/status", `{"status":"cancelled"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_CreateAssignment(t *testing.T) {
	const body = `{"request_id":3,"driver_id":1,"vehicle_id":2,"scheduled_date":"2026-11-02T09:00:00Z"}`

	t.Run("created", func(t *testing.T) {
		f := newServerFixture()
		f.allocate.On("Handle", anyCtx, mock.MatchedBy(func(c commands.AllocateCommand) bool {
			return c.RequestID() == id(3) && c.DriverID() == id(1) && c.VehicleID() == id(2) &&
				c.ScheduledDate().Equal(time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC))
		})).Return(id(10), nil).Once()

		rec := do(t, f.echo(), http.MethodPost, "/api/v1/assignments", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id": 10}`, rec.Body.String())
		f.assertExpectations(t)
	})

	t.Run("error_mapping", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			code int
		}{
			{
				name: "driver_unavailable",
				err: errs.NewConflictErrorWithCause("driver is not available",
					errs.NewResourceUnavailableError("driver", 1, "assigned")),
				code: http.StatusBadRequest,
			},
			{
				name: "request_already_assigned",
				err:  errs.NewConflictError("request already has an active assignment"),
				code: http.StatusBadRequest,
			},
			{
				name: "missing_request",
				err:  errs.NewObjectNotFoundError("service_request", 3),
				code: http.StatusNotFound,
			},
			{
				name: "missing_vehicle",
				err:  errs.NewConflictError("vehicle 2 does not exist"),
				code: http.StatusBadRequest,
			},
			{
				name: "store_failure",
				err:  errors.New("deadlock detected"),
				code: http.StatusInternalServerError,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newServerFixture()
				f.allocate.On("Handle", anyCtx, mock.Anything).Return(kernel.ID{}, tt.err).Once()

				rec := do(t, f.echo(), http.MethodPost, "/api/v1/assignments", body)

				assert.Equal(t, tt.code, rec.Code)
				assert.Equal(t, tt.code, decodeError(t, rec).Code)
			})
		}
	})

	t.Run("missing_ids", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodPost, "/api/v1/assignments", `{"scheduled_date":"2026-11-02T09:00:00Z"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.allocate.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_UpdateAssignment(t *testing.T) {
	t.Run("status_and_date", func(t *testing.T) {
		f := newServerFixture()
		f.updateAssign.On("Handle", anyCtx, mock.MatchedBy(func(c commands.UpdateAssignmentCommand) bool {
			return c.AssignmentID() == id(10) &&
				c.Status() != nil && *c.Status() == assignment.InProgress &&
				c.ScheduledDate() != nil && c.ScheduledDate().Equal(time.Date(2026, 11, 4, 8, 0, 0, 0, time.UTC))
		})).Return(nil).Once()

		rec := do(t, f.echo(), http.MethodPut, "/api/v1/assignments/10",
			`{"status":"in_progress","scheduled_date":"2026-11-04T08:00:00Z"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.assertExpectations(t)
	})

	t.Run("nothing_to_update", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodPut, "/api/v1/assignments/10", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.updateAssign.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("unknown_status", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodPut, "/api/v1/assignments/10", `{"status":"paused"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid_transition", func(t *testing.T) {
		f := newServerFixture()
		f.updateAssign.On("Handle", anyCtx, mock.Anything).
			Return(errs.NewValueIsInvalidError("status")).Once()

		rec := do(t, f.echo(), http.MethodPut, "/api/v1/assignments/10", `{"status":"scheduled"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_DeleteAssignment(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newServerFixture()
		f.deleteAssign.On("Handle", anyCtx, mock.MatchedBy(func(c commands.DeleteAssignmentCommand) bool {
			return c.AssignmentID() == id(10)
		})).Return(nil).Once()

		rec := do(t, f.echo(), http.MethodDelete, "/api/v1/assignments/10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		f.assertExpectations(t)
	})

	t.Run("not_found", func(t *testing.T) {
		f := newServerFixture()
		f.deleteAssign.On("Handle", anyCtx, mock.Anything).
			Return(errs.NewObjectNotFoundError("assignment", 10)).Once()

		rec := do(t, f.echo(), http.MethodDelete, "/api/v1/assignments/10", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetAssignment(t *testing.T) {
	f := newServerFixture()
	scheduled := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)
	f.getAssignment.On("Handle", anyCtx, mock.MatchedBy(func(q queries.GetAssignmentQuery) bool {
		return q.AssignmentID() == id(10)
	})).Return(&queries.AssignmentResponse{
		ID: 10, RequestID: 3, DriverID: 1, VehicleID: 2,
		ScheduledDate: scheduled, Status: "scheduled", CreatedAt: scheduled, UpdatedAt: scheduled,
	}, nil).Once()

	rec := do(t, f.echo(), http.MethodGet, "/api/v1/assignments/10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got servers.Assignment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, servers.Assignment{
		Id: 10, RequestId: 3, DriverId: 1, VehicleId: 2,
		ScheduledDate: scheduled, Status: servers.AssignmentStatusScheduled, CreatedAt: scheduled, UpdatedAt: scheduled,
	}, got)
	f.assertExpectations(t)
}

func TestServer_AvailableResources(t *testing.T) {
	t.Run("drivers", func(t *testing.T) {
		f := newServerFixture()
		email := "john@example.com"
		f.drivers.On("Handle", anyCtx, mock.Anything).Return([]queries.DriverResponse{
			{ID: 1, Name: "John Smith", Phone: "555-0101", Email: &email, LicenseNumber: "DL123456", Status: "available"},
		}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/drivers/available", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.Driver
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "John Smith", got[0].Name)
		assert.Equal(t, &email, got[0].Email)
	})

	t.Run("vehicles", func(t *testing.T) {
		f := newServerFixture()
		f.vehicles.On("Handle", anyCtx, mock.Anything).Return([]queries.VehicleResponse{
			{ID: 2, Model: "Ford Transit", PlateNumber: "ABC-123", Year: 2022, Status: "available"},
		}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/vehicles/available", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.Vehicle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, 2022, got[0].Year)
		assert.Nil(t, got[0].Capacity)
	})

	t.Run("store_failure", func(t *testing.T) {
		f := newServerFixture()
		f.vehicles.On("Handle", anyCtx, mock.Anything).Return(nil, errors.New("timeout")).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/vehicles/available", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_DeleteServiceRequest(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newServerFixture()
		f.deleteRequest.On("Handle", anyCtx, mock.MatchedBy(func(c commands.DeleteServiceRequestCommand) bool {
			return c.RequestID() == id(3)
		})).Return(nil).Once()

		rec := do(t, f.echo(), http.MethodDelete, "/api/v1/service-requests/3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "Service request deleted"}`, rec.Body.String())
		f.assertExpectations(t)
	})

	t.Run("not_found", func(t *testing.T) {
		f := newServerFixture()
		f.deleteRequest.On("Handle", anyCtx, mock.Anything).
			Return(errs.NewObjectNotFoundError("service_request", 3)).Once()

		rec := do(t, f.echo(), http.MethodDelete, "/api/v1/service-requests/3", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_TrackServiceRequests(t *testing.T) {
	created := time.Date(2026, 10, 30, 12, 0, 0, 0, time.UTC)
	scheduled := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)

	t.Run("joined", func(t *testing.T) {
		f := newServerFixture()
		f.track.On("Handle", anyCtx, mock.MatchedBy(func(q queries.TrackServiceRequestsQuery) bool {
			return q.Email() == "alice@example.com" && q.Phone() == "555-1001"
		})).Return([]queries.TrackedServiceRequestResponse{
			{
				ServiceRequestResponse: queries.ServiceRequestResponse{
					ID: 4, CustomerName: "Alice Thompson", CustomerEmail: "alice@example.com",
					CustomerPhone: "555-1001", Status: "assigned", PreferredDate: scheduled,
					CreatedAt: created, UpdatedAt: created,
				},
				Assignment: &queries.TrackedAssignmentResponse{
					ID: 10, ScheduledDate: scheduled, Status: "scheduled",
					DriverName: "John Smith", DriverPhone: "555-0101",
					VehicleModel: "Ford Transit", VehiclePlate: "ABC-123",
				},
			},
			{
				ServiceRequestResponse: queries.ServiceRequestResponse{
					ID: 2, CustomerEmail: "alice@example.com", CustomerPhone: "555-1001",
					Status: "pending", CreatedAt: created, UpdatedAt: created,
				},
			},
		}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet,
			"/api/v1/service-requests/track?email=alice@example.com&phone=555-1001", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.TrackedServiceRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(4), got[0].Id)
		require.NotNil(t, got[0].Assignment)
		assert.Equal(t, servers.TrackedAssignment{
			Id: 10, ScheduledDate: scheduled, Status: servers.AssignmentStatusScheduled,
			DriverName: "John Smith", DriverPhone: "555-0101",
			VehicleModel: "Ford Transit", VehiclePlate: "ABC-123",
		}, *got[0].Assignment)
		assert.Nil(t, got[1].Assignment)
		f.assertExpectations(t)
	})

	t.Run("missing_phone", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/service-requests/track?email=alice@example.com", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.track.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("nothing_matches", func(t *testing.T) {
		f := newServerFixture()
		f.track.On("Handle", anyCtx, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("service_request", "bob@example.com")).Once()

		rec := do(t, f.echo(), http.MethodGet,
			"/api/v1/service-requests/track?email=bob@example.com&phone=555-2002", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ListAssignments(t *testing.T) {
	f := newServerFixture()
	scheduled := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)
	f.assignments.On("Handle", anyCtx, mock.Anything).Return([]queries.AssignmentResponse{
		{ID: 11, RequestID: 4, DriverID: 1, VehicleID: 2, ScheduledDate: scheduled, Status: "in_progress"},
		{ID: 10, RequestID: 3, DriverID: 5, VehicleID: 6, ScheduledDate: scheduled, Status: "completed"},
	}, nil).Once()

	rec := do(t, f.echo(), http.MethodGet, "/api/v1/assignments", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []servers.Assignment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, servers.AssignmentStatusInProgress, got[0].Status)
	assert.Equal(t, int64(10), got[1].Id)
	f.assertExpectations(t)
}

func TestServer_Resources(t *testing.T) {
	t.Run("list_drivers", func(t *testing.T) {
		f := newServerFixture()
		f.allDrivers.On("Handle", anyCtx, mock.Anything).Return([]queries.DriverResponse{
			{ID: 1, Name: "John Smith", Status: "assigned"},
			{ID: 3, Name: "Mike Davis", Status: "off_duty"},
		}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/drivers", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.Driver
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "off_duty", got[1].Status)
	})

	t.Run("get_driver", func(t *testing.T) {
		f := newServerFixture()
		f.getDriver.On("Handle", anyCtx, mock.MatchedBy(func(q queries.GetDriverQuery) bool {
			return q.DriverID() == id(1)
		})).Return(&queries.DriverResponse{ID: 1, Name: "John Smith", LicenseNumber: "DL123456"}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/drivers/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got servers.Driver
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "DL123456", got.LicenseNumber)
		f.assertExpectations(t)
	})

	t.Run("available_drivers_route_is_not_an_id", func(t *testing.T) {
		f := newServerFixture()
		f.drivers.On("Handle", anyCtx, mock.Anything).Return([]queries.DriverResponse{}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/drivers/available", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		f.getDriver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("list_vehicles", func(t *testing.T) {
		f := newServerFixture()
		f.allVehicles.On("Handle", anyCtx, mock.Anything).Return([]queries.VehicleResponse{
			{ID: 2, Model: "Ford Transit", Status: "maintenance"},
		}, nil).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/vehicles", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.Vehicle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "maintenance", got[0].Status)
	})

	t.Run("missing_vehicle", func(t *testing.T) {
		f := newServerFixture()
		f.getVehicle.On("Handle", anyCtx, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("vehicle", 9)).Once()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/vehicles/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid_id", func(t *testing.T) {
		f := newServerFixture()

		rec := do(t, f.echo(), http.MethodGet, "/api/v1/vehicles/0", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.getVehicle.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}
