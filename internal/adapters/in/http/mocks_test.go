package http_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateServiceRequest struct{ mock.Mock }

func (m *MockCreateServiceRequest) Handle(ctx context.Context, c commands.CreateServiceRequestCommand) (kernel.ID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockUpdateServiceRequest struct{ mock.Mock }

func (m *MockUpdateServiceRequest) Handle(ctx context.Context, c commands.UpdateServiceRequestCommand) error {
	return m.Called(ctx, c).Error(0)
}

type MockChangeServiceRequestStatus struct{ mock.Mock }

func (m *MockChangeServiceRequestStatus) Handle(ctx context.Context, c commands.ChangeServiceRequestStatusCommand) error {
	return m.Called(ctx, c).Error(0)
}

type MockAllocate struct{ mock.Mock }

func (m *MockAllocate) Handle(ctx context.Context, c commands.AllocateCommand) (kernel.ID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockUpdateAssignment struct{ mock.Mock }

func (m *MockUpdateAssignment) Handle(ctx context.Context, c commands.UpdateAssignmentCommand) error {
	return m.Called(ctx, c).Error(0)
}

type MockDeleteAssignment struct{ mock.Mock }

func (m *MockDeleteAssignment) Handle(ctx context.Context, c commands.DeleteAssignmentCommand) error {
	return m.Called(ctx, c).Error(0)
}

type MockGetServiceRequest struct{ mock.Mock }

func (m *MockGetServiceRequest) Handle(
	ctx context.Context,
	q queries.GetServiceRequestQuery,
) (*queries.ServiceRequestResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ServiceRequestResponse), args.Error(1)
}

type MockListServiceRequests struct{ mock.Mock }

func (m *MockListServiceRequests) Handle(
	ctx context.Context,
	q queries.ListServiceRequestsQuery,
) ([]queries.ServiceRequestResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ServiceRequestResponse), args.Error(1)
}

type MockGetAssignment struct{ mock.Mock }

func (m *MockGetAssignment) Handle(ctx context.Context, q queries.GetAssignmentQuery) (*queries.AssignmentResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AssignmentResponse), args.Error(1)
}

type MockGetAvailableDrivers struct{ mock.Mock }

func (m *MockGetAvailableDrivers) Handle(
	ctx context.Context,
	q queries.GetAvailableDriversQuery,
) ([]queries.DriverResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.DriverResponse), args.Error(1)
}

type MockGetAvailableVehicles struct{ mock.Mock }

func (m *MockGetAvailableVehicles) Handle(
	ctx context.Context,
	q queries.GetAvailableVehiclesQuery,
) ([]queries.VehicleResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.VehicleResponse), args.Error(1)
}

type MockDeleteServiceRequest struct{ mock.Mock }

func (m *MockDeleteServiceRequest) Handle(ctx context.Context, c commands.DeleteServiceRequestCommand) error {
	return m.Called(ctx, c).Error(0)
}

type MockTrackServiceRequests struct{ mock.Mock }

func (m *MockTrackServiceRequests) Handle(
	ctx context.Context,
	q queries.TrackServiceRequestsQuery,
) ([]queries.TrackedServiceRequestResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.TrackedServiceRequestResponse), args.Error(1)
}

type MockListAssignments struct{ mock.Mock }

func (m *MockListAssignments) Handle(
	ctx context.Context,
	q queries.ListAssignmentsQuery,
) ([]queries.AssignmentResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.AssignmentResponse), args.Error(1)
}

type MockListDrivers struct{ mock.Mock }

func (m *MockListDrivers) Handle(ctx context.Context, q queries.ListDriversQuery) ([]queries.DriverResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.DriverResponse), args.Error(1)
}

type MockGetDriver struct{ mock.Mock }

func (m *MockGetDriver) Handle(ctx context.Context, q queries.GetDriverQuery) (*queries.DriverResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.DriverResponse), args.Error(1)
}

type MockListVehicles struct{ mock.Mock }

func (m *MockListVehicles) Handle(ctx context.Context, q queries.ListVehiclesQuery) ([]queries.VehicleResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.VehicleResponse), args.Error(1)
}

type MockGetVehicle struct{ mock.Mock }

func (m *MockGetVehicle) Handle(ctx context.Context, q queries.GetVehicleQuery) (*queries.VehicleResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.VehicleResponse), args.Error(1)
}
