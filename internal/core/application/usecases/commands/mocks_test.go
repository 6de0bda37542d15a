package commands_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Handlers open a tracing span, so the context they pass on is derived from
// the test context rather than equal to it.
const anyCtx = mock.Anything

type MockServiceRequestRepository struct{ mock.Mock }

func (m *MockServiceRequestRepository) Create(ctx context.Context, req *servicerequest.ServiceRequest) (kernel.ID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockServiceRequestRepository) Get(ctx context.Context, id kernel.ID) (*servicerequest.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicerequest.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) GetForUpdate(
	ctx context.Context,
	id kernel.ID,
) (*servicerequest.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicerequest.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) UpdateFields(ctx context.Context, id kernel.ID, p servicerequest.Patch) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockServiceRequestRepository) SetStatus(ctx context.Context, id kernel.ID, s servicerequest.Status) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockServiceRequestRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockResourceDirectory struct{ mock.Mock }

func (m *MockResourceDirectory) Reserve(ctx context.Context, kind resource.Kind, id kernel.ID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockResourceDirectory) Release(ctx context.Context, kind resource.Kind, id kernel.ID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockResourceDirectory) AddDriver(ctx context.Context, d *resource.Driver) (kernel.ID, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockResourceDirectory) AddVehicle(ctx context.Context, v *resource.Vehicle) (kernel.ID, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockAssignmentLedger struct{ mock.Mock }

func (m *MockAssignmentLedger) Insert(ctx context.Context, a *assignment.Assignment) (kernel.ID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockAssignmentLedger) Get(ctx context.Context, id kernel.ID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentLedger) GetForUpdate(ctx context.Context, id kernel.ID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentLedger) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentLedger) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssignmentLedger) FindActiveForRequest(
	ctx context.Context,
	requestID kernel.ID,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentLedger) HasActiveForResource(
	ctx context.Context,
	kind resource.Kind,
	id kernel.ID,
	excluding kernel.ID,
) (bool, error) {
	args := m.Called(ctx, kind, id, excluding)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ServiceRequestRepository() ports.ServiceRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRequestRepository)
}

func (m *MockUoW) ResourceDirectory() ports.ResourceDirectory {
	args := m.Called()
	return args.Get(0).(ports.ResourceDirectory)
}

func (m *MockUoW) AssignmentLedger() ports.AssignmentLedger {
	args := m.Called()
	return args.Get(0).(ports.AssignmentLedger)
}

func (m *MockUoW) Changes() []ports.StatusChange {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ports.StatusChange)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockServiceRequestUoWFactory struct{ mock.Mock }

func (m *MockServiceRequestUoWFactory) Create() commands.ServiceRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceRequestUoW)
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	m.Called(operation, outcome, elapsed)
}

func (m *MockRecorder) ObserveStatusChanges(changes []ports.StatusChange) {
	m.Called(changes)
}

// fixture wires a fresh unit of work with mocked stores.
type fixture struct {
	requests  *MockServiceRequestRepository
	directory *MockResourceDirectory
	ledger    *MockAssignmentLedger
	uow       *MockUoW
	factory   *MockUoWFactory
}

func newFixture() *fixture {
	f := &fixture{
		requests:  new(MockServiceRequestRepository),
		directory: new(MockResourceDirectory),
		ledger:    new(MockAssignmentLedger),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

// open returns the expectations every coordinator handler starts with.
func (f *fixture) open() []*mock.Call {
	return []*mock.Call{
		f.uow.On("Begin", anyCtx).Return(nil).Once(),
		f.uow.On("ServiceRequestRepository").Return(f.requests).Once(),
		f.uow.On("ResourceDirectory").Return(f.directory).Once(),
		f.uow.On("AssignmentLedger").Return(f.ledger).Once(),
	}
}

func (f *fixture) assertExpectations(t mock.TestingT) {
	f.requests.AssertExpectations(t)
	f.directory.AssertExpectations(t)
	f.ledger.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func id(v int64) kernel.ID {
	out, err := kernel.NewID(v)
	if err != nil {
		panic(err)
	}
	return out
}

func when() time.Time {
	return time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
}

func testDetails() servicerequest.Details {
	return servicerequest.Details{
		CustomerName:    "Carol Davis",
		CustomerEmail:   "carol@example.com",
		CustomerPhone:   "555-1003",
		ServiceType:     "Document Courier",
		PickupAddress:   "555 Business Blvd, City E",
		DeliveryAddress: "777 Corporate Dr, City F",
		PreferredDate:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func storedRequest(requestID int64, status servicerequest.Status) *servicerequest.ServiceRequest {
	req, err := servicerequest.RestoreServiceRequest(id(requestID), testDetails(), status, when(), when())
	if err != nil {
		panic(err)
	}
	return req
}

func storedAssignment(assignmentID, requestID, driverID, vehicleID int64, status assignment.Status) *assignment.Assignment {
	a, err := assignment.RestoreAssignment(
		id(assignmentID), id(requestID), id(driverID), id(vehicleID), when(), status, when(), when())
	if err != nil {
		panic(err)
	}
	return a
}

type MockServiceRequestUoW struct{ mock.Mock }

func (m *MockServiceRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceRequestUoW) ServiceRequestRepository() ports.ServiceRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRequestRepository)
}
