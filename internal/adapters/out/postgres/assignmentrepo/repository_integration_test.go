package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/adapters/out/postgres/requestrepo"
	"dispatch/internal/adapters/out/postgres/resourcerepo"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockStatusTracker is a mock implementation of the statusTracker interface.
type MockStatusTracker struct {
	mock.Mock
}

func (m *MockStatusTracker) TrackStatus(entity string, id kernel.ID, status string) {
	m.Called(entity, id, status)
}

// AssignmentLedgerIntegrationTestSuite verifies assignment persistence and the
// active-assignment indexes against a real PostgreSQL database.
type AssignmentLedgerIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	ledger   *assignmentrepo.GormAssignmentLedger
	tracker  *MockStatusTracker

	requests  *requestrepo.GormServiceRequestRepository
	directory *resourcerepo.GormResourceDirectory
}

func (suite *AssignmentLedgerIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *AssignmentLedgerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate(context.Background()))

	suite.tracker = new(MockStatusTracker)
	suite.tracker.On("TrackStatus", mock.Anything, mock.Anything, mock.Anything).Maybe()

	db := suite.database.DB
	suite.ledger = assignmentrepo.NewGormAssignmentLedger(db, suite.tracker)
	suite.requests = requestrepo.NewGormServiceRequestRepository(db, suite.tracker)
	suite.directory = resourcerepo.NewGormResourceDirectory(db, suite.tracker)
}

func (suite *AssignmentLedgerIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestInsert_ValidAssignment_StoredAsScheduled() {
	ctx := context.Background()
	requestID, driverID, vehicleID := suite.addRequest(), suite.addDriver("DL001"), suite.addVehicle("ABC-123")

	id, err := suite.ledger.Insert(ctx, suite.newAssignment(requestID, driverID, vehicleID))
	suite.Require().NoError(err)

	stored, err := suite.ledger.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, stored.ID())
	suite.Equal(requestID, stored.RequestID())
	suite.Equal(driverID, stored.DriverID())
	suite.Equal(vehicleID, stored.VehicleID())
	suite.Equal(assignment.Scheduled, stored.Status())
	suite.True(scheduledAt().Equal(stored.ScheduledDate()))
	suite.tracker.AssertCalled(suite.T(), "TrackStatus", ports.EntityAssignment, id, "scheduled")
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestInsert_SecondActiveAssignment_ReturnsConflict() {
	ctx := context.Background()
	requestID, driverID, vehicleID := suite.addRequest(), suite.addDriver("DL001"), suite.addVehicle("ABC-123")
	_, err := suite.ledger.Insert(ctx, suite.newAssignment(requestID, driverID, vehicleID))
	suite.Require().NoError(err)

	testCases := []struct {
		name  string
		build func() *assignment.Assignment
	}{
		{
			name: "same request",
			build: func() *assignment.Assignment {
				return suite.newAssignment(requestID, suite.addDriver("DL002"), suite.addVehicle("DEF-456"))
			},
		},
		{
			name: "same driver",
			build: func() *assignment.Assignment {
				return suite.newAssignment(suite.addRequest(), driverID, suite.addVehicle("GHI-789"))
			},
		},
		{
			name: "same vehicle",
			build: func() *assignment.Assignment {
				return suite.newAssignment(suite.addRequest(), suite.addDriver("DL003"), vehicleID)
			},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.ledger.Insert(ctx, tc.build())

			suite.Require().ErrorIs(err, errs.ErrConflict)
		})
	}

	suite.Equal(int64(1), suite.countAssignments())
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestInsert_AfterTerminalAssignment_Succeeds() {
	ctx := context.Background()
	requestID, driverID, vehicleID := suite.addRequest(), suite.addDriver("DL001"), suite.addVehicle("ABC-123")
	id, err := suite.ledger.Insert(ctx, suite.newAssignment(requestID, driverID, vehicleID))
	suite.Require().NoError(err)

	stored, err := suite.ledger.Get(ctx, id)
	suite.Require().NoError(err)
	_, err = stored.ChangeStatus(assignment.Cancelled)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledger.Update(ctx, stored))

	_, err = suite.ledger.Insert(ctx, suite.newAssignment(requestID, driverID, vehicleID))

	suite.Require().NoError(err)
	suite.Equal(int64(2), suite.countAssignments())
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestInsert_MissingDriver_ReturnsNotFound() {
	missing, err := kernel.NewID(999)
	suite.Require().NoError(err)

	_, err = suite.ledger.Insert(context.Background(),
		suite.newAssignment(suite.addRequest(), missing, suite.addVehicle("ABC-123")))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestUpdate_PersistsStatusAndScheduledDate() {
	ctx := context.Background()
	id, err := suite.ledger.Insert(ctx,
		suite.newAssignment(suite.addRequest(), suite.addDriver("DL001"), suite.addVehicle("ABC-123")))
	suite.Require().NoError(err)

	stored, err := suite.ledger.Get(ctx, id)
	suite.Require().NoError(err)
	later := scheduledAt().Add(48 * time.Hour)
	suite.Require().NoError(stored.Reschedule(later))
	_, err = stored.ChangeStatus(assignment.InProgress)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.ledger.Update(ctx, stored))

	reloaded, err := suite.ledger.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(assignment.InProgress, reloaded.Status())
	suite.True(later.Equal(reloaded.ScheduledDate()))
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestUpdate_NonExistentAssignment_ReturnsNotFound() {
	id, err := kernel.NewID(404)
	suite.Require().NoError(err)
	a, err := assignment.RestoreAssignment(id, id, id, id, scheduledAt(), assignment.Scheduled, time.Now(), time.Now())
	suite.Require().NoError(err)

	err = suite.ledger.Update(context.Background(), a)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	id, err := suite.ledger.Insert(ctx,
		suite.newAssignment(suite.addRequest(), suite.addDriver("DL001"), suite.addVehicle("ABC-123")))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.ledger.Delete(ctx, id))

	_, err = suite.ledger.Get(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.ledger.Delete(ctx, id), errs.ErrObjectNotFound)
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestFindActiveForRequest() {
	ctx := context.Background()
	requestID := suite.addRequest()

	none, err := suite.ledger.FindActiveForRequest(ctx, requestID)
	suite.Require().NoError(err)
	suite.Nil(none)

	id, err := suite.ledger.Insert(ctx, suite.newAssignment(requestID, suite.addDriver("DL001"), suite.addVehicle("ABC-123")))
	suite.Require().NoError(err)

	active, err := suite.ledger.FindActiveForRequest(ctx, requestID)
	suite.Require().NoError(err)
	suite.Require().NotNil(active)
	suite.Equal(id, active.ID())

	_, err = active.ChangeStatus(assignment.Completed)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledger.Update(ctx, active))

	after, err := suite.ledger.FindActiveForRequest(ctx, requestID)
	suite.Require().NoError(err)
	suite.Nil(after)
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestHasActiveForResource() {
	ctx := context.Background()
	driverID, vehicleID := suite.addDriver("DL001"), suite.addVehicle("ABC-123")
	idle := suite.addDriver("DL002")

	id, err := suite.ledger.Insert(ctx, suite.newAssignment(suite.addRequest(), driverID, vehicleID))
	suite.Require().NoError(err)

	has, err := suite.ledger.HasActiveForResource(ctx, resource.KindDriver, driverID, kernel.ID{})
	suite.Require().NoError(err)
	suite.True(has)

	has, err = suite.ledger.HasActiveForResource(ctx, resource.KindVehicle, vehicleID, id)
	suite.Require().NoError(err)
	suite.False(has, "the excluded assignment is not counted")

	has, err = suite.ledger.HasActiveForResource(ctx, resource.KindDriver, idle, kernel.ID{})
	suite.Require().NoError(err)
	suite.False(has)
}

func (suite *AssignmentLedgerIntegrationTestSuite) TestDeleteRequest_CascadesToAssignments() {
	ctx := context.Background()
	requestID := suite.addRequest()
	_, err := suite.ledger.Insert(ctx, suite.newAssignment(requestID, suite.addDriver("DL001"), suite.addVehicle("ABC-123")))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.database.DB.Exec("DELETE FROM service_requests WHERE id = ?", requestID.Int64()).Error)

	suite.Equal(int64(0), suite.countAssignments())
}

func (suite *AssignmentLedgerIntegrationTestSuite) newAssignment(requestID, driverID, vehicleID kernel.ID) *assignment.Assignment {
	a, err := assignment.NewAssignment(requestID, driverID, vehicleID, scheduledAt())
	suite.Require().NoError(err)
	return a
}

func (suite *AssignmentLedgerIntegrationTestSuite) addRequest() kernel.ID {
	req, err := servicerequest.NewServiceRequest(servicerequest.Details{
		CustomerName:    "Carol Davis",
		CustomerEmail:   "carol@example.com",
		CustomerPhone:   "555-1003",
		ServiceType:     "Document Courier",
		PickupAddress:   "555 Business Blvd, City E",
		DeliveryAddress: "777 Corporate Dr, City F",
		PreferredDate:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)

	id, err := suite.requests.Create(context.Background(), req)
	suite.Require().NoError(err)
	return id
}

func (suite *AssignmentLedgerIntegrationTestSuite) addDriver(license string) kernel.ID {
	d, err := resource.NewDriver("Driver "+license, "555-0101", nil, license, resource.Available)
	suite.Require().NoError(err)

	id, err := suite.directory.AddDriver(context.Background(), d)
	suite.Require().NoError(err)
	return id
}

func (suite *AssignmentLedgerIntegrationTestSuite) addVehicle(plate string) kernel.ID {
	v, err := resource.NewVehicle("Ford Transit Van 2021", plate, 2021, nil, resource.Available)
	suite.Require().NoError(err)

	id, err := suite.directory.AddVehicle(context.Background(), v)
	suite.Require().NoError(err)
	return id
}

func (suite *AssignmentLedgerIntegrationTestSuite) countAssignments() int64 {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&assignmentrepo.AssignmentDTO{}).Count(&count).Error)
	return count
}

func scheduledAt() time.Time {
	return time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
}

func TestAssignmentLedgerIntegration(t *testing.T) {
	suite.Run(t, new(AssignmentLedgerIntegrationTestSuite))
}
