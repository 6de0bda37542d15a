// Package postgres provides the GORM-based Unit of Work used by the allocation
// coordinator, together with the schema migration and seed data.
//
// Every coordinator operation creates its own unit of work, begins a
// transaction and obtains the request repository, the resource directory and
// the assignment ledger from it. All three write through the same *gorm.DB
// transaction, so the operation commits or rolls back as a whole.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ResourceDirectory().Reserve(ctx, resource.KindDriver, driverID); err != nil {
//	    return err
//	}
//	if _, err := uow.AssignmentLedger().Insert(ctx, a); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Status writes made by the stores are recorded on the unit of work and
// published through Changes once the transaction commits. A rolled back
// transaction publishes nothing.
package postgres

import (
	"context"
	"sync"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/requestrepo"
	"dispatch/internal/adapters/out/postgres/resourcerepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work with its own transaction.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and the status writes
// recorded while it was open.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	mu        sync.Mutex
	pending   []ports.StatusChange
	committed []ports.StatusChange
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.mu.Lock()
	uow.pending = nil
	uow.committed = nil
	uow.mu.Unlock()

	return nil
}

// Commit finalizes the current transaction and publishes the recorded
// status changes. Returns gorm.ErrInvalidTransaction without an active transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil

	uow.mu.Lock()
	defer uow.mu.Unlock()
	if err == nil {
		uow.committed = uow.pending
	}
	uow.pending = nil

	return err
}

// Rollback discards the current transaction and its recorded status changes.
// Returns gorm.ErrInvalidTransaction without an active transaction, which
// makes a deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil

	uow.mu.Lock()
	uow.pending = nil
	uow.mu.Unlock()

	return err
}

// ServiceRequestRepository returns the request store bound to the current transaction.
func (uow *GormUnitOfWork) ServiceRequestRepository() ports.ServiceRequestRepository {
	return requestrepo.NewGormServiceRequestRepository(uow.conn(), uow)
}

// ResourceDirectory returns the driver and vehicle store bound to the current transaction.
func (uow *GormUnitOfWork) ResourceDirectory() ports.ResourceDirectory {
	return resourcerepo.NewGormResourceDirectory(uow.conn(), uow)
}

// AssignmentLedger returns the assignment store bound to the current transaction.
func (uow *GormUnitOfWork) AssignmentLedger() ports.AssignmentLedger {
	return assignmentrepo.NewGormAssignmentLedger(uow.conn(), uow)
}

// TrackStatus records a status write. Repositories call it after every
// successful status update.
func (uow *GormUnitOfWork) TrackStatus(entity string, id kernel.ID, status string) {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	uow.pending = append(uow.pending, ports.StatusChange{Entity: entity, ID: id, Status: status})
}

// Changes lists the status writes of the last committed transaction.
func (uow *GormUnitOfWork) Changes() []ports.StatusChange {
	uow.mu.Lock()
	defer uow.mu.Unlock()
	out := make([]ports.StatusChange, len(uow.committed))
	copy(out, uow.committed)
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
