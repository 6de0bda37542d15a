package resourcerepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormResourceDirectory implements ports.ResourceDirectory using GORM.
//
// Reservation is a single conditional UPDATE guarded by status = 'available'.
// Under READ COMMITTED the second of two concurrent writers waits for the first
// to commit, re-evaluates the predicate and affects no rows, so exactly one
// reservation wins without any application-level locking.
type GormResourceDirectory struct {
	db      *gorm.DB
	tracker statusTracker
}

type statusTracker interface {
	TrackStatus(entity string, id kernel.ID, status string)
}

// NewGormResourceDirectory creates a new GORM resource directory.
func NewGormResourceDirectory(db *gorm.DB, tracker statusTracker) *GormResourceDirectory {
	return &GormResourceDirectory{
		db:      db,
		tracker: tracker,
	}
}

// Reserve moves an available resource to its reserved status.
func (r *GormResourceDirectory) Reserve(ctx context.Context, kind resource.Kind, id kernel.ID) error {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return err
	}

	reserved := kind.ReservedStatus()
	result := r.db.WithContext(ctx).
		Model(modelFor(kind)).
		Where("id = ? AND status = ?", id.Int64(), resource.Available.String()).
		Update("status", reserved.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 1 {
		r.tracker.TrackStatus(kind.String(), id, reserved.String())
		return nil
	}

	status, found, err := r.currentStatus(ctx, kind, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError(kind.String(), id.Int64())
	}

	return errs.NewResourceUnavailableError(kind.String(), id.Int64(), status)
}

// Release returns a resource to available unless it carries its manual status.
func (r *GormResourceDirectory) Release(ctx context.Context, kind resource.Kind, id kernel.ID) error {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(modelFor(kind)).
		Where("id = ? AND status <> ?", id.Int64(), kind.ManualStatus().String()).
		Update("status", resource.Available.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		r.tracker.TrackStatus(kind.String(), id, resource.Available.String())
		return nil
	}

	_, found, err := r.currentStatus(ctx, kind, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError(kind.String(), id.Int64())
	}

	return nil
}

// AddDriver inserts a new driver.
func (r *GormResourceDirectory) AddDriver(ctx context.Context, d *resource.Driver) (kernel.ID, error) {
	if err := d.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := driverFromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return kernel.ID{}, errs.NewConflictErrorWithCause("license number is already registered", err)
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

// AddVehicle inserts a new vehicle.
func (r *GormResourceDirectory) AddVehicle(ctx context.Context, v *resource.Vehicle) (kernel.ID, error) {
	if err := v.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := vehicleFromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return kernel.ID{}, errs.NewConflictErrorWithCause("plate number is already registered", err)
		}
		return kernel.ID{}, err
	}

	return kernel.NewID(dto.ID)
}

func (r *GormResourceDirectory) currentStatus(
	ctx context.Context,
	kind resource.Kind,
	id kernel.ID,
) (string, bool, error) {
	var statuses []string
	err := r.db.WithContext(ctx).
		Model(modelFor(kind)).
		Where("id = ?", id.Int64()).
		Pluck("status", &statuses).Error
	if err != nil {
		return "", false, err
	}
	if len(statuses) == 0 {
		return "", false, nil
	}
	return statuses[0], true, nil
}
