package requestrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceRequestRepository implements ports.ServiceRequestRepository using GORM.
type GormServiceRequestRepository struct {
	db      *gorm.DB
	tracker statusTracker
}

// statusTracker records status writes for the unit of work.
type statusTracker interface {
	TrackStatus(entity string, id kernel.ID, status string)
}

// NewGormServiceRequestRepository creates a new GORM request repository.
func NewGormServiceRequestRepository(db *gorm.DB, tracker statusTracker) *GormServiceRequestRepository {
	return &GormServiceRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Create inserts a new request. The request is always stored as pending.
func (r *GormServiceRequestRepository) Create(
	ctx context.Context,
	req *servicerequest.ServiceRequest,
) (kernel.ID, error) {
	if err := req.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(req)
	dto.ID = 0
	dto.Status = servicerequest.Pending.String()
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return kernel.ID{}, err
	}

	r.tracker.TrackStatus(ports.EntityServiceRequest, id, dto.Status)
	return id, nil
}

// Get retrieves a request by ID.
func (r *GormServiceRequestRepository) Get(ctx context.Context, id kernel.ID) (*servicerequest.ServiceRequest, error) {
	return r.get(ctx, id, r.db)
}

// GetForUpdate retrieves a request by ID with SELECT ... FOR UPDATE.
func (r *GormServiceRequestRepository) GetForUpdate(
	ctx context.Context,
	id kernel.ID,
) (*servicerequest.ServiceRequest, error) {
	return r.get(ctx, id, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}))
}

func (r *GormServiceRequestRepository) get(
	ctx context.Context,
	id kernel.ID,
	db *gorm.DB,
) (*servicerequest.ServiceRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceRequestDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(ports.EntityServiceRequest, id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateFields writes the set fields of the patch. The status column is never
// part of a patch.
func (r *GormServiceRequestRepository) UpdateFields(
	ctx context.Context,
	id kernel.ID,
	patch servicerequest.Patch,
) error {
	if err := errors.Join(id.Validate(), patch.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ServiceRequestDTO{}).
		Where("id = ?", id.Int64()).
		Updates(patchColumns(patch))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(ports.EntityServiceRequest, id.Int64())
	}

	return nil
}

// SetStatus writes the status column after validating the literal.
func (r *GormServiceRequestRepository) SetStatus(
	ctx context.Context,
	id kernel.ID,
	status servicerequest.Status,
) error {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ServiceRequestDTO{}).
		Where("id = ?", id.Int64()).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(ports.EntityServiceRequest, id.Int64())
	}

	r.tracker.TrackStatus(ports.EntityServiceRequest, id, status.String())
	return nil
}

// Delete removes a request. The assignments foreign key cascades the delete
// to its assignments.
func (r *GormServiceRequestRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ServiceRequestDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(ports.EntityServiceRequest, id.Int64())
	}

	return nil
}
