package assignmentrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentLedger implements ports.AssignmentLedger using GORM.
type GormAssignmentLedger struct {
	db      *gorm.DB
	tracker statusTracker
}

type statusTracker interface {
	TrackStatus(entity string, id kernel.ID, status string)
}

// NewGormAssignmentLedger creates a new GORM assignment ledger.
func NewGormAssignmentLedger(db *gorm.DB, tracker statusTracker) *GormAssignmentLedger {
	return &GormAssignmentLedger{
		db:      db,
		tracker: tracker,
	}
}

// Insert stores a new assignment. A second active assignment for the same
// request, driver or vehicle violates a partial unique index and is reported
// as a conflict.
func (r *GormAssignmentLedger) Insert(ctx context.Context, a *assignment.Assignment) (kernel.ID, error) {
	if err := a.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(a)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, translateWriteError(err)
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return kernel.ID{}, err
	}

	r.tracker.TrackStatus(ports.EntityAssignment, id, dto.Status)
	return id, nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentLedger) Get(ctx context.Context, id kernel.ID) (*assignment.Assignment, error) {
	return r.get(ctx, id, r.db)
}

// GetForUpdate retrieves an assignment by ID with SELECT ... FOR UPDATE.
func (r *GormAssignmentLedger) GetForUpdate(ctx context.Context, id kernel.ID) (*assignment.Assignment, error) {
	return r.get(ctx, id, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}))
}

func (r *GormAssignmentLedger) get(ctx context.Context, id kernel.ID, db *gorm.DB) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(ports.EntityAssignment, id.Int64())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Update persists the scheduled date and status.
func (r *GormAssignmentLedger) Update(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.ID().Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", a.ID().Int64()).
		Updates(map[string]any{
			"scheduled_date": a.ScheduledDate(),
			"status":         a.Status().String(),
		})
	if result.Error != nil {
		return translateWriteError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(ports.EntityAssignment, a.ID().Int64())
	}

	r.tracker.TrackStatus(ports.EntityAssignment, a.ID(), a.Status().String())
	return nil
}

// Delete removes an assignment row.
func (r *GormAssignmentLedger) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(ports.EntityAssignment, id.Int64())
	}

	return nil
}

// FindActiveForRequest returns the active assignment of a request, or nil.
func (r *GormAssignmentLedger) FindActiveForRequest(
	ctx context.Context,
	requestID kernel.ID,
) (*assignment.Assignment, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("request_id = ? AND status IN ?", requestID.Int64(), ActiveStatuses()).
		Order("id").
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // absence is a normal outcome
	}

	return ToDomain(dtos[0])
}

// HasActiveForResource reports whether an active assignment other than
// excluding references the resource. Pass a zero ID to exclude nothing.
func (r *GormAssignmentLedger) HasActiveForResource(
	ctx context.Context,
	kind resource.Kind,
	id kernel.ID,
	excluding kernel.ID,
) (bool, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where(ResourceColumn(kind)+" = ? AND status IN ? AND id <> ?", id.Int64(), ActiveStatuses(), excluding.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func translateWriteError(err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return errs.NewConflictErrorWithCause("an active assignment already holds the request, driver or vehicle", err)
	case pgerr.IsForeignKeyViolation(err):
		return errs.NewObjectNotFoundErrorWithCause(pgerr.ConstraintName(err), "assignment reference", err)
	default:
		return err
	}
}
