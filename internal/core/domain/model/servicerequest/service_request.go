package servicerequest

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrServiceRequestIsNotConstructed is returned when using a ServiceRequest
	// that was not created through NewServiceRequest or RestoreServiceRequest.
	ErrServiceRequestIsNotConstructed = errors.New(
		"ServiceRequest must be created via NewServiceRequest constructor",
	)
	// ErrPatchIsEmpty is returned when an edit carries no fields.
	ErrPatchIsEmpty = errs.NewValueIsRequiredError("at least one field to update")
)

// Details holds the customer-facing fields of a request.
type Details struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	ServiceType         string
	PickupAddress       string
	DeliveryAddress     string
	PreferredDate       time.Time
	SpecialInstructions *string
}

// Validate checks every required field and reports all failures at once.
func (d Details) Validate() error {
	return errors.Join(
		requireText("customer_name", d.CustomerName),
		validateEmail(d.CustomerEmail),
		requireText("customer_phone", d.CustomerPhone),
		requireText("service_type", d.ServiceType),
		requireText("pickup_address", d.PickupAddress),
		requireText("delivery_address", d.DeliveryAddress),
		requireDate("preferred_date", d.PreferredDate),
	)
}

// Patch is a partial edit of Details. Nil fields are left untouched.
type Patch struct {
	CustomerName        *string
	CustomerEmail       *string
	CustomerPhone       *string
	ServiceType         *string
	PickupAddress       *string
	DeliveryAddress     *string
	PreferredDate       *time.Time
	SpecialInstructions *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.CustomerName == nil &&
		p.CustomerEmail == nil &&
		p.CustomerPhone == nil &&
		p.ServiceType == nil &&
		p.PickupAddress == nil &&
		p.DeliveryAddress == nil &&
		p.PreferredDate == nil &&
		p.SpecialInstructions == nil
}

// Validate checks the fields the patch sets, using the same rules as Details.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrPatchIsEmpty
	}

	var errList []error
	if p.CustomerName != nil {
		errList = append(errList, requireText("customer_name", *p.CustomerName))
	}
	if p.CustomerEmail != nil {
		errList = append(errList, validateEmail(*p.CustomerEmail))
	}
	if p.CustomerPhone != nil {
		errList = append(errList, requireText("customer_phone", *p.CustomerPhone))
	}
	if p.ServiceType != nil {
		errList = append(errList, requireText("service_type", *p.ServiceType))
	}
	if p.PickupAddress != nil {
		errList = append(errList, requireText("pickup_address", *p.PickupAddress))
	}
	if p.DeliveryAddress != nil {
		errList = append(errList, requireText("delivery_address", *p.DeliveryAddress))
	}
	if p.PreferredDate != nil {
		errList = append(errList, requireDate("preferred_date", *p.PreferredDate))
	}
	return errors.Join(errList...)
}

// Apply returns a copy of d with the patch applied.
func (d Details) Apply(p Patch) Details {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		d.CustomerEmail = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		d.CustomerPhone = *p.CustomerPhone
	}
	if p.ServiceType != nil {
		d.ServiceType = *p.ServiceType
	}
	if p.PickupAddress != nil {
		d.PickupAddress = *p.PickupAddress
	}
	if p.DeliveryAddress != nil {
		d.DeliveryAddress = *p.DeliveryAddress
	}
	if p.PreferredDate != nil {
		d.PreferredDate = *p.PreferredDate
	}
	if p.SpecialInstructions != nil {
		d.SpecialInstructions = p.SpecialInstructions
	}
	return d
}

// ServiceRequest is the aggregate root for a customer's service request.
//
// Invariants:
//   - Details always pass Details.Validate
//   - Status is one of the five valid literals
//   - A request that has not been stored yet has a zero ID
type ServiceRequest struct {
	id        kernel.ID
	details   Details
	status    Status
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewServiceRequest creates an unsaved request in the pending status. The
// store assigns the ID.
//
// Example:
//
//	req, err := servicerequest.NewServiceRequest(servicerequest.Details{
//	    CustomerName:    "Alice Thompson",
//	    CustomerEmail:   "alice@example.com",
//	    CustomerPhone:   "555-1001",
//	    ServiceType:     "Package Delivery",
//	    PickupAddress:   "123 Main St",
//	    DeliveryAddress: "456 Oak Ave",
//	    PreferredDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
//	})
func NewServiceRequest(details Details) (*ServiceRequest, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	return &ServiceRequest{
		details: details,
		status:  Pending,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreServiceRequest reconstructs a stored request. Stored rows are trusted
// for Details, but the ID and status are still checked.
func RestoreServiceRequest(
	id kernel.ID,
	details Details,
	status Status,
	createdAt, updatedAt time.Time,
) (*ServiceRequest, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &ServiceRequest{
		id:        id,
		details:   details,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the request was built by one of the constructors.
func (r *ServiceRequest) Validate() error {
	if r == nil {
		return ErrServiceRequestIsNotConstructed
	}
	return r.guard.Validate(ErrServiceRequestIsNotConstructed)
}

func (r *ServiceRequest) ID() kernel.ID {
	return r.id
}

func (r *ServiceRequest) Details() Details {
	return r.details
}

func (r *ServiceRequest) Status() Status {
	return r.status
}

func (r *ServiceRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ServiceRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

// Edit applies a validated patch to the request's details. It never touches
// the status.
func (r *ServiceRequest) Edit(p Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.details = r.details.Apply(p)
	return nil
}

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requireDate(param string, value time.Time) error {
	if value.IsZero() {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func validateEmail(value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError("customer_email")
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return errs.NewValueIsInvalidErrorWithCause("customer_email", fmt.Errorf("%q is not a valid email address", value))
	}
	return nil
}
