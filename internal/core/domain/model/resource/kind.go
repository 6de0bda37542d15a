package resource

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Kind selects driver or vehicle in the directory operations.
type Kind string

const (
	KindDriver  Kind = "driver"
	KindVehicle Kind = "vehicle"
)

// Status is a resource availability literal.
type Status string

const (
	// Available is shared by both kinds.
	Available Status = "available"

	DriverAssigned Status = "assigned"
	DriverOffDuty  Status = "off_duty"

	VehicleInUse       Status = "in_use"
	VehicleMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

// Kinds lists both resource kinds.
func Kinds() []Kind {
	return []Kind{KindDriver, KindVehicle}
}

// Validate rejects anything but driver and vehicle.
func (k Kind) Validate() error {
	switch k {
	case KindDriver, KindVehicle:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a resource kind", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}

// ReservedStatus is the status a resource enters when an active assignment claims it.
func (k Kind) ReservedStatus() Status {
	if k == KindVehicle {
		return VehicleInUse
	}
	return DriverAssigned
}

// ManualStatus is the administrative state that release must leave untouched.
func (k Kind) ManualStatus() Status {
	if k == KindVehicle {
		return VehicleMaintenance
	}
	return DriverOffDuty
}

// Statuses lists the valid statuses of the kind.
func (k Kind) Statuses() []Status {
	return []Status{Available, k.ReservedStatus(), k.ManualStatus()}
}

// ValidateStatus checks that s is one of the kind's statuses. A vehicle cannot
// be off_duty and a driver cannot be in maintenance.
func (k Kind) ValidateStatus(s Status) error {
	if err := k.Validate(); err != nil {
		return err
	}
	for _, valid := range k.Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid %s status", string(s), string(k)),
	)
}
