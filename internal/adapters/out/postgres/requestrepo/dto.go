// Package requestrepo persists service requests with GORM. It implements the
// request store used by the allocation coordinator.
package requestrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/servicerequest"
)

// ServiceRequestDTO is the row layout of the service_requests table.
type ServiceRequestDTO struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName        string    `gorm:"size:100;not null"`
	CustomerEmail       string    `gorm:"size:100;not null"`
	CustomerPhone       string    `gorm:"size:20;not null"`
	ServiceType         string    `gorm:"size:50;not null;index"`
	PickupAddress       string    `gorm:"type:text;not null"`
	DeliveryAddress     string    `gorm:"type:text;not null"`
	PreferredDate       time.Time `gorm:"type:date;not null"`
	SpecialInstructions *string   `gorm:"type:text"`
	Status              string    `gorm:"type:text;not null;default:pending;index"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName overrides GORM's default naming.
func (ServiceRequestDTO) TableName() string {
	return "service_requests"
}

func fromDomain(req *servicerequest.ServiceRequest) ServiceRequestDTO {
	d := req.Details()
	return ServiceRequestDTO{
		ID:                  req.ID().Int64(),
		CustomerName:        d.CustomerName,
		CustomerEmail:       d.CustomerEmail,
		CustomerPhone:       d.CustomerPhone,
		ServiceType:         d.ServiceType,
		PickupAddress:       d.PickupAddress,
		DeliveryAddress:     d.DeliveryAddress,
		PreferredDate:       d.PreferredDate,
		SpecialInstructions: d.SpecialInstructions,
		Status:              req.Status().String(),
	}
}

func toDomain(dto ServiceRequestDTO) (*servicerequest.ServiceRequest, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return servicerequest.RestoreServiceRequest(
		id,
		servicerequest.Details{
			CustomerName:        dto.CustomerName,
			CustomerEmail:       dto.CustomerEmail,
			CustomerPhone:       dto.CustomerPhone,
			ServiceType:         dto.ServiceType,
			PickupAddress:       dto.PickupAddress,
			DeliveryAddress:     dto.DeliveryAddress,
			PreferredDate:       dto.PreferredDate,
			SpecialInstructions: dto.SpecialInstructions,
		},
		servicerequest.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// patchColumns maps the set fields of a patch to their columns.
func patchColumns(p servicerequest.Patch) map[string]any {
	cols := make(map[string]any)
	if p.CustomerName != nil {
		cols["customer_name"] = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		cols["customer_email"] = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		cols["customer_phone"] = *p.CustomerPhone
	}
	if p.ServiceType != nil {
		cols["service_type"] = *p.ServiceType
	}
	if p.PickupAddress != nil {
		cols["pickup_address"] = *p.PickupAddress
	}
	if p.DeliveryAddress != nil {
		cols["delivery_address"] = *p.DeliveryAddress
	}
	if p.PreferredDate != nil {
		cols["preferred_date"] = *p.PreferredDate
	}
	if p.SpecialInstructions != nil {
		cols["special_instructions"] = *p.SpecialInstructions
	}
	return cols
}
