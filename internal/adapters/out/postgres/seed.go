package postgres

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/adapters/out/postgres/resourcerepo"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/domain/model/servicerequest"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// SeedResult reports what Seed inserted.
type SeedResult struct {
	Drivers  int
	Vehicles int
	Requests int
}

type seedDriver struct {
	name, phone, email, license string
	status                      resource.Status
}

type seedVehicle struct {
	model, plate, capacity string
	year                   int
	status                 resource.Status
}

//nolint:gochecknoglobals // fixed sample data
var (
	sampleDrivers = []seedDriver{
		{"John Smith", "555-0101", "john@example.com", "DL001", resource.Available},
		{"Sarah Johnson", "555-0102", "sarah@example.com", "DL002", resource.Available},
		{"Mike Wilson", "555-0103", "mike@example.com", "DL003", resource.Available},
		{"Emily Brown", "555-0104", "emily@example.com", "DL004", resource.Available},
		{"David Lee", "555-0105", "david@example.com", "DL005", resource.DriverOffDuty},
	}

	sampleVehicles = []seedVehicle{
		{"Toyota Camry 2022", "ABC-123", "4 passengers", 2022, resource.Available},
		{"Honda Accord 2023", "DEF-456", "4 passengers", 2023, resource.Available},
		{"Ford Transit Van 2021", "GHI-789", "8 passengers", 2021, resource.Available},
		{"Chevrolet Silverado 2022", "JKL-012", "1000 lbs", 2022, resource.Available},
		{"Nissan Altima 2023", "MNO-345", "4 passengers", 2023, resource.VehicleMaintenance},
	}
)

// Seed inserts sample drivers, vehicles and two pending service requests when
// the drivers and vehicles tables are both empty. It runs in one unit of work
// and is a no-op on a populated database.
func Seed(ctx context.Context, factory ports.UnitOfWorkFactory, db *gorm.DB, now time.Time) (SeedResult, error) {
	var drivers, vehicles int64
	if err := db.WithContext(ctx).Model(&resourcerepo.DriverDTO{}).Count(&drivers).Error; err != nil {
		return SeedResult{}, err
	}
	if err := db.WithContext(ctx).Model(&resourcerepo.VehicleDTO{}).Count(&vehicles).Error; err != nil {
		return SeedResult{}, err
	}
	if drivers > 0 || vehicles > 0 {
		return SeedResult{}, nil
	}

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedResult{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	var result SeedResult
	directory := uow.ResourceDirectory()
	for _, s := range sampleDrivers {
		email := s.email
		d, err := resource.NewDriver(s.name, s.phone, &email, s.license, s.status)
		if err != nil {
			return SeedResult{}, err
		}
		if _, err := directory.AddDriver(ctx, d); err != nil {
			return SeedResult{}, fmt.Errorf("seed driver %s: %w", s.license, err)
		}
		result.Drivers++
	}

	for _, s := range sampleVehicles {
		capacity := s.capacity
		v, err := resource.NewVehicle(s.model, s.plate, s.year, &capacity, s.status)
		if err != nil {
			return SeedResult{}, err
		}
		if _, err := directory.AddVehicle(ctx, v); err != nil {
			return SeedResult{}, fmt.Errorf("seed vehicle %s: %w", s.plate, err)
		}
		result.Vehicles++
	}

	repo := uow.ServiceRequestRepository()
	for _, details := range sampleRequests(now) {
		req, err := servicerequest.NewServiceRequest(details)
		if err != nil {
			return SeedResult{}, err
		}
		if _, err := repo.Create(ctx, req); err != nil {
			return SeedResult{}, fmt.Errorf("seed request for %s: %w", details.CustomerName, err)
		}
		result.Requests++
	}

	if err := uow.Commit(ctx); err != nil {
		return SeedResult{}, err
	}

	return result, nil
}

func sampleRequests(now time.Time) []servicerequest.Details {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	fragile := "Handle with care - fragile items"
	sofa := "Large sofa - need help lifting"

	return []servicerequest.Details{
		{
			CustomerName:        "Alice Thompson",
			CustomerEmail:       "alice@example.com",
			CustomerPhone:       "555-1001",
			ServiceType:         "Package Delivery",
			PickupAddress:       "123 Main St, City A",
			DeliveryAddress:     "456 Oak Ave, City B",
			PreferredDate:       day.AddDate(0, 0, 1),
			SpecialInstructions: &fragile,
		},
		{
			CustomerName:        "Bob Martinez",
			CustomerEmail:       "bob@example.com",
			CustomerPhone:       "555-1002",
			ServiceType:         "Furniture Moving",
			PickupAddress:       "789 Elm St, City C",
			DeliveryAddress:     "321 Pine Rd, City D",
			PreferredDate:       day.AddDate(0, 0, 2),
			SpecialInstructions: &sofa,
		},
	}
}
