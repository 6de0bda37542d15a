package postgres

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/requestrepo"
	"dispatch/internal/adapters/out/postgres/resourcerepo"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/domain/model/servicerequest"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type constraint struct {
	model any
	table string
	name  string
	def   string
}

type partialIndex struct {
	name   string
	column string
}

// Migrate creates or updates the schema: tables via AutoMigrate, then the
// status CHECK constraints, the assignment foreign keys and the partial unique
// indexes that allow one active assignment per request, driver and vehicle.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	err := db.AutoMigrate(
		&requestrepo.ServiceRequestDTO{},
		&resourcerepo.DriverDTO{},
		&resourcerepo.VehicleDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, c := range constraints() {
		if db.Migrator().HasConstraint(c.model, c.name) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s",
			pq.QuoteIdentifier(c.table), pq.QuoteIdentifier(c.name), c.def)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}

	active := quoteLiterals(assignmentrepo.ActiveStatuses())
	for _, idx := range activeIndexes() {
		stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s) WHERE status IN (%s)",
			pq.QuoteIdentifier(idx.name),
			pq.QuoteIdentifier(assignmentrepo.AssignmentDTO{}.TableName()),
			pq.QuoteIdentifier(idx.column),
			active)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}

	return nil
}

func constraints() []constraint {
	requests := requestrepo.ServiceRequestDTO{}.TableName()
	drivers := resourcerepo.DriverDTO{}.TableName()
	vehicles := resourcerepo.VehicleDTO{}.TableName()
	assignments := assignmentrepo.AssignmentDTO{}.TableName()

	foreignKey := func(column, target string) string {
		return fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE CASCADE",
			pq.QuoteIdentifier(column), pq.QuoteIdentifier(target))
	}

	return []constraint{
		{&requestrepo.ServiceRequestDTO{}, requests, "chk_service_requests_status",
			statusCheck(servicerequest.Statuses())},
		{&resourcerepo.DriverDTO{}, drivers, "chk_drivers_status",
			statusCheck(resource.KindDriver.Statuses())},
		{&resourcerepo.VehicleDTO{}, vehicles, "chk_vehicles_status",
			statusCheck(resource.KindVehicle.Statuses())},
		{&assignmentrepo.AssignmentDTO{}, assignments, "chk_assignments_status",
			statusCheck(assignment.Statuses())},
		{&assignmentrepo.AssignmentDTO{}, assignments, "fk_assignments_request",
			foreignKey("request_id", requests)},
		{&assignmentrepo.AssignmentDTO{}, assignments, "fk_assignments_driver",
			foreignKey("driver_id", drivers)},
		{&assignmentrepo.AssignmentDTO{}, assignments, "fk_assignments_vehicle",
			foreignKey("vehicle_id", vehicles)},
	}
}

func activeIndexes() []partialIndex {
	return []partialIndex{
		{name: "uq_assignments_active_request", column: "request_id"},
		{name: "uq_assignments_active_driver", column: "driver_id"},
		{name: "uq_assignments_active_vehicle", column: "vehicle_id"},
	}
}

func statusCheck[S ~string](statuses []S) string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return fmt.Sprintf("CHECK (status IN (%s))", quoteLiterals(values))
}

func quoteLiterals(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, pq.QuoteLiteral(v))
	}
	return strings.Join(quoted, ", ")
}
