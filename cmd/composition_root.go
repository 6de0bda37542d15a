package cmd

import (
	"context"
	"log/slog"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) coordinatorUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) serviceRequestUoWFactory() commands.ServiceRequestUoWFactory {
	return FuncServiceRequestUoWFactory(func() commands.ServiceRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateServiceRequestCommandHandler() commands.CreateServiceRequestCommandHandler {
	return commands.NewCreateServiceRequestCommandHandler(c.serviceRequestUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateUpdateServiceRequestCommandHandler() commands.UpdateServiceRequestCommandHandler {
	return commands.NewUpdateServiceRequestCommandHandler(c.serviceRequestUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateChangeServiceRequestStatusCommandHandler() commands.ChangeServiceRequestStatusCommandHandler {
	return commands.NewChangeServiceRequestStatusCommandHandler(c.coordinatorUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateAllocateCommandHandler() commands.AllocateCommandHandler {
	return commands.NewAllocateCommandHandler(c.coordinatorUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateUpdateAssignmentCommandHandler() commands.UpdateAssignmentCommandHandler {
	return commands.NewUpdateAssignmentCommandHandler(c.coordinatorUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateDeleteAssignmentCommandHandler() commands.DeleteAssignmentCommandHandler {
	return commands.NewDeleteAssignmentCommandHandler(c.coordinatorUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateDeleteServiceRequestCommandHandler() commands.DeleteServiceRequestCommandHandler {
	return commands.NewDeleteServiceRequestCommandHandler(c.coordinatorUoWFactory(), c.recorder)
}

func (c *CompositionRoot) CreateGetServiceRequestQueryHandler() queries.GetServiceRequestQueryHandler {
	return queries.NewGetServiceRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListServiceRequestsQueryHandler() queries.ListServiceRequestsQueryHandler {
	return queries.NewListServiceRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentQueryHandler() queries.GetAssignmentQueryHandler {
	return queries.NewGetAssignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableVehiclesQueryHandler() queries.GetAvailableVehiclesQueryHandler {
	return queries.NewGetAvailableVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackServiceRequestsQueryHandler() queries.TrackServiceRequestsQueryHandler {
	return queries.NewTrackServiceRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAssignmentsQueryHandler() queries.ListAssignmentsQueryHandler {
	return queries.NewListAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditConsistencyQueryHandler() queries.AuditConsistencyQueryHandler {
	return queries.NewAuditConsistencyQueryHandler(c.gormDB)
}

// CreateRouter wires every handler into the HTTP API.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateServiceRequest:       c.CreateCreateServiceRequestCommandHandler(),
		UpdateServiceRequest:       c.CreateUpdateServiceRequestCommandHandler(),
		ChangeServiceRequestStatus: c.CreateChangeServiceRequestStatusCommandHandler(),
		Allocate:                   c.CreateAllocateCommandHandler(),
		UpdateAssignment:           c.CreateUpdateAssignmentCommandHandler(),
		DeleteAssignment:           c.CreateDeleteAssignmentCommandHandler(),
		DeleteServiceRequest:       c.CreateDeleteServiceRequestCommandHandler(),
		GetServiceRequest:          c.CreateGetServiceRequestQueryHandler(),
		ListServiceRequests:        c.CreateListServiceRequestsQueryHandler(),
		TrackServiceRequests:       c.CreateTrackServiceRequestsQueryHandler(),
		GetAssignment:              c.CreateGetAssignmentQueryHandler(),
		ListAssignments:            c.CreateListAssignmentsQueryHandler(),
		GetAvailableDrivers:        c.CreateGetAvailableDriversQueryHandler(),
		GetAvailableVehicles:       c.CreateGetAvailableVehiclesQueryHandler(),
		ListDrivers:                c.CreateListDriversQueryHandler(),
		GetDriver:                  c.CreateGetDriverQueryHandler(),
		ListVehicles:               c.CreateListVehiclesQueryHandler(),
		GetVehicle:                 c.CreateGetVehicleQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(ctx, server, httpadapter.RouterConfig{
		Logger:         c.logger,
		Gatherer:       c.registry,
		RequestTimeout: c.cfg.DBStatementTimeout,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAuditConsistencyQueryHandler(), c.recorder, c.cfg.AuditSchedule, c.logger)
}

// UoWFactory exposes the unit of work factory for start-up tasks such as seeding.
func (c *CompositionRoot) UoWFactory() *postgres.GormUnitOfWorkFactory {
	return c.uowFactory
}

type FuncServiceRequestUoWFactory func() commands.ServiceRequestUoW

func (f FuncServiceRequestUoWFactory) Create() commands.ServiceRequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
