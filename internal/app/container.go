// Package app wires the application together: configuration, database,
// repositories, the outbox pipeline and the command and query handlers.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
	"github.com/felixgeelhaar/resto/internal/guide/application/queries"
	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
	"github.com/felixgeelhaar/resto/internal/guide/infrastructure/persistence"
	sharedApplication "github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/resto/internal/shared/infrastructure/database/postgres" // register postgres driver
	_ "github.com/felixgeelhaar/resto/internal/shared/infrastructure/database/sqlite"   // register sqlite driver
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"
	"github.com/felixgeelhaar/resto/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	DBConn database.Connection

	// Repositories
	RestaurantRepo restaurant.Repository
	CityRepo       city.Repository
	TypeRepo       gastrotype.Repository
	CriterionRepo  criterion.Repository
	OutboxRepo     outbox.Repository

	// Messaging
	EventPublisher  eventbus.Publisher
	EventBus        *eventbus.InProcessEventBus
	OutboxProcessor *outbox.Processor

	UnitOfWork sharedApplication.UnitOfWork

	// Command handlers
	CreateCityHandler              *commands.CreateCityHandler
	CreateRestaurantHandler        *commands.CreateRestaurantHandler
	UpdateRestaurantDetailsHandler *commands.UpdateRestaurantDetailsHandler
	UpdateRestaurantAddressHandler *commands.UpdateRestaurantAddressHandler
	DeleteRestaurantHandler        *commands.DeleteRestaurantHandler
	AddBasicEvaluationHandler      *commands.AddBasicEvaluationHandler
	AddCompleteEvaluationHandler   *commands.AddCompleteEvaluationHandler

	// Query handlers
	ListRestaurantsHandler *queries.ListRestaurantsHandler
	GetRestaurantHandler   *queries.GetRestaurantHandler
	ListCitiesHandler      *queries.ListCitiesHandler
	ListTypesHandler       *queries.ListTypesHandler
	ListCriteriaHandler    *queries.ListCriteriaHandler
}

// NewContainer creates a fully wired container. In local mode it opens the
// embedded SQLite database; with DATABASE_URL set it connects to PostgreSQL.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dbCfg := database.Config{
		Driver:     database.Driver(cfg.DatabaseDriver),
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
		MaxConns:   cfg.DatabaseConns,
	}
	if dbCfg.Driver == database.DriverSQLite {
		if dbCfg.SQLitePath == "" {
			dbCfg.SQLitePath = database.DefaultSQLitePath()
		}
		if err := database.EnsureDirectory(dbCfg.SQLitePath); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := database.NewConnection(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.Run(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DBConn: conn,
	}

	c.RestaurantRepo = persistence.NewRestaurantRepository(conn)
	c.CityRepo = persistence.NewCityRepository(conn)
	c.TypeRepo = persistence.NewRestaurantTypeRepository(conn)
	c.CriterionRepo = persistence.NewCriterionRepository(conn)
	c.OutboxRepo = outbox.NewSQLRepository(conn)
	c.UnitOfWork = database.NewUnitOfWork(conn)

	if err := c.seedLookupData(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to seed lookup data: %w", err)
	}

	if cfg.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		c.EventPublisher = publisher
		logger.Info("event publishing via RabbitMQ")
	} else {
		bus := eventbus.NewInProcessEventBus(logger)
		c.EventBus = bus
		c.EventPublisher = bus
		logger.Info("event publishing in process")
	}

	if cfg.OutboxProcessorEnabled {
		c.OutboxProcessor = outbox.NewProcessor(c.OutboxRepo, c.EventPublisher, outbox.ProcessorConfig{
			PollInterval:     cfg.OutboxPollInterval,
			BatchSize:        cfg.OutboxBatchSize,
			MaxRetries:       cfg.OutboxMaxRetries,
			RetryBackoffBase: time.Second,
			RetryBackoffMax:  time.Minute,
		}, logger)
		if err := c.OutboxProcessor.Start(ctx); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to start outbox processor: %w", err)
		}
	}

	c.CreateCityHandler = commands.NewCreateCityHandler(c.CityRepo, c.OutboxRepo, c.UnitOfWork)
	c.CreateRestaurantHandler = commands.NewCreateRestaurantHandler(c.RestaurantRepo, c.CityRepo, c.TypeRepo, c.OutboxRepo, c.UnitOfWork)
	c.UpdateRestaurantDetailsHandler = commands.NewUpdateRestaurantDetailsHandler(c.RestaurantRepo, c.TypeRepo, c.OutboxRepo, c.UnitOfWork)
	c.UpdateRestaurantAddressHandler = commands.NewUpdateRestaurantAddressHandler(c.RestaurantRepo, c.CityRepo, c.OutboxRepo, c.UnitOfWork)
	c.DeleteRestaurantHandler = commands.NewDeleteRestaurantHandler(c.RestaurantRepo, c.OutboxRepo, c.UnitOfWork)
	c.AddBasicEvaluationHandler = commands.NewAddBasicEvaluationHandler(c.RestaurantRepo, c.OutboxRepo, c.UnitOfWork)
	c.AddCompleteEvaluationHandler = commands.NewAddCompleteEvaluationHandler(c.RestaurantRepo, c.CriterionRepo, c.OutboxRepo, c.UnitOfWork)

	c.ListRestaurantsHandler = queries.NewListRestaurantsHandler(c.RestaurantRepo)
	c.GetRestaurantHandler = queries.NewGetRestaurantHandler(c.RestaurantRepo)
	c.ListCitiesHandler = queries.NewListCitiesHandler(c.CityRepo)
	c.ListTypesHandler = queries.NewListTypesHandler(c.TypeRepo)
	c.ListCriteriaHandler = queries.NewListCriteriaHandler(c.CriterionRepo)

	logger.Info("container initialized", "driver", conn.Driver().String())
	return c, nil
}

// seedLookupData inserts the default restaurant types and evaluation criteria
// on first run. Existing data is left untouched.
func (c *Container) seedLookupData(ctx context.Context) error {
	types, err := c.TypeRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		defaults := []struct{ label, description string }{
			{"Gastronomique", "Haute cuisine with refined service"},
			{"Traditionnel", "Classic regional dishes"},
			{"Pizzeria", "Italian cuisine, pizza and pasta"},
			{"Fast-food", "Quick meals to eat in or take away"},
		}
		for _, d := range defaults {
			t, err := gastrotype.NewRestaurantType(d.label, d.description)
			if err != nil {
				return err
			}
			if _, err := c.TypeRepo.Create(ctx, t); err != nil {
				return err
			}
		}
		c.Logger.Info("seeded restaurant types", "count", len(defaults))
	}

	criteria, err := c.CriterionRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(criteria) == 0 {
		defaults := []struct{ name, description string }{
			{"Service", "Quality of the service"},
			{"Cuisine", "Quality of the food"},
			{"Cadre", "Atmosphere and setting"},
		}
		for _, d := range defaults {
			cr, err := criterion.NewCriterion(d.name, d.description)
			if err != nil {
				return err
			}
			if _, err := c.CriterionRepo.Create(ctx, cr); err != nil {
				return err
			}
		}
		c.Logger.Info("seeded evaluation criteria", "count", len(defaults))
	}

	return nil
}

// Close releases all container resources.
func (c *Container) Close() {
	if c.OutboxProcessor != nil {
		c.OutboxProcessor.Stop()
	}
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("failed to close event publisher", "error", err)
		}
	}
	if c.DBConn != nil {
		if err := c.DBConn.Close(); err != nil {
			c.Logger.Error("failed to close database connection", "error", err)
		}
	}
}
