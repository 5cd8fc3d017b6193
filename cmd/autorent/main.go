package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"autorent/internal/app/commands"
	bookingapp "autorent/internal/app/handlers/bookingreq"
	catalogapp "autorent/internal/app/handlers/catalogview"
	quoteapp "autorent/internal/app/handlers/quote"
	"autorent/internal/app/middleware"
	"autorent/internal/app/policies"
	"autorent/internal/app/queries"
	"autorent/internal/domain/booking"
	"autorent/internal/domain/calendar"
	"autorent/internal/domain/catalog"
	domainpricing "autorent/internal/domain/pricing"
	"autorent/internal/domain/shared/money"
	"autorent/internal/infra/broker/kafka"
	"autorent/internal/infra/config"
	mongodb "autorent/internal/infra/db/mongo"
	ginserver "autorent/internal/infra/http/gin"
	"autorent/internal/infra/notify"
	"autorent/internal/infra/obs"
	infrapricing "autorent/internal/infra/pricing"
	"autorent/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, cleanup, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("application wiring failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "catalog_mode", cfg.CatalogMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	ready    func() error
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (application, func(), error) {
	cleanup := func() {}

	var (
		cars      catalog.CarRepository
		locations catalog.LocationRepository
		services  catalog.ServiceRepository
	)
	ready := func() error { return nil }

	switch cfg.CatalogMode {
	case "mongo":
		client, err := mongodb.New(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return application{}, cleanup, fmt.Errorf("mongo connect: %w", err)
		}
		cleanup = func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := client.Close(disconnectCtx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		}
		cars = mongodb.NewCarRepository(client.DB)
		locations = mongodb.NewLocationRepository(client.DB)
		services = mongodb.NewServiceRepository(client.DB)
		ready = func() error { return client.Ping(context.Background()) }
	default:
		carRepo := memory.NewCarRepository()
		locationRepo := memory.NewLocationRepository()
		serviceRepo := memory.NewServiceRepository()

		fixturesPath := cfg.CatalogFixtures
		if fixturesPath == "" {
			fixturesPath = defaultCatalogFixturesPath()
		}
		if err := loadCatalogFixtures(ctx, fixturesPath, carRepo, locationRepo, serviceRepo, logger); err != nil {
			logger.Warn("catalog fixtures load failed", "error", err, "path", fixturesPath)
		}
		cars, locations, services = carRepo, locationRepo, serviceRepo
	}

	rules := calendar.Rules{Holidays: infrapricing.LoadHolidayCalendar(cfg.Holidays, logger)}
	discounts := infrapricing.LoadDiscountTable(cfg.DiscountCodes, logger)
	engine := domainpricing.NewEngine(rules, discounts)

	var notifier policies.Notifier = notify.LogNotifier{Logger: logger}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			return application{}, cleanup, fmt.Errorf("kafka producer: %w", err)
		}
		prev := cleanup
		cleanup = func() {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka producer close failed", "error", err)
			}
			prev()
		}
		notifier = &notify.KafkaNotifier{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}
	}

	fieldValidator := booking.NewValidator()
	pricer := &quoteapp.PriceQuoteHandler{
		Cars:      cars,
		Locations: locations,
		Services:  services,
		Engine:    engine,
	}

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, quoteapp.PriceQuoteQuery{}.Key(), pricer)
	queries.RegisterHandler(queryBus, catalogapp.ListCatalogQuery{}.Key(), &catalogapp.ListCatalogHandler{
		Cars:      cars,
		Locations: locations,
		Services:  services,
	})

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, bookingapp.ValidateBookingCommand{}.Key(), &bookingapp.ValidateBookingHandler{
		Fields: fieldValidator,
	})
	commands.RegisterHandler(commandBus, bookingapp.SubmitBookingCommand{}.Key(), &bookingapp.SubmitBookingHandler{
		Pricer:   pricer,
		Notifier: notifier,
	})

	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Logging(logger),
		middleware.Validation(bookingapp.RequestValidator{Fields: fieldValidator}),
	)
	queryBusWithMiddleware := middleware.ChainQueries(
		queryBus,
		middleware.QueryLogging(logger),
	)

	return application{
		handlers: ginserver.Handlers{
			Quote:   ginserver.QuoteHandler{Queries: queryBusWithMiddleware},
			Booking: ginserver.BookingHandler{Commands: commandBusWithMiddleware},
			Catalog: ginserver.CatalogHandler{Queries: queryBusWithMiddleware},
		},
		ready: ready,
	}, cleanup, nil
}

type catalogFixtures struct {
	Cars []struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		DailyRateCents   int64  `json:"daily_rate_cents"`
		WeeklyRateCents  int64  `json:"weekly_rate_cents"`
		MonthlyRateCents int64  `json:"monthly_rate_cents"`
		DepositCents     int64  `json:"deposit_cents"`
	} `json:"cars"`
	Locations []struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		ExtraChargeCents int64  `json:"extra_charge_cents"`
	} `json:"locations"`
	Services []struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		PricePerDayCents int64  `json:"price_per_day_cents"`
	} `json:"services"`
}

func loadCatalogFixtures(ctx context.Context, path string, cars *memory.CarRepository, locations *memory.LocationRepository, services *memory.ServiceRepository, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("catalog fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("catalog fixtures file empty", "path", path)
		return nil
	}

	var fixtures catalogFixtures
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, fx := range fixtures.Cars {
		car := &catalog.Car{
			ID:          catalog.CarID(fx.ID),
			Name:        fx.Name,
			DailyRate:   money.FromCents(fx.DailyRateCents),
			WeeklyRate:  money.FromCents(fx.WeeklyRateCents),
			MonthlyRate: money.FromCents(fx.MonthlyRateCents),
			Deposit:     money.FromCents(fx.DepositCents),
		}
		if err := cars.Save(ctx, car); err != nil {
			logger.Error("fixture car invalid", "car_id", fx.ID, "error", err)
			continue
		}
	}
	for _, fx := range fixtures.Locations {
		loc := &catalog.Location{
			ID:          catalog.LocationID(fx.ID),
			Name:        fx.Name,
			ExtraCharge: money.FromCents(fx.ExtraChargeCents),
		}
		if err := locations.Save(ctx, loc); err != nil {
			logger.Error("fixture location invalid", "location_id", fx.ID, "error", err)
			continue
		}
	}
	for _, fx := range fixtures.Services {
		svc := &catalog.AdditionalService{
			ID:          catalog.ServiceID(fx.ID),
			Name:        fx.Name,
			PricePerDay: money.FromCents(fx.PricePerDayCents),
		}
		if err := services.Save(ctx, svc); err != nil {
			logger.Error("fixture service invalid", "service_id", fx.ID, "error", err)
			continue
		}
	}

	logger.Info("catalog fixtures imported",
		"cars", len(fixtures.Cars),
		"locations", len(fixtures.Locations),
		"services", len(fixtures.Services),
	)
	return nil
}

func defaultCatalogFixturesPath() string {
	candidates := []string{
		filepath.Join("data", "catalog.json"),
		filepath.Join("..", "data", "catalog.json"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return candidates[0]
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
