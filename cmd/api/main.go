package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	"github.com/agencyops/marketing-metrics-api/infrastructure/repository"
	"github.com/agencyops/marketing-metrics-api/internal/api"
	"github.com/agencyops/marketing-metrics-api/internal/config"
	"github.com/agencyops/marketing-metrics-api/internal/scheduler"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/authenticating"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/reporting"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/syncing"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/tenanting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignMetricRepository(pgConn)
	flowRepo := repository.NewFlowMetricRepository(pgConn)
	segmentRepo := repository.NewSegmentMetricRepository(pgConn)
	listGrowthRepo := repository.NewListGrowthMetricRepository(pgConn)
	revenueRepo := repository.NewRevenueAttributionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	tenantService := tenanting.NewService(tenantRepo)

	// Each run builds its own integrator so one tenant's credential never
	// leaks into another tenant's requests.
	newIntegrator := func(apiKey string) klaviyo.Integrator {
		return klaviyo.New(cfg, apiKey)
	}

	syncer := syncing.NewService(
		cfg,
		newIntegrator,
		tenantRepo,
		campaignRepo,
		flowRepo,
		segmentRepo,
		listGrowthRepo,
		revenueRepo,
	)

	reportingService := reporting.NewService(
		campaignRepo,
		flowRepo,
		segmentRepo,
		listGrowthRepo,
		revenueRepo,
	)

	metricsSyncService := scheduler.NewMetricsSyncService(tenantRepo, syncer, cfg)
	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start metrics sync scheduler")
	} else {
		logrus.Info("metrics sync scheduler started")
	}

	server, err := api.New(
		cfg,
		reportingService,
		tenantService,
		authenticator,
		metricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
