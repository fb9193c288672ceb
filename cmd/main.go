package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "campaign-autopilot/internal/adapter/http"
	"campaign-autopilot/internal/adapter/memory"
	"campaign-autopilot/internal/adapter/postgres"
	"campaign-autopilot/internal/adapter/remote"
	"campaign-autopilot/internal/adapter/scheduler"
	"campaign-autopilot/internal/adapter/usecase"
	"campaign-autopilot/internal/config"
	"campaign-autopilot/internal/config/configs"
	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
	"campaign-autopilot/internal/db"
	"campaign-autopilot/internal/metrics"
)

// stores groups the record store repositories of the selected backend.
type stores struct {
	autopilots port.AutopilotRepository
	tasks      port.TaskRepository
	emails     port.EmailRepository
	offers     port.OfferRepository
	health     metrics.HealthFunc
}

// main loads configuration, prepares the record store, wires the use cases
// and runs the API server, the metrics server and the refresh scheduler
// until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	mapping, err := domain.NewOfferMapping(cfg.OfferMappings)
	if err != nil {
		logger.Error("invalid offer mappings", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	st, closeStore, err := openStore(ctx, cfg, reg, mapping, logger)
	if err != nil {
		logger.Error("record store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	dispatcher, closeDispatcher, err := newDispatcher(cfg.Production, logger)
	if err != nil {
		logger.Error("production transport error", slog.Any("error", err))
		return
	}
	defer closeDispatcher()
	callbacks := remote.NewCallbackClient(cfg.Callback.URL, cfg.Callback.Secret, cfg.Callback.Timeout)

	loc := cfg.Scheduler.Location()
	registry := usecase.NewAutopilotUseCase(st.autopilots, st.tasks, st.emails, mapping, loc, logger)
	production := usecase.NewProductionUseCase(usecase.ProductionDeps{
		Registry:    registry,
		Autopilots:  st.autopilots,
		Tasks:       st.tasks,
		Offers:      st.offers,
		Mapping:     mapping,
		Dispatcher:  dispatcher,
		Recorder:    recorder,
		Logger:      logger,
		Concurrency: cfg.Production.Concurrency,
		Location:    loc,
	})
	lifecycle := usecase.NewEmailUseCase(st.emails, callbacks, recorder, logger, cfg.Callback.Concurrency)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg.Scheduler.Spec, loc, 0, production, logger)
		if err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			return
		}
		sched.Start()
		logger.Info("refresh scheduler started",
			slog.String("spec", cfg.Scheduler.Spec),
			slog.String("timezone", loc.String()),
		)
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Registry:   registry,
		Production: production,
		Emails:     lifecycle,
	}, logger, cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}
	metricsSrv := metrics.NewServer(cfg.Metrics.Address, reg, st.health)

	serve := func(name string, s *http.Server) {
		logger.Info(name+" listening", slog.String("addr", s.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(name+" error", slog.Any("error", err))
			cancel()
		}
	}
	go serve("api server", srv)
	go serve("metrics server", metricsSrv)

	<-ctx.Done()
	exitCode = 0
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
	if err = metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", slog.Any("error", err))
	}
}

// openStore prepares the configured backend. For PostgreSQL it optionally
// migrates and seeds before opening the pool.
func openStore(ctx context.Context, cfg config.Config, reg prometheus.Registerer, mapping *domain.OfferMapping, logger *slog.Logger) (stores, func(), error) {
	if cfg.Psql.InMemory() {
		logger.Warn("using in-memory record store, data is lost on exit")
		s := memory.NewStore()
		for ext := range mapping.Pairs() {
			s.PutOffer(domain.Offer{ExternalID: ext, Name: ext})
		}
		return stores{
			autopilots: s.Autopilots(),
			tasks:      s.Tasks(),
			emails:     s.Emails(),
			offers:     s.Offers(),
		}, func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return stores{}, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return stores{}, nil, fmt.Errorf("database connection: %w", err)
	}
	metrics.RegisterPgxPoolMetrics(reg, pool)

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, mapping.Pairs()); err != nil {
			pool.Close()
			return stores{}, nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	return stores{
		autopilots: postgres.NewAutopilotRepository(pool),
		tasks:      postgres.NewTaskRepository(pool),
		emails:     postgres.NewEmailRepository(pool),
		offers:     postgres.NewOfferRepository(pool),
		health:     pool.Ping,
	}, pool.Close, nil
}

// newDispatcher builds the production transport selected by cfg.
func newDispatcher(cfg configs.Production, logger *slog.Logger) (port.ProductionDispatcher, func(), error) {
	if cfg.Transport == configs.TransportAMQP {
		pub, err := remote.DialAMQP(cfg.AMQPURL, cfg.Queue)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("production requests go to broker", slog.String("queue", cfg.Queue))
		return pub, closer(pub, logger), nil
	}
	logger.Info("production requests go over http", slog.String("url", cfg.URL))
	return remote.NewProductionClient(cfg.URL, cfg.Secret, cfg.Timeout), func() {}, nil
}

func closer(c io.Closer, logger *slog.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("close error", slog.Any("error", err))
		}
	}
}
