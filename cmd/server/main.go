package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jungdo-lee/etf-optimizer/internal/config"
	"github.com/jungdo-lee/etf-optimizer/internal/database"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/backtest"
	backtesthandlers "github.com/jungdo-lee/etf-optimizer/internal/modules/backtest/handlers"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/calculations"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
	cataloghandlers "github.com/jungdo-lee/etf-optimizer/internal/modules/catalog/handlers"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/optimization"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	portfoliohandlers "github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio/handlers"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/simulation"
	simulationhandlers "github.com/jungdo-lee/etf-optimizer/internal/modules/simulation/handlers"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/stress"
	stresshandlers "github.com/jungdo-lee/etf-optimizer/internal/modules/stress/handlers"
	"github.com/jungdo-lee/etf-optimizer/internal/server"
	"github.com/jungdo-lee/etf-optimizer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config failed before we have a logger; build a minimal one to report it.
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("port", cfg.Port).
		Bool("dev_mode", cfg.DevMode).
		Int64("random_seed", cfg.RandomSeed).
		Msg("Starting ETF optimizer")

	catalogDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "catalog.db"),
		Profile: database.ProfileStandard,
		Name:    "catalog",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open catalog database")
	}
	defer catalogDB.Close()

	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "calculations.db"),
		Profile: database.ProfileCache,
		Name:    "calculations",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open calculations database")
	}
	defer cacheDB.Close()

	catalogRepo, err := catalog.NewRepository(catalogDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize catalog repository")
	}

	cache, err := calculations.NewCache(cacheDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize calculation cache")
	}

	generator := catalog.NewGenerator(cfg.RandomSeed)
	catalogService := catalog.NewService(catalogRepo, generator, cfg.CatalogMaxAgeDays, cfg.CatalogCSVPath, log)
	if err := catalogService.EnsureFresh(); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed asset catalog")
	}
	if err := catalogService.StartRefreshSchedule(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start catalog refresh schedule")
	}

	selector := selection.NewSelector(log)
	optimizer := optimization.NewWeightOptimizer(cfg.RiskFreeRate, log)
	frontier := optimization.NewFrontierSampler(cfg.RandomSeed, cfg.RiskFreeRate, cache, log)
	portfolioService := portfolio.NewService(catalogService, selector, optimizer, frontier, log)

	backtestEngine := backtest.NewEngine(cfg.RandomSeed, cfg.RiskFreeRate, log)
	stressTester := stress.NewTester(log)
	simulator := simulation.NewSimulator(cfg.RandomSeed, cfg.SimWorkers, log)

	srv := server.New(server.Config{
		Port:              cfg.Port,
		DevMode:           cfg.DevMode,
		Log:               log,
		CatalogHandler:    cataloghandlers.NewHandler(catalogService, log),
		PortfolioHandler:  portfoliohandlers.NewHandler(portfolioService, log),
		BacktestHandler:   backtesthandlers.NewHandler(backtestEngine, log),
		StressHandler:     stresshandlers.NewHandler(stressTester, log),
		SimulationHandler: simulationhandlers.NewHandler(simulator, log),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	catalogService.StopRefreshSchedule()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Shutdown complete")
}
