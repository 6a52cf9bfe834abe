package catalog

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Service owns the asset universe lifecycle: seeding, staleness checks,
// scheduled refreshes and CSV interchange.
type Service struct {
	repo      *Repository
	generator *Generator
	maxAge    time.Duration
	csvPath   string
	cron      *cron.Cron
	log       zerolog.Logger
}

// NewService creates a catalog service.
func NewService(repo *Repository, generator *Generator, maxAgeDays int, csvPath string, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		maxAge:    time.Duration(maxAgeDays) * 24 * time.Hour,
		csvPath:   csvPath,
		log:       log.With().Str("component", "catalog").Logger(),
	}
}

// Assets returns the current universe, refreshing first if the stored
// statistics are missing or stale.
func (s *Service) Assets() ([]Asset, error) {
	if err := s.EnsureFresh(); err != nil {
		return nil, err
	}
	return s.repo.List()
}

// EnsureFresh refreshes the catalog when it is empty or older than the
// configured maximum age.
func (s *Service) EnsureFresh() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		s.log.Info().Msg("Catalog empty, seeding universe")
		return s.Refresh()
	}

	last, err := s.repo.LastRefreshed()
	if err != nil {
		return err
	}
	if age := time.Since(last); age > s.maxAge {
		s.log.Info().
			Dur("age", age).
			Dur("max_age", s.maxAge).
			Msg("Catalog statistics stale, refreshing")
		return s.Refresh()
	}
	return nil
}

// Refresh rebuilds the universe. When a CSV path is configured the
// universe is imported from it; otherwise synthetic statistics are
// generated for the built-in seed universe.
func (s *Service) Refresh() error {
	var assets []Asset
	var source string

	if s.csvPath != "" {
		imported, err := ImportCSV(s.csvPath)
		if err != nil {
			return fmt.Errorf("catalog refresh from CSV failed: %w", err)
		}
		assets = imported
		source = "csv"
	} else {
		assets = s.generator.Generate(SeedUniverse)
		source = "generator"
	}

	for i := range assets {
		assets[i] = DefaultStats.Apply(assets[i])
	}

	if err := s.repo.ReplaceAll(assets, time.Now()); err != nil {
		return fmt.Errorf("catalog refresh failed: %w", err)
	}

	s.log.Info().
		Int("assets", len(assets)).
		Str("source", source).
		Msg("Catalog refreshed")
	return nil
}

// StartRefreshSchedule begins a daily staleness check. The check is cheap;
// an actual refresh only happens once the data exceeds the maximum age.
func (s *Service) StartRefreshSchedule() error {
	c := cron.New()
	if _, err := c.AddFunc("@daily", func() {
		if err := s.EnsureFresh(); err != nil {
			s.log.Error().Err(err).Msg("Scheduled catalog refresh failed")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule catalog refresh: %w", err)
	}
	c.Start()
	s.cron = c
	s.log.Info().Msg("Catalog refresh schedule started (daily)")
	return nil
}

// StopRefreshSchedule stops the refresh scheduler if it is running.
func (s *Service) StopRefreshSchedule() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
