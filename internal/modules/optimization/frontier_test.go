package optimization

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungdo-lee/etf-optimizer/internal/database"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/calculations"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

func TestFrontierSampleEmptyForTooFewCandidates(t *testing.T) {
	sampler := NewFrontierSampler(42, 0.03, nil, zerolog.Nop())

	assert.Empty(t, sampler.Sample(nil, 100).Portfolios)

	single := testCandidates()[:1]
	assert.Empty(t, sampler.Sample(single, 100).Portfolios)
}

func TestFrontierSampleShape(t *testing.T) {
	sampler := NewFrontierSampler(42, 0.03, nil, zerolog.Nop())
	candidates := testCandidates()

	data := sampler.Sample(candidates, 100)

	require.Len(t, data.Portfolios, 100)
	require.Len(t, data.AssetPoints, len(candidates))
	require.NotNil(t, data.MaxSharpe)
	require.NotNil(t, data.MinVolatility)

	for _, p := range data.Portfolios {
		sum := 0.0
		for _, w := range p.Weights {
			assert.Greater(t, w, 0.0)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "sampled weights are L1-normalized")

		assert.LessOrEqual(t, p.Sharpe, data.MaxSharpe.Sharpe)
		assert.GreaterOrEqual(t, p.Volatility, data.MinVolatility.Volatility)
	}
}

func TestFrontierSampleReproducible(t *testing.T) {
	candidates := testCandidates()

	a := NewFrontierSampler(42, 0.03, nil, zerolog.Nop()).Sample(candidates, 50)
	b := NewFrontierSampler(42, 0.03, nil, zerolog.Nop()).Sample(candidates, 50)

	assert.Equal(t, a, b, "same seed must reproduce the frontier")

	c := NewFrontierSampler(7, 0.03, nil, zerolog.Nop()).Sample(candidates, 50)
	assert.NotEqual(t, a.Portfolios, c.Portfolios, "different seed must change the samples")
}

func TestFrontierAssetPointSharpe(t *testing.T) {
	sampler := NewFrontierSampler(42, 0.03, nil, zerolog.Nop())
	candidates := testCandidates()

	data := sampler.Sample(candidates, 10)
	require.Len(t, data.AssetPoints, len(candidates))

	for i, p := range data.AssetPoints {
		assert.Equal(t, candidates[i].Ticker, p.Ticker)
		if p.Volatility > 0 {
			assert.InDelta(t, (p.Return-0.03)/p.Volatility, p.Sharpe, 1e-12)
		}
	}
}

func TestFrontierCaching(t *testing.T) {
	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "calculations.db"),
		Profile: database.ProfileCache,
		Name:    "calculations-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, err := calculations.NewCache(db)
	require.NoError(t, err)

	sampler := NewFrontierSampler(42, 0.03, cache, zerolog.Nop())
	candidates := testCandidates()

	first := sampler.Sample(candidates, 30)
	second := sampler.Sample(candidates, 30)

	assert.Equal(t, first.MaxSharpe, second.MaxSharpe)
	assert.Equal(t, len(first.Portfolios), len(second.Portfolios))

	// The cached copy must survive a fresh sampler over the same cache.
	third := NewFrontierSampler(42, 0.03, cache, zerolog.Nop()).Sample(candidates, 30)
	assert.Equal(t, first.MinVolatility, third.MinVolatility)
}

func TestFrontierCacheMissesAfterStatsChange(t *testing.T) {
	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "calculations.db"),
		Profile: database.ProfileCache,
		Name:    "calculations-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, err := calculations.NewCache(db)
	require.NoError(t, err)

	sampler := NewFrontierSampler(42, 0.03, cache, zerolog.Nop())
	candidates := testCandidates()
	before := sampler.Sample(candidates, 30)

	// Same tickers, regenerated statistics: the cached entry must not be
	// served for the new numbers.
	refreshed := make(selection.CandidateSet, len(candidates))
	copy(refreshed, candidates)
	for i := range refreshed {
		refreshed[i].CAGR1Y *= 2
		refreshed[i].Volatility *= 1.5
	}

	after := sampler.Sample(refreshed, 30)
	require.Len(t, after.Portfolios, 30)

	// Identical seed means identical weight draws, so doubling every
	// return exactly doubles each sampled portfolio return.
	assert.InDelta(t, 2*before.Portfolios[0].Return, after.Portfolios[0].Return, 1e-12)

	// The original entry still serves the original statistics.
	again := sampler.Sample(candidates, 30)
	assert.Equal(t, before.MaxSharpe, again.MaxSharpe)
}
