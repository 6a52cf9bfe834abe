package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(42).Generate(SeedUniverse)
	b := NewGenerator(42).Generate(SeedUniverse)

	require.Equal(t, len(a), len(b))
	assert.Equal(t, a, b, "same seed must produce identical universes")
}

func TestGeneratorSeedChangesOutput(t *testing.T) {
	a := NewGenerator(42).Generate(SeedUniverse)
	b := NewGenerator(43).Generate(SeedUniverse)

	require.Equal(t, len(a), len(b))
	assert.NotEqual(t, a, b, "different seeds must produce different statistics")
}

func TestGeneratorOrderIndependent(t *testing.T) {
	reversed := make([]SeedEntry, len(SeedUniverse))
	for i, e := range SeedUniverse {
		reversed[len(SeedUniverse)-1-i] = e
	}

	a := NewGenerator(7).Generate(SeedUniverse)
	b := NewGenerator(7).Generate(reversed)

	assert.Equal(t, a, b, "input order must not affect generated statistics")
}

func TestGeneratorStatisticRanges(t *testing.T) {
	assets := NewGenerator(1).Generate(SeedUniverse)
	require.NotEmpty(t, assets)

	for _, a := range assets {
		assert.Greater(t, a.Volatility, 0.0, "%s volatility", a.Ticker)
		assert.Less(t, a.Volatility, 1.0, "%s volatility", a.Ticker)
		assert.GreaterOrEqual(t, a.Beta, 0.8, "%s beta", a.Ticker)
		assert.Less(t, a.MaxDrawdown, 0.0, "%s max drawdown", a.Ticker)
		assert.GreaterOrEqual(t, a.DividendYield, 0.0, "%s yield", a.Ticker)
		assert.Equal(t, a.DividendYield, a.ExpectedDividendYield, "%s expected yield", a.Ticker)
	}
}

func TestGeneratorIncomeCategoriesGetQualityScores(t *testing.T) {
	assets := NewGenerator(11).Generate(SeedUniverse)

	for _, a := range assets {
		switch a.Category {
		case CategoryDividend, CategoryCoveredCall:
			assert.GreaterOrEqual(t, a.DividendQuality, 0.3, "%s quality", a.Ticker)
			assert.GreaterOrEqual(t, a.DividendConsistency, 0.2, "%s consistency", a.Ticker)
		default:
			assert.InDelta(t, 0.2, a.DividendQuality, 1e-12, "%s quality", a.Ticker)
		}
	}
}

func TestSeedUniverseCoversAllCategories(t *testing.T) {
	seen := make(map[Category]bool)
	for _, e := range SeedUniverse {
		seen[e.Category] = true
	}
	for _, c := range AllCategories {
		assert.True(t, seen[c], "seed universe missing category %s", c)
	}
}

func TestDefaultsApply(t *testing.T) {
	a := Asset{
		Ticker:   "TEST",
		Category: CategoryLargeCap,
		CAGR1Y:   0.10,
	}

	got := DefaultStats.Apply(a)

	assert.Equal(t, 0.15, got.Volatility)
	assert.Equal(t, 1.0, got.Beta)
	assert.Equal(t, -0.20, got.MaxDrawdown)
	assert.Equal(t, 0.5, got.DividendQuality)
	assert.Equal(t, 0.02, got.DividendGrowth)
	assert.Equal(t, 0.5, got.DividendConsistency)
	assert.InDelta(t, 0.09, got.CAGR3Y, 1e-12)
	assert.InDelta(t, 0.08, got.CAGR5Y, 1e-12)
}

func TestDefaultsApplyPreservesExisting(t *testing.T) {
	a := Asset{
		Ticker:     "TEST",
		Category:   CategoryBond,
		Volatility: 0.05,
		Beta:       0.3,
		CAGR1Y:     0.04,
		CAGR3Y:     0.038,
		CAGR5Y:     0.036,
	}

	got := DefaultStats.Apply(a)

	assert.Equal(t, 0.05, got.Volatility)
	assert.Equal(t, 0.3, got.Beta)
	assert.Equal(t, 0.038, got.CAGR3Y)
	assert.Equal(t, 0.036, got.CAGR5Y)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("DIV")
	require.NoError(t, err)
	assert.Equal(t, CategoryDividend, c)

	_, err = ParseCategory("XYZ")
	assert.Error(t, err)
}
