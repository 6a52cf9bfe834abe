package catalog

import (
	"math/rand"
	"sort"
)

// Category baseline tables used by the synthetic data generator. These stand
// in for a live market-data feed: every refresh produces statistics that are
// plausible for the category and deterministic for a given seed.
var (
	baselineYields = map[Category]float64{
		CategoryDividend:      0.03,
		CategoryCoveredCall:   0.08,
		CategoryBond:          0.04,
		CategoryLargeCap:      0.015,
		CategoryMidCap:        0.015,
		CategorySmallCap:      0.014,
		CategorySector:        0.02,
		CategoryRealEstate:    0.035,
		CategoryInternational: 0.025,
		CategoryCommodity:     0.0,
		CategoryLowVolatility: 0.025,
		CategoryGrowth:        0.005,
	}

	baselineReturns = map[Category]float64{
		CategoryDividend:      0.08,
		CategoryCoveredCall:   0.06,
		CategoryBond:          0.04,
		CategoryLargeCap:      0.10,
		CategoryMidCap:        0.09,
		CategorySmallCap:      0.09,
		CategorySector:        0.08,
		CategoryRealEstate:    0.07,
		CategoryInternational: 0.07,
		CategoryCommodity:     0.05,
		CategoryLowVolatility: 0.07,
		CategoryGrowth:        0.12,
	}
)

// Generator produces synthetic per-asset statistics around the category
// baselines. Assets are generated in ticker order from a single seeded
// stream, so two generators with the same seed emit identical universes.
type Generator struct {
	seed int64
}

// NewGenerator creates a generator with a fixed base seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Generate builds a full asset list for the given universe entries.
func (g *Generator) Generate(universe []SeedEntry) []Asset {
	entries := make([]SeedEntry, len(universe))
	copy(entries, universe)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Ticker < entries[j].Ticker })

	rng := rand.New(rand.NewSource(g.seed))
	assets := make([]Asset, 0, len(entries))
	for _, e := range entries {
		assets = append(assets, g.generateOne(e, rng))
	}
	return assets
}

func (g *Generator) generateOne(e SeedEntry, rng *rand.Rand) Asset {
	baseYield := baselineYields[e.Category]
	baseReturn := baselineReturns[e.Category]
	riskFactor := float64(e.RiskLevel) / 5.0

	yield := baseYield * (0.9 + 0.2*rng.Float64())
	cagr1y := baseReturn * (0.8 + 0.4*rng.Float64())
	cagr3y := cagr1y * (0.9 + 0.2*rng.Float64())
	cagr5y := cagr3y * (0.9 + 0.2*rng.Float64())

	incomeCategory := e.Category == CategoryDividend || e.Category == CategoryCoveredCall

	quality := 0.2
	consistency := 0.3
	growth := 0.01
	if incomeCategory {
		quality = 0.3 + 0.7*rng.Float64()
		consistency = 0.2 + 0.8*rng.Float64()
	}
	if e.Category == CategoryDividend {
		growth = 0.04 * rng.Float64()
	}

	return Asset{
		Ticker:                e.Ticker,
		Name:                  e.Name,
		Category:              e.Category,
		RiskLevel:             e.RiskLevel,
		DividendYield:         yield,
		ExpectedDividendYield: yield,
		CAGR1Y:                cagr1y,
		CAGR3Y:                cagr3y,
		CAGR5Y:                cagr5y,
		Volatility:            0.08 * riskFactor * (0.8 + 0.4*rng.Float64()),
		Beta:                  0.8 + 0.4*riskFactor,
		MaxDrawdown:           -0.1 - 0.2*riskFactor*rng.Float64(),
		DividendQuality:       quality,
		DividendGrowth:        growth,
		DividendConsistency:   consistency,
	}
}
