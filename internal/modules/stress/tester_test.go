package stress

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

func stressPortfolio() portfolio.Portfolio {
	mk := func(ticker string, cat catalog.Category, vol float64) selection.Candidate {
		return selection.Candidate{
			Asset: catalog.Asset{
				Ticker:     ticker,
				Name:       ticker + " Fund",
				Category:   cat,
				CAGR1Y:     0.08,
				Volatility: vol,
			},
			EffectiveYield: 0.02,
		}
	}
	candidates := selection.CandidateSet{
		mk("BND", catalog.CategoryBond, 0.05),
		mk("SCHD", catalog.CategoryDividend, 0.15),
		mk("VUG", catalog.CategoryGrowth, 0.25),
	}
	return portfolio.Build(candidates, []float64{0.4, 0.3, 0.3}, 10000)
}

func TestStressUnknownScenario(t *testing.T) {
	tester := NewTester(zerolog.Nop())

	_, err := tester.Run(stressPortfolio(), "asteroid_strike")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestStressValueConservation(t *testing.T) {
	tester := NewTester(zerolog.Nop())
	p := stressPortfolio()

	for _, name := range ScenarioNames() {
		result, err := tester.Run(p, name)
		require.NoError(t, err, name)

		var sumChange float64
		for _, a := range result.AssetImpacts {
			assert.InDelta(t, a.CurrentValue*(1+a.Impact), a.NewValue, 1e-9)
			sumChange += a.ValueChange
		}
		assert.InDelta(t, sumChange, result.TotalValueChange, 1e-9)
		assert.InDelta(t, result.TotalInvestment+result.TotalValueChange, result.NewPortfolioValue, 1e-9)
		assert.InDelta(t, result.TotalValueChange/result.TotalInvestment, result.PortfolioImpact, 1e-12)
	}
}

func TestStressBearMarketOrdering(t *testing.T) {
	tester := NewTester(zerolog.Nop())

	result, err := tester.Run(stressPortfolio(), "bear_market")
	require.NoError(t, err)

	impacts := make(map[string]float64)
	for _, a := range result.AssetImpacts {
		impacts[a.Ticker] = a.Impact
	}

	// Bonds get +0.05 shock against the -0.30 market and carry low
	// volatility; growth stacks an extra -0.25 on high volatility.
	assert.Greater(t, impacts["BND"], impacts["SCHD"])
	assert.Greater(t, impacts["SCHD"], impacts["VUG"])
	assert.Less(t, result.PortfolioImpact, 0.0)
}

func TestStressImpactFormula(t *testing.T) {
	tester := NewTester(zerolog.Nop())

	candidates := selection.CandidateSet{{
		Asset: catalog.Asset{
			Ticker:     "VUG",
			Name:       "VUG Fund",
			Category:   catalog.CategoryGrowth,
			CAGR1Y:     0.12,
			Volatility: 0.30,
		},
	}}
	p := portfolio.Build(candidates, []float64{1.0}, 10000)

	result, err := tester.Run(p, "tech_crash")
	require.NoError(t, err)
	require.Len(t, result.AssetImpacts, 1)

	// (-0.20 market - 0.30 growth shock) * (0.30/0.15 vol adj) * 1.8 mult
	expected := (-0.20 - 0.30) * 2.0 * 1.8
	assert.InDelta(t, expected, result.AssetImpacts[0].Impact, 1e-12)
	assert.InDelta(t, expected, result.PortfolioImpact, 1e-12)
}

func TestStressFedPivotIsPositive(t *testing.T) {
	tester := NewTester(zerolog.Nop())

	result, err := tester.Run(stressPortfolio(), "fed_pivot")
	require.NoError(t, err)

	assert.Greater(t, result.PortfolioImpact, 0.0)
	assert.Greater(t, result.NewPortfolioValue, result.TotalInvestment)
}

func TestStressDeterministic(t *testing.T) {
	tester := NewTester(zerolog.Nop())
	p := stressPortfolio()

	a, err := tester.Run(p, "inflation")
	require.NoError(t, err)
	b, err := tester.Run(p, "inflation")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
