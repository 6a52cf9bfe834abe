package simulation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

func simPortfolio() portfolio.Portfolio {
	mk := func(ticker string, cagr, vol, yield float64) selection.Candidate {
		return selection.Candidate{
			Asset: catalog.Asset{
				Ticker:        ticker,
				Name:          ticker + " Fund",
				Category:      catalog.CategoryLargeCap,
				CAGR1Y:        cagr,
				DividendYield: yield,
				Volatility:    vol,
			},
			EffectiveYield: yield,
		}
	}
	candidates := selection.CandidateSet{
		mk("AAA", 0.08, 0.15, 0.030),
		mk("BBB", 0.05, 0.08, 0.040),
		mk("CCC", 0.12, 0.22, 0.005),
	}
	return portfolio.Build(candidates, []float64{0.4, 0.3, 0.3}, 10000)
}

func TestSimulationShape(t *testing.T) {
	sim := NewSimulator(42, 4, zerolog.Nop())

	result := sim.Run(simPortfolio(), 200, 5, 0.05)
	require.NotNil(t, result)

	assert.Equal(t, 200, result.Simulations)
	assert.Equal(t, 5, result.Years)
	assert.InDelta(t, 10000, result.InitialInvestment, 1e-6)
	assert.Len(t, result.Outcomes, 200)

	keys := []string{"5th", "25th", "50th", "75th", "95th"}
	for _, k := range keys {
		v, ok := result.Percentiles[k]
		require.True(t, ok, "missing percentile %s", k)
		assert.InDelta(t, 10000*(1+v), result.PercentileValues[k], 1e-6)
	}
}

func TestSimulationPercentileMonotonicity(t *testing.T) {
	sim := NewSimulator(42, 4, zerolog.Nop())

	result := sim.Run(simPortfolio(), 500, 5, 0.05)
	require.NotNil(t, result)

	p := result.Percentiles
	assert.LessOrEqual(t, p["5th"], p["25th"])
	assert.LessOrEqual(t, p["25th"], p["50th"])
	assert.LessOrEqual(t, p["50th"], p["75th"])
	assert.LessOrEqual(t, p["75th"], p["95th"])
	assert.Less(t, p["5th"], p["95th"], "tails must actually spread")
}

func TestSimulationSerialParallelAgreement(t *testing.T) {
	p := simPortfolio()

	serial := NewSimulator(42, 1, zerolog.Nop()).Run(p, 100, 3, 0.05)
	parallel := NewSimulator(42, 8, zerolog.Nop()).Run(p, 100, 3, 0.05)

	require.NotNil(t, serial)
	require.NotNil(t, parallel)
	assert.Equal(t, serial.Outcomes, parallel.Outcomes, "per-run seeds make worker count irrelevant")
	assert.Equal(t, serial.Percentiles, parallel.Percentiles)
}

func TestSimulationReproducible(t *testing.T) {
	p := simPortfolio()

	a := NewSimulator(42, 4, zerolog.Nop()).Run(p, 100, 3, 0.05)
	b := NewSimulator(42, 4, zerolog.Nop()).Run(p, 100, 3, 0.05)
	c := NewSimulator(7, 4, zerolog.Nop()).Run(p, 100, 3, 0.05)

	assert.Equal(t, a.Outcomes, b.Outcomes)
	assert.NotEqual(t, a.Outcomes, c.Outcomes)
}

func TestSimulationExpectedDividend(t *testing.T) {
	sim := NewSimulator(42, 2, zerolog.Nop())
	p := simPortfolio()

	result := sim.Run(p, 50, 2, 0.05)
	require.NotNil(t, result)

	var monthly float64
	for _, h := range p.Holdings {
		monthly += h.Weight * h.EffectiveYield / 12
	}
	assert.InDelta(t, 10000*monthly, result.ExpectedMonthlyDividend, 1e-6)
}

func TestSimulationEmptyGuards(t *testing.T) {
	sim := NewSimulator(42, 2, zerolog.Nop())

	assert.Nil(t, sim.Run(portfolio.Portfolio{}, 100, 5, 0.05))
	assert.Nil(t, sim.Run(simPortfolio(), 0, 5, 0.05))
	assert.Nil(t, sim.Run(simPortfolio(), 100, 0, 0.05))

	zeroCapital := portfolio.Build(selection.CandidateSet{{
		Asset: catalog.Asset{Ticker: "AAA", CAGR1Y: 0.08},
	}}, []float64{1.0}, 0)
	assert.Nil(t, sim.Run(zeroCapital, 100, 5, 0.05))
}
