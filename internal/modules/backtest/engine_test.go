package backtest

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

func backtestPortfolio() portfolio.Portfolio {
	mk := func(ticker string, cat catalog.Category, cagr, yield float64) selection.Candidate {
		return selection.Candidate{
			Asset: catalog.DefaultStats.Apply(catalog.Asset{
				Ticker:        ticker,
				Name:          ticker + " Fund",
				Category:      cat,
				CAGR1Y:        cagr,
				DividendYield: yield,
			}),
			EffectiveYield: yield,
		}
	}
	candidates := selection.CandidateSet{
		mk("SCHD", catalog.CategoryDividend, 0.08, 0.035),
		mk("BND", catalog.CategoryBond, 0.04, 0.040),
		mk("VUG", catalog.CategoryGrowth, 0.12, 0.005),
	}
	return portfolio.Build(candidates, []float64{0.4, 0.3, 0.3}, 10000)
}

func date(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func TestBacktestRunShape(t *testing.T) {
	engine := NewEngine(42, 0.03, zerolog.Nop())

	result, err := engine.Run(backtestPortfolio(), date(2018, 1), date(2023, 12))
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "2018-01", result.StartDate)
	assert.Equal(t, "2023-12", result.EndDate)
	require.Len(t, result.ReturnSeries, 72)

	// Cumulative compounds the monthly returns.
	cumulative := 1.0
	for _, p := range result.ReturnSeries {
		cumulative *= 1 + p.Return
		assert.InDelta(t, cumulative, p.Cumulative, 1e-9)
	}
	assert.InDelta(t, cumulative-1, result.TotalReturn, 1e-9)

	years := 72.0 / 12.0
	assert.InDelta(t, math.Pow(1+result.TotalReturn, 1/years)-1, result.AnnualizedReturn, 1e-9)

	assert.GreaterOrEqual(t, result.MaxDrawdown, 0.0)
	assert.Greater(t, result.AnnualizedVolatility, 0.0)
}

func TestBacktestReproducible(t *testing.T) {
	p := backtestPortfolio()

	a, err := NewEngine(42, 0.03, zerolog.Nop()).Run(p, date(2018, 1), date(2023, 12))
	require.NoError(t, err)
	b, err := NewEngine(42, 0.03, zerolog.Nop()).Run(p, date(2018, 1), date(2023, 12))
	require.NoError(t, err)

	// Everything except the run ID is a pure function of the inputs.
	assert.Equal(t, a.ReturnSeries, b.ReturnSeries)
	assert.Equal(t, a.TotalReturn, b.TotalReturn)
	assert.Equal(t, a.SharpeRatio, b.SharpeRatio)
	assert.NotEqual(t, a.RunID, b.RunID)

	c, err := NewEngine(7, 0.03, zerolog.Nop()).Run(p, date(2018, 1), date(2023, 12))
	require.NoError(t, err)
	assert.NotEqual(t, a.ReturnSeries, c.ReturnSeries, "different seed must change the path")
}

func TestBacktestCrisisMonthIsNegative(t *testing.T) {
	engine := NewEngine(42, 0.03, zerolog.Nop())

	result, err := engine.Run(backtestPortfolio(), date(2020, 1), date(2020, 12))
	require.NoError(t, err)

	var march *MonthlyReturn
	for i := range result.ReturnSeries {
		if result.ReturnSeries[i].Date == "2020-03" {
			march = &result.ReturnSeries[i]
		}
	}
	require.NotNil(t, march)

	// -0.20 market shock plus category overlays dwarfs the Gaussian term.
	assert.Less(t, march.Return, -0.15, "pandemic crash month must be strongly negative")
	assert.Greater(t, result.MaxDrawdown, 0.10)
}

func TestBacktestGuards(t *testing.T) {
	engine := NewEngine(42, 0.03, zerolog.Nop())

	_, err := engine.Run(portfolio.Portfolio{}, date(2020, 1), date(2020, 12))
	assert.ErrorIs(t, err, ErrEmptyPortfolio)

	_, err = engine.Run(backtestPortfolio(), date(2021, 6), date(2021, 1))
	assert.ErrorIs(t, err, ErrEmptyPortfolio, "inverted date range has no months")
}

func TestMonthRange(t *testing.T) {
	months := monthRange(date(2021, 11), date(2022, 2))
	assert.Equal(t, []string{"2021-11", "2021-12", "2022-01", "2022-02"}, months)

	assert.Len(t, monthRange(date(2022, 3), date(2022, 3)), 1)
	assert.Empty(t, monthRange(date(2022, 3), date(2022, 2)))
}

func TestMaxDrawdown(t *testing.T) {
	series := []MonthlyReturn{
		{Cumulative: 1.0},
		{Cumulative: 1.2},
		{Cumulative: 0.9},
		{Cumulative: 1.1},
	}
	assert.InDelta(t, (1.2-0.9)/1.2, maxDrawdown(series), 1e-12)
	assert.Zero(t, maxDrawdown(nil))
}
