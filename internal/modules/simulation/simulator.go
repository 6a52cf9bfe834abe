// Package simulation runs compounding Monte Carlo projections over a
// constructed portfolio.
package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
)

const tradingDaysPerYear = 252

// DefaultAlpha is the tail probability for the outer percentile pair.
const DefaultAlpha = 0.05

// Result holds one simulation's aggregate outcome distribution.
type Result struct {
	Simulations             int                `json:"simulations"`
	Years                   int                `json:"years"`
	InitialInvestment       float64            `json:"initial_investment"`
	MeanReturn              float64            `json:"mean_return"`
	StdDev                  float64            `json:"std_dev"`
	Percentiles             map[string]float64 `json:"percentiles"`
	PercentileValues        map[string]float64 `json:"percentile_values"`
	ExpectedMonthlyDividend float64            `json:"expected_monthly_dividend"`
	Outcomes                []float64          `json:"sim_returns"`
}

// Simulator fans independent runs out over a bounded worker pool. Run i
// draws from its own stream seeded with base+i, so parallel and serial
// execution produce identical outcome vectors.
type Simulator struct {
	seed    int64
	workers int
	log     zerolog.Logger
}

// NewSimulator creates a Monte Carlo simulator. workers <= 0 sizes the
// pool from the host CPU count.
func NewSimulator(seed int64, workers int, log zerolog.Logger) *Simulator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Simulator{
		seed:    seed,
		workers: workers,
		log:     log.With().Str("component", "simulation").Logger(),
	}
}

// Run simulates nSim independent paths of years x 252 daily Gaussian draws
// per holding and reports the terminal-return distribution. Returns nil
// when nothing is invested.
func (s *Simulator) Run(p portfolio.Portfolio, nSim, years int, alpha float64) *Result {
	totalInvest := p.TotalInvested()
	if totalInvest <= 0 || len(p.Holdings) == 0 || nSim <= 0 || years <= 0 {
		return nil
	}
	if alpha <= 0 || alpha >= 0.5 {
		alpha = DefaultAlpha
	}

	type assetParams struct {
		dailyMean float64
		dailyVol  float64
		weight    float64
	}
	params := make([]assetParams, len(p.Holdings))
	for i, h := range p.Holdings {
		params[i] = assetParams{
			dailyMean: math.Pow(1+h.CAGR1Y, 1.0/tradingDaysPerYear) - 1,
			dailyVol:  h.Volatility / math.Sqrt(tradingDaysPerYear),
			weight:    h.Invested / totalInvest,
		}
	}

	outcomes := make([]float64, nSim)

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < nSim; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(s.seed + int64(i)))
			value := 1.0
			for y := 0; y < years; y++ {
				yearly := 1.0
				for d := 0; d < tradingDaysPerYear; d++ {
					var daily float64
					for _, a := range params {
						daily += (a.dailyMean + rng.NormFloat64()*a.dailyVol) * a.weight
					}
					yearly *= 1 + daily
				}
				value *= yearly
			}
			outcomes[i] = value - 1
			return nil
		})
	}
	// Workers never return errors; the group only bounds parallelism.
	_ = g.Wait()

	sorted := make([]float64, len(outcomes))
	copy(sorted, outcomes)
	sort.Float64s(sorted)

	quantiles := []float64{alpha, 0.25, 0.50, 0.75, 1 - alpha}
	percentiles := make(map[string]float64, len(quantiles))
	percentileValues := make(map[string]float64, len(quantiles))
	for _, q := range quantiles {
		key := percentileKey(q)
		v := stat.Quantile(q, stat.Empirical, sorted, nil)
		percentiles[key] = v
		percentileValues[key] = totalInvest * (1 + v)
	}

	var monthlyYield float64
	for _, h := range p.Holdings {
		monthlyYield += h.Weight * h.EffectiveYield / 12
	}

	result := &Result{
		Simulations:             nSim,
		Years:                   years,
		InitialInvestment:       totalInvest,
		MeanReturn:              stat.Mean(outcomes, nil),
		StdDev:                  stat.PopStdDev(outcomes, nil),
		Percentiles:             percentiles,
		PercentileValues:        percentileValues,
		ExpectedMonthlyDividend: totalInvest * monthlyYield,
		Outcomes:                outcomes,
	}

	s.log.Info().
		Int("simulations", nSim).
		Int("years", years).
		Int("workers", s.workers).
		Float64("mean_return", result.MeanReturn).
		Msg("Monte Carlo simulation complete")
	return result
}

func percentileKey(q float64) string {
	return fmt.Sprintf("%gth", q*100)
}
