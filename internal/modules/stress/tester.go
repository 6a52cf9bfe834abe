package stress

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
)

// ErrUnknownScenario is returned for scenario names outside the fixed
// catalog. Caller error; no computation is performed.
var ErrUnknownScenario = errors.New("unknown stress scenario")

// referenceVolatility is the assumed average volatility. Assets more
// volatile than this feel a proportionally larger scenario impact.
const referenceVolatility = 0.15

// AssetImpact is one holding's outcome under a scenario.
type AssetImpact struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentValue float64 `json:"current_value"`
	Impact       float64 `json:"impact"`
	ValueChange  float64 `json:"value_change"`
	NewValue     float64 `json:"new_value"`
}

// Result holds one stress test outcome.
type Result struct {
	Scenario          string        `json:"scenario"`
	ScenarioName      string        `json:"scenario_name"`
	Description       string        `json:"description"`
	PortfolioImpact   float64       `json:"portfolio_impact"`
	TotalInvestment   float64       `json:"total_investment"`
	TotalValueChange  float64       `json:"total_value_change"`
	NewPortfolioValue float64       `json:"new_portfolio_value"`
	AssetImpacts      []AssetImpact `json:"asset_impacts"`
}

// Tester runs portfolios through the fixed scenario catalog.
type Tester struct {
	log zerolog.Logger
}

// NewTester creates a stress tester.
func NewTester(log zerolog.Logger) *Tester {
	return &Tester{log: log.With().Str("component", "stress").Logger()}
}

// Run applies the named scenario to the portfolio. Per-asset impact is
// (market return + category shock) scaled by the asset's volatility
// relative to the reference and by the scenario's volatility multiplier.
func (t *Tester) Run(p portfolio.Portfolio, scenarioName string) (Result, error) {
	scenario, ok := Scenarios[scenarioName]
	if !ok {
		return Result{}, ErrUnknownScenario
	}

	totalInvestment := p.TotalInvested()

	impacts := make([]AssetImpact, len(p.Holdings))
	var totalChange float64
	for i, h := range p.Holdings {
		shock := scenario.CategoryShocks[h.Category]
		volAdjustment := h.Volatility / referenceVolatility

		impact := (scenario.MarketReturn + shock) * volAdjustment * scenario.VolatilityMultiplier
		change := h.Invested * impact

		impacts[i] = AssetImpact{
			Ticker:       h.Ticker,
			Name:         h.Name,
			Category:     string(h.Category),
			CurrentValue: h.Invested,
			Impact:       impact,
			ValueChange:  change,
			NewValue:     h.Invested * (1 + impact),
		}
		totalChange += change
	}

	portfolioImpact := 0.0
	if totalInvestment > 0 {
		portfolioImpact = totalChange / totalInvestment
	}

	result := Result{
		Scenario:          scenario.Key,
		ScenarioName:      scenario.Name,
		Description:       scenario.Description,
		PortfolioImpact:   portfolioImpact,
		TotalInvestment:   totalInvestment,
		TotalValueChange:  totalChange,
		NewPortfolioValue: totalInvestment + totalChange,
		AssetImpacts:      impacts,
	}

	t.log.Info().
		Str("scenario", scenarioName).
		Float64("portfolio_impact", portfolioImpact).
		Int("holdings", len(p.Holdings)).
		Msg("Stress test complete")
	return result, nil
}
