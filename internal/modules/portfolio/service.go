package portfolio

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/optimization"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

// RecommendRequest describes one portfolio recommendation run.
type RecommendRequest struct {
	Focus       selection.Focus            `json:"investment_focus"`
	TargetValue float64                    `json:"target_value"` // monthly income (dividend) or annual return
	SeedMoney   float64                    `json:"seed_money"`
	Method      optimization.Method        `json:"optimization_method"`
	Profile     *selection.InvestorProfile `json:"investor_profile,omitempty"`
}

// RecommendResult is a recommendation plus its frontier context.
type RecommendResult struct {
	Portfolio  Portfolio                 `json:"portfolio"`
	Candidates selection.CandidateSet    `json:"candidates"`
	Frontier   optimization.FrontierData `json:"efficient_frontier"`
}

// AssetSource provides the current universe.
type AssetSource interface {
	Assets() ([]catalog.Asset, error)
}

// Service orchestrates select -> optimize -> build -> frontier.
type Service struct {
	assets    AssetSource
	selector  *selection.Selector
	optimizer *optimization.WeightOptimizer
	frontier  *optimization.FrontierSampler
	log       zerolog.Logger
}

// NewService creates the recommendation service.
func NewService(
	assets AssetSource,
	selector *selection.Selector,
	optimizer *optimization.WeightOptimizer,
	frontier *optimization.FrontierSampler,
	log zerolog.Logger,
) *Service {
	return &Service{
		assets:    assets,
		selector:  selector,
		optimizer: optimizer,
		frontier:  frontier,
		log:       log.With().Str("component", "portfolio").Logger(),
	}
}

// Recommend runs the full recommendation pipeline for one request.
// Selection failures (too few valid assets) surface to the caller; solver
// failures degrade to equal weights inside the optimizer.
func (s *Service) Recommend(req RecommendRequest) (*RecommendResult, error) {
	universe, err := s.assets.Assets()
	if err != nil {
		return nil, fmt.Errorf("failed to load asset universe: %w", err)
	}

	focus := req.Focus
	if req.Profile != nil && req.Profile.Focus != "" {
		focus = req.Profile.Focus
	}
	if focus == "" {
		focus = selection.FocusBalanced
	}

	candidates, err := s.selector.Select(universe, focus, req.TargetValue, req.SeedMoney, req.Profile)
	if err != nil {
		return nil, err
	}

	target := optimization.Target{Value: req.TargetValue}
	if focus == selection.FocusDividend {
		target.Dividend = true
		target.Value = 0
		if req.SeedMoney > 0 {
			target.Value = req.TargetValue * 12 / req.SeedMoney
		}
	}

	weights := s.optimizer.Optimize(candidates, req.Method, target)
	built := Build(candidates, weights, req.SeedMoney)
	frontier := s.frontier.Sample(candidates, optimization.DefaultFrontierSamples)

	s.log.Info().
		Str("focus", string(focus)).
		Str("method", string(req.Method)).
		Int("holdings", len(built.Holdings)).
		Float64("monthly_income", built.TotalMonthlyIncome).
		Msg("Built portfolio recommendation")

	return &RecommendResult{
		Portfolio:  built,
		Candidates: candidates,
		Frontier:   frontier,
	}, nil
}
