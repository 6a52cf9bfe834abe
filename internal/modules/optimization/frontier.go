package optimization

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/calculations"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

// DefaultFrontierSamples is the number of random portfolios drawn per
// frontier unless the caller asks for more.
const DefaultFrontierSamples = 100

const frontierCacheTTL = 24 * time.Hour

// FrontierPoint is one sampled portfolio on the risk/return plane.
type FrontierPoint struct {
	Return     float64   `json:"return" msgpack:"return"`
	Volatility float64   `json:"volatility" msgpack:"volatility"`
	Sharpe     float64   `json:"sharpe" msgpack:"sharpe"`
	Weights    []float64 `json:"weights" msgpack:"weights"`
}

// AssetPoint is a single asset's own risk/return position, for overlay.
type AssetPoint struct {
	Ticker     string  `json:"ticker" msgpack:"ticker"`
	Name       string  `json:"name" msgpack:"name"`
	Return     float64 `json:"return" msgpack:"return"`
	Volatility float64 `json:"volatility" msgpack:"volatility"`
	Sharpe     float64 `json:"sharpe" msgpack:"sharpe"`
}

// FrontierData is the sampled efficient frontier. Empty (zero value) when
// fewer than two candidates are supplied.
type FrontierData struct {
	Portfolios    []FrontierPoint `json:"portfolios" msgpack:"portfolios"`
	MaxSharpe     *FrontierPoint  `json:"max_sharpe" msgpack:"max_sharpe"`
	MinVolatility *FrontierPoint  `json:"min_volatility" msgpack:"min_volatility"`
	AssetPoints   []AssetPoint    `json:"asset_points" msgpack:"asset_points"`
}

// FrontierSampler draws random portfolios over a candidate set to trace the
// feasible risk/return region. Sampling deliberately skips the per-asset
// box bounds so the full feasible shape is visible.
type FrontierSampler struct {
	seed     int64
	riskFree float64
	cache    *calculations.Cache
	log      zerolog.Logger
}

// NewFrontierSampler creates a frontier sampler. The cache is optional;
// when nil every call samples fresh.
func NewFrontierSampler(seed int64, riskFreeRate float64, cache *calculations.Cache, log zerolog.Logger) *FrontierSampler {
	if riskFreeRate <= 0 {
		riskFreeRate = DefaultRiskFreeRate
	}
	return &FrontierSampler{
		seed:     seed,
		riskFree: riskFreeRate,
		cache:    cache,
		log:      log.With().Str("component", "frontier").Logger(),
	}
}

// Sample draws n random L1-normalized weight vectors over the candidates
// and reports the max-Sharpe point, the min-volatility point, and each
// asset's own position. Repeated calls on the same candidate set return
// identical results.
func (s *FrontierSampler) Sample(candidates selection.CandidateSet, n int) FrontierData {
	if len(candidates) < 2 {
		return FrontierData{}
	}
	if n <= 0 {
		n = DefaultFrontierSamples
	}

	// The key fingerprints the statistics the frontier is computed from, so
	// a catalog refresh that changes returns or volatilities misses the
	// cache instead of serving a frontier for superseded stats.
	cacheKey := calculations.HashKey(
		calculations.HashTickers(candidates.Tickers()),
		statsFingerprint(candidates),
		strconv.Itoa(n),
		strconv.FormatInt(s.seed, 10),
	)
	if s.cache != nil {
		var cached FrontierData
		if ok, err := s.cache.Get("frontier", cacheKey, &cached); err == nil && ok {
			s.log.Debug().Str("key", cacheKey[:8]).Msg("Using cached frontier")
			return cached
		}
	}

	nAssets := len(candidates)
	returns := make([]float64, nAssets)
	volatilities := make([]float64, nAssets)
	for i, c := range candidates {
		returns[i] = c.CAGR1Y
		volatilities[i] = c.Volatility
	}
	sigma := BuildSyntheticCovariance(volatilities)

	rng := rand.New(rand.NewSource(s.seed))
	data := FrontierData{Portfolios: make([]FrontierPoint, 0, n)}

	for i := 0; i < n; i++ {
		weights := make([]float64, nAssets)
		sum := 0.0
		for j := range weights {
			weights[j] = rng.Float64()
			sum += weights[j]
		}
		for j := range weights {
			weights[j] /= sum
		}

		ret := weightedSum(returns, weights)
		vol := math.Sqrt(portfolioVariance(weights, sigma))
		sharpe := 0.0
		if vol > 0 {
			sharpe = (ret - s.riskFree) / vol
		}

		point := FrontierPoint{Return: ret, Volatility: vol, Sharpe: sharpe, Weights: weights}
		data.Portfolios = append(data.Portfolios, point)

		if data.MaxSharpe == nil || point.Sharpe > data.MaxSharpe.Sharpe {
			p := point
			data.MaxSharpe = &p
		}
		if data.MinVolatility == nil || point.Volatility < data.MinVolatility.Volatility {
			p := point
			data.MinVolatility = &p
		}
	}

	data.AssetPoints = make([]AssetPoint, nAssets)
	for i, c := range candidates {
		sharpe := 0.0
		if volatilities[i] > 0 {
			sharpe = (returns[i] - s.riskFree) / volatilities[i]
		}
		data.AssetPoints[i] = AssetPoint{
			Ticker:     c.Ticker,
			Name:       c.Name,
			Return:     returns[i],
			Volatility: volatilities[i],
			Sharpe:     sharpe,
		}
	}

	if s.cache != nil {
		if err := s.cache.Set("frontier", cacheKey, data, frontierCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("Failed to cache frontier")
		}
	}

	s.log.Debug().
		Int("portfolios", n).
		Int("candidates", nAssets).
		Msg("Sampled efficient frontier")
	return data
}

// statsFingerprint hashes the per-candidate inputs the sampler consumes.
// Candidates are keyed ticker-first so the fingerprint is order independent.
func statsFingerprint(candidates selection.CandidateSet) string {
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = c.Ticker + ":" +
			strconv.FormatFloat(c.CAGR1Y, 'g', -1, 64) + ":" +
			strconv.FormatFloat(c.Volatility, 'g', -1, 64)
	}
	sort.Strings(parts)
	return calculations.HashKey(parts...)
}
