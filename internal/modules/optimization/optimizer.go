package optimization

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

// Method identifies the optimization objective.
type Method string

const (
	MethodSharpe       Method = "sharpe"
	MethodRiskParity   Method = "risk_parity"
	MethodMinVariance  Method = "min_variance"
	MethodTargetReturn Method = "target_return"
)

// Per-asset weight bounds. Every objective is box-constrained to these.
const (
	MinWeight = 0.05
	MaxWeight = 0.40
)

// DefaultRiskFreeRate is the annual risk-free rate used when no rate is
// configured.
const DefaultRiskFreeRate = 0.03

// Target carries the target_return method's goal. Dividend selects the
// yield variant (rewards weighted dividend quality instead of penalizing
// variance); Value is the target annual return or annual yield.
type Target struct {
	Dividend bool
	Value    float64
}

// WeightOptimizer solves the constrained weight assignment for a candidate
// set. Solver failures are recoverable: the optimizer falls back to equal
// weights and logs a warning rather than failing the request.
type WeightOptimizer struct {
	riskFree float64
	log      zerolog.Logger
}

// NewWeightOptimizer creates a weight optimizer with the given annual
// risk-free rate.
func NewWeightOptimizer(riskFreeRate float64, log zerolog.Logger) *WeightOptimizer {
	if riskFreeRate <= 0 {
		riskFreeRate = DefaultRiskFreeRate
	}
	return &WeightOptimizer{
		riskFree: riskFreeRate,
		log:      log.With().Str("component", "optimizer").Logger(),
	}
}

// Optimize returns a weight per candidate, each in [MinWeight, MaxWeight],
// summing to 1. A method name outside the four known values degenerates to
// equal weighting without error.
func (o *WeightOptimizer) Optimize(candidates selection.CandidateSet, method Method, target Target) []float64 {
	n := len(candidates)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{1.0}
	}

	returns := make([]float64, n)
	yields := make([]float64, n)
	qualities := make([]float64, n)
	volatilities := make([]float64, n)
	for i, c := range candidates {
		returns[i] = c.CAGR1Y
		yields[i] = c.EffectiveYield
		qualities[i] = c.DividendQuality
		volatilities[i] = c.Volatility
	}
	sigma := BuildSyntheticCovariance(volatilities)

	var objective func(x []float64) float64
	switch method {
	case MethodSharpe:
		objective = o.sharpeObjective(returns, sigma)
	case MethodRiskParity:
		objective = riskParityObjective(sigma)
	case MethodMinVariance:
		objective = func(x []float64) float64 { return portfolioVariance(projectToBounds(x), sigma) }
	case MethodTargetReturn:
		if target.Dividend {
			objective = targetDividendObjective(yields, qualities, target.Value)
		} else {
			objective = targetReturnObjective(returns, sigma, target.Value)
		}
	default:
		o.log.Warn().Str("method", string(method)).Msg("Unknown optimization method, using equal weights")
		return equalWeights(n)
	}

	weights, ok := o.solve(objective, n)
	if !ok {
		o.log.Warn().
			Str("method", string(method)).
			Int("candidates", n).
			Msg("Solver did not converge, falling back to equal weights")
		return equalWeights(n)
	}

	o.log.Debug().
		Str("method", string(method)).
		Int("candidates", n).
		Msg("Optimized portfolio weights")
	return weights
}

// solve runs the penalty-method minimization: the sum-to-1 equality becomes
// a quadratic penalty and the box bounds are enforced by projection inside
// the objective. Nelder-Mead first, BFGS with numerical gradients as the
// retry.
func (o *WeightOptimizer) solve(objective func(x []float64) float64, n int) ([]float64, bool) {
	const penaltyWeight = 1000.0

	penalized := func(x []float64) float64 {
		xProj := projectToBounds(x)
		obj := objective(x)

		sum := 0.0
		for i := range xProj {
			sum += xProj[i]
		}
		obj += penaltyWeight * (sum - 1.0) * (sum - 1.0)
		return obj
	}

	problem := optimize.Problem{
		Func: penalized,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, penalized, x, nil)
		},
	}

	initial := equalWeights(n)

	successStatuses := map[optimize.Status]bool{
		optimize.Success:             true,
		optimize.GradientThreshold:   true,
		optimize.FunctionConvergence: true,
	}

	result, err := optimize.Minimize(problem, initial, &optimize.Settings{}, &optimize.NelderMead{})
	if err != nil || !successStatuses[result.Status] {
		result, err = optimize.Minimize(problem, initial, &optimize.Settings{}, &optimize.BFGS{})
		if err != nil || !successStatuses[result.Status] {
			return nil, false
		}
	}

	return projectToFeasible(result.X), true
}

func (o *WeightOptimizer) sharpeObjective(returns []float64, sigma *mat.Dense) func(x []float64) float64 {
	return func(x []float64) float64 {
		xProj := projectToBounds(x)
		ret := weightedSum(returns, xProj)
		stddev := math.Sqrt(portfolioVariance(xProj, sigma))
		if stddev == 0 {
			return 0
		}
		return -(ret - o.riskFree) / stddev
	}
}

// riskParityObjective penalizes squared deviations of each asset's risk
// contribution from the equal-contribution target 1/n.
func riskParityObjective(sigma *mat.Dense) func(x []float64) float64 {
	return func(x []float64) float64 {
		xProj := projectToBounds(x)
		n := len(xProj)
		variance := portfolioVariance(xProj, sigma)

		targetRisk := 1.0 / float64(n)
		var obj float64
		for i := 0; i < n; i++ {
			var marginal float64
			for j := 0; j < n; j++ {
				marginal += sigma.At(i, j) * xProj[j]
			}
			rc := xProj[i]
			if variance > 0 {
				rc = xProj[i] * marginal / variance
			}
			obj += (rc - targetRisk) * (rc - targetRisk)
		}
		return obj
	}
}

func targetReturnObjective(returns []float64, sigma *mat.Dense, target float64) func(x []float64) float64 {
	return func(x []float64) float64 {
		xProj := projectToBounds(x)
		ret := weightedSum(returns, xProj)
		diff := ret - target
		return 100*diff*diff + 10*portfolioVariance(xProj, sigma)
	}
}

// targetDividendObjective has no variance term: it rewards weighted
// dividend quality instead.
func targetDividendObjective(yields, qualities []float64, targetYield float64) func(x []float64) float64 {
	return func(x []float64) float64 {
		xProj := projectToBounds(x)
		diff := weightedSum(yields, xProj) - targetYield
		return 100*diff*diff - weightedSum(qualities, xProj)
	}
}

// projectToBounds clamps every weight into [MinWeight, MaxWeight].
func projectToBounds(x []float64) []float64 {
	proj := make([]float64, len(x))
	for i := range x {
		proj[i] = math.Max(MinWeight, math.Min(MaxWeight, x[i]))
	}
	return proj
}

// projectToFeasible maps x onto the intersection of the box
// [MinWeight, MaxWeight]^n and the unit simplex. Clamping alone breaks the
// sum and a global rescale breaks the box, so alternate: clamp, then spread
// the sum residual over the coordinates that still have slack, until both
// constraints hold.
func projectToFeasible(x []float64) []float64 {
	w := projectToBounds(x)
	for iter := 0; iter < 100; iter++ {
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		residual := 1.0 - sum
		if math.Abs(residual) <= 1e-12 {
			break
		}

		free := 0
		for _, v := range w {
			if (residual > 0 && v < MaxWeight) || (residual < 0 && v > MinWeight) {
				free++
			}
		}
		if free == 0 {
			// n*MaxWeight < 1 or n*MinWeight > 1: the box and the simplex
			// do not intersect, keep the clamped point.
			break
		}

		step := residual / float64(free)
		for i, v := range w {
			if (residual > 0 && v < MaxWeight) || (residual < 0 && v > MinWeight) {
				w[i] = math.Max(MinWeight, math.Min(MaxWeight, v+step))
			}
		}
	}
	return w
}

func equalWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	return w
}
