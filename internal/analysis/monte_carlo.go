package analysis

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/yourusername/tradecast/internal/models"
)

const (
	// DefaultMaxElements caps the simulation matrix at S*n float64 cells
	// (~400 MB) to keep a single request from exhausting memory.
	DefaultMaxElements = 50_000_000

	// LargeDrawdownThreshold is the drawdown fraction beyond which a
	// simulated path counts toward prob_large_drawdown.
	LargeDrawdownThreshold = 0.5
)

// MonteCarloConfig configures one bootstrap simulation run.
type MonteCarloConfig struct {
	Simulations int
	SamplePaths int
	// Seed parameterizes the random source; 0 selects a time-based seed,
	// which makes the run non-reproducible by design.
	Seed        int64
	MaxElements int
}

// MonteCarloResult holds the final-equity distribution and fan-chart data
// of one bootstrap run.
type MonteCarloResult struct {
	Distribution models.MCDistribution
	Paths        models.MCPaths
}

// RunMonteCarlo estimates the distribution of future portfolio outcomes by
// resampling the historical P&L series with replacement.
//
// Each of the S simulation rows draws n indices uniformly with replacement
// from the history, so every simulated path has the same horizon as the
// historical one. The ensemble lives in a single row-major (S, n) buffer;
// resampling and the cumulative sum are fused into one pass per row.
func RunMonteCarlo(ctx context.Context, pnl []float64, initialCapital float64, cfg MonteCarloConfig) (*MonteCarloResult, error) {
	n := len(pnl)
	if n == 0 {
		return nil, &models.InvalidInputError{Param: "trades", Value: 0, Reason: "at least one trade is required"}
	}
	if cfg.Simulations <= 0 {
		return nil, &models.InvalidInputError{Param: "n_simulations", Value: cfg.Simulations, Reason: "must be positive"}
	}
	if cfg.SamplePaths <= 0 || cfg.SamplePaths > cfg.Simulations {
		return nil, &models.InvalidInputError{Param: "n_sample_paths", Value: cfg.SamplePaths, Reason: "must be in [1, n_simulations]"}
	}

	maxElements := cfg.MaxElements
	if maxElements <= 0 {
		maxElements = DefaultMaxElements
	}
	if int64(cfg.Simulations)*int64(n) > int64(maxElements) {
		return nil, &models.ResourceLimitError{
			RequestedElements: cfg.Simulations * n,
			MaxElements:       maxElements,
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sims := cfg.Simulations
	paths := make([]float64, sims*n)
	finals := make([]float64, sims)
	largeDrawdowns := 0

	for i := 0; i < sims; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row := paths[i*n : (i+1)*n]
		equity := initialCapital
		// The running peak tracks the equity path only, same convention as
		// maxDrawdown in stats.go. The first path value is the first peak.
		peak := math.Inf(-1)
		maxDD := 0.0
		for j := range row {
			equity += pnl[rng.Intn(n)]
			row[j] = equity
			if equity > peak {
				peak = equity
			}
			if peak != 0 {
				if dd := (peak - equity) / peak; dd > maxDD {
					maxDD = dd
				}
			}
		}
		finals[i] = equity
		if maxDD > LargeDrawdownThreshold {
			largeDrawdowns++
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	distribution := summarizeFinals(finals, initialCapital, largeDrawdowns)
	bands := computeBands(paths, sims, n)
	bands.SamplePaths = extractSamplePaths(paths, cfg.SamplePaths, n)

	return &MonteCarloResult{Distribution: distribution, Paths: bands}, nil
}

func summarizeFinals(finals []float64, initialCapital float64, largeDrawdowns int) models.MCDistribution {
	sorted := append([]float64{}, finals...)
	sort.Float64s(sorted)

	mean, _ := stats.Mean(finals)

	return models.MCDistribution{
		FinalEquities:     finals,
		MeanFinal:         mean,
		MedianFinal:       percentileSorted(sorted, 50),
		P5:                percentileSorted(sorted, 5),
		P95:               percentileSorted(sorted, 95),
		ProbProfit:        fractionAbove(finals, initialCapital),
		ProbLargeDrawdown: float64(largeDrawdowns) / float64(len(finals)),
	}
}

// computeBands derives the percentile band curves along the trade axis.
// Each time column is sorted once and all five percentiles are read from
// the sorted column.
func computeBands(paths []float64, sims, n int) models.MCPaths {
	bands := models.MCPaths{
		MedianPath: make([]float64, n),
		P5Path:     make([]float64, n),
		P25Path:    make([]float64, n),
		P75Path:    make([]float64, n),
		P95Path:    make([]float64, n),
	}

	col := make([]float64, sims)
	for j := 0; j < n; j++ {
		for i := 0; i < sims; i++ {
			col[i] = paths[i*n+j]
		}
		sort.Float64s(col)
		bands.P5Path[j] = percentileSorted(col, 5)
		bands.P25Path[j] = percentileSorted(col, 25)
		bands.MedianPath[j] = percentileSorted(col, 50)
		bands.P75Path[j] = percentileSorted(col, 75)
		bands.P95Path[j] = percentileSorted(col, 95)
	}
	return bands
}

// extractSamplePaths copies the first count rows out of the ensemble
// buffer. Rows are exchangeable, so a deterministic prefix carries the same
// statistical content as a random subset and keeps fixed-seed runs
// bit-identical. Copying releases the full (S, n) buffer to the collector.
func extractSamplePaths(paths []float64, count, n int) [][]float64 {
	sample := make([][]float64, count)
	for i := 0; i < count; i++ {
		row := make([]float64, n)
		copy(row, paths[i*n:(i+1)*n])
		sample[i] = row
	}
	return sample
}
