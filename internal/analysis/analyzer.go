// Package analysis implements the analytics and simulation engine: the
// descriptive statistics module, the bootstrap Monte Carlo module, and the
// assembler that combines both into one response.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/tradecast/internal/metrics"
	"github.com/yourusername/tradecast/internal/models"
)

// Options tunes engine-wide limits. The zero value selects the documented
// defaults.
type Options struct {
	// MaxElements caps S*n, the size of the simulation ensemble.
	MaxElements int
}

// Analyzer runs the full analysis pipeline for one request. It holds no
// mutable state between requests and is safe for concurrent use.
type Analyzer struct {
	logger      *logrus.Logger
	maxElements int
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(logger *logrus.Logger, opts Options) *Analyzer {
	maxElements := opts.MaxElements
	if maxElements <= 0 {
		maxElements = DefaultMaxElements
	}
	return &Analyzer{logger: logger, maxElements: maxElements}
}

// Analyze validates the request, computes historical metrics and the
// bootstrap simulation, and assembles the response. The two statistical
// modules have no data dependency on each other, so the simulation runs on
// its own goroutine while the historical pass completes.
func (a *Analyzer) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.RecordAnalysisFailure("invalid_input")
		return nil, err
	}

	start := time.Now()
	pnl := req.PnLSeries()
	// Defaults resolve through the accessors; the request itself is never
	// written to, so callers can reuse it.
	sims := req.Simulations()
	samplePaths := req.SamplePaths()

	a.logger.WithFields(logrus.Fields{
		"trades":          len(req.Trades),
		"simulations":     sims,
		"sample_paths":    samplePaths,
		"initial_capital": req.InitialCapital,
	}).Info("Starting analysis")

	type mcOutcome struct {
		result *MonteCarloResult
		err    error
	}
	mcCh := make(chan mcOutcome, 1)
	go func() {
		result, err := RunMonteCarlo(ctx, pnl, req.InitialCapital, MonteCarloConfig{
			Simulations: sims,
			SamplePaths: samplePaths,
			Seed:        req.Seed,
			MaxElements: a.maxElements,
		})
		mcCh <- mcOutcome{result: result, err: err}
	}()

	historical := ComputeMetrics(pnl, req.InitialCapital)
	curve := BuildEquityCurve(req.Trades, req.InitialCapital)
	notional := BuildNotionalSeries(req.Trades)

	mc := <-mcCh
	if mc.err != nil {
		var limitErr *models.ResourceLimitError
		if errors.As(mc.err, &limitErr) {
			metrics.RecordAnalysisFailure("resource_limit")
		} else {
			metrics.RecordAnalysisFailure("simulation")
		}
		return nil, fmt.Errorf("monte carlo simulation failed: %w", mc.err)
	}

	elapsed := time.Since(start)
	metrics.RecordAnalysis(elapsed.Seconds(), sims)
	metrics.LastEnsembleElements.Set(float64(sims * len(pnl)))

	a.logger.WithFields(logrus.Fields{
		"duration_ms": elapsed.Milliseconds(),
		"prob_profit": mc.result.Distribution.ProbProfit,
	}).Info("Analysis complete")

	return &models.AnalysisResponse{
		Metrics:        historical,
		MCDistribution: mc.result.Distribution,
		MCPaths:        mc.result.Paths,
		EquityCurve:    curve,
		PnLSeries:      pnl,
		NotionalData:   notional,
	}, nil
}
