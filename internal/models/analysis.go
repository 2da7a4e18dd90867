package models

const (
	// DefaultSimulations is the bootstrap ensemble size used when the
	// request does not specify one.
	DefaultSimulations = 10000
	// DefaultSamplePaths is the number of raw equity paths returned for
	// fan-chart rendering when the request does not specify one.
	DefaultSamplePaths = 500
)

// AnalysisRequest carries the trade history and simulation parameters for
// one analysis run. The simulation counts are pointers so that an absent
// field takes the default while an explicit zero is rejected. Seed is
// optional; zero means a time-based seed and a run that is not
// reproducible across invocations.
type AnalysisRequest struct {
	Trades         []Trade `json:"trades"`
	InitialCapital float64 `json:"initial_capital"`
	NSimulations   *int    `json:"n_simulations,omitempty"`
	NSamplePaths   *int    `json:"n_sample_paths,omitempty"`
	Seed           int64   `json:"seed,omitempty"`
}

// ApplyDefaults fills absent simulation parameters with their documented
// defaults. Explicitly supplied values, valid or not, are left for
// Validate to judge.
func (r *AnalysisRequest) ApplyDefaults() {
	if r.NSimulations == nil {
		sims := DefaultSimulations
		r.NSimulations = &sims
	}
	if r.NSamplePaths == nil {
		paths := DefaultSamplePaths
		r.NSamplePaths = &paths
	}
}

// Simulations returns the ensemble size, falling back to the default when
// the field is absent.
func (r *AnalysisRequest) Simulations() int {
	if r.NSimulations == nil {
		return DefaultSimulations
	}
	return *r.NSimulations
}

// SamplePaths returns the fan-chart path count, falling back to the
// default when the field is absent.
func (r *AnalysisRequest) SamplePaths() int {
	if r.NSamplePaths == nil {
		return DefaultSamplePaths
	}
	return *r.NSamplePaths
}

// Validate checks the request invariants. It must be called before any
// computation or ensemble allocation starts.
func (r *AnalysisRequest) Validate() error {
	if len(r.Trades) == 0 {
		return &InvalidInputError{Param: "trades", Value: len(r.Trades), Reason: "at least one trade is required"}
	}
	if r.InitialCapital <= 0 {
		return &InvalidInputError{Param: "initial_capital", Value: r.InitialCapital, Reason: "must be positive"}
	}
	if r.Simulations() <= 0 {
		return &InvalidInputError{Param: "n_simulations", Value: r.Simulations(), Reason: "must be positive"}
	}
	if r.SamplePaths() <= 0 {
		return &InvalidInputError{Param: "n_sample_paths", Value: r.SamplePaths(), Reason: "must be positive"}
	}
	if r.SamplePaths() > r.Simulations() {
		return &InvalidInputError{Param: "n_sample_paths", Value: r.SamplePaths(), Reason: "must not exceed n_simulations"}
	}
	return nil
}

// PnLSeries extracts the per-trade P&L values in exit-time order.
func (r *AnalysisRequest) PnLSeries() []float64 {
	pnl := make([]float64, len(r.Trades))
	for i, t := range r.Trades {
		pnl[i] = t.PnL
	}
	return pnl
}

// Metrics holds descriptive statistics of the historical P&L series.
type Metrics struct {
	TotalTrades int     `json:"total_trades"`
	WinRate     float64 `json:"win_rate"`
	MeanPnL     float64 `json:"mean_pnl"`
	MedianPnL   float64 `json:"median_pnl"`
	StdPnL      float64 `json:"std_pnl"`
	Skewness    float64 `json:"skewness"`
	SharpeRatio float64 `json:"sharpe_ratio"`
	TotalPnL    float64 `json:"total_pnl"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

// MCDistribution summarizes the Monte Carlo final-equity distribution.
type MCDistribution struct {
	FinalEquities     []float64 `json:"final_equities"`
	MeanFinal         float64   `json:"mean_final"`
	MedianFinal       float64   `json:"median_final"`
	P5                float64   `json:"p5"`
	P95               float64   `json:"p95"`
	ProbProfit        float64   `json:"prob_profit"`
	ProbLargeDrawdown float64   `json:"prob_large_drawdown"`
}

// MCPaths carries fan-chart data: percentile bands over the trade axis plus
// a subset of raw simulated equity paths.
type MCPaths struct {
	SamplePaths [][]float64 `json:"sample_paths"`
	MedianPath  []float64   `json:"median_path"`
	P5Path      []float64   `json:"p5_path"`
	P25Path     []float64   `json:"p25_path"`
	P75Path     []float64   `json:"p75_path"`
	P95Path     []float64   `json:"p95_path"`
}

// EquityCurve is the historical cumulative equity aligned to exit times.
type EquityCurve struct {
	Times  []string  `json:"times"`
	Equity []float64 `json:"equity"`
}

// NotionalData is the per-trade entry notional aligned to exit times.
type NotionalData struct {
	Times     []string  `json:"times"`
	Notionals []float64 `json:"notionals"`
}

// AnalysisResponse is the full response contract of the analysis engine.
type AnalysisResponse struct {
	Metrics        Metrics        `json:"metrics"`
	MCDistribution MCDistribution `json:"mc_distribution"`
	MCPaths        MCPaths        `json:"mc_paths"`
	EquityCurve    EquityCurve    `json:"equity_curve"`
	PnLSeries      []float64      `json:"pnl_series"`
	NotionalData   NotionalData   `json:"notional_data"`
}
