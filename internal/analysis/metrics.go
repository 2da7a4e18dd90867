package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/yourusername/tradecast/internal/models"
)

// ComputeMetrics calculates descriptive statistics of the historical P&L
// series and equity curve. Standard deviation is the sample estimator
// (divisor n-1); the Sharpe ratio is per trade, unannualized, and defined
// as 0 when the series has no variance.
func ComputeMetrics(pnl []float64, initialCapital float64) models.Metrics {
	n := len(pnl)
	if n == 0 {
		return models.Metrics{}
	}

	wins := 0
	total := 0.0
	for _, p := range pnl {
		if p > 0 {
			wins++
		}
		total += p
	}

	mean, _ := stats.Mean(pnl)
	median, _ := stats.Median(pnl)

	std := 0.0
	if n > 1 {
		std, _ = stats.StandardDeviationSample(pnl)
	}

	sharpe := 0.0
	if std > 0 {
		sharpe = mean / std
	}

	return models.Metrics{
		TotalTrades: n,
		WinRate:     float64(wins) / float64(n),
		MeanPnL:     mean,
		MedianPnL:   median,
		StdPnL:      std,
		Skewness:    skewness(pnl),
		SharpeRatio: sharpe,
		TotalPnL:    total,
		MaxDrawdown: maxDrawdown(equitySeries(pnl, initialCapital)),
	}
}
