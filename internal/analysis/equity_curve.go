package analysis

import (
	"time"

	"github.com/yourusername/tradecast/internal/models"
)

// equitySeries builds the cumulative equity values: initial capital plus
// the running sum of per-trade P&L.
func equitySeries(pnl []float64, initialCapital float64) []float64 {
	equity := make([]float64, len(pnl))
	sum := initialCapital
	for i, p := range pnl {
		sum += p
		equity[i] = sum
	}
	return equity
}

// BuildEquityCurve pairs the historical equity values with each trade's
// exit timestamp.
func BuildEquityCurve(trades []models.Trade, initialCapital float64) models.EquityCurve {
	pnl := make([]float64, len(trades))
	times := make([]string, len(trades))
	for i, t := range trades {
		pnl[i] = t.PnL
		times[i] = t.ExitTime.UTC().Format(time.RFC3339)
	}
	return models.EquityCurve{
		Times:  times,
		Equity: equitySeries(pnl, initialCapital),
	}
}

// BuildNotionalSeries pairs each trade's entry notional with its exit
// timestamp. Pass-through for visualization, no computation.
func BuildNotionalSeries(trades []models.Trade) models.NotionalData {
	times := make([]string, len(trades))
	notionals := make([]float64, len(trades))
	for i, t := range trades {
		times[i] = t.ExitTime.UTC().Format(time.RFC3339)
		notionals[i] = t.EntryNotional()
	}
	return models.NotionalData{Times: times, Notionals: notionals}
}
