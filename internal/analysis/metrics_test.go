package analysis

import (
	"math"
	"testing"
)

func TestComputeMetricsScenario(t *testing.T) {
	pnl := []float64{100, -50, 200}
	m := ComputeMetrics(pnl, 1000)

	if m.TotalTrades != 3 {
		t.Fatalf("total trades = %d, want 3", m.TotalTrades)
	}
	if !almostEqual(m.WinRate, 2.0/3.0, 1e-12) {
		t.Fatalf("win rate = %v, want 2/3", m.WinRate)
	}
	if !almostEqual(m.TotalPnL, 250, 1e-12) {
		t.Fatalf("total pnl = %v, want 250", m.TotalPnL)
	}
	if !almostEqual(m.MeanPnL, 250.0/3.0, 1e-9) {
		t.Fatalf("mean pnl = %v", m.MeanPnL)
	}
	if !almostEqual(m.MedianPnL, 100, 1e-12) {
		t.Fatalf("median pnl = %v, want 100", m.MedianPnL)
	}

	// Sample standard deviation, divisor n-1
	mean := 250.0 / 3.0
	variance := (math.Pow(100-mean, 2) + math.Pow(-50-mean, 2) + math.Pow(200-mean, 2)) / 2
	if !almostEqual(m.StdPnL, math.Sqrt(variance), 1e-9) {
		t.Fatalf("std pnl = %v, want %v", m.StdPnL, math.Sqrt(variance))
	}
	if !almostEqual(m.SharpeRatio, mean/math.Sqrt(variance), 1e-9) {
		t.Fatalf("sharpe = %v", m.SharpeRatio)
	}

	// Equity curve 1100, 1050, 1250: drawdown (1100-1050)/1100
	if !almostEqual(m.MaxDrawdown, 50.0/1100.0, 1e-9) {
		t.Fatalf("max drawdown = %v, want %v", m.MaxDrawdown, 50.0/1100.0)
	}
}

func TestComputeMetricsSingleZeroTrade(t *testing.T) {
	m := ComputeMetrics([]float64{0}, 10_000)

	if m.StdPnL != 0 {
		t.Fatalf("expected zero std for single trade, got %v", m.StdPnL)
	}
	if m.SharpeRatio != 0 {
		t.Fatalf("expected zero sharpe on zero variance, got %v", m.SharpeRatio)
	}
	if m.Skewness != 0 {
		t.Fatalf("expected zero skew on zero variance, got %v", m.Skewness)
	}
	if m.MaxDrawdown != 0 {
		t.Fatalf("expected zero drawdown, got %v", m.MaxDrawdown)
	}
	if m.WinRate != 0 {
		t.Fatalf("a zero pnl trade is not a win, got win rate %v", m.WinRate)
	}
}

func TestComputeMetricsZeroVarianceSeries(t *testing.T) {
	m := ComputeMetrics([]float64{10, 10, 10, 10}, 1000)
	if m.SharpeRatio != 0 || m.Skewness != 0 {
		t.Fatalf("expected sharpe and skew defined as 0 on zero variance, got %v / %v", m.SharpeRatio, m.Skewness)
	}
	if m.WinRate != 1 {
		t.Fatalf("win rate = %v, want 1", m.WinRate)
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil, 1000)
	if m.TotalTrades != 0 {
		t.Fatalf("expected zero-value metrics for empty input")
	}
}
