package analysis

import (
	"strings"
	"testing"

	"github.com/yourusername/tradecast/internal/models"
)

func reportFixture() *models.AnalysisResponse {
	return &models.AnalysisResponse{
		Metrics: models.Metrics{
			TotalTrades: 3,
			WinRate:     2.0 / 3.0,
			TotalPnL:    250,
			SharpeRatio: 0.65,
			MaxDrawdown: 0.045,
		},
		MCDistribution: models.MCDistribution{
			MeanFinal:         1250,
			MedianFinal:       1200,
			P5:                900,
			P95:               1600,
			ProbProfit:        0.82,
			ProbLargeDrawdown: 0.01,
		},
	}
}

func TestGenerateConsoleReport(t *testing.T) {
	report := GenerateConsoleReport(reportFixture())

	for _, want := range []string{
		"Total Trades: 3",
		"Win Rate: 66.67%",
		"Total PnL: 250.00",
		"Probability of Profit: 82.00%",
		"Median Final Equity: 1200.00",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestGenerateCSVExport(t *testing.T) {
	out := GenerateCSVExport(reportFixture())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "metric,value" {
		t.Fatalf("header = %q", lines[0])
	}
	for _, want := range []string{
		"total_trades,3",
		"win_rate,0.6667",
		"mc_prob_profit,0.8200",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("export missing %q:\n%s", want, out)
		}
	}
}
