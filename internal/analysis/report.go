package analysis

import (
	"fmt"
	"strings"

	"github.com/yourusername/tradecast/internal/models"
)

// GenerateConsoleReport formats an analysis response for terminal output.
func GenerateConsoleReport(resp *models.AnalysisResponse) string {
	var builder strings.Builder
	builder.WriteString("Trade Analysis Report\n")
	builder.WriteString("=====================\n")
	builder.WriteString(fmt.Sprintf("Total Trades: %d\n", resp.Metrics.TotalTrades))
	builder.WriteString(fmt.Sprintf("Win Rate: %.2f%%\n", resp.Metrics.WinRate*100))
	builder.WriteString(fmt.Sprintf("Total PnL: %.2f\n", resp.Metrics.TotalPnL))
	builder.WriteString(fmt.Sprintf("Mean PnL: %.4f\n", resp.Metrics.MeanPnL))
	builder.WriteString(fmt.Sprintf("Sharpe Ratio (per trade): %.4f\n", resp.Metrics.SharpeRatio))
	builder.WriteString(fmt.Sprintf("Max Drawdown: %.2f%%\n", resp.Metrics.MaxDrawdown*100))
	builder.WriteString("\nMonte Carlo\n")
	builder.WriteString("-----------\n")
	builder.WriteString(fmt.Sprintf("Mean Final Equity: %.2f\n", resp.MCDistribution.MeanFinal))
	builder.WriteString(fmt.Sprintf("Median Final Equity: %.2f\n", resp.MCDistribution.MedianFinal))
	builder.WriteString(fmt.Sprintf("5th / 95th Percentile: %.2f / %.2f\n", resp.MCDistribution.P5, resp.MCDistribution.P95))
	builder.WriteString(fmt.Sprintf("Probability of Profit: %.2f%%\n", resp.MCDistribution.ProbProfit*100))
	builder.WriteString(fmt.Sprintf("Probability of >50%% Drawdown: %.2f%%\n", resp.MCDistribution.ProbLargeDrawdown*100))
	return builder.String()
}

// GenerateCSVExport exports headline metrics for spreadsheets.
func GenerateCSVExport(resp *models.AnalysisResponse) string {
	return "metric,value\n" +
		fmt.Sprintf("total_trades,%d\n", resp.Metrics.TotalTrades) +
		fmt.Sprintf("win_rate,%.4f\n", resp.Metrics.WinRate) +
		fmt.Sprintf("total_pnl,%.4f\n", resp.Metrics.TotalPnL) +
		fmt.Sprintf("sharpe_ratio,%.4f\n", resp.Metrics.SharpeRatio) +
		fmt.Sprintf("max_drawdown,%.4f\n", resp.Metrics.MaxDrawdown) +
		fmt.Sprintf("mc_mean_final,%.4f\n", resp.MCDistribution.MeanFinal) +
		fmt.Sprintf("mc_p5,%.4f\n", resp.MCDistribution.P5) +
		fmt.Sprintf("mc_p95,%.4f\n", resp.MCDistribution.P95) +
		fmt.Sprintf("mc_prob_profit,%.4f\n", resp.MCDistribution.ProbProfit) +
		fmt.Sprintf("mc_prob_large_drawdown,%.4f\n", resp.MCDistribution.ProbLargeDrawdown)
}
