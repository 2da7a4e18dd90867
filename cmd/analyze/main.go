// Package main provides an offline CLI for analyzing a trade CSV without
// running the API server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/tradecast/internal/analysis"
	"github.com/yourusername/tradecast/internal/ingest"
	"github.com/yourusername/tradecast/internal/models"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to trade fills CSV (required)")
		capital     = flag.Float64("capital", 1_000_000, "Initial capital")
		simulations = flag.Int("simulations", models.DefaultSimulations, "Number of bootstrap simulations")
		samplePaths = flag.Int("sample-paths", models.DefaultSamplePaths, "Number of raw paths to keep for charting")
		seed        = flag.Int64("seed", 0, "Random seed (0 = time-based, non-reproducible)")
		output      = flag.String("output", "", "Write full analysis JSON to this path")
		csvOut      = flag.String("csv", "", "Write headline metrics CSV to this path")
		logLevel    = flag.String("log-level", "info", "Log level")
	)
	flag.Parse()

	log := newLogger(*logLevel)

	if *input == "" {
		log.Fatal("-input is required")
	}

	file, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer file.Close()

	trades, err := ingest.ParseRoundTrips(file)
	if err != nil {
		log.Fatalf("Failed to parse trades: %v", err)
	}
	log.WithFields(logrus.Fields{
		"trades":  len(trades),
		"symbols": ingest.Symbols(trades),
	}).Info("Trades parsed")

	analyzer := analysis.NewAnalyzer(log, analysis.Options{})
	resp, err := analyzer.Analyze(context.Background(), &models.AnalysisRequest{
		Trades:         trades,
		InitialCapital: *capital,
		NSimulations:   simulations,
		NSamplePaths:   samplePaths,
		Seed:           *seed,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Print(analysis.GenerateConsoleReport(resp))

	if *output != "" {
		if err := writeJSON(*output, resp); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		log.WithField("path", *output).Info("Analysis JSON written")
	}
	if *csvOut != "" {
		if err := writeFile(*csvOut, analysis.GenerateCSVExport(resp)); err != nil {
			log.Fatalf("Failed to write CSV: %v", err)
		}
		log.WithField("path", *csvOut).Info("Metrics CSV written")
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, string(data))
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
