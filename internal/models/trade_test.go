package models

import (
	"encoding/json"
	"testing"
	"time"
)

func validTrade() Trade {
	entry := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	return Trade{
		Symbol:     "SPY",
		EntryTime:  entry,
		ExitTime:   entry.Add(30 * time.Minute),
		Quantity:   10,
		EntryPrice: 400,
		ExitPrice:  410.5,
		PnL:        105,
	}
}

func TestTradeValidate(t *testing.T) {
	if err := validTrade().Validate(); err != nil {
		t.Fatalf("valid trade rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Trade)
	}{
		{"empty symbol", func(tr *Trade) { tr.Symbol = "" }},
		{"exit before entry", func(tr *Trade) { tr.ExitTime = tr.EntryTime.Add(-time.Hour) }},
		{"zero entry price", func(tr *Trade) { tr.EntryPrice = 0 }},
		{"negative exit price", func(tr *Trade) { tr.ExitPrice = -1 }},
	}
	for _, tc := range cases {
		tr := validTrade()
		tc.mutate(&tr)
		if err := tr.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestTradeEntryNotional(t *testing.T) {
	tr := validTrade()
	if got := tr.EntryNotional(); got != 4000 {
		t.Fatalf("EntryNotional = %v, want 4000", got)
	}

	tr.Notional = 5000
	if got := tr.EntryNotional(); got != 5000 {
		t.Fatalf("explicit notional = %v, want 5000", got)
	}

	short := validTrade()
	short.Quantity = -10
	if got := short.EntryNotional(); got != 4000 {
		t.Fatalf("short notional = %v, want 4000", got)
	}
}

func TestAnalysisRequestJSONOptionalFields(t *testing.T) {
	var req AnalysisRequest
	body := `{"trades":[{"symbol":"SPY","pnl":100,"entry_price":400,"exit_price":410}],"initial_capital":1000}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if req.NSimulations != nil || req.NSamplePaths != nil {
		t.Fatal("absent fields should stay nil until defaults apply")
	}

	req.ApplyDefaults()
	if req.Simulations() != DefaultSimulations || req.SamplePaths() != DefaultSamplePaths {
		t.Fatalf("defaults = %d/%d", req.Simulations(), req.SamplePaths())
	}

	var explicit AnalysisRequest
	body = `{"trades":[{"pnl":1}],"initial_capital":1000,"n_simulations":0}`
	if err := json.Unmarshal([]byte(body), &explicit); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	explicit.ApplyDefaults()
	if err := explicit.Validate(); err == nil {
		t.Fatal("explicit zero n_simulations should fail validation")
	}
}
