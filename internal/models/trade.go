// Package models defines the data contract between the ingestion layer,
// the analysis engine, and the HTTP API.
package models

import (
	"fmt"
	"math"
	"time"
)

// Trade represents a single round-trip trade (entry fill -> exit fill).
type Trade struct {
	Symbol     string    `json:"symbol"`
	EntryTime  time.Time `json:"entry_time"`
	ExitTime   time.Time `json:"exit_time"`
	Quantity   float64   `json:"quantity"`
	EntryPrice float64   `json:"entry_price"`
	ExitPrice  float64   `json:"exit_price"`
	PnL        float64   `json:"pnl"`
	Notional   float64   `json:"notional,omitempty"`
}

// Validate checks the structural invariants of a single trade.
func (t Trade) Validate() error {
	if t.Symbol == "" {
		return &InvalidInputError{Param: "symbol", Value: t.Symbol, Reason: "must not be empty"}
	}
	if t.ExitTime.Before(t.EntryTime) {
		return &InvalidInputError{Param: "exit_time", Value: t.ExitTime, Reason: "must not precede entry_time"}
	}
	if t.EntryPrice <= 0 {
		return &InvalidInputError{Param: "entry_price", Value: t.EntryPrice, Reason: "must be positive"}
	}
	if t.ExitPrice <= 0 {
		return &InvalidInputError{Param: "exit_price", Value: t.ExitPrice, Reason: "must be positive"}
	}
	return nil
}

// EntryNotional returns the absolute entry exposure of the trade. The
// Notional field wins when the upstream parser supplied it.
func (t Trade) EntryNotional() float64 {
	if t.Notional > 0 {
		return t.Notional
	}
	return math.Abs(t.EntryPrice * t.Quantity)
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %g @ %g -> %g (pnl %g)", t.Symbol, t.Quantity, t.EntryPrice, t.ExitPrice, t.PnL)
}

// UploadResponse is returned by the CSV upload endpoint.
type UploadResponse struct {
	Trades      []Trade  `json:"trades"`
	TotalTrades int      `json:"total_trades"`
	Symbols     []string `json:"symbols"`
}
