// Package ingest parses trade-fill CSV exports into round-trip trades.
//
// QuantConnect and compatible platforms export every order fill as a
// separate row under a variety of column naming conventions. The parser
// normalizes the header through an alias table, then matches buy fills to
// sell fills per symbol with a FIFO queue.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/yourusername/tradecast/internal/models"
)

// columnAliases maps canonical column names to the aliases seen in the
// wild.
var columnAliases = map[string][]string{
	"time":     {"time", "date", "datetime", "timestamp", "entry time", "order time"},
	"symbol":   {"symbol", "ticker", "instrument", "asset"},
	"price":    {"price", "fill price", "execution price", "avg price", "avgprice"},
	"quantity": {"quantity", "qty", "shares", "size", "amount"},
}

var requiredColumns = []string{"time", "symbol", "price", "quantity"}

// timeLayouts lists the accepted timestamp formats, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type fillRow struct {
	Time     string          `csv:"time"`
	Symbol   string          `csv:"symbol"`
	Price    decimal.Decimal `csv:"price"`
	Quantity decimal.Decimal `csv:"quantity"`
}

type fill struct {
	time     time.Time
	symbol   string
	price    decimal.Decimal
	quantity decimal.Decimal
}

type openPosition struct {
	entryTime  time.Time
	entryPrice decimal.Decimal
	quantity   decimal.Decimal
}

// ParseRoundTrips reads a fills CSV and returns the matched round-trip
// trades ordered by exit time.
func ParseRoundTrips(r io.Reader) ([]models.Trade, error) {
	fills, err := readFills(r)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(fills, func(i, j int) bool { return fills[i].time.Before(fills[j].time) })

	// FIFO queue per symbol: earliest open entry closes first.
	open := make(map[string][]openPosition)
	var trades []models.Trade

	for _, f := range fills {
		switch {
		case f.quantity.IsPositive():
			open[f.symbol] = append(open[f.symbol], openPosition{
				entryTime:  f.time,
				entryPrice: f.price,
				quantity:   f.quantity,
			})
		case f.quantity.IsNegative() && len(open[f.symbol]) > 0:
			entry := open[f.symbol][0]
			open[f.symbol] = open[f.symbol][1:]

			exitQty := f.quantity.Abs()
			pnl := f.price.Sub(entry.entryPrice).Mul(exitQty).Round(4)
			notional := entry.entryPrice.Mul(exitQty).Abs()

			trades = append(trades, models.Trade{
				Symbol:     f.symbol,
				EntryTime:  entry.entryTime,
				ExitTime:   f.time,
				Quantity:   exitQty.InexactFloat64(),
				EntryPrice: entry.entryPrice.InexactFloat64(),
				ExitPrice:  f.price.InexactFloat64(),
				PnL:        pnl.InexactFloat64(),
				Notional:   notional.InexactFloat64(),
			})
		}
	}

	if len(trades) == 0 {
		return nil, fmt.Errorf("%w: ensure the CSV contains matching buy and sell rows for at least one symbol", models.ErrNoRoundTrips)
	}
	return trades, nil
}

// Symbols returns the sorted distinct symbols of a trade list.
func Symbols(trades []models.Trade) []string {
	seen := make(map[string]bool)
	for _, t := range trades {
		seen[t.Symbol] = true
	}
	symbols := make([]string, 0, len(seen))
	for s := range seen {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

func readFills(r io.Reader) ([]fill, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	header, err := canonicalizeHeader(records[0])
	if err != nil {
		return nil, err
	}
	records[0] = header

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to rewrite CSV: %w", err)
	}

	var rows []fillRow
	if err := gocsv.UnmarshalBytes(buf.Bytes(), &rows); err != nil {
		return nil, fmt.Errorf("failed to decode CSV rows: %w", err)
	}

	fills := make([]fill, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTime(row.Time)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		symbol := strings.TrimSpace(row.Symbol)
		if symbol == "" {
			continue
		}
		fills = append(fills, fill{
			time:     ts,
			symbol:   symbol,
			price:    row.Price,
			quantity: row.Quantity,
		})
	}
	return fills, nil
}

// canonicalizeHeader lowercases the header and maps aliases onto canonical
// names. The first column matching an alias wins; later duplicates keep
// their original name and are ignored by the decoder.
func canonicalizeHeader(header []string) ([]string, error) {
	out := make([]string, len(header))
	claimed := make(map[string]bool)
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		out[i] = name
		for canonical, aliases := range columnAliases {
			if claimed[canonical] {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					out[i] = canonical
					claimed[canonical] = true
					break
				}
			}
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if !claimed[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (found columns: %s)",
			models.ErrMissingColumns, strings.Join(missing, ", "), strings.Join(out, ", "))
	}
	return out, nil
}

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
