// Package dataflows fetches live quote data from market data providers
// and normalizes it into the assistant's quote record.
package dataflows

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stocktutor/stocktutor/internal/config"
	"github.com/stocktutor/stocktutor/internal/models"
)

// ErrQuoteUnavailable signals that the upstream provider has no usable
// data for a symbol. Callers treat it as "omit this symbol", not as a
// pipeline failure.
var ErrQuoteUnavailable = errors.New("quote data unavailable")

// Provider returns a normalized quote for an uppercase ticker-like
// symbol, or ErrQuoteUnavailable. Implementations tolerate individual
// missing fields by substituting zero; only a wholly missing quote is an
// error.
type Provider interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

// New selects the quote backend named by the configuration.
func New(cfg *config.Config) Provider {
	if cfg.QuoteSource == config.QuoteSourceYahooREST {
		return NewYahooREST(cfg.RequestTimeout)
	}
	return NewFinanceGo()
}

// newQuote normalizes raw provider fields into a quote record: prices
// rounded to two decimals, change figures derived from the current price
// and previous close, zero when the previous close is missing.
func newQuote(symbol, name string, price, prevClose, open, high, low float64, volume, marketCap int64, week52High, week52Low float64) *models.Quote {
	symbol = strings.ToUpper(symbol)
	if name == "" {
		name = symbol
	}
	if volume < 0 {
		volume = 0
	}
	if marketCap < 0 {
		marketCap = 0
	}

	var change, changePercent float64
	if prevClose > 0 {
		p := decimal.NewFromFloat(price)
		pc := decimal.NewFromFloat(prevClose)
		d := p.Sub(pc)
		change, _ = d.Round(2).Float64()
		changePercent, _ = d.Div(pc).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	}

	return &models.Quote{
		Symbol:        symbol,
		Name:          name,
		CurrentPrice:  round2(price),
		PreviousClose: round2(prevClose),
		Open:          round2(open),
		DayHigh:       round2(high),
		DayLow:        round2(low),
		Volume:        volume,
		MarketCap:     marketCap,
		Week52High:    round2(week52High),
		Week52Low:     round2(week52Low),
		Change:        change,
		ChangePercent: changePercent,
	}
}

func round2(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return v
}
