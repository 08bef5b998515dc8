package dataflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/piquette/finance-go/equity"

	"github.com/stocktutor/stocktutor/internal/models"
)

// FinanceGo fetches quotes through the finance-go Yahoo Finance client.
// It is the default backend.
type FinanceGo struct{}

// NewFinanceGo creates the finance-go backed quote provider.
func NewFinanceGo() *FinanceGo {
	return &FinanceGo{}
}

// GetQuote fetches and normalizes the current equity quote for symbol.
func (p *FinanceGo) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrQuoteUnavailable)
	}

	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrQuoteUnavailable, symbol, err)
	}
	if eq == nil || eq.RegularMarketPrice == 0 {
		return nil, fmt.Errorf("%w: %s", ErrQuoteUnavailable, symbol)
	}

	name := eq.LongName
	if name == "" {
		name = eq.ShortName
	}

	return newQuote(
		symbol,
		name,
		eq.RegularMarketPrice,
		eq.RegularMarketPreviousClose,
		eq.RegularMarketOpen,
		eq.RegularMarketDayHigh,
		eq.RegularMarketDayLow,
		int64(eq.RegularMarketVolume),
		eq.MarketCap,
		eq.FiftyTwoWeekHigh,
		eq.FiftyTwoWeekLow,
	), nil
}
