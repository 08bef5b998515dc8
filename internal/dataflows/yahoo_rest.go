package dataflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stocktutor/stocktutor/internal/models"
)

const yahooQuoteBaseURL = "https://query1.finance.yahoo.com"

// YahooREST fetches quotes straight from the Yahoo Finance v7 quote
// endpoint. Selected with QUOTE_SOURCE=yahoo-rest; useful when the
// finance-go client misbehaves, since this one exposes its transport
// configuration.
type YahooREST struct {
	client *resty.Client
}

// NewYahooREST creates the REST-backed quote provider with the given
// request timeout.
func NewYahooREST(timeout time.Duration) *YahooREST {
	client := resty.New()
	client.SetBaseURL(yahooQuoteBaseURL)
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "stocktutor/1.0")

	return &YahooREST{client: client}
}

type yahooQuoteEnvelope struct {
	QuoteResponse struct {
		Result []yahooQuote `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

// yahooQuote covers the subset of the v7 payload the assistant uses.
// Fields the upstream omits decode to their zero value, which is exactly
// the "unknown" sentinel the quote record wants.
type yahooQuote struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
	RegularMarketOpen          float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh       float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        float64 `json:"regularMarketDayLow"`
	RegularMarketVolume        int64   `json:"regularMarketVolume"`
	MarketCap                  int64   `json:"marketCap"`
	FiftyTwoWeekHigh           float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow            float64 `json:"fiftyTwoWeekLow"`
}

// GetQuote fetches and normalizes the current quote for symbol.
func (p *YahooREST) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrQuoteUnavailable)
	}

	var envelope yahooQuoteEnvelope
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", symbol).
		SetResult(&envelope).
		Get("/v7/finance/quote")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrQuoteUnavailable, symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: status %d", ErrQuoteUnavailable, symbol, resp.StatusCode())
	}
	if apiErr := envelope.QuoteResponse.Error; apiErr != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrQuoteUnavailable, symbol, apiErr.Description)
	}
	if len(envelope.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrQuoteUnavailable, symbol)
	}

	q := envelope.QuoteResponse.Result[0]
	name := q.LongName
	if name == "" {
		name = q.ShortName
	}

	return newQuote(
		symbol,
		name,
		q.RegularMarketPrice,
		q.RegularMarketPreviousClose,
		q.RegularMarketOpen,
		q.RegularMarketDayHigh,
		q.RegularMarketDayLow,
		q.RegularMarketVolume,
		q.MarketCap,
		q.FiftyTwoWeekHigh,
		q.FiftyTwoWeekLow,
	), nil
}
