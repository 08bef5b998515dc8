// Package assistant wires symbol extraction, quote fetching, prompt
// building, and the explanation model into one question/answer cycle.
package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/stocktutor/stocktutor/internal/dataflows"
	"github.com/stocktutor/stocktutor/internal/explain"
	"github.com/stocktutor/stocktutor/internal/format"
	"github.com/stocktutor/stocktutor/internal/models"
	"github.com/stocktutor/stocktutor/internal/prompt"
	"github.com/stocktutor/stocktutor/internal/symbols"
)

var (
	// ErrNoSymbolDetected means extraction found nothing; the user should
	// rephrase with a ticker or company name. Not a system fault.
	ErrNoSymbolDetected = errors.New("no stock symbol detected in the question")

	// ErrNoQuoteData means every detected symbol failed to fetch.
	ErrNoQuoteData = errors.New("no quote data available for the detected symbols")
)

const timestampLayout = "2006-01-02 15:04:05 MST"

// Result is one answered question. Either the model's explanation
// (UsedFallback false) or the deterministic quote summary paired with a
// diagnostic tag (UsedFallback true).
type Result struct {
	Answer         string
	SymbolsUsed    []string
	UsedFallback   bool
	FallbackReason string
	Timestamp      string
}

// Assistant runs the request/response cycle against its two
// collaborators. Safe for sequential use by one session.
type Assistant struct {
	provider  dataflows.Provider
	requester explain.Requester
	now       func() time.Time
}

// New creates an Assistant over a quote provider and an explanation
// requester.
func New(provider dataflows.Provider, requester explain.Requester) *Assistant {
	return &Assistant{
		provider:  provider,
		requester: requester,
		now:       time.Now,
	}
}

// Answer extracts symbols from the question and runs one full cycle.
func (a *Assistant) Answer(ctx context.Context, question string, history []models.ConversationTurn) (*Result, error) {
	return a.AnswerSymbols(ctx, question, symbols.Extract(question), history)
}

// AnswerSymbols runs one cycle for an already chosen symbol list. The
// interactive surface uses it after letting the user narrow a
// multi-symbol detection.
//
// Per-symbol fetch failures are swallowed by omission; only a fully
// empty result set escalates. The explanation call gets exactly one
// attempt, and any failure degrades to the deterministic summary with a
// categorized reason.
func (a *Assistant) AnswerSymbols(ctx context.Context, question string, syms []string, history []models.ConversationTurn) (*Result, error) {
	if len(syms) == 0 {
		return nil, ErrNoSymbolDetected
	}

	quotes := make([]models.Quote, 0, len(syms))
	for _, sym := range syms {
		q, err := a.provider.GetQuote(ctx, sym)
		if err != nil {
			continue
		}
		quotes = append(quotes, *q)
	}
	if len(quotes) == 0 {
		return nil, ErrNoQuoteData
	}

	used := make([]string, len(quotes))
	for i, q := range quotes {
		used[i] = q.Symbol
	}

	result := &Result{
		SymbolsUsed: used,
		Timestamp:   a.now().UTC().Format(timestampLayout),
	}

	answer, err := a.requester.Explain(ctx, history, prompt.Build(quotes, question))
	if err != nil {
		result.UsedFallback = true
		result.FallbackReason = explain.Categorize(err)
		result.Answer = format.Quotes(quotes)
		return result, nil
	}

	result.Answer = answer
	return result, nil
}
