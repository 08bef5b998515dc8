package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktutor/stocktutor/internal/dataflows"
	"github.com/stocktutor/stocktutor/internal/explain"
	"github.com/stocktutor/stocktutor/internal/format"
	"github.com/stocktutor/stocktutor/internal/models"
)

type fakeProvider struct {
	quotes map[string]models.Quote
	calls  []string
}

func (f *fakeProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	f.calls = append(f.calls, symbol)
	q, ok := f.quotes[symbol]
	if !ok {
		return nil, dataflows.ErrQuoteUnavailable
	}
	return &q, nil
}

type fakeRequester struct {
	reply      string
	err        error
	calls      int
	gotPrompt  string
	gotHistory []models.ConversationTurn
}

func (f *fakeRequester) Explain(ctx context.Context, history []models.ConversationTurn, userPrompt string) (string, error) {
	f.calls++
	f.gotHistory = history
	f.gotPrompt = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var tsla = models.Quote{
	Symbol:        "TSLA",
	Name:          "Tesla, Inc.",
	CurrentPrice:  244.12,
	PreviousClose: 247.50,
	Change:        -3.38,
	ChangePercent: -1.37,
	Volume:        95000123,
	MarketCap:     850000000000,
}

func newFixed(provider *fakeProvider, requester *fakeRequester) *Assistant {
	a := New(provider, requester)
	a.now = func() time.Time {
		return time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	}
	return a
}

func TestAnswerSuccess(t *testing.T) {
	provider := &fakeProvider{quotes: map[string]models.Quote{"TSLA": tsla}}
	requester := &fakeRequester{reply: "Tesla slipped a little today."}
	a := newFixed(provider, requester)

	result, err := a.Answer(context.Background(), "How is TSLA doing today?", nil)
	require.NoError(t, err)

	assert.False(t, result.UsedFallback)
	assert.Empty(t, result.FallbackReason)
	assert.Equal(t, []string{"TSLA"}, result.SymbolsUsed)
	assert.Equal(t, "Tesla slipped a little today.", result.Answer)
	assert.Equal(t, "2026-03-05 14:30:00 UTC", result.Timestamp)
	assert.Equal(t, []string{"TSLA"}, provider.calls)
	assert.Contains(t, requester.gotPrompt, `"How is TSLA doing today?"`)
}

func TestAnswerFallbackOnExplainFailure(t *testing.T) {
	provider := &fakeProvider{quotes: map[string]models.Quote{"TSLA": tsla}}
	requester := &fakeRequester{err: errors.New("error, status code: 429, message: rate limit exceeded")}
	a := newFixed(provider, requester)

	result, err := a.Answer(context.Background(), "How is TSLA doing today?", nil)
	require.NoError(t, err)

	assert.True(t, result.UsedFallback)
	assert.Equal(t, explain.CategoryRateLimit, result.FallbackReason)
	assert.Equal(t, format.Quote(tsla), result.Answer)
	assert.Equal(t, []string{"TSLA"}, result.SymbolsUsed)
	assert.Equal(t, 1, requester.calls, "exactly one attempt, no retry")
}

func TestAnswerNoSymbolDetected(t *testing.T) {
	provider := &fakeProvider{}
	requester := &fakeRequester{reply: "unused"}
	a := newFixed(provider, requester)

	_, err := a.Answer(context.Background(), "How are markets feeling today?", nil)
	require.ErrorIs(t, err, ErrNoSymbolDetected)

	assert.Empty(t, provider.calls, "no fetch attempted")
	assert.Zero(t, requester.calls, "no explanation attempted")
}

func TestAnswerAllQuotesFail(t *testing.T) {
	provider := &fakeProvider{}
	requester := &fakeRequester{reply: "unused"}
	a := newFixed(provider, requester)

	_, err := a.Answer(context.Background(), "What about FAKETICK?", nil)
	require.ErrorIs(t, err, ErrNoQuoteData)
	assert.Zero(t, requester.calls)
}

func TestAnswerPartialFetchFailureIsOmitted(t *testing.T) {
	apple := tsla
	apple.Symbol = "AAPL"
	apple.Name = "Apple Inc."

	provider := &fakeProvider{quotes: map[string]models.Quote{"AAPL": apple, "TSLA": tsla}}
	requester := &fakeRequester{reply: "Comparing what we could fetch."}
	a := newFixed(provider, requester)

	result, err := a.AnswerSymbols(context.Background(), "compare these", []string{"AAPL", "MISSING", "TSLA"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "TSLA"}, result.SymbolsUsed, "failed symbol omitted, order preserved")
	assert.Equal(t, []string{"AAPL", "MISSING", "TSLA"}, provider.calls)
	assert.False(t, result.UsedFallback)
}

func TestAnswerSymbolsEmptySelection(t *testing.T) {
	a := newFixed(&fakeProvider{}, &fakeRequester{})

	_, err := a.AnswerSymbols(context.Background(), "anything", nil, nil)
	require.ErrorIs(t, err, ErrNoSymbolDetected)
}

func TestAnswerPassesHistoryVerbatim(t *testing.T) {
	provider := &fakeProvider{quotes: map[string]models.Quote{"TSLA": tsla}}
	requester := &fakeRequester{reply: "Still down a bit."}
	a := newFixed(provider, requester)

	history := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "How is TSLA doing today?"},
		{Role: models.RoleAssistant, Content: "Tesla slipped a little today."},
	}

	_, err := a.Answer(context.Background(), "And compared to yesterday, TSLA?", history)
	require.NoError(t, err)
	assert.Equal(t, history, requester.gotHistory)
}

func TestAnswerEmptyModelTextFallsBack(t *testing.T) {
	provider := &fakeProvider{quotes: map[string]models.Quote{"TSLA": tsla}}
	requester := &fakeRequester{err: explain.ErrEmptyResponse}
	a := newFixed(provider, requester)

	result, err := a.Answer(context.Background(), "How is TSLA doing today?", nil)
	require.NoError(t, err)

	assert.True(t, result.UsedFallback)
	assert.Equal(t, explain.CategoryEmpty, result.FallbackReason)
}
