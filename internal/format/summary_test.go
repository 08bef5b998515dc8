package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stocktutor/stocktutor/internal/models"
)

var apple = models.Quote{
	Symbol:        "AAPL",
	Name:          "Apple Inc.",
	CurrentPrice:  255.46,
	PreviousClose: 250.00,
	Open:          251.20,
	DayHigh:       256.00,
	DayLow:        249.80,
	Volume:        48210000,
	MarketCap:     3780000000000,
	Week52High:    260.10,
	Week52Low:     169.21,
	Change:        5.46,
	ChangePercent: 2.18,
}

var tesla = models.Quote{
	Symbol:        "TSLA",
	Name:          "Tesla, Inc.",
	CurrentPrice:  244.12,
	PreviousClose: 247.50,
	Open:          246.00,
	DayHigh:       248.33,
	DayLow:        242.01,
	Volume:        95000123,
	MarketCap:     850000000000,
	Week52High:    299.29,
	Week52Low:     138.80,
	Change:        -3.38,
	ChangePercent: -1.37,
}

func TestQuoteBlock(t *testing.T) {
	want := `Stock: Apple Inc. (AAPL)
Current Price: $255.46
Change: $5.46 (+2.18%)
Previous Close: $250.00

Today's Trading:
- Open: $251.20
- High: $256.00
- Low: $249.80
- Volume: 48,210,000

52-Week Range:
- High: $260.10
- Low: $169.21

Market Cap: $3.78T
`
	assert.Equal(t, want, Quote(apple))
}

func TestQuoteNegativeChangeSign(t *testing.T) {
	got := Quote(tesla)
	assert.Contains(t, got, "Change: $-3.38 (-1.37%)")
}

func TestQuoteDeterministic(t *testing.T) {
	assert.Equal(t, Quote(apple), Quote(apple))
}

func TestQuotesConcatenation(t *testing.T) {
	want := Quote(apple) + "\n\n" + Quote(tesla)
	assert.Equal(t, want, Quotes([]models.Quote{apple, tesla}))
}

func TestQuotesSingle(t *testing.T) {
	assert.Equal(t, Quote(apple), Quotes([]models.Quote{apple}))
}

func TestMarketCap(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{2500000000000, "$2.50T"},
		{850000000000, "$850.00B"},
		{850000000, "$850.00M"},
		{1500000, "$1.50M"},
		{999999, "$999,999"},
		{999, "$999"},
		{0, "$0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MarketCap(c.in), "input %d", c.in)
	}
}
