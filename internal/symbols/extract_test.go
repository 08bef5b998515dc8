package symbols

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmptyInput(t *testing.T) {
	assert.Empty(t, Extract(""))
}

func TestExtractNoSymbol(t *testing.T) {
	assert.Empty(t, Extract("How are markets feeling today?"))
}

func TestExtractContractionGuard(t *testing.T) {
	assert.Equal(t, []string{"AAPL"}, Extract("What's the price of AAPL?"))
}

func TestExtractCurlyApostropheGuard(t *testing.T) {
	assert.Equal(t, []string{"AAPL"}, Extract("What’s the price of AAPL?"))
}

func TestExtractAliasOrdering(t *testing.T) {
	assert.Equal(t, []string{"AAPL", "MSFT"}, Extract("Compare Apple and Microsoft"))
}

func TestExtractPlainTicker(t *testing.T) {
	assert.Equal(t, []string{"TSLA"}, Extract("How is TSLA doing today?"))
}

func TestExtractDollarPrefix(t *testing.T) {
	assert.Equal(t, []string{"TSLA"}, Extract("Is $TSLA a stock?"))
}

func TestExtractSuffixedTickers(t *testing.T) {
	got := Extract("Thoughts on RELIANCE.NS versus BRK-B")
	assert.Contains(t, got, "RELIANCE.NS")
	assert.Contains(t, got, "BRK-B")
}

func TestExtractAliasAndPatternDeduplicated(t *testing.T) {
	// Apple matches the alias table, AAPL matches the token pattern; the
	// shared symbol appears once, at its alias-pass position.
	assert.Equal(t, []string{"AAPL"}, Extract("Apple stock AAPL"))
}

func TestExtractInformalAlias(t *testing.T) {
	assert.Equal(t, []string{"GOOG"}, Extract("tell me about google"))
}

func TestExtractUniqueUppercase(t *testing.T) {
	inputs := []string{
		"AAPL AAPL aapl",
		"Compare Apple, Microsoft and tsla with $nvda",
		"reliance vs tcs vs infosys",
		"What's up with BRK-B and brk-b?",
	}
	for _, input := range inputs {
		got := Extract(input)
		seen := map[string]bool{}
		for _, sym := range got {
			assert.Equal(t, strings.ToUpper(sym), sym, "input %q produced non-uppercase %q", input, sym)
			assert.False(t, seen[sym], "input %q produced duplicate %q", input, sym)
			seen[sym] = true
		}
	}
}

func TestGrouped(t *testing.T) {
	groups := Grouped()
	require.Len(t, groups, 2)
	require.Equal(t, "USA", groups[0].Market)
	require.Equal(t, "India", groups[1].Market)
	for _, g := range groups {
		require.Len(t, g.Companies, 50, "market %s", g.Market)
		for i, c := range g.Companies {
			assert.Equal(t, i+1, c.Rank, "market %s entry %d", g.Market, i)
		}
	}
}
