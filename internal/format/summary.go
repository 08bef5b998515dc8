// Package format renders quote records into deterministic text blocks.
// The same rendering feeds the model prompt and the fallback answer, so
// output must be byte-identical for identical input.
package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stocktutor/stocktutor/internal/models"
)

var printer = message.NewPrinter(language.English)

// MarketCap renders a market capitalization with a human-scale suffix:
// trillions, billions, or millions with two decimals, otherwise a plain
// comma-grouped dollar amount.
func MarketCap(n int64) string {
	switch {
	case n >= 1_000_000_000_000:
		return fmt.Sprintf("$%.2fT", float64(n)/1_000_000_000_000)
	case n >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("$%.2fM", float64(n)/1_000_000)
	default:
		return printer.Sprintf("$%d", n)
	}
}

// Quote renders one record as a fixed multi-line summary block.
func Quote(q models.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stock: %s (%s)\n", q.Name, q.Symbol)
	fmt.Fprintf(&b, "Current Price: $%.2f\n", q.CurrentPrice)
	fmt.Fprintf(&b, "Change: $%.2f (%+.2f%%)\n", q.Change, q.ChangePercent)
	fmt.Fprintf(&b, "Previous Close: $%.2f\n\n", q.PreviousClose)
	b.WriteString("Today's Trading:\n")
	fmt.Fprintf(&b, "- Open: $%.2f\n", q.Open)
	fmt.Fprintf(&b, "- High: $%.2f\n", q.DayHigh)
	fmt.Fprintf(&b, "- Low: $%.2f\n", q.DayLow)
	printer.Fprintf(&b, "- Volume: %d\n\n", q.Volume)
	b.WriteString("52-Week Range:\n")
	fmt.Fprintf(&b, "- High: $%.2f\n", q.Week52High)
	fmt.Fprintf(&b, "- Low: $%.2f\n\n", q.Week52Low)
	fmt.Fprintf(&b, "Market Cap: %s\n", MarketCap(q.MarketCap))
	return b.String()
}

// Quotes renders each record with Quote and joins the blocks with a blank
// line, preserving input order.
func Quotes(quotes []models.Quote) string {
	blocks := make([]string, len(quotes))
	for i, q := range quotes {
		blocks[i] = Quote(q)
	}
	return strings.Join(blocks, "\n\n")
}
