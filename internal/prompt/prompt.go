// Package prompt assembles the instruction text sent to the explanation
// model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/stocktutor/stocktutor/internal/format"
	"github.com/stocktutor/stocktutor/internal/models"
)

// SystemInstruction is the fixed persona sent as the system turn of every
// explanation request.
const SystemInstruction = "You are an experienced financial educator. " +
	"Use the conversation context to stay consistent, but only use the current stock data provided. " +
	"If the user references earlier turns, summarize or compare without inventing new prices or facts. " +
	"Avoid direct financial advice; focus on education and explanation."

// Build combines the user's question and the formatted quote summary into
// a single instruction block. Deterministic for identical input.
func Build(quotes []models.Quote, question string) string {
	subject := "this stock"
	if len(quotes) > 1 {
		subject = "these stocks"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The user asked: \"%s\"\n\n", question)
	b.WriteString("Here's the current stock data:\n")
	b.WriteString(format.Quotes(quotes))
	b.WriteString("\n\n")
	b.WriteString("Please provide a clear, beginner-friendly explanation that:\n")
	b.WriteString("1. Directly answers their question\n")
	b.WriteString("2. Explains what the numbers mean\n")
	b.WriteString("3. Uses simple language\n")
	b.WriteString("4. Avoids jargon or explains any necessary terms\n")
	b.WriteString("5. Is encouraging and educational\n")
	fmt.Fprintf(&b, "6. If multiple symbols are included, compare %s side by side\n\n", subject)
	b.WriteString("Remember: This is for learning, not financial advice.")
	return b.String()
}
