// Package cli provides the command-line surface of the assistant.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stocktutor/stocktutor/internal/assistant"
	"github.com/stocktutor/stocktutor/internal/config"
	"github.com/stocktutor/stocktutor/internal/dataflows"
	"github.com/stocktutor/stocktutor/internal/explain"
)

const version = "1.0.0"

// NewRootCmd creates the root command. Running it without a subcommand
// starts the interactive loop.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stocktutor",
		Short: "Stock Tutor - beginner-friendly stock explanations from live data",
		Long: `Stock Tutor answers natural-language questions about stocks.
It resolves tickers from your question, fetches current quote data, and asks
a hosted language model for a beginner-friendly explanation, falling back to
a raw data summary when the model is unreachable.

For educational purposes only. Not financial advice.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context())
		},
	}

	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newCompaniesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [QUESTION]",
		Short: "Answer a single stock question and exit",
		Long: `Run one question/answer cycle without the interactive loop.
Example: stocktutor ask "How is TSLA doing today?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func newCompaniesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "List every recognized company, grouped by market",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(renderCompanies())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stocktutor v%s\n", version)
		},
	}
}

// newAssistant resolves configuration and assembles the pipeline.
func newAssistant(ctx context.Context) (*assistant.Assistant, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	requester, err := explain.NewChatRequester(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return assistant.New(dataflows.New(cfg), requester), nil
}

func runInteractive(ctx context.Context) error {
	a, err := newAssistant(ctx)
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			// A missing credential is a setup problem, not a crash.
			fmt.Println(errStyle.Render(err.Error()))
			fmt.Println("Add GIT_ACCESS_TOKEN or OPENAI_API_KEY to your .env file and try again.")
			return nil
		}
		return err
	}

	return NewInteractiveSession(a).Start(ctx)
}

func runAsk(ctx context.Context, question string) error {
	a, err := newAssistant(ctx)
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			fmt.Println(err.Error())
			fmt.Println("Add GIT_ACCESS_TOKEN or OPENAI_API_KEY to your .env file and try again.")
			return nil
		}
		return err
	}

	result, err := a.Answer(ctx, question, nil)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrNoSymbolDetected):
			fmt.Println("I couldn't find a stock symbol in your question.")
			fmt.Println("Please include a ticker symbol (e.g., AAPL, TSLA, MSFT) or a company name.")
			return nil
		case errors.Is(err, assistant.ErrNoQuoteData):
			fmt.Println("I couldn't fetch valid stock data for the detected symbols.")
			fmt.Println("Please check the ticker names and try again.")
			return nil
		default:
			return err
		}
	}

	if result.UsedFallback {
		fmt.Println("AI explanation unavailable; raw stock summary follows.")
		fmt.Println()
	}
	fmt.Println(result.Answer)
	fmt.Println()
	meta := fmt.Sprintf("Symbols used: %s", strings.Join(result.SymbolsUsed, ", "))
	if result.UsedFallback {
		meta = fmt.Sprintf("Fallback summary shown (%s)", result.FallbackReason)
	}
	fmt.Printf("%s | Data as of: %s\n", meta, result.Timestamp)
	return nil
}
