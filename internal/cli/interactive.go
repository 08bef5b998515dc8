package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/stocktutor/stocktutor/internal/assistant"
	"github.com/stocktutor/stocktutor/internal/models"
	"github.com/stocktutor/stocktutor/internal/symbols"
)

// InteractiveSession runs the question/answer loop on the terminal. One
// session owns its conversation history; turns are appended after each
// answered question and passed verbatim to the model.
type InteractiveSession struct {
	assistant *assistant.Assistant
	reader    *bufio.Reader
	history   []models.ConversationTurn
}

// NewInteractiveSession creates a session over an assembled assistant.
func NewInteractiveSession(a *assistant.Assistant) *InteractiveSession {
	return &InteractiveSession{
		assistant: a,
		reader:    bufio.NewReader(os.Stdin),
	}
}

// Start shows the welcome screen and runs the loop until the user quits.
func (s *InteractiveSession) Start(ctx context.Context) error {
	s.showWelcome()

	for {
		fmt.Print("\nYour question (or 'quit' to exit): ")

		line, err := s.reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}

		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}

		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Println("\nGoodbye! Happy learning!")
			return nil
		case "help", "?":
			s.showHelp()
			continue
		case "companies":
			fmt.Println()
			fmt.Println(renderCompanies())
			continue
		}

		s.handleQuestion(ctx, question)
	}
}

func (s *InteractiveSession) showWelcome() {
	fmt.Println(titleStyle.Render("Stock Tutor - ask about stocks in plain language"))
	fmt.Println()
	fmt.Println(warnStyle.Render("EDUCATIONAL USE ONLY - NOT FINANCIAL ADVICE"))
	fmt.Println()
	fmt.Println("Ask me about stocks! Examples:")
	fmt.Println(hintStyle.Render("  - 'What's the price of AAPL?'"))
	fmt.Println(hintStyle.Render("  - 'How is TSLA doing today?'"))
	fmt.Println(hintStyle.Render("  - 'Compare Apple and Microsoft'"))
	fmt.Println()
	fmt.Println(hintStyle.Render("Type 'companies' to list every recognized company, 'help' for more."))
}

func (s *InteractiveSession) showHelp() {
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  companies      - list the supported companies by market")
	fmt.Println("  help           - show this help")
	fmt.Println("  quit           - exit")
	fmt.Println()
	fmt.Println("Anything else is treated as a stock question. Include a ticker")
	fmt.Println("(AAPL, TSLA) or a company name (Apple, Reliance) so I know what")
	fmt.Println("to look up. You can compare several companies in one question.")
}

func (s *InteractiveSession) handleQuestion(ctx context.Context, question string) {
	detected := symbols.Extract(question)
	if len(detected) == 0 {
		fmt.Println()
		fmt.Println("I couldn't find a stock symbol in your question.")
		fmt.Println("Please include a ticker symbol (e.g., AAPL, TSLA, MSFT) or a company name.")
		return
	}

	selected := s.chooseSymbols(detected)

	fmt.Printf("\nFetching data for: %s\n", strings.Join(selected, ", "))

	result, err := s.assistant.AnswerSymbols(ctx, question, selected, s.history)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrNoQuoteData):
			fmt.Println(errStyle.Render("Couldn't fetch data for any of those symbols."))
			fmt.Println("Make sure you're using valid stock ticker symbols.")
		case errors.Is(err, assistant.ErrNoSymbolDetected):
			fmt.Println("Please include at least one ticker symbol.")
		default:
			fmt.Println(errStyle.Render(fmt.Sprintf("Something went wrong: %v", err)))
		}
		return
	}

	s.printResult(result)

	s.history = append(s.history,
		models.ConversationTurn{Role: models.RoleUser, Content: question},
		models.ConversationTurn{Role: models.RoleAssistant, Content: result.Answer},
	)
}

// chooseSymbols lets the user narrow a multi-symbol detection. Keeping
// the default selection uses everything that was detected.
func (s *InteractiveSession) chooseSymbols(detected []string) []string {
	if len(detected) <= 1 {
		return detected
	}

	chosen := []string{}
	ms := &survey.MultiSelect{
		Message: "Multiple symbols detected. Pick the ones to use:",
		Options: detected,
		Default: detected,
	}
	if err := survey.AskOne(ms, &chosen); err != nil || len(chosen) == 0 {
		return detected
	}
	return chosen
}

func (s *InteractiveSession) printResult(result *assistant.Result) {
	fmt.Println()
	if result.UsedFallback {
		fmt.Println(warnStyle.Render("Couldn't get an AI explanation right now; showing the raw stock summary instead."))
		fmt.Println(fallbackStyle.Render(result.Answer))
	} else {
		fmt.Println(renderAnswer(result.Answer))
	}

	meta := fmt.Sprintf("Symbols used: %s", strings.Join(result.SymbolsUsed, ", "))
	if result.UsedFallback {
		meta = fmt.Sprintf("Fallback summary shown (%s)", result.FallbackReason)
	}
	fmt.Println(metaStyle.Render(fmt.Sprintf("%s | Data as of: %s", meta, result.Timestamp)))
	fmt.Println(metaStyle.Render("For educational purposes only"))
}
