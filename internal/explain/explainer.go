// Package explain sends explanation requests to a hosted chat-completion
// model.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"

	"github.com/stocktutor/stocktutor/internal/config"
	"github.com/stocktutor/stocktutor/internal/models"
	"github.com/stocktutor/stocktutor/internal/prompt"
)

// Fixed generation parameters for every explanation request.
const (
	temperature = float32(0.7)
	maxTokens   = 500
)

// ErrEmptyResponse marks a completion that came back without any text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Requester sends the system persona, optional prior turns, and the
// built prompt to a chat-completion model and returns the generated text.
type Requester interface {
	Explain(ctx context.Context, history []models.ConversationTurn, userPrompt string) (string, error)
}

// ChatRequester is the eino-backed Requester.
type ChatRequester struct {
	model *openai.ChatModel
}

// NewChatRequester builds the chat model from the resolved configuration.
func NewChatRequester(ctx context.Context, cfg *config.Config) (*ChatRequester, error) {
	temp := temperature
	limit := maxTokens
	conf := &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: &temp,
		MaxTokens:   &limit,
		Timeout:     cfg.RequestTimeout,
	}
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}

	chatModel, err := openai.NewChatModel(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	return &ChatRequester{model: chatModel}, nil
}

// Explain runs one non-streaming chat completion. A single attempt: any
// transport, auth, or empty-text outcome is returned as an error for the
// caller's fallback path.
func (r *ChatRequester) Explain(ctx context.Context, history []models.ConversationTurn, userPrompt string) (string, error) {
	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(prompt.SystemInstruction))
	for _, turn := range history {
		if turn.Role == models.RoleAssistant {
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
			continue
		}
		messages = append(messages, schema.UserMessage(turn.Content))
	}
	messages = append(messages, schema.UserMessage(userPrompt))

	out, err := r.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	text := strings.TrimSpace(out.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
