package outline

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// DefaultModel is the generation model used unless configured otherwise.
const DefaultModel = "gpt-4o-mini"

// Generator produces an outline for a brief.
type Generator interface {
	Propose(ctx context.Context, brief *Brief) (string, error)
}

// OpenAIGenerator calls the OpenAI chat API through langchaingo.
type OpenAIGenerator struct {
	llm    llms.Model
	logger *zap.Logger
}

func NewOpenAIGenerator(token, model string, logger *zap.Logger) (*OpenAIGenerator, error) {
	if model == "" {
		model = DefaultModel
	}
	llm, err := openai.New(openai.WithToken(token), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &OpenAIGenerator{llm: llm, logger: logger}, nil
}

// Propose sends the system prompt and the rendered brief, returning the
// outline markdown.
func (g *OpenAIGenerator) Propose(ctx context.Context, brief *Brief) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, brief.UserPrompt()),
	}

	resp, err := g.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(900),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return "", fmt.Errorf("outline generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("outline generation returned no choices")
	}

	outline := strings.TrimSpace(resp.Choices[0].Content)
	g.logger.Info("outline_generated",
		zap.String("query", brief.Query),
		zap.Int("length", len(outline)))
	return outline, nil
}
