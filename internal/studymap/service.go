package studymap

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiq/internal/llm"
)

const studyMapSystemPrompt = `You are an expert educator focused on breaking down complex topics into digestible study plans.`

// Config holds study-map generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for study-map generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.5,
	}
}

// Service generates prose study maps for individual topics.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a study-map generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a markdown study map for the topic. The output is
// consumed verbatim for display; use SpeechText before synthesis.
func (s *Service) Generate(ctx context.Context, topic string) (string, error) {
	ctx = llm.WithPurpose(ctx, "study-map")

	req := llm.Request{
		System: studyMapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStudyMapUserMessage(topic)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("study map generation: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("study map generation: empty response")
	}
	return text, nil
}

func buildStudyMapUserMessage(topic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a study map for the topic: '%s'\n", topic))

	b.WriteString(`
Instructions:
1. Create a structured and comprehensive study map.
2. Include Key Concepts (main ideas).
3. Include Sub-topics for each key concept.
4. Provide a brief, 1-2 sentence explanation for each sub-topic.
5. List Important terms or vocabulary related to the sub-topics, in parentheses after the explanation.
6. Format the output clearly using Markdown. Use headings for Key Concepts, bullet points for sub-topics, and bold for important terms.

Example structure:
## Key Concept 1: [Name]
* **Sub-topic 1.1**: Brief explanation. (Terms: Term1, Term2)
* **Sub-topic 1.2**: Brief explanation. (Terms: Term3)

## Key Concept 2: [Name]
* **Sub-topic 2.1**: Brief explanation. (Terms: Term4)`)

	return b.String()
}
