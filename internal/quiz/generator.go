package quiz

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/internal/llm"
)

// Generator produces raw question text for a difficulty directive.
type Generator interface {
	Generate(ctx context.Context, directive string) (string, error)
}

// Config holds question generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for question generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

const questionSystemPrompt = `You are a specialized AI for creating accurate and engaging educational quizzes covering multiple related topics.

Generate a SINGLE multiple-choice question.
The question should have four answer options (A, B, C, D).
Provide the correct answer clearly marked, and a brief explanation for the correct answer.
Based on the difficulty hint, adjust the complexity of the question and options.

Format your entire response exactly like this example, with no other text:
### Question 1:
What is the capital of France?
A) Berlin
B) Madrid
C) Paris
D) Rome
Correct Answer: C) Paris
Explanation: Paris is the capital and most populous city of France.`

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMGenerator creates a question generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

func (g *LLMGenerator) Generate(ctx context.Context, directive string) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: directive},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("question generation: %w", err)
	}
	return resp.Text(), nil
}
