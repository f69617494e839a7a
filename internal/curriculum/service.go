package curriculum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/study"
)

// Service generates full study curricula via structured LLM output.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a curriculum generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type curriculumOutput struct {
	Sections []sectionOutput `json:"sections"`
}

type sectionOutput struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

// Generate builds a curriculum for the subject. The model's output must
// match CurriculumSchema exactly; malformed or empty output is an
// error, never a partial result.
func (s *Service) Generate(ctx context.Context, subject string) ([]*study.Section, error) {
	ctx = llm.WithPurpose(ctx, "curriculum-gen")

	req := llm.Request{
		System: curriculumSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCurriculumUserMessage(subject)},
		},
		Schema:      CurriculumSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("curriculum generation: %w", err)
	}

	var out curriculumOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse curriculum response: %w", err)
	}
	if len(out.Sections) == 0 {
		return nil, fmt.Errorf("parse curriculum response: no sections")
	}

	sections := make([]*study.Section, 0, len(out.Sections))
	for _, sec := range out.Sections {
		if sec.Name == "" {
			return nil, fmt.Errorf("parse curriculum response: section with empty name")
		}
		sections = append(sections, &study.Section{Name: sec.Name, Topics: sec.Topics})
	}
	return sections, nil
}
