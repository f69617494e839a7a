package curriculum

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/studiq/internal/llm"
)

func validCurriculumJSON() json.RawMessage {
	return json.RawMessage(`{
		"sections": [
			{
				"name": "Cell Structure",
				"topics": ["Organelles", "Cell Membranes", "Cytoskeleton", "Prokaryotes vs Eukaryotes"]
			},
			{
				"name": "Genetics",
				"topics": ["DNA Replication", "Transcription", "Translation", "Mutations"]
			}
		]
	}`)
}

func TestService_GeneratesCurriculum(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validCurriculumJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	sections, err := svc.Generate(t.Context(), "Cell Biology")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Name != "Cell Structure" {
		t.Errorf("expected section 'Cell Structure', got %q", sections[0].Name)
	}
	if len(sections[0].Topics) != 4 {
		t.Errorf("expected 4 topics, got %d", len(sections[0].Topics))
	}
	if sections[1].Topics[0] != "DNA Replication" {
		t.Errorf("unexpected topic %q", sections[1].Topics[0])
	}
}

func TestService_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validCurriculumJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), "Linear Algebra"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != CurriculumSchema {
		t.Error("expected curriculum schema on the request")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "'Linear Algebra'") {
		t.Errorf("user message should name the subject: %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "at least 5 sections") {
		t.Error("user message should carry the sizing instructions")
	}
}

func TestService_ProviderError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(t.Context(), "History")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestService_MalformedResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "here is your curriculum:"},
		{"empty sections", `{"sections": []}`},
		{"missing sections key", `{"units": [{"name": "x"}]}`},
		{"empty section name", `{"sections": [{"name": "", "topics": ["a"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(tt.content),
			})
			svc := NewService(mock, DefaultConfig())

			if _, err := svc.Generate(t.Context(), "History"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
