package studymap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studiq/internal/llm"
)

const sampleMap = `## Key Concept 1: Photosynthesis
* **Light Reactions**: Convert light energy into chemical energy. (Terms: Thylakoid, ATP)
* **Calvin Cycle**: Fixes carbon dioxide into sugar. (Terms: RuBisCO)

## Key Concept 2: Cellular Respiration
* **Glycolysis**: Splits glucose into pyruvate. (Terms: NADH)`

func TestService_GeneratesStudyMap(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(sampleMap),
	})
	svc := NewService(mock, DefaultConfig())

	out, err := svc.Generate(t.Context(), "Photosynthesis")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != sampleMap {
		t.Errorf("output should be the model text verbatim, got %q", out)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("study maps are prose, not structured output")
	}
	if !strings.Contains(req.Messages[0].Content, "'Photosynthesis'") {
		t.Errorf("user message should name the topic: %q", req.Messages[0].Content)
	}
}

func TestService_EmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  \n"),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), "Photosynthesis"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestSpeechText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"heading marks stripped",
			"## Key Concept 1: Photosynthesis",
			"Key Concept 1: Photosynthesis",
		},
		{
			"bold keeps inner text",
			"The **Calvin Cycle** fixes carbon.",
			"The Calvin Cycle fixes carbon.",
		},
		{
			"bullet stars removed",
			"* First point",
			" First point",
		},
		{
			"terms suffix removed",
			"Splits glucose into pyruvate. (Terms: NADH, Pyruvate)",
			"Splits glucose into pyruvate. ",
		},
		{
			"plain prose untouched",
			"Light reactions happen in the thylakoid.",
			"Light reactions happen in the thylakoid.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeechText(tt.in); got != tt.want {
				t.Errorf("SpeechText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpeechText_FullMap(t *testing.T) {
	got := SpeechText(sampleMap)
	for _, banned := range []string{"##", "*", "(Terms:"} {
		if strings.Contains(got, banned) {
			t.Errorf("output still contains %q: %q", banned, got)
		}
	}
	if !strings.Contains(got, "Light Reactions") {
		t.Error("bold inner text should survive")
	}
}
