package llm

import (
	"testing"
)

func TestNewGroqProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "llama-70b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "llama-3.3-70b-versatile" {
			t.Errorf("model = %q, want %q", p.ModelID(), "llama-3.3-70b-versatile")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewGroqProvider(GroqConfig{
			Model: "llama-70b",
		})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("friendly name mapping", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "llama-8b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "llama-3.1-8b-instant" {
			t.Errorf("model = %q, want %q", p.ModelID(), "llama-3.1-8b-instant")
		}
	})

	t.Run("raw model pass-through", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "qwen-2.5-32b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Unknown model IDs are used as-is.
		if p.ModelID() != "qwen-2.5-32b" {
			t.Errorf("model = %q, want %q", p.ModelID(), "qwen-2.5-32b")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey:  "gsk-test",
			Model:   "llama-70b",
			BaseURL: "https://groq.example/openai/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
