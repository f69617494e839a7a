package study

import (
	"errors"
	"testing"
)

func TestAddSection(t *testing.T) {
	w := NewWorkspace()

	s, err := w.AddSection("Cell Structure")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Cell Structure" {
		t.Errorf("name = %q, want %q", s.Name, "Cell Structure")
	}
	if w.Find("Cell Structure") != s {
		t.Error("Find did not return the added section")
	}
}

func TestAddSection_Validation(t *testing.T) {
	w := NewWorkspace()
	if _, err := w.AddSection("Genetics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		section string
	}{
		{"empty name", ""},
		{"duplicate name", "Genetics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.AddSection(tt.section)
			if err == nil {
				t.Fatal("expected error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestAddTopic(t *testing.T) {
	w := NewWorkspace()
	if _, err := w.AddSection("Genetics"); err != nil {
		t.Fatalf("add section: %v", err)
	}

	if err := w.AddTopic("Genetics", "DNA Replication"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.AddTopic("Genetics", "Transcription"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := w.Find("Genetics")
	if len(s.Topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(s.Topics))
	}
	// Order is preserved: the ladder drives difficulty progression.
	if s.Topics[0] != "DNA Replication" || s.Topics[1] != "Transcription" {
		t.Errorf("unexpected topic order: %v", s.Topics)
	}
}

func TestAddTopic_Validation(t *testing.T) {
	w := NewWorkspace()
	if _, err := w.AddSection("Genetics"); err != nil {
		t.Fatalf("add section: %v", err)
	}
	if err := w.AddTopic("Genetics", "DNA Replication"); err != nil {
		t.Fatalf("add topic: %v", err)
	}

	tests := []struct {
		name    string
		section string
		topic   string
	}{
		{"missing section", "Physics", "Momentum"},
		{"empty topic", "Genetics", ""},
		{"duplicate topic", "Genetics", "DNA Replication"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.AddTopic(tt.section, tt.topic)
			if err == nil {
				t.Fatal("expected error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	w := NewWorkspace()
	if _, err := w.AddSection("Old"); err != nil {
		t.Fatalf("add section: %v", err)
	}

	w.Replace("Biology", []*Section{
		{Name: "Cells", Topics: []string{"Organelles"}},
		{Name: "Genetics", Topics: []string{"DNA"}},
	})

	if w.Subject != "Biology" {
		t.Errorf("subject = %q, want %q", w.Subject, "Biology")
	}
	if w.Find("Old") != nil {
		t.Error("expected old section to be gone")
	}
	names := w.SectionNames()
	if len(names) != 2 || names[0] != "Cells" || names[1] != "Genetics" {
		t.Errorf("unexpected names: %v", names)
	}
}
