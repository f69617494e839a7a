package quiz

import "testing"

func TestSessionStore_GetCreatesIdle(t *testing.T) {
	st := NewSessionStore()

	s := st.Get("Algebra")
	if s == nil {
		t.Fatal("expected a session")
	}
	if s.State != StateIdle {
		t.Errorf("state = %s, want idle", s.State)
	}
	if s.Section != "Algebra" {
		t.Errorf("section = %q, want Algebra", s.Section)
	}
	if s.CurrentGrade() != "N/A" {
		t.Errorf("grade = %q, want N/A", s.CurrentGrade())
	}

	// Same pointer on repeat access.
	if st.Get("Algebra") != s {
		t.Error("expected the same session instance")
	}
	if st.Get("Geometry") == s {
		t.Error("different sections must get different sessions")
	}
}

func TestSessionStore_Active(t *testing.T) {
	st := NewSessionStore()
	if st.Active() != "" {
		t.Errorf("active = %q, want none", st.Active())
	}

	st.SetActive("Algebra")
	if st.Active() != "Algebra" {
		t.Errorf("active = %q, want Algebra", st.Active())
	}

	st.SetActive("Geometry")
	if st.Active() != "Geometry" {
		t.Errorf("active = %q, want Geometry", st.Active())
	}

	// Clearing a non-active section is a no-op.
	st.ClearActive("Algebra")
	if st.Active() != "Geometry" {
		t.Errorf("active = %q, want Geometry", st.Active())
	}

	st.ClearActive("Geometry")
	if st.Active() != "" {
		t.Errorf("active = %q, want none", st.Active())
	}
}
