package study

import "fmt"

// Section is a named, ordered ladder of topic strings. The topic order
// drives quiz difficulty progression.
type Section struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

// ValidationError reports a user-level input problem with workspace content.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Workspace owns the ordered list of sections for the current subject.
// Sections are created by curriculum generation or manual adds and are
// never deleted during a run.
type Workspace struct {
	Subject  string
	Sections []*Section
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Find returns the section with the given name, or nil.
func (w *Workspace) Find(name string) *Section {
	for _, s := range w.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// AddSection appends a new empty section. Names must be non-empty and
// unique among sections.
func (w *Workspace) AddSection(name string) (*Section, error) {
	if name == "" {
		return nil, &ValidationError{Field: "section", Message: "name must not be empty"}
	}
	if w.Find(name) != nil {
		return nil, &ValidationError{Field: "section", Message: fmt.Sprintf("section %q already exists", name)}
	}
	s := &Section{Name: name}
	w.Sections = append(w.Sections, s)
	return s, nil
}

// AddTopic appends a topic to the named section. Topic names must be
// non-empty and unique within their section.
func (w *Workspace) AddTopic(sectionName, topic string) error {
	s := w.Find(sectionName)
	if s == nil {
		return &ValidationError{Field: "section", Message: fmt.Sprintf("no section named %q", sectionName)}
	}
	if topic == "" {
		return &ValidationError{Field: "topic", Message: "name must not be empty"}
	}
	for _, t := range s.Topics {
		if t == topic {
			return &ValidationError{Field: "topic", Message: fmt.Sprintf("topic %q already exists in section %q", topic, sectionName)}
		}
	}
	s.Topics = append(s.Topics, topic)
	return nil
}

// Replace swaps the workspace content for a freshly generated curriculum.
func (w *Workspace) Replace(subject string, sections []*Section) {
	w.Subject = subject
	w.Sections = sections
}

// SectionNames returns the section names in workspace order.
func (w *Workspace) SectionNames() []string {
	names := make([]string, 0, len(w.Sections))
	for _, s := range w.Sections {
		names = append(names, s.Name)
	}
	return names
}
