package quiz

import "sync"

// SessionStore owns all per-section quiz sessions plus the single
// globally active section. Sessions are created on first access.
//
// The TUI serializes interactions, but the store locks anyway so the
// service layer stays safe if callers ever overlap.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	active   string
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session for a section, creating an idle one if the
// section has never been quizzed.
func (st *SessionStore) Get(section string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[section]
	if !ok {
		s = newSession(section)
		st.sessions[section] = s
	}
	return s
}

// Active returns the section name of the currently running quiz, or ""
// if none is active.
func (st *SessionStore) Active() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.active
}

// SetActive marks a section as the globally active quiz. Starting a
// quiz in one section deactivates any other; the deactivated section's
// stored state is retained, not reset.
func (st *SessionStore) SetActive(section string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.active = section
}

// ClearActive clears the active section if it matches.
func (st *SessionStore) ClearActive(section string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.active == section {
		st.active = ""
	}
}
