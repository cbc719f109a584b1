package chatbot

import (
	"testing"
	"time"
)

func TestSessionStore_GetCreatesOnce(t *testing.T) {
	st := NewSessionStore(time.Hour, time.Hour)
	defer st.Stop()

	a := st.Get("visitor")
	b := st.Get("visitor")
	if a != b {
		t.Error("Get must return the same session for the same id")
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
	if a.State() != StateIdle {
		t.Errorf("new session state = %v, want %v", a.State(), StateIdle)
	}
}

func TestSessionStore_SweepRemovesIdleSessions(t *testing.T) {
	st := NewSessionStore(10*time.Millisecond, time.Hour)
	defer st.Stop()

	st.Get("old")
	time.Sleep(25 * time.Millisecond)
	st.Get("fresh")

	removed := st.Sweep()
	if removed != 1 {
		t.Errorf("Sweep() = %d, want 1", removed)
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}

func TestSession_ResetClearsEverything(t *testing.T) {
	s := &Session{
		state:          StateAwaitingSkills,
		interests:      "coding",
		education:      "diploma",
		skills:         "python",
		qualifications: "none",
	}

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	if s.State() != StateIdle {
		t.Errorf("state = %v, want %v", s.State(), StateIdle)
	}
	if s.interests != "" || s.education != "" || s.skills != "" || s.qualifications != "" {
		t.Error("reset must clear all accumulated answers")
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateAwaitingInterests, "awaiting_interests"},
		{StateAwaitingEducation, "awaiting_education"},
		{StateAwaitingSkills, "awaiting_skills"},
		{StateAwaitingQualifications, "awaiting_qualifications"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
