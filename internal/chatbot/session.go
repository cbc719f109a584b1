package chatbot

import (
	"sync"
	"time"
)

// State is the position of a session in the recommendation funnel.
type State int

const (
	StateIdle State = iota
	StateAwaitingInterests
	StateAwaitingEducation
	StateAwaitingSkills
	StateAwaitingQualifications
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingInterests:
		return "awaiting_interests"
	case StateAwaitingEducation:
		return "awaiting_education"
	case StateAwaitingSkills:
		return "awaiting_skills"
	case StateAwaitingQualifications:
		return "awaiting_qualifications"
	default:
		return "unknown"
	}
}

// Session holds one visitor's dialogue state and funnel answers.
// The service serializes whole turns on mu, so two tabs sharing a
// session cannot interleave half-applied transitions.
type Session struct {
	mu             sync.Mutex
	state          State
	interests      string
	education      string
	skills         string
	qualifications string
	lastActive     time.Time
}

// State returns the session's current funnel state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// reset clears the funnel state and all accumulated answers.
// Must be called with mu held.
func (s *Session) reset() {
	s.state = StateIdle
	s.interests = ""
	s.education = ""
	s.skills = ""
	s.qualifications = ""
}

// SessionStore keeps dialogue sessions keyed by the visitor's session id
// and expires sessions idle longer than the TTL.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stopCh   chan struct{}
}

// NewSessionStore creates a store and starts its expiry sweep.
// Call Stop when done.
func NewSessionStore(ttl, sweepPeriod time.Duration) *SessionStore {
	st := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}

	go st.sweepLoop(sweepPeriod)

	return st
}

// Get returns the session for the given id, creating it on first use,
// and marks it active.
func (st *SessionStore) Get(id string) *Session {
	st.mu.RLock()
	sess, exists := st.sessions[id]
	st.mu.RUnlock()

	if !exists {
		st.mu.Lock()
		// Re-check under the write lock.
		sess, exists = st.sessions[id]
		if !exists {
			sess = &Session{state: StateIdle}
			st.sessions[id] = sess
		}
		st.mu.Unlock()
	}

	sess.mu.Lock()
	sess.lastActive = time.Now()
	sess.mu.Unlock()

	return sess
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle longer than the TTL and returns how many
// were removed.
func (st *SessionStore) Sweep() int {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *SessionStore) sweepLoop(period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-st.stopCh:
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

// Stop shuts down the sweep goroutine. Safe to call multiple times.
func (st *SessionStore) Stop() {
	select {
	case <-st.stopCh:
	default:
		close(st.stopCh)
	}
}
