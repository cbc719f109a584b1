package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	staffCookieName = "staff_session"
	staffContextKey = "staff_id"
)

// StaffSessionStore keeps logged-in staff sessions in memory, keyed by
// an opaque token. Sessions expire after the TTL; restarting the server
// logs everyone out.
type StaffSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]staffSession
	ttl      time.Duration
}

type staffSession struct {
	staffID int64
	expires time.Time
}

// NewStaffSessionStore creates a staff session store with the given TTL.
func NewStaffSessionStore(ttl time.Duration) *StaffSessionStore {
	return &StaffSessionStore{
		sessions: make(map[string]staffSession),
		ttl:      ttl,
	}
}

// Create issues a new session token for the staff member.
func (s *StaffSessionStore) Create(staffID int64) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = staffSession{
		staffID: staffID,
		expires: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Lookup resolves a token to a staff id, dropping it when expired.
func (s *StaffSessionStore) Lookup(token string) (int64, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expires) {
		s.Delete(token)
		return 0, false
	}
	return sess.staffID, true
}

// Delete removes a session token.
func (s *StaffSessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were removed.
func (s *StaffSessionStore) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if now.After(sess.expires) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// staffAuthMiddleware requires a valid staff session cookie and exposes
// the staff id to handlers.
func (h *Handler) staffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(staffCookieName)
		if err != nil || token == "" {
			h.respondError(c, http.StatusUnauthorized, "staff", "staff login required")
			c.Abort()
			return
		}

		staffID, ok := h.staffSessions.Lookup(token)
		if !ok {
			h.respondError(c, http.StatusUnauthorized, "staff", "session expired, log in again")
			c.Abort()
			return
		}

		c.Set(staffContextKey, staffID)
		c.Next()
	}
}

// staffID returns the authenticated staff id set by staffAuthMiddleware.
func staffID(c *gin.Context) int64 {
	return c.GetInt64(staffContextKey)
}
