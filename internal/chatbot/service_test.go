package chatbot

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/itech-institute/itech-site-go/internal/catalog"
	"github.com/itech-institute/itech-site-go/internal/logger"
	"github.com/itech-institute/itech-site-go/internal/metrics"
	"github.com/itech-institute/itech-site-go/internal/recommend"
)

type recordedTurn struct {
	sessionID   string
	userMessage string
	botResponse string
}

type fakeConversationStore struct {
	turns []recordedTurn
	err   error
}

func (f *fakeConversationStore) RecordChat(_ context.Context, sessionID, userMessage, botResponse string) error {
	f.turns = append(f.turns, recordedTurn{sessionID, userMessage, botResponse})
	return f.err
}

func newTestService(t *testing.T, store ConversationStore) (*Service, *SessionStore) {
	t.Helper()

	engine, err := recommend.NewEngine(catalog.Courses())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	sessions := NewSessionStore(time.Hour, time.Hour)
	t.Cleanup(sessions.Stop)

	svc := NewService(
		NewMatcher(catalog.Intents(), 70),
		engine,
		sessions,
		store,
		logger.NewWithWriter("error", io.Discard),
		metrics.New(prometheus.NewRegistry()),
		3,
	)
	return svc, sessions
}

func TestService_FunnelEndToEnd(t *testing.T) {
	store := &fakeConversationStore{}
	svc, sessions := newTestService(t, store)
	ctx := context.Background()
	const sid = "funnel-session"

	svc.Reply(ctx, sid, "I want to recommend a course")
	if got := sessions.Get(sid).State(); got != StateAwaitingInterests {
		t.Fatalf("state after trigger = %v, want %v", got, StateAwaitingInterests)
	}

	reply := svc.Reply(ctx, sid, "coding and AI")
	if !strings.Contains(reply, "education level") {
		t.Errorf("education prompt = %q, want mention of education level", reply)
	}

	reply = svc.Reply(ctx, sid, "bachelor's degree")
	if !strings.Contains(reply, "bachelor's degree") {
		t.Errorf("skills prompt = %q, want the stated education echoed back", reply)
	}

	reply = svc.Reply(ctx, sid, "basic python")
	if !strings.Contains(reply, "qualifications") {
		t.Errorf("qualifications prompt = %q, want mention of qualifications", reply)
	}

	final := svc.Reply(ctx, sid, "none")
	if !strings.Contains(final, "recommend these courses") {
		t.Fatalf("final reply = %q, want recommendation list", final)
	}
	for _, ordinal := range []string{"\n1. ", "\n2. ", "\n3. "} {
		if !strings.Contains(final, ordinal) {
			t.Errorf("final reply missing entry %q", strings.TrimSpace(ordinal))
		}
	}
	if got := sessions.Get(sid).State(); got != StateIdle {
		t.Errorf("state after funnel = %v, want %v", got, StateIdle)
	}
	if len(store.turns) != 5 {
		t.Errorf("recorded turns = %d, want 5", len(store.turns))
	}
}

func TestService_GoodbyeMidFunnelResets(t *testing.T) {
	svc, sessions := newTestService(t, &fakeConversationStore{})
	ctx := context.Background()
	const sid = "reset-session"

	svc.Reply(ctx, sid, "recommend a course")
	svc.Reply(ctx, sid, "coding")
	svc.Reply(ctx, sid, "high school")

	sess := sessions.Get(sid)
	if got := sess.State(); got != StateAwaitingSkills {
		t.Fatalf("state before goodbye = %v, want %v", got, StateAwaitingSkills)
	}

	svc.Reply(ctx, sid, "bye")

	if got := sess.State(); got != StateIdle {
		t.Errorf("state after goodbye = %v, want %v", got, StateIdle)
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.interests != "" || sess.education != "" {
		t.Errorf("funnel answers not cleared: interests=%q education=%q", sess.interests, sess.education)
	}
}

func TestService_GreetingReply(t *testing.T) {
	svc, _ := newTestService(t, &fakeConversationStore{})

	reply := svc.Reply(context.Background(), "greet-session", "hello")

	found := false
	for _, intent := range catalog.Intents() {
		if intent.Tag != catalog.IntentGreeting {
			continue
		}
		for _, candidate := range intent.Responses {
			if reply == candidate {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("greeting reply = %q, want one of the greeting responses", reply)
	}
}

func TestService_FallbackForUnknownMessage(t *testing.T) {
	svc, _ := newTestService(t, &fakeConversationStore{})

	reply := svc.Reply(context.Background(), "fb-session", "qwxzzq vrbnk")
	if reply != fallbackResponse {
		t.Errorf("reply = %q, want fallback", reply)
	}
}

func TestService_RecordFailureDoesNotAbortReply(t *testing.T) {
	store := &fakeConversationStore{err: errors.New("db locked")}
	svc, _ := newTestService(t, store)

	reply := svc.Reply(context.Background(), "err-session", "hello")
	if reply == "" {
		t.Error("reply must be returned even when recording fails")
	}
	if len(store.turns) != 1 {
		t.Errorf("recorded turns = %d, want 1", len(store.turns))
	}
}

func TestService_SessionsAreIndependent(t *testing.T) {
	svc, sessions := newTestService(t, &fakeConversationStore{})
	ctx := context.Background()

	svc.Reply(ctx, "a", "recommend a course")
	svc.Reply(ctx, "b", "hello")

	if got := sessions.Get("a").State(); got != StateAwaitingInterests {
		t.Errorf("session a state = %v, want %v", got, StateAwaitingInterests)
	}
	if got := sessions.Get("b").State(); got != StateIdle {
		t.Errorf("session b state = %v, want %v", got, StateIdle)
	}
}
