package chatbot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/itech-institute/itech-site-go/internal/catalog"
	"github.com/itech-institute/itech-site-go/internal/logger"
	"github.com/itech-institute/itech-site-go/internal/metrics"
	"github.com/itech-institute/itech-site-go/internal/recommend"
)

const fallbackResponse = "I'm sorry, I didn't understand that. Could you rephrase your question?"

const noRecommendationsResponse = "I couldn't find specific recommendations. Please visit our courses page or contact our advisors for more help."

// feePrinter renders fees with thousands separators.
var feePrinter = message.NewPrinter(language.English)

// ConversationStore records chat turns. Writes are best-effort; the
// reply is returned to the user even when recording fails.
type ConversationStore interface {
	RecordChat(ctx context.Context, sessionID, userMessage, botResponse string) error
}

// Recommender ranks courses against a user profile.
type Recommender interface {
	Recommend(profile, educationLevel string, n int) ([]recommend.Recommendation, error)
}

// Service answers chat messages: it classifies intents, drives the
// recommendation funnel, and records every turn.
type Service struct {
	matcher  *Matcher
	engine   Recommender
	sessions *SessionStore
	history  ConversationStore
	log      *logger.Logger
	metrics  *metrics.Metrics
	topN     int
}

// NewService wires the chat service together.
func NewService(
	matcher *Matcher,
	engine Recommender,
	sessions *SessionStore,
	history ConversationStore,
	log *logger.Logger,
	m *metrics.Metrics,
	topN int,
) *Service {
	return &Service{
		matcher:  matcher,
		engine:   engine,
		sessions: sessions,
		history:  history,
		log:      log.WithModule("chatbot"),
		metrics:  m,
		topN:     topN,
	}
}

// Reply handles one chat turn for the session and returns the bot
// response. A session mid-funnel consumes the message as its next
// answer, except that a greeting or goodbye abandons the funnel.
func (s *Service) Reply(ctx context.Context, sessionID, userMessage string) string {
	start := time.Now()
	trimmed := strings.TrimSpace(userMessage)

	sess := s.sessions.Get(sessionID)
	sess.mu.Lock()

	var response, outcome string
	if sess.state != StateIdle {
		if intent, ok := s.matcher.Match(trimmed); ok && isResetIntent(intent.Tag) {
			sess.reset()
			response = pickResponse(intent.Responses)
			outcome = "intent"
			s.metrics.RecordIntentMatch(intent.Tag)
		} else {
			response = s.advance(sess, trimmed)
			outcome = "funnel"
		}
	} else if intent, ok := s.matcher.Match(trimmed); ok {
		response = pickResponse(intent.Responses)
		outcome = "intent"
		s.metrics.RecordIntentMatch(intent.Tag)

		switch {
		case intent.Tag == catalog.IntentRecommendation:
			sess.state = StateAwaitingInterests
		case isResetIntent(intent.Tag):
			sess.reset()
		}
	} else {
		response = fallbackResponse
		outcome = "fallback"
	}
	sess.mu.Unlock()

	s.recordTurn(ctx, sessionID, trimmed, response)
	s.metrics.RecordChatRequest(outcome, time.Since(start).Seconds())
	return response
}

// advance consumes the message as the next funnel answer and returns the
// next prompt, or the final recommendation reply. Must be called with
// the session lock held.
func (s *Service) advance(sess *Session, userMessage string) string {
	switch sess.state {
	case StateAwaitingInterests:
		sess.interests = userMessage
		sess.state = StateAwaitingEducation
		return "Great! What is your highest education level? (e.g., high school, diploma, bachelor's degree, master's, etc.)"

	case StateAwaitingEducation:
		sess.education = userMessage
		sess.state = StateAwaitingSkills
		return fmt.Sprintf("Thanks! Based on your %s, I can suggest appropriate courses. What skills do you currently have? (e.g., basic computer knowledge, some programming experience)", userMessage)

	case StateAwaitingSkills:
		sess.skills = userMessage
		sess.state = StateAwaitingQualifications
		return "Almost done! Do you have any relevant qualifications or certifications? (If none, just say 'none')"

	case StateAwaitingQualifications:
		sess.qualifications = userMessage
		return s.finishFunnel(sess)

	default:
		// Unknown state recovers as idle.
		sess.reset()
		return fallbackResponse
	}
}

// finishFunnel runs the recommendation engine over the accumulated
// answers, resets the session, and formats the reply. Must be called
// with the session lock held.
func (s *Service) finishFunnel(sess *Session) string {
	profile := sess.interests + " " + sess.skills + " " + sess.qualifications
	education := sess.education
	sess.reset()

	start := time.Now()
	recs, err := s.engine.Recommend(profile, education, s.topN)
	s.metrics.RecordRecommendDuration(time.Since(start).Seconds())
	if err != nil {
		s.log.WithError(err).Error("recommendation failed")
		return noRecommendationsResponse
	}
	if len(recs) == 0 {
		return noRecommendationsResponse
	}

	s.metrics.RecordFunnelCompletion()

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your %s education and profile, I recommend these courses:\n", education)
	for i, rec := range recs {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, rec.Title, rec.Suitability)
		fmt.Fprintf(&b, "   - Description: %s\n", rec.Description)
		fmt.Fprintf(&b, "   - Duration: %s\n", rec.Duration)
		fmt.Fprintf(&b, "   - Fee: ₹%s\n", feePrinter.Sprintf("%d", rec.Fee))
	}
	b.WriteString("\nWould you like more information about any of these courses?")
	return b.String()
}

// recordTurn appends the turn to the conversation log. Failures are
// logged and counted but never abort the reply.
func (s *Service) recordTurn(ctx context.Context, sessionID, userMessage, botResponse string) {
	if s.history == nil {
		return
	}
	if err := s.history.RecordChat(ctx, sessionID, userMessage, botResponse); err != nil {
		s.metrics.RecordStorageWriteFailure("chat_history")
		s.log.WithSession(sessionID).WithError(err).Warn("failed to record chat turn")
	}
}

func isResetIntent(tag string) bool {
	return tag == catalog.IntentGreeting || tag == catalog.IntentGoodbye
}

func pickResponse(responses []string) string {
	if len(responses) == 0 {
		return fallbackResponse
	}
	return responses[rand.Intn(len(responses))]
}
