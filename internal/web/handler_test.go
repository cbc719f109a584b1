package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/itech-institute/itech-site-go/internal/catalog"
	"github.com/itech-institute/itech-site-go/internal/chatbot"
	"github.com/itech-institute/itech-site-go/internal/logger"
	"github.com/itech-institute/itech-site-go/internal/metrics"
	"github.com/itech-institute/itech-site-go/internal/ratelimit"
	"github.com/itech-institute/itech-site-go/internal/recommend"
	"github.com/itech-institute/itech-site-go/internal/storage"
)

type testEnv struct {
	router    *gin.Engine
	repo      *storage.Repository
	uploadDir string
}

func newTestEnv(t *testing.T, chatBurst float64) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("NewTestDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := storage.NewRepository(db)

	engine, err := recommend.NewEngine(catalog.Courses())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	sessions := chatbot.NewSessionStore(time.Hour, time.Hour)
	t.Cleanup(sessions.Stop)

	log := logger.NewWithWriter("error", io.Discard)
	m := metrics.New(prometheus.NewRegistry())
	chatSvc := chatbot.NewService(
		chatbot.NewMatcher(catalog.Intents(), 70), engine, sessions, repo, log, m, 3)

	limiter := ratelimit.NewPerKeyLimiter(ratelimit.PerKeyConfig{
		MaxTokens:     chatBurst,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	t.Cleanup(limiter.Stop)

	uploadDir := t.TempDir()
	h := New(Config{
		UploadDir:                 uploadDir,
		MaxUploadBytes:            8 << 20,
		AdminRegistrationPassword: "letmein",
	}, log, m, repo, chatSvc, engine, limiter, NewStaffSessionStore(time.Hour))

	router := gin.New()
	h.RegisterRoutes(router)
	return &testEnv{router: router, repo: repo, uploadDir: uploadDir}
}

// doJSON performs a JSON request, carrying over any cookies provided.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestChat_ReturnsResponse(t *testing.T) {
	env := newTestEnv(t, 10)

	rec := env.doJSON(t, http.MethodPost, "/api/chat", gin.H{"message": "hello"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["response"] == "" {
		t.Error("response must not be empty")
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("first contact must set a session cookie")
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	env := newTestEnv(t, 10)

	rec := env.doJSON(t, http.MethodPost, "/api/chat", gin.H{}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestChat_RateLimited(t *testing.T) {
	env := newTestEnv(t, 1)

	first := env.doJSON(t, http.MethodPost, "/api/chat", gin.H{"message": "hello"}, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", first.Code)
	}

	cookies := first.Result().Cookies()
	second := env.doJSON(t, http.MethodPost, "/api/chat", gin.H{"message": "hello"}, cookies)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want 429", second.Code)
	}
}

func TestChatHistory_ScopedToSession(t *testing.T) {
	env := newTestEnv(t, 10)

	first := env.doJSON(t, http.MethodPost, "/api/chat", gin.H{"message": "hello"}, nil)
	cookies := first.Result().Cookies()

	rec := env.doJSON(t, http.MethodGet, "/api/chat/history", nil, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	history, ok := body["history"].([]any)
	if !ok || len(history) != 1 {
		t.Errorf("history = %v, want one entry", body["history"])
	}

	// A different session sees no history.
	other := env.doJSON(t, http.MethodGet, "/api/chat/history", nil, nil)
	otherBody := decodeBody(t, other)
	if history, ok := otherBody["history"].([]any); ok && len(history) != 0 {
		t.Errorf("other session history = %v, want empty", otherBody["history"])
	}
}

func TestCourses_ListAndFilter(t *testing.T) {
	env := newTestEnv(t, 10)

	rec := env.doJSON(t, http.MethodGet, "/api/courses", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	all, _ := body["courses"].([]any)
	if len(all) != len(catalog.Courses()) {
		t.Errorf("len(courses) = %d, want %d", len(all), len(catalog.Courses()))
	}

	rec = env.doJSON(t, http.MethodGet, "/api/courses?q=python", nil, nil)
	body = decodeBody(t, rec)
	filtered, _ := body["courses"].([]any)
	if len(filtered) == 0 || len(filtered) >= len(all) {
		t.Errorf("filtered course count = %d, want a proper subset", len(filtered))
	}
}

func TestCourses_DetailAndSimilar(t *testing.T) {
	env := newTestEnv(t, 10)
	courseID := catalog.Courses()[0].ID

	rec := env.doJSON(t, http.MethodGet, "/api/courses/"+itoa(courseID), nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", rec.Code)
	}

	rec = env.doJSON(t, http.MethodGet, "/api/courses/"+itoa(courseID)+"/similar", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("similar status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	similar, _ := body["courses"].([]any)
	if len(similar) != 3 {
		t.Errorf("len(similar) = %d, want 3", len(similar))
	}

	rec = env.doJSON(t, http.MethodGet, "/api/courses/99999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing course status = %d, want 404", rec.Code)
	}
}

func TestEnroll(t *testing.T) {
	env := newTestEnv(t, 10)
	courseID := catalog.Courses()[0].ID

	rec := env.doJSON(t, http.MethodPost, "/api/enroll", gin.H{
		"name":      "Asha",
		"email":     "asha@example.com",
		"course_id": courseID,
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = env.doJSON(t, http.MethodPost, "/api/enroll", gin.H{
		"name":      "Asha",
		"email":     "asha@example.com",
		"course_id": 99999,
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown course status = %d, want 400", rec.Code)
	}

	rec = env.doJSON(t, http.MethodPost, "/api/enroll", gin.H{
		"name":      "Asha",
		"email":     "not-an-email",
		"course_id": courseID,
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email status = %d, want 400", rec.Code)
	}
}

func TestContact(t *testing.T) {
	env := newTestEnv(t, 10)

	rec := env.doJSON(t, http.MethodPost, "/api/contact", gin.H{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"message": "Do you offer weekend batches?",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = env.doJSON(t, http.MethodPost, "/api/contact", gin.H{"name": "Ravi"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("incomplete form status = %d, want 400", rec.Code)
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
