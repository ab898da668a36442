package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/divyanshsaxena002/SkillByte/internal/adapter/genai"
	"github.com/divyanshsaxena002/SkillByte/internal/adapter/media"
	"github.com/divyanshsaxena002/SkillByte/internal/config"
	"github.com/divyanshsaxena002/SkillByte/internal/service"
	"github.com/divyanshsaxena002/SkillByte/policy"
	"github.com/divyanshsaxena002/SkillByte/tests/helpers"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	db := helpers.NewTestSQLiteStore(t)
	policyEngine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	cfg := &config.Config{MockDelay: 0, InitialXP: 1250}
	svc := service.New(db, genai.NewMockClient(), policyEngine, media.NewPassthrough(0), cfg)
	return NewHandler(svc)
}

// loginToken drives the login handler and returns the session token.
func loginToken(t *testing.T, e *echo.Echo, h *Handler) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"name":"Alex Learner"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("empty token in response: %s", rec.Body.String())
	}
	return resp.Token
}

func authedRequest(method, path, body, token string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestGetFeedRequiresSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetFeed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetFeed(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodGet, "/v1/feed", "", token), rec)

	if err := h.GetFeed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Videos []json.RawMessage `json:"videos"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(resp.Videos) == 0 {
		t.Fatalf("expected seeded feed")
	}
}

func TestViewportEventAndActive(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodPost, "/v1/feed/viewport", `{"index":2,"ratio":0.75}`, token), rec)
	if err := h.PostViewportEvent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]bool
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp["active_changed"] {
		t.Fatalf("expected active_changed true: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(authedRequest(http.MethodGet, "/v1/feed/active", "", token), rec)
	if err := h.GetActiveVideo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestViewportEventBelowThreshold(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodPost, "/v1/feed/viewport", `{"index":2,"ratio":0.5}`, token), rec)
	if err := h.PostViewportEvent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]bool
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["active_changed"] {
		t.Fatalf("sub-threshold event should not change the active video")
	}
}

func TestLikeVideoHandler(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodPost, "/v1/videos/v1/like", "", token), rec)
	c.SetPath("/v1/videos/:video_id/like")
	c.SetParamNames("video_id")
	c.SetParamValues("v1")

	if err := h.LikeVideo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetProgress(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodGet, "/v1/profile/progress", "", token), rec)
	if err := h.GetProgress(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		XP int `json:"xp"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.XP != 1250 {
		t.Fatalf("expected initial XP 1250, got %d", resp.XP)
	}
}
