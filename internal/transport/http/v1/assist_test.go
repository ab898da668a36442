package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

func assistState(t *testing.T, e *echo.Echo, h *Handler, token string) domain.AssistState {
	t.Helper()
	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodGet, "/v1/assist", "", token), rec)
	if err := h.GetAssist(c); err != nil {
		t.Fatalf("GetAssist error: %v", err)
	}
	var snap struct {
		State domain.AssistState `json:"state"`
	}
	json.Unmarshal(rec.Body.Bytes(), &snap)
	return snap.State
}

func waitForReady(t *testing.T, e *echo.Echo, h *Handler, token string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if assistState(t, e, h, token) == domain.AssistStateReady {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("assist never became ready")
}

func TestAssistLifecycle(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	t.Run("Open For Active Video", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/assist/open", `{}`, token), rec)

		err := h.OpenAssist(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var snap struct {
			State   domain.AssistState `json:"state"`
			VideoID string             `json:"video_id"`
		}
		json.Unmarshal(rec.Body.Bytes(), &snap)
		assert.Equal(t, domain.AssistStateOpening, snap.State)
		assert.Equal(t, "v1", snap.VideoID)
	})

	waitForReady(t, e, h, token)

	t.Run("Answer Correctly", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/assist/answer", `{"option":0}`, token), rec)

		err := h.AnswerAssist(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var snap struct {
			State  domain.AssistState `json:"state"`
			Result domain.QuizResult  `json:"result"`
		}
		json.Unmarshal(rec.Body.Bytes(), &snap)
		assert.Equal(t, domain.AssistStateAnsweredCorrect, snap.State)
		assert.Equal(t, domain.QuizResultCorrect, snap.Result)
	})

	t.Run("Close", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/assist/close", "", token), rec)

		err := h.CloseAssist(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.AssistStateClosed, assistState(t, e, h, token))
	})
}

func TestAnswerOutOfRange(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodPost, "/v1/assist/open", `{}`, token), rec)
	assert.NoError(t, h.OpenAssist(c))
	waitForReady(t, e, h, token)

	rec = httptest.NewRecorder()
	c = e.NewContext(authedRequest(http.MethodPost, "/v1/assist/answer", `{"option":9}`, token), rec)
	assert.NoError(t, h.AnswerAssist(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// State unchanged by the rejected answer.
	assert.Equal(t, domain.AssistStateReady, assistState(t, e, h, token))
}

func TestAnswerBeforeOpen(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodPost, "/v1/assist/answer", `{"option":0}`, token), rec)
	assert.NoError(t, h.AnswerAssist(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOpenAssistUnknownVideo(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(http.MethodPost, "/v1/assist/open", `{"video_id":"nope"}`, token), rec)
	assert.NoError(t, h.OpenAssist(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
