package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

func TestPublishVideo(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	token := loginToken(t, e, h)

	t.Run("Allow Clean Submission", func(t *testing.T) {
		body := `{"title":"Flexbox tricks","description":"Layout tips","category":"Technology","tags":["css"],"media_ref":"blob:clip"}`
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/videos", body, token), rec)

		err := h.PublishVideo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var video domain.Video
		json.Unmarshal(rec.Body.Bytes(), &video)
		assert.Equal(t, domain.VideoStatusPublished, video.Status)
		assert.NotEmpty(t, video.VideoID)
	})

	t.Run("Block Banned Tag", func(t *testing.T) {
		body := `{"title":"Get rich quick","category":"Business","tags":["spam"],"media_ref":"blob:clip"}`
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/videos", body, token), rec)

		err := h.PublishVideo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Review Bare Submission", func(t *testing.T) {
		body := `{"title":"Mystery clip","category":"Lifestyle","media_ref":"blob:clip"}`
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/videos", body, token), rec)

		err := h.PublishVideo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var video domain.Video
		json.Unmarshal(rec.Body.Bytes(), &video)
		assert.Equal(t, domain.VideoStatusInReview, video.Status)
	})

	t.Run("Unknown Course", func(t *testing.T) {
		body := `{"title":"Orphan lesson","description":"No home","category":"Technology","media_ref":"blob:clip","course_id":"course_missing","order_in_course":1}`
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/videos", body, token), rec)

		err := h.PublishVideo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Order Beyond Course Total", func(t *testing.T) {
		body := `{"title":"Misplaced lesson","description":"Wrong slot","category":"Technology","media_ref":"blob:clip","course_id":"course1","order_in_course":99}`
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/videos", body, token), rec)

		err := h.PublishVideo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing Title", func(t *testing.T) {
		body := `{"media_ref":"blob:clip","category":"Technology"}`
		rec := httptest.NewRecorder()
		c := e.NewContext(authedRequest(http.MethodPost, "/v1/videos", body, token), rec)

		err := h.PublishVideo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
