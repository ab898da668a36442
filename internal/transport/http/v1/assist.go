package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AssistOpenRequest opens the assist panel. An empty video_id targets the
// currently active feed video.
type AssistOpenRequest struct {
	VideoID string `json:"video_id"`
}

// OpenAssist opens the assist panel and starts the fetches.
// POST /v1/assist/open
func (h *Handler) OpenAssist(c echo.Context) error {
	ctx := c.Request().Context()

	var req AssistOpenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	snap, err := h.service.OpenAssist(ctx, sessionToken(c), req.VideoID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// AssistAnswerRequest submits a quiz answer.
type AssistAnswerRequest struct {
	Option int `json:"option"`
}

// AnswerAssist submits a quiz answer.
// POST /v1/assist/answer
func (h *Handler) AnswerAssist(c echo.Context) error {
	var req AssistAnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	snap, err := h.service.AnswerAssist(sessionToken(c), req.Option)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// CloseAssist closes the assist panel.
// POST /v1/assist/close
func (h *Handler) CloseAssist(c echo.Context) error {
	if err := h.service.CloseAssist(sessionToken(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// GetAssist returns the current assist state.
// GET /v1/assist
func (h *Handler) GetAssist(c echo.Context) error {
	snap, err := h.service.AssistSnapshot(sessionToken(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}
