package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetFeed returns the published video sequence.
// GET /v1/feed
func (h *Handler) GetFeed(c echo.Context) error {
	ctx := c.Request().Context()

	videos, err := h.service.ListFeed(ctx, sessionToken(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"videos": videos,
	})
}

// GetActiveVideo returns the session's active feed video.
// GET /v1/feed/active
func (h *Handler) GetActiveVideo(c echo.Context) error {
	ctx := c.Request().Context()

	video, err := h.service.ActiveVideo(ctx, sessionToken(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, video)
}

// ViewportEventRequest reports one feed item's visibility.
type ViewportEventRequest struct {
	Index int     `json:"index"`
	Ratio float64 `json:"ratio"`
}

// PostViewportEvent feeds a visibility event into the session's tracker.
// POST /v1/feed/viewport
func (h *Handler) PostViewportEvent(c echo.Context) error {
	var req ViewportEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	changed, err := h.service.ObserveViewport(sessionToken(c), req.Index, req.Ratio)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"active_changed": changed})
}

// LikeVideo toggles the session's like on a video.
// POST /v1/videos/:video_id/like
func (h *Handler) LikeVideo(c echo.Context) error {
	ctx := c.Request().Context()

	likes, err := h.service.LikeVideo(ctx, sessionToken(c), c.Param("video_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"likes": likes})
}

// ListComments returns the comments on a video.
// GET /v1/videos/:video_id/comments
func (h *Handler) ListComments(c echo.Context) error {
	ctx := c.Request().Context()

	comments, err := h.service.ListComments(ctx, sessionToken(c), c.Param("video_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"comments": comments,
	})
}

// AddCommentRequest is the comment post body.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// AddComment posts a comment on a video.
// POST /v1/videos/:video_id/comments
func (h *Handler) AddComment(c echo.Context) error {
	ctx := c.Request().Context()

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text is required"})
	}

	comment, err := h.service.AddComment(ctx, sessionToken(c), c.Param("video_id"), req.Text)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

// MarkWatched records a completed video.
// POST /v1/videos/:video_id/watched
func (h *Handler) MarkWatched(c echo.Context) error {
	if err := h.service.MarkWatched(sessionToken(c), c.Param("video_id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
