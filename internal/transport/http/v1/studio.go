package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/divyanshsaxena002/SkillByte/internal/service"
)

// PublishVideo runs the creator-studio publish flow.
// POST /v1/videos
func (h *Handler) PublishVideo(c echo.Context) error {
	ctx := c.Request().Context()

	var req service.PublishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	if req.MediaRef == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "media_ref is required"})
	}

	video, err := h.service.PublishVideo(ctx, sessionToken(c), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, video)
}
