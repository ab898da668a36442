package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/divyanshsaxena002/SkillByte/internal/service"
)

// GetProfile returns the session's user and their liked videos.
// GET /v1/profile
func (h *Handler) GetProfile(c echo.Context) error {
	token := sessionToken(c)
	sess, err := h.service.Session(token)
	if err != nil {
		return errorJSON(c, err)
	}
	liked, err := h.service.LikedVideos(token)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":            sess.User(),
		"liked_video_ids": liked,
	})
}

// UpdateProfile applies a profile edit.
// PATCH /v1/profile
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req service.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	user, err := h.service.UpdateProfile(sessionToken(c), req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetProgress returns the session's progress snapshot.
// GET /v1/profile/progress
func (h *Handler) GetProgress(c echo.Context) error {
	progress, err := h.service.Progress(sessionToken(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, progress)
}
