// Package v1 provides the public HTTP API handlers.
package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/divyanshsaxena002/SkillByte/internal/assist"
	"github.com/divyanshsaxena002/SkillByte/internal/domain"
	"github.com/divyanshsaxena002/SkillByte/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers external routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Auth API
	e.POST("/v1/auth/login", h.Login)
	e.POST("/v1/auth/logout", h.Logout)

	// Feed API
	e.GET("/v1/feed", h.GetFeed)
	e.GET("/v1/feed/active", h.GetActiveVideo)
	e.POST("/v1/feed/viewport", h.PostViewportEvent)
	e.POST("/v1/videos/:video_id/like", h.LikeVideo)
	e.GET("/v1/videos/:video_id/comments", h.ListComments)
	e.POST("/v1/videos/:video_id/comments", h.AddComment)
	e.POST("/v1/videos/:video_id/watched", h.MarkWatched)

	// Assist API
	e.POST("/v1/assist/open", h.OpenAssist)
	e.POST("/v1/assist/answer", h.AnswerAssist)
	e.POST("/v1/assist/close", h.CloseAssist)
	e.GET("/v1/assist", h.GetAssist)

	// Course and discovery API
	e.GET("/v1/courses", h.ListCourses)
	e.GET("/v1/courses/:course_id", h.GetCourse)
	e.POST("/v1/courses/:course_id/select", h.SelectCourse)
	e.POST("/v1/courses/:course_id/save", h.SaveCourse)
	e.GET("/v1/discover", h.Discover)

	// Profile API
	e.GET("/v1/profile", h.GetProfile)
	e.PATCH("/v1/profile", h.UpdateProfile)
	e.GET("/v1/profile/progress", h.GetProgress)

	// Creator studio API
	e.POST("/v1/videos", h.PublishVideo)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// sessionToken extracts the session token from the Authorization header.
func sessionToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Request().Header.Get("X-Session-Token")
}

// errorJSON maps service errors to HTTP responses.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCourseNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCourseOrder):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrPublishBlocked):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, assist.ErrNotReady),
		errors.Is(err, assist.ErrInvalidOption):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
