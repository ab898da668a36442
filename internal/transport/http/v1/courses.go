package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// ListCourses returns all courses in the catalog.
// GET /v1/courses
func (h *Handler) ListCourses(c echo.Context) error {
	ctx := c.Request().Context()

	courses, err := h.service.ListCourses(ctx, sessionToken(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"courses": courses,
	})
}

// GetCourse returns one course with its videos in course order.
// GET /v1/courses/:course_id
func (h *Handler) GetCourse(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.service.GetCourseDetail(ctx, sessionToken(c), c.Param("course_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// SelectCourse records the session's currently open course.
// POST /v1/courses/:course_id/select
func (h *Handler) SelectCourse(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.service.SelectCourse(ctx, sessionToken(c), c.Param("course_id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// SaveCourse toggles the session's saved state for a course.
// POST /v1/courses/:course_id/save
func (h *Handler) SaveCourse(c echo.Context) error {
	ctx := c.Request().Context()

	saved, err := h.service.SaveCourse(ctx, sessionToken(c), c.Param("course_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"saved": saved})
}

// Discover returns videos filtered by category and/or free-text query.
// GET /v1/discover?category=...&q=...
func (h *Handler) Discover(c echo.Context) error {
	ctx := c.Request().Context()

	category := domain.Category(c.QueryParam("category"))
	query := c.QueryParam("q")

	videos, err := h.service.Discover(ctx, sessionToken(c), category, query)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"videos": videos,
	})
}
