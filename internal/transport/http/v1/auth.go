package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LoginRequest is the login request body.
type LoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
}

// Login creates an app session.
// POST /v1/auth/login
func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	sess, err := h.service.Login(ctx, req.Name, req.Email, req.Provider)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": sess.Token,
		"user":  sess.User(),
	})
}

// Logout ends the app session.
// POST /v1/auth/logout
func (h *Handler) Logout(c echo.Context) error {
	if err := h.service.Logout(sessionToken(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
