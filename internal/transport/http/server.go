// Package http provides the HTTP server for the SkillByte API.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/divyanshsaxena002/SkillByte/internal/service"
	v1 "github.com/divyanshsaxena002/SkillByte/internal/transport/http/v1"
	"github.com/divyanshsaxena002/SkillByte/internal/transport/ws"
)

// NewServer creates and configures the HTTP server. It carries the REST API
// plus the WebSocket endpoint used for viewport events and assist pushes.
func NewServer(svc *service.Service, wsServer *ws.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	v1Handler := v1.NewHandler(svc)

	// Register Routes
	v1Handler.RegisterRoutes(e)
	e.GET("/ws", wsServer.HandleWebSocket)

	return e
}
