package handler

import "github.com/labstack/echo/v4"

// successEnvelope is the canonical success shape; errors are rendered by the
// central HTTP error handler with the matching {"success":false,...} shape.
type successEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, successEnvelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, msg string) error {
	return c.JSON(status, successEnvelope{Success: true, Message: msg})
}
