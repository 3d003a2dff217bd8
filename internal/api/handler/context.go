package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user ID injected by the Auth
// middleware. Its presence proves the middleware ran; without it the request
// must not reach any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
