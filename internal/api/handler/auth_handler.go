package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/findly-app/lostfound-api/internal/api/metrics"
	"github.com/findly-app/lostfound-api/internal/core/ports"
)

// AuthHandler exposes account registration, login, and profile management.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns the profile plus a session token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      500   {object}  errorEnvelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return respond(c, http.StatusCreated, authData{User: result.User, Token: result.Token})
}

// Login authenticates an account and returns the profile plus a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return respond(c, http.StatusOK, authData{User: result.User, Token: result.Token})
}

// Me returns the authenticated user's profile.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successEnvelope
// @Failure      401  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

// UpdateMe applies a partial update to the authenticated user's profile.
// Fields omitted from the payload keep their stored values.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/auth/me [put]
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), userID, ports.ProfileUpdate{
		Name:                    req.Name,
		Email:                   req.Email,
		PhoneNumber:             req.PhoneNumber,
		ProfilePicture:          req.ProfilePicture,
		NotificationPreferences: req.NotificationPreferences,
	})
	if err != nil {
		return err
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("profile").Inc()
	return respond(c, http.StatusOK, user)
}

// ChangePassword replaces the account password. Existing tokens remain valid
// until they expire.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("password").Inc()
	return respondMessage(c, http.StatusOK, "password updated")
}
