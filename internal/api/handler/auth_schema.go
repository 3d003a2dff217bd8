package handler

import "github.com/findly-app/lostfound-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest carries the mutable profile fields. Pointer fields
// distinguish "not sent" (leave unchanged) from an explicit value.
type updateProfileRequest struct {
	Name                    *string                         `json:"name"`
	Email                   *string                         `json:"email" validate:"omitempty,email"`
	PhoneNumber             *string                         `json:"phone_number"`
	ProfilePicture          *string                         `json:"profile_picture"`
	NotificationPreferences *domain.NotificationPreferences `json:"notification_preferences"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

// authData flattens the profile projection and the session token into the
// data object of the response envelope.
type authData struct {
	*domain.User
	Token string `json:"token"`
}
