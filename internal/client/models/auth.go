// Package models defines the client-side data structures exchanged with the
// library-management REST service.
package models

// TokenPair is the access/refresh token pair issued on login and refresh.
// The two tokens travel together: the client never persists one without the
// other.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Identity is the authenticated user's view used by the rest of the
// application. It is derived from the access token's claims and is never
// persisted.
type Identity struct {
	ID       int64
	Username string
	Role     string
	Email    string
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ConfirmRegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	VerifyCode string `json:"verifyCode"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type ConfirmPasswordResetRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
	VerifyCode  string `json:"verifyCode"`
}
