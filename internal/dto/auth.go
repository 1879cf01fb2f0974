package dto

import "time"

// DevTokenRequest asks for a bearer token on behalf of a chat user
type DevTokenRequest struct {
	ExternalID int64  `json:"external_id" validate:"required,gt=0"`
	Username   string `json:"username" validate:"omitempty,max=255"`
}

// TokenResponse contains a bearer token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
