package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ChatClaims are the claims carried by tokens the chat gateway signs on behalf
// of a chat user. Subject holds the decimal chat user id.
type ChatClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// ExternalID parses the chat user id from the subject claim
func (c *ChatClaims) ExternalID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return id, nil
}
