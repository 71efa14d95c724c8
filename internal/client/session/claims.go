package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the token payload issued by the server. The field names
// have no json tags server-side, so they marshal with Go's default casing.
type Claims struct {
	UserID    string `json:"UserId"`
	StudentID string `json:"StudentId"`
	Role      string `json:"Role"`
	jwt.RegisteredClaims
}

// Claims decodes the current access token without verifying its signature.
// The client has no signing secret; this is display/diagnostic data only and
// must never gate authorization.
func (s *Session) Claims() (*Claims, error) {
	if s.accessToken == "" {
		return nil, fmt.Errorf("no access token")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.accessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}
	return claims, nil
}
