// Package tokens reads the claims of the session tokens handed out by the
// authentication API. Signatures are not checked: the client has no key and
// only uses the claims for display.
package tokens

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	TokenType string      `json:"token_type,omitempty"`
	UserID    json.Number `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

type Info struct {
	TokenType string
	Subject   string
	ExpiresAt time.Time
	Expired   bool
}

func Inspect(token string, now time.Time) (*Info, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithJSONNumber())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}

	info := &Info{TokenType: claims.TokenType, Subject: claims.Subject}
	if info.Subject == "" {
		info.Subject = claims.UserID.String()
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
		info.Expired = !now.Before(info.ExpiresAt)
	}
	return info, nil
}

func (info Info) String() string {
	expiry := "no expiry"
	if !info.ExpiresAt.IsZero() {
		expiry = "expires " + info.ExpiresAt.Format(time.RFC3339)
		if info.Expired {
			expiry = "expired " + info.ExpiresAt.Format(time.RFC3339)
		}
	}
	if info.Subject == "" {
		return expiry
	}
	return fmt.Sprintf("subject %s, %s", info.Subject, expiry)
}
