package api

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

// UserInfo describes the bearer of an API token.
type UserInfo struct {
	User      string
	ExpiresAt time.Time
	Scopes    []string
}

func (u UserInfo) Expired() bool {
	return !u.ExpiresAt.IsZero() && time.Now().After(u.ExpiresAt)
}

// ParseToken extracts the claims carried by a JWT without verifying the
// signature. Verification happens server side; the client only needs to
// inspect expiry and scopes for nicer error messages.
func ParseToken(tokenString string) (UserInfo, error) {
	var info UserInfo

	parser := jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return info, errors.Wrap(err, "failed to parse token")
	}

	if sub, ok := claims["sub"].(string); ok {
		info.User = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		info.ExpiresAt = time.Unix(int64(exp), 0)
	}
	switch scopes := claims["scopes"].(type) {
	case string:
		info.Scopes = []string{scopes}
	case []interface{}:
		for _, s := range scopes {
			if str, ok := s.(string); ok {
				info.Scopes = append(info.Scopes, str)
			}
		}
	}

	return info, nil
}
