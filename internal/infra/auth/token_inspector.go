// Package auth provides client-side handling of the bearer credential. The
// token stays opaque for authentication purposes; this package only reads
// claims out of it, without signature verification, for display.
package auth

import (
	"orchid/internal/domain/entity"
	"orchid/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// InspectToken decodes the claims of a JWT-shaped bearer token without
// verifying its signature. The backend is the only party that validates
// tokens; the client uses this for best-effort display (subject, expiry).
func InspectToken(tokenString string) (*entity.TokenInfo, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "token is not inspectable")
	}

	info := &entity.TokenInfo{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Unix()
	}
	if rolesClaim, ok := claims["roles"].([]any); ok {
		for _, r := range rolesClaim {
			if role, ok := r.(string); ok {
				info.Roles = append(info.Roles, role)
			}
		}
	}

	return info, nil
}
