package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token attributes shown by the session status command.
// The token is decoded without signature verification: the client has no
// signing key and never trusts these values for authorization, the backend
// does that on every request.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func ParseClaims(token string) (Claims, error) {
	var mc jwt.MapClaims = map[string]any{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, err
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
