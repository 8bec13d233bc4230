package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// IsAuthenticated reports whether the store holds an access token whose exp
// claim is strictly in the future. The client has no signing key, so the
// claim is decoded without signature verification; the server remains the
// authority on whether the token is actually accepted.
//
// A token that is missing, expired, undecodable, or has no exp claim counts
// as no session, and both tokens are cleared so later checks start clean.
func IsAuthenticated(store Store) bool {
	token := store.Access()
	if token == "" {
		return false
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		_ = store.Clear()
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		_ = store.Clear()
		return false
	}

	if !timeNow().Before(exp.Time) {
		_ = store.Clear()
		return false
	}
	return true
}
