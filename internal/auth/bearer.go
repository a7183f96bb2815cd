// Package auth extracts per-request bearer credentials.
package auth

import (
	"errors"
	"net/http"
	"strings"
)

// ErrNoToken indicates the request carried no usable access token.
var ErrNoToken = errors.New("no valid access token provided")

const bearerPrefix = "Bearer "

// BearerToken returns the access token carried in the Authorization header.
// The header must use the Bearer scheme; anything else fails with ErrNoToken.
func BearerToken(h http.Header) (string, error) {
	raw := h.Get("Authorization")
	if !strings.HasPrefix(raw, bearerPrefix) {
		return "", ErrNoToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
	if token == "" {
		return "", ErrNoToken
	}

	return token, nil
}

// Mask hides all but the last 4 characters of a token for logging.
func Mask(s string) string {
	rs := []rune(s)
	for i := 0; i < len(rs)-4; i++ {
		rs[i] = 'X'
	}
	return string(rs)
}
