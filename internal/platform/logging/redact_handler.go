package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. The HTTP middleware's RedactHeaders reads the same map.
var SensitiveHeaders = map[string]bool{
	"authorization":  true,
	"x-api-key":      true,
	"x-goog-api-key": true,
	"cookie":         true,
}

// sensitiveFields are attribute keys whose values are always masked. They
// mirror the google.auth config keys plus the usual suspects.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"access_token",
	"refresh_token",
	"client_secret",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// googleAccessTokenPattern matches OAuth access tokens issued by Google.
var googleAccessTokenPattern = regexp.MustCompile(`ya29\.[a-zA-Z0-9\-_]+`)

// googleRefreshTokenPattern matches long-lived Google refresh tokens.
var googleRefreshTokenPattern = regexp.MustCompile(`1//[a-zA-Z0-9\-_]{10,}`)

// jwtPattern matches raw JWT strings (header.payload.signature). Each segment
// must be at least 10 characters so version numbers do not match.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// newRedactAttr returns a masq ReplaceAttr function for slog.HandlerOptions.
// Known sensitive keys are masked by name; token-shaped values are masked
// wherever they show up.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+6)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("oauth_"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(googleAccessTokenPattern),
		masq.WithRegex(googleRefreshTokenPattern),
		masq.WithRegex(jwtPattern),
	)

	return masq.New(opts...)
}
