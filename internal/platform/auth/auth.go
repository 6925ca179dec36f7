// Package auth supplies OAuth2 bearer tokens for the Google API clients.
//
//	ts, err := auth.NewTokenSource(ctx, cfg.Google.Auth)
//	rt := auth.Transport(ts, nil)
//	drive := httpclient.New(&cfg.Clients.Drive, "drive-api", metrics, logger,
//	    httpclient.WithTransport(rt))
package auth

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/jsamuelsen11/docseed/internal/platform/config"
)

// ErrNoCredentials is returned when neither a refresh token nor an access
// token is configured.
var ErrNoCredentials = errors.New("no google credentials configured: set google.auth.refresh_token or google.auth.access_token")

// NewTokenSource picks the token strategy from cfg. A refresh token wins over
// a static access token. The returned source caches tokens until they expire.
func NewTokenSource(ctx context.Context, cfg config.GoogleAuthConfig) (oauth2.TokenSource, error) {
	switch {
	case cfg.RefreshToken != "":
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		}
		return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}), nil
	case cfg.AccessToken != "":
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		}), nil
	default:
		return nil, ErrNoCredentials
	}
}

// Transport returns a RoundTripper that sets the Authorization header from
// ts. A nil base uses http.DefaultTransport.
func Transport(ts oauth2.TokenSource, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &oauth2.Transport{Source: ts, Base: base}
}
