package auth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

const tokenFile = "oauth.token"

// Config returns the OAuth2 configuration for the Calendar API using the
// installed-application flow. The client id and secret come from the user's
// configuration file; Google no longer ships shared CLI credentials.
func Config(clientID, clientSecret string) *oauth2.Config {
	const oob = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  oob,
		Scopes:       []string{gcal.CalendarScope},
	}
}

// AuthURL returns the URL the user must visit to authorize access.
func AuthURL(conf *oauth2.Config) string {
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// HasToken reports whether a stored token exists in dir.
func HasToken(dir string) bool {
	_, err := os.ReadFile(filepath.Join(dir, tokenFile))
	return err == nil
}

// SaveToken exchanges an authorization code and stores the resulting token
// in dir as "access refresh" on one line, readable only by the user.
func SaveToken(ctx context.Context, conf *oauth2.Config, dir, authCode string) error {
	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(filepath.Join(dir, tokenFile), []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// TokenSource returns an OAuth2 token source backed by the token stored in
// dir. The stored expiry is deliberately ancient so the first use refreshes
// the access token.
func TokenSource(ctx context.Context, conf *oauth2.Config, dir string) (oauth2.TokenSource, error) {
	slurp, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		return nil, fmt.Errorf("no valid OAuth token found")
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token is invalid: %w", err)
	}
	return ts, nil
}
