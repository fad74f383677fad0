package notify

import (
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes the assistant needs: calendar management plus reading,
// searching, and sending mail on the client's behalf.
var Scopes = []string{
	"https://www.googleapis.com/auth/calendar.events",
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/gmail.modify",
}

// AuthorizationURL builds the Google consent URL for a client.
// access_type=offline and prompt=consent force Google to issue a
// refresh token; state carries the client identifier back through the
// redirect. loginHint, when set, pre-fills the client's address in the
// Google sign-in form.
func AuthorizationURL(googleClientID, redirectURI, state, loginHint string) (string, error) {
	if googleClientID == "" {
		return "", &NotificationError{Op: "authorization URL", Err: errors.New("google client id is required")}
	}
	if redirectURI == "" {
		return "", &NotificationError{Op: "authorization URL", Err: errors.New("redirect URI is required")}
	}

	cfg := &oauth2.Config{
		ClientID:    googleClientID,
		RedirectURL: redirectURI,
		Scopes:      Scopes,
		Endpoint:    google.Endpoint,
	}

	opts := []oauth2.AuthCodeOption{
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	}
	if loginHint != "" {
		opts = append(opts, oauth2.SetAuthURLParam("login_hint", loginHint))
	}

	return cfg.AuthCodeURL(state, opts...), nil
}
