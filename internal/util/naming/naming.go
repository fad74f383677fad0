package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// Client identifiers may only contain lowercase alphanumerics and
// underscores, 1-64 characters. Anything else would be unsafe to embed in
// remote shell commands and provider resource names.
var clientIDPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// ClientID derives a safe client identifier from a display name.
// "Jane Doe" becomes "jane_doe". An error is returned when the result
// contains characters outside the allowed set.
func ClientID(displayName string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(displayName))
	id = strings.ReplaceAll(id, " ", "_")
	if !clientIDPattern.MatchString(id) {
		return "", fmt.Errorf("invalid client identifier %q: only lowercase alphanumerics and underscores are allowed (1-64 characters)", id)
	}
	return id, nil
}

// ValidateClientID checks an already-derived client identifier.
func ValidateClientID(id string) error {
	if !clientIDPattern.MatchString(id) {
		return fmt.Errorf("invalid client identifier %q: only lowercase alphanumerics and underscores are allowed (1-64 characters)", id)
	}
	return nil
}

// Service returns the compose service name for a client.
func Service(clientID string) string {
	return fmt.Sprintf("client_%s", clientID)
}

// Project returns the managed-database project name for a client.
func Project(clientID string) string {
	return fmt.Sprintf("rafi-%s", clientID)
}

// WebhookPath returns the inbound-call webhook path for a client.
func WebhookPath(clientID string) string {
	return fmt.Sprintf("/twilio/voice/%s", clientID)
}

// NumberFriendlyName returns the display name attached to a purchased
// phone number.
func NumberFriendlyName(clientID string) string {
	return fmt.Sprintf("Rafi - %s", clientID)
}

// OAuthCallbackPath returns the per-client OAuth redirect path on the
// operations host.
func OAuthCallbackPath(clientID string) string {
	return fmt.Sprintf("/oauth/callback/%s", clientID)
}
