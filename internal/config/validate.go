package config

import "fmt"

// Placeholder sentinels that mark a credential field as not yet provisioned.
var placeholders = map[string]bool{
	"":               true,
	"PLACEHOLDER":    true,
	"BOT_TOKEN_HERE": true,
	"AC_PLACEHOLDER": true,
}

// IsPlaceholder reports whether a credential value still needs provisioning.
func IsPlaceholder(v string) bool {
	return placeholders[v]
}

// ValidationError describes a structurally or semantically invalid client
// configuration. Validation failures abort a deploy before any external
// call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration for the fields a deployment cannot
// proceed without. Fields that provisioning fills in (twilio.phone_number,
// supabase.*) are allowed to be placeholders here.
func (c *ClientConfig) Validate() error {
	if c.Client.Name == "" {
		return &ValidationError{Field: "client.name", Reason: "client name is required"}
	}

	if IsPlaceholder(c.Telegram.BotToken) {
		return &ValidationError{
			Field:  "telegram.bot_token",
			Reason: "not set; create a Telegram bot via BotFather and add the token",
		}
	}
	if c.Telegram.UserID == 0 {
		return &ValidationError{
			Field:  "telegram.user_id",
			Reason: "not set; add the authorized Telegram user ID",
		}
	}

	if IsPlaceholder(c.LLM.APIKey) {
		return &ValidationError{Field: "llm.api_key", Reason: "not set; add your LLM API key"}
	}

	if IsPlaceholder(c.ElevenLabs.APIKey) {
		return &ValidationError{Field: "elevenlabs.api_key", Reason: "not set; add your ElevenLabs API key"}
	}

	if IsPlaceholder(c.Google.ClientID) {
		return &ValidationError{Field: "google.client_id", Reason: "not set; add your Google OAuth client ID"}
	}

	return nil
}

// NeedsPhoneNumber reports whether a telephony number must be provisioned.
func (c *ClientConfig) NeedsPhoneNumber() bool {
	return IsPlaceholder(c.Twilio.PhoneNumber)
}

// NeedsProject reports whether a database project must be provisioned.
func (c *ClientConfig) NeedsProject() bool {
	return IsPlaceholder(c.Supabase.URL)
}
