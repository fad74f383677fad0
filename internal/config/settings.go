package config

import (
	"os"
	"strconv"
)

// Settings holds operator-level configuration read from the environment.
// These are the credentials of the provisioning operator, not of the
// client: provider API tokens, the operations host, and the mail
// submission account. Individual providers validate the values they need
// at construction time.
type Settings struct {
	// Telephony provider
	TwilioAccountSID  string
	TwilioAuthToken   string
	PreferredAreaCode string

	// Managed-database provider
	SupabaseAccessToken string
	SupabaseOrgID       string

	// Operations host
	OpsHost       string
	OpsUser       string
	OpsSSHKeyPath string
	OpsSSHPort    int

	// Public HTTPS base URL of the operations host, used for webhook and
	// OAuth redirect construction.
	BaseURL string

	// Mail submission
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string

	// Passed through to containers when set on the operator host.
	OAuthEncryptionKey string
}

// LoadSettings reads operator settings from the environment.
func LoadSettings() *Settings {
	s := &Settings{
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		PreferredAreaCode:   os.Getenv("TWILIO_PREFERRED_AREA_CODE"),
		SupabaseAccessToken: os.Getenv("SUPABASE_ACCESS_TOKEN"),
		SupabaseOrgID:       os.Getenv("SUPABASE_ORG_ID"),
		OpsHost:             os.Getenv("EC2_HOST"),
		OpsUser:             envOr("EC2_USER", "ubuntu"),
		OpsSSHKeyPath:       os.Getenv("EC2_SSH_KEY_PATH"),
		OpsSSHPort:          envInt("EC2_SSH_PORT", 22),
		BaseURL:             os.Getenv("EC2_BASE_URL"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            envInt("SMTP_PORT", 587),
		SMTPUsername:        os.Getenv("SMTP_USERNAME"),
		SMTPPassword:        os.Getenv("SMTP_PASSWORD"),
		SMTPFromEmail:       os.Getenv("SMTP_FROM_EMAIL"),
		OAuthEncryptionKey:  os.Getenv("OAUTH_ENCRYPTION_KEY"),
	}
	if s.SMTPFromEmail == "" {
		s.SMTPFromEmail = s.SMTPUsername
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
