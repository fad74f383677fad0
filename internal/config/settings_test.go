package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettings(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("EC2_HOST", "ops.example.com")
	t.Setenv("EC2_USER", "")
	t.Setenv("EC2_SSH_PORT", "2222")
	t.Setenv("SMTP_USERNAME", "ops@example.com")
	t.Setenv("SMTP_FROM_EMAIL", "")
	t.Setenv("SMTP_PORT", "not-a-number")

	s := LoadSettings()

	assert.Equal(t, "AC123", s.TwilioAccountSID)
	assert.Equal(t, "ops.example.com", s.OpsHost)
	assert.Equal(t, "ubuntu", s.OpsUser, "EC2_USER defaults to ubuntu")
	assert.Equal(t, 2222, s.OpsSSHPort)
	assert.Equal(t, 587, s.SMTPPort, "unparsable port falls back to default")
	assert.Equal(t, "ops@example.com", s.SMTPFromEmail, "from address defaults to username")
}
