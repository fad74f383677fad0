package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `client:
  name: Jane Doe
  email: jane@example.com
telegram:
  bot_token: "123456:ABCDEF"
  user_id: 42
twilio:
  account_sid: AC123
  auth_token: secret
  phone_number: ""
elevenlabs:
  api_key: el-key
llm:
  provider: openai
  model: gpt-4o
  api_key: sk-test
google:
  client_id: test.apps.googleusercontent.com
  client_secret: gsecret
supabase:
  url: ""
  anon_key: ""
  service_role_key: ""
deepgram:
  api_key: dg-key
weather:
  api_key: w-key
settings:
  quiet_hours_start: "22:00"
  quiet_hours_end: "07:00"
  briefing_time: "08:00"
  reminder_minutes: 30
  snooze_minutes: 10
  timezone: America/New_York
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFile(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", cfg.Client.Name)
	assert.Equal(t, int64(42), cfg.Telegram.UserID)
	assert.Equal(t, "AC123", cfg.Twilio.AccountSID)
	assert.Equal(t, "America/New_York", cfg.Settings.Timezone)
	assert.Equal(t, 30, cfg.Settings.ReminderMinutes)
}

func TestLoadFileDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFile(writeConfig(t, "client:\n  name: Jane\n"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "Rafi", cfg.ElevenLabs.AgentName)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFileInvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(writeConfig(t, "client: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestSaveFileRoundTrip(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, validYAML)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	cfg.Twilio.PhoneNumber = "+12125551234"
	cfg.Supabase.URL = "https://abc123.supabase.co"
	require.NoError(t, SaveFile(cfg, path))

	reloaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "+12125551234", reloaded.Twilio.PhoneNumber)
	assert.Equal(t, "https://abc123.supabase.co", reloaded.Supabase.URL)
	assert.Equal(t, "Jane Doe", reloaded.Client.Name)
}

func TestLoadFileRejectsUnknownSections(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(writeConfig(t, `client:
  name: Jane Doe
telegramm:
  bot_token: "123456:ABCDEF"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegramm")
}

func TestLoadFileRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(writeConfig(t, `client:
  name: Jane Doe
  emial: jane@example.com
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emial")
}

func TestLoadFileEmpty(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
