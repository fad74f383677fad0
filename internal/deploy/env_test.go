package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafi-ai/rafi-deploy/internal/config"
)

func TestBuildEnv(t *testing.T) {
	t.Parallel()

	cfg := &config.ClientConfig{
		Telegram: config.TelegramSection{BotToken: "tok", UserID: 42},
		Twilio:   config.TwilioSection{AccountSID: "AC1", AuthToken: "auth", PhoneNumber: "+1555", ClientPhone: "+1666"},
		LLM:      config.LLMSection{Provider: "openai", Model: "gpt-4o", APIKey: "sk-1"},
		Supabase: config.SupabaseSection{URL: "https://p.supabase.co", AnonKey: "a", ServiceRoleKey: "s"},
		Deepgram: config.DeepgramSection{APIKey: "dg"},
		Weather:  config.WeatherSection{APIKey: "w"},
	}

	t.Run("openai provider gets the alias", func(t *testing.T) {
		t.Parallel()

		env := BuildEnv(cfg, &config.Settings{})
		assert.Equal(t, "tok", env["TELEGRAM_BOT_TOKEN"])
		assert.Equal(t, "42", env["TELEGRAM_USER_ID"])
		assert.Equal(t, "sk-1", env["LLM_API_KEY"])
		assert.Equal(t, "sk-1", env["OPENAI_API_KEY"])
		assert.Equal(t, "https://p.supabase.co", env["SUPABASE_URL"])
		assert.Equal(t, "dg", env["DEEPGRAM_API_KEY"])
	})

	t.Run("other providers get no alias", func(t *testing.T) {
		t.Parallel()

		other := *cfg
		other.LLM.Provider = "anthropic"
		env := BuildEnv(&other, &config.Settings{})
		assert.NotContains(t, env, "OPENAI_API_KEY")
		assert.Equal(t, "anthropic", env["LLM_PROVIDER"])
	})

	t.Run("encryption key passes through when set", func(t *testing.T) {
		t.Parallel()

		env := BuildEnv(cfg, &config.Settings{OAuthEncryptionKey: "fernet-key"})
		assert.Equal(t, "fernet-key", env["OAUTH_ENCRYPTION_KEY"])

		env = BuildEnv(cfg, &config.Settings{})
		assert.NotContains(t, env, "OAUTH_ENCRYPTION_KEY")
	})
}
