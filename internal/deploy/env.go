package deploy

import (
	"strconv"

	"github.com/rafi-ai/rafi-deploy/internal/config"
)

// BuildEnv flattens the client config into the container's environment.
// The assistant runtime reads one variable per credential; OPENAI_API_KEY
// is aliased from the LLM key when the provider is openai, and the
// operator's OAUTH_ENCRYPTION_KEY passes through when set.
func BuildEnv(cfg *config.ClientConfig, settings *config.Settings) map[string]string {
	env := map[string]string{
		"TELEGRAM_BOT_TOKEN": cfg.Telegram.BotToken,
		"TELEGRAM_USER_ID":   strconv.FormatInt(cfg.Telegram.UserID, 10),

		"TWILIO_ACCOUNT_SID":  cfg.Twilio.AccountSID,
		"TWILIO_AUTH_TOKEN":   cfg.Twilio.AuthToken,
		"TWILIO_PHONE_NUMBER": cfg.Twilio.PhoneNumber,
		"CLIENT_PHONE_NUMBER": cfg.Twilio.ClientPhone,

		"ELEVENLABS_API_KEY": cfg.ElevenLabs.APIKey,

		"LLM_PROVIDER": cfg.LLM.Provider,
		"LLM_MODEL":    cfg.LLM.Model,
		"LLM_API_KEY":  cfg.LLM.APIKey,

		"GOOGLE_CLIENT_ID":     cfg.Google.ClientID,
		"GOOGLE_CLIENT_SECRET": cfg.Google.ClientSecret,

		"SUPABASE_URL":              cfg.Supabase.URL,
		"SUPABASE_ANON_KEY":         cfg.Supabase.AnonKey,
		"SUPABASE_SERVICE_ROLE_KEY": cfg.Supabase.ServiceRoleKey,

		"DEEPGRAM_API_KEY": cfg.Deepgram.APIKey,
		"WEATHER_API_KEY":  cfg.Weather.APIKey,
	}

	if cfg.LLM.Provider == "openai" {
		env["OPENAI_API_KEY"] = cfg.LLM.APIKey
	}
	if settings != nil && settings.OAuthEncryptionKey != "" {
		env["OAUTH_ENCRYPTION_KEY"] = settings.OAuthEncryptionKey
	}

	return env
}
