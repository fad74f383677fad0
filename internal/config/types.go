package config

// ClientConfig is the full per-client configuration document.
type ClientConfig struct {
	Client     ClientSection     `yaml:"client"`
	Telegram   TelegramSection   `yaml:"telegram"`
	Twilio     TwilioSection     `yaml:"twilio"`
	ElevenLabs ElevenLabsSection `yaml:"elevenlabs"`
	LLM        LLMSection        `yaml:"llm"`
	Google     GoogleSection     `yaml:"google"`
	Supabase   SupabaseSection   `yaml:"supabase"`
	Deepgram   DeepgramSection   `yaml:"deepgram"`
	Weather    WeatherSection    `yaml:"weather"`
	Settings   SettingsSection   `yaml:"settings"`
}

// ClientSection identifies the client the assistant is deployed for.
type ClientSection struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone,omitempty"`
}

// TelegramSection holds the bot credential and the single authorized user.
type TelegramSection struct {
	BotToken string `yaml:"bot_token"`
	UserID   int64  `yaml:"user_id"`
}

// TwilioSection holds telephony credentials and the provisioned number.
type TwilioSection struct {
	AccountSID  string `yaml:"account_sid"`
	AuthToken   string `yaml:"auth_token"`
	PhoneNumber string `yaml:"phone_number"`
	ClientPhone string `yaml:"client_phone,omitempty"`
}

// ElevenLabsSection holds the voice-agent credential.
type ElevenLabsSection struct {
	APIKey    string `yaml:"api_key"`
	AgentID   string `yaml:"agent_id,omitempty"`
	AgentName string `yaml:"agent_name,omitempty"`
}

// LLMSection selects the language-model provider and credential.
type LLMSection struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// GoogleSection holds the OAuth client used for Calendar and Gmail access.
type GoogleSection struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// SupabaseSection holds the managed-database project credentials.
// URL, keys, and password are filled in by provisioning.
type SupabaseSection struct {
	URL            string `yaml:"url"`
	AnonKey        string `yaml:"anon_key"`
	ServiceRoleKey string `yaml:"service_role_key"`
	DBPassword     string `yaml:"db_password,omitempty"`
}

// DeepgramSection holds the speech-to-text credential.
type DeepgramSection struct {
	APIKey string `yaml:"api_key"`
}

// WeatherSection holds the weather provider credential.
type WeatherSection struct {
	APIKey string `yaml:"api_key"`
}

// SettingsSection holds operational preferences for the assistant runtime.
type SettingsSection struct {
	QuietHoursStart string `yaml:"quiet_hours_start"`
	QuietHoursEnd   string `yaml:"quiet_hours_end"`
	BriefingTime    string `yaml:"briefing_time"`
	ReminderMinutes int    `yaml:"reminder_minutes"`
	SnoozeMinutes   int    `yaml:"snooze_minutes"`
	Timezone        string `yaml:"timezone"`
}
