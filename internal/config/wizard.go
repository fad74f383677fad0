package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

// WizardResult holds the user's choices from the config wizard.
type WizardResult struct {
	ClientName     string
	ClientEmail    string
	BotToken       string
	TelegramUserID string
	LLMProvider    string
	LLMKey         string
	ElevenLabsKey  string
	GoogleClientID string
	GoogleSecret   string
	Timezone       string
}

// RunWizard runs the interactive config scaffold. Fields the wizard does
// not ask about (deepgram, weather, quiet hours) are written as
// placeholders for the operator to fill in.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		LLMProvider: "openai",
		Timezone:    "America/New_York",
	}

	form := huh.NewForm(
		// Client identity
		huh.NewGroup(
			huh.NewInput().
				Title("Client name").
				Description("Display name; the identifier is derived from it").
				Placeholder("Jane Doe").
				Value(&result.ClientName).
				Validate(validateWizardName),

			huh.NewInput().
				Title("Client email").
				Description("Where the authorization link is sent. Leave empty to skip.").
				Placeholder("jane@example.com").
				Value(&result.ClientEmail),
		),

		// Messaging channel
		huh.NewGroup(
			huh.NewInput().
				Title("Telegram bot token").
				Description("Create a bot via BotFather").
				Value(&result.BotToken),

			huh.NewInput().
				Title("Authorized Telegram user ID").
				Value(&result.TelegramUserID).
				Validate(validateWizardUserID),
		),

		// Model and voice credentials
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("LLM provider").
				Options(
					huh.NewOption("OpenAI", "openai"),
					huh.NewOption("Anthropic", "anthropic"),
					huh.NewOption("Groq", "groq"),
					huh.NewOption("Gemini", "gemini"),
				).
				Value(&result.LLMProvider),

			huh.NewInput().
				Title("LLM API key").
				EchoMode(huh.EchoModePassword).
				Value(&result.LLMKey),

			huh.NewInput().
				Title("ElevenLabs API key").
				EchoMode(huh.EchoModePassword).
				Value(&result.ElevenLabsKey),
		),

		// OAuth client
		huh.NewGroup(
			huh.NewInput().
				Title("Google OAuth client ID").
				Value(&result.GoogleClientID),

			huh.NewInput().
				Title("Google OAuth client secret").
				EchoMode(huh.EchoModePassword).
				Value(&result.GoogleSecret),
		),

		// Locale
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Description("IANA name, e.g. America/New_York").
				Value(&result.Timezone),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result into a client config. All sections
// are populated so the output YAML is explicit and self-documenting.
func (r *WizardResult) ToConfig() *ClientConfig {
	userID, _ := strconv.ParseInt(r.TelegramUserID, 10, 64)

	return &ClientConfig{
		Client:   ClientSection{Name: r.ClientName, Email: r.ClientEmail},
		Telegram: TelegramSection{BotToken: r.BotToken, UserID: userID},
		Twilio: TwilioSection{
			AccountSID:  "AC_PLACEHOLDER",
			AuthToken:   "PLACEHOLDER",
			PhoneNumber: "",
		},
		ElevenLabs: ElevenLabsSection{APIKey: r.ElevenLabsKey, AgentName: "Rafi"},
		LLM:        LLMSection{Provider: r.LLMProvider, Model: defaultModel(r.LLMProvider), APIKey: r.LLMKey},
		Google:     GoogleSection{ClientID: r.GoogleClientID, ClientSecret: r.GoogleSecret},
		Supabase:   SupabaseSection{},
		Deepgram:   DeepgramSection{APIKey: "PLACEHOLDER"},
		Weather:    WeatherSection{APIKey: "PLACEHOLDER"},
		Settings: SettingsSection{
			QuietHoursStart: "22:00",
			QuietHoursEnd:   "07:00",
			BriefingTime:    "08:00",
			ReminderMinutes: 30,
			SnoozeMinutes:   10,
			Timezone:        r.Timezone,
		},
	}
}

func defaultModel(provider string) string {
	switch provider {
	case "anthropic":
		return "claude-sonnet-4-5"
	case "groq":
		return "llama-3.3-70b-versatile"
	case "gemini":
		return "gemini-2.0-flash"
	default:
		return "gpt-4o"
	}
}

func validateWizardName(name string) error {
	if name == "" {
		return fmt.Errorf("client name is required")
	}
	_, err := naming.ClientID(name)
	return err
}

func validateWizardUserID(v string) error {
	if v == "" {
		return fmt.Errorf("user ID is required")
	}
	if _, err := strconv.ParseInt(v, 10, 64); err != nil {
		return fmt.Errorf("user ID must be numeric")
	}
	return nil
}
