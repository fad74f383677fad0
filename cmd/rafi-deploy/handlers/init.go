package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rafi-ai/rafi-deploy/internal/config"
	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive config wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.SaveFile
)

var (
	initTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f9fafb"))

	initDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	initValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22c55e"))
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("rafi-deploy - Personal Assistant Provisioning")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("This wizard creates a client configuration with sensible defaults.")
	fmt.Println("Fields it does not ask about are written as placeholders.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.ClientConfig) {
	clientID, err := naming.ClientID(cfg.Client.Name)
	if err != nil {
		clientID = "(invalid)"
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(initTitleStyle.Render("  Configuration saved"))
	b.WriteString("\n")
	b.WriteString(initDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	writeSummaryLine(&b, "File", outputPath)
	writeSummaryLine(&b, "Client", cfg.Client.Name)
	writeSummaryLine(&b, "Identifier", clientID)
	writeSummaryLine(&b, "LLM", fmt.Sprintf("%s (%s)", cfg.LLM.Provider, cfg.LLM.Model))
	if cfg.Client.Email != "" {
		writeSummaryLine(&b, "Email", cfg.Client.Email)
	}

	fmt.Print(b.String())

	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s and replace any placeholder values\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Set the operator environment:")
	fmt.Println("     export TWILIO_ACCOUNT_SID=... TWILIO_AUTH_TOKEN=...")
	fmt.Println("     export SUPABASE_ACCESS_TOKEN=... SUPABASE_ORG_ID=...")
	fmt.Println("     export EC2_HOST=... EC2_SSH_KEY_PATH=... EC2_BASE_URL=...")
	fmt.Println()
	fmt.Println("  3. Deploy the assistant:")
	fmt.Printf("     rafi-deploy deploy -c %s\n", outputPath)
	fmt.Println()
}

func writeSummaryLine(b *strings.Builder, label, value string) {
	b.WriteString(initDimStyle.Render(fmt.Sprintf("  %-11s", label+":")))
	b.WriteString(" ")
	b.WriteString(initValueStyle.Render(value))
	b.WriteString("\n")
}
