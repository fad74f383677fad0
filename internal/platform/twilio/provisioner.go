package twilio

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

// Provisioner acquires and releases phone numbers for clients. All
// webhook URLs are derived from the configured public base URL.
type Provisioner struct {
	numbers NumberManager
	baseURL string
}

// NewProvisioner creates a Provisioner using the given number manager
// and the public base URL that receives voice webhooks.
func NewProvisioner(numbers NumberManager, baseURL string) *Provisioner {
	return &Provisioner{
		numbers: numbers,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Provision searches for an available local number (optionally in the
// given area code), purchases the first match, and points its voice
// webhook at this client's endpoint. Returns the purchased number in
// E.164 form.
func (p *Provisioner) Provision(ctx context.Context, clientID, areaCode string) (string, error) {
	available, err := p.numbers.SearchAvailable(ctx, areaCode, DefaultCountry, 1)
	if err != nil {
		return "", fmt.Errorf("searching available numbers: %w", err)
	}
	if len(available) == 0 {
		return "", ErrNoNumbersAvailable
	}

	purchased, err := p.numbers.Purchase(ctx,
		available[0].PhoneNumber,
		p.webhookURL(clientID),
		naming.NumberFriendlyName(clientID),
	)
	if err != nil {
		return "", fmt.Errorf("purchasing %s: %w", available[0].PhoneNumber, err)
	}
	return purchased.PhoneNumber, nil
}

// UpdateWebhook re-points the voice webhook of an already-owned number,
// used when the public base URL changes.
func (p *Provisioner) UpdateWebhook(ctx context.Context, clientID, phoneNumber string) error {
	number, err := p.numbers.Find(ctx, phoneNumber)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", phoneNumber, err)
	}
	if err := p.numbers.UpdateVoiceURL(ctx, number.SID, p.webhookURL(clientID)); err != nil {
		return fmt.Errorf("updating voice webhook for %s: %w", phoneNumber, err)
	}
	return nil
}

// Release returns a purchased number to the provider. The number is
// looked up by its E.164 value first; releasing a number the account
// does not own fails with ErrNumberNotFound.
func (p *Provisioner) Release(ctx context.Context, phoneNumber string) error {
	number, err := p.numbers.Find(ctx, phoneNumber)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", phoneNumber, err)
	}
	if err := p.numbers.Release(ctx, number.SID); err != nil {
		return fmt.Errorf("releasing %s: %w", phoneNumber, err)
	}
	return nil
}

// Search lists available numbers without purchasing, for interactive use.
func (p *Provisioner) Search(ctx context.Context, areaCode string, limit int) ([]AvailableNumber, error) {
	return p.numbers.SearchAvailable(ctx, areaCode, DefaultCountry, limit)
}

func (p *Provisioner) webhookURL(clientID string) string {
	return p.baseURL + naming.WebhookPath(clientID)
}
