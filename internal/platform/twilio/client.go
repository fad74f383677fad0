package twilio

import "context"

// Default country for number search.
const DefaultCountry = "US"

// AvailableNumber is one candidate from a number search.
type AvailableNumber struct {
	PhoneNumber  string
	FriendlyName string
}

// IncomingNumber is a number owned by the account.
type IncomingNumber struct {
	SID         string
	PhoneNumber string
	VoiceURL    string
}

// NumberManager defines the provider surface for telephony numbers.
type NumberManager interface {
	// SearchAvailable lists purchasable voice-and-SMS-capable local numbers.
	// An empty result is not an error at this layer.
	SearchAvailable(ctx context.Context, areaCode, country string, limit int) ([]AvailableNumber, error)

	// Purchase buys a number and configures its inbound voice webhook.
	Purchase(ctx context.Context, phoneNumber, voiceURL, friendlyName string) (*IncomingNumber, error)

	// Find looks up an owned number by its E.164 value. Returns
	// ErrNumberNotFound when the account does not own it.
	Find(ctx context.Context, phoneNumber string) (*IncomingNumber, error)

	// UpdateVoiceURL re-points the inbound voice webhook of an owned number.
	UpdateVoiceURL(ctx context.Context, sid, voiceURL string) error

	// Release removes a number from the account by SID.
	Release(ctx context.Context, sid string) error
}
