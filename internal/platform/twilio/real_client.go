package twilio

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// RealClient implements NumberManager using the Twilio REST API.
type RealClient struct {
	api *openapi.ApiService
}

// NewRealClient creates a RealClient from account credentials.
func NewRealClient(accountSID, authToken string) (*RealClient, error) {
	if accountSID == "" {
		return nil, fmt.Errorf("twilio account SID is required")
	}
	if authToken == "" {
		return nil, fmt.Errorf("twilio auth token is required")
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &RealClient{api: rest.Api}, nil
}

// SearchAvailable implements NumberManager.
func (c *RealClient) SearchAvailable(ctx context.Context, areaCode, country string, limit int) ([]AvailableNumber, error) {
	if country == "" {
		country = DefaultCountry
	}

	params := &openapi.ListAvailablePhoneNumberLocalParams{}
	params.SetVoiceEnabled(true)
	params.SetSmsEnabled(true)
	params.SetLimit(limit)
	if areaCode != "" {
		code, err := strconv.Atoi(areaCode)
		if err != nil {
			return nil, &ProvisioningError{Op: "search", Err: fmt.Errorf("invalid area code %q: %w", areaCode, err)}
		}
		params.SetAreaCode(code)
	}

	candidates, err := c.api.ListAvailablePhoneNumberLocal(country, params)
	if err != nil {
		return nil, wrapRestError("search", err)
	}

	results := make([]AvailableNumber, 0, len(candidates))
	for _, n := range candidates {
		results = append(results, AvailableNumber{
			PhoneNumber:  deref(n.PhoneNumber),
			FriendlyName: deref(n.FriendlyName),
		})
	}
	return results, nil
}

// Purchase implements NumberManager.
func (c *RealClient) Purchase(ctx context.Context, phoneNumber, voiceURL, friendlyName string) (*IncomingNumber, error) {
	params := &openapi.CreateIncomingPhoneNumberParams{}
	params.SetPhoneNumber(phoneNumber)
	params.SetVoiceUrl(voiceURL)
	params.SetVoiceMethod("POST")
	params.SetFriendlyName(friendlyName)

	purchased, err := c.api.CreateIncomingPhoneNumber(params)
	if err != nil {
		return nil, wrapRestError("purchase", err)
	}

	return &IncomingNumber{
		SID:         deref(purchased.Sid),
		PhoneNumber: deref(purchased.PhoneNumber),
		VoiceURL:    deref(purchased.VoiceUrl),
	}, nil
}

// Find implements NumberManager.
func (c *RealClient) Find(ctx context.Context, phoneNumber string) (*IncomingNumber, error) {
	params := &openapi.ListIncomingPhoneNumberParams{}
	params.SetPhoneNumber(phoneNumber)
	params.SetLimit(1)

	owned, err := c.api.ListIncomingPhoneNumber(params)
	if err != nil {
		return nil, wrapRestError("lookup", err)
	}
	if len(owned) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNumberNotFound, phoneNumber)
	}

	return &IncomingNumber{
		SID:         deref(owned[0].Sid),
		PhoneNumber: deref(owned[0].PhoneNumber),
		VoiceURL:    deref(owned[0].VoiceUrl),
	}, nil
}

// UpdateVoiceURL implements NumberManager.
func (c *RealClient) UpdateVoiceURL(ctx context.Context, sid, voiceURL string) error {
	params := &openapi.UpdateIncomingPhoneNumberParams{}
	params.SetVoiceUrl(voiceURL)
	params.SetVoiceMethod("POST")

	if _, err := c.api.UpdateIncomingPhoneNumber(sid, params); err != nil {
		return wrapRestError("webhook update", err)
	}
	return nil
}

// Release implements NumberManager.
func (c *RealClient) Release(ctx context.Context, sid string) error {
	if err := c.api.DeleteIncomingPhoneNumber(sid, &openapi.DeleteIncomingPhoneNumberParams{}); err != nil {
		return wrapRestError("release", err)
	}
	return nil
}

// wrapRestError converts a Twilio SDK error into a ProvisioningError,
// preserving the provider's HTTP status when present.
func wrapRestError(op string, err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		return &ProvisioningError{Op: op, StatusCode: restErr.Status, Err: err}
	}
	return &ProvisioningError{Op: op, Err: err}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
