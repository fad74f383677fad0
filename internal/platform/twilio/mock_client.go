package twilio

import "context"

// MockClient is a mock implementation of NumberManager.
// Unset funcs return sensible defaults.
type MockClient struct {
	SearchAvailableFunc func(ctx context.Context, areaCode, country string, limit int) ([]AvailableNumber, error)
	PurchaseFunc        func(ctx context.Context, phoneNumber, voiceURL, friendlyName string) (*IncomingNumber, error)
	FindFunc            func(ctx context.Context, phoneNumber string) (*IncomingNumber, error)
	UpdateVoiceURLFunc  func(ctx context.Context, sid, voiceURL string) error
	ReleaseFunc         func(ctx context.Context, sid string) error

	// ReleasedSIDs records every SID passed to Release.
	ReleasedSIDs []string
}

// SearchAvailable implements NumberManager.
func (m *MockClient) SearchAvailable(ctx context.Context, areaCode, country string, limit int) ([]AvailableNumber, error) {
	if m.SearchAvailableFunc != nil {
		return m.SearchAvailableFunc(ctx, areaCode, country, limit)
	}
	return []AvailableNumber{{PhoneNumber: "+12125551234", FriendlyName: "(212) 555-1234"}}, nil
}

// Purchase implements NumberManager.
func (m *MockClient) Purchase(ctx context.Context, phoneNumber, voiceURL, friendlyName string) (*IncomingNumber, error) {
	if m.PurchaseFunc != nil {
		return m.PurchaseFunc(ctx, phoneNumber, voiceURL, friendlyName)
	}
	return &IncomingNumber{SID: "PN-mock", PhoneNumber: phoneNumber, VoiceURL: voiceURL}, nil
}

// Find implements NumberManager.
func (m *MockClient) Find(ctx context.Context, phoneNumber string) (*IncomingNumber, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, phoneNumber)
	}
	return &IncomingNumber{SID: "PN-mock", PhoneNumber: phoneNumber}, nil
}

// UpdateVoiceURL implements NumberManager.
func (m *MockClient) UpdateVoiceURL(ctx context.Context, sid, voiceURL string) error {
	if m.UpdateVoiceURLFunc != nil {
		return m.UpdateVoiceURLFunc(ctx, sid, voiceURL)
	}
	return nil
}

// Release implements NumberManager.
func (m *MockClient) Release(ctx context.Context, sid string) error {
	m.ReleasedSIDs = append(m.ReleasedSIDs, sid)
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, sid)
	}
	return nil
}
