package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	clientID := "jane_doe"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Service",
			got:      Service(clientID),
			expected: "client_jane_doe",
		},
		{
			name:     "Project",
			got:      Project(clientID),
			expected: "rafi-jane_doe",
		},
		{
			name:     "WebhookPath",
			got:      WebhookPath(clientID),
			expected: "/twilio/voice/jane_doe",
		},
		{
			name:     "NumberFriendlyName",
			got:      NumberFriendlyName(clientID),
			expected: "Rafi - jane_doe",
		},
		{
			name:     "OAuthCallbackPath",
			got:      OAuthCallbackPath(clientID),
			expected: "/oauth/callback/jane_doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}

func TestClientID(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		want        string
		wantErr     bool
	}{
		{name: "simple name", displayName: "Jane Doe", want: "jane_doe"},
		{name: "already safe", displayName: "jane_doe", want: "jane_doe"},
		{name: "surrounding whitespace", displayName: "  Jane Doe ", want: "jane_doe"},
		{name: "digits allowed", displayName: "Client 42", want: "client_42"},
		{name: "empty", displayName: "", wantErr: true},
		{name: "shell metacharacters", displayName: "jane;rm -rf /", wantErr: true},
		{name: "unicode", displayName: "Jäne", wantErr: true},
		{name: "too long", displayName: string(make([]byte, 70)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClientID(tt.displayName)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestValidateClientID(t *testing.T) {
	if err := ValidateClientID("jane_doe"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateClientID("Jane Doe"); err == nil {
		t.Error("expected error for unsanitized identifier")
	}
}
