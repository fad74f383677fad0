package notify

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestAuthorizationURL(t *testing.T) {
	t.Parallel()

	t.Run("carries all parameters", func(t *testing.T) {
		t.Parallel()

		raw, err := AuthorizationURL("client-id-123", "https://rafi.example.com/oauth/callback/jane_doe",
			"jane_doe", "jane@example.com")
		require.NoError(t, err)

		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		q := parsed.Query()

		assert.Equal(t, "client-id-123", q.Get("client_id"))
		assert.Equal(t, "https://rafi.example.com/oauth/callback/jane_doe", q.Get("redirect_uri"))
		assert.Equal(t, "code", q.Get("response_type"))
		assert.Equal(t, "offline", q.Get("access_type"))
		assert.Equal(t, "consent", q.Get("prompt"))
		assert.Equal(t, "jane_doe", q.Get("state"))
		assert.Equal(t, "jane@example.com", q.Get("login_hint"))

		scope := q.Get("scope")
		for _, s := range Scopes {
			assert.Contains(t, scope, s)
		}
	})

	t.Run("login hint is optional", func(t *testing.T) {
		t.Parallel()

		raw, err := AuthorizationURL("client-id-123", "https://rafi.example.com/cb", "jane_doe", "")
		require.NoError(t, err)

		parsed, err := url.Parse(raw)
		require.NoError(t, err)
		assert.False(t, parsed.Query().Has("login_hint"))
	})

	t.Run("missing client id", func(t *testing.T) {
		t.Parallel()

		_, err := AuthorizationURL("", "https://rafi.example.com/cb", "jane_doe", "")
		var notifErr *NotificationError
		assert.ErrorAs(t, err, &notifErr)
	})

	t.Run("missing redirect URI", func(t *testing.T) {
		t.Parallel()

		_, err := AuthorizationURL("client-id-123", "", "jane_doe", "")
		assert.Error(t, err)
	})
}

func TestSenderSend(t *testing.T) {
	t.Parallel()

	newTestSender := func(deliver func(ctx context.Context, msg *mail.Msg) error) *Sender {
		s := NewSender(SMTPConfig{
			Host:     "smtp.example.com",
			Port:     587,
			Username: "ops@example.com",
			Password: "secret",
			From:     "ops@example.com",
		})
		s.deliver = deliver
		return s
	}

	t.Run("delivers multipart message", func(t *testing.T) {
		t.Parallel()

		var delivered *mail.Msg
		s := newTestSender(func(_ context.Context, msg *mail.Msg) error {
			delivered = msg
			return nil
		})

		err := s.Send(context.Background(), "jane@example.com",
			"https://accounts.google.com/o/oauth2/auth?x=1", "Jane Doe", "Rafi")
		require.NoError(t, err)
		require.NotNil(t, delivered)

		var rendered strings.Builder
		_, err = delivered.WriteTo(&rendered)
		require.NoError(t, err)
		out := rendered.String()

		assert.Contains(t, out, "To: jane@example.com")
		assert.Contains(t, out, "Authorize Google Access for Your Rafi Assistant")
		assert.Contains(t, out, "Hello Jane Doe")
	})

	t.Run("delivery failure wraps as NotificationError", func(t *testing.T) {
		t.Parallel()

		s := newTestSender(func(_ context.Context, _ *mail.Msg) error {
			return errors.New("535 authentication failed")
		})

		err := s.Send(context.Background(), "jane@example.com", "https://example.com/auth", "Jane", "Rafi")
		var notifErr *NotificationError
		require.ErrorAs(t, err, &notifErr)
		assert.Contains(t, notifErr.Error(), "authentication failed")
	})

	t.Run("missing recipient", func(t *testing.T) {
		t.Parallel()

		s := newTestSender(func(_ context.Context, _ *mail.Msg) error { return nil })
		err := s.Send(context.Background(), "", "https://example.com/auth", "Jane", "Rafi")
		assert.Error(t, err)
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		s := newTestSender(func(_ context.Context, _ *mail.Msg) error { return nil })
		err := s.Send(context.Background(), "jane@example.com", "", "Jane", "Rafi")
		assert.Error(t, err)
	})
}
