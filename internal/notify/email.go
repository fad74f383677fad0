package notify

import "fmt"

const plainBodyFormat = `Hello %s,

Your personal AI assistant "%s" is almost ready!

To complete the setup, please authorize access to your Google Calendar and Gmail by clicking the link below:

%s

What this does:
- Allows your assistant to read and manage your Google Calendar events
- Allows your assistant to read, search, and send emails on your behalf
- You can revoke this access at any time from your Google Account settings

This link is one-time use and will expire. Please click it within 24 hours.

If you have any questions or concerns, please reply to this email.

Best regards,
The Rafi Team
`

const htmlBodyFormat = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2563eb; color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
        .content { background: #f8fafc; padding: 24px; border: 1px solid #e2e8f0; border-radius: 0 0 8px 8px; }
        .btn { display: inline-block; background: #2563eb; color: white; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: 600; margin: 16px 0; }
        .footer { text-align: center; color: #94a3b8; font-size: 0.875rem; margin-top: 24px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Welcome to %[2]s</h1>
    </div>
    <div class="content">
        <p>Hello %[1]s,</p>
        <p>Your personal AI assistant <strong>"%[2]s"</strong> is almost ready!</p>
        <p>To complete the setup, please authorize access to your Google Calendar and Gmail:</p>
        <p style="text-align: center;">
            <a href="%[3]s" class="btn">Authorize Google Access</a>
        </p>
        <p><em>This link is one-time use and will expire within 24 hours.</em></p>
        <p>If you have any questions, simply reply to this email.</p>
        <p>Best regards,<br>The Rafi Team</p>
    </div>
    <div class="footer">
        <p>This email was sent by the Rafi AI Assistant platform.</p>
    </div>
</body>
</html>
`

// emailBodies renders the plain-text and HTML versions of the
// authorization email.
func emailBodies(clientName, assistantName, oauthURL string) (plain, html string) {
	plain = fmt.Sprintf(plainBodyFormat, clientName, assistantName, oauthURL)
	html = fmt.Sprintf(htmlBodyFormat, clientName, assistantName, oauthURL)
	return plain, html
}
