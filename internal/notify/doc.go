// Package notify handles the client-facing side of a deployment:
// building the Google OAuth consent URL the client must visit, and
// emailing it to them with setup instructions.
package notify
