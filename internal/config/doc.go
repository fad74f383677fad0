// Package config loads, validates, and persists client configuration files.
//
// A client configuration is a YAML document with one section per credential
// provider (telegram, twilio, elevenlabs, llm, google, supabase, deepgram,
// weather) plus identity and operational settings. Credential fields hold
// either a real value or a placeholder sentinel; the deployment
// orchestrator treats placeholders as "needs provisioning" and fills them
// in as resources are created, writing the file back after each step.
//
// Operator-level settings (provider API tokens, the operations host, SMTP)
// come from the environment and are loaded separately via [LoadSettings].
package config
