// Package supabase provisions per-client database projects through the
// Supabase Management API: project creation, readiness polling, API key
// retrieval, schema migration, and deletion.
package supabase
