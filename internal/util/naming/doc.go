// Package naming provides consistent naming functions for per-client resources.
//
// Every external resource created for a client derives its name from the
// client identifier: the compose service is client_{id}, the database
// project is rafi-{id}, and the inbound-call webhook path embeds the id so
// the operations host can route calls without a lookup table. Client
// identifiers are validated here before they reach any shell command or
// provider API.
package naming
