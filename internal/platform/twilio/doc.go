// Package twilio provisions and manages telephony numbers for clients.
//
// Provisioning searches for one voice-and-SMS-capable local number
// (optionally constrained by area code), purchases the first match, and
// points its inbound-call webhook at the client's route on the operations
// host. Numbers are released by SID when a client is torn down or a
// deployment rolls back.
//
// The provider surface is the NumberManager interface; RealClient
// implements it on the Twilio REST API and MockClient substitutes it in
// tests.
package twilio
