// Package dockerhost manages assistant containers on the remote
// operations host over SSH: image builds, compose manifest edits, host
// port allocation, and container lifecycle.
//
// All clients share a single docker-compose.yml on the host. Manifest
// edits are serialized through a remote flock so concurrent deploys
// against the same host cannot lose each other's writes.
package dockerhost
