// Package retry provides exponential backoff retry logic for transient failures.
//
// The [WithExponentialBackoff] function retries an operation with configurable
// max attempts, initial delay, and maximum delay. It is used for SSH dials to
// the operations host, which fail transiently while the host boots. Failures
// that can never succeed, such as rejected credentials, are wrapped with
// [Fatal] by the caller and end the loop on the spot.
package retry
