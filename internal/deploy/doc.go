// Package deploy orchestrates the full provisioning pipeline for one
// client: config validation, phone number purchase, database project
// creation, container start on the operations host, the OAuth
// notification email, and a closing health check.
//
// The pipeline is a saga. Every step that creates an external resource
// registers a compensating action when it succeeds; on a fatal failure
// the completed steps are compensated in reverse order, and the
// original cause is returned wrapped in a DeploymentError.
package deploy
