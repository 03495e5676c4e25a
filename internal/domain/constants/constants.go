// Package constants holds shared constant values used across layers.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
