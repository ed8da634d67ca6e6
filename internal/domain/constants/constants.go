// Package constants holds shared configuration values.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
