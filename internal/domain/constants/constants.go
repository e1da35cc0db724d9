// Package constants holds shared domain-level constants.
package constants

// Credential dispatch providers selectable via config.
const (
	DispatchProviderSMTP   = "smtp"
	DispatchProviderPubSub = "pubsub"
	DispatchProviderLocal  = "local"
)

// Pagination bounds for list endpoints.
const (
	MinPage     = 1
	MinPageSize = 1
	MaxPageSize = 100
)
