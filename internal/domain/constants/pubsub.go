// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
)

// Event attribute keys attached to published messages.
const (
	EventTypeAccountStatusChanged = "account.status_changed"

	AttributeEventType  = "event_type"
	AttributeAccountID  = "account_id"
	AttributeEmployeeID = "employee_id"
	AttributeRequestID  = "request_id"
)
