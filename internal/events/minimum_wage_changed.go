package events

import "time"

const MinimumWageChangedTopic = "hr.compliance.minimum_wage.v1"

const (
	MinimumWageCreated = "minimum_wage.created"
	MinimumWageUpdated = "minimum_wage.updated"
	MinimumWageDeleted = "minimum_wage.deleted"
)

// MinimumWageChangedEvent is published for every catalog write.
// PreviousState is set only when an update moved the configuration to
// another state.
type MinimumWageChangedEvent struct {
	EventType       string    `json:"event_type"`
	ConfigurationID string    `json:"configuration_id"`
	State           string    `json:"state"`
	PreviousState   string    `json:"previous_state,omitempty"`
	Category        string    `json:"category"`
	MinimumWage     string    `json:"minimum_wage"`
	ChangedBy       string    `json:"changed_by"`
	OccurredAt      time.Time `json:"occurred_at"`
}
