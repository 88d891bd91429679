package telemetry

import "github.com/google/uuid"

// NewCorrelationID returns a random identifier for tagging one decoded
// message's log lines and metrics across a request's lifetime.
func NewCorrelationID() string {
	return uuid.New().String()
}
