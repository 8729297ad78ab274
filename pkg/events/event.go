package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Event         string    `json:"event"`   // e.g. "booking.approved"
	Version       string    `json:"version"` // e.g. "v1"
	Timestamp     time.Time `json:"timestamp"`
	Payload       any       `json:"payload"`
	TraceID       string    `json:"traceId"`
	CorrelationID string    `json:"correlationId"`
}

type Headers struct {
	TraceID       string
	CorrelationID string
	Service       string
}

func NewEvent(eventName, version string, payload any, headers Headers) *Event {
	return &Event{
		Event:         eventName,
		Version:       version,
		Timestamp:     time.Now().UTC(),
		Payload:       payload,
		TraceID:       headers.TraceID,
		CorrelationID: headers.CorrelationID,
	}
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Event) GetRoutingKey() string {
	return e.Event + "." + e.Version
}

// NewHeaders builds headers for an event caused by the request with requestID.
// The request id doubles as the correlation id when present.
func NewHeaders(service, requestID string) Headers {
	correlationID := requestID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return Headers{
		TraceID:       uuid.New().String(),
		CorrelationID: correlationID,
		Service:       service,
	}
}
