package publishers

import (
	"time"

	"github.com/bytedance/sonic"
)

// Event represents the payload published downstream: one decoded API response
// collected for one feed.
type Event struct {
	FeedID      string    `json:"feed_id"`
	FeedName    string    `json:"feed_name"`
	Operation   string    `json:"operation"`
	Payload     any       `json:"payload"`
	CollectedAt time.Time `json:"collected_at"`
}

// Summarizer is implemented by payloads that can render a short text digest.
type Summarizer interface {
	Summary() string
}

// NewEvent constructs an Event for the given feed and decoded payload.
func NewEvent(feedID, feedName, operation string, payload any) Event {
	return Event{
		FeedID:      feedID,
		FeedName:    feedName,
		Operation:   operation,
		Payload:     payload,
		CollectedAt: time.Now().UTC(),
	}
}

// Encode renders the event as JSON.
func (e Event) Encode() ([]byte, error) {
	return sonic.Marshal(e)
}

// Summary returns the payload digest, or a one-line fallback.
func (e Event) Summary() string {
	if s, ok := e.Payload.(Summarizer); ok {
		if text := s.Summary(); text != "" {
			return text
		}
	}
	return e.Operation + " collected at " + e.CollectedAt.Format(time.RFC3339)
}

func (e Event) attributes() map[string]string {
	return map[string]string{
		"feed_id":   e.FeedID,
		"operation": e.Operation,
	}
}
