package poller

import (
	"context"

	"github.com/samvad-hq/football-stats/pkg/footballapi"
	"github.com/samvad-hq/football-stats/pkg/publishers"
)

// APIClient runs one API operation and returns its decoded payload.
type APIClient interface {
	Do(ctx context.Context, op footballapi.Operation, p footballapi.Params) (any, error)
}

// EventPublisher publishes collected payloads downstream.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}
