package poller

import (
	"context"
	"fmt"

	"github.com/samvad-hq/football-stats/internal/logger"
	"github.com/samvad-hq/football-stats/pkg/feeds"
	"github.com/samvad-hq/football-stats/pkg/publishers"
)

// FeedProcessor fetches one feed and publishes the result.
type FeedProcessor struct {
	client    APIClient
	publisher EventPublisher
	log       logger.Logger
}

func NewFeedProcessor(client APIClient, pub EventPublisher, log logger.Logger) *FeedProcessor {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &FeedProcessor{client: client, publisher: pub, log: log}
}

// Process runs the feed's operation once. Nothing is published when the call fails.
func (p *FeedProcessor) Process(ctx context.Context, feed feeds.Feed) error {
	payload, err := p.client.Do(ctx, feed.Op(), feed.Params)
	if err != nil {
		return fmt.Errorf("fetch feed %s: %w", feed.ID, err)
	}

	if p.publisher == nil {
		return nil
	}

	evt := publishers.NewEvent(feed.ID, feed.Name, feed.Operation, payload)
	delivered, err := p.publisher.Publish(ctx, evt)
	if err != nil {
		return fmt.Errorf("publish feed %s: %w", feed.ID, err)
	}

	p.log.InfoObj("feed collected", "feed_result", map[string]any{
		"feed_id":    feed.ID,
		"operation":  feed.Operation,
		"publishers": delivered,
	})
	return nil
}
