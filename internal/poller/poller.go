package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/samvad-hq/football-stats/internal/logger"
	"github.com/samvad-hq/football-stats/pkg/feeds"
)

// Service coordinates polling across multiple feeds.
type Service struct {
	processor   *FeedProcessor
	concurrency int
	log         logger.Logger
}

// NewService wires a poller with the API client and publisher fan-out.
func NewService(client APIClient, pub EventPublisher, concurrency int, log logger.Logger) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Service{
		processor:   NewFeedProcessor(client, pub, log),
		concurrency: concurrency,
		log:         log,
	}
}

// Run executes one polling pass over feeds. Failures are logged per feed and
// returned joined; a failing feed does not stop the others.
func (s *Service) Run(ctx context.Context, list []feeds.Feed) error {
	if s == nil || s.processor == nil || s.processor.client == nil {
		return fmt.Errorf("poller service is not initialized")
	}
	if len(list) == 0 {
		return fmt.Errorf("no feeds configured for polling")
	}

	errs := s.runAll(ctx, list)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *Service) runAll(ctx context.Context, list []feeds.Feed) []error {
	var (
		mu   sync.Mutex
		errs []error
	)

	p := pool.New().WithMaxGoroutines(s.concurrency)
	for _, feed := range list {
		if ctx.Err() != nil {
			break
		}
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			if err := s.processor.Process(ctx, feed); err != nil {
				s.log.ErrorObj("feed poll failed", "feed_error", map[string]any{
					"feed_id": feed.ID,
					"error":   err.Error(),
				})
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}
	p.Wait()

	return errs
}
