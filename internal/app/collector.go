package app

import (
	"context"
	"fmt"
	"time"

	"github.com/samvad-hq/football-stats/internal/config"
	"github.com/samvad-hq/football-stats/internal/logger"
	"github.com/samvad-hq/football-stats/internal/poller"
	"github.com/samvad-hq/football-stats/pkg/feeds"
	"github.com/samvad-hq/football-stats/pkg/publishers"
)

// Collector wires together feeds, the API client, and publishers and executes poll loops.
type Collector struct {
	cfg          *config.Config
	feedReg      *feeds.Registry
	fanout       *publishers.Fanout
	pollService  *poller.Service
	pollInterval time.Duration
	log          logger.Logger
}

// NewCollector builds a collector runtime from config files.
func NewCollector(ctx context.Context, cfg *config.Config, log logger.Logger) (*Collector, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	feedReg, err := feeds.LoadRegistry(cfg.FeedsFile)
	if err != nil {
		return nil, fmt.Errorf("load feeds registry: %w", err)
	}
	feedList := feedReg.All()
	feedIDs := make([]string, 0, len(feedList))
	for _, f := range feedList {
		feedIDs = append(feedIDs, f.ID)
	}
	log.InfoObj("feeds registry loaded", "feeds_meta", map[string]any{
		"count": len(feedIDs),
		"ids":   feedIDs,
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	client := NewFootballClient(cfg, log)

	return &Collector{
		cfg:          cfg,
		feedReg:      feedReg,
		fanout:       fanout,
		pollService:  poller.NewService(client, fanout, cfg.PollConcurrency, log),
		pollInterval: cfg.PollInterval,
		log:          log,
	}, nil
}

// Run starts the poll loop until the context is cancelled.
func (c *Collector) Run(ctx context.Context) error {
	if c == nil || c.pollService == nil {
		return fmt.Errorf("collector is not initialized")
	}
	defer func() {
		if err := c.fanout.Close(); err != nil {
			c.log.WarnObj("closing publishers failed", "error", err.Error())
		}
	}()

	enabled := c.feedReg.Enabled()
	if len(enabled) == 0 {
		c.log.WarnObj("no enabled feeds; collector idle", "feeds_file", c.cfg.FeedsFile)
		<-ctx.Done()
		return nil
	}

	c.log.InfoObj("collector loop starting", "collector_state", map[string]any{
		"feeds_count":      len(enabled),
		"publishers_count": c.fanout.Size(),
		"poll_interval":    c.pollInterval.String(),
	})

	// a failed first pass is logged like any other; feeds are independent
	c.runOnce(ctx, enabled)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.InfoObj("collector loop exiting", "reason", ctx.Err().Error())
			return nil
		case <-ticker.C:
			c.runOnce(ctx, enabled)
		}
	}
}

func (c *Collector) runOnce(ctx context.Context, list []feeds.Feed) {
	start := time.Now()
	c.log.InfoObj("poll started", "poll_meta", map[string]any{
		"feeds_count": len(list),
		"started_at":  start.UTC(),
	})
	if err := c.pollService.Run(ctx, list); err != nil {
		c.log.ErrorObj("poll finished with errors", "poll_error", err.Error())
		return
	}
	c.log.InfoObj("poll completed", "poll_meta", map[string]any{
		"feeds_count": len(list),
		"elapsed_ms":  time.Since(start).Milliseconds(),
	})
}
