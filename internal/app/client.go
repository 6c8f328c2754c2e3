package app

import (
	"github.com/samvad-hq/football-stats/internal/config"
	"github.com/samvad-hq/football-stats/internal/logger"
	"github.com/samvad-hq/football-stats/pkg/footballapi"
	"github.com/samvad-hq/football-stats/pkg/httpclient"
)

// NewFootballClient builds the API client from config on top of the resty transport.
func NewFootballClient(cfg *config.Config, log logger.Logger) *footballapi.Client {
	if log == nil {
		log = logger.NopLogger{}
	}
	cc := cfg.ClientConfig()
	cc.HTTPClient = httpclient.NewRestyClient(httpclient.Options{
		Timeout: cfg.APITimeout,
		Tracing: cfg.HTTPTracing,
	})
	cc.Logger = log
	return footballapi.NewClient(cc)
}
