package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/bytedance/sonic"

	"github.com/samvad-hq/football-stats/internal/app"
	"github.com/samvad-hq/football-stats/internal/config"
	"github.com/samvad-hq/football-stats/internal/logger"
	"github.com/samvad-hq/football-stats/pkg/footballapi"
)

type cli struct {
	Operation string `arg:"" enum:"past_fixtures,upcoming_fixtures,team_past_fixtures,team_upcoming_fixtures,team_standings,top_scorers,top_assists,team_info,player_profile,player_transfers" help:"Operation to run (${enum})."`

	League string `short:"l" help:"League id, e.g. 39."`
	Season string `short:"s" help:"Season year, e.g. 2024."`
	Team   int    `short:"t" help:"Team id."`
	Player int    `short:"p" help:"Player id."`

	Async   bool `help:"Dispatch in the background and print from the completion callback."`
	Summary bool `help:"Print a short text digest instead of JSON."`
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("footballstats"),
		kong.Description("Query the football stats API and print the decoded result."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(run(args, os.Stdout))
}

func run(args cli, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	op, err := footballapi.ParseOperation(args.Operation)
	if err != nil {
		return err
	}
	params := footballapi.Params{League: args.League, Season: args.Season, TeamID: args.Team, PlayerID: args.Player}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := app.NewFootballClient(cfg, logger.Global{})

	var payload any
	if args.Async {
		payload, err = runAsync(ctx, client, op, params)
	} else {
		payload, err = client.Do(ctx, op, params)
	}
	if err != nil {
		return err
	}
	return printResult(out, payload, args.Summary)
}

// runAsync dispatches the call and drains its completion on this goroutine,
// the way an event loop would.
func runAsync(ctx context.Context, client *footballapi.Client, op footballapi.Operation, p footballapi.Params) (any, error) {
	loop := make(chan func(), 1)
	exec := func(fn func()) { loop <- fn }

	var (
		payload any
		callErr error
	)
	f := footballapi.Go(ctx, func(ctx context.Context) (any, error) {
		return client.Do(ctx, op, p)
	})
	f.Then(exec, func(v any, err error) {
		payload, callErr = v, err
	})

	select {
	case fn := <-loop:
		fn()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return payload, callErr
}

func printResult(out io.Writer, payload any, summary bool) error {
	if s, ok := payload.(interface{ Summary() string }); ok && summary {
		_, err := fmt.Fprintln(out, s.Summary())
		return err
	}
	raw, err := sonic.ConfigStd.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}
