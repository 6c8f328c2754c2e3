package footballapi

import "context"

// PastFixtures lists finished fixtures of a league season.
func (c *Client) PastFixtures(ctx context.Context, league, season string) (FixturesResponse, error) {
	return Call[FixturesResponse](ctx, c, OpPastFixtures, Params{League: league, Season: season})
}

// UpcomingFixtures lists not-started fixtures of a league season.
func (c *Client) UpcomingFixtures(ctx context.Context, league, season string) (FixturesResponse, error) {
	return Call[FixturesResponse](ctx, c, OpUpcomingFixtures, Params{League: league, Season: season})
}

// TeamPastFixtures narrows PastFixtures to one team. A teamID of zero omits the team filter.
func (c *Client) TeamPastFixtures(ctx context.Context, teamID int, league, season string) (FixturesResponse, error) {
	return Call[FixturesResponse](ctx, c, OpTeamPastFixtures, Params{TeamID: teamID, League: league, Season: season})
}

// TeamUpcomingFixtures narrows UpcomingFixtures to one team. A teamID of zero omits the team filter.
func (c *Client) TeamUpcomingFixtures(ctx context.Context, teamID int, league, season string) (FixturesResponse, error) {
	return Call[FixturesResponse](ctx, c, OpTeamUpcomingFixtures, Params{TeamID: teamID, League: league, Season: season})
}

func (c *Client) TeamStandings(ctx context.Context, league, season string) (StandingsResponse, error) {
	return Call[StandingsResponse](ctx, c, OpTeamStandings, Params{League: league, Season: season})
}

func (c *Client) TopScorers(ctx context.Context, league, season string) (PlayerRankingResponse, error) {
	return Call[PlayerRankingResponse](ctx, c, OpTopScorers, Params{League: league, Season: season})
}

func (c *Client) TopAssists(ctx context.Context, league, season string) (PlayerRankingResponse, error) {
	return Call[PlayerRankingResponse](ctx, c, OpTopAssists, Params{League: league, Season: season})
}

func (c *Client) TeamInfo(ctx context.Context, teamID int) (TeamInfoResponse, error) {
	return Call[TeamInfoResponse](ctx, c, OpTeamInfo, Params{TeamID: teamID})
}

func (c *Client) PlayerProfile(ctx context.Context, playerID int, season, league string) (PlayerProfileResponse, error) {
	return Call[PlayerProfileResponse](ctx, c, OpPlayerProfile, Params{PlayerID: playerID, Season: season, League: league})
}

func (c *Client) PlayerTransfers(ctx context.Context, playerID int) (PlayerTransfersResponse, error) {
	return Call[PlayerTransfersResponse](ctx, c, OpPlayerTransfers, Params{PlayerID: playerID})
}
