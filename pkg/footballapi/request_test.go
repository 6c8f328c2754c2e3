package footballapi

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidatesBaseURL(t *testing.T) {
	for _, base := range []string{"", "   ", "api.example.com/v3", "/v3", "://bad"} {
		_, err := NewRequest(base, "/fixtures", nil, nil)
		require.Error(t, err, base)
		assert.True(t, errors.Is(err, ErrInvalidRequest), base)
	}
}

func TestNewRequestDropsEmptyValues(t *testing.T) {
	req, err := NewRequest("https://api.example.com/v3", "/fixtures",
		map[string]string{"X-Api-Key": "k", "X-Empty": ""},
		map[string]string{"league": "39", "team": "", "": "x"},
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"league": "39"}, req.Query())
	assert.Equal(t, map[string]string{"X-Api-Key": "k"}, req.Headers())
	assert.Equal(t, "https://api.example.com/v3/fixtures", req.Endpoint())
	assert.Equal(t, "https://api.example.com/v3/fixtures?league=39", req.URL())
}

func TestRequestIsImmutable(t *testing.T) {
	query := map[string]string{"league": "39"}
	req, err := NewRequest("https://api.example.com", "/standings", nil, query)
	require.NoError(t, err)

	query["league"] = "140"
	req.Query()["season"] = "2024"

	assert.Equal(t, map[string]string{"league": "39"}, req.Query())
}

func TestQueryStringPercentEncodes(t *testing.T) {
	req, err := NewRequest("https://api.example.com", "/teams", nil, map[string]string{"search": "Man Utd & co"})
	require.NoError(t, err)
	assert.Equal(t, "search=Man%20Utd%20%26%20co", req.QueryString())

	req, err = NewRequest("https://api.example.com", "/teams", nil, map[string]string{"search": "a+b c"})
	require.NoError(t, err)
	assert.Equal(t, "search=a%2Bb%20c", req.QueryString())
	values, err := url.ParseQuery(req.QueryString())
	require.NoError(t, err)
	assert.Equal(t, "a+b c", values.Get("search"))
}

func TestStandingsQueryIsExactlyLeagueAndSeason(t *testing.T) {
	c := NewClient(ClientConfig{APIKey: "k"})
	pairs := [][2]string{{"39", "2024"}, {"140", "2023"}, {"2", "2021"}, {"Premier League", "2024/25"}}
	for _, pair := range pairs {
		req, err := c.Request(OpTeamStandings, Params{League: pair[0], Season: pair[1]})
		require.NoError(t, err)

		values, err := url.ParseQuery(req.QueryString())
		require.NoError(t, err)
		assert.Equal(t, url.Values{"league": {pair[0]}, "season": {pair[1]}}, values)
		assert.Equal(t, "/standings", req.Path())
	}
}

func TestOptionalTeamIsOmitted(t *testing.T) {
	c := NewClient(ClientConfig{APIKey: "k"})
	for _, op := range []Operation{OpTeamPastFixtures, OpTeamUpcomingFixtures} {
		req, err := c.Request(op, Params{League: "39", Season: "2024"})
		require.NoError(t, err)
		_, ok := req.Query()["team"]
		assert.False(t, ok, op.String())
		assert.NotContains(t, req.QueryString(), "team=")

		req, err = c.Request(op, Params{League: "39", Season: "2024", TeamID: 33})
		require.NoError(t, err)
		assert.Equal(t, "33", req.Query()["team"])
	}
}

func TestOperationQueries(t *testing.T) {
	p := Params{League: "39", Season: "2024", TeamID: 33, PlayerID: 306}
	cases := []struct {
		op    Operation
		path  string
		query map[string]string
	}{
		{OpPastFixtures, "/fixtures", map[string]string{"league": "39", "season": "2024", "status": "FT"}},
		{OpUpcomingFixtures, "/fixtures", map[string]string{"league": "39", "season": "2024", "status": "NS"}},
		{OpTeamPastFixtures, "/fixtures", map[string]string{"team": "33", "league": "39", "season": "2024", "status": "FT"}},
		{OpTeamUpcomingFixtures, "/fixtures", map[string]string{"team": "33", "league": "39", "season": "2024", "status": "NS"}},
		{OpTeamStandings, "/standings", map[string]string{"league": "39", "season": "2024"}},
		{OpTopScorers, "/players/topscorers", map[string]string{"league": "39", "season": "2024"}},
		{OpTopAssists, "/players/topassists", map[string]string{"league": "39", "season": "2024"}},
		{OpTeamInfo, "/teams", map[string]string{"id": "33"}},
		{OpPlayerProfile, "/players", map[string]string{"id": "306", "season": "2024", "league": "39"}},
		{OpPlayerTransfers, "/transfers", map[string]string{"player": "306"}},
	}
	require.Len(t, cases, len(Operations()))

	c := NewClient(ClientConfig{APIKey: "secret"})
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			req, err := c.Request(tc.op, p)
			require.NoError(t, err)
			assert.Equal(t, tc.path, req.Path())
			assert.Equal(t, tc.query, req.Query())
			assert.Equal(t, "secret", req.Headers()[DefaultAPIKeyHeader])
		})
	}
}

func TestRequestMissingRequiredParams(t *testing.T) {
	c := NewClient(ClientConfig{APIKey: "k"})

	_, err := c.Request(OpTeamStandings, Params{League: "39"})
	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "season")

	_, err = c.Request(OpTeamInfo, Params{TeamID: -1})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = c.Request(Operation(99), Params{})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestParseOperation(t *testing.T) {
	for _, op := range Operations() {
		got, err := ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	got, err := ParseOperation(" Top-Scorers ")
	require.NoError(t, err)
	assert.Equal(t, OpTopScorers, got)

	_, err = ParseOperation("live_scores")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestOperationTextRoundTrip(t *testing.T) {
	text, err := OpPlayerTransfers.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "player_transfers", string(text))

	var op Operation
	require.NoError(t, op.UnmarshalText([]byte("team_info")))
	assert.Equal(t, OpTeamInfo, op)

	_, err = Operation(0).MarshalText()
	assert.Error(t, err)
}

func TestEndpointKeys(t *testing.T) {
	ep, ok := OpTeamPastFixtures.Endpoint()
	require.True(t, ok)
	required, optional := ep.Keys()
	assert.Equal(t, []string{"league", "season"}, required)
	assert.Equal(t, []string{"team"}, optional)
}
