package footballapi

import "time"

// Envelope is the API's response wrapper: metadata plus an ordered list of items.
type Envelope[T any] struct {
	Get      string `json:"get,omitempty"`
	Results  int    `json:"results"`
	Paging   Paging `json:"paging"`
	Response []T    `json:"response"`
}

type Paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type (
	FixturesResponse        Envelope[Fixture]
	StandingsResponse       Envelope[LeagueStandings]
	PlayerRankingResponse   Envelope[PlayerEntry]
	TeamInfoResponse        Envelope[TeamDetails]
	PlayerProfileResponse   Envelope[PlayerEntry]
	PlayerTransfersResponse Envelope[PlayerTransfers]
)

// Payload is the set of decodable response envelopes.
type Payload interface {
	FixturesResponse | StandingsResponse | PlayerRankingResponse |
		TeamInfoResponse | PlayerProfileResponse | PlayerTransfersResponse
}

// TeamRef is the compact team shape shared by standings, statistics and transfers.
// Logo is a URL; fetching the image is left to the caller.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Fixtures

type Fixture struct {
	Fixture FixtureInfo   `json:"fixture"`
	League  FixtureLeague `json:"league"`
	Teams   FixtureTeams  `json:"teams"`
	Goals   Goals         `json:"goals"`
}

type FixtureInfo struct {
	ID        int           `json:"id"`
	Referee   string        `json:"referee,omitempty"`
	Timezone  string        `json:"timezone,omitempty"`
	Date      time.Time     `json:"date"`
	Timestamp int64         `json:"timestamp,omitempty"`
	Venue     FixtureVenue  `json:"venue"`
	Status    FixtureStatus `json:"status"`
}

type FixtureVenue struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

type FixtureStatus struct {
	Long  string `json:"long,omitempty"`
	Short string `json:"short"`
	// Elapsed is nil before kick-off.
	Elapsed *int `json:"elapsed"`
}

type FixtureLeague struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
	Season  int    `json:"season,omitempty"`
	Round   string `json:"round,omitempty"`
}

type FixtureTeams struct {
	Home FixtureTeam `json:"home"`
	Away FixtureTeam `json:"away"`
}

type FixtureTeam struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

// Goals are nil until the fixture has started.
type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Standings

type LeagueStandings struct {
	League StandingsLeague `json:"league"`
}

type StandingsLeague struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
	Season  int    `json:"season"`
	// Standings holds one table per group, each ordered by rank. Empty when the
	// league has no table.
	Standings [][]TeamStanding `json:"standings,omitempty"`
}

type TeamStanding struct {
	Rank        int            `json:"rank"`
	Team        TeamRef        `json:"team"`
	Points      int            `json:"points"`
	GoalsDiff   int            `json:"goalsDiff"`
	Group       string         `json:"group,omitempty"`
	Form        string         `json:"form,omitempty"`
	Status      string         `json:"status,omitempty"`
	Description string         `json:"description,omitempty"`
	All         StandingRecord `json:"all"`
}

type StandingRecord struct {
	Played int        `json:"played"`
	Win    int        `json:"win"`
	Draw   int        `json:"draw"`
	Lose   int        `json:"lose"`
	Goals  GoalsTally `json:"goals"`
}

type GoalsTally struct {
	For     int `json:"for"`
	Against int `json:"against"`
}

// Players (rankings and profiles share this shape)

type PlayerEntry struct {
	Player     Player             `json:"player"`
	Statistics []PlayerStatistics `json:"statistics"`
}

type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Firstname   string `json:"firstname,omitempty"`
	Lastname    string `json:"lastname,omitempty"`
	Age         int    `json:"age,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Height      string `json:"height,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Injured     bool   `json:"injured"`
	Photo       string `json:"photo"`
	Birth       Birth  `json:"birth"`
}

type Birth struct {
	Date    string `json:"date,omitempty"`
	Place   string `json:"place,omitempty"`
	Country string `json:"country,omitempty"`
}

// PlayerStatistics is one competition's line for a player.
type PlayerStatistics struct {
	Team   TeamRef          `json:"team"`
	League StatisticsLeague `json:"league"`
	Games  Games            `json:"games"`
	Goals  PlayerGoals      `json:"goals"`
}

type StatisticsLeague struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Season  int    `json:"season,omitempty"`
}

type Games struct {
	Appearances int    `json:"appearences"`
	Minutes     int    `json:"minutes"`
	Position    string `json:"position,omitempty"`
	Rating      string `json:"rating,omitempty"`
}

type PlayerGoals struct {
	Total    int `json:"total"`
	Assists  int `json:"assists"`
	Conceded int `json:"conceded"`
	Saves    int `json:"saves"`
}

// Teams

type TeamDetails struct {
	Team  Team      `json:"team"`
	Venue TeamVenue `json:"venue"`
}

type Team struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Country  string `json:"country,omitempty"`
	Founded  int    `json:"founded,omitempty"`
	National bool   `json:"national"`
	Logo     string `json:"logo"`
}

type TeamVenue struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Surface  string `json:"surface,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Transfers

type PlayerTransfers struct {
	Player    PlayerRef  `json:"player"`
	Update    string     `json:"update,omitempty"`
	Transfers []Transfer `json:"transfers"`
}

type PlayerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Transfer struct {
	Date  string        `json:"date"`
	Type  string        `json:"type,omitempty"`
	Teams TransferTeams `json:"teams"`
}

type TransferTeams struct {
	In  TeamRef `json:"in"`
	Out TeamRef `json:"out"`
}
