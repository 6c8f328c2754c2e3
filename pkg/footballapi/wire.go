package footballapi

import "time"

// Wire types mirror the JSON payloads with pointer fields so the validator can
// tell an absent field from a zero one. Fields tagged required must be present
// and non-null; untagged pointers fall back to the zero value.

type envelopeWire[W any] struct {
	Get      string      `json:"get"`
	Errors   rawErrors   `json:"errors"`
	Results  *int        `json:"results"`
	Paging   *pagingWire `json:"paging"`
	Response []W         `json:"response" validate:"required,dive"`
}

type pagingWire struct {
	Current *int `json:"current"`
	Total   *int `json:"total"`
}

func convertEnvelope[W any, T any](w envelopeWire[W], convert func(W) T) Envelope[T] {
	items := make([]T, len(w.Response))
	for i, item := range w.Response {
		items[i] = convert(item)
	}
	out := Envelope[T]{
		Get:      w.Get,
		Results:  deref(w.Results),
		Response: items,
	}
	if w.Paging != nil {
		out.Paging = Paging{Current: deref(w.Paging.Current), Total: deref(w.Paging.Total)}
	}
	return out
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

type teamRefWire struct {
	ID   *int    `json:"id" validate:"required"`
	Name *string `json:"name" validate:"required"`
	Logo *string `json:"logo" validate:"required"`
}

func (w teamRefWire) model() TeamRef {
	return TeamRef{ID: deref(w.ID), Name: deref(w.Name), Logo: deref(w.Logo)}
}

// Fixtures

type fixtureWire struct {
	Fixture *fixtureInfoWire   `json:"fixture" validate:"required"`
	League  *fixtureLeagueWire `json:"league" validate:"required"`
	Teams   *fixtureTeamsWire  `json:"teams" validate:"required"`
	Goals   *goalsWire         `json:"goals"`
}

type fixtureInfoWire struct {
	ID        *int               `json:"id" validate:"required"`
	Referee   *string            `json:"referee"`
	Timezone  *string            `json:"timezone"`
	Date      *time.Time         `json:"date" validate:"required"`
	Timestamp *int64             `json:"timestamp"`
	Venue     *fixtureVenueWire  `json:"venue"`
	Status    *fixtureStatusWire `json:"status" validate:"required"`
}

type fixtureVenueWire struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
	City *string `json:"city"`
}

type fixtureStatusWire struct {
	Long    *string `json:"long"`
	Short   *string `json:"short" validate:"required"`
	Elapsed *int    `json:"elapsed"`
}

type fixtureLeagueWire struct {
	ID      *int    `json:"id" validate:"required"`
	Name    *string `json:"name" validate:"required"`
	Country *string `json:"country"`
	Logo    *string `json:"logo"`
	Flag    *string `json:"flag"`
	Season  *int    `json:"season"`
	Round   *string `json:"round"`
}

type fixtureTeamsWire struct {
	Home *fixtureTeamWire `json:"home" validate:"required"`
	Away *fixtureTeamWire `json:"away" validate:"required"`
}

type fixtureTeamWire struct {
	ID     *int    `json:"id" validate:"required"`
	Name   *string `json:"name" validate:"required"`
	Logo   *string `json:"logo" validate:"required"`
	Winner *bool   `json:"winner"`
}

type goalsWire struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

func (w fixtureWire) model() Fixture {
	out := Fixture{
		Fixture: FixtureInfo{
			ID:        deref(w.Fixture.ID),
			Referee:   deref(w.Fixture.Referee),
			Timezone:  deref(w.Fixture.Timezone),
			Date:      deref(w.Fixture.Date),
			Timestamp: deref(w.Fixture.Timestamp),
			Status: FixtureStatus{
				Long:    deref(w.Fixture.Status.Long),
				Short:   deref(w.Fixture.Status.Short),
				Elapsed: w.Fixture.Status.Elapsed,
			},
		},
		League: FixtureLeague{
			ID:      deref(w.League.ID),
			Name:    deref(w.League.Name),
			Country: deref(w.League.Country),
			Logo:    deref(w.League.Logo),
			Flag:    deref(w.League.Flag),
			Season:  deref(w.League.Season),
			Round:   deref(w.League.Round),
		},
		Teams: FixtureTeams{
			Home: w.Teams.Home.model(),
			Away: w.Teams.Away.model(),
		},
	}
	if v := w.Fixture.Venue; v != nil {
		out.Fixture.Venue = FixtureVenue{ID: deref(v.ID), Name: deref(v.Name), City: deref(v.City)}
	}
	if w.Goals != nil {
		out.Goals = Goals{Home: w.Goals.Home, Away: w.Goals.Away}
	}
	return out
}

func (w *fixtureTeamWire) model() FixtureTeam {
	return FixtureTeam{ID: deref(w.ID), Name: deref(w.Name), Logo: deref(w.Logo), Winner: w.Winner}
}

// Standings

type leagueStandingsWire struct {
	League *standingsLeagueWire `json:"league" validate:"required"`
}

type standingsLeagueWire struct {
	ID        *int             `json:"id" validate:"required"`
	Name      *string          `json:"name" validate:"required"`
	Country   *string          `json:"country"`
	Logo      *string          `json:"logo"`
	Flag      *string          `json:"flag"`
	Season    *int             `json:"season" validate:"required"`
	Standings [][]standingWire `json:"standings" validate:"omitempty,dive,dive"`
}

type standingWire struct {
	Rank        *int                `json:"rank" validate:"required"`
	Team        *teamRefWire        `json:"team" validate:"required"`
	Points      *int                `json:"points" validate:"required"`
	GoalsDiff   *int                `json:"goalsDiff"`
	Group       *string             `json:"group"`
	Form        *string             `json:"form"`
	Status      *string             `json:"status"`
	Description *string             `json:"description"`
	All         *standingRecordWire `json:"all" validate:"required"`
}

type standingRecordWire struct {
	Played *int            `json:"played" validate:"required"`
	Win    *int            `json:"win" validate:"required"`
	Draw   *int            `json:"draw" validate:"required"`
	Lose   *int            `json:"lose" validate:"required"`
	Goals  *goalsTallyWire `json:"goals" validate:"required"`
}

type goalsTallyWire struct {
	For     *int `json:"for" validate:"required"`
	Against *int `json:"against" validate:"required"`
}

func (w leagueStandingsWire) model() LeagueStandings {
	l := w.League
	out := LeagueStandings{League: StandingsLeague{
		ID:      deref(l.ID),
		Name:    deref(l.Name),
		Country: deref(l.Country),
		Logo:    deref(l.Logo),
		Flag:    deref(l.Flag),
		Season:  deref(l.Season),
	}}
	if len(l.Standings) == 0 {
		return out
	}
	out.League.Standings = make([][]TeamStanding, len(l.Standings))
	for i, table := range l.Standings {
		rows := make([]TeamStanding, len(table))
		for j, row := range table {
			rows[j] = row.model()
		}
		out.League.Standings[i] = rows
	}
	return out
}

func (w standingWire) model() TeamStanding {
	return TeamStanding{
		Rank:        deref(w.Rank),
		Team:        w.Team.model(),
		Points:      deref(w.Points),
		GoalsDiff:   deref(w.GoalsDiff),
		Group:       deref(w.Group),
		Form:        deref(w.Form),
		Status:      deref(w.Status),
		Description: deref(w.Description),
		All: StandingRecord{
			Played: deref(w.All.Played),
			Win:    deref(w.All.Win),
			Draw:   deref(w.All.Draw),
			Lose:   deref(w.All.Lose),
			Goals: GoalsTally{
				For:     deref(w.All.Goals.For),
				Against: deref(w.All.Goals.Against),
			},
		},
	}
}

// Players

type playerEntryWire struct {
	Player     *playerWire            `json:"player" validate:"required"`
	Statistics []playerStatisticsWire `json:"statistics" validate:"required,dive"`
}

type playerWire struct {
	ID          *int       `json:"id" validate:"required"`
	Name        *string    `json:"name" validate:"required"`
	Firstname   *string    `json:"firstname"`
	Lastname    *string    `json:"lastname"`
	Age         *int       `json:"age"`
	Nationality *string    `json:"nationality"`
	Height      *string    `json:"height"`
	Weight      *string    `json:"weight"`
	Injured     *bool      `json:"injured"`
	Photo       *string    `json:"photo" validate:"required"`
	Birth       *birthWire `json:"birth"`
}

type birthWire struct {
	Date    *string `json:"date"`
	Place   *string `json:"place"`
	Country *string `json:"country"`
}

type playerStatisticsWire struct {
	Team   *teamRefWire          `json:"team" validate:"required"`
	League *statisticsLeagueWire `json:"league"`
	Games  *gamesWire            `json:"games"`
	Goals  *playerGoalsWire      `json:"goals"`
}

type statisticsLeagueWire struct {
	ID      *int    `json:"id"`
	Name    *string `json:"name"`
	Country *string `json:"country"`
	Logo    *string `json:"logo"`
	Season  *int    `json:"season"`
}

// The API spells the appearance counter "appearences".
type gamesWire struct {
	Appearances *int    `json:"appearences"`
	Minutes     *int    `json:"minutes"`
	Position    *string `json:"position"`
	Rating      *string `json:"rating"`
}

type playerGoalsWire struct {
	Total    *int `json:"total"`
	Assists  *int `json:"assists"`
	Conceded *int `json:"conceded"`
	Saves    *int `json:"saves"`
}

func (w playerEntryWire) model() PlayerEntry {
	p := w.Player
	out := PlayerEntry{
		Player: Player{
			ID:          deref(p.ID),
			Name:        deref(p.Name),
			Firstname:   deref(p.Firstname),
			Lastname:    deref(p.Lastname),
			Age:         deref(p.Age),
			Nationality: deref(p.Nationality),
			Height:      deref(p.Height),
			Weight:      deref(p.Weight),
			Injured:     deref(p.Injured),
			Photo:       deref(p.Photo),
		},
		Statistics: make([]PlayerStatistics, len(w.Statistics)),
	}
	if b := p.Birth; b != nil {
		out.Player.Birth = Birth{Date: deref(b.Date), Place: deref(b.Place), Country: deref(b.Country)}
	}
	for i, s := range w.Statistics {
		out.Statistics[i] = s.model()
	}
	return out
}

func (w playerStatisticsWire) model() PlayerStatistics {
	out := PlayerStatistics{Team: w.Team.model()}
	if l := w.League; l != nil {
		out.League = StatisticsLeague{
			ID:      deref(l.ID),
			Name:    deref(l.Name),
			Country: deref(l.Country),
			Logo:    deref(l.Logo),
			Season:  deref(l.Season),
		}
	}
	if g := w.Games; g != nil {
		out.Games = Games{
			Appearances: deref(g.Appearances),
			Minutes:     deref(g.Minutes),
			Position:    deref(g.Position),
			Rating:      deref(g.Rating),
		}
	}
	if g := w.Goals; g != nil {
		out.Goals = PlayerGoals{
			Total:    deref(g.Total),
			Assists:  deref(g.Assists),
			Conceded: deref(g.Conceded),
			Saves:    deref(g.Saves),
		}
	}
	return out
}

// Teams

type teamDetailsWire struct {
	Team  *teamWire      `json:"team" validate:"required"`
	Venue *teamVenueWire `json:"venue"`
}

type teamWire struct {
	ID       *int    `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"required"`
	Code     *string `json:"code"`
	Country  *string `json:"country"`
	Founded  *int    `json:"founded"`
	National *bool   `json:"national"`
	Logo     *string `json:"logo" validate:"required"`
}

type teamVenueWire struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
	Surface  *string `json:"surface"`
	Image    *string `json:"image"`
}

func (w teamDetailsWire) model() TeamDetails {
	t := w.Team
	out := TeamDetails{Team: Team{
		ID:       deref(t.ID),
		Name:     deref(t.Name),
		Code:     deref(t.Code),
		Country:  deref(t.Country),
		Founded:  deref(t.Founded),
		National: deref(t.National),
		Logo:     deref(t.Logo),
	}}
	if v := w.Venue; v != nil {
		out.Venue = TeamVenue{
			ID:       deref(v.ID),
			Name:     deref(v.Name),
			Address:  deref(v.Address),
			City:     deref(v.City),
			Capacity: deref(v.Capacity),
			Surface:  deref(v.Surface),
			Image:    deref(v.Image),
		}
	}
	return out
}

// Transfers

type playerTransfersWire struct {
	Player    *playerRefWire `json:"player" validate:"required"`
	Update    *string        `json:"update"`
	Transfers []transferWire `json:"transfers" validate:"required,dive"`
}

type playerRefWire struct {
	ID   *int    `json:"id" validate:"required"`
	Name *string `json:"name" validate:"required"`
}

type transferWire struct {
	Date  *string            `json:"date" validate:"required"`
	Type  *string            `json:"type"`
	Teams *transferTeamsWire `json:"teams" validate:"required"`
}

type transferTeamsWire struct {
	In  *transferTeamWire `json:"in" validate:"required"`
	Out *transferTeamWire `json:"out" validate:"required"`
}

// Transfer counterparts sometimes come without a logo.
type transferTeamWire struct {
	ID   *int    `json:"id" validate:"required"`
	Name *string `json:"name" validate:"required"`
	Logo *string `json:"logo"`
}

func (w playerTransfersWire) model() PlayerTransfers {
	out := PlayerTransfers{
		Player:    PlayerRef{ID: deref(w.Player.ID), Name: deref(w.Player.Name)},
		Update:    deref(w.Update),
		Transfers: make([]Transfer, len(w.Transfers)),
	}
	for i, t := range w.Transfers {
		out.Transfers[i] = Transfer{
			Date: deref(t.Date),
			Type: deref(t.Type),
			Teams: TransferTeams{
				In:  TeamRef{ID: deref(t.Teams.In.ID), Name: deref(t.Teams.In.Name), Logo: deref(t.Teams.In.Logo)},
				Out: TeamRef{ID: deref(t.Teams.Out.ID), Name: deref(t.Teams.Out.Name), Logo: deref(t.Teams.Out.Logo)},
			},
		}
	}
	return out
}
