package footballapi

import (
	"fmt"
	"strings"
)

// Summary helpers render short plain-text digests, used by chat publishers.

const summaryRows = 10

func (r FixturesResponse) Summary() string {
	if len(r.Response) == 0 {
		return "No fixtures."
	}
	var b strings.Builder
	for i, f := range r.Response {
		if i == summaryRows {
			fmt.Fprintf(&b, "... and %d more\n", len(r.Response)-i)
			break
		}
		fmt.Fprintf(&b, "%s %s %s %s [%s]\n",
			f.Fixture.Date.Format("2006-01-02 15:04"),
			f.Teams.Home.Name, scoreLine(f.Goals), f.Teams.Away.Name,
			f.Fixture.Status.Short)
	}
	return strings.TrimRight(b.String(), "\n")
}

func scoreLine(g Goals) string {
	if g.Home == nil || g.Away == nil {
		return "vs"
	}
	return fmt.Sprintf("%d-%d", *g.Home, *g.Away)
}

func (r StandingsResponse) Summary() string {
	if len(r.Response) == 0 {
		return "No standings."
	}
	var b strings.Builder
	for _, ls := range r.Response {
		fmt.Fprintf(&b, "%s %d\n", ls.League.Name, ls.League.Season)
		for _, table := range ls.League.Standings {
			for i, row := range table {
				if i == summaryRows {
					break
				}
				fmt.Fprintf(&b, "%2d. %s %d pts (%d played)\n", row.Rank, row.Team.Name, row.Points, row.All.Played)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r PlayerRankingResponse) Summary() string {
	if len(r.Response) == 0 {
		return "No players."
	}
	var b strings.Builder
	for i, e := range r.Response {
		if i == summaryRows {
			break
		}
		goals, assists, apps := e.Totals()
		fmt.Fprintf(&b, "%2d. %s: %d goals, %d assists in %d apps\n", i+1, e.Player.Name, goals, assists, apps)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r TeamInfoResponse) Summary() string {
	if len(r.Response) == 0 {
		return "Team not found."
	}
	t := r.Response[0]
	s := t.Team.Name
	if t.Team.Country != "" {
		s += " (" + t.Team.Country + ")"
	}
	if t.Team.Founded > 0 {
		s += fmt.Sprintf(", founded %d", t.Team.Founded)
	}
	if t.Venue.Name != "" {
		s += ", plays at " + t.Venue.Name
	}
	return s
}

func (r PlayerProfileResponse) Summary() string {
	if len(r.Response) == 0 {
		return "Player not found."
	}
	e := r.Response[0]
	goals, assists, apps := e.Totals()
	return fmt.Sprintf("%s, %d: %d goals, %d assists in %d apps", e.Player.Name, e.Player.Age, goals, assists, apps)
}

func (r PlayerTransfersResponse) Summary() string {
	if len(r.Response) == 0 {
		return "No transfers."
	}
	var b strings.Builder
	for _, pt := range r.Response {
		fmt.Fprintf(&b, "%s\n", pt.Player.Name)
		for _, t := range pt.Transfers {
			fmt.Fprintf(&b, "  %s %s -> %s", t.Date, t.Teams.Out.Name, t.Teams.In.Name)
			if t.Type != "" {
				fmt.Fprintf(&b, " (%s)", t.Type)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Totals sums goals, assists and appearances across all competitions.
func (e PlayerEntry) Totals() (goals, assists, appearances int) {
	for _, s := range e.Statistics {
		goals += s.Goals.Total
		assists += s.Goals.Assists
		appearances += s.Games.Appearances
	}
	return goals, assists, appearances
}
