package feeds

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samvad-hq/football-stats/pkg/footballapi"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write feeds file: %v", err)
	}
	return path
}

func TestLoadRegistryYAML(t *testing.T) {
	path := writeFile(t, "feeds.yaml", `
feeds:
  - id: pl-table
    name: Premier League table
    operation: team_standings
    league: "39"
    season: "2024"
  - id: united-next
    operation: team-upcoming-fixtures
    league: "39"
    season: "2024"
    team_id: 33
  - id: salah
    operation: player_transfers
    player_id: 306
    enabled: false
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := len(reg.All()); got != 3 {
		t.Fatalf("expected 3 feeds, got %d", got)
	}

	enabled := reg.Enabled()
	if len(enabled) != 2 {
		t.Fatalf("expected 2 enabled feeds, got %d", len(enabled))
	}

	f, ok := reg.ByID("united-next")
	if !ok {
		t.Fatal("united-next not loaded")
	}
	if f.Op() != footballapi.OpTeamUpcomingFixtures || f.Operation != "team_upcoming_fixtures" {
		t.Fatalf("operation not normalized: %q / %v", f.Operation, f.Op())
	}
	if f.TeamID != 33 || f.League != "39" {
		t.Fatalf("params not decoded: %+v", f.Params)
	}
	if f.Name != "united-next" {
		t.Fatalf("name should default to id, got %q", f.Name)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := writeFile(t, "feeds.json", `{"feeds":[{"id":"scorers","operation":"top_scorers","league":"140","season":"2023"}]}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	f, _ := reg.ByID("scorers")
	if f.Op() != footballapi.OpTopScorers || f.Season != "2023" {
		t.Fatalf("unexpected feed %+v", f)
	}
}

func TestLoadRegistryRejectsInvalidFeeds(t *testing.T) {
	cases := map[string]string{
		"missing id":        "feeds:\n  - operation: team_info\n    team_id: 1\n",
		"unknown operation": "feeds:\n  - id: x\n    operation: live_scores\n",
		"missing params":    "feeds:\n  - id: x\n    operation: team_standings\n    league: \"39\"\n",
		"duplicate":         "feeds:\n  - id: x\n    operation: team_info\n    team_id: 1\n  - id: x\n    operation: team_info\n    team_id: 2\n",
		"empty":             "feeds: []\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadRegistry(writeFile(t, "feeds.yaml", content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMissingParamsWrapInvalidRequest(t *testing.T) {
	_, err := NewRegistry([]Feed{{ID: "x", Operation: "player_profile", Params: footballapi.Params{PlayerID: 306}}})
	if !errors.Is(err, footballapi.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestLoadRegistryEmptyPath(t *testing.T) {
	if _, err := LoadRegistry("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
