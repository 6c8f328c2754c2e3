package footballapi

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Operation names one of the fixed API capabilities.
type Operation int

const (
	OpPastFixtures Operation = iota + 1
	OpUpcomingFixtures
	OpTeamPastFixtures
	OpTeamUpcomingFixtures
	OpTeamStandings
	OpTopScorers
	OpTopAssists
	OpTeamInfo
	OpPlayerProfile
	OpPlayerTransfers
)

// API-Football fixture status filters.
const (
	StatusFullTime   = "FT"
	StatusNotStarted = "NS"
)

// Params carries every argument an operation may need. Which fields are read,
// and which of them are mandatory, depends on the operation's endpoint.
type Params struct {
	League   string `json:"league,omitempty" yaml:"league"`
	Season   string `json:"season,omitempty" yaml:"season"`
	TeamID   int    `json:"team_id,omitempty" yaml:"team_id"`
	PlayerID int    `json:"player_id,omitempty" yaml:"player_id"`
}

// Endpoint describes how an operation maps onto the API: path, query schema and
// the payload shape of its response.
type Endpoint struct {
	Operation Operation
	Name      string
	Path      string
	// Fixed holds parameters every call to the endpoint sends unchanged.
	Fixed  map[string]string
	fields []queryField
	kind   payloadKind
}

type queryField struct {
	key      string
	value    func(Params) string
	required bool
}

func leagueValue(p Params) string { return strings.TrimSpace(p.League) }
func seasonValue(p Params) string { return strings.TrimSpace(p.Season) }
func teamValue(p Params) string   { return formatID(p.TeamID) }
func playerValue(p Params) string { return formatID(p.PlayerID) }

func formatID(id int) string {
	if id <= 0 {
		return ""
	}
	return strconv.Itoa(id)
}

var (
	leagueField         = queryField{key: "league", value: leagueValue, required: true}
	seasonField         = queryField{key: "season", value: seasonValue, required: true}
	optionalTeamField   = queryField{key: "team", value: teamValue}
	teamIDField         = queryField{key: "id", value: teamValue, required: true}
	playerIDField       = queryField{key: "id", value: playerValue, required: true}
	transferPlayerField = queryField{key: "player", value: playerValue, required: true}
)

var endpoints = map[Operation]Endpoint{
	OpPastFixtures: {
		Name:   "past_fixtures",
		Path:   "/fixtures",
		Fixed:  map[string]string{"status": StatusFullTime},
		fields: []queryField{leagueField, seasonField},
		kind:   kindFixtures,
	},
	OpUpcomingFixtures: {
		Name:   "upcoming_fixtures",
		Path:   "/fixtures",
		Fixed:  map[string]string{"status": StatusNotStarted},
		fields: []queryField{leagueField, seasonField},
		kind:   kindFixtures,
	},
	OpTeamPastFixtures: {
		Name:   "team_past_fixtures",
		Path:   "/fixtures",
		Fixed:  map[string]string{"status": StatusFullTime},
		fields: []queryField{optionalTeamField, leagueField, seasonField},
		kind:   kindFixtures,
	},
	OpTeamUpcomingFixtures: {
		Name:   "team_upcoming_fixtures",
		Path:   "/fixtures",
		Fixed:  map[string]string{"status": StatusNotStarted},
		fields: []queryField{optionalTeamField, leagueField, seasonField},
		kind:   kindFixtures,
	},
	OpTeamStandings: {
		Name:   "team_standings",
		Path:   "/standings",
		fields: []queryField{leagueField, seasonField},
		kind:   kindStandings,
	},
	OpTopScorers: {
		Name:   "top_scorers",
		Path:   "/players/topscorers",
		fields: []queryField{leagueField, seasonField},
		kind:   kindPlayerRanking,
	},
	OpTopAssists: {
		Name:   "top_assists",
		Path:   "/players/topassists",
		fields: []queryField{leagueField, seasonField},
		kind:   kindPlayerRanking,
	},
	OpTeamInfo: {
		Name:   "team_info",
		Path:   "/teams",
		fields: []queryField{teamIDField},
		kind:   kindTeamInfo,
	},
	OpPlayerProfile: {
		Name:   "player_profile",
		Path:   "/players",
		fields: []queryField{playerIDField, seasonField, leagueField},
		kind:   kindPlayerProfile,
	},
	OpPlayerTransfers: {
		Name:   "player_transfers",
		Path:   "/transfers",
		fields: []queryField{transferPlayerField},
		kind:   kindPlayerTransfers,
	},
}

// Operations lists every supported operation in declaration order.
func Operations() []Operation {
	out := make([]Operation, 0, len(endpoints))
	for op := OpPastFixtures; op <= OpPlayerTransfers; op++ {
		out = append(out, op)
	}
	return out
}

// ParseOperation resolves an operation by its snake_case name (e.g. "top_scorers").
func ParseOperation(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	for op, ep := range endpoints {
		if ep.Name == key {
			return op, nil
		}
	}
	return 0, crerr.Wrapf(ErrInvalidRequest, "unknown operation %q", name)
}

// Endpoint returns the descriptor for op.
func (op Operation) Endpoint() (Endpoint, bool) {
	ep, ok := endpoints[op]
	if !ok {
		return Endpoint{}, false
	}
	ep.Operation = op
	return ep, true
}

func (op Operation) String() string {
	if ep, ok := endpoints[op]; ok {
		return ep.Name
	}
	return "operation(" + strconv.Itoa(int(op)) + ")"
}

// MarshalText lets operations travel as their names in JSON and YAML.
func (op Operation) MarshalText() ([]byte, error) {
	if _, ok := endpoints[op]; !ok {
		return nil, crerr.Newf("unknown operation %d", int(op))
	}
	return []byte(op.String()), nil
}

func (op *Operation) UnmarshalText(text []byte) error {
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// Query builds the query map for p. Missing required values fail with
// ErrInvalidRequest; optional values that are unset are left out entirely.
func (e Endpoint) Query(p Params) (map[string]string, error) {
	query := make(map[string]string, len(e.fields)+len(e.Fixed))
	var missing []string
	for _, f := range e.fields {
		v := f.value(p)
		if v == "" {
			if f.required {
				missing = append(missing, f.key)
			}
			continue
		}
		query[f.key] = v
	}
	if len(missing) > 0 {
		return nil, crerr.Wrapf(ErrInvalidRequest, "%s: missing %s", e.Name, strings.Join(missing, ", "))
	}
	for k, v := range e.Fixed {
		query[k] = v
	}
	return query, nil
}

// Keys lists the query keys the endpoint understands, required ones first.
func (e Endpoint) Keys() (required, optional []string) {
	for _, f := range e.fields {
		if f.required {
			required = append(required, f.key)
		} else {
			optional = append(optional, f.key)
		}
	}
	return required, optional
}
