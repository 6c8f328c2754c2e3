package footballapi

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

type payloadKind int

const (
	kindFixtures payloadKind = iota + 1
	kindStandings
	kindPlayerRanking
	kindTeamInfo
	kindPlayerProfile
	kindPlayerTransfers
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses raw into the envelope T. It either returns a fully populated
// value or the zero value with an error; partial results are never exposed.
//
// Errors are *DecodingError for malformed or incomplete bodies and *APIError
// when the envelope reports errors of its own.
func Decode[T Payload](raw []byte) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *FixturesResponse:
		var env Envelope[Fixture]
		env, err = decodeEnvelope(raw, fixtureWire.model)
		*p = FixturesResponse(env)
	case *StandingsResponse:
		var env Envelope[LeagueStandings]
		env, err = decodeEnvelope(raw, leagueStandingsWire.model)
		*p = StandingsResponse(env)
	case *PlayerRankingResponse:
		var env Envelope[PlayerEntry]
		env, err = decodeEnvelope(raw, playerEntryWire.model)
		*p = PlayerRankingResponse(env)
	case *TeamInfoResponse:
		var env Envelope[TeamDetails]
		env, err = decodeEnvelope(raw, teamDetailsWire.model)
		*p = TeamInfoResponse(env)
	case *PlayerProfileResponse:
		var env Envelope[PlayerEntry]
		env, err = decodeEnvelope(raw, playerEntryWire.model)
		*p = PlayerProfileResponse(env)
	case *PlayerTransfersResponse:
		var env Envelope[PlayerTransfers]
		env, err = decodeEnvelope(raw, playerTransfersWire.model)
		*p = PlayerTransfersResponse(env)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// decodeKind is the untyped counterpart of Decode used by Client.Do.
func decodeKind(kind payloadKind, raw []byte) (any, error) {
	switch kind {
	case kindFixtures:
		return Decode[FixturesResponse](raw)
	case kindStandings:
		return Decode[StandingsResponse](raw)
	case kindPlayerRanking:
		return Decode[PlayerRankingResponse](raw)
	case kindTeamInfo:
		return Decode[TeamInfoResponse](raw)
	case kindPlayerProfile:
		return Decode[PlayerProfileResponse](raw)
	case kindPlayerTransfers:
		return Decode[PlayerTransfersResponse](raw)
	default:
		return nil, fmt.Errorf("unsupported payload kind %d", kind)
	}
}

func kindOf[T Payload]() payloadKind {
	var zero T
	switch any(zero).(type) {
	case FixturesResponse:
		return kindFixtures
	case StandingsResponse:
		return kindStandings
	case PlayerRankingResponse:
		return kindPlayerRanking
	case TeamInfoResponse:
		return kindTeamInfo
	case PlayerProfileResponse:
		return kindPlayerProfile
	case PlayerTransfersResponse:
		return kindPlayerTransfers
	}
	return 0
}

func decodeEnvelope[W any, T any](raw []byte, convert func(W) T) (Envelope[T], error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Envelope[T]{}, &DecodingError{Details: "empty body"}
	}

	var wire envelopeWire[W]
	if err := sonic.Unmarshal(raw, &wire); err != nil {
		return Envelope[T]{}, &DecodingError{Details: err.Error(), Err: err}
	}
	if msgs := wire.Errors.messages(); len(msgs) > 0 {
		return Envelope[T]{}, &APIError{Messages: msgs}
	}
	if err := validate.Struct(wire); err != nil {
		return Envelope[T]{}, &DecodingError{Details: describeValidation(err), Err: err}
	}
	return convertEnvelope(wire, convert), nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldPath(fe.Namespace())+" is "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}

// fieldPath drops the wire type prefix from a validator namespace, leaving the
// JSON path ("response[0].league.season").
func fieldPath(ns string) string {
	if i := strings.Index(ns, ".response"); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// rawErrors keeps the envelope's "errors" value verbatim. The API sends an empty
// array when all is well, and either an object or an array of messages otherwise.
type rawErrors []byte

func (r *rawErrors) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

func (r rawErrors) messages() []string {
	trimmed := bytes.TrimSpace(r)
	switch string(trimmed) {
	case "", "null", "[]", "{}", `""`:
		return nil
	}

	var byKey map[string]any
	if err := sonic.Unmarshal(trimmed, &byKey); err == nil {
		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			out = append(out, fmt.Sprintf("%s: %v", k, byKey[k]))
		}
		return out
	}

	var list []any
	if err := sonic.Unmarshal(trimmed, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
		return out
	}

	return []string{string(trimmed)}
}
