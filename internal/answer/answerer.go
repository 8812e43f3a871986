package answer

import (
	"context"
	"log/slog"
	"time"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/config"
)

// Answerer is the query entry point: raw question text in, tagged Result or
// structured error out. It is stateless between calls; every query reads the
// same immutable snapshot.
type Answerer struct {
	resolver   *StopResolver
	planner    *JourneyPlanner
	departures *DepartureQueries
	now        func() time.Time
}

// Option configures an Answerer
type Option func(*Answerer)

// WithClock overrides the wall clock used to resolve relative dates. Tests
// use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(a *Answerer) {
		a.now = now
	}
}

func NewAnswerer(store *gtfsdb.Client, cfg config.Answering, logger *slog.Logger, opts ...Option) *Answerer {
	a := &Answerer{
		resolver:   NewStopResolver(store, cfg.Aliases),
		planner:    NewJourneyPlanner(store, logger),
		departures: NewDepartureQueries(store),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer resolves a question end to end. Errors are the structured taxonomy
// of this package (ErrMissingRoute, ErrMissingTime, ErrMalformedRequest,
// AmbiguousStopError, StopNotFoundError) plus wrapped store failures.
func (a *Answerer) Answer(ctx context.Context, question string) (Result, error) {
	intent := ExtractIntent(question, a.now())
	date := intent.Date.Format("2006-01-02")

	switch intent.Kind {
	case FastestTransfer:
		return a.answerTransfer(ctx, question, intent, date)
	case FirstDeparture, LastDeparture:
		stop, err := a.resolveDepartureStop(ctx, question, intent)
		if err != nil {
			return nil, err
		}
		result, err := a.departures.Boundary(ctx, intent.Kind, intent.Route, stop, date)
		if err != nil {
			return nil, err
		}
		return result, nil
	case NextDeparture:
		stop, err := a.resolveDepartureStop(ctx, question, intent)
		if err != nil {
			return nil, err
		}
		result, err := a.departures.NextPerDirection(ctx, intent.Route, stop, date, intent.Time)
		if err != nil {
			return nil, err
		}
		return result, nil
	default:
		if intent.Route == "" {
			return nil, ErrMissingRoute
		}
		return nil, ErrMissingTime
	}
}

func (a *Answerer) answerTransfer(ctx context.Context, question string, intent Intent, date string) (Result, error) {
	if intent.FromText == "" || intent.ToText == "" {
		return nil, ErrMalformedRequest
	}

	from, err := a.resolver.Resolve(ctx, intent.FromText, intent.FromText, "", "origin")
	if err != nil {
		return nil, err
	}
	to, err := a.resolver.Resolve(ctx, intent.ToText, intent.ToText, "", "destination")
	if err != nil {
		return nil, err
	}

	floor := intent.Time
	if floor == "" {
		floor = "00:00:00"
	}

	result, err := a.planner.FastestOneTransfer(ctx, date, floor, from.PaddedID, to.PaddedID, DefaultJourneyLimit)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveDepartureStop finds the stop a departure question refers to. The
// alias tier scans the whole question; the substring and fuzzy tiers use the
// extracted stop phrase, restricted to stops the route actually serves.
func (a *Answerer) resolveDepartureStop(ctx context.Context, question string, intent Intent) (gtfsdb.StopCandidate, error) {
	phrase := stopPhrase(question)
	return a.resolver.Resolve(ctx, question, phrase, intent.Route, "stop")
}
