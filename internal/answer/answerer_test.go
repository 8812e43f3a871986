package answer_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/config"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/fixture"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
)

// Friday 2026-01-30. The fixture's weekday service runs this day, and the
// journey trips run the following Saturday.
var fixedNow = time.Date(2026, time.January, 30, 10, 0, 0, 0, time.UTC)

func newTestAnswerer(t *testing.T, aliases ...config.AliasEntry) *answer.Answerer {
	t.Helper()
	store := fixture.NewSeededStore(t)
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	return answer.NewAnswerer(store, config.Answering{Aliases: aliases}, logger,
		answer.WithClock(func() time.Time { return fixedNow }))
}

func TestAnswerLastDeparture(t *testing.T) {
	answerer := newTestAnswerer(t)

	result, err := answerer.Answer(context.Background(), "when is the last bus on route 5 from Main Street")
	require.NoError(t, err)

	bound, ok := result.(answer.DepartureBoundResult)
	require.True(t, ok)
	assert.Equal(t, answer.LastDeparture, bound.Kind)
	assert.Equal(t, "5", bound.Route)
	assert.Equal(t, "Main Street Station", bound.StopName)
	assert.Equal(t, "2026-01-30", bound.Date) // no date in the question means today
	require.NotNil(t, bound.Departure)
	assert.Equal(t, "22:00:00", *bound.Departure)
}

func TestAnswerFirstDepartureWithWeekdayName(t *testing.T) {
	answerer := newTestAnswerer(t)

	result, err := answerer.Answer(context.Background(), "first route 5 bus from Main Street on saturday")
	require.NoError(t, err)

	bound, ok := result.(answer.DepartureBoundResult)
	require.True(t, ok)
	assert.Equal(t, answer.FirstDeparture, bound.Kind)
	assert.Equal(t, "2026-01-31", bound.Date)
	require.NotNil(t, bound.Departure)
	assert.Equal(t, "14:55:00", *bound.Departure)
}

func TestAnswerDepartureNoService(t *testing.T) {
	answerer := newTestAnswerer(t)

	// Sunday has no route 5 service; the absence is explicit, not an error.
	result, err := answerer.Answer(context.Background(), "last route 5 bus from Main Street on 2026-02-01")
	require.NoError(t, err)

	bound, ok := result.(answer.DepartureBoundResult)
	require.True(t, ok)
	assert.Nil(t, bound.Departure)
}

func TestAnswerNextDepartures(t *testing.T) {
	answerer := newTestAnswerer(t)

	result, err := answerer.Answer(context.Background(), "route 5 from Main Street Station around 7:15 am")
	require.NoError(t, err)

	next, ok := result.(answer.NextDeparturesResult)
	require.True(t, ok)
	assert.Equal(t, "5", next.Route)
	assert.Equal(t, "Main Street Station", next.StopName)
	assert.Equal(t, "07:15:00", next.After)
	require.Len(t, next.Departures, 2)
	assert.Equal(t, answer.DirectionTime{Departure: "07:30:00", Headsign: "Airport"}, next.Departures[0])
	assert.Equal(t, answer.DirectionTime{Departure: "08:00:00", Headsign: "Downtown"}, next.Departures[1])
}

func TestAnswerNextDeparturesEmpty(t *testing.T) {
	answerer := newTestAnswerer(t)

	result, err := answerer.Answer(context.Background(), "route 5 from Main Street Station at 9:00 am on sunday")
	require.NoError(t, err)

	next, ok := result.(answer.NextDeparturesResult)
	require.True(t, ok)
	assert.Empty(t, next.Departures)
}

func TestAnswerFastestTransfer(t *testing.T) {
	answerer := newTestAnswerer(t)

	result, err := answerer.Answer(context.Background(),
		"fastest way from Main Street to University Commons at 2:50 pm on 2026-01-31")
	require.NoError(t, err)

	itineraries, ok := result.(answer.ItinerariesResult)
	require.True(t, ok)
	assert.Equal(t, "Main Street Station", itineraries.FromName)
	assert.Equal(t, "University Commons", itineraries.ToName)
	assert.Equal(t, "2026-01-31", itineraries.Date)
	require.Len(t, itineraries.Options, 3)
	assert.Equal(t, "14:55:00", itineraries.Options[0].FirstDepart)
	assert.Equal(t, "15:50:00", itineraries.Options[0].FinalArrive)
}

func TestAnswerFastestTransferNoTimeDefaultsToMidnight(t *testing.T) {
	answerer := newTestAnswerer(t)

	result, err := answerer.Answer(context.Background(),
		"fastest way from Main Street to University Commons on 2026-01-31")
	require.NoError(t, err)

	itineraries, ok := result.(answer.ItinerariesResult)
	require.True(t, ok)
	require.Len(t, itineraries.Options, 3)
	assert.Equal(t, "14:55:00", itineraries.Options[0].FirstDepart)
}

func TestAnswerFastestTransferSameStop(t *testing.T) {
	answerer := newTestAnswerer(t)

	result, err := answerer.Answer(context.Background(), "fastest trip from Elm Plaza to Elm Plaza")
	require.NoError(t, err)

	itineraries, ok := result.(answer.ItinerariesResult)
	require.True(t, ok)
	assert.Equal(t, "Elm Plaza", itineraries.FromName)
	assert.Equal(t, "Elm Plaza", itineraries.ToName)
	assert.Empty(t, itineraries.Options)
}

func TestAnswerAliases(t *testing.T) {
	answerer := newTestAnswerer(t,
		config.AliasEntry{Alias: "the hub", StopIDPadded: "0800", StopName: "Transfer Center"},
		config.AliasEntry{Alias: "uni", StopIDPadded: "1492", StopName: "University Commons"},
	)

	// Departure questions scan the whole question for aliases.
	result, err := answerer.Answer(context.Background(), "when is the last route 5 bus leaving the hub")
	require.NoError(t, err)
	bound, ok := result.(answer.DepartureBoundResult)
	require.True(t, ok)
	assert.Equal(t, "Transfer Center", bound.StopName)
	require.NotNil(t, bound.Departure)
	assert.Equal(t, "22:21:00", *bound.Departure)

	// Transfer questions scan only the extracted from/to phrase.
	result, err = answerer.Answer(context.Background(),
		"fastest way from Main Street to uni at 2:50 pm on 2026-01-31")
	require.NoError(t, err)
	itineraries, ok := result.(answer.ItinerariesResult)
	require.True(t, ok)
	assert.Equal(t, "University Commons", itineraries.ToName)
	require.Len(t, itineraries.Options, 3)
}

func TestAnswerErrorTaxonomy(t *testing.T) {
	answerer := newTestAnswerer(t)
	ctx := context.Background()

	_, err := answerer.Answer(ctx, "when is the next bus")
	assert.ErrorIs(t, err, answer.ErrMissingRoute)

	_, err = answerer.Answer(ctx, "route 5 from Main Street")
	assert.ErrorIs(t, err, answer.ErrMissingTime)

	_, err = answerer.Answer(ctx, "fastest from to downtown please")
	assert.ErrorIs(t, err, answer.ErrMalformedRequest)

	_, err = answerer.Answer(ctx, "fastest from Park to University Commons")
	var ambiguous *answer.AmbiguousStopError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "origin", ambiguous.Role)
	assert.Len(t, ambiguous.Candidates, 2)

	_, err = answerer.Answer(ctx, "fastest from zanzibar to Main Street")
	var notFound *answer.StopNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "origin", notFound.Role)
}
