package answer_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/fixture"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
)

func newTestPlanner(t *testing.T) (*answer.JourneyPlanner, *gtfsdb.Client) {
	t.Helper()
	store := fixture.NewSeededStore(t)
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	return answer.NewJourneyPlanner(store, logger), store
}

func TestFastestOneTransfer(t *testing.T) {
	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	result, err := planner.FastestOneTransfer(ctx, "2026-01-31", "14:50:00", "0473", "1492", 3)
	require.NoError(t, err)

	assert.Equal(t, "Main Street Station", result.FromName)
	assert.Equal(t, "University Commons", result.ToName)
	assert.Equal(t, "2026-01-31", result.Date)
	require.Len(t, result.Options, 3)

	first := result.Options[0]
	assert.Equal(t, "5", first.FirstRoute)
	assert.Equal(t, "Downtown", first.FirstHeadsign)
	assert.Equal(t, "14:55:00", first.FirstDepart)
	assert.Equal(t, "800", first.TransferStopID)
	assert.Equal(t, "Transfer Center", first.TransferStopName)
	assert.Equal(t, "15:25:00", first.TransferArrive)
	assert.Equal(t, "10", first.SecondRoute)
	assert.Equal(t, "University", first.SecondHeadsign)
	assert.Equal(t, "15:30:00", first.SecondDepart)
	assert.Equal(t, "15:50:00", first.FinalArrive)

	// Ties on final arrival keep origin-departure order.
	assert.Equal(t, "15:00:00", result.Options[1].FirstDepart)
	assert.Equal(t, "15:50:00", result.Options[1].FinalArrive)
	assert.Equal(t, "16:00:00", result.Options[2].FirstDepart)
	assert.Equal(t, "16:50:00", result.Options[2].FinalArrive)

	// Arrival times never decrease, and no two options share a
	// (first depart, transfer stop, second depart) triple. The fixture has
	// two identical 15:00 trips, so the duplicate must have collapsed here.
	seen := make(map[[3]string]bool)
	for i, it := range result.Options {
		if i > 0 {
			assert.GreaterOrEqual(t, it.FinalArrive, result.Options[i-1].FinalArrive)
		}
		key := [3]string{it.FirstDepart, it.TransferStopID, it.SecondDepart}
		assert.False(t, seen[key], "duplicate itinerary %v", key)
		seen[key] = true
	}
}

func TestFastestOneTransferRepeatable(t *testing.T) {
	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	a, err := planner.FastestOneTransfer(ctx, "2026-01-31", "14:50:00", "0473", "1492", 3)
	require.NoError(t, err)
	b, err := planner.FastestOneTransfer(ctx, "2026-01-31", "14:50:00", "0473", "1492", 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFastestOneTransferFloorInclusive(t *testing.T) {
	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	result, err := planner.FastestOneTransfer(ctx, "2026-01-31", "15:00:00", "0473", "1492", 3)
	require.NoError(t, err)
	require.Len(t, result.Options, 2)
	assert.Equal(t, "15:00:00", result.Options[0].FirstDepart)
}

func TestFastestOneTransferLimit(t *testing.T) {
	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	result, err := planner.FastestOneTransfer(ctx, "2026-01-31", "14:50:00", "0473", "1492", 1)
	require.NoError(t, err)
	require.Len(t, result.Options, 1)
	assert.Equal(t, "14:55:00", result.Options[0].FirstDepart)

	// A zero limit is an empty result, not an error.
	result, err = planner.FastestOneTransfer(ctx, "2026-01-31", "14:50:00", "0473", "1492", 0)
	require.NoError(t, err)
	assert.Empty(t, result.Options)
	assert.Equal(t, "Main Street Station", result.FromName)
}

func TestFastestOneTransferNoService(t *testing.T) {
	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	// No Sunday service at all.
	result, err := planner.FastestOneTransfer(ctx, "2026-02-01", "00:00:00", "0473", "1492", 3)
	require.NoError(t, err)
	assert.Empty(t, result.Options)

	// Nothing precedes the origin stop, so it has no feasible transfer set.
	result, err = planner.FastestOneTransfer(ctx, "2026-01-31", "00:00:00", "0800", "0473", 3)
	require.NoError(t, err)
	assert.Empty(t, result.Options)
}

func TestFastestOneTransferSameStop(t *testing.T) {
	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	// Elm Plaza is the last stop of every trip that serves it; there is no
	// downstream leg, so the search comes back empty rather than degenerate.
	result, err := planner.FastestOneTransfer(ctx, "2026-01-30", "00:00:00", "0901", "0901", 3)
	require.NoError(t, err)
	assert.Equal(t, "Elm Plaza", result.FromName)
	assert.Equal(t, "Elm Plaza", result.ToName)
	assert.Empty(t, result.Options)
}

func TestFastestOneTransferUnknownStop(t *testing.T) {
	planner, _ := newTestPlanner(t)
	ctx := context.Background()

	_, err := planner.FastestOneTransfer(ctx, "2026-01-31", "00:00:00", "9999", "1492", 3)
	var notFound *answer.StopNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "origin", notFound.Role)

	_, err = planner.FastestOneTransfer(ctx, "2026-01-31", "00:00:00", "0473", "9999", 3)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "destination", notFound.Role)
}
