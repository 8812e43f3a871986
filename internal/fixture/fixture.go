// Package fixture seeds an in-memory schedule store with a small network
// shared by tests across packages: route 5 and route 10 meeting at a transfer
// stop, weekday and Saturday service, and one exception date.
//
// Service layout:
//   - WEEK runs Monday through Friday, 2026-01-01 to 2026-12-31
//   - SAT runs Saturdays over the same window
//   - On 2026-07-03 (a Friday) WEEK is removed and SPCL is added
//
// Route 5 runs Main Street Station -> Transfer Center -> Elm Plaza; route 10
// runs Transfer Center -> University Commons. The two Park stops exist only to
// exercise name resolution and are served by no trips.
package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/appconf"
)

// NewSeededStore returns an in-memory store loaded with the fixture network
// and its fuzzy index. The store is closed when the test finishes.
func NewSeededStore(t *testing.T) *gtfsdb.Client {
	t.Helper()

	store, err := gtfsdb.NewClient(gtfsdb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, Seed(context.Background(), store))
	return store
}

// Seed loads the fixture network into an empty store and builds the fuzzy
// index over it.
func Seed(ctx context.Context, store *gtfsdb.Client) error {
	routes := []gtfsdb.Route{
		{ID: "r5", ShortName: "5", LongName: "Fifth Avenue"},
		{ID: "r10", ShortName: "10", LongName: "Crosstown"},
	}

	stops := []gtfsdb.Stop{
		{ID: "473", PaddedID: "0473", Name: "Main Street Station"},
		{ID: "800", PaddedID: "0800", Name: "Transfer Center"},
		{ID: "901", PaddedID: "0901", Name: "Elm Plaza"},
		{ID: "910", PaddedID: "0910", Name: "Park Avenue South"},
		{ID: "911", PaddedID: "0911", Name: "Park & Avenue"},
		{ID: "1492", PaddedID: "1492", Name: "University Commons"},
	}

	calendars := []gtfsdb.Calendar{
		{ServiceID: "WEEK", Monday: 1, Tuesday: 1, Wednesday: 1, Thursday: 1, Friday: 1,
			StartDate: "2026-01-01", EndDate: "2026-12-31"},
		{ServiceID: "SAT", Saturday: 1,
			StartDate: "2026-01-01", EndDate: "2026-12-31"},
	}

	exceptions := []gtfsdb.CalendarDate{
		{ServiceID: "WEEK", Date: "2026-07-03", ExceptionType: gtfsdb.ExceptionRemove},
		{ServiceID: "SPCL", Date: "2026-07-03", ExceptionType: gtfsdb.ExceptionAdd},
	}

	var trips []gtfsdb.Trip
	var stopTimes []gtfsdb.StopTime

	addRoute5 := func(id, service, headsign, depOrigin, arrTransfer, depTransfer, arrEnd string) {
		trips = append(trips, gtfsdb.Trip{ID: id, RouteID: "r5", ServiceID: service, Headsign: headsign})
		stopTimes = append(stopTimes,
			gtfsdb.StopTime{TripID: id, StopID: "473", StopSequence: 1, ArrivalTime: depOrigin, DepartureTime: depOrigin},
			gtfsdb.StopTime{TripID: id, StopID: "800", StopSequence: 2, ArrivalTime: arrTransfer, DepartureTime: depTransfer},
			gtfsdb.StopTime{TripID: id, StopID: "901", StopSequence: 3, ArrivalTime: arrEnd, DepartureTime: arrEnd},
		)
	}
	addRoute10 := func(id, service, depTransfer, arrEnd string) {
		trips = append(trips, gtfsdb.Trip{ID: id, RouteID: "r10", ServiceID: service, Headsign: "University"})
		stopTimes = append(stopTimes,
			gtfsdb.StopTime{TripID: id, StopID: "800", StopSequence: 1, ArrivalTime: depTransfer, DepartureTime: depTransfer},
			gtfsdb.StopTime{TripID: id, StopID: "1492", StopSequence: 2, ArrivalTime: arrEnd, DepartureTime: arrEnd},
		)
	}

	// Weekday route 5 service used by the departure tests.
	addRoute5("t5a", "WEEK", "Downtown", "07:00:00", "07:20:00", "07:21:00", "07:40:00")
	addRoute5("t5b", "WEEK", "Downtown", "08:00:00", "08:20:00", "08:21:00", "08:40:00")
	addRoute5("t5c", "WEEK", "Airport", "07:30:00", "07:50:00", "07:51:00", "08:10:00")
	addRoute5("t5d", "WEEK", "Downtown", "22:00:00", "22:20:00", "22:21:00", "22:40:00")

	// The only trip running on the 2026-07-03 exception date.
	addRoute5("t5x", "SPCL", "Downtown", "09:00:00", "09:20:00", "09:21:00", "09:40:00")

	// Saturday trips used by the journey tests. t5s1b duplicates t5s1 so the
	// search has an exact duplicate itinerary to collapse.
	addRoute5("t5s0", "SAT", "Downtown", "14:55:00", "15:25:00", "15:26:00", "15:45:00")
	addRoute5("t5s1", "SAT", "Downtown", "15:00:00", "15:20:00", "15:21:00", "15:40:00")
	addRoute5("t5s1b", "SAT", "Downtown", "15:00:00", "15:20:00", "15:21:00", "15:40:00")
	addRoute5("t5s2", "SAT", "Downtown", "16:00:00", "16:20:00", "16:21:00", "16:40:00")

	addRoute10("t10a", "WEEK", "08:30:00", "08:50:00")
	addRoute10("t10s1", "SAT", "15:30:00", "15:50:00")
	addRoute10("t10s2", "SAT", "16:30:00", "16:50:00")
	addRoute10("t10s3", "SAT", "17:30:00", "17:50:00")

	if err := store.InsertRoutes(ctx, routes); err != nil {
		return err
	}
	if err := store.InsertStops(ctx, stops); err != nil {
		return err
	}
	if err := store.InsertCalendars(ctx, calendars); err != nil {
		return err
	}
	if err := store.InsertCalendarDates(ctx, exceptions); err != nil {
		return err
	}
	if err := store.InsertTrips(ctx, trips); err != nil {
		return err
	}
	if err := store.InsertStopTimes(ctx, stopTimes); err != nil {
		return err
	}
	return store.BuildFuzzyIndex(ctx)
}
